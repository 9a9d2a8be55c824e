package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"granja_glitch/internal/service"

	"github.com/gin-gonic/gin"
)

func TestJWTMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	service.InitJWTWithSecret("test-secret")

	r := gin.New()
	r.GET("/protected", JWT(), func(c *gin.Context) {
		c.JSON(200, gin.H{
			"player_id": c.GetString("player_id"),
			"game_code": c.GetString("game_code"),
		})
	})

	token, err := service.GeneratePlayerToken("p1", "ABC123")
	if err != nil {
		t.Fatalf("GeneratePlayerToken: %v", err)
	}

	cases := []struct {
		name   string
		header string
		status int
	}{
		{"valid token", "Bearer " + token, 200},
		{"missing header", "", 401},
		{"not bearer", "Basic xyz", 401},
		{"garbage token", "Bearer nope", 401},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		if tc.header != "" {
			req.Header.Set("Authorization", tc.header)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != tc.status {
			t.Fatalf("%s: status = %d; want %d", tc.name, w.Code, tc.status)
		}
	}
}
