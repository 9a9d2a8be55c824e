package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) FinishMarket(c *gin.Context) {
	code := c.Param("code")
	playerID, ok := getPlayerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "player not found"})
		return
	}

	if err := h.Service.FinishMarket(c.Request.Context(), code, playerID); err != nil {
		serviceError(c, err)
		return
	}

	h.broadcast(c, code)
	c.JSON(http.StatusOK, gin.H{"finished": true})
}

// MerchantFinishRequest names the crop the merchant boosts before finishing.
type MerchantFinishRequest struct {
	CropID string `json:"cropId" binding:"required"`
}

func (h *Handler) MerchantFinishMarket(c *gin.Context) {
	code := c.Param("code")
	playerID, ok := getPlayerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "player not found"})
		return
	}

	var req MerchantFinishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	if err := h.Service.ApplyMerchantBonusAndFinishMarket(c.Request.Context(), code, playerID, req.CropID); err != nil {
		serviceError(c, err)
		return
	}

	h.broadcast(c, code)
	c.JSON(http.StatusOK, gin.H{"finished": true})
}

// AdvanceRound drifts prices, rolls the round event and hands the first
// turn to the next round-start player. Any member may trigger it once the
// market set is complete.
func (h *Handler) AdvanceRound(c *gin.Context) {
	code := c.Param("code")
	if _, ok := getPlayerID(c); !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "player not found"})
		return
	}

	if err := h.Service.AdvanceRound(c.Request.Context(), code); err != nil {
		serviceError(c, err)
		return
	}

	h.broadcast(c, code)
	c.JSON(http.StatusOK, gin.H{"advanced": true})
}
