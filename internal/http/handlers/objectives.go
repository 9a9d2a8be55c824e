package handlers

import (
	"net/http"

	"granja_glitch/internal/domain"

	"github.com/gin-gonic/gin"
)

type ClaimObjectiveRequest struct {
	ObjectiveID string `json:"objectiveId" binding:"required"`
}

func (h *Handler) ClaimObjective(c *gin.Context) {
	playerID, ok := getPlayerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "player not found"})
		return
	}
	code, ok := getGameCode(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "game not found in token"})
		return
	}

	var req ClaimObjectiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	result, err := h.Service.ClaimObjective(c.Request.Context(), code, playerID, req.ObjectiveID)
	if err != nil {
		serviceError(c, err)
		return
	}

	if result.Claimed {
		h.broadcast(c, code)
	}
	c.JSON(http.StatusOK, result)
}

// ListObjectives returns the static objective catalog for lobby display.
func (h *Handler) ListObjectives(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"objectives": domain.Objectives})
}

// ListCharacters returns the character catalog for the join screen.
func (h *Handler) ListCharacters(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"characters": domain.Characters})
}

// ListCrops returns the crop catalog with base prices.
func (h *Handler) ListCrops(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"crops": domain.Crops})
}
