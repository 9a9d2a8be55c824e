package handlers

import (
	"net/http"

	"granja_glitch/internal/domain"

	"github.com/gin-gonic/gin"
)

func (h *Handler) RollDice(c *gin.Context) {
	playerID, ok := getPlayerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "player not found"})
		return
	}

	dice, err := h.Service.RollDice(c.Request.Context(), playerID)
	if err != nil {
		serviceError(c, err)
		return
	}

	if code, ok := getGameCode(c); ok {
		h.broadcast(c, code)
	}
	c.JSON(http.StatusOK, gin.H{"dice": dice})
}

// RerollRequest lists the die indexes the player keeps; the rest are rerolled.
type RerollRequest struct {
	Kept []int `json:"kept"`
}

func (h *Handler) RerollDice(c *gin.Context) {
	playerID, ok := getPlayerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "player not found"})
		return
	}

	var req RerollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	dice, err := h.Service.RerollDice(c.Request.Context(), playerID, req.Kept)
	if err != nil {
		serviceError(c, err)
		return
	}

	if code, ok := getGameCode(c); ok {
		h.broadcast(c, code)
	}
	c.JSON(http.StatusOK, gin.H{"dice": dice})
}

func (h *Handler) ConfirmRoll(c *gin.Context) {
	playerID, ok := getPlayerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "player not found"})
		return
	}

	effects, err := h.Service.ApplyDiceEffects(c.Request.Context(), playerID)
	if err != nil {
		serviceError(c, err)
		return
	}

	if code, ok := getGameCode(c); ok {
		h.broadcast(c, code)
	}
	c.JSON(http.StatusOK, effects)
}

func (h *Handler) AdvanceTurn(c *gin.Context) {
	code := c.Param("code")
	playerID, ok := getPlayerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "player not found"})
		return
	}

	if err := h.Service.AdvanceTurn(c.Request.Context(), code, playerID); err != nil {
		serviceError(c, err)
		return
	}

	h.broadcast(c, code)
	c.JSON(http.StatusOK, gin.H{"advanced": true})
}

// ForceAdvanceTurn lets the host skip a stalled player's turn.
func (h *Handler) ForceAdvanceTurn(c *gin.Context) {
	code := c.Param("code")
	playerID, ok := getPlayerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "player not found"})
		return
	}

	if err := h.Service.ForceAdvanceTurn(c.Request.Context(), code, playerID); err != nil {
		serviceError(c, err)
		return
	}

	h.audit(c, &domain.AuditLog{
		GameCode: code,
		PlayerID: playerID,
		Action:   domain.AuditActionForceTurnChange,
		Category: domain.AuditCategoryHost,
	})

	h.broadcast(c, code)
	c.JSON(http.StatusOK, gin.H{"advanced": true})
}
