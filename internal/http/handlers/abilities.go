package handlers

import (
	"net/http"

	"granja_glitch/internal/domain"

	"github.com/gin-gonic/gin"
)

// FreeRerollRequest is the gambler's once-per-game full reroll.
type FreeRerollRequest struct {
	Kept []int `json:"kept"`
}

func (h *Handler) UseFreeReroll(c *gin.Context) {
	playerID, ok := getPlayerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "player not found"})
		return
	}

	var req FreeRerollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	dice, err := h.Service.UseFreeReroll(c.Request.Context(), playerID, req.Kept)
	if err != nil {
		serviceError(c, err)
		return
	}

	if code, ok := getGameCode(c); ok {
		h.broadcast(c, code)
	}
	c.JSON(http.StatusOK, gin.H{"dice": dice})
}

// SymbolSwapRequest sets one die to a chosen symbol (engineer, costs energy).
type SymbolSwapRequest struct {
	DieIndex int    `json:"dieIndex"`
	Symbol   string `json:"symbol" binding:"required"`
}

func (h *Handler) UseSymbolSwap(c *gin.Context) {
	playerID, ok := getPlayerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "player not found"})
		return
	}

	var req SymbolSwapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	dice, err := h.Service.UseSymbolSwap(c.Request.Context(), playerID, req.DieIndex, domain.Symbol(req.Symbol))
	if err != nil {
		serviceError(c, err)
		return
	}

	if code, ok := getGameCode(c); ok {
		h.broadcast(c, code)
	}
	c.JSON(http.StatusOK, gin.H{"dice": dice})
}

// UseReveal is the oracle's peek; the server only books the energy cost,
// the peek itself happens at the table.
func (h *Handler) UseReveal(c *gin.Context) {
	playerID, ok := getPlayerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "player not found"})
		return
	}

	if err := h.Service.UseReveal(c.Request.Context(), playerID); err != nil {
		serviceError(c, err)
		return
	}

	if code, ok := getGameCode(c); ok {
		h.broadcast(c, code)
	}
	c.JSON(http.StatusOK, gin.H{"used": true})
}
