package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type StartMysteryRequest struct {
	SingleDevice bool `json:"singleDevice"`
}

func (h *Handler) StartMystery(c *gin.Context) {
	playerID, ok := getPlayerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "player not found"})
		return
	}

	var req StartMysteryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// body is optional for this endpoint
		req.SingleDevice = false
	}

	enc, err := h.Service.StartMysteryEncounter(c.Request.Context(), playerID, req.SingleDevice)
	if err != nil {
		serviceError(c, err)
		return
	}

	if code, ok := getGameCode(c); ok {
		h.broadcast(c, code)
	}
	c.JSON(http.StatusOK, enc)
}

type ResolveMysteryRequest struct {
	ChoiceID string `json:"choiceId"`
}

func (h *Handler) ResolveMystery(c *gin.Context) {
	playerID, ok := getPlayerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "player not found"})
		return
	}

	var req ResolveMysteryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	outcome, err := h.Service.ResolveMysteryOutcome(c.Request.Context(), playerID, req.ChoiceID)
	if err != nil {
		serviceError(c, err)
		return
	}

	if code, ok := getGameCode(c); ok {
		h.broadcast(c, code)
	}
	c.JSON(http.StatusOK, outcome)
}

type ResolveMinigameRequest struct {
	Success bool `json:"success"`
}

func (h *Handler) ResolveMinigame(c *gin.Context) {
	playerID, ok := getPlayerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "player not found"})
		return
	}

	var req ResolveMinigameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	outcome, err := h.Service.ResolveMinigameOutcome(c.Request.Context(), playerID, req.Success)
	if err != nil {
		serviceError(c, err)
		return
	}

	if code, ok := getGameCode(c); ok {
		h.broadcast(c, code)
	}
	c.JSON(http.StatusOK, outcome)
}

// ClearMysteryResult dismisses the last outcome banner; idempotent.
func (h *Handler) ClearMysteryResult(c *gin.Context) {
	playerID, ok := getPlayerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "player not found"})
		return
	}

	if err := h.Service.ClearMysteryResult(c.Request.Context(), playerID); err != nil {
		serviceError(c, err)
		return
	}

	if code, ok := getGameCode(c); ok {
		h.broadcast(c, code)
	}
	c.JSON(http.StatusOK, gin.H{"cleared": true})
}
