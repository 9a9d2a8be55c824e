package handlers

import (
	"net/http"

	"granja_glitch/internal/domain"

	"github.com/gin-gonic/gin"
)

type SellCropRequest struct {
	CropID   string `json:"cropId" binding:"required"`
	Quantity int    `json:"quantity" binding:"required,min=1"`
}

func (h *Handler) SellCrop(c *gin.Context) {
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

	var req SellCropRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	earned, err := h.Service.SellCrop(c.Request.Context(), code, playerID, req.CropID, req.Quantity)
	if err != nil {
		serviceError(c, err)
		return
	}

	h.broadcast(c, code)
	c.JSON(http.StatusOK, gin.H{"earned": earned})
}

type InventoryRequest struct {
	CropID   string `json:"cropId" binding:"required"`
	Quantity int    `json:"quantity" binding:"required,min=1"`
}

func (h *Handler) AddCrop(c *gin.Context) {
	playerID, ok := getPlayerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "player not found"})
		return
	}

	var req InventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	if err := h.Service.AddCropToInventory(c.Request.Context(), playerID, req.CropID, req.Quantity); err != nil {
		serviceError(c, err)
		return
	}

	if code, ok := getGameCode(c); ok {
		h.broadcast(c, code)
	}
	c.JSON(http.StatusOK, gin.H{"added": true})
}

func (h *Handler) RemoveCrop(c *gin.Context) {
	playerID, ok := getPlayerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "player not found"})
		return
	}

	var req InventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	if err := h.Service.RemoveCropFromInventory(c.Request.Context(), playerID, req.CropID, req.Quantity); err != nil {
		serviceError(c, err)
		return
	}

	if code, ok := getGameCode(c); ok {
		h.broadcast(c, code)
	}
	c.JSON(http.StatusOK, gin.H{"removed": true})
}

// AdjustResourcesRequest is the host correction for table mistakes.
type AdjustResourcesRequest struct {
	TargetID    string `json:"targetId" binding:"required"`
	MoneyDelta  int    `json:"moneyDelta"`
	EnergyDelta int    `json:"energyDelta"`
}

func (h *Handler) AdjustResources(c *gin.Context) {
	code := c.Param("code")
	playerID, ok := getPlayerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "player not found"})
		return
	}

	var req AdjustResourcesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	if err := h.Service.AdjustPlayerResources(c.Request.Context(), code, playerID, req.TargetID, req.MoneyDelta, req.EnergyDelta); err != nil {
		serviceError(c, err)
		return
	}

	h.audit(c, &domain.AuditLog{
		GameCode: code,
		PlayerID: playerID,
		Action:   domain.AuditActionResourceAdjust,
		Category: domain.AuditCategoryHost,
		Details: map[string]interface{}{
			"target": req.TargetID,
			"money":  req.MoneyDelta,
			"energy": req.EnergyDelta,
		},
	})

	h.broadcast(c, code)
	c.JSON(http.StatusOK, gin.H{"adjusted": true})
}

type AdjustBonusPVRequest struct {
	TargetID string `json:"targetId" binding:"required"`
	Delta    int    `json:"delta" binding:"required"`
}

func (h *Handler) AdjustBonusPV(c *gin.Context) {
	code := c.Param("code")
	playerID, ok := getPlayerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "player not found"})
		return
	}

	var req AdjustBonusPVRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	if err := h.Service.AdjustManualBonusPV(c.Request.Context(), code, playerID, req.TargetID, req.Delta); err != nil {
		serviceError(c, err)
		return
	}

	h.audit(c, &domain.AuditLog{
		GameCode: code,
		PlayerID: playerID,
		Action:   domain.AuditActionBonusPVAdjust,
		Category: domain.AuditCategoryHost,
		Details: map[string]interface{}{
			"target": req.TargetID,
			"delta":  req.Delta,
		},
	})

	h.broadcast(c, code)
	c.JSON(http.StatusOK, gin.H{"adjusted": true})
}
