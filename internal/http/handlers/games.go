package handlers

import (
	"net/http"

	"granja_glitch/internal/domain"
	"granja_glitch/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateGameRequest creates a new game with the caller as host
type CreateGameRequest struct {
	Name      string `json:"name" binding:"required,min=1,max=32"`
	Character string `json:"character" binding:"required"`
}

type CreateGameResponse struct {
	Code     string `json:"code"`
	PlayerID string `json:"playerId"`
	Token    string `json:"token"`
}

func (h *Handler) CreateGame(c *gin.Context) {
	var req CreateGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}
	character := domain.Character(req.Character)
	if !domain.ValidCharacter(character) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown character"})
		return
	}

	code, hostID, err := h.Service.CreateGame(c.Request.Context(), req.Name, character)
	if err != nil {
		serviceError(c, err)
		return
	}

	token, err := service.GeneratePlayerToken(hostID, code)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "token generation failed"})
		return
	}

	h.audit(c, &domain.AuditLog{
		GameCode: code,
		PlayerID: hostID,
		Action:   domain.AuditActionGameCreate,
		Category: domain.AuditCategoryLifecycle,
		Details:  map[string]interface{}{"name": req.Name, "character": req.Character},
	})

	c.JSON(http.StatusCreated, CreateGameResponse{Code: code, PlayerID: hostID, Token: token})
}

type JoinGameRequest struct {
	Code      string `json:"code" binding:"required,len=6"`
	Name      string `json:"name" binding:"required,min=1,max=32"`
	Character string `json:"character" binding:"required"`
}

type JoinGameResponse struct {
	Code     string `json:"code"`
	PlayerID string `json:"playerId"`
	Token    string `json:"token"`
}

func (h *Handler) JoinGame(c *gin.Context) {
	var req JoinGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}
	character := domain.Character(req.Character)
	if !domain.ValidCharacter(character) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown character"})
		return
	}

	playerID, err := h.Service.JoinGame(c.Request.Context(), req.Code, req.Name, character)
	if err != nil {
		serviceError(c, err)
		return
	}

	token, err := service.GeneratePlayerToken(playerID, req.Code)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "token generation failed"})
		return
	}

	h.audit(c, &domain.AuditLog{
		GameCode: req.Code,
		PlayerID: playerID,
		Action:   domain.AuditActionPlayerJoin,
		Category: domain.AuditCategoryLifecycle,
		Details:  map[string]interface{}{"name": req.Name, "character": req.Character},
	})

	h.broadcast(c, req.Code)
	c.JSON(http.StatusOK, JoinGameResponse{Code: req.Code, PlayerID: playerID, Token: token})
}

// GameStateResponse is the full snapshot pushed over WS and served over REST.
type GameStateResponse struct {
	Game    *domain.Game     `json:"game"`
	Players []*domain.Player `json:"players"`
}

func (h *Handler) GetGame(c *gin.Context) {
	code := c.Param("code")
	game, players, err := h.Service.GameState(c.Request.Context(), code)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, GameStateResponse{Game: game, Players: players})
}

func (h *Handler) GetMe(c *gin.Context) {
	playerID, ok := getPlayerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "player not found"})
		return
	}
	player, err := h.Service.PlayerState(c.Request.Context(), playerID)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, player)
}

func (h *Handler) StartGame(c *gin.Context) {
	code := c.Param("code")
	playerID, ok := getPlayerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "player not found"})
		return
	}

	if err := h.Service.StartGame(c.Request.Context(), code, playerID); err != nil {
		serviceError(c, err)
		return
	}

	h.audit(c, &domain.AuditLog{
		GameCode: code,
		PlayerID: playerID,
		Action:   domain.AuditActionGameStart,
		Category: domain.AuditCategoryLifecycle,
	})

	h.broadcast(c, code)
	c.JSON(http.StatusOK, gin.H{"started": true})
}

func (h *Handler) EndGame(c *gin.Context) {
	code := c.Param("code")
	playerID, ok := getPlayerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "player not found"})
		return
	}

	if err := h.Service.EndGame(c.Request.Context(), code, playerID); err != nil {
		serviceError(c, err)
		return
	}

	h.audit(c, &domain.AuditLog{
		GameCode: code,
		PlayerID: playerID,
		Action:   domain.AuditActionGameEnd,
		Category: domain.AuditCategoryLifecycle,
	})

	h.broadcast(c, code)
	c.JSON(http.StatusOK, gin.H{"ended": true})
}

func (h *Handler) DeleteGame(c *gin.Context) {
	code := c.Param("code")
	playerID, ok := getPlayerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "player not found"})
		return
	}

	if err := h.Service.DeleteGame(c.Request.Context(), code, playerID); err != nil {
		serviceError(c, err)
		return
	}

	h.audit(c, &domain.AuditLog{
		GameCode: code,
		PlayerID: playerID,
		Action:   domain.AuditActionGameDelete,
		Category: domain.AuditCategoryLifecycle,
	})

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) RemovePlayer(c *gin.Context) {
	code := c.Param("code")
	targetID := c.Param("id")
	playerID, ok := getPlayerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "player not found"})
		return
	}

	if err := h.Service.RemovePlayer(c.Request.Context(), code, targetID, playerID); err != nil {
		serviceError(c, err)
		return
	}

	h.audit(c, &domain.AuditLog{
		GameCode: code,
		PlayerID: playerID,
		Action:   domain.AuditActionPlayerRemove,
		Category: domain.AuditCategoryHost,
		Details:  map[string]interface{}{"target": targetID},
	})

	h.broadcast(c, code)
	c.JSON(http.StatusOK, gin.H{"removed": true})
}

// GetAuditLog returns recent audit entries for a game (host tooling).
func (h *Handler) GetAuditLog(c *gin.Context) {
	code := c.Param("code")
	if h.AuditRepo == nil {
		c.JSON(http.StatusOK, gin.H{"logs": []interface{}{}})
		return
	}
	logs, err := h.AuditRepo.GetByGame(c.Request.Context(), code, 100)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"logs": logs})
}
