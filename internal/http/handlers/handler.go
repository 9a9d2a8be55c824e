package handlers

import (
	"errors"
	"net/http"

	"granja_glitch/internal/domain"
	"granja_glitch/internal/repository"
	"granja_glitch/internal/service"
	"granja_glitch/internal/ws"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Service   *service.GameService
	Hub       *ws.Hub
	AuditRepo *repository.AuditRepository
}

func NewHandler(svc *service.GameService, hub *ws.Hub, auditRepo *repository.AuditRepository) *Handler {
	return &Handler{
		Service:   svc,
		Hub:       hub,
		AuditRepo: auditRepo,
	}
}

// getPlayerID extracts the player id set by the JWT middleware.
func getPlayerID(c *gin.Context) (string, bool) {
	val, ok := c.Get("player_id")
	if !ok {
		return "", false
	}
	id, ok := val.(string)
	return id, ok && id != ""
}

// getGameCode extracts the game code set by the JWT middleware.
func getGameCode(c *gin.Context) (string, bool) {
	val, ok := c.Get("game_code")
	if !ok {
		return "", false
	}
	code, ok := val.(string)
	return code, ok && code != ""
}

// serviceError maps domain errors to HTTP statuses.
func serviceError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrGameNotFound),
		errors.Is(err, domain.ErrPlayerNotFound),
		errors.Is(err, domain.ErrUnknownCrop),
		errors.Is(err, domain.ErrUnknownObjective):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrNotHost),
		errors.Is(err, domain.ErrNotInGame):
		status = http.StatusForbidden
	case errors.Is(err, domain.ErrGameFull),
		errors.Is(err, domain.ErrGameEnded),
		errors.Is(err, domain.ErrNotEnoughPlayers),
		errors.Is(err, domain.ErrWrongPhase),
		errors.Is(err, domain.ErrMarketNotFinished),
		errors.Is(err, domain.ErrAlreadyRolled),
		errors.Is(err, domain.ErrNotRolledYet),
		errors.Is(err, domain.ErrRollConfirmed),
		errors.Is(err, domain.ErrRerollUsed),
		errors.Is(err, domain.ErrWrongCharacter),
		errors.Is(err, domain.ErrSkillUsed),
		errors.Is(err, domain.ErrNoEnergy),
		errors.Is(err, domain.ErrInsufficientInventory),
		errors.Is(err, domain.ErrNoMysteryBudget),
		errors.Is(err, domain.ErrNoActiveMystery),
		errors.Is(err, domain.ErrWrongEncounterKind),
		errors.Is(err, domain.ErrObjectiveNotActive),
		errors.Is(err, domain.ErrObjectiveAlreadyClaimed):
		status = http.StatusConflict
	case errors.Is(err, domain.ErrInvalidDie),
		errors.Is(err, domain.ErrInvalidSymbol),
		errors.Is(err, domain.ErrUnknownChoice):
		status = http.StatusBadRequest
	}

	if status == http.StatusInternalServerError {
		c.JSON(status, gin.H{"error": "internal error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// audit records a host/lifecycle action; failures are logged by the repo caller
// and never block the request.
func (h *Handler) audit(c *gin.Context, log *domain.AuditLog) {
	if h.AuditRepo == nil {
		return
	}
	_ = h.AuditRepo.Create(c.Request.Context(), log)
}

// broadcast pushes the fresh game state to all WS subscribers.
func (h *Handler) broadcast(c *gin.Context, gameCode string) {
	if h.Hub == nil {
		return
	}
	h.Hub.BroadcastState(c.Request.Context(), gameCode)
}
