package http

import (
	"time"

	"granja_glitch/internal/config"
	"granja_glitch/internal/http/handlers"
	"granja_glitch/internal/http/middleware"
	"granja_glitch/internal/repository"
	"granja_glitch/internal/service"
	"granja_glitch/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

func RegisterRoutes(r *gin.Engine, db *pgxpool.Pool, cfg *config.Config, version string) {
	store := repository.NewPostgresStore(db)
	svc := service.NewGameService(store)
	hub := ws.NewHub(svc)
	auditRepo := repository.NewAuditRepository(db)

	h := handlers.NewHandler(svc, hub, auditRepo)
	healthHandler := handlers.NewHealthHandler(db, version)

	apiRateWindow := time.Duration(cfg.APIRateWindow) * time.Second
	actionRateWindow := time.Duration(cfg.ActionRateWindow) * time.Second

	// Health checks (no rate limiting)
	r.GET("/health", healthHandler.Health)
	r.GET("/healthz", healthHandler.Liveness)
	r.GET("/readyz", healthHandler.Readiness)

	v1 := r.Group("/api/v1")
	v1.Use(middleware.RedisRateLimit(cfg.APIRateLimit, apiRateWindow))
	registerAPIRoutes(v1, h, cfg.ActionRateLimit, actionRateWindow)

	// WebSocket state stream (token in query)
	r.GET("/ws", h.WS)
}

func registerAPIRoutes(api *gin.RouterGroup, h *handlers.Handler, actionRateLimit int, actionRateWindow time.Duration) {
	// Static catalogs for the lobby screens
	api.GET("/catalog/characters", h.ListCharacters)
	api.GET("/catalog/crops", h.ListCrops)
	api.GET("/catalog/objectives", h.ListObjectives)

	// Game lifecycle; create/join are the only unauthenticated writes
	api.POST("/games", middleware.SimpleRateLimit(10, time.Minute), h.CreateGame)
	api.POST("/games/join", middleware.SimpleRateLimit(10, time.Minute), h.JoinGame)

	auth := api.Group("")
	auth.Use(middleware.JWT())

	auth.GET("/me", h.GetMe)
	auth.GET("/games/:code", h.GetGame)
	auth.GET("/games/:code/audit", h.GetAuditLog)
	auth.POST("/games/:code/start", h.StartGame)
	auth.POST("/games/:code/end", h.EndGame)
	auth.DELETE("/games/:code", h.DeleteGame)
	auth.DELETE("/games/:code/players/:id", h.RemovePlayer)

	// Per-player action rate limiter (not per IP)
	actionRL := middleware.ActionRateLimit(actionRateLimit, actionRateWindow)

	// Turn flow
	auth.POST("/turn/roll", actionRL, h.RollDice)
	auth.POST("/turn/reroll", actionRL, h.RerollDice)
	auth.POST("/turn/confirm", actionRL, h.ConfirmRoll)
	auth.POST("/games/:code/turn/advance", actionRL, h.AdvanceTurn)
	auth.POST("/games/:code/turn/force-advance", h.ForceAdvanceTurn)

	// Market phase
	auth.POST("/games/:code/market/finish", actionRL, h.FinishMarket)
	auth.POST("/games/:code/market/merchant-finish", actionRL, h.MerchantFinishMarket)
	auth.POST("/games/:code/market/advance-round", actionRL, h.AdvanceRound)

	// Economy
	auth.POST("/player/sell", actionRL, h.SellCrop)
	auth.POST("/player/inventory/add", actionRL, h.AddCrop)
	auth.POST("/player/inventory/remove", actionRL, h.RemoveCrop)
	auth.POST("/games/:code/adjust/resources", h.AdjustResources)
	auth.POST("/games/:code/adjust/bonus-pv", h.AdjustBonusPV)

	// Character abilities
	auth.POST("/player/ability/free-reroll", actionRL, h.UseFreeReroll)
	auth.POST("/player/ability/symbol-swap", actionRL, h.UseSymbolSwap)
	auth.POST("/player/ability/reveal", actionRL, h.UseReveal)

	// Mystery encounters
	auth.POST("/player/mystery/start", actionRL, h.StartMystery)
	auth.POST("/player/mystery/resolve", actionRL, h.ResolveMystery)
	auth.POST("/player/mystery/minigame", actionRL, h.ResolveMinigame)
	auth.POST("/player/mystery/clear-result", h.ClearMysteryResult)

	// Objectives
	auth.POST("/player/objectives/claim", actionRL, h.ClaimObjective)
}
