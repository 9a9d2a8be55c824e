package ws

import (
	"context"
	"encoding/json"
	"sync"

	"granja_glitch/internal/logger"
	"granja_glitch/internal/service"
)

// Hub fans out game state to subscribed clients. One subscription set per
// game code; after every committed mutation the HTTP layer calls
// BroadcastState and every device watching that game receives a fresh
// snapshot.
type Hub struct {
	mu    sync.RWMutex
	games map[string]map[*Client]bool
	svc   *service.GameService
}

func NewHub(svc *service.GameService) *Hub {
	return &Hub{
		games: make(map[string]map[*Client]bool),
		svc:   svc,
	}
}

// Register subscribes a client to its game's updates.
func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	subs, ok := h.games[c.GameCode]
	if !ok {
		subs = make(map[*Client]bool)
		h.games[c.GameCode] = subs
	}
	subs[c] = true
	h.mu.Unlock()

	logger.Debug("ws subscribe", "game", c.GameCode, "player", c.PlayerID)
}

// Unregister removes a client; the game's set is dropped when empty.
func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	if subs, ok := h.games[c.GameCode]; ok {
		delete(subs, c)
		if len(subs) == 0 {
			delete(h.games, c.GameCode)
		}
	}
	h.mu.Unlock()

	logger.Debug("ws unsubscribe", "game", c.GameCode, "player", c.PlayerID)
}

// Subscribers returns the current subscriber count for a game.
func (h *Hub) Subscribers(gameCode string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.games[gameCode])
}

// BroadcastState pushes a fresh game+players snapshot to every subscriber of
// the game. Slow clients are skipped rather than blocking the broadcast.
func (h *Hub) BroadcastState(ctx context.Context, gameCode string) {
	h.mu.RLock()
	count := len(h.games[gameCode])
	h.mu.RUnlock()
	if count == 0 {
		return
	}

	data, err := h.stateMessage(ctx, gameCode)
	if err != nil {
		logger.Error("ws broadcast snapshot failed", "game", gameCode, "error", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.games[gameCode] {
		select {
		case c.Send <- data:
		default:
			logger.Warn("ws send buffer full, dropping update", "game", gameCode, "player", c.PlayerID)
		}
	}
}

// SendState pushes the current snapshot to a single client (initial sync).
func (h *Hub) SendState(ctx context.Context, c *Client) {
	data, err := h.stateMessage(ctx, c.GameCode)
	if err != nil {
		logger.Error("ws initial snapshot failed", "game", c.GameCode, "error", err)
		return
	}
	select {
	case c.Send <- data:
	default:
	}
}

func (h *Hub) stateMessage(ctx context.Context, gameCode string) ([]byte, error) {
	game, players, err := h.svc.GameState(ctx, gameCode)
	if err != nil {
		return nil, err
	}
	return json.Marshal(Message{
		Type:    "state",
		Payload: StatePayload{Game: game, Players: players},
	})
}
