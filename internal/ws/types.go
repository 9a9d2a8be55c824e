package ws

import "granja_glitch/internal/domain"

// Message is the envelope pushed to subscribed clients.
type Message struct {
	Type    string `json:"type"`
	Payload any    `json:"payload,omitempty"`
}

// StatePayload carries a full snapshot of a game and its players, pushed on
// every committed mutation.
type StatePayload struct {
	Game    *domain.Game     `json:"game"`
	Players []*domain.Player `json:"players"`
}
