package repository

import (
	"context"

	"granja_glitch/internal/domain"
)

// Tx is the view of the document store inside one atomic transaction. Reads
// reflect the latest committed state at the moment of the attempt; writes
// become visible together on commit or not at all.
//
// Get methods return (nil, nil) when the document does not exist, so callers
// can map absence to domain errors themselves.
type Tx interface {
	GetGame(ctx context.Context, code string) (*domain.Game, error)
	PutGame(ctx context.Context, g *domain.Game) error
	DeleteGame(ctx context.Context, code string) error

	GetPlayer(ctx context.Context, id string) (*domain.Player, error)
	PutPlayer(ctx context.Context, p *domain.Player) error
	DeletePlayer(ctx context.Context, id string) error
	PlayersByGame(ctx context.Context, gameCode string) ([]*domain.Player, error)
}

// Store is the document store contract: keyed CRUD on the games and players
// collections plus an atomic read-then-conditional-write transaction. The
// plain reads serve snapshot queries outside any transaction.
type Store interface {
	RunTransaction(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error

	GetGame(ctx context.Context, code string) (*domain.Game, error)
	GetPlayer(ctx context.Context, id string) (*domain.Player, error)
	PlayersByGame(ctx context.Context, gameCode string) ([]*domain.Player, error)
}
