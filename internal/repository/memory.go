package repository

import (
	"context"
	"sort"
	"sync"

	"granja_glitch/internal/domain"
)

// MemStore is a single-node, in-process document store with the same
// transaction contract as PostgresStore. One mutex serializes transactions,
// and every transaction mutates deep copies that replace the base state only
// on success, so a failed transaction leaves no partial writes.
type MemStore struct {
	mu      sync.Mutex
	games   map[string]*domain.Game
	players map[string]*domain.Player
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{
		games:   make(map[string]*domain.Game),
		players: make(map[string]*domain.Player),
	}
}

func (s *MemStore) RunTransaction(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &memTx{
		games:   make(map[string]*domain.Game, len(s.games)),
		players: make(map[string]*domain.Player, len(s.players)),
	}
	for k, v := range s.games {
		tx.games[k] = v.Clone()
	}
	for k, v := range s.players {
		tx.players[k] = v.Clone()
	}

	if err := fn(ctx, tx); err != nil {
		return err
	}

	s.games = tx.games
	s.players = tx.players
	return nil
}

func (s *MemStore) GetGame(ctx context.Context, code string) (*domain.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if g, ok := s.games[code]; ok {
		return g.Clone(), nil
	}
	return nil, nil
}

func (s *MemStore) GetPlayer(ctx context.Context, id string) (*domain.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p, ok := s.players[id]; ok {
		return p.Clone(), nil
	}
	return nil, nil
}

func (s *MemStore) PlayersByGame(ctx context.Context, gameCode string) ([]*domain.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return playersOf(s.players, gameCode), nil
}

// memTx operates on the transaction's private copy of the store.
type memTx struct {
	games   map[string]*domain.Game
	players map[string]*domain.Player
}

func (t *memTx) GetGame(ctx context.Context, code string) (*domain.Game, error) {
	if g, ok := t.games[code]; ok {
		return g, nil
	}
	return nil, nil
}

func (t *memTx) PutGame(ctx context.Context, g *domain.Game) error {
	t.games[g.Code] = g
	return nil
}

func (t *memTx) DeleteGame(ctx context.Context, code string) error {
	delete(t.games, code)
	return nil
}

func (t *memTx) GetPlayer(ctx context.Context, id string) (*domain.Player, error) {
	if p, ok := t.players[id]; ok {
		return p, nil
	}
	return nil, nil
}

func (t *memTx) PutPlayer(ctx context.Context, p *domain.Player) error {
	t.players[p.ID] = p
	return nil
}

func (t *memTx) DeletePlayer(ctx context.Context, id string) error {
	delete(t.players, id)
	return nil
}

func (t *memTx) PlayersByGame(ctx context.Context, gameCode string) ([]*domain.Player, error) {
	return playersOf(t.players, gameCode), nil
}

func playersOf(players map[string]*domain.Player, gameCode string) []*domain.Player {
	var res []*domain.Player
	for _, p := range players {
		if p.GameCode == gameCode {
			res = append(res, p.Clone())
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ID < res[j].ID })
	return res
}
