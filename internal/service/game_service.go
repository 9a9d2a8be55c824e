package service

import (
	"context"
	cryptorand "crypto/rand"
	"encoding/hex"
	"math/rand"
	"sync"
	"time"

	"granja_glitch/internal/domain"
	"granja_glitch/internal/repository"
)

// GameService is the sole mutator of Game and Player documents. Every public
// operation runs as one atomic read-validate-mutate-write transaction against
// the store; precondition failures abort the transaction and surface as
// domain error values.
type GameService struct {
	store repository.Store

	// rng guarded by mu; injected for reproducible tests
	mu  sync.Mutex
	rng *rand.Rand
}

// NewGameService creates a game service with time-seeded randomness.
func NewGameService(store repository.Store) *GameService {
	return NewGameServiceWithRand(store, rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewGameServiceWithRand creates a game service with the given random source.
func NewGameServiceWithRand(store repository.Store, rng *rand.Rand) *GameService {
	return &GameService{store: store, rng: rng}
}

func (s *GameService) intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(n)
}

func (s *GameService) perm(n int) []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Perm(n)
}

// newGameCode draws a 6-character code uniformly over [A-Z0-9]. Collisions
// are not checked; the space is large enough for concurrently active matches.
func (s *GameService) newGameCode() string {
	buf := make([]byte, domain.GameCodeLength)
	for i := range buf {
		buf[i] = domain.GameCodeChars[s.intn(len(domain.GameCodeChars))]
	}
	return string(buf)
}

// newPlayerID returns a random 16-hex-char document id.
func newPlayerID() string {
	buf := make([]byte, 8)
	if _, err := cryptorand.Read(buf); err != nil {
		// crypto/rand never fails on supported platforms
		panic(err)
	}
	return hex.EncodeToString(buf)
}

// sampleObjectives picks the active subset uniformly without replacement.
func (s *GameService) sampleObjectives() []string {
	perm := s.perm(len(domain.Objectives))
	ids := make([]string, 0, domain.ActiveObjectiveCount)
	for _, idx := range perm[:domain.ActiveObjectiveCount] {
		ids = append(ids, domain.Objectives[idx].ID)
	}
	return ids
}

// CreateGame creates the shared game document and the host's player document
// and seats the host as first turn-holder and round-start player. Returns
// the shareable game code and the host player id.
func (s *GameService) CreateGame(ctx context.Context, hostName string, character domain.Character) (string, string, error) {
	if !domain.ValidCharacter(character) {
		return "", "", domain.ErrWrongCharacter
	}

	code := s.newGameCode()
	hostID := newPlayerID()

	err := s.store.RunTransaction(ctx, func(ctx context.Context, tx repository.Tx) error {
		game := domain.NewGame(code, hostID, s.sampleObjectives())
		game.PlayerIDs = []string{hostID}
		game.CurrentPlayerTurnID = hostID
		game.RoundStartPlayerID = hostID

		if err := tx.PutGame(ctx, game); err != nil {
			return err
		}
		return tx.PutPlayer(ctx, domain.NewPlayer(hostID, code, hostName, character))
	})
	if err != nil {
		return "", "", err
	}
	return code, hostID, nil
}

// JoinGame adds a named player to an existing game by code. If no turn-holder
// is set yet the new player takes the turn (covers joins racing game start).
func (s *GameService) JoinGame(ctx context.Context, code, name string, character domain.Character) (string, error) {
	if !domain.ValidCharacter(character) {
		return "", domain.ErrWrongCharacter
	}

	playerID := newPlayerID()

	err := s.store.RunTransaction(ctx, func(ctx context.Context, tx repository.Tx) error {
		game, err := tx.GetGame(ctx, code)
		if err != nil {
			return err
		}
		if game == nil {
			return domain.ErrGameNotFound
		}
		if game.Ended {
			return domain.ErrGameEnded
		}
		if len(game.PlayerIDs) >= domain.MaxPlayers {
			return domain.ErrGameFull
		}

		game.PlayerIDs = append(game.PlayerIDs, playerID)
		if game.CurrentPlayerTurnID == "" {
			game.CurrentPlayerTurnID = playerID
		}

		if err := tx.PutPlayer(ctx, domain.NewPlayer(playerID, code, name, character)); err != nil {
			return err
		}
		return tx.PutGame(ctx, game)
	})
	if err != nil {
		return "", err
	}
	return playerID, nil
}

// StartGame marks the match started. Host only; needs a playable lobby.
func (s *GameService) StartGame(ctx context.Context, code, callerID string) error {
	return s.store.RunTransaction(ctx, func(ctx context.Context, tx repository.Tx) error {
		game, err := tx.GetGame(ctx, code)
		if err != nil {
			return err
		}
		if game == nil {
			return domain.ErrGameNotFound
		}
		if game.HostID != callerID {
			return domain.ErrNotHost
		}
		if len(game.PlayerIDs) < domain.MinPlayers {
			return domain.ErrNotEnoughPlayers
		}

		game.Started = true
		if game.CurrentPlayerTurnID == "" {
			game.CurrentPlayerTurnID = game.NextAfter("")
		}
		return tx.PutGame(ctx, game)
	})
}

// EndGame marks the match ended. Host only.
func (s *GameService) EndGame(ctx context.Context, code, callerID string) error {
	return s.store.RunTransaction(ctx, func(ctx context.Context, tx repository.Tx) error {
		game, err := tx.GetGame(ctx, code)
		if err != nil {
			return err
		}
		if game == nil {
			return domain.ErrGameNotFound
		}
		if game.HostID != callerID {
			return domain.ErrNotHost
		}
		game.Ended = true
		return tx.PutGame(ctx, game)
	})
}

// DeleteGame removes the game document and every player document of the
// match. Host only; end-of-game cleanup.
func (s *GameService) DeleteGame(ctx context.Context, code, callerID string) error {
	return s.store.RunTransaction(ctx, func(ctx context.Context, tx repository.Tx) error {
		game, err := tx.GetGame(ctx, code)
		if err != nil {
			return err
		}
		if game == nil {
			return domain.ErrGameNotFound
		}
		if game.HostID != callerID {
			return domain.ErrNotHost
		}

		players, err := tx.PlayersByGame(ctx, code)
		if err != nil {
			return err
		}
		for _, p := range players {
			if err := tx.DeletePlayer(ctx, p.ID); err != nil {
				return err
			}
		}
		return tx.DeleteGame(ctx, code)
	})
}

// RemovePlayer drops a player from the match: the player document is deleted
// and the id leaves membership, the finished-sets and the turn pointer. Host
// only.
func (s *GameService) RemovePlayer(ctx context.Context, code, targetID, callerID string) error {
	return s.store.RunTransaction(ctx, func(ctx context.Context, tx repository.Tx) error {
		game, err := tx.GetGame(ctx, code)
		if err != nil {
			return err
		}
		if game == nil {
			return domain.ErrGameNotFound
		}
		if game.HostID != callerID {
			return domain.ErrNotHost
		}
		if !game.IsMember(targetID) {
			return domain.ErrNotInGame
		}

		next := game.NextAfter(targetID)
		if next == targetID {
			next = ""
		}
		game.RemoveMember(targetID)
		if game.CurrentPlayerTurnID == targetID {
			game.CurrentPlayerTurnID = next
		}
		if game.RoundStartPlayerID == targetID {
			game.RoundStartPlayerID = next
		}

		if err := tx.DeletePlayer(ctx, targetID); err != nil {
			return err
		}
		return tx.PutGame(ctx, game)
	})
}

// GameState returns a snapshot of the game document and its players.
func (s *GameService) GameState(ctx context.Context, code string) (*domain.Game, []*domain.Player, error) {
	game, err := s.store.GetGame(ctx, code)
	if err != nil {
		return nil, nil, err
	}
	if game == nil {
		return nil, nil, domain.ErrGameNotFound
	}
	players, err := s.store.PlayersByGame(ctx, code)
	if err != nil {
		return nil, nil, err
	}
	return game, players, nil
}

// PlayerState returns a snapshot of one player document.
func (s *GameService) PlayerState(ctx context.Context, playerID string) (*domain.Player, error) {
	player, err := s.store.GetPlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}
	if player == nil {
		return nil, domain.ErrPlayerNotFound
	}
	return player, nil
}
