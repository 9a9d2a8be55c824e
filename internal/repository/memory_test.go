package repository

import (
	"context"
	"errors"
	"testing"

	"granja_glitch/internal/domain"
)

func TestMemStoreTransactionCommit(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()

	err := store.RunTransaction(ctx, func(ctx context.Context, tx Tx) error {
		if err := tx.PutGame(ctx, domain.NewGame("AAAAAA", "host", nil)); err != nil {
			return err
		}
		return tx.PutPlayer(ctx, domain.NewPlayer("host", "AAAAAA", "Ana", domain.CharacterOracle))
	})
	if err != nil {
		t.Fatalf("transaction failed: %v", err)
	}

	game, err := store.GetGame(ctx, "AAAAAA")
	if err != nil || game == nil {
		t.Fatalf("GetGame after commit = (%v, %v); want game", game, err)
	}
	player, err := store.GetPlayer(ctx, "host")
	if err != nil || player == nil {
		t.Fatalf("GetPlayer after commit = (%v, %v); want player", player, err)
	}
}

func TestMemStoreTransactionRollback(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()

	seedGame(t, store, "AAAAAA", "host")

	boom := errors.New("boom")
	err := store.RunTransaction(ctx, func(ctx context.Context, tx Tx) error {
		game, _ := tx.GetGame(ctx, "AAAAAA")
		game.Round = 99
		if err := tx.PutGame(ctx, game); err != nil {
			return err
		}
		if err := tx.PutPlayer(ctx, domain.NewPlayer("ghost", "AAAAAA", "Ghost", domain.CharacterGambler)); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("transaction error = %v; want boom", err)
	}

	game, _ := store.GetGame(ctx, "AAAAAA")
	if game.Round == 99 {
		t.Fatal("failed transaction mutated the game document")
	}
	player, _ := store.GetPlayer(ctx, "ghost")
	if player != nil {
		t.Fatal("failed transaction left a partial player write")
	}
}

func TestMemStoreMissingDocsAreNil(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()

	if g, err := store.GetGame(ctx, "NOPE"); err != nil || g != nil {
		t.Fatalf("GetGame(missing) = (%v, %v); want (nil, nil)", g, err)
	}
	if p, err := store.GetPlayer(ctx, "nope"); err != nil || p != nil {
		t.Fatalf("GetPlayer(missing) = (%v, %v); want (nil, nil)", p, err)
	}
}

func TestMemStorePlayersByGameSorted(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()

	seedGame(t, store, "AAAAAA", "bbb")
	err := store.RunTransaction(ctx, func(ctx context.Context, tx Tx) error {
		for _, id := range []string{"ccc", "aaa"} {
			if err := tx.PutPlayer(ctx, domain.NewPlayer(id, "AAAAAA", id, domain.CharacterOracle)); err != nil {
				return err
			}
		}
		return tx.PutPlayer(ctx, domain.NewPlayer("zzz", "OTHER1", "outsider", domain.CharacterOracle))
	})
	if err != nil {
		t.Fatalf("seed players: %v", err)
	}

	players, err := store.PlayersByGame(ctx, "AAAAAA")
	if err != nil {
		t.Fatalf("PlayersByGame: %v", err)
	}
	want := []string{"aaa", "bbb", "ccc"}
	if len(players) != len(want) {
		t.Fatalf("got %d players; want %d", len(players), len(want))
	}
	for i, id := range want {
		if players[i].ID != id {
			t.Fatalf("players[%d] = %s; want %s", i, players[i].ID, id)
		}
	}
}

func TestMemStoreReadsAreCopies(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()
	seedGame(t, store, "AAAAAA", "host")

	game, _ := store.GetGame(ctx, "AAAAAA")
	game.Round = 42

	again, _ := store.GetGame(ctx, "AAAAAA")
	if again.Round == 42 {
		t.Fatal("mutating a read snapshot leaked into the store")
	}
}

func seedGame(t *testing.T, store *MemStore, code, hostID string) {
	t.Helper()
	err := store.RunTransaction(context.Background(), func(ctx context.Context, tx Tx) error {
		game := domain.NewGame(code, hostID, nil)
		game.PlayerIDs = []string{hostID}
		if err := tx.PutGame(ctx, game); err != nil {
			return err
		}
		return tx.PutPlayer(ctx, domain.NewPlayer(hostID, code, "host", domain.CharacterMerchant))
	})
	if err != nil {
		t.Fatalf("seed game: %v", err)
	}
}
