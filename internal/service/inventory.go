package service

import (
	"context"

	"granja_glitch/internal/domain"
	"granja_glitch/internal/repository"
)

// SellCrop sells qty units of a crop at the current effective price and
// credits the proceeds. Fails without partial writes when the held quantity
// is insufficient. Reads game and player in one transaction because the
// price lives on the shared game document.
func (s *GameService) SellCrop(ctx context.Context, gameCode, playerID, cropID string, qty int) (int, error) {
	if domain.CropByID(cropID) == nil {
		return 0, domain.ErrUnknownCrop
	}
	if qty <= 0 {
		return 0, domain.ErrInsufficientInventory
	}

	var earned int
	err := s.store.RunTransaction(ctx, func(ctx context.Context, tx repository.Tx) error {
		game, err := tx.GetGame(ctx, gameCode)
		if err != nil {
			return err
		}
		if game == nil {
			return domain.ErrGameNotFound
		}
		player, err := tx.GetPlayer(ctx, playerID)
		if err != nil {
			return err
		}
		if player == nil {
			return domain.ErrPlayerNotFound
		}

		if !player.RemoveCrop(cropID, qty) {
			return domain.ErrInsufficientInventory
		}
		earned = qty * game.EffectivePrice(cropID)
		player.Money += earned
		return tx.PutPlayer(ctx, player)
	})
	if err != nil {
		return 0, err
	}
	return earned, nil
}

// AddCropToInventory upserts qty units onto the player's crop line.
func (s *GameService) AddCropToInventory(ctx context.Context, playerID, cropID string, qty int) error {
	if domain.CropByID(cropID) == nil {
		return domain.ErrUnknownCrop
	}
	if qty <= 0 {
		return domain.ErrInsufficientInventory
	}
	return s.store.RunTransaction(ctx, func(ctx context.Context, tx repository.Tx) error {
		player, err := tx.GetPlayer(ctx, playerID)
		if err != nil {
			return err
		}
		if player == nil {
			return domain.ErrPlayerNotFound
		}
		player.AddCrop(cropID, qty)
		return tx.PutPlayer(ctx, player)
	})
}

// RemoveCropFromInventory decrements the player's crop line, pruning it at
// zero. Fails if the held quantity is insufficient.
func (s *GameService) RemoveCropFromInventory(ctx context.Context, playerID, cropID string, qty int) error {
	if domain.CropByID(cropID) == nil {
		return domain.ErrUnknownCrop
	}
	if qty <= 0 {
		return domain.ErrInsufficientInventory
	}
	return s.store.RunTransaction(ctx, func(ctx context.Context, tx repository.Tx) error {
		player, err := tx.GetPlayer(ctx, playerID)
		if err != nil {
			return err
		}
		if player == nil {
			return domain.ErrPlayerNotFound
		}
		if !player.RemoveCrop(cropID, qty) {
			return domain.ErrInsufficientInventory
		}
		return tx.PutPlayer(ctx, player)
	})
}

// AdjustPlayerResources applies unconditional money/energy deltas to a
// player. Host-issued manual correction; no floor checks.
func (s *GameService) AdjustPlayerResources(ctx context.Context, gameCode, callerID, targetID string, moneyDelta, energyDelta int) error {
	return s.hostAdjust(ctx, gameCode, callerID, targetID, func(p *domain.Player) {
		p.Money += moneyDelta
		p.Energy += energyDelta
	})
}

// AdjustManualBonusPV applies a delta to the player's manual scoring
// correction. Host-issued.
func (s *GameService) AdjustManualBonusPV(ctx context.Context, gameCode, callerID, targetID string, delta int) error {
	return s.hostAdjust(ctx, gameCode, callerID, targetID, func(p *domain.Player) {
		p.ManualBonusPV += delta
	})
}

func (s *GameService) hostAdjust(ctx context.Context, gameCode, callerID, targetID string, mutate func(*domain.Player)) error {
	return s.store.RunTransaction(ctx, func(ctx context.Context, tx repository.Tx) error {
		game, err := tx.GetGame(ctx, gameCode)
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

		player, err := tx.GetPlayer(ctx, targetID)
		if err != nil {
			return err
		}
		if player == nil {
			return domain.ErrPlayerNotFound
		}
		mutate(player)
		return tx.PutPlayer(ctx, player)
	})
}
