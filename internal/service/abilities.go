package service

import (
	"context"

	"granja_glitch/internal/domain"
	"granja_glitch/internal/repository"
)

// Character abilities re-validate archetype, energy and the per-turn guard
// flag inside their own transaction before touching any state. The
// merchant's ability lives in market.go since it writes the shared game
// document.

// UseFreeReroll is the gambler's skill: one positional reroll per turn with
// no energy cost, tracked by its own one-shot flag.
func (s *GameService) UseFreeReroll(ctx context.Context, playerID string, kept []int) ([]domain.Symbol, error) {
	var dice []domain.Symbol
	err := s.store.RunTransaction(ctx, func(ctx context.Context, tx repository.Tx) error {
		player, err := tx.GetPlayer(ctx, playerID)
		if err != nil {
			return err
		}
		if player == nil {
			return domain.ErrPlayerNotFound
		}
		if player.Character != domain.CharacterGambler {
			return domain.ErrWrongCharacter
		}
		if err := checkRerollable(player); err != nil {
			return err
		}
		if player.HasUsedFreeReroll {
			return domain.ErrRerollUsed
		}

		if err := rerollExcept(s, player, kept); err != nil {
			return err
		}
		player.HasUsedFreeReroll = true
		dice = player.Dice
		return tx.PutPlayer(ctx, player)
	})
	if err != nil {
		return nil, err
	}
	return dice, nil
}

// UseSymbolSwap is the engineer's skill: pay energy to set one die to any
// symbol.
func (s *GameService) UseSymbolSwap(ctx context.Context, playerID string, dieIndex int, symbol domain.Symbol) ([]domain.Symbol, error) {
	if !domain.ValidSymbol(symbol) {
		return nil, domain.ErrInvalidSymbol
	}

	var dice []domain.Symbol
	err := s.store.RunTransaction(ctx, func(ctx context.Context, tx repository.Tx) error {
		player, err := tx.GetPlayer(ctx, playerID)
		if err != nil {
			return err
		}
		if player == nil {
			return domain.ErrPlayerNotFound
		}
		if player.Character != domain.CharacterEngineer {
			return domain.ErrWrongCharacter
		}
		if err := checkRerollable(player); err != nil {
			return err
		}
		if player.HasUsedActiveSkill {
			return domain.ErrSkillUsed
		}
		if player.Energy < domain.AbilityEnergyCost {
			return domain.ErrNoEnergy
		}
		if dieIndex < 0 || dieIndex >= len(player.Dice) {
			return domain.ErrInvalidDie
		}

		player.Dice[dieIndex] = symbol
		player.Energy -= domain.AbilityEnergyCost
		player.HasUsedActiveSkill = true
		dice = player.Dice
		return tx.PutPlayer(ctx, player)
	})
	if err != nil {
		return nil, err
	}
	return dice, nil
}

// UseReveal is the oracle's skill: the reveal itself happens at the table,
// the server only consumes energy and the per-turn guard.
func (s *GameService) UseReveal(ctx context.Context, playerID string) error {
	return s.store.RunTransaction(ctx, func(ctx context.Context, tx repository.Tx) error {
		player, err := tx.GetPlayer(ctx, playerID)
		if err != nil {
			return err
		}
		if player == nil {
			return domain.ErrPlayerNotFound
		}
		if player.Character != domain.CharacterOracle {
			return domain.ErrWrongCharacter
		}
		if player.HasUsedActiveSkill {
			return domain.ErrSkillUsed
		}
		if player.Energy < domain.AbilityEnergyCost {
			return domain.ErrNoEnergy
		}

		player.Energy -= domain.AbilityEnergyCost
		player.HasUsedActiveSkill = true
		return tx.PutPlayer(ctx, player)
	})
}
