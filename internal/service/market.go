package service

import (
	"context"

	"granja_glitch/internal/domain"
	"granja_glitch/internal/repository"
)

// calculateNewPrice drifts a crop price one step, biased toward the base
// price: +1 with 70% probability below base, 30% above base, 50% at base;
// otherwise -1. Prices never drop below 1.
func (s *GameService) calculateNewPrice(current, base int) int {
	upChance := 50
	if current < base {
		upChance = 70
	} else if current > base {
		upChance = 30
	}

	if s.intn(100) < upChance {
		current++
	} else {
		current--
	}
	if current < 1 {
		current = 1
	}
	return current
}

// pickEvent selects a round event uniformly from the catalog, excluding the
// one-time supply shortage once its sticky flag is set.
func (s *GameService) pickEvent(game *domain.Game) *domain.Event {
	candidates := make([]*domain.Event, 0, len(domain.Events))
	for i := range domain.Events {
		ev := &domain.Events[i]
		if ev.ID == domain.EventSupplyShortageID && game.SupplyCostActive {
			continue
		}
		candidates = append(candidates, ev)
	}
	if len(candidates) == 0 {
		return nil
	}
	return candidates[s.intn(len(candidates))]
}

// FinishMarket marks the caller done with the market phase.
func (s *GameService) FinishMarket(ctx context.Context, gameCode, playerID string) error {
	return s.store.RunTransaction(ctx, func(ctx context.Context, tx repository.Tx) error {
		game, err := tx.GetGame(ctx, gameCode)
		if err != nil {
			return err
		}
		if game == nil {
			return domain.ErrGameNotFound
		}
		if game.Phase != domain.PhaseMarket {
			return domain.ErrWrongPhase
		}
		if !game.IsMember(playerID) {
			return domain.ErrNotInGame
		}
		game.MarkFinishedMarket(playerID)
		return tx.PutGame(ctx, game)
	})
}

// ApplyMerchantBonusAndFinishMarket spends the merchant's active skill to
// boost one crop's price for the current round, then finishes the market
// phase for the caller. Game and player are re-read inside one transaction
// since the effect spans both documents.
func (s *GameService) ApplyMerchantBonusAndFinishMarket(ctx context.Context, gameCode, playerID, cropID string) error {
	return s.store.RunTransaction(ctx, func(ctx context.Context, tx repository.Tx) error {
		game, err := tx.GetGame(ctx, gameCode)
		if err != nil {
			return err
		}
		if game == nil {
			return domain.ErrGameNotFound
		}
		if game.Phase != domain.PhaseMarket {
			return domain.ErrWrongPhase
		}
		if !game.IsMember(playerID) {
			return domain.ErrNotInGame
		}
		if domain.CropByID(cropID) == nil {
			return domain.ErrUnknownCrop
		}

		player, err := tx.GetPlayer(ctx, playerID)
		if err != nil {
			return err
		}
		if player == nil {
			return domain.ErrPlayerNotFound
		}
		if player.Character != domain.CharacterMerchant {
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
		game.TemporaryPriceBoosts[cropID] += domain.MerchantBoostAmount
		game.MarkFinishedMarket(playerID)

		if err := tx.PutPlayer(ctx, player); err != nil {
			return err
		}
		return tx.PutGame(ctx, game)
	})
}

// AdvanceRound closes the market phase and opens the next round: prices
// drift toward base, a random event may trigger, every member's per-round
// state resets, and the round-start player rotates in sorted id order.
// Fails with ErrMarketNotFinished until every member finished the market.
func (s *GameService) AdvanceRound(ctx context.Context, gameCode string) error {
	return s.store.RunTransaction(ctx, func(ctx context.Context, tx repository.Tx) error {
		game, err := tx.GetGame(ctx, gameCode)
		if err != nil {
			return err
		}
		if game == nil {
			return domain.ErrGameNotFound
		}
		if game.Phase != domain.PhaseMarket {
			return domain.ErrWrongPhase
		}
		if !game.AllFinishedMarket() {
			return domain.ErrMarketNotFinished
		}

		for _, crop := range domain.Crops {
			game.CropPrices[crop.ID] = s.calculateNewPrice(game.CropPrices[crop.ID], crop.BasePrice)
		}
		game.TemporaryPriceBoosts = map[string]int{}
		game.PricesHalved = false

		game.LastEvent = ""
		if s.intn(100) < domain.EventChance {
			if ev := s.pickEvent(game); ev != nil {
				game.LastEvent = ev.ID
				switch ev.Effect {
				case domain.EffectSupplyCost:
					game.SupplyCostActive = true
				case domain.EffectHalvePrices:
					game.PricesHalved = true
				}
			}
		}

		players, err := tx.PlayersByGame(ctx, gameCode)
		if err != nil {
			return err
		}
		for _, p := range players {
			p.ResetTurnState()
			if err := tx.PutPlayer(ctx, p); err != nil {
				return err
			}
		}

		game.RoundStartPlayerID = game.NextAfter(game.RoundStartPlayerID)
		game.CurrentPlayerTurnID = game.RoundStartPlayerID
		game.Round++
		game.Phase = domain.PhasePlayerActions
		game.PlayersFinishedMarket = []string{}
		return tx.PutGame(ctx, game)
	})
}
