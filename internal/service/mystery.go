package service

import (
	"context"

	"granja_glitch/internal/domain"
	"granja_glitch/internal/repository"
)

// StartMysteryEncounter consumes one unit of the per-turn encounter budget
// (skipped in single-device mode) and activates a uniformly drawn encounter.
func (s *GameService) StartMysteryEncounter(ctx context.Context, playerID string, singleDevice bool) (*domain.Encounter, error) {
	var encounter *domain.Encounter
	err := s.store.RunTransaction(ctx, func(ctx context.Context, tx repository.Tx) error {
		player, err := tx.GetPlayer(ctx, playerID)
		if err != nil {
			return err
		}
		if player == nil {
			return domain.ErrPlayerNotFound
		}
		if !singleDevice {
			if player.MysteryUsesLeft <= 0 {
				return domain.ErrNoMysteryBudget
			}
			player.MysteryUsesLeft--
		}

		encounter = &domain.Encounters[s.intn(len(domain.Encounters))]
		player.ActiveMysteryID = encounter.ID
		player.LastMysteryResult = ""
		return tx.PutPlayer(ctx, player)
	})
	if err != nil {
		return nil, err
	}
	return encounter, nil
}

// pickWeighted draws an outcome with probability weight/sum(weights). Ties
// at band edges go to the first outcome whose cumulative weight exceeds the
// draw point.
func (s *GameService) pickWeighted(outcomes []domain.EncounterOutcome) *domain.EncounterOutcome {
	total := 0
	for _, o := range outcomes {
		total += o.Weight
	}
	if total <= 0 {
		return nil
	}
	draw := s.intn(total)
	acc := 0
	for i := range outcomes {
		acc += outcomes[i].Weight
		if draw < acc {
			return &outcomes[i]
		}
	}
	return &outcomes[len(outcomes)-1]
}

// ResolveMysteryOutcome resolves the active encounter: decision encounters
// look up the outcome bound to choiceID, random encounters perform a
// weighted draw. The outcome's deltas apply atomically and its description
// becomes the one-shot result.
func (s *GameService) ResolveMysteryOutcome(ctx context.Context, playerID, choiceID string) (*domain.EncounterOutcome, error) {
	var outcome *domain.EncounterOutcome
	err := s.store.RunTransaction(ctx, func(ctx context.Context, tx repository.Tx) error {
		player, err := tx.GetPlayer(ctx, playerID)
		if err != nil {
			return err
		}
		if player == nil {
			return domain.ErrPlayerNotFound
		}
		if player.ActiveMysteryID == "" {
			return domain.ErrNoActiveMystery
		}

		encounter := domain.EncounterByID(player.ActiveMysteryID)
		if encounter == nil {
			// stored id no longer in the catalog: clear instead of crash
			player.ActiveMysteryID = ""
			if putErr := tx.PutPlayer(ctx, player); putErr != nil {
				return putErr
			}
			return domain.ErrNoActiveMystery
		}

		switch encounter.Kind {
		case domain.EncounterDecision:
			for i := range encounter.Choices {
				if encounter.Choices[i].ID == choiceID {
					outcome = &encounter.Choices[i].Outcome
					break
				}
			}
			if outcome == nil {
				return domain.ErrUnknownChoice
			}
		case domain.EncounterRandom:
			outcome = s.pickWeighted(encounter.Outcomes)
			if outcome == nil {
				return domain.ErrWrongEncounterKind
			}
		default:
			return domain.ErrWrongEncounterKind
		}

		applyOutcome(player, outcome)
		return tx.PutPlayer(ctx, player)
	})
	if err != nil {
		return nil, err
	}
	return outcome, nil
}

// ResolveMinigameOutcome resolves a minigame encounter by the success flag
// reported from the client-side timing mechanic.
func (s *GameService) ResolveMinigameOutcome(ctx context.Context, playerID string, wasSuccessful bool) (*domain.EncounterOutcome, error) {
	var outcome *domain.EncounterOutcome
	err := s.store.RunTransaction(ctx, func(ctx context.Context, tx repository.Tx) error {
		player, err := tx.GetPlayer(ctx, playerID)
		if err != nil {
			return err
		}
		if player == nil {
			return domain.ErrPlayerNotFound
		}
		if player.ActiveMysteryID == "" {
			return domain.ErrNoActiveMystery
		}

		encounter := domain.EncounterByID(player.ActiveMysteryID)
		if encounter == nil {
			player.ActiveMysteryID = ""
			if putErr := tx.PutPlayer(ctx, player); putErr != nil {
				return putErr
			}
			return domain.ErrNoActiveMystery
		}
		if encounter.Kind != domain.EncounterMinigame {
			return domain.ErrWrongEncounterKind
		}

		if wasSuccessful {
			outcome = encounter.Success
		} else {
			outcome = encounter.Failure
		}
		applyOutcome(player, outcome)
		return tx.PutPlayer(ctx, player)
	})
	if err != nil {
		return nil, err
	}
	return outcome, nil
}

// ClearMysteryResult clears the one-shot result so the dialog shows exactly
// once per resolution. Idempotent.
func (s *GameService) ClearMysteryResult(ctx context.Context, playerID string) error {
	return s.store.RunTransaction(ctx, func(ctx context.Context, tx repository.Tx) error {
		player, err := tx.GetPlayer(ctx, playerID)
		if err != nil {
			return err
		}
		if player == nil {
			return domain.ErrPlayerNotFound
		}
		player.LastMysteryResult = ""
		return tx.PutPlayer(ctx, player)
	})
}

func applyOutcome(p *domain.Player, o *domain.EncounterOutcome) {
	if o == nil {
		p.ActiveMysteryID = ""
		return
	}
	p.Money += o.Money
	p.Energy += o.Energy
	p.LastMysteryResult = o.Description
	p.ActiveMysteryID = ""
}
