package service

import (
	"context"
	"fmt"

	"granja_glitch/internal/domain"
	"granja_glitch/internal/repository"
)

// ClaimResult reports whether an objective claim succeeded and a
// human-readable message either way.
type ClaimResult struct {
	Claimed bool   `json:"claimed"`
	Message string `json:"message"`
}

// ClaimObjective checks the objective's predicate against the caller's
// current state and, if satisfied, permanently appends it to the claimed
// list. Claims are monotonic: once held, repeated calls fail with
// ErrObjectiveAlreadyClaimed and never re-grant the reward.
func (s *GameService) ClaimObjective(ctx context.Context, gameCode, playerID, objectiveID string) (*ClaimResult, error) {
	objective := domain.ObjectiveByID(objectiveID)
	if objective == nil {
		return nil, domain.ErrUnknownObjective
	}

	var result *ClaimResult
	err := s.store.RunTransaction(ctx, func(ctx context.Context, tx repository.Tx) error {
		game, err := tx.GetGame(ctx, gameCode)
		if err != nil {
			return err
		}
		if game == nil {
			return domain.ErrGameNotFound
		}
		if !containsID(game.ActiveObjectives, objectiveID) {
			return domain.ErrObjectiveNotActive
		}

		player, err := tx.GetPlayer(ctx, playerID)
		if err != nil {
			return err
		}
		if player == nil {
			return domain.ErrPlayerNotFound
		}
		if player.HasClaimed(objectiveID) {
			return domain.ErrObjectiveAlreadyClaimed
		}

		if !objective.Satisfied(player) {
			result = &ClaimResult{Claimed: false, Message: progressMessage(objective, player)}
			return nil
		}

		player.ObjectivesClaimed = append(player.ObjectivesClaimed, objectiveID)
		// mirror on the game document for older clients; player list rules
		game.ClaimedObjectivesByPlayer[playerID] = append(game.ClaimedObjectivesByPlayer[playerID], objectiveID)

		if err := tx.PutPlayer(ctx, player); err != nil {
			return err
		}
		if err := tx.PutGame(ctx, game); err != nil {
			return err
		}
		result = &ClaimResult{
			Claimed: true,
			Message: fmt.Sprintf("Objective %q claimed! Worth %d PV at final scoring.", objective.Title, objective.RewardPV),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func progressMessage(o *domain.Objective, p *domain.Player) string {
	if o.Kind == domain.ObjectiveAllDiceEqual {
		return "Not yet: all four dice must show the same symbol."
	}
	return fmt.Sprintf("Not yet: %d/%d toward %q.", o.Progress(p), o.Target, o.Title)
}
