package service

import (
	"context"
	"fmt"
	"strings"

	"granja_glitch/internal/domain"
	"granja_glitch/internal/repository"
)

// rollSymbols draws n independent uniformly-random dice faces.
func (s *GameService) rollSymbols(n int) []domain.Symbol {
	dice := make([]domain.Symbol, n)
	for i := range dice {
		dice[i] = domain.Symbols[s.intn(len(domain.Symbols))]
	}
	return dice
}

// RollDice performs the first roll of a turn (roll phase 0 -> 1).
func (s *GameService) RollDice(ctx context.Context, playerID string) ([]domain.Symbol, error) {
	var dice []domain.Symbol
	err := s.store.RunTransaction(ctx, func(ctx context.Context, tx repository.Tx) error {
		player, err := tx.GetPlayer(ctx, playerID)
		if err != nil {
			return err
		}
		if player == nil {
			return domain.ErrPlayerNotFound
		}
		if player.RollPhase != domain.RollPhaseNotRolled {
			return domain.ErrAlreadyRolled
		}

		dice = s.rollSymbols(domain.DiceCount)
		player.Dice = dice
		player.RollPhase = domain.RollPhaseRolled
		player.HasUsedStandardReroll = false
		player.HasUsedFreeReroll = false
		player.HasUsedActiveSkill = false
		return tx.PutPlayer(ctx, player)
	})
	if err != nil {
		return nil, err
	}
	return dice, nil
}

// RerollDice re-draws every die whose index is not in kept. Dice are kept by
// position, not by value. Usable at most once per turn.
func (s *GameService) RerollDice(ctx context.Context, playerID string, kept []int) ([]domain.Symbol, error) {
	var dice []domain.Symbol
	err := s.store.RunTransaction(ctx, func(ctx context.Context, tx repository.Tx) error {
		player, err := tx.GetPlayer(ctx, playerID)
		if err != nil {
			return err
		}
		if player == nil {
			return domain.ErrPlayerNotFound
		}
		if err := checkRerollable(player); err != nil {
			return err
		}
		if player.HasUsedStandardReroll {
			return domain.ErrRerollUsed
		}

		if err := rerollExcept(s, player, kept); err != nil {
			return err
		}
		player.HasUsedStandardReroll = true
		dice = player.Dice
		return tx.PutPlayer(ctx, player)
	})
	if err != nil {
		return nil, err
	}
	return dice, nil
}

func checkRerollable(p *domain.Player) error {
	switch p.RollPhase {
	case domain.RollPhaseNotRolled:
		return domain.ErrNotRolledYet
	case domain.RollPhaseConfirmed:
		return domain.ErrRollConfirmed
	}
	return nil
}

// rerollExcept redraws the dice whose positions are absent from kept.
func rerollExcept(s *GameService, p *domain.Player, kept []int) error {
	keep := make(map[int]bool, len(kept))
	for _, idx := range kept {
		if idx < 0 || idx >= len(p.Dice) {
			return domain.ErrInvalidDie
		}
		keep[idx] = true
	}
	for i := range p.Dice {
		if !keep[i] {
			p.Dice[i] = domain.Symbols[s.intn(len(domain.Symbols))]
		}
	}
	return nil
}

// DiceEffects summarizes what a confirmed roll granted.
type DiceEffects struct {
	Money   int    `json:"money"`
	Energy  int    `json:"energy"`
	Plants  int    `json:"plants"`  // to resolve manually at the table
	Growth  int    `json:"growth"`  // to resolve manually at the table
	Mystery int    `json:"mystery"` // encounter budget granted
	Summary string `json:"summary"`
}

// ApplyDiceEffects confirms the roll (phase 1 -> 2): coin and energy symbols
// are credited atomically, mystery symbols fill the encounter budget, and
// plant/growth symbols are only counted for the table.
func (s *GameService) ApplyDiceEffects(ctx context.Context, playerID string) (*DiceEffects, error) {
	var effects *DiceEffects
	err := s.store.RunTransaction(ctx, func(ctx context.Context, tx repository.Tx) error {
		player, err := tx.GetPlayer(ctx, playerID)
		if err != nil {
			return err
		}
		if player == nil {
			return domain.ErrPlayerNotFound
		}
		if err := checkRerollable(player); err != nil {
			return err
		}

		effects = tallyDice(player.Dice)
		player.Money += effects.Money
		player.Energy += effects.Energy
		player.MysteryUsesLeft += effects.Mystery
		player.RollPhase = domain.RollPhaseConfirmed
		return tx.PutPlayer(ctx, player)
	})
	if err != nil {
		return nil, err
	}
	return effects, nil
}

func tallyDice(dice []domain.Symbol) *DiceEffects {
	e := &DiceEffects{}
	for _, sym := range dice {
		switch sym {
		case domain.SymbolCoin:
			e.Money += domain.CoinMoneyValue
		case domain.SymbolEnergy:
			e.Energy += domain.EnergySymbolValue
		case domain.SymbolPlant:
			e.Plants++
		case domain.SymbolGrowth:
			e.Growth++
		case domain.SymbolMystery:
			e.Mystery++
		}
	}

	var parts []string
	if e.Money > 0 {
		parts = append(parts, fmt.Sprintf("+%d money", e.Money))
	}
	if e.Energy > 0 {
		parts = append(parts, fmt.Sprintf("+%d energy", e.Energy))
	}
	if e.Plants > 0 {
		parts = append(parts, fmt.Sprintf("%d planting(s) to resolve", e.Plants))
	}
	if e.Growth > 0 {
		parts = append(parts, fmt.Sprintf("%d growth to resolve", e.Growth))
	}
	if e.Mystery > 0 {
		parts = append(parts, fmt.Sprintf("%d mystery encounter(s)", e.Mystery))
	}
	if len(parts) == 0 {
		e.Summary = "Nothing to apply this turn."
	} else {
		e.Summary = strings.Join(parts, ", ")
	}
	return e
}

// AdvanceTurn marks the caller done with their action turn. The caller's
// ephemeral dice and flags are cleared in the same transaction. When the
// finished-set reaches full membership the game switches to the market
// phase; otherwise the turn pointer moves to the next member in
// lexicographic id order.
func (s *GameService) AdvanceTurn(ctx context.Context, gameCode, playerID string) error {
	return s.store.RunTransaction(ctx, func(ctx context.Context, tx repository.Tx) error {
		game, err := tx.GetGame(ctx, gameCode)
		if err != nil {
			return err
		}
		if game == nil {
			return domain.ErrGameNotFound
		}
		if game.Phase != domain.PhasePlayerActions {
			return domain.ErrWrongPhase
		}
		if !game.IsMember(playerID) {
			return domain.ErrNotInGame
		}
		return s.advanceFrom(ctx, tx, game, playerID)
	})
}

// ForceAdvanceTurn applies the same transition to whoever currently holds
// the turn. Host-only escalation for stalled turns.
func (s *GameService) ForceAdvanceTurn(ctx context.Context, gameCode, callerID string) error {
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
		if game.Phase != domain.PhasePlayerActions || game.CurrentPlayerTurnID == "" {
			return domain.ErrWrongPhase
		}
		return s.advanceFrom(ctx, tx, game, game.CurrentPlayerTurnID)
	})
}

// advanceFrom finishes playerID's turn: cleanup-before-handoff, then either
// the phase transition or the handoff to the next unfinished member.
func (s *GameService) advanceFrom(ctx context.Context, tx repository.Tx, game *domain.Game, playerID string) error {
	if prev, err := tx.GetPlayer(ctx, playerID); err != nil {
		return err
	} else if prev != nil {
		prev.ResetTurnState()
		if err := tx.PutPlayer(ctx, prev); err != nil {
			return err
		}
	}

	game.MarkFinishedTurn(playerID)

	if game.AllFinishedTurn() {
		game.Phase = domain.PhaseMarket
		game.PlayersFinishedTurn = []string{}
		game.CurrentPlayerTurnID = ""
		return tx.PutGame(ctx, game)
	}

	next := game.NextAfter(playerID)
	for i := 0; i < len(game.PlayerIDs); i++ {
		if !containsID(game.PlayersFinishedTurn, next) {
			break
		}
		next = game.NextAfter(next)
	}
	game.CurrentPlayerTurnID = next

	nextPlayer, err := tx.GetPlayer(ctx, next)
	if err != nil {
		return err
	}
	if nextPlayer != nil {
		nextPlayer.ResetTurnState()
		if err := tx.PutPlayer(ctx, nextPlayer); err != nil {
			return err
		}
	}
	return tx.PutGame(ctx, game)
}

func containsID(list []string, id string) bool {
	for _, v := range list {
		if v == id {
			return true
		}
	}
	return false
}
