package domain

import "errors"

var (
	// Game errors
	ErrGameNotFound      = errors.New("game not found")
	ErrGameFull          = errors.New("game is full")
	ErrGameEnded         = errors.New("game has already ended")
	ErrNotEnoughPlayers  = errors.New("not enough players to start")
	ErrNotHost           = errors.New("only the host can perform this action")
	ErrWrongPhase        = errors.New("action not allowed in this phase")
	ErrMarketNotFinished = errors.New("not all players have finished the market phase")

	// Player errors
	ErrPlayerNotFound = errors.New("player not found")
	ErrNotInGame      = errors.New("player is not in this game")

	// Dice errors
	ErrAlreadyRolled  = errors.New("dice already rolled this turn")
	ErrNotRolledYet   = errors.New("dice have not been rolled yet")
	ErrRollConfirmed  = errors.New("roll already confirmed")
	ErrRerollUsed     = errors.New("reroll already used this turn")
	ErrInvalidDie     = errors.New("invalid die index")
	ErrInvalidSymbol  = errors.New("unknown dice symbol")
	ErrWrongCharacter = errors.New("character cannot use this ability")
	ErrSkillUsed      = errors.New("active skill already used this turn")
	ErrNoEnergy       = errors.New("not enough energy")

	// Inventory errors
	ErrUnknownCrop           = errors.New("unknown crop")
	ErrInsufficientInventory = errors.New("not enough crops in inventory")

	// Mystery errors
	ErrNoMysteryBudget   = errors.New("no mystery encounters left this turn")
	ErrNoActiveMystery   = errors.New("no active mystery encounter")
	ErrUnknownChoice     = errors.New("unknown encounter choice")
	ErrWrongEncounterKind = errors.New("encounter kind does not match resolution")

	// Objective errors
	ErrUnknownObjective        = errors.New("unknown objective")
	ErrObjectiveNotActive      = errors.New("objective is not active in this game")
	ErrObjectiveAlreadyClaimed = errors.New("objective already claimed")
)
