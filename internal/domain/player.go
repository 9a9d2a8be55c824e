package domain

import "time"

// Player is the per-participant document, cross-referenced to a game by code.
type Player struct {
	ID        string    `json:"id"`
	GameCode  string    `json:"gameCode"`
	Name      string    `json:"name"`
	Character Character `json:"character"`

	Money  int `json:"money"`
	Energy int `json:"energy"` // glitch energy, spent on abilities

	// Harvested-but-unsold crops, crop id -> quantity. Zero lines are pruned.
	Inventory map[string]int `json:"inventory"`

	// Per-turn ephemeral state
	Dice                  []Symbol `json:"dice"`
	RollPhase             int      `json:"rollPhase"` // 0 not rolled, 1 rolled, 2 confirmed
	HasUsedStandardReroll bool     `json:"hasUsedStandardReroll"`
	HasUsedFreeReroll     bool     `json:"hasUsedFreeReroll"`
	HasUsedActiveSkill    bool     `json:"hasUsedActiveSkill"`

	// Mystery encounter sub-state
	MysteryUsesLeft   int    `json:"mysteryUsesLeft"`
	ActiveMysteryID   string `json:"activeMysteryId"`   // empty when idle
	LastMysteryResult string `json:"lastMysteryResult"` // one-shot result text

	ObjectivesClaimed []string `json:"objectivesClaimed"`
	ManualBonusPV     int      `json:"manualBonusPv"` // host-editable correction

	CreatedAt time.Time `json:"createdAt"`
}

const (
	RollPhaseNotRolled = 0
	RollPhaseRolled    = 1
	RollPhaseConfirmed = 2

	StartingMoney  = 5
	StartingEnergy = 1
)

// NewPlayer creates a player document joining the given game.
func NewPlayer(id, gameCode, name string, character Character) *Player {
	return &Player{
		ID:                id,
		GameCode:          gameCode,
		Name:              name,
		Character:         character,
		Money:             StartingMoney,
		Energy:            StartingEnergy,
		Inventory:         map[string]int{},
		ObjectivesClaimed: []string{},
		CreatedAt:         time.Now(),
	}
}

// ResetTurnState clears the per-turn ephemeral fields: dice, roll phase,
// one-shot flags and the mystery budget.
func (p *Player) ResetTurnState() {
	p.Dice = nil
	p.RollPhase = RollPhaseNotRolled
	p.HasUsedStandardReroll = false
	p.HasUsedFreeReroll = false
	p.HasUsedActiveSkill = false
	p.MysteryUsesLeft = 0
	p.ActiveMysteryID = ""
}

// HasClaimed reports whether the player already claimed the objective.
func (p *Player) HasClaimed(objectiveID string) bool {
	for _, id := range p.ObjectivesClaimed {
		if id == objectiveID {
			return true
		}
	}
	return false
}

// TotalCrops returns the sum of all inventory quantities.
func (p *Player) TotalCrops() int {
	total := 0
	for _, qty := range p.Inventory {
		total += qty
	}
	return total
}

// AddCrop upserts quantity for a crop line.
func (p *Player) AddCrop(cropID string, qty int) {
	if p.Inventory == nil {
		p.Inventory = map[string]int{}
	}
	p.Inventory[cropID] += qty
}

// RemoveCrop decrements a crop line, pruning it at zero. Returns false if the
// held quantity is insufficient; inventory is left unchanged in that case.
func (p *Player) RemoveCrop(cropID string, qty int) bool {
	held := p.Inventory[cropID]
	if qty > held {
		return false
	}
	if held == qty {
		delete(p.Inventory, cropID)
	} else {
		p.Inventory[cropID] = held - qty
	}
	return true
}

// AllDiceEqual reports whether the current roll shows four identical symbols.
func (p *Player) AllDiceEqual() bool {
	if len(p.Dice) != DiceCount {
		return false
	}
	for _, s := range p.Dice[1:] {
		if s != p.Dice[0] {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of the player document.
func (p *Player) Clone() *Player {
	cp := *p
	cp.Inventory = copyIntMap(p.Inventory)
	cp.Dice = append([]Symbol(nil), p.Dice...)
	cp.ObjectivesClaimed = append([]string(nil), p.ObjectivesClaimed...)
	return &cp
}
