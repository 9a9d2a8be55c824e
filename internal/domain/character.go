package domain

// Character is the chosen archetype, keyed by string tag in the stored
// document. Ability dispatch matches exhaustively on this closed set.
type Character string

const (
	CharacterGambler  Character = "gambler"  // free positional reroll, no energy cost
	CharacterEngineer Character = "engineer" // pays energy to substitute one symbol
	CharacterOracle   Character = "oracle"   // reveal skill, consumes energy only
	CharacterMerchant Character = "merchant" // market price boost on the shared game
)

// AbilityEnergyCost is the energy price of every paid active skill.
const AbilityEnergyCost = 1

// MerchantBoostAmount is added to one crop's price for the current round.
const MerchantBoostAmount = 2

// CharacterInfo describes an archetype for catalog listings.
type CharacterInfo struct {
	ID          Character `json:"id"`
	Name        string    `json:"name"`
	AbilityName string    `json:"abilityName"`
	Description string    `json:"description"`
	EnergyCost  int       `json:"energyCost"`
}

// Characters is the static archetype catalog.
var Characters = []CharacterInfo{
	{
		ID:          CharacterGambler,
		Name:        "La Tahúr",
		AbilityName: "Segunda Mano",
		Description: "Once per turn, reroll any of your dice for free.",
		EnergyCost:  0,
	},
	{
		ID:          CharacterEngineer,
		Name:        "El Ingeniero",
		AbilityName: "Parche Rápido",
		Description: "Spend 1 energy to set one die to any symbol.",
		EnergyCost:  AbilityEnergyCost,
	},
	{
		ID:          CharacterOracle,
		Name:        "La Vidente",
		AbilityName: "Ojo del Bug",
		Description: "Spend 1 energy to peek at the next event (revealed at the table).",
		EnergyCost:  AbilityEnergyCost,
	},
	{
		ID:          CharacterMerchant,
		Name:        "El Mercader",
		AbilityName: "Regateo",
		Description: "Spend 1 energy to raise one crop's price this round.",
		EnergyCost:  AbilityEnergyCost,
	},
}

// ValidCharacter reports whether c is a known archetype tag.
func ValidCharacter(c Character) bool {
	switch c {
	case CharacterGambler, CharacterEngineer, CharacterOracle, CharacterMerchant:
		return true
	}
	return false
}
