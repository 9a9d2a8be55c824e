package domain

// EncounterKind - resolution style of a mystery encounter.
type EncounterKind string

const (
	EncounterDecision EncounterKind = "decision" // player picks an option
	EncounterRandom   EncounterKind = "random"   // weighted outcome draw
	EncounterMinigame EncounterKind = "minigame" // client-side timing game decides
)

// EncounterOutcome is the applied result of resolving an encounter.
type EncounterOutcome struct {
	Weight      int    `json:"weight,omitempty"` // random encounters only
	Money       int    `json:"money"`
	Energy      int    `json:"energy"`
	Description string `json:"description"`
}

// EncounterChoice is one selectable option of a decision encounter.
type EncounterChoice struct {
	ID      string           `json:"id"`
	Label   string           `json:"label"`
	Outcome EncounterOutcome `json:"outcome"`
}

// Encounter is one entry of the static mystery encounter catalog. Shared
// fields plus one case-specific payload per kind.
type Encounter struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Kind        EncounterKind `json:"kind"`

	Choices  []EncounterChoice  `json:"choices,omitempty"`  // decision
	Outcomes []EncounterOutcome `json:"outcomes,omitempty"` // random
	Success  *EncounterOutcome  `json:"success,omitempty"`  // minigame
	Failure  *EncounterOutcome  `json:"failure,omitempty"`  // minigame
}

// Encounters is the static mystery encounter catalog.
var Encounters = []Encounter{
	{
		ID:          "buhonero",
		Title:       "El Buhonero",
		Description: "A glitched peddler offers a trade.",
		Kind:        EncounterDecision,
		Choices: []EncounterChoice{
			{ID: "comprar", Label: "Buy his strange seeds (−2 money)",
				Outcome: EncounterOutcome{Money: -2, Energy: 1, Description: "The seeds crackle with energy. +1 energy."}},
			{ID: "rechazar", Label: "Wave him off",
				Outcome: EncounterOutcome{Description: "He shrugs and dissolves into static."}},
		},
	},
	{
		ID:          "pozo_deseos",
		Title:       "Pozo de los Deseos",
		Description: "A wishing well hums in the cornfield.",
		Kind:        EncounterDecision,
		Choices: []EncounterChoice{
			{ID: "moneda", Label: "Throw in a coin (−1 money)",
				Outcome: EncounterOutcome{Money: -1, Energy: 2, Description: "The well glows. +2 energy."}},
			{ID: "pasar", Label: "Keep walking",
				Outcome: EncounterOutcome{Description: "The humming fades behind you."}},
		},
	},
	{
		ID:          "cofre_glitch",
		Title:       "Cofre Glitcheado",
		Description: "A flickering chest appears between the plots.",
		Kind:        EncounterRandom,
		Outcomes: []EncounterOutcome{
			{Weight: 3, Money: 4, Description: "Full of coins! +4 money."},
			{Weight: 4, Money: 1, Description: "A few loose coins. +1 money."},
			{Weight: 2, Energy: 1, Description: "A battery inside. +1 energy."},
			{Weight: 1, Money: -2, Description: "A mimic! It bites your purse. −2 money."},
		},
	},
	{
		ID:          "tormenta_pixeles",
		Title:       "Tormenta de Píxeles",
		Description: "A pixel storm sweeps the farm.",
		Kind:        EncounterRandom,
		Outcomes: []EncounterOutcome{
			{Weight: 5, Description: "It passes without damage."},
			{Weight: 3, Money: -1, Description: "It knocks over your stall. −1 money."},
			{Weight: 2, Energy: 2, Description: "You bottle the lightning. +2 energy."},
		},
	},
	{
		ID:          "gallina_veloz",
		Title:       "La Gallina Veloz",
		Description: "Catch the glitched hen before she phases away!",
		Kind:        EncounterMinigame,
		Success:     &EncounterOutcome{Money: 3, Description: "Caught her! She lays golden eggs. +3 money."},
		Failure:     &EncounterOutcome{Description: "She vanishes in a shower of feathers."},
	},
	{
		ID:          "riego_roto",
		Title:       "Riego Roto",
		Description: "The sprinkler system is stuck in a loop. Time the fix!",
		Kind:        EncounterMinigame,
		Success:     &EncounterOutcome{Energy: 2, Description: "Patched! The surge charges you. +2 energy."},
		Failure:     &EncounterOutcome{Money: -1, Description: "Soaked. You pay for a new valve. −1 money."},
	},
}

// EncounterByID returns the catalog entry for id, or nil if unknown.
func EncounterByID(id string) *Encounter {
	for i := range Encounters {
		if Encounters[i].ID == id {
			return &Encounters[i]
		}
	}
	return nil
}

// TotalWeight sums the outcome weights of a random encounter.
func (e *Encounter) TotalWeight() int {
	total := 0
	for _, o := range e.Outcomes {
		total += o.Weight
	}
	return total
}
