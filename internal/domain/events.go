package domain

// EventEffect - machine-resolved consequence of a random event. Most events
// are advisory and resolved manually at the table.
type EventEffect string

const (
	EffectNone        EventEffect = "none"
	EffectSupplyCost  EventEffect = "supply_cost"  // persistent sticky flag
	EffectHalvePrices EventEffect = "halve_prices" // one round only
)

// Event is one entry of the static random event catalog.
type Event struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Effect      EventEffect `json:"effect"`
}

// EventChance is the per-round probability (percent) that an event triggers.
const EventChance = 60

// EventSupplyShortageID is the one-time event: once its sticky flag is set it
// is excluded from selection for the rest of the match.
const EventSupplyShortageID = "corte_suministros"

// Events is the static event catalog.
var Events = []Event{
	{
		ID:          "festival_cosecha",
		Title:       "Festival de la Cosecha",
		Description: "Every farmer may water one extra plot this round.",
		Effect:      EffectNone,
	},
	{
		ID:          "lluvia_datos",
		Title:       "Lluvia de Datos",
		Description: "It rains pixels: planted crops grow one step for free.",
		Effect:      EffectNone,
	},
	{
		ID:          "plaga_bits",
		Title:       "Plaga de Bits",
		Description: "Corrupted beetles! Each farmer discards one planted crop.",
		Effect:      EffectNone,
	},
	{
		ID:          "apagon",
		Title:       "Apagón",
		Description: "The farm loses power: skip all growth this round.",
		Effect:      EffectNone,
	},
	{
		ID:          "subsidio",
		Title:       "Subsidio Rural",
		Description: "The mayor hands out seeds: every farmer takes one free seed.",
		Effect:      EffectNone,
	},
	{
		ID:          EventSupplyShortageID,
		Title:       "Corte de Suministros",
		Description: "Supplies run short: planting costs 1 extra money from now on.",
		Effect:      EffectSupplyCost,
	},
	{
		ID:          "caida_mercado",
		Title:       "Caída del Mercado",
		Description: "The market glitches out: all sale prices are halved this round.",
		Effect:      EffectHalvePrices,
	},
	{
		ID:          "trueque",
		Title:       "Día de Trueque",
		Description: "Farmers may swap one crop with a neighbour of their choice.",
		Effect:      EffectNone,
	},
}

// EventByID returns the catalog entry for id, or nil if unknown.
func EventByID(id string) *Event {
	for i := range Events {
		if Events[i].ID == id {
			return &Events[i]
		}
	}
	return nil
}
