package domain

// ObjectiveKind - predicate family an objective is checked against.
type ObjectiveKind string

const (
	ObjectiveMoney        ObjectiveKind = "money"         // money >= target
	ObjectiveTotalCrops   ObjectiveKind = "total_crops"   // sum(inventory) >= target
	ObjectiveCropQuantity ObjectiveKind = "crop_quantity" // inventory[crop] >= target
	ObjectiveAllDiceEqual ObjectiveKind = "all_dice_equal"
)

// Objective is one entry of the static objective catalog. Each match
// activates a fixed random subset at creation.
type Objective struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Kind        ObjectiveKind `json:"kind"`
	TargetCrop  string        `json:"targetCrop,omitempty"` // crop_quantity only
	Target      int           `json:"target"`
	RewardPV    int           `json:"rewardPv"`
}

// Objectives is the static objective catalog.
var Objectives = []Objective{
	{ID: "ahorrador", Title: "Ahorrador", Description: "Hold 15 money at once.",
		Kind: ObjectiveMoney, Target: 15, RewardPV: 2},
	{ID: "magnate", Title: "Magnate", Description: "Hold 30 money at once.",
		Kind: ObjectiveMoney, Target: 30, RewardPV: 4},
	{ID: "granero_lleno", Title: "Granero Lleno", Description: "Hold 8 harvested crops.",
		Kind: ObjectiveTotalCrops, Target: 8, RewardPV: 3},
	{ID: "cosecha_variada", Title: "Cosecha Variada", Description: "Hold 5 harvested crops.",
		Kind: ObjectiveTotalCrops, Target: 5, RewardPV: 2},
	{ID: "rey_del_maiz", Title: "Rey del Maíz", Description: "Hold 4 maíz at once.",
		Kind: ObjectiveCropQuantity, TargetCrop: "maiz", Target: 4, RewardPV: 3},
	{ID: "tomatero", Title: "Tomatero", Description: "Hold 3 tomates at once.",
		Kind: ObjectiveCropQuantity, TargetCrop: "tomate", Target: 3, RewardPV: 2},
	{ID: "fresa_premium", Title: "Fresa Premium", Description: "Hold 3 fresas at once.",
		Kind: ObjectiveCropQuantity, TargetCrop: "fresa", Target: 3, RewardPV: 3},
	{ID: "calabazas_gigantes", Title: "Calabazas Gigantes", Description: "Hold 3 calabazas at once.",
		Kind: ObjectiveCropQuantity, TargetCrop: "calabaza", Target: 3, RewardPV: 3},
	{ID: "poker_de_dados", Title: "Póker de Dados", Description: "Show four identical dice.",
		Kind: ObjectiveAllDiceEqual, Target: 0, RewardPV: 4},
	{ID: "trigo_dorado", Title: "Trigo Dorado", Description: "Hold 5 trigo at once.",
		Kind: ObjectiveCropQuantity, TargetCrop: "trigo", Target: 5, RewardPV: 3},
}

// ObjectiveByID returns the catalog entry for id, or nil if unknown.
func ObjectiveByID(id string) *Objective {
	for i := range Objectives {
		if Objectives[i].ID == id {
			return &Objectives[i]
		}
	}
	return nil
}

// Progress returns the player's current value toward the objective target.
func (o *Objective) Progress(p *Player) int {
	switch o.Kind {
	case ObjectiveMoney:
		return p.Money
	case ObjectiveTotalCrops:
		return p.TotalCrops()
	case ObjectiveCropQuantity:
		return p.Inventory[o.TargetCrop]
	case ObjectiveAllDiceEqual:
		if p.AllDiceEqual() {
			return 1
		}
		return 0
	}
	return 0
}

// Satisfied evaluates the objective predicate against the player state.
func (o *Objective) Satisfied(p *Player) bool {
	if o.Kind == ObjectiveAllDiceEqual {
		return p.AllDiceEqual()
	}
	return o.Progress(p) >= o.Target
}
