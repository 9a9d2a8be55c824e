package domain

import "testing"

func TestObjectiveSatisfied(t *testing.T) {
	cases := []struct {
		name      string
		objective string
		player    *Player
		want      bool
	}{
		{"money reached", "ahorrador", &Player{Money: 15}, true},
		{"money short", "ahorrador", &Player{Money: 14}, false},
		{"total crops reached", "granero_lleno",
			&Player{Inventory: map[string]int{"maiz": 5, "trigo": 3}}, true},
		{"total crops short", "granero_lleno",
			&Player{Inventory: map[string]int{"maiz": 7}}, false},
		{"crop quantity reached", "rey_del_maiz",
			&Player{Inventory: map[string]int{"maiz": 4}}, true},
		{"crop quantity wrong crop", "rey_del_maiz",
			&Player{Inventory: map[string]int{"trigo": 4}}, false},
		{"four equal dice", "poker_de_dados",
			&Player{Dice: []Symbol{SymbolPlant, SymbolPlant, SymbolPlant, SymbolPlant}}, true},
		{"mixed dice", "poker_de_dados",
			&Player{Dice: []Symbol{SymbolPlant, SymbolPlant, SymbolPlant, SymbolCoin}}, false},
	}
	for _, tc := range cases {
		o := ObjectiveByID(tc.objective)
		if o == nil {
			t.Fatalf("%s: objective %q missing from catalog", tc.name, tc.objective)
		}
		if got := o.Satisfied(tc.player); got != tc.want {
			t.Fatalf("%s: Satisfied = %v; want %v", tc.name, got, tc.want)
		}
	}
}

func TestCatalogIntegrity(t *testing.T) {
	seen := map[string]bool{}
	for _, o := range Objectives {
		if seen[o.ID] {
			t.Fatalf("duplicate objective id %q", o.ID)
		}
		seen[o.ID] = true
		if o.RewardPV <= 0 {
			t.Fatalf("objective %q has non-positive reward", o.ID)
		}
		if o.Kind == ObjectiveCropQuantity && CropByID(o.TargetCrop) == nil {
			t.Fatalf("objective %q targets unknown crop %q", o.ID, o.TargetCrop)
		}
	}

	for _, e := range Encounters {
		switch e.Kind {
		case EncounterDecision:
			if len(e.Choices) == 0 {
				t.Fatalf("decision encounter %q has no choices", e.ID)
			}
		case EncounterRandom:
			if e.TotalWeight() <= 0 {
				t.Fatalf("random encounter %q has no weighted outcomes", e.ID)
			}
		case EncounterMinigame:
			if e.Success == nil || e.Failure == nil {
				t.Fatalf("minigame encounter %q is missing an outcome branch", e.ID)
			}
		default:
			t.Fatalf("encounter %q has unknown kind %q", e.ID, e.Kind)
		}
	}

	for _, ev := range Events {
		if EventByID(ev.ID) == nil {
			t.Fatalf("event %q not resolvable by id", ev.ID)
		}
	}
	if EventByID(EventSupplyShortageID) == nil {
		t.Fatal("supply shortage event missing from catalog")
	}
}
