package service

import (
	"context"
	"errors"
	"testing"

	"granja_glitch/internal/domain"
)

func TestStartMysteryBudget(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	_, hostID, _ := newTestGame(t, svc)

	if _, err := svc.StartMysteryEncounter(ctx, hostID, false); !errors.Is(err, domain.ErrNoMysteryBudget) {
		t.Fatalf("no budget: err = %v; want ErrNoMysteryBudget", err)
	}

	setPlayer(t, svc, hostID, func(p *domain.Player) { p.MysteryUsesLeft = 2 })

	enc, err := svc.StartMysteryEncounter(ctx, hostID, false)
	if err != nil {
		t.Fatalf("StartMysteryEncounter: %v", err)
	}
	if domain.EncounterByID(enc.ID) == nil {
		t.Fatalf("drew unknown encounter %q", enc.ID)
	}

	player, _ := svc.PlayerState(ctx, hostID)
	if player.MysteryUsesLeft != 1 {
		t.Fatalf("budget = %d; want 1", player.MysteryUsesLeft)
	}
	if player.ActiveMysteryID != enc.ID {
		t.Fatalf("active id = %q; want %q", player.ActiveMysteryID, enc.ID)
	}
}

func TestStartMysterySingleDeviceSkipsBudget(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	_, hostID, _ := newTestGame(t, svc)

	if _, err := svc.StartMysteryEncounter(ctx, hostID, true); err != nil {
		t.Fatalf("single-device start: %v", err)
	}
	player, _ := svc.PlayerState(ctx, hostID)
	if player.MysteryUsesLeft != 0 {
		t.Fatalf("budget = %d; want untouched 0", player.MysteryUsesLeft)
	}
}

func TestPickWeighted(t *testing.T) {
	svc, _ := newTestService(t)

	if got := svc.pickWeighted(nil); got != nil {
		t.Fatalf("empty outcomes: got %+v; want nil", got)
	}
	if got := svc.pickWeighted([]domain.EncounterOutcome{{Weight: 0}}); got != nil {
		t.Fatalf("zero total weight: got %+v; want nil", got)
	}

	outcomes := []domain.EncounterOutcome{
		{Weight: 0, Description: "never"},
		{Weight: 5, Description: "always"},
	}
	for i := 0; i < 100; i++ {
		got := svc.pickWeighted(outcomes)
		if got == nil || got.Description != "always" {
			t.Fatalf("draw %d picked %+v; want the only weighted outcome", i, got)
		}
	}
}

func TestPickWeightedFrequencies(t *testing.T) {
	svc, _ := newTestService(t)

	outcomes := []domain.EncounterOutcome{
		{Weight: 1, Description: "rare"},
		{Weight: 3, Description: "common"},
	}
	const draws = 4000
	common := 0
	for i := 0; i < draws; i++ {
		if svc.pickWeighted(outcomes).Description == "common" {
			common++
		}
	}
	// Expected share is 3/4; allow a wide band since the RNG is seeded
	// but the exact sequence is an implementation detail.
	if common < draws*65/100 || common > draws*85/100 {
		t.Fatalf("common drawn %d/%d times; want roughly 3/4", common, draws)
	}
}

func TestResolveDecisionEncounter(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	_, hostID, _ := newTestGame(t, svc)

	setPlayer(t, svc, hostID, func(p *domain.Player) { p.ActiveMysteryID = "buhonero" })

	if _, err := svc.ResolveMysteryOutcome(ctx, hostID, "robar"); !errors.Is(err, domain.ErrUnknownChoice) {
		t.Fatalf("unknown choice: err = %v; want ErrUnknownChoice", err)
	}

	outcome, err := svc.ResolveMysteryOutcome(ctx, hostID, "comprar")
	if err != nil {
		t.Fatalf("ResolveMysteryOutcome: %v", err)
	}
	if outcome.Money != -2 || outcome.Energy != 1 {
		t.Fatalf("outcome = %+v; want -2 money, +1 energy", outcome)
	}

	player, _ := svc.PlayerState(ctx, hostID)
	if player.Money != domain.StartingMoney-2 {
		t.Fatalf("money = %d; want %d", player.Money, domain.StartingMoney-2)
	}
	if player.Energy != domain.StartingEnergy+1 {
		t.Fatalf("energy = %d; want %d", player.Energy, domain.StartingEnergy+1)
	}
	if player.ActiveMysteryID != "" {
		t.Fatal("active encounter not cleared after resolution")
	}
	if player.LastMysteryResult == "" {
		t.Fatal("result text not stored")
	}

	if _, err := svc.ResolveMysteryOutcome(ctx, hostID, "comprar"); !errors.Is(err, domain.ErrNoActiveMystery) {
		t.Fatalf("double resolve: err = %v; want ErrNoActiveMystery", err)
	}
}

func TestResolveRandomEncounter(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	_, hostID, _ := newTestGame(t, svc)

	setPlayer(t, svc, hostID, func(p *domain.Player) { p.ActiveMysteryID = "cofre_glitch" })

	outcome, err := svc.ResolveMysteryOutcome(ctx, hostID, "")
	if err != nil {
		t.Fatalf("ResolveMysteryOutcome: %v", err)
	}
	if outcome == nil || outcome.Description == "" {
		t.Fatalf("random resolution returned %+v", outcome)
	}
}

func TestResolveMinigame(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	_, hostID, _ := newTestGame(t, svc)

	setPlayer(t, svc, hostID, func(p *domain.Player) { p.ActiveMysteryID = "buhonero" })
	if _, err := svc.ResolveMinigameOutcome(ctx, hostID, true); !errors.Is(err, domain.ErrWrongEncounterKind) {
		t.Fatalf("minigame resolve on decision: err = %v; want ErrWrongEncounterKind", err)
	}

	setPlayer(t, svc, hostID, func(p *domain.Player) { p.ActiveMysteryID = "gallina_veloz" })
	outcome, err := svc.ResolveMinigameOutcome(ctx, hostID, true)
	if err != nil {
		t.Fatalf("ResolveMinigameOutcome: %v", err)
	}
	if outcome.Money != 3 {
		t.Fatalf("success outcome = %+v; want +3 money", outcome)
	}

	player, _ := svc.PlayerState(ctx, hostID)
	if player.Money != domain.StartingMoney+3 {
		t.Fatalf("money = %d; want %d", player.Money, domain.StartingMoney+3)
	}
}

func TestResolveWithoutActiveEncounter(t *testing.T) {
	svc, _ := newTestService(t)
	_, hostID, _ := newTestGame(t, svc)

	if _, err := svc.ResolveMysteryOutcome(context.Background(), hostID, "x"); !errors.Is(err, domain.ErrNoActiveMystery) {
		t.Fatalf("err = %v; want ErrNoActiveMystery", err)
	}
}

func TestClearMysteryResultIdempotent(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	_, hostID, _ := newTestGame(t, svc)

	setPlayer(t, svc, hostID, func(p *domain.Player) { p.LastMysteryResult = "shown once" })

	for i := 0; i < 2; i++ {
		if err := svc.ClearMysteryResult(ctx, hostID); err != nil {
			t.Fatalf("clear %d: %v", i, err)
		}
	}
	player, _ := svc.PlayerState(ctx, hostID)
	if player.LastMysteryResult != "" {
		t.Fatalf("result = %q; want cleared", player.LastMysteryResult)
	}
}
