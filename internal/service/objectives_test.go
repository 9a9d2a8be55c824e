package service

import (
	"context"
	"errors"
	"testing"

	"granja_glitch/internal/domain"
)

func TestClaimObjective(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	code, hostID, _ := newTestGame(t, svc)

	setGame(t, svc, code, func(g *domain.Game) {
		g.ActiveObjectives = []string{"ahorrador"}
	})

	if _, err := svc.ClaimObjective(ctx, code, hostID, "nope"); !errors.Is(err, domain.ErrUnknownObjective) {
		t.Fatalf("unknown objective: err = %v; want ErrUnknownObjective", err)
	}
	if _, err := svc.ClaimObjective(ctx, code, hostID, "magnate"); !errors.Is(err, domain.ErrObjectiveNotActive) {
		t.Fatalf("inactive objective: err = %v; want ErrObjectiveNotActive", err)
	}

	// starting money is below the target: progress report, no claim, no error
	result, err := svc.ClaimObjective(ctx, code, hostID, "ahorrador")
	if err != nil {
		t.Fatalf("unsatisfied claim: %v", err)
	}
	if result.Claimed {
		t.Fatal("claimed an unsatisfied objective")
	}
	if result.Message == "" {
		t.Fatal("no progress message for unsatisfied claim")
	}
	player, _ := svc.PlayerState(ctx, hostID)
	if len(player.ObjectivesClaimed) != 0 {
		t.Fatal("unsatisfied claim was recorded")
	}

	setPlayer(t, svc, hostID, func(p *domain.Player) { p.Money = 15 })

	result, err = svc.ClaimObjective(ctx, code, hostID, "ahorrador")
	if err != nil {
		t.Fatalf("satisfied claim: %v", err)
	}
	if !result.Claimed {
		t.Fatal("satisfied objective not claimed")
	}

	player, _ = svc.PlayerState(ctx, hostID)
	if !player.HasClaimed("ahorrador") {
		t.Fatal("claim missing from the player document")
	}
	game, _, _ := svc.GameState(ctx, code)
	if !containsID(game.ClaimedObjectivesByPlayer[hostID], "ahorrador") {
		t.Fatal("claim missing from the game mirror")
	}

	// claims are permanent, even after the qualifying state is gone
	setPlayer(t, svc, hostID, func(p *domain.Player) { p.Money = 0 })
	if _, err := svc.ClaimObjective(ctx, code, hostID, "ahorrador"); !errors.Is(err, domain.ErrObjectiveAlreadyClaimed) {
		t.Fatalf("repeat claim: err = %v; want ErrObjectiveAlreadyClaimed", err)
	}
}
