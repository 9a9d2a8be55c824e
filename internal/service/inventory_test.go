package service

import (
	"context"
	"errors"
	"testing"

	"granja_glitch/internal/domain"
)

func TestSellCrop(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	code, hostID, _ := newTestGame(t, svc)

	if err := svc.AddCropToInventory(ctx, hostID, "maiz", 3); err != nil {
		t.Fatalf("AddCropToInventory: %v", err)
	}
	setGame(t, svc, code, func(g *domain.Game) {
		g.TemporaryPriceBoosts["maiz"] = 2 // base 3 -> effective 5
	})

	earned, err := svc.SellCrop(ctx, code, hostID, "maiz", 2)
	if err != nil {
		t.Fatalf("SellCrop: %v", err)
	}
	if earned != 10 {
		t.Fatalf("earned = %d; want 10 (2 x boosted price 5)", earned)
	}

	player, _ := svc.PlayerState(ctx, hostID)
	if player.Money != domain.StartingMoney+10 {
		t.Fatalf("money = %d; want %d", player.Money, domain.StartingMoney+10)
	}
	if player.Inventory["maiz"] != 1 {
		t.Fatalf("maiz left = %d; want 1", player.Inventory["maiz"])
	}
}

func TestSellCropInsufficientLeavesStateUntouched(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	code, hostID, _ := newTestGame(t, svc)

	if err := svc.AddCropToInventory(ctx, hostID, "trigo", 2); err != nil {
		t.Fatalf("AddCropToInventory: %v", err)
	}

	if _, err := svc.SellCrop(ctx, code, hostID, "trigo", 3); !errors.Is(err, domain.ErrInsufficientInventory) {
		t.Fatalf("err = %v; want ErrInsufficientInventory", err)
	}

	player, _ := svc.PlayerState(ctx, hostID)
	if player.Inventory["trigo"] != 2 || player.Money != domain.StartingMoney {
		t.Fatal("failed sale mutated inventory or money")
	}
}

func TestSellCropHalvedPriceFloor(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	code, hostID, _ := newTestGame(t, svc)

	if err := svc.AddCropToInventory(ctx, hostID, "trigo", 1); err != nil {
		t.Fatalf("AddCropToInventory: %v", err)
	}
	setGame(t, svc, code, func(g *domain.Game) {
		g.CropPrices["trigo"] = 1
		g.PricesHalved = true
	})

	earned, err := svc.SellCrop(ctx, code, hostID, "trigo", 1)
	if err != nil {
		t.Fatalf("SellCrop: %v", err)
	}
	if earned != 1 {
		t.Fatalf("earned = %d; halved price must floor at 1", earned)
	}
}

func TestSellCropValidation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	code, hostID, _ := newTestGame(t, svc)

	if _, err := svc.SellCrop(ctx, code, hostID, "oro", 1); !errors.Is(err, domain.ErrUnknownCrop) {
		t.Fatalf("unknown crop: err = %v; want ErrUnknownCrop", err)
	}
	if _, err := svc.SellCrop(ctx, code, hostID, "maiz", 0); !errors.Is(err, domain.ErrInsufficientInventory) {
		t.Fatalf("zero quantity: err = %v; want ErrInsufficientInventory", err)
	}
}

func TestHostAdjustments(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	code, hostID, guestID := newTestGame(t, svc)

	if err := svc.AdjustPlayerResources(ctx, code, guestID, hostID, 1, 0); !errors.Is(err, domain.ErrNotHost) {
		t.Fatalf("guest adjust: err = %v; want ErrNotHost", err)
	}
	if err := svc.AdjustPlayerResources(ctx, code, hostID, "stranger", 1, 0); !errors.Is(err, domain.ErrNotInGame) {
		t.Fatalf("adjust stranger: err = %v; want ErrNotInGame", err)
	}

	if err := svc.AdjustPlayerResources(ctx, code, hostID, guestID, 3, -1); err != nil {
		t.Fatalf("AdjustPlayerResources: %v", err)
	}
	if err := svc.AdjustManualBonusPV(ctx, code, hostID, guestID, 2); err != nil {
		t.Fatalf("AdjustManualBonusPV: %v", err)
	}

	guest, _ := svc.PlayerState(ctx, guestID)
	if guest.Money != domain.StartingMoney+3 {
		t.Fatalf("money = %d; want %d", guest.Money, domain.StartingMoney+3)
	}
	if guest.Energy != domain.StartingEnergy-1 {
		t.Fatalf("energy = %d; want %d", guest.Energy, domain.StartingEnergy-1)
	}
	if guest.ManualBonusPV != 2 {
		t.Fatalf("bonus PV = %d; want 2", guest.ManualBonusPV)
	}
}
