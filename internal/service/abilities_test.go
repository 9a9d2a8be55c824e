package service

import (
	"context"
	"errors"
	"testing"

	"granja_glitch/internal/domain"
)

func TestUseFreeReroll(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	_, hostID, guestID := newTestGame(t, svc) // host merchant, guest gambler

	setPlayer(t, svc, guestID, func(p *domain.Player) {
		p.Dice = []domain.Symbol{domain.SymbolGlitch, domain.SymbolCoin, domain.SymbolGlitch, domain.SymbolGlitch}
		p.RollPhase = domain.RollPhaseRolled
		p.HasUsedStandardReroll = true // free reroll must not depend on it
	})

	if _, err := svc.UseFreeReroll(ctx, hostID, nil); !errors.Is(err, domain.ErrWrongCharacter) {
		t.Fatalf("merchant free reroll: err = %v; want ErrWrongCharacter", err)
	}

	dice, err := svc.UseFreeReroll(ctx, guestID, []int{1})
	if err != nil {
		t.Fatalf("UseFreeReroll: %v", err)
	}
	if dice[1] != domain.SymbolCoin {
		t.Fatalf("kept die changed: %v", dice)
	}

	guest, _ := svc.PlayerState(ctx, guestID)
	if !guest.HasUsedFreeReroll {
		t.Fatal("free reroll flag not set")
	}
	if guest.Energy != domain.StartingEnergy {
		t.Fatal("free reroll must not cost energy")
	}

	if _, err := svc.UseFreeReroll(ctx, guestID, nil); !errors.Is(err, domain.ErrRerollUsed) {
		t.Fatalf("second free reroll: err = %v; want ErrRerollUsed", err)
	}
}

func TestUseSymbolSwap(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	code, _, _ := newTestGame(t, svc)

	engineerID, err := svc.JoinGame(ctx, code, "Carla", domain.CharacterEngineer)
	if err != nil {
		t.Fatalf("JoinGame: %v", err)
	}
	setPlayer(t, svc, engineerID, func(p *domain.Player) {
		p.Dice = []domain.Symbol{domain.SymbolGlitch, domain.SymbolGlitch, domain.SymbolGlitch, domain.SymbolGlitch}
		p.RollPhase = domain.RollPhaseRolled
	})

	if _, err := svc.UseSymbolSwap(ctx, engineerID, 0, "dragon"); !errors.Is(err, domain.ErrInvalidSymbol) {
		t.Fatalf("bad symbol: err = %v; want ErrInvalidSymbol", err)
	}
	if _, err := svc.UseSymbolSwap(ctx, engineerID, 7, domain.SymbolCoin); !errors.Is(err, domain.ErrInvalidDie) {
		t.Fatalf("bad index: err = %v; want ErrInvalidDie", err)
	}

	dice, err := svc.UseSymbolSwap(ctx, engineerID, 2, domain.SymbolCoin)
	if err != nil {
		t.Fatalf("UseSymbolSwap: %v", err)
	}
	if dice[2] != domain.SymbolCoin {
		t.Fatalf("die 2 = %s; want coin", dice[2])
	}

	engineer, _ := svc.PlayerState(ctx, engineerID)
	if engineer.Energy != domain.StartingEnergy-domain.AbilityEnergyCost {
		t.Fatalf("energy = %d; want ability cost spent", engineer.Energy)
	}

	if _, err := svc.UseSymbolSwap(ctx, engineerID, 0, domain.SymbolCoin); !errors.Is(err, domain.ErrSkillUsed) {
		t.Fatalf("second swap: err = %v; want ErrSkillUsed", err)
	}
}

func TestUseSymbolSwapNoEnergy(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	code, _, _ := newTestGame(t, svc)

	engineerID, err := svc.JoinGame(ctx, code, "Carla", domain.CharacterEngineer)
	if err != nil {
		t.Fatalf("JoinGame: %v", err)
	}
	setPlayer(t, svc, engineerID, func(p *domain.Player) {
		p.Dice = []domain.Symbol{domain.SymbolGlitch, domain.SymbolGlitch, domain.SymbolGlitch, domain.SymbolGlitch}
		p.RollPhase = domain.RollPhaseRolled
		p.Energy = 0
	})

	if _, err := svc.UseSymbolSwap(ctx, engineerID, 0, domain.SymbolCoin); !errors.Is(err, domain.ErrNoEnergy) {
		t.Fatalf("err = %v; want ErrNoEnergy", err)
	}
}

func TestUseReveal(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	code, hostID, _ := newTestGame(t, svc)

	oracleID, err := svc.JoinGame(ctx, code, "Delia", domain.CharacterOracle)
	if err != nil {
		t.Fatalf("JoinGame: %v", err)
	}

	if err := svc.UseReveal(ctx, hostID); !errors.Is(err, domain.ErrWrongCharacter) {
		t.Fatalf("merchant reveal: err = %v; want ErrWrongCharacter", err)
	}

	if err := svc.UseReveal(ctx, oracleID); err != nil {
		t.Fatalf("UseReveal: %v", err)
	}
	oracle, _ := svc.PlayerState(ctx, oracleID)
	if oracle.Energy != domain.StartingEnergy-domain.AbilityEnergyCost {
		t.Fatalf("energy = %d; want ability cost spent", oracle.Energy)
	}

	if err := svc.UseReveal(ctx, oracleID); !errors.Is(err, domain.ErrSkillUsed) {
		t.Fatalf("second reveal: err = %v; want ErrSkillUsed", err)
	}
}
