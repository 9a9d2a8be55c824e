package ws

import (
	"context"
	"encoding/json"
	"math/rand"
	"testing"

	"granja_glitch/internal/domain"
	"granja_glitch/internal/repository"
	"granja_glitch/internal/service"
)

func newTestHub(t *testing.T) (*Hub, string) {
	t.Helper()
	store := repository.NewMemStore()
	svc := service.NewGameServiceWithRand(store, rand.New(rand.NewSource(1)))

	code, _, err := svc.CreateGame(context.Background(), "Ana", domain.CharacterOracle)
	if err != nil {
		t.Fatalf("CreateGame: %v", err)
	}
	return NewHub(svc), code
}

func TestHubRegisterUnregister(t *testing.T) {
	hub, code := newTestHub(t)

	a := NewClient("p1", code, nil, hub)
	b := NewClient("p2", code, nil, hub)

	hub.Register(a)
	hub.Register(b)
	if got := hub.Subscribers(code); got != 2 {
		t.Fatalf("subscribers = %d; want 2", got)
	}

	hub.Unregister(a)
	hub.Unregister(b)
	if got := hub.Subscribers(code); got != 0 {
		t.Fatalf("subscribers after unregister = %d; want 0", got)
	}
}

func TestBroadcastState(t *testing.T) {
	hub, code := newTestHub(t)

	c := NewClient("p1", code, nil, hub)
	hub.Register(c)

	hub.BroadcastState(context.Background(), code)

	select {
	case data := <-c.Send:
		var msg Message
		if err := json.Unmarshal(data, &msg); err != nil {
			t.Fatalf("unmarshal push: %v", err)
		}
		if msg.Type != "state" {
			t.Fatalf("message type = %q; want state", msg.Type)
		}
	default:
		t.Fatal("no state message pushed")
	}
}

func TestBroadcastStateSkipsFullBuffers(t *testing.T) {
	hub, code := newTestHub(t)

	c := &Client{PlayerID: "p1", GameCode: code, Send: make(chan []byte), hub: hub}
	hub.Register(c)

	// the unbuffered channel has no reader; the broadcast must not block
	hub.BroadcastState(context.Background(), code)
}

func TestBroadcastToUnknownGameIsNoop(t *testing.T) {
	hub, _ := newTestHub(t)
	hub.BroadcastState(context.Background(), "NOGAME")
}
