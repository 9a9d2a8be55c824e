package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gorilla/websocket"

	"granja_glitch/internal/db"
	"granja_glitch/internal/repository"
	"granja_glitch/internal/service"
)

// Smoke test against a running server: creates a game with two players
// straight through the service, dials two WS connections and waits for
// the initial state push on both.
func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}
	if os.Getenv("JWT_SECRET") == "" {
		log.Fatal("JWT_SECRET not set")
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}

	pool := db.Connect(dsn)
	defer pool.Close()

	store := repository.NewPostgresStore(pool)
	svc := service.NewGameService(store)
	ctx := context.Background()

	code, hostID, err := svc.CreateGame(ctx, "smokeHost", "gambler")
	if err != nil {
		log.Fatalf("create game: %v", err)
	}
	guestID, err := svc.JoinGame(ctx, code, "smokeGuest", "oracle")
	if err != nil {
		log.Fatalf("join game: %v", err)
	}

	service.InitJWT()
	tokenA, err := service.GeneratePlayerToken(hostID, code)
	if err != nil {
		log.Fatalf("gen token host: %v", err)
	}
	tokenB, err := service.GeneratePlayerToken(guestID, code)
	if err != nil {
		log.Fatalf("gen token guest: %v", err)
	}

	dialer := websocket.DefaultDialer

	// use 127.0.0.1 to prefer IPv4 (avoid resolving to [::1])
	wsURLA := fmt.Sprintf("ws://127.0.0.1:%s/ws?token=%s", port, tokenA)
	wsURLB := fmt.Sprintf("ws://127.0.0.1:%s/ws?token=%s", port, tokenB)

	connA, _, err := dialer.Dial(wsURLA, nil)
	if err != nil {
		log.Fatalf("dial host: %v", err)
	}
	defer connA.Close()

	connB, _, err := dialer.Dial(wsURLB, nil)
	if err != nil {
		log.Fatalf("dial guest: %v", err)
	}
	defer connB.Close()

	readState := func(conn *websocket.Conn, name string) {
		conn.SetReadDeadline(time.Now().Add(3 * time.Second))
		_, msg, err := conn.ReadMessage()
		if err != nil {
			log.Fatalf("%s read error: %v", name, err)
		}
		var obj map[string]any
		if err := json.Unmarshal(msg, &obj); err != nil {
			log.Fatalf("%s bad message: %v", name, err)
		}
		if t, _ := obj["type"].(string); t != "state" {
			log.Fatalf("%s expected state message, got %q", name, t)
		}
		log.Printf("%s got state for game %s", name, code)
	}

	readState(connA, "host")
	readState(connB, "guest")

	log.Println("smoke test finished")
}
