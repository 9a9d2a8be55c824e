package ws

import (
	"context"
	"time"

	"granja_glitch/internal/logger"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 30 * time.Second
	pingPeriod = 25 * time.Second
)

// Client is one subscribed device. Subscriptions are read-only: intents go
// through the HTTP API, the socket only carries state pushes.
type Client struct {
	PlayerID string
	GameCode string
	Conn     *websocket.Conn
	Send     chan []byte

	hub *Hub
}

func NewClient(playerID, gameCode string, conn *websocket.Conn, hub *Hub) *Client {
	return &Client{
		PlayerID: playerID,
		GameCode: gameCode,
		Conn:     conn,
		Send:     make(chan []byte, 64),
		hub:      hub,
	}
}

// Run registers the client, sends the initial snapshot and pumps until the
// connection drops.
func (c *Client) Run() {
	c.hub.Register(c)
	go c.writePump()
	c.hub.SendState(context.Background(), c)
	c.readPump()
}

// readPump discards client frames (the socket is push-only) but keeps the
// read side alive for pong handling and close detection.
func (c *Client) readPump() {
	defer func() {
		c.hub.Unregister(c)
		_ = c.Conn.Close()
	}()

	c.Conn.SetReadLimit(1024)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			logger.Debug("ws read closed", "player", c.PlayerID, "error", err)
			return
		}
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.Conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.Conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				logger.Debug("ws write failed", "player", c.PlayerID, "error", err)
				return
			}

		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
