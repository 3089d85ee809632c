package websocket

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/iamasit07/connect4-engine/internal/domain"
	"github.com/iamasit07/connect4-engine/internal/service/game"
	"github.com/iamasit07/connect4-engine/pkg/auth"
)

const (
	pongWait   = 60 * time.Second
	pingPeriod = 30 * time.Second
)

// ClientMessage is what the caller sends: an "init" with the game token,
// then "move" frames.
type ClientMessage struct {
	Type   string `json:"type"`
	Token  string `json:"token,omitempty"`
	Column int    `json:"column"`
}

// ServerMessage is what the server sends back.
type ServerMessage struct {
	Type    string      `json:"type"`
	State   *game.State `json:"state,omitempty"`
	Message string      `json:"message,omitempty"`
}

// Handler plays games over a WebSocket connection.
type Handler struct {
	Manager  *game.Manager
	Secret   string
	Upgrader websocket.Upgrader
}

func NewHandler(manager *game.Manager, secret string) *Handler {
	return &Handler{
		Manager: manager,
		Secret:  secret,
		Upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// HandleWebSocket upgrades the connection and runs the play loop.
func (h *Handler) HandleWebSocket(c *gin.Context) {
	conn, err := h.Upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("[WS] Upgrade error: %v", err)
		return
	}

	h.handleConnection(conn)
}

func (h *Handler) handleConnection(conn *websocket.Conn) {
	defer conn.Close()

	// writeMu serializes writes; the keepalive pinger and the play loop share
	// the socket and conn writes are not thread-safe.
	var writeMu sync.Mutex
	send := func(msg ServerMessage) {
		writeMu.Lock()
		defer writeMu.Unlock()
		if err := conn.WriteJSON(msg); err != nil {
			log.Printf("[WS] Write error: %v", err)
		}
	}

	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	done := make(chan struct{})
	defer close(done)
	go func() {
		ticker := time.NewTicker(pingPeriod)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				writeMu.Lock()
				err := conn.WriteMessage(websocket.PingMessage, nil)
				writeMu.Unlock()
				if err != nil {
					return
				}
			}
		}
	}()

	// 1. Wait for init (auth)
	_, data, err := conn.ReadMessage()
	if err != nil {
		log.Printf("[WS] Read error during init: %v", err)
		return
	}

	var message ClientMessage
	if err := json.Unmarshal(data, &message); err != nil {
		log.Printf("[WS] Invalid JSON during init: %v", err)
		return
	}

	if message.Type != "init" || message.Token == "" {
		send(ServerMessage{Type: "error", Message: "expected init message with token"})
		return
	}

	claims, err := auth.ValidateGameToken(h.Secret, message.Token)
	if err != nil {
		log.Printf("[WS] Invalid token during init: %v", err)
		send(ServerMessage{Type: "error", Message: "invalid token"})
		return
	}

	session, err := h.Manager.Get(claims.GameID)
	if err != nil {
		send(ServerMessage{Type: "error", Message: "game not found"})
		return
	}

	log.Printf("[WS] Connection initialized for game %s", session.ID)
	state := session.State()
	send(ServerMessage{Type: "state", State: &state})

	// 2. Play loop
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			log.Printf("[WS] Connection closed for game %s: %v", session.ID, err)
			return
		}
		conn.SetReadDeadline(time.Now().Add(pongWait))

		var msg ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			send(ServerMessage{Type: "error", Message: "invalid JSON"})
			continue
		}
		if msg.Type != "move" {
			send(ServerMessage{Type: "error", Message: "unknown message type"})
			continue
		}

		st, err := h.Manager.Play(session.ID, msg.Column)
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrInvalidMove), errors.Is(err, domain.ErrGameOver):
				send(ServerMessage{Type: "error", Message: err.Error()})
				continue
			default:
				send(ServerMessage{Type: "error", Message: "move failed"})
				return
			}
		}
		send(ServerMessage{Type: "state", State: &st})
	}
}
