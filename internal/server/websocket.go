package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/finwise/fincalc/internal/domain"
	"github.com/finwise/fincalc/internal/output"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer.
	maxMessageSize = 4096
)

// WSRequest is a client message: a calculation request, or a ping when Type
// is "ping". ID is echoed so the client can drop stale replies.
type WSRequest struct {
	Type string `json:"type,omitempty"`
	ID   string `json:"id,omitempty"`
	domain.CalculationRequest
}

// WSMessage is a server message.
type WSMessage struct {
	Type  string                 `json:"type"` // "result", "invalid", "error" or "pong"
	ID    string                 `json:"id,omitempty"`
	Data  *output.RenderedResult `json:"data,omitempty"`
	Field string                 `json:"field,omitempty"`
	Error string                 `json:"error,omitempty"`
}

// handleWebSocket upgrades the connection and recomputes a result for every
// request the client sends, so forms can update as the user types.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	send := make(chan WSMessage, 16)
	done := make(chan struct{})
	go s.wsWritePump(conn, send, done)

	s.wsReadPump(ctx, conn, send, done)
	close(send)
}

// wsReadPump reads requests until the connection fails or closes.
func (s *Server) wsReadPump(ctx context.Context, conn *websocket.Conn, send chan<- WSMessage, done <-chan struct{}) {
	conn.SetReadLimit(maxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Debug("websocket read error", zap.Error(err))
			}
			return
		}

		reply := s.wsHandle(ctx, message)
		select {
		case send <- reply:
		case <-done:
			return
		}
	}
}

func (s *Server) wsHandle(ctx context.Context, message []byte) WSMessage {
	var req WSRequest
	if err := json.Unmarshal(message, &req); err != nil {
		return WSMessage{Type: "error", Error: "invalid message: " + err.Error()}
	}
	if req.Type == "ping" {
		return WSMessage{Type: "pong", ID: req.ID}
	}

	calc := req.CalculationRequest
	if kind, err := domain.ParseCalculatorKind(string(calc.Calculator)); err == nil {
		calc.Calculator = kind
	}
	result, err := s.svc.Calculate(ctx, calc)
	if err != nil {
		if inv, ok := domain.AsInvalidInput(err); ok {
			return WSMessage{Type: "invalid", ID: req.ID, Field: inv.Field, Error: inv.Error()}
		}
		s.logger.Error("websocket calculation failed", zap.Error(err))
		return WSMessage{Type: "error", ID: req.ID, Error: "internal error"}
	}
	rendered := output.Render(result)
	return WSMessage{Type: "result", ID: req.ID, Data: &rendered}
}

// wsWritePump writes replies and keepalive pings until send is closed.
func (s *Server) wsWritePump(conn *websocket.Conn, send <-chan WSMessage, done chan<- struct{}) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		conn.Close()
		close(done)
	}()

	for {
		select {
		case msg, ok := <-send:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}
			if err := conn.WriteJSON(msg); err != nil {
				s.logger.Debug("websocket write error", zap.Error(err))
				return
			}

		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
