package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"hmate/internal/model"
	"hmate/internal/repository"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096

	// Turns of history replayed to the model with every message
	maxHistory = 20
)

// Consultant answers a chat message given the earlier conversation
type Consultant interface {
	Consult(ctx context.Context, message string, history []model.ChatMessage) (*model.ChatReply, error)
}

// Handler handles WebSocket connections
type Handler struct {
	hub         *Hub
	consultant  Consultant
	transcripts repository.ChatRepo
	upgrader    websocket.Upgrader
	log         *zap.Logger
}

// NewHandler creates a new WebSocket handler. transcripts may be nil.
// Only allowedOrigin may open a session; an empty value allows any.
func NewHandler(hub *Hub, consultant Consultant, transcripts repository.ChatRepo, allowedOrigin string, log *zap.Logger) *Handler {
	return &Handler{
		hub:         hub,
		consultant:  consultant,
		transcripts: transcripts,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return allowedOrigin == "" || origin == "" || strings.EqualFold(origin, allowedOrigin)
			},
		},
		log: log.Named("ws"),
	}
}

type inboundFrame struct {
	Message string `json:"message"`
}

type sessionPayload struct {
	SessionID string `json:"sessionId"`
}

type errorPayload struct {
	Message string `json:"message"`
}

// ChatWS handles GET /api/ws/konsultasi
func (h *Handler) ChatWS(w http.ResponseWriter, r *http.Request) {
	wsConn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	conn := &Connection{
		SessionID: uuid.NewString(),
		Send:      make(chan []byte, 16),
		Hub:       h.hub,
	}
	h.hub.Register(conn)
	h.send(conn.SessionID, MsgSession, sessionPayload{SessionID: conn.SessionID})

	go h.writePump(wsConn, conn)
	go h.readPump(wsConn, conn)
}

// send queues a frame for the session, logging frames that cannot be encoded
func (h *Handler) send(sessionID string, msgType MessageType, payload interface{}) {
	if err := h.hub.SendTo(sessionID, msgType, payload); err != nil {
		h.log.Warn("failed to queue message", zap.String("sessionId", sessionID), zap.String("type", string(msgType)), zap.Error(err))
	}
}

func (h *Handler) readPump(wsConn *websocket.Conn, conn *Connection) {
	ctx, cancel := context.WithCancel(context.Background())
	defer func() {
		cancel()
		h.hub.Unregister(conn)
		wsConn.Close()
	}()

	wsConn.SetReadLimit(maxMessageSize)
	wsConn.SetReadDeadline(time.Now().Add(pongWait))
	wsConn.SetPongHandler(func(string) error {
		wsConn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	var history []model.ChatMessage
	for {
		_, data, err := wsConn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.log.Warn("websocket read error", zap.String("sessionId", conn.SessionID), zap.Error(err))
			}
			return
		}

		var frame inboundFrame
		if err := json.Unmarshal(data, &frame); err != nil || strings.TrimSpace(frame.Message) == "" {
			h.send(conn.SessionID, MsgError, errorPayload{Message: "Pesan harus berupa string dan tidak boleh kosong"})
			continue
		}

		reply, err := h.consultant.Consult(ctx, frame.Message, history)
		// The model call may outlast the read deadline
		wsConn.SetReadDeadline(time.Now().Add(pongWait))
		if err != nil {
			h.log.Warn("consultation failed", zap.String("sessionId", conn.SessionID), zap.Error(err))
			h.send(conn.SessionID, MsgError, errorPayload{Message: "Gagal berkomunikasi dengan AI"})
			continue
		}

		turn := []model.ChatMessage{
			{Role: model.RoleUser, Content: frame.Message},
			{Role: model.RoleAssistant, Content: reply.Response},
		}
		history = append(history, turn...)
		if len(history) > maxHistory {
			history = history[len(history)-maxHistory:]
		}
		if h.transcripts != nil {
			if err := h.transcripts.Append(ctx, conn.SessionID, turn...); err != nil {
				h.log.Warn("failed to store transcript", zap.String("sessionId", conn.SessionID), zap.Error(err))
			}
		}

		h.send(conn.SessionID, MsgReply, reply)
	}
}

func (h *Handler) writePump(wsConn *websocket.Conn, conn *Connection) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		wsConn.Close()
	}()

	for {
		select {
		case message, ok := <-conn.Send:
			wsConn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				wsConn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			w, err := wsConn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			w.Write(message)

			if err := w.Close(); err != nil {
				return
			}

		case <-ticker.C:
			wsConn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := wsConn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
