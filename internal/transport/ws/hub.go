package ws

import (
	"encoding/json"
	"sync"

	"go.uber.org/zap"
)

// MessageType defines the type of WebSocket message
type MessageType string

const (
	MsgSession MessageType = "session"
	MsgReply   MessageType = "reply"
	MsgError   MessageType = "error"
)

// Message is the WebSocket envelope format
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Hub tracks live consultation sessions
type Hub struct {
	conns map[string]*Connection // sessionID -> conn
	mu    sync.RWMutex

	register   chan *Connection
	unregister chan *Connection
	send       chan *outbound
	done       chan struct{}
	closeOnce  sync.Once

	log *zap.Logger
}

// Connection is one websocket chat session
type Connection struct {
	SessionID string
	Send      chan []byte
	Hub       *Hub
}

type outbound struct {
	sessionID string
	data      []byte
}

// NewHub creates a new WebSocket hub
func NewHub(log *zap.Logger) *Hub {
	h := &Hub{
		conns:      make(map[string]*Connection),
		register:   make(chan *Connection),
		unregister: make(chan *Connection),
		send:       make(chan *outbound, 256),
		done:       make(chan struct{}),
		log:        log.Named("ws"),
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			h.conns[conn.SessionID] = conn
			h.mu.Unlock()
			h.log.Info("chat session opened", zap.String("sessionId", conn.SessionID))

		case conn := <-h.unregister:
			h.mu.Lock()
			if existing, ok := h.conns[conn.SessionID]; ok && existing == conn {
				delete(h.conns, conn.SessionID)
				close(conn.Send)
				h.log.Info("chat session closed", zap.String("sessionId", conn.SessionID))
			}
			h.mu.Unlock()

		case msg := <-h.send:
			h.mu.RLock()
			if conn, ok := h.conns[msg.sessionID]; ok {
				select {
				case conn.Send <- msg.data:
				default:
					h.log.Warn("dropping message, send buffer full", zap.String("sessionId", msg.sessionID))
				}
			}
			h.mu.RUnlock()

		case <-h.done:
			h.mu.Lock()
			for id, conn := range h.conns {
				delete(h.conns, id)
				close(conn.Send)
			}
			h.mu.Unlock()
			return
		}
	}
}

// Register adds a connection
func (h *Hub) Register(conn *Connection) {
	select {
	case h.register <- conn:
	case <-h.done:
		close(conn.Send)
	}
}

// Unregister removes a connection
func (h *Hub) Unregister(conn *Connection) {
	select {
	case h.unregister <- conn:
	case <-h.done:
	}
}

// SendTo queues a message for one session. Unknown sessions are ignored.
func (h *Hub) SendTo(sessionID string, msgType MessageType, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	frame, err := json.Marshal(&Message{Type: msgType, Payload: data})
	if err != nil {
		return err
	}
	select {
	case h.send <- &outbound{sessionID: sessionID, data: frame}:
	case <-h.done:
	}
	return nil
}

// Sessions returns the number of open chat sessions
func (h *Hub) Sessions() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.conns)
}

// Close stops the hub and closes every session's send channel
func (h *Hub) Close() {
	h.closeOnce.Do(func() { close(h.done) })
}
