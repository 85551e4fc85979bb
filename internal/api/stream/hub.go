package stream

import (
	dto "baccarat_backend/internal/api/dto/session"
	"baccarat_backend/internal/converter"
	"baccarat_backend/internal/logger"
	"baccarat_backend/internal/model"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeWait      = 10 * time.Second
	maxMessageSize = 512
	sendBuffer     = 32
)

// Message is one frame pushed to stream clients.
type Message struct {
	Type    string              `json:"type"` // всегда "session"
	Session dto.SessionResponse `json:"session"`
}

type client struct {
	conn *websocket.Conn
	send chan []byte
	done chan struct{}
	once sync.Once
}

func (c *client) close() {
	c.once.Do(func() {
		close(c.done)
		_ = c.conn.Close()
	})
}

// Hub рассылает обновления сессии всем ее websocket клиентам
type Hub struct {
	mu       sync.RWMutex
	clients  map[string]map[*client]struct{}
	upgrader websocket.Upgrader
	ping     time.Duration
}

func NewHub(pingInterval time.Duration) *Hub {
	return &Hub{
		clients: make(map[string]map[*client]struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		ping: pingInterval,
	}
}

// Publish implements service.Publisher. Slow clients are disconnected.
func (h *Hub) Publish(sessionID string, view model.SessionView) {
	data, err := encode(view)
	if err != nil {
		logger.Log.Error("encode stream message", zap.String("session_id", sessionID), zap.Error(err))
		return
	}

	var slow []*client
	h.mu.RLock()
	for c := range h.clients[sessionID] {
		select {
		case c.send <- data:
		default:
			slow = append(slow, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range slow {
		logger.Log.Warn("dropping slow stream client", zap.String("session_id", sessionID))
		h.unregister(sessionID, c)
	}
}

// Serve upgrades the request and streams updates until the client leaves.
// initial is sent right after the upgrade.
func (h *Hub) Serve(w http.ResponseWriter, r *http.Request, sessionID string, initial model.SessionView) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Log.Warn("websocket upgrade", zap.String("session_id", sessionID), zap.Error(err))
		return
	}

	c := &client{
		conn: conn,
		send: make(chan []byte, sendBuffer),
		done: make(chan struct{}),
	}
	if data, err := encode(initial); err == nil {
		c.send <- data
	}
	h.register(sessionID, c)
	defer h.unregister(sessionID, c)

	go h.writeLoop(c)
	h.readLoop(c)
}

// Clients returns how many clients watch the session.
func (h *Hub) Clients(sessionID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[sessionID])
}

// Close disconnects every client.
func (h *Hub) Close() {
	h.mu.Lock()
	all := h.clients
	h.clients = make(map[string]map[*client]struct{})
	h.mu.Unlock()

	for _, set := range all {
		for c := range set {
			c.close()
		}
	}
}

func (h *Hub) register(sessionID string, c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	set, ok := h.clients[sessionID]
	if !ok {
		set = make(map[*client]struct{})
		h.clients[sessionID] = set
	}
	set[c] = struct{}{}
}

func (h *Hub) unregister(sessionID string, c *client) {
	h.mu.Lock()
	if set, ok := h.clients[sessionID]; ok {
		delete(set, c)
		if len(set) == 0 {
			delete(h.clients, sessionID)
		}
	}
	h.mu.Unlock()
	c.close()
}

// readLoop only keeps the read deadline fresh; client frames are ignored.
func (h *Hub) readLoop(c *client) {
	pongWait := 2 * h.ping
	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) writeLoop(c *client) {
	ticker := time.NewTicker(h.ping)
	defer ticker.Stop()

	for {
		select {
		case <-c.done:
			return
		case msg := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				c.close()
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				c.close()
				return
			}
		}
	}
}

func encode(view model.SessionView) ([]byte, error) {
	return json.Marshal(Message{Type: "session", Session: converter.ToSessionResponse(view)})
}
