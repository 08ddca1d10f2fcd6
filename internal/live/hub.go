// Package live relays score updates to connected websocket clients. It keeps
// no history: a client that is not connected, or too slow, misses frames.
package live

import (
	"encoding/json"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/DhavalSuthar-24/crickettourney/pkg/logging"
	"github.com/bytedance/sonic"
	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	EventScoreUpdate  = "score:update"
	EventScoreUpdated = "score:updated"
)

const (
	sendBuffer     = 64
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 64 << 10
)

var ErrClosed = errors.New("live hub closed")

// Frame is the envelope in both directions. Data is never inspected.
type Frame struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

type client struct {
	id   string
	conn *websocket.Conn
	send chan []byte
}

// Hub fans frames out to every registered client.
type Hub struct {
	mu       sync.RWMutex
	clients  map[string]*client
	closed   bool
	upgrader websocket.Upgrader
	log      *logging.Logger
}

// NewHub builds a hub that accepts websocket upgrades from allowedOrigins.
// An empty list or "*" accepts any origin.
func NewHub(allowedOrigins []string, log *logging.Logger) *Hub {
	h := &Hub{
		clients: make(map[string]*client),
		log:     log,
	}
	h.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     originChecker(allowedOrigins),
	}
	return h
}

func originChecker(allowed []string) func(r *http.Request) bool {
	set := make(map[string]bool, len(allowed))
	for _, o := range allowed {
		o = strings.TrimRight(strings.TrimSpace(o), "/")
		if o == "*" {
			return func(*http.Request) bool { return true }
		}
		if o != "" {
			set[o] = true
		}
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		return origin == "" || len(set) == 0 || set[strings.TrimRight(origin, "/")]
	}
}

// Count reports the number of connected clients.
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) register(cl *client) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return ErrClosed
	}
	h.clients[cl.id] = cl
	return nil
}

func (h *Hub) unregister(cl *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[cl.id]; ok {
		delete(h.clients, cl.id)
		close(cl.send)
	}
}

// Broadcast wraps data in a score:updated frame and queues it for every
// client. It returns how many clients accepted the frame; clients with a full
// buffer are skipped.
func (h *Hub) Broadcast(data json.RawMessage) (int, error) {
	if len(data) == 0 {
		data = json.RawMessage("null")
	}
	msg, err := sonic.Marshal(Frame{Event: EventScoreUpdated, Data: data})
	if err != nil {
		return 0, errors.Wrap(err, "encode frame")
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.closed {
		return 0, ErrClosed
	}
	delivered := 0
	for _, cl := range h.clients {
		select {
		case cl.send <- msg:
			delivered++
		default:
			h.log.Debug("live frame dropped for slow client", "client_id", cl.id)
		}
	}
	return delivered, nil
}

// PublishScore encodes payload and broadcasts it.
func (h *Hub) PublishScore(payload interface{}) error {
	raw, err := sonic.Marshal(payload)
	if err != nil {
		return errors.Wrap(err, "encode score payload")
	}
	_, err = h.Broadcast(raw)
	return err
}

// Serve upgrades the request and pumps frames until the client goes away.
func (h *Hub) Serve(w http.ResponseWriter, r *http.Request) error {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return errors.Wrap(err, "websocket upgrade")
	}
	cl := &client{id: uuid.NewString(), conn: conn, send: make(chan []byte, sendBuffer)}
	if err := h.register(cl); err != nil {
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
			time.Now().Add(writeWait))
		_ = conn.Close()
		return err
	}
	h.log.Info("live client connected", "client_id", cl.id, "clients", h.Count())

	go h.writePump(cl)
	h.readPump(cl)
	return nil
}

func (h *Hub) readPump(cl *client) {
	defer func() {
		h.unregister(cl)
		h.log.Info("live client disconnected", "client_id", cl.id)
	}()

	cl.conn.SetReadLimit(maxMessageSize)
	_ = cl.conn.SetReadDeadline(time.Now().Add(pongWait))
	cl.conn.SetPongHandler(func(string) error {
		return cl.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, msg, err := cl.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.log.Warn("live client read failed", "client_id", cl.id, "err", err)
			}
			return
		}
		var frame Frame
		if err := sonic.Unmarshal(msg, &frame); err != nil {
			h.log.Debug("ignoring malformed live frame", "client_id", cl.id, "err", err)
			continue
		}
		if frame.Event != EventScoreUpdate {
			continue
		}
		if _, err := h.Broadcast(frame.Data); err != nil {
			return
		}
	}
}

func (h *Hub) writePump(cl *client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = cl.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-cl.send:
			_ = cl.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = cl.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseGoingAway, ""))
				return
			}
			if err := cl.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = cl.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := cl.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// Close disconnects every client and refuses new ones.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.closed = true
	for id, cl := range h.clients {
		delete(h.clients, id)
		close(cl.send)
	}
}
