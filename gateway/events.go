package gateway

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/c360/linearkit/metric"
)

// sendBuffer is the per-client event buffer. A client that falls this far
// behind is disconnected rather than blocking the publisher.
const sendBuffer = 32

// Event describes one successful container mutation, broadcast to all
// watch feed subscribers.
type Event struct {
	Session   string    `json:"session"`
	Container string    `json:"container"`
	Op        string    `json:"op"`
	Item      string    `json:"item,omitempty"`
	Size      int       `json:"size"`
	Time      time.Time `json:"time"`
}

type watchClient struct {
	conn *websocket.Conn
	send chan Event
}

// Hub fans mutation events out to connected websocket clients.
type Hub struct {
	logger   *slog.Logger
	metrics  *metric.Metrics
	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[*watchClient]struct{}
	closed  bool
}

// NewHub creates an event hub. The upgrader accepts any origin; origin
// policy is enforced by the gateway's CORS configuration, not here.
func NewHub(logger *slog.Logger, metrics *metric.Metrics) *Hub {
	if logger == nil {
		logger = slog.Default()
	}
	return &Hub{
		logger: logger.With("component", "watch-hub"),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		metrics: metrics,
		clients: make(map[*watchClient]struct{}),
	}
}

// ServeHTTP upgrades the request to a websocket and streams events until
// the client disconnects.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error response
		h.logger.Debug("websocket upgrade failed", "error", err)
		return
	}

	c := &watchClient{conn: conn, send: make(chan Event, sendBuffer)}
	if !h.register(c) {
		_ = conn.Close()
		return
	}

	go h.writePump(c)
	h.readPump(c)
}

// register adds a client, refusing when the hub is already closed.
func (h *Hub) register(c *watchClient) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return false
	}
	h.clients[c] = struct{}{}
	if h.metrics != nil {
		h.metrics.RecordWatchClients(len(h.clients))
	}
	h.logger.Debug("watch client connected", "clients", len(h.clients))
	return true
}

// unregister removes a client and closes its send channel exactly once.
func (h *Hub) unregister(c *watchClient) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[c]; !ok {
		return
	}
	delete(h.clients, c)
	close(c.send)
	if h.metrics != nil {
		h.metrics.RecordWatchClients(len(h.clients))
	}
	h.logger.Debug("watch client disconnected", "clients", len(h.clients))
}

// readPump consumes client frames until the connection errors. Clients do
// not send application data; reading only services close frames.
func (h *Hub) readPump(c *watchClient) {
	defer func() {
		h.unregister(c)
		_ = c.conn.Close()
	}()

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

// writePump serialises events to the client connection.
func (h *Hub) writePump(c *watchClient) {
	for ev := range c.send {
		if err := c.conn.WriteJSON(ev); err != nil {
			break
		}
	}
	_ = c.conn.Close()
}

// Publish broadcasts an event to all connected clients. Slow clients are
// dropped instead of blocking the caller.
func (h *Hub) Publish(ev Event) {
	h.mu.Lock()
	var dropped []*watchClient
	for c := range h.clients {
		select {
		case c.send <- ev:
		default:
			dropped = append(dropped, c)
		}
	}
	h.mu.Unlock()

	for _, c := range dropped {
		h.logger.Warn("dropping slow watch client")
		h.unregister(c)
	}

	if h.metrics != nil {
		h.metrics.RecordEventPublished()
	}
}

// ClientCount returns the number of connected watch clients.
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Close disconnects all clients and refuses new ones.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	h.closed = true
	for c := range h.clients {
		delete(h.clients, c)
		close(c.send)
	}
	if h.metrics != nil {
		h.metrics.RecordWatchClients(0)
	}
}
