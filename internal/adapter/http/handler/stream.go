package handler

import (
	"net/http"
	"sync"
	"time"

	"p2p-offerbook/internal/core/domain"
	"p2p-offerbook/internal/core/ports"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
	sendBuffer     = 64

	// NavigateCurrencySettings is the navigation target of the edit entry.
	NavigateCurrencySettings = "currency_settings"
)

// StreamMetrics counts connected stream clients.
type StreamMetrics interface {
	StreamOpened()
	StreamClosed()
}

// StreamHub pushes view events to websocket clients. It also acts as the
// views' Navigator: navigation requests are delivered to every client of the
// requesting direction.
type StreamHub struct {
	upgrader websocket.Upgrader
	metrics  StreamMetrics
	log      zerolog.Logger

	mu      sync.Mutex
	clients map[*streamClient]struct{}
	closed  bool
}

type streamClient struct {
	direction domain.Direction
	conn      *websocket.Conn
	send      chan ports.ViewEvent
	done      chan struct{}
	once      sync.Once
}

// NewStreamHub creates a hub. metrics may be nil.
func NewStreamHub(metrics StreamMetrics, log zerolog.Logger) *StreamHub {
	return &StreamHub{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// The API is token protected; the operator UI may be served from
			// another origin.
			CheckOrigin: func(*http.Request) bool { return true },
		},
		metrics: metrics,
		log:     log.With().Str("component", "stream").Logger(),
		clients: make(map[*streamClient]struct{}),
	}
}

// NavigateToCurrencySettings implements ports.Navigator.
func (h *StreamHub) NavigateToCurrencySettings(direction domain.Direction) {
	h.broadcast(ports.ViewEvent{
		Kind:      ports.ViewNavigate,
		Direction: direction,
		Target:    NavigateCurrencySettings,
	})
}

// Clients returns the number of connected clients.
func (h *StreamHub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Serve upgrades the request and streams events of one view until the client
// goes away or the hub is closed. The first message is a snapshot of the
// view's visible offer count.
func (h *StreamHub) Serve(w http.ResponseWriter, r *http.Request, direction domain.Direction, book ports.OfferBook) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}

	client := &streamClient{
		direction: direction,
		conn:      conn,
		send:      make(chan ports.ViewEvent, sendBuffer),
		done:      make(chan struct{}),
	}
	if !h.register(client) {
		_ = conn.Close()
		return
	}
	defer h.unregister(client)

	sub, err := book.Observe(direction, client.push)
	if err != nil {
		h.log.Warn().Err(err).Str("direction", string(direction)).Msg("stream observe failed")
		return
	}
	defer sub.Unsubscribe()

	snapshot := ports.ViewEvent{Kind: ports.ViewChanged, Direction: direction}
	if state, err := book.State(direction); err == nil {
		snapshot.Visible = state.VisibleOffers
	}
	client.push(snapshot)

	go client.readPump()
	client.writePump(h.log)
}

// Close disconnects every client and rejects new ones.
func (h *StreamHub) Close() {
	h.mu.Lock()
	h.closed = true
	clients := make([]*streamClient, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.Unlock()

	for _, c := range clients {
		c.close()
	}
}

func (h *StreamHub) register(c *streamClient) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return false
	}
	h.clients[c] = struct{}{}
	if h.metrics != nil {
		h.metrics.StreamOpened()
	}
	return true
}

func (h *StreamHub) unregister(c *streamClient) {
	c.close()
	h.mu.Lock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		if h.metrics != nil {
			h.metrics.StreamClosed()
		}
	}
	h.mu.Unlock()
	_ = c.conn.Close()
}

func (h *StreamHub) broadcast(e ports.ViewEvent) {
	h.mu.Lock()
	targets := make([]*streamClient, 0, len(h.clients))
	for c := range h.clients {
		if c.direction == e.Direction {
			targets = append(targets, c)
		}
	}
	h.mu.Unlock()

	for _, c := range targets {
		c.push(e)
	}
}

// push never blocks; a client that cannot keep up is disconnected.
func (c *streamClient) push(e ports.ViewEvent) {
	select {
	case <-c.done:
	case c.send <- e:
	default:
		c.close()
	}
}

func (c *streamClient) close() {
	c.once.Do(func() { close(c.done) })
}

// readPump discards client messages and detects disconnects.
func (c *streamClient) readPump() {
	defer c.close()
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

func (c *streamClient) writePump(log zerolog.Logger) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-c.done:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			_ = c.conn.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return
		case e := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteJSON(e); err != nil {
				log.Debug().Err(err).Msg("stream write failed")
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
