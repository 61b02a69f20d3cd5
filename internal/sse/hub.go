package sse

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/TextRealm_Go/internal/event"
)

// Event is one message on the feed.
type Event struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	PlayerID  string `json:"player_id,omitempty"`
	Timestamp int64  `json:"timestamp"`
	Payload   any    `json:"payload"`
}

// Client is one connected feed reader. A nil type filter accepts every
// type; an empty PlayerID accepts every player.
type Client struct {
	ID       string
	Events   chan Event
	types    map[string]bool
	playerID string
}

func (c *Client) wants(e Event) bool {
	if c.types != nil && !c.types[e.Type] {
		return false
	}
	return c.playerID == "" || c.playerID == e.PlayerID
}

// Hub fans committed game events out to feed clients. Slow clients lose
// events rather than block the broadcaster.
type Hub struct {
	clients    map[string]*Client
	broadcast  chan Event
	register   chan *Client
	unregister chan string
	mu         sync.RWMutex
	shutdown   chan struct{}
	stopOnce   sync.Once
	wg         sync.WaitGroup
	now        func() time.Time
}

// NewHub creates a hub; call Start before use.
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		broadcast:  make(chan Event, BroadcastBufferSize),
		register:   make(chan *Client, ClientChannelBuffer),
		unregister: make(chan string, ClientChannelBuffer),
		shutdown:   make(chan struct{}),
		now:        time.Now,
	}
}

// Start starts the hub's broadcast loop
func (h *Hub) Start() {
	h.wg.Add(1)
	go h.run()
}

// Stop ends the loop and closes every client channel, which ends their
// streams. Safe to call more than once.
func (h *Hub) Stop() {
	h.stopOnce.Do(func() {
		close(h.shutdown)
		h.wg.Wait()

		h.mu.Lock()
		for _, c := range h.clients {
			close(c.Events)
		}
		clear(h.clients)
		h.mu.Unlock()
	})
}

func (h *Hub) run() {
	defer h.wg.Done()

	for {
		select {
		case c := <-h.register:
			h.mu.Lock()
			h.clients[c.ID] = c
			h.mu.Unlock()

		case id := <-h.unregister:
			h.mu.Lock()
			if c, ok := h.clients[id]; ok {
				close(c.Events)
				delete(h.clients, id)
			}
			h.mu.Unlock()

		case e := <-h.broadcast:
			h.mu.RLock()
			for _, c := range h.clients {
				if !c.wants(e) {
					continue
				}
				select {
				case c.Events <- e:
				default:
					slog.Debug(LogMsgEventDropped, "client_id", c.ID, "type", e.Type)
				}
			}
			h.mu.RUnlock()

		case <-h.shutdown:
			return
		}
	}
}

// Register adds a client filtered to types (all when empty) and playerID
// (all when empty).
func (h *Hub) Register(types []string, playerID string) *Client {
	c := &Client{
		ID:       uuid.NewString(),
		Events:   make(chan Event, ClientEventBuffer),
		playerID: playerID,
	}
	if len(types) > 0 {
		c.types = make(map[string]bool, len(types))
		for _, t := range types {
			c.types[t] = true
		}
	}

	select {
	case <-h.shutdown:
		close(c.Events)
		return c
	default:
	}
	select {
	case h.register <- c:
	case <-h.shutdown:
		close(c.Events)
	}
	return c
}

// Unregister removes a client from the hub
func (h *Hub) Unregister(clientID string) {
	select {
	case h.unregister <- clientID:
	case <-h.shutdown:
	}
}

// Publish queues a game event for broadcast. It never blocks.
func (h *Hub) Publish(evt event.Event) {
	e := Event{
		ID:        uuid.NewString(),
		Type:      string(evt.Type),
		PlayerID:  evt.PlayerID,
		Timestamp: h.now().Unix(),
		Payload:   evt.Payload,
	}

	select {
	case h.broadcast <- e:
	default:
		slog.Warn(LogMsgEventDropped, "type", e.Type, "reason", "broadcast buffer full")
	}
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// FormatSSEMessage renders e in text/event-stream framing.
func FormatSSEMessage(e Event) ([]byte, error) {
	data, err := json.Marshal(e)
	if err != nil {
		return nil, err
	}
	return fmt.Appendf(nil, "id: %s\nevent: %s\ndata: %s\n\n", e.ID, e.Type, data), nil
}
