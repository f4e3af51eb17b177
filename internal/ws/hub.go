package ws

import (
	"context"
	"sync"

	"workmatch/internal/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type envelope struct {
	managerID uuid.UUID
	payload   []byte
}

// Hub fans notification events out to the websocket clients of the manager
// they are addressed to. All map mutation happens on the Run goroutine.
type Hub struct {
	clients    map[*Client]bool
	byManager  map[uuid.UUID]map[*Client]bool
	deliver    chan envelope
	register   chan *Client
	unregister chan *Client
	mutex      sync.RWMutex
	logger     *zap.Logger

	// done is closed when Run returns. stopped flips under lifecycle once
	// no further registration can be queued.
	done      chan struct{}
	lifecycle sync.RWMutex
	stopped   bool
}

func NewHub(log *zap.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		byManager:  make(map[uuid.UUID]map[*Client]bool),
		deliver:    make(chan envelope, 1024),
		register:   make(chan *Client, 128),
		unregister: make(chan *Client, 128),
		logger:     logger.OrNop(log),
		done:       make(chan struct{}),
	}
}

// Run serves the hub until ctx is cancelled, then disconnects every client.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.shutdown()
			return

		case client := <-h.register:
			if client == nil {
				continue
			}
			h.mutex.Lock()
			h.clients[client] = true
			set := h.byManager[client.managerID]
			if set == nil {
				set = make(map[*Client]bool)
				h.byManager[client.managerID] = set
			}
			set[client] = true
			total := len(h.clients)
			h.mutex.Unlock()
			h.logger.Info("ws connected", zap.String("manager_id", client.managerID.String()), zap.Int("total_clients", total))

		case client := <-h.unregister:
			if client == nil {
				continue
			}
			h.remove(client)

		case msg := <-h.deliver:
			h.mutex.RLock()
			targets := make([]*Client, 0, len(h.byManager[msg.managerID]))
			for c := range h.byManager[msg.managerID] {
				targets = append(targets, c)
			}
			h.mutex.RUnlock()

			for _, client := range targets {
				select {
				case client.send <- msg.payload:
				default:
					h.remove(client)
				}
			}
			h.logger.Debug("ws deliver", zap.String("manager_id", msg.managerID.String()), zap.Int("clients", len(targets)))
		}
	}
}

// shutdown disconnects every client, including ones still queued for
// registration. Register and Unregister never block afterwards.
func (h *Hub) shutdown() {
	close(h.done)

	h.lifecycle.Lock()
	h.stopped = true
	h.lifecycle.Unlock()

	h.mutex.Lock()
	for c := range h.clients {
		delete(h.clients, c)
		close(c.send)
	}
	h.byManager = make(map[uuid.UUID]map[*Client]bool)
	h.mutex.Unlock()

	for {
		select {
		case c := <-h.register:
			if c != nil {
				close(c.send)
			}
		default:
			return
		}
	}
}

func (h *Hub) remove(client *Client) {
	h.mutex.Lock()
	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		if set := h.byManager[client.managerID]; set != nil {
			delete(set, client)
			if len(set) == 0 {
				delete(h.byManager, client.managerID)
			}
		}
		close(client.send)
	}
	total := len(h.clients)
	h.mutex.Unlock()
	h.logger.Info("ws disconnected", zap.String("manager_id", client.managerID.String()), zap.Int("total_clients", total))
}

// Register queues client for delivery. On a stopped hub the client's send
// channel is closed right away so its write pump exits.
func (h *Hub) Register(client *Client) {
	if h == nil || client == nil {
		return
	}

	h.lifecycle.RLock()
	defer h.lifecycle.RUnlock()
	if h.stopped {
		close(client.send)
		return
	}
	select {
	case h.register <- client:
	case <-h.done:
		close(client.send)
	}
}

func (h *Hub) Unregister(client *Client) {
	if h == nil || client == nil {
		return
	}
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

// SendTo queues payload for every live client of managerID. A full queue
// drops the message.
func (h *Hub) SendTo(managerID uuid.UUID, payload []byte) {
	if h == nil {
		return
	}
	select {
	case h.deliver <- envelope{managerID: managerID, payload: payload}:
	default:
		h.logger.Warn("ws message dropped", zap.String("reason", "buffer_full"))
	}
}

func (h *Hub) ClientCount() int {
	if h == nil {
		return 0
	}
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.clients)
}
