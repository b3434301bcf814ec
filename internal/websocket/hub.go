package websocket

import (
	"context"
	"encoding/json"
	"sync"

	"flowa-be/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RelayChannel carries activity between instances through Redis pub/sub.
const RelayChannel = "flowa_activity"

// Envelope is the frame pushed to browsers.
type Envelope struct {
	Type string                 `json:"type"`
	Data map[string]interface{} `json:"data"`
}

type relayMessage struct {
	Origin       string          `json:"origin"`
	TargetUserID string          `json:"target_user_id"`
	Message      json.RawMessage `json:"message"`
}

type Hub struct {
	// Registered clients map: UserID -> List of Clients (multi-device)
	clients map[uuid.UUID][]*Client

	register   chan *Client
	unregister chan *Client

	// done is closed when Run returns.
	done chan struct{}

	mu sync.RWMutex

	// Redis connection for cross-instance communication
	rdb *redis.Client

	// instanceID lets the relay skip messages this instance published itself.
	instanceID string

	logger logger.ILogger
}

func NewHub(rdb *redis.Client, log logger.ILogger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		clients:    make(map[uuid.UUID][]*Client),
		rdb:        rdb,
		instanceID: uuid.NewString(),
		logger:     log,
	}
}

// Run processes registrations until ctx is cancelled.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	if h.rdb != nil {
		go h.subscribeToRedis(ctx)
	}

	for {
		select {
		case <-ctx.Done():
			return
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.UserID] = append(h.clients[client.UserID], client)
			h.mu.Unlock()
			h.logger.Info("Hub", "Client registered", map[string]interface{}{"user_id": client.UserID.String()})

		case client := <-h.unregister:
			h.remove(client)
		}
	}
}

// Register attaches a client. It reports false once Run has stopped.
func (h *Hub) Register(client *Client) bool {
	select {
	case h.register <- client:
		return true
	case <-h.done:
		return false
	}
}

// Unregister detaches a client, also after Run has stopped.
func (h *Hub) Unregister(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
		h.remove(client)
	}
}

// Send implements the activity delivery for local clients and relays the
// frame to other instances.
func (h *Hub) Send(userID uuid.UUID, eventType string, data map[string]interface{}) {
	frame, err := json.Marshal(Envelope{Type: eventType, Data: data})
	if err != nil {
		h.logger.Warn("Hub", "Failed to encode frame", map[string]interface{}{"type": eventType, "error": err.Error()})
		return
	}

	h.deliver(userID, frame)

	if h.rdb != nil {
		payload, _ := json.Marshal(relayMessage{
			Origin:       h.instanceID,
			TargetUserID: userID.String(),
			Message:      frame,
		})
		if err := h.rdb.Publish(context.Background(), RelayChannel, payload).Err(); err != nil {
			h.logger.Warn("Hub", "Failed to relay frame", map[string]interface{}{"error": err.Error()})
		}
	}
}

// Connected reports how many connections a user has on this instance.
func (h *Hub) Connected(userID uuid.UUID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[userID])
}

func (h *Hub) deliver(userID uuid.UUID, frame []byte) {
	// Sends happen under the read lock so remove cannot close a queue mid-send.
	var slow []*Client
	h.mu.RLock()
	for _, client := range h.clients[userID] {
		select {
		case client.Send <- frame:
		default:
			slow = append(slow, client)
		}
	}
	h.mu.RUnlock()

	for _, client := range slow {
		h.logger.Warn("Hub", "Client Send buffer full, dropping connection", map[string]interface{}{"user_id": userID.String()})
		h.remove(client)
	}
}

// remove drops a client and closes its queue once.
func (h *Hub) remove(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	clients := h.clients[client.UserID]
	for i, c := range clients {
		if c == client {
			h.clients[client.UserID] = append(clients[:i:i], clients[i+1:]...)
			close(client.Send)
			break
		}
	}
	if len(h.clients[client.UserID]) == 0 {
		delete(h.clients, client.UserID)
	}
}

func (h *Hub) subscribeToRedis(ctx context.Context) {
	pubsub := h.rdb.Subscribe(ctx, RelayChannel)
	go func() {
		<-ctx.Done()
		pubsub.Close()
	}()

	for msg := range pubsub.Channel() {
		var relayed relayMessage
		if err := json.Unmarshal([]byte(msg.Payload), &relayed); err != nil {
			h.logger.Warn("Hub", "Redis msg parse error", map[string]interface{}{"error": err.Error()})
			continue
		}
		if relayed.Origin == h.instanceID {
			continue
		}
		uid, err := uuid.Parse(relayed.TargetUserID)
		if err != nil {
			continue
		}
		h.deliver(uid, relayed.Message)
	}
}
