package websocket

import (
	"context"
	"encoding/json"
	"sync"

	"ai-council-be/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RoomChannel carries room broadcasts between instances.
const RoomChannel = "council_room_events"

type roomEnvelope struct {
	Origin  string          `json:"origin"`
	Room    string          `json:"room"`
	Message json.RawMessage `json:"message"`
}

// Hub tracks connected clients and the rooms they joined. Room membership is in memory
// only; Redis relays room broadcasts to clients connected to other instances.
type Hub struct {
	clients map[*Client]struct{}
	rooms   map[string]map[*Client]struct{}

	register   chan *Client
	unregister chan *Client

	mu sync.RWMutex

	// Redis connection for cross-instance communication
	rdb        *redis.Client
	instanceID string

	// Dedicated Logger
	logger logger.ILogger
}

func NewHub(rdb *redis.Client, log logger.ILogger) *Hub {
	return &Hub{
		clients:    make(map[*Client]struct{}),
		rooms:      make(map[string]map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		rdb:        rdb,
		instanceID: uuid.NewString(),
		logger:     log,
	}
}

func (h *Hub) Run(ctx context.Context) {
	if h.rdb != nil {
		go h.subscribeToRedis(ctx)
	}

	for {
		select {
		case <-ctx.Done():
			return
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = struct{}{}
			h.mu.Unlock()
			h.logger.Info("Hub", "Client registered", map[string]interface{}{"user_id": client.UserID.String()})

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				for room, members := range h.rooms {
					delete(members, client)
					if len(members) == 0 {
						delete(h.rooms, room)
					}
				}
				client.close()
			}
			h.mu.Unlock()
			h.logger.Info("Hub", "Client unregistered", map[string]interface{}{"user_id": client.UserID.String()})
		}
	}
}

func (h *Hub) Register(c *Client)   { h.register <- c }
func (h *Hub) Unregister(c *Client) { h.unregister <- c }

func (h *Hub) Join(c *Client, room string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	members, ok := h.rooms[room]
	if !ok {
		members = make(map[*Client]struct{})
		h.rooms[room] = members
	}
	members[c] = struct{}{}
}

func (h *Hub) Leave(c *Client, room string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if members, ok := h.rooms[room]; ok {
		delete(members, c)
		if len(members) == 0 {
			delete(h.rooms, room)
		}
	}
}

func (h *Hub) InRoom(c *Client, room string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	_, ok := h.rooms[room][c]
	return ok
}

func (h *Hub) RoomSize(room string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[room])
}

func (h *Hub) ConnectedClients() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// EmitToRoom sends an event to every member of room on this instance and relays it to the others.
func (h *Hub) EmitToRoom(ctx context.Context, room, event string, data any) error {
	msg, err := Encode(event, data)
	if err != nil {
		return err
	}
	h.deliverLocal(room, msg)

	if h.rdb != nil {
		payload, _ := json.Marshal(roomEnvelope{Origin: h.instanceID, Room: room, Message: msg})
		if err := h.rdb.Publish(ctx, RoomChannel, payload).Err(); err != nil {
			h.logger.Warn("Hub", "Failed to relay room event to Redis", map[string]interface{}{
				"room":  room,
				"event": event,
				"error": err,
			})
		}
	}
	return nil
}

func (h *Hub) deliverLocal(room string, msg []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for client := range h.rooms[room] {
		if !client.deliver(msg) {
			h.logger.Warn("Hub", "Client send buffer full, dropping message", map[string]interface{}{
				"user_id": client.UserID.String(),
				"room":    room,
			})
		}
	}
}

// subscribeToRedis delivers room events published by other instances to local members.
func (h *Hub) subscribeToRedis(ctx context.Context) {
	pubsub := h.rdb.Subscribe(ctx, RoomChannel)
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		var env roomEnvelope
		if err := json.Unmarshal([]byte(msg.Payload), &env); err != nil {
			h.logger.Warn("Hub", "Redis room event parse error", map[string]interface{}{"error": err})
			continue
		}
		if env.Origin == h.instanceID {
			continue
		}
		h.deliverLocal(env.Room, env.Message)
	}
}
