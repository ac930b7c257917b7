package ws

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

type Message struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

type InventoryUpdateData struct {
	ItemID   string `json:"itemId"`
	Action   string `json:"action"`
	Quantity int    `json:"quantity"`
}

type Hub struct {
	connections map[uuid.UUID]*websocket.Conn
	mu          sync.RWMutex
}

var globalHub *Hub
var once sync.Once

func GetHub() *Hub {
	once.Do(func() {
		globalHub = &Hub{
			connections: make(map[uuid.UUID]*websocket.Conn),
		}
	})
	return globalHub
}

func (h *Hub) Register(userID uuid.UUID, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.connections[userID] = conn
	fmt.Printf("[Hub] User %s connected. Total connections: %d\n", userID, len(h.connections))
}

func (h *Hub) Unregister(userID uuid.UUID) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if conn, exists := h.connections[userID]; exists {
		conn.Close()
		delete(h.connections, userID)
		fmt.Printf("[Hub] User %s disconnected. Total connections: %d\n", userID, len(h.connections))
	}
}

func (h *Hub) SendToUser(userID uuid.UUID, msg Message) error {
	h.mu.RLock()
	conn, exists := h.connections[userID]
	h.mu.RUnlock()

	if !exists {
		return nil
	}

	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
	return conn.WriteMessage(websocket.TextMessage, data)
}

// SendInventoryUpdate notifies a connected user that one of their inventory
// items was added, changed or removed.
func (h *Hub) SendInventoryUpdate(userID, itemID uuid.UUID, action string, quantity int) error {
	msg := Message{
		Type: "inventory_update",
		Data: InventoryUpdateData{
			ItemID:   itemID.String(),
			Action:   action,
			Quantity: quantity,
		},
	}
	return h.SendToUser(userID, msg)
}

func (h *Hub) IsConnected(userID uuid.UUID) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	_, exists := h.connections[userID]
	return exists
}

func (h *Hub) ConnectionCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.connections)
}

func (h *Hub) GetConnectedUserIDs() []uuid.UUID {
	h.mu.RLock()
	defer h.mu.RUnlock()

	userIDs := make([]uuid.UUID, 0, len(h.connections))
	for userID := range h.connections {
		userIDs = append(userIDs, userID)
	}
	return userIDs
}
