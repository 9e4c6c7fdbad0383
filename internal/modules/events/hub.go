package events

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"tourcrm/internal/domain"
)

// Event is the wire frame pushed to connected dashboard clients.
type Event struct {
	Type string    `json:"type"`
	At   time.Time `json:"at"`
	Data any       `json:"data"`
}

// Hub fans booking lifecycle events out to every connected client.
// One connection per user; a reconnect replaces the old socket.
// Writes happen on the hub's own goroutine, so a stalled client never
// delays the request that produced the event.
type Hub struct {
	connections map[int64]*websocket.Conn
	mutex       sync.RWMutex
	queue       chan Event
	done        chan struct{}
	closeOnce   sync.Once
}

func NewHub() *Hub {
	h := &Hub{
		connections: make(map[int64]*websocket.Conn),
		queue:       make(chan Event, 64),
		done:        make(chan struct{}),
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	for {
		select {
		case e := <-h.queue:
			h.writeAll(e)
		case <-h.done:
			return
		}
	}
}

func (h *Hub) Register(userID int64, conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if old, exists := h.connections[userID]; exists && old != nil {
		_ = old.Close()
	}
	h.connections[userID] = conn
}

// Unregister drops the user's connection, but only if it is still the
// given one; a reconnect that already replaced it stays registered.
func (h *Hub) Unregister(userID int64, conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if current, exists := h.connections[userID]; exists && current == conn {
		_ = current.Close()
		delete(h.connections, userID)
	}
}

func (h *Hub) ClientCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	return len(h.connections)
}

// Broadcast queues the event for delivery and returns immediately.
// When the queue is full the event is dropped; slow dashboards miss a
// frame rather than stalling the caller.
func (h *Hub) Broadcast(e Event) {
	select {
	case <-h.done:
	case h.queue <- e:
	default:
	}
}

// writeAll runs on the hub goroutine. Connections that fail the write
// are dropped. The hub lock serializes writes so broadcasts never
// interleave with Register or Close on one socket.
func (h *Hub) writeAll(e Event) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for id, conn := range h.connections {
		_ = conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
		if err := conn.WriteJSON(e); err != nil {
			_ = conn.Close()
			delete(h.connections, id)
		}
	}
}

func (h *Hub) BookingCreated(b *domain.Booking) {
	h.Broadcast(Event{Type: "booking.created", At: time.Now(), Data: b})
}

func (h *Hub) BookingStatusChanged(b *domain.Booking) {
	h.Broadcast(Event{Type: "booking.status_changed", At: time.Now(), Data: b})
}

func (h *Hub) Close() {
	h.closeOnce.Do(func() { close(h.done) })

	h.mutex.Lock()
	defer h.mutex.Unlock()

	for id, conn := range h.connections {
		if conn != nil {
			_ = conn.Close()
		}
		delete(h.connections, id)
	}
}
