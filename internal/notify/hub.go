package notify

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Send pings with this period. Must be less than the reader's pong wait.
	pingPeriod = 54 * time.Second

	// Frames queued per connection before it is considered too slow.
	sendBuffer = 16
)

// client is one websocket connection on the feed. Its writer goroutine is the
// only thing that ever writes to conn; everything else goes through send.
type client struct {
	conn    *websocket.Conn
	userID  uint
	isAdmin bool
	send    chan []byte
}

// Hub routes events to connected websocket clients. It backs the live event
// feed; slow or dead connections are dropped rather than blocking dispatch.
type Hub struct {
	mu      sync.RWMutex
	clients map[*websocket.Conn]*client
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*websocket.Conn]*client)}
}

// Register adds a client connection for the given user and starts its writer
// goroutine. The writer owns all frames for the connection, pings included.
func (h *Hub) Register(conn *websocket.Conn, userID uint, isAdmin bool) {
	cl := &client{
		conn:    conn,
		userID:  userID,
		isAdmin: isAdmin,
		send:    make(chan []byte, sendBuffer),
	}
	h.mu.Lock()
	h.clients[conn] = cl
	h.mu.Unlock()
	go cl.writePump(h)
}

// Unregister removes a client connection. Closing send stops its writer,
// which closes the connection. Safe to call more than once.
func (h *Hub) Unregister(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if cl, ok := h.clients[conn]; ok {
		delete(h.clients, conn)
		close(cl.send)
	}
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Dispatch queues the event on every connection it is addressed to. Recipients
// with a user id reach that user's connections; Admins recipients reach admin
// connections. Only an event with no recipients at all is broadcast.
func (h *Hub) Dispatch(_ context.Context, e Event) error {
	payload, err := json.Marshal(e)
	if err != nil {
		return err
	}

	users := make(map[uint]bool, len(e.Recipients))
	admins := false
	for _, rcpt := range e.Recipients {
		if rcpt.UserID != 0 {
			users[rcpt.UserID] = true
		}
		if rcpt.Admins {
			admins = true
		}
	}
	addressed := len(e.Recipients) > 0

	// The lock also keeps Unregister from closing a send channel mid-queue.
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, cl := range h.clients {
		if addressed && !users[cl.userID] && !(admins && cl.isAdmin) {
			continue
		}
		select {
		case cl.send <- payload:
		default:
			log.Printf("[notify] ws client %d send queue full, dropping frame", cl.userID)
		}
	}
	return nil
}

// writePump drains the send channel onto the connection and keeps it alive
// with pings. It is the connection's single writer.
func (cl *client) writePump(h *Hub) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		h.Unregister(cl.conn)
		_ = cl.conn.Close()
	}()

	for {
		select {
		case payload, ok := <-cl.send:
			if !ok {
				deadline := time.Now().Add(writeWait)
				_ = cl.conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), deadline)
				return
			}
			_ = cl.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := cl.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				log.Printf("[notify] dropping ws client %d: %v", cl.userID, err)
				return
			}
		case <-ticker.C:
			if err := cl.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		}
	}
}
