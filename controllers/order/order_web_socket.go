package orderControllers

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/junaidrashid-git/stitchlink-api/models"
	"github.com/junaidrashid-git/stitchlink-api/store"
)

const (
	writeWait  = 5 * time.Second
	sendBuffer = 16 // queued events per client
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Event is what admin dashboards receive for every store change. Order is
// set for placed orders and status changes.
type Event struct {
	store.Change
	Order *models.Order `json:"order,omitempty"`
}

// Hub pushes store changes to connected websocket clients. Each client has
// its own writer goroutine.
type Hub struct {
	store       *store.Store
	unsubscribe func()

	mu      sync.Mutex
	clients map[*client]bool
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

func NewHub(s *store.Store) *Hub {
	h := &Hub{
		store:   s,
		clients: make(map[*client]bool),
	}
	h.unsubscribe = s.Subscribe(h.onChange)
	return h
}

// OrderWebSocketHandler upgrades the request and keeps the client until it
// disconnects. Incoming messages are ignored.
func (h *Hub) OrderWebSocketHandler(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	cl := &client{conn: conn, send: make(chan []byte, sendBuffer)}
	h.mu.Lock()
	h.clients[cl] = true
	h.mu.Unlock()

	go cl.writeLoop()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			h.drop(cl)
			break
		}
	}
}

func (cl *client) writeLoop() {
	for data := range cl.send {
		_ = cl.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := cl.conn.WriteMessage(websocket.TextMessage, data); err != nil {
			cl.conn.Close()
			return
		}
	}
}

func (h *Hub) onChange(change store.Change) {
	event := Event{Change: change}
	if change.Kind == store.ChangeOrderPlaced || change.Kind == store.ChangeOrderStatus {
		if order, err := h.store.Order(change.OrderID); err == nil {
			event.Order = &order
		}
	}
	h.broadcast(event)
}

// broadcast never blocks: a client whose buffer is full is disconnected.
func (h *Hub) broadcast(event Event) {
	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("❌ Failed to encode %s event: %v", event.Kind, err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for cl := range h.clients {
		select {
		case cl.send <- data:
		default:
			log.Printf("⚠️ Dropping slow websocket client")
			h.removeLocked(cl)
		}
	}
}

func (h *Hub) drop(cl *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.removeLocked(cl)
}

func (h *Hub) removeLocked(cl *client) {
	if !h.clients[cl] {
		return
	}
	delete(h.clients, cl)
	close(cl.send)
	if cl.conn != nil {
		cl.conn.Close()
	}
}

// Clients reports how many connections are open.
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Close stops listening to the store and disconnects every client.
func (h *Hub) Close() {
	h.unsubscribe()

	h.mu.Lock()
	defer h.mu.Unlock()
	for cl := range h.clients {
		h.removeLocked(cl)
	}
}
