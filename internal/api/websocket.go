package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/milanbojovic/OrderOook/pkg/logger"

	orderv1 "github.com/milanbojovic/OrderOook/internal/domain/order/v1"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// CORS is handled by the outer middleware
		return true
	},
}

// bookEvent is broadcast to every connected client after a book mutation.
type bookEvent struct {
	Type         string            `json:"type"`
	CurrencyPair string            `json:"currencyPair"`
	Book         orderv1.OrderBook `json:"book"`
}

// Hub maintains active WebSocket connections and broadcasts book changes.
type Hub struct {
	clients    map[*client]bool
	broadcast  chan []byte
	register   chan *client
	unregister chan *client
	logger     *logger.Logger
}

// NewHub creates a new WebSocket hub.
func NewHub(log *logger.Logger) *Hub {
	return &Hub{
		clients:    make(map[*client]bool),
		broadcast:  make(chan []byte, 256),
		register:   make(chan *client),
		unregister: make(chan *client),
		logger:     log,
	}
}

// Run owns the client set until ctx is cancelled.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case c := <-h.register:
			h.clients[c] = true

		case c := <-h.unregister:
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.send)
			}

		case message := <-h.broadcast:
			for c := range h.clients {
				select {
				case c.send <- message:
				default:
					// client too slow, drop it
					close(c.send)
					delete(h.clients, c)
				}
			}

		case <-ctx.Done():
			for c := range h.clients {
				close(c.send)
				delete(h.clients, c)
			}
			return
		}
	}
}

// BookChanged implements engine.Watcher by broadcasting the updated book.
func (h *Hub) BookChanged(currencyPair string, book orderv1.OrderBook) {
	message, err := json.Marshal(bookEvent{
		Type:         "orderbook",
		CurrencyPair: currencyPair,
		Book:         book,
	})
	if err != nil {
		h.logger.Error(err, logger.Field{Key: "action", Value: "marshal_book_event"})
		return
	}

	select {
	case h.broadcast <- message:
	default:
		// nobody is draining fast enough, skip this update
	}
}

type client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.ErrorContext(r.Context(), err, logger.Field{Key: "action", Value: "ws_upgrade"})
		return
	}

	c := &client{
		hub:  s.hub,
		conn: conn,
		send: make(chan []byte, 64),
	}
	s.hub.register <- c

	go c.writePump()
	go c.readPump()
}

func (c *client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	// the feed is one-way; reads only service control frames
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (c *client) writePump() {
	defer c.conn.Close()

	for message := range c.send {
		c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
		if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			return
		}
	}
	c.conn.WriteMessage(websocket.CloseMessage, []byte{})
}
