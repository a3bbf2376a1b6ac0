package ws

import (
	"context"

	"github.com/gorilla/websocket"
	"parcelservice/pkg/logger"
)

const clientSendBuffer = 8

// Hub fans text messages out to every connected client. Clients whose
// send buffer is full are dropped rather than allowed to stall the hub.
type Hub struct {
	log        logger.Logger
	clients    map[*client]struct{}
	register   chan *client
	unregister chan *client
	broadcast  chan string
}

type client struct {
	conn *websocket.Conn
	send chan string
}

func NewHub(log logger.Logger) *Hub {
	return &Hub{
		log:        log,
		clients:    make(map[*client]struct{}),
		register:   make(chan *client),
		unregister: make(chan *client),
		broadcast:  make(chan string, 64),
	}
}

// Run owns the client set. It must be running before Register or
// Broadcast is called and exits when the context is cancelled.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			for c := range h.clients {
				h.drop(c)
			}
			return
		case c := <-h.register:
			h.clients[c] = struct{}{}
			h.log.With(
				logger.NewField("clients", len(h.clients)),
			).Debug("ws client connected")
		case c := <-h.unregister:
			if _, ok := h.clients[c]; ok {
				h.drop(c)
			}
		case msg := <-h.broadcast:
			for c := range h.clients {
				select {
				case c.send <- msg:
				default:
					h.drop(c)
				}
			}
		}
	}
}

// Broadcast queues a message for every connected client. Never blocks
// the caller; the message is dropped if the hub queue is full.
func (h *Hub) Broadcast(message string) {
	select {
	case h.broadcast <- message:
	default:
		h.log.Warn("ws broadcast queue full, message dropped")
	}
}

// Register attaches an upgraded connection to the hub and starts its
// read and write pumps.
func (h *Hub) Register(conn *websocket.Conn) {
	c := &client{
		conn: conn,
		send: make(chan string, clientSendBuffer),
	}
	h.register <- c

	go h.writePump(c)
	go h.readPump(c)
}

func (h *Hub) drop(c *client) {
	delete(h.clients, c)
	close(c.send)
	if err := c.conn.Close(); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Debug("ws connection close")
	}
}

func (h *Hub) writePump(c *client) {
	for msg := range c.send {
		err := c.conn.WriteMessage(websocket.TextMessage, []byte(msg))
		if err != nil {
			h.unregister <- c
			return
		}
	}
}

// readPump discards inbound frames; the socket is push-only. Reading
// is still required to notice closed connections.
func (h *Hub) readPump(c *client) {
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			h.unregister <- c
			return
		}
	}
}
