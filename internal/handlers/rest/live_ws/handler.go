package live_ws

import (
	"net/http"

	"github.com/gorilla/websocket"
	"parcelservice/pkg/logger"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Push-only status signals carry no sensitive payload.
	CheckOrigin: func(r *http.Request) bool { return true },
}

type Handler struct {
	log handlerLogger
	hub Hub
}

func New(log handlerLogger, hub Hub) *Handler {
	handlerLog := log.With()

	return &Handler{
		log: handlerLog,
		hub: hub,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error response.
		h.log.With(
			logger.NewField("error", err),
			logger.NewField("remote_addr", r.RemoteAddr),
		).Warn("websocket upgrade failed")
		return
	}

	h.hub.Register(conn)
}
