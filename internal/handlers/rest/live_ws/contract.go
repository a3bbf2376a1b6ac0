package live_ws

import (
	"github.com/gorilla/websocket"
	"parcelservice/pkg/logger"
)

type handlerLogger interface {
	Warn(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Hub interface {
	Register(conn *websocket.Conn)
}
