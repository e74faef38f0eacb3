package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/MhzZZZZZ322322/MPL.mdd-sub001/live"
	"github.com/MhzZZZZZ322322/MPL.mdd-sub001/models"
)

var errInvalidStageRoom = errors.New("stage query parameter must name a tournament stage")

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Публичный read-only канал, CORS решается на уровне роутера.
	CheckOrigin: func(r *http.Request) bool { return true },
}

type WebSocketHandler struct {
	hub    *live.Hub
	logger *slog.Logger
}

func NewWebSocketHandler(hub *live.Hub, logger *slog.Logger) *WebSocketHandler {
	return &WebSocketHandler{hub: hub, logger: logger}
}

// Serve upgrades the connection and subscribes it to a stage room, e.g.
// GET /ws?stage=groups.
func (h *WebSocketHandler) Serve(w http.ResponseWriter, r *http.Request) {
	stage := r.URL.Query().Get("stage")
	switch stage {
	case string(models.StageGroups), string(models.StageTwo), string(models.StageSwiss), string(models.StageFour):
	default:
		badRequestResponse(w, r, errInvalidStageRoom)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error("websocket upgrade failed", slog.Any("error", err))
		return
	}

	client := &live.Client{
		Hub:  h.hub,
		Conn: conn,
		Send: make(chan []byte, 256),
		Room: stage,
	}
	h.hub.Register <- client

	go client.WritePump()
	go client.ReadPump()
}
