package wshandler

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/Finaxis002/FCOBackend/internal/middleware"
	"github.com/Finaxis002/FCOBackend/pkg/ws"
)

type WSHandler struct {
	manager *ws.Manager
	logger  *zap.Logger
}

func NewWSHandler(manager *ws.Manager, logger *zap.Logger) *WSHandler {
	return &WSHandler{manager: manager, logger: logger}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// TODO: tighten with allowed origins once the frontend domains settle
		return true
	},
}

// HandleNotifications upgrades HTTP to WebSocket and registers the
// connection so notification fan-out can push to it.
func (h *WSHandler) HandleNotifications(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "missing identity", http.StatusUnauthorized)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("ws upgrade failed", zap.String("user_id", userID), zap.Error(err))
		return
	}

	c := h.manager.Add(userID, conn)

	conn.SetReadLimit(512)
	conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	conn.SetPongHandler(func(string) error {
		c.Touch()
		conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	h.manager.Remove(c)
}
