package httpserver

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for the avatar renderer front-end
	},
}

// handleWebSocket upgrades a viewer connection and parks it on the
// broadcaster. The channel is unidirectional from the server's perspective:
// inbound viewer messages are drained and ignored.
func (s *Server) handleWebSocket(c echo.Context) error {
	// Plain HTTP requests to the root are not served.
	if !websocket.IsWebSocketUpgrade(c.Request()) {
		return echo.ErrNotFound
	}

	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return fmt.Errorf("failed to upgrade WebSocket: %w", err)
	}

	viewerID := uuid.New()
	if err := s.broadcaster.Register(viewerID, conn); err != nil {
		slog.Warn("Failed to register viewer", "viewer_id", viewerID.String(), "error", err)
		return nil
	}

	// Read pump, blocks until the connection closes
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	s.broadcaster.Unregister(conn)

	return nil //nolint:nilerr // ReadMessage err is block-scoped; outer err is nil
}
