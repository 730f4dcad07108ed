package ws

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Connection wraps a websocket.Conn with bookkeeping metadata. Liveness is
// tracked through an atomic so the read goroutine's pong handler and the
// heartbeat loop never race on it.
type Connection struct {
	Conn   *websocket.Conn
	UserID string

	lastSeen atomic.Int64
}

// Touch records activity on the connection.
func (c *Connection) Touch() {
	c.lastSeen.Store(time.Now().UnixNano())
}

// LastSeen returns the time of the last recorded activity.
func (c *Connection) LastSeen() time.Time {
	return time.Unix(0, c.lastSeen.Load())
}

// Manager tracks live websocket connections per user so freshly persisted
// notifications can be pushed without polling. A user may hold several
// connections (multiple tabs/devices).
type Manager struct {
	mu          sync.RWMutex
	connections map[string]map[*Connection]struct{}
	logger      *zap.Logger
}

func NewManager(logger *zap.Logger) *Manager {
	return &Manager{
		connections: make(map[string]map[*Connection]struct{}),
		logger:      logger,
	}
}

// Add registers a connection for a user.
func (m *Manager) Add(userID string, conn *websocket.Conn) *Connection {
	c := &Connection{Conn: conn, UserID: userID}
	c.Touch()

	m.mu.Lock()
	if _, ok := m.connections[userID]; !ok {
		m.connections[userID] = make(map[*Connection]struct{})
	}
	m.connections[userID][c] = struct{}{}
	total := len(m.connections[userID])
	m.mu.Unlock()

	m.logger.Info("ws connected", zap.String("user_id", userID), zap.Int("total", total))
	return c
}

// Remove disconnects and removes a connection.
func (m *Manager) Remove(c *Connection) {
	m.mu.Lock()
	if conns, ok := m.connections[c.UserID]; ok {
		delete(conns, c)
		if len(conns) == 0 {
			delete(m.connections, c.UserID)
		}
	}
	m.mu.Unlock()

	_ = c.Conn.Close()
	m.logger.Info("ws disconnected", zap.String("user_id", c.UserID))
}

// Send writes a JSON payload to every connection held by the user. Failed
// connections are dropped; delivery is best effort.
func (m *Manager) Send(userID string, payload interface{}) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for c := range m.connections[userID] {
		if err := c.Conn.WriteJSON(payload); err != nil {
			m.logger.Warn("ws send failed", zap.String("user_id", userID), zap.Error(err))
			go m.Remove(c)
		}
	}
}

// Heartbeat pings all connections periodically and drops stale ones.
func (m *Manager) Heartbeat(interval time.Duration) {
	ticker := time.NewTicker(interval)
	for range ticker.C {
		m.mu.RLock()
		for _, conns := range m.connections {
			for c := range conns {
				if time.Since(c.LastSeen()) > 2*interval {
					go m.Remove(c)
					continue
				}
				_ = c.Conn.WriteControl(websocket.PingMessage, []byte{}, time.Now().Add(time.Second))
			}
		}
		m.mu.RUnlock()
	}
}
