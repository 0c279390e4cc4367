package gateway

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/draftsim/engine/go/internal/broadcast"
)

// ConnectionManager owns the WebSocket connections for the Real-Time Stream
// (spec.md §6.2). Unlike the draft_id-keyed pool this replaces, connections
// are keyed by session_id: a session is the unit both the Broadcast Bus and
// the Session Coordinator operate on, and a draft has no life independent
// of the session built on it.
type ConnectionManager struct {
	sessionConnections map[uuid.UUID]map[*Connection]bool
	mu                 sync.RWMutex

	upgrader websocket.Upgrader
	config   ConnectionConfig
	bus      *broadcast.Bus
	names    NameResolver
	years    DraftYearLookup
}

// DraftYearLookup resolves the draft year backing a session, needed to
// scope player-name lookups (catalog players are keyed by draft year).
type DraftYearLookup interface {
	DraftYearForSession(sessionID uuid.UUID) (int, error)
}

// Connection represents a single subscriber's WebSocket.
type Connection struct {
	ID        string
	SessionID uuid.UUID
	Conn      *websocket.Conn
	Send      chan []byte
	Manager   *ConnectionManager
	Sub       *broadcast.Subscriber

	ConnectedAt time.Time
	LastPing    time.Time
}

// ConnectionConfig holds configuration for WebSocket connections.
type ConnectionConfig struct {
	WriteTimeout    time.Duration
	ReadTimeout     time.Duration
	PingInterval    time.Duration
	MaxMessageSize  int64
	ReadBufferSize  int
	WriteBufferSize int
	CheckOrigin     func(r *http.Request) bool
}

// DefaultConnectionConfig returns default WebSocket configuration.
func DefaultConnectionConfig() ConnectionConfig {
	return ConnectionConfig{
		WriteTimeout:    10 * time.Second,
		ReadTimeout:     60 * time.Second,
		PingInterval:    30 * time.Second,
		MaxMessageSize:  1024,
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}
}

// NewConnectionManager creates a new WebSocket connection manager backed by
// bus for event delivery, names/years for pick_made enrichment.
func NewConnectionManager(config ConnectionConfig, bus *broadcast.Bus, names NameResolver, years DraftYearLookup) *ConnectionManager {
	return &ConnectionManager{
		sessionConnections: make(map[uuid.UUID]map[*Connection]bool),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  config.ReadBufferSize,
			WriteBufferSize: config.WriteBufferSize,
			CheckOrigin:     config.CheckOrigin,
		},
		config: config,
		bus:    bus,
		names:  names,
		years:  years,
	}
}

// UpgradeConnection upgrades an HTTP connection to WebSocket and subscribes
// it to sessionID on the Broadcast Bus.
func (cm *ConnectionManager) UpgradeConnection(w http.ResponseWriter, r *http.Request, sessionID uuid.UUID) error {
	conn, err := cm.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error().Err(err).Msg("failed to upgrade WebSocket connection")
		return err
	}

	connection := &Connection{
		ID:          uuid.New().String(),
		SessionID:   sessionID,
		Conn:        conn,
		Send:        make(chan []byte, 256),
		Manager:     cm,
		Sub:         cm.bus.Subscribe(sessionID),
		ConnectedAt: time.Now(),
		LastPing:    time.Now(),
	}

	cm.registerConnection(connection)

	go connection.writePump()
	go connection.readPump()
	go connection.relayPump()

	connection.Send <- marshalSubscribed(sessionID)

	log.Info().
		Str("connection_id", connection.ID).
		Str("session_id", sessionID.String()).
		Msg("websocket connection established")

	return nil
}

func (cm *ConnectionManager) registerConnection(conn *Connection) {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if cm.sessionConnections[conn.SessionID] == nil {
		cm.sessionConnections[conn.SessionID] = make(map[*Connection]bool)
	}
	cm.sessionConnections[conn.SessionID][conn] = true
}

func (cm *ConnectionManager) unregisterConnection(conn *Connection) {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if conns, exists := cm.sessionConnections[conn.SessionID]; exists {
		if _, exists := conns[conn]; exists {
			delete(conns, conn)
			close(conn.Send)
			if len(conns) == 0 {
				delete(cm.sessionConnections, conn.SessionID)
			}
		}
	}
	conn.Sub.Close()
}

// GetConnectionStats returns statistics about active connections.
func (cm *ConnectionManager) GetConnectionStats() map[string]any {
	cm.mu.RLock()
	defer cm.mu.RUnlock()

	total := 0
	perSession := make(map[string]int)
	for sessionID, conns := range cm.sessionConnections {
		total += len(conns)
		perSession[sessionID.String()] = len(conns)
	}

	return map[string]any{
		"total_connections": total,
		"active_sessions":   len(cm.sessionConnections),
		"session_connections": perSession,
	}
}

// relayPump drains the bus subscription, translates each event to its
// §6.2 wire shape, and hands it to writePump.
func (c *Connection) relayPump() {
	year := 0
	if c.Manager.years != nil {
		if y, err := c.Manager.years.DraftYearForSession(c.SessionID); err == nil {
			year = y
		}
	}

	for evt := range c.Sub.Events() {
		msg, err := translate(c.SessionID, evt.Type, evt.Payload, c.Manager.names, year)
		if err != nil {
			log.Error().Err(err).Str("connection_id", c.ID).Msg("failed to translate event for delivery")
			continue
		}
		select {
		case c.Send <- msg:
		default:
			log.Warn().Str("connection_id", c.ID).Msg("send buffer full, closing connection")
			c.Conn.Close()
			return
		}
	}
}

func (c *Connection) writePump() {
	ticker := time.NewTicker(c.Manager.config.PingInterval)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(c.Manager.config.WriteTimeout))
			if !ok {
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
				log.Error().Err(err).Str("connection_id", c.ID).Msg("failed to write message")
				return
			}

		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(c.Manager.config.WriteTimeout))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
			c.LastPing = time.Now()
		}
	}
}

func (c *Connection) readPump() {
	defer func() {
		c.Manager.unregisterConnection(c)
		c.Conn.Close()
	}()

	c.Conn.SetReadLimit(c.Manager.config.MaxMessageSize)
	c.Conn.SetReadDeadline(time.Now().Add(c.Manager.config.ReadTimeout))
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(c.Manager.config.ReadTimeout))
		c.LastPing = time.Now()
		return nil
	})

	for {
		_, message, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Error().Err(err).Str("connection_id", c.ID).Msg("unexpected close")
			}
			break
		}
		c.handleClientMessage(message)
		c.Conn.SetReadDeadline(time.Now().Add(c.Manager.config.ReadTimeout))
	}
}

// handleClientMessage processes spec.md §6.2 client->server messages.
// "subscribe" is a no-op beyond acknowledgement: the connection is already
// bound to its session_id at upgrade time (taken from the URL), since a
// single socket serves exactly one session for its lifetime.
func (c *Connection) handleClientMessage(message []byte) {
	var msg ClientMessage
	if err := json.Unmarshal(message, &msg); err != nil {
		c.trySend(marshalError("invalid message: %v", err))
		return
	}

	switch msg.Type {
	case "ping":
		c.trySend(marshalPong())
	case "subscribe":
		c.trySend(marshalSubscribed(c.SessionID))
	default:
		c.trySend(marshalError("unrecognized message type %q", msg.Type))
	}
}

func (c *Connection) trySend(b []byte) {
	select {
	case c.Send <- b:
	default:
	}
}
