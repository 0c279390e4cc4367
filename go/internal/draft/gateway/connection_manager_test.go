package gateway

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"

	"github.com/draftsim/engine/go/internal/broadcast"
)

func newTestConnection(cm *ConnectionManager, sessionID uuid.UUID) *Connection {
	return &Connection{
		ID:        uuid.New().String(),
		SessionID: sessionID,
		Send:      make(chan []byte, 256),
		Manager:   cm,
		Sub:       cm.bus.Subscribe(sessionID),
	}
}

func TestRegisterUnregisterConnection(t *testing.T) {
	cm := NewConnectionManager(DefaultConnectionConfig(), broadcast.NewBus(), nil, nil)
	sessionID := uuid.New()

	conn := newTestConnection(cm, sessionID)
	cm.registerConnection(conn)

	stats := cm.GetConnectionStats()
	if stats["total_connections"] != 1 {
		t.Fatalf("total_connections = %v, want 1", stats["total_connections"])
	}

	cm.unregisterConnection(conn)

	stats = cm.GetConnectionStats()
	if stats["total_connections"] != 0 {
		t.Fatalf("total_connections after unregister = %v, want 0", stats["total_connections"])
	}
	if _, ok := <-conn.Send; ok {
		t.Fatal("expected Send channel to be closed after unregister")
	}
}

func TestGetConnectionStatsMultipleSessions(t *testing.T) {
	cm := NewConnectionManager(DefaultConnectionConfig(), broadcast.NewBus(), nil, nil)
	s1, s2 := uuid.New(), uuid.New()

	cm.registerConnection(newTestConnection(cm, s1))
	cm.registerConnection(newTestConnection(cm, s1))
	cm.registerConnection(newTestConnection(cm, s2))

	stats := cm.GetConnectionStats()
	if stats["total_connections"] != 3 {
		t.Fatalf("total_connections = %v, want 3", stats["total_connections"])
	}
	if stats["active_sessions"] != 2 {
		t.Fatalf("active_sessions = %v, want 2", stats["active_sessions"])
	}
}

func TestHandleClientMessagePing(t *testing.T) {
	cm := NewConnectionManager(DefaultConnectionConfig(), broadcast.NewBus(), nil, nil)
	conn := newTestConnection(cm, uuid.New())

	conn.handleClientMessage([]byte(`{"type":"ping"}`))

	var msg pongMessage
	if err := json.Unmarshal(<-conn.Send, &msg); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if msg.Type != "pong" {
		t.Fatalf("got %+v", msg)
	}
}

func TestHandleClientMessageSubscribe(t *testing.T) {
	cm := NewConnectionManager(DefaultConnectionConfig(), broadcast.NewBus(), nil, nil)
	sessionID := uuid.New()
	conn := newTestConnection(cm, sessionID)

	conn.handleClientMessage([]byte(`{"type":"subscribe"}`))

	var msg subscribedMessage
	if err := json.Unmarshal(<-conn.Send, &msg); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if msg.Type != "subscribed" || msg.SessionID != sessionID {
		t.Fatalf("got %+v", msg)
	}
}

func TestHandleClientMessageUnrecognizedType(t *testing.T) {
	cm := NewConnectionManager(DefaultConnectionConfig(), broadcast.NewBus(), nil, nil)
	conn := newTestConnection(cm, uuid.New())

	conn.handleClientMessage([]byte(`{"type":"bogus"}`))

	var msg errorMessage
	if err := json.Unmarshal(<-conn.Send, &msg); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if msg.Type != "error" {
		t.Fatalf("got %+v", msg)
	}
}

func TestHandleClientMessageInvalidJSON(t *testing.T) {
	cm := NewConnectionManager(DefaultConnectionConfig(), broadcast.NewBus(), nil, nil)
	conn := newTestConnection(cm, uuid.New())

	conn.handleClientMessage([]byte(`not json`))

	var msg errorMessage
	if err := json.Unmarshal(<-conn.Send, &msg); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if msg.Type != "error" {
		t.Fatalf("got %+v", msg)
	}
}
