package outbox

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Event is the outbox-relay view of a session_events row: the Event entity
// from spec §3 doubles as the outbox table, so this mirrors events.Type's
// enumeration rather than defining its own.
type Event struct {
	ID        uuid.UUID       `json:"id"`
	SessionID uuid.UUID       `json:"session_id"`
	EventType string          `json:"event_type"`
	Payload   json.RawMessage `json:"payload"`
	CreatedAt time.Time       `json:"created_at"`
	SentAt    *time.Time      `json:"sent_at,omitempty"`
}
