package broadcast

import (
	"context"

	"github.com/google/uuid"

	"github.com/draftsim/engine/go/internal/draft/events"
)

// EventSink is the durable append the Relay writes through before fanning
// an event out live — the outbox (spec.md §12 "Outbox relay").
type EventSink interface {
	InsertEvent(ctx context.Context, sessionID uuid.UUID, eventType events.Type, payload []byte) error
}

// Relay composes the outbox and the live Bus behind the single
// InsertEvent entrypoint session.App (and, through it, trade.App and
// autopick.App) already calls. Every must-deliver event both persists and
// reaches current subscribers in one call, rather than requiring callers
// to duplicate a Publish alongside every InsertEvent.
type Relay struct {
	sink EventSink
	bus  *Bus
}

func NewRelay(sink EventSink, bus *Bus) *Relay {
	return &Relay{sink: sink, bus: bus}
}

func (r *Relay) InsertEvent(ctx context.Context, sessionID uuid.UUID, eventType events.Type, payload []byte) error {
	if err := r.sink.InsertEvent(ctx, sessionID, eventType, payload); err != nil {
		return err
	}
	r.bus.Publish(sessionID, eventType, payload)
	return nil
}
