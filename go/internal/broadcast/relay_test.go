package broadcast

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/draftsim/engine/go/internal/draft/events"
)

type fakeSink struct {
	inserted []events.Type
	failNext bool
}

func (f *fakeSink) InsertEvent(ctx context.Context, sessionID uuid.UUID, eventType events.Type, payload []byte) error {
	if f.failNext {
		return context.DeadlineExceeded
	}
	f.inserted = append(f.inserted, eventType)
	return nil
}

func TestRelayPersistsThenPublishes(t *testing.T) {
	bus := NewBus()
	sessionID := uuid.New()
	sub := bus.Subscribe(sessionID)
	defer sub.Close()

	sink := &fakeSink{}
	relay := NewRelay(sink, bus)

	if err := relay.InsertEvent(context.Background(), sessionID, events.PickMade, []byte(`{"ok":true}`)); err != nil {
		t.Fatalf("InsertEvent: %v", err)
	}

	if len(sink.inserted) != 1 || sink.inserted[0] != events.PickMade {
		t.Fatalf("expected the event to persist to the sink, got %v", sink.inserted)
	}

	select {
	case evt := <-sub.Events():
		if evt.Type != events.PickMade {
			t.Fatalf("expected PickMade on the bus, got %s", evt.Type)
		}
	default:
		t.Fatal("expected the event to also reach the live subscriber")
	}
}

func TestRelaySkipsPublishWhenSinkFails(t *testing.T) {
	bus := NewBus()
	sessionID := uuid.New()
	sub := bus.Subscribe(sessionID)
	defer sub.Close()

	sink := &fakeSink{failNext: true}
	relay := NewRelay(sink, bus)

	if err := relay.InsertEvent(context.Background(), sessionID, events.PickMade, []byte(`{}`)); err == nil {
		t.Fatal("expected the sink's error to propagate")
	}

	select {
	case evt := <-sub.Events():
		t.Fatalf("expected no event on the bus when the durable write failed, got %v", evt)
	default:
	}
}
