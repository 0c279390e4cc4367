package broadcast

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/draftsim/engine/go/internal/draft/events"
)

func TestPublishDeliversToSubscriber(t *testing.T) {
	bus := NewBus()
	sessionID := uuid.New()
	sub := bus.Subscribe(sessionID)
	defer sub.Close()

	bus.Publish(sessionID, events.PickMade, []byte(`{}`))

	select {
	case evt := <-sub.Events():
		if evt.Type != events.PickMade {
			t.Fatalf("expected PickMade, got %s", evt.Type)
		}
	case <-time.After(time.Second):
		t.Fatal("expected an event, got none")
	}
}

func TestPublishDoesNotReplayHistory(t *testing.T) {
	bus := NewBus()
	sessionID := uuid.New()

	bus.Publish(sessionID, events.PickMade, []byte(`{}`))
	sub := bus.Subscribe(sessionID)
	defer sub.Close()

	select {
	case evt := <-sub.Events():
		t.Fatalf("expected no replay, got %v", evt)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestPublishIgnoresOtherSessions(t *testing.T) {
	bus := NewBus()
	sessionA := uuid.New()
	sessionB := uuid.New()
	sub := bus.Subscribe(sessionA)
	defer sub.Close()

	bus.Publish(sessionB, events.PickMade, []byte(`{}`))

	select {
	case evt := <-sub.Events():
		t.Fatalf("expected no event from another session, got %v", evt)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestPublishDropsClockUpdateWhenSubscriberFull(t *testing.T) {
	bus := NewBus()
	sessionID := uuid.New()
	sub := bus.Subscribe(sessionID)
	defer sub.Close()

	for i := 0; i < subscriberBufferSize+10; i++ {
		bus.Publish(sessionID, events.ClockUpdate, []byte(`{}`))
	}

	if bus.SubscriberCount(sessionID) != 1 {
		t.Fatalf("expected the subscriber to remain connected after dropping ClockUpdate, got count=%d", bus.SubscriberCount(sessionID))
	}
}

func TestPublishDisconnectsSlowSubscriberOnMustDeliverEvent(t *testing.T) {
	bus := NewBus()
	sessionID := uuid.New()
	sub := bus.Subscribe(sessionID)
	defer sub.Close()

	for i := 0; i < subscriberBufferSize; i++ {
		bus.Publish(sessionID, events.ClockUpdate, []byte(`{}`))
	}
	bus.Publish(sessionID, events.PickMade, []byte(`{}`))

	if bus.SubscriberCount(sessionID) != 0 {
		t.Fatalf("expected the full subscriber to be disconnected on a must-deliver event, got count=%d", bus.SubscriberCount(sessionID))
	}

	drained := 0
	for range sub.Events() {
		drained++
	}
	if drained != subscriberBufferSize {
		t.Fatalf("expected the subscriber's full buffer of %d events to drain before close, got %d", subscriberBufferSize, drained)
	}
}

func TestCloseFreesResourcesImmediately(t *testing.T) {
	bus := NewBus()
	sessionID := uuid.New()
	sub := bus.Subscribe(sessionID)

	sub.Close()

	if bus.SubscriberCount(sessionID) != 0 {
		t.Fatalf("expected 0 subscribers after Close, got %d", bus.SubscriberCount(sessionID))
	}
	if _, ok := <-sub.Events(); ok {
		t.Fatal("expected the event channel to be closed")
	}
}
