// Package broadcast implements the Broadcast Bus (spec.md §4.5): a
// single-writer, multi-reader fan-out of session events to interested
// observers for the duration of their subscription.
package broadcast

import (
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/draftsim/engine/go/internal/draft/events"
)

// subscriberBufferSize bounds how far a subscriber may lag before it is
// treated as slow. Sized like the gateway's per-connection send buffer.
const subscriberBufferSize = 256

// Event is one published session event, the unit the bus fans out.
type Event struct {
	SessionID uuid.UUID
	Type      events.Type
	Payload   []byte
}

// Subscriber is a single observer's inbox, returned by Subscribe.
type Subscriber struct {
	ch        chan Event
	sessionID uuid.UUID
	bus       *Bus
	closeOnce sync.Once
}

// Events returns the channel new events arrive on. Closed on Close.
func (s *Subscriber) Events() <-chan Event { return s.ch }

// Close ends the subscription and frees its resources immediately.
func (s *Subscriber) Close() {
	s.bus.unsubscribe(s)
}

// Bus is the process-wide fan-out: one instance serves every session.
type Bus struct {
	mu   sync.RWMutex
	subs map[uuid.UUID]map[*Subscriber]bool
}

func NewBus() *Bus {
	return &Bus{subs: make(map[uuid.UUID]map[*Subscriber]bool)}
}

// Subscribe returns a stream of events for sessionID published after this
// call; no historical replay (observers use the event log for that).
func (b *Bus) Subscribe(sessionID uuid.UUID) *Subscriber {
	sub := &Subscriber{ch: make(chan Event, subscriberBufferSize), sessionID: sessionID, bus: b}

	b.mu.Lock()
	if b.subs[sessionID] == nil {
		b.subs[sessionID] = make(map[*Subscriber]bool)
	}
	b.subs[sessionID][sub] = true
	b.mu.Unlock()

	return sub
}

func (b *Bus) unsubscribe(sub *Subscriber) {
	b.mu.Lock()
	if set, ok := b.subs[sub.sessionID]; ok {
		delete(set, sub)
		if len(set) == 0 {
			delete(b.subs, sub.sessionID)
		}
	}
	b.mu.Unlock()

	sub.closeOnce.Do(func() { close(sub.ch) })
}

// Publish fans an event out to every current subscriber of sessionID.
// Never blocks the caller: a subscriber whose inbox is full either drops
// the event (ClockUpdate — low-priority, coalescable) or is disconnected
// outright (every other type — must-deliver-or-disconnect, spec.md §4.5).
func (b *Bus) Publish(sessionID uuid.UUID, eventType events.Type, payload []byte) {
	b.mu.RLock()
	set := b.subs[sessionID]
	subs := make([]*Subscriber, 0, len(set))
	for sub := range set {
		subs = append(subs, sub)
	}
	b.mu.RUnlock()

	evt := Event{SessionID: sessionID, Type: eventType, Payload: payload}
	for _, sub := range subs {
		select {
		case sub.ch <- evt:
		default:
			if eventType.MustDeliver() {
				log.Warn().
					Str("session_id", sessionID.String()).
					Str("event_type", string(eventType)).
					Msg("subscriber inbox full on a must-deliver event, disconnecting")
				b.unsubscribe(sub)
				continue
			}
			log.Debug().
				Str("session_id", sessionID.String()).
				Str("event_type", string(eventType)).
				Msg("dropping coalescable event for a slow subscriber")
		}
	}
}

// SubscriberCount reports how many observers are currently attached to a
// session.
func (b *Bus) SubscriberCount(sessionID uuid.UUID) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs[sessionID])
}
