package outbox

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/draftsim/engine/go/internal/draft/events"
)

// Repository defines what the app layer needs from the session_events store.
type Repository interface {
	InsertEvent(ctx context.Context, sessionID uuid.UUID, eventType events.Type, payload []byte) error
	FetchUnsentEvents(ctx context.Context, limit int32) ([]Event, error)
	MarkEventSent(ctx context.Context, id uuid.UUID) error
	FetchEventByID(ctx context.Context, id uuid.UUID) (*Event, error)
	ListBySession(ctx context.Context, sessionID uuid.UUID) ([]Event, error)
}

// App handles outbox relay business logic: the event log is the outbox
// table, so insertion here is exactly what the Session State Store calls
// when it appends an event (spec §3, §12 "Outbox relay").
type App struct {
	repo Repository
}

func NewApp(repo Repository) *App {
	return &App{repo: repo}
}

// InsertEvent records a new session event for later relay. Session
// components append through this single entrypoint regardless of event
// type, unlike the teacher's one-method-per-type predecessor.
func (a *App) InsertEvent(ctx context.Context, sessionID uuid.UUID, eventType events.Type, payload []byte) error {
	if err := a.validateEventPayload(payload); err != nil {
		return fmt.Errorf("invalid %s payload: %w", eventType, err)
	}

	if err := a.repo.InsertEvent(ctx, sessionID, eventType, payload); err != nil {
		return fmt.Errorf("insert %s event: %w", eventType, err)
	}

	log.Info().
		Str("session_id", sessionID.String()).
		Str("event_type", string(eventType)).
		Msg("outbox event inserted")

	return nil
}

// FetchUnsentEvents fetches unsent outbox events.
func (a *App) FetchUnsentEvents(ctx context.Context, limit int32) ([]Event, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("limit must be greater than 0")
	}

	evts, err := a.repo.FetchUnsentEvents(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("fetch unsent events: %w", err)
	}

	if len(evts) > 0 {
		log.Debug().Int("count", len(evts)).Msg("fetched unsent outbox events")
	}

	return evts, nil
}

// MarkEventSent marks an outbox event as sent.
func (a *App) MarkEventSent(ctx context.Context, eventID uuid.UUID) error {
	if err := a.repo.MarkEventSent(ctx, eventID); err != nil {
		return fmt.Errorf("mark event as sent: %w", err)
	}

	log.Debug().Str("event_id", eventID.String()).Msg("marked outbox event as sent")
	return nil
}

// GetEventByID fetches a specific outbox event by ID.
func (a *App) GetEventByID(ctx context.Context, eventID uuid.UUID) (*Event, error) {
	event, err := a.repo.FetchEventByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("fetch event by ID: %w", err)
	}
	return event, nil
}

// ProcessUnsentEvents processes one batch of at most batchSize unsent
// events, marking each sent only after processor succeeds so a crash
// mid-batch just re-delivers. Events beyond that batch are left for a later
// call.
func (a *App) ProcessUnsentEvents(ctx context.Context, batchSize int32, processor func(event Event) error) error {
	evts, err := a.FetchUnsentEvents(ctx, batchSize)
	if err != nil {
		return fmt.Errorf("fetch unsent events: %w", err)
	}

	processedCount, errorCount := 0, 0

	for _, event := range evts {
		if err := processor(event); err != nil {
			log.Error().
				Err(err).
				Str("event_id", event.ID.String()).
				Str("event_type", event.EventType).
				Msg("failed to process event")
			errorCount++
			continue
		}

		if err := a.MarkEventSent(ctx, event.ID); err != nil {
			log.Error().
				Err(err).
				Str("event_id", event.ID.String()).
				Msg("failed to mark event as sent after processing")
			errorCount++
			continue
		}

		processedCount++
	}

	if processedCount > 0 || errorCount > 0 {
		log.Info().
			Int("processed", processedCount).
			Int("errors", errorCount).
			Int("total", len(evts)).
			Msg("processed unsent events batch")
	}

	return nil
}

// ListBySession returns every recorded event for a session in creation
// order, spec.md §6.1 "GET /sessions/{id}/events".
func (a *App) ListBySession(ctx context.Context, sessionID uuid.UUID) ([]Event, error) {
	evts, err := a.repo.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("list events for session: %w", err)
	}
	return evts, nil
}

func (a *App) validateEventPayload(payload []byte) error {
	if len(payload) == 0 {
		return fmt.Errorf("event payload cannot be empty")
	}
	return nil
}
