package outbox

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/draftsim/engine/go/internal/draft/db"
	"github.com/draftsim/engine/go/internal/draft/events"
)

type SQLRepository struct {
	queries *db.Queries
}

func NewRepository(queries *db.Queries) *SQLRepository {
	return &SQLRepository{queries: queries}
}

func (r *SQLRepository) InsertEvent(ctx context.Context, sessionID uuid.UUID, eventType events.Type, payload []byte) error {
	err := r.queries.InsertEvent(ctx, db.InsertEventParams{
		ID:        uuid.New(),
		SessionID: sessionID,
		EventType: string(eventType),
		Payload:   payload,
	})
	if err != nil {
		return fmt.Errorf("insert %s outbox event: %w", eventType, err)
	}
	return nil
}

func (r *SQLRepository) FetchUnsentEvents(ctx context.Context, limit int32) ([]Event, error) {
	rows, err := r.queries.FetchUnsentEvents(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("fetch unsent outbox events: %w", err)
	}

	out := make([]Event, len(rows))
	for i, row := range rows {
		out[i] = Event{
			ID:        row.ID,
			SessionID: row.SessionID,
			EventType: row.EventType,
			Payload:   row.Payload,
			CreatedAt: row.CreatedAt,
			SentAt:    row.SentAt,
		}
	}
	return out, nil
}

func (r *SQLRepository) MarkEventSent(ctx context.Context, id uuid.UUID) error {
	if err := r.queries.MarkEventSent(ctx, id); err != nil {
		return fmt.Errorf("mark outbox event as sent: %w", err)
	}
	return nil
}

func (r *SQLRepository) FetchEventByID(ctx context.Context, id uuid.UUID) (*Event, error) {
	row, err := r.queries.FetchEventByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("outbox event not found")
		}
		return nil, fmt.Errorf("fetch outbox event by ID: %w", err)
	}

	return &Event{
		ID:        row.ID,
		SessionID: row.SessionID,
		EventType: row.EventType,
		Payload:   row.Payload,
		CreatedAt: row.CreatedAt,
		SentAt:    row.SentAt,
	}, nil
}

func (r *SQLRepository) ListBySession(ctx context.Context, sessionID uuid.UUID) ([]Event, error) {
	rows, err := r.queries.ListEventsForSession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("list outbox events for session: %w", err)
	}

	out := make([]Event, len(rows))
	for i, row := range rows {
		out[i] = Event{
			ID:        row.ID,
			SessionID: row.SessionID,
			EventType: row.EventType,
			Payload:   row.Payload,
			CreatedAt: row.CreatedAt,
			SentAt:    row.SentAt,
		}
	}
	return out, nil
}
