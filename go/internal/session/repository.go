package session

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/draftsim/engine/go/internal/apperr"
	"github.com/draftsim/engine/go/internal/models"
	sessdb "github.com/draftsim/engine/go/internal/session/db"
)

// SQLRepository implements Repository against the session db package.
type SQLRepository struct {
	queries *sessdb.Queries
}

func NewSQLRepository(queries *sessdb.Queries) *SQLRepository {
	return &SQLRepository{queries: queries}
}

func (r *SQLRepository) CreateSession(ctx context.Context, req CreateSessionRequest) (*models.Session, error) {
	teamIDs := make([]string, len(req.ControlledTeamIDs))
	for i, id := range req.ControlledTeamIDs {
		teamIDs[i] = id.String()
	}

	row, err := r.queries.CreateSession(ctx, sessdb.CreateSessionParams{
		ID:                 uuid.New(),
		DraftID:            req.DraftID,
		Status:             string(models.SessionStatusNotStarted),
		CurrentPickNumber:  1,
		TimePerPickSeconds: int32(req.TimePerPickSeconds),
		AutoPickEnabled:    req.AutoPickEnabled,
		ChartType:          string(req.ChartType),
		ControlledTeamIDs:  teamIDs,
	})
	if err != nil {
		return nil, fmt.Errorf("inserting session: %w", err)
	}
	return dbSessionToModel(row)
}

func (r *SQLRepository) GetSession(ctx context.Context, id uuid.UUID) (*models.Session, error) {
	row, err := r.queries.GetSession(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperr.New(apperr.NotFound, "session %s not found", id)
		}
		return nil, fmt.Errorf("getting session: %w", err)
	}
	return dbSessionToModel(row)
}

func (r *SQLRepository) GetActiveSessionByDraft(ctx context.Context, draftID uuid.UUID) (*models.Session, error) {
	row, err := r.queries.GetActiveSessionByDraft(ctx, draftID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperr.New(apperr.NotFound, "no active session for draft %s", draftID)
		}
		return nil, fmt.Errorf("getting active session: %w", err)
	}
	return dbSessionToModel(row)
}

func (r *SQLRepository) SetStatus(ctx context.Context, id uuid.UUID, status models.SessionStatus, startedAt, completedAt *time.Time) (*models.Session, error) {
	var startedNull, completedNull sql.NullTime
	if startedAt != nil {
		startedNull = sql.NullTime{Time: *startedAt, Valid: true}
	}
	if completedAt != nil {
		completedNull = sql.NullTime{Time: *completedAt, Valid: true}
	}

	row, err := r.queries.UpdateSessionStatus(ctx, id, string(status), startedNull, completedNull)
	if err != nil {
		return nil, fmt.Errorf("updating session status: %w", err)
	}
	return dbSessionToModel(row)
}

func (r *SQLRepository) AdvanceCurrentPick(ctx context.Context, id uuid.UUID, to int) (*models.Session, error) {
	row, err := r.queries.AdvanceCurrentPick(ctx, id, int32(to))
	if err != nil {
		if err == sql.ErrNoRows {
			// N <= current_pick_number: no-op, return the unchanged session.
			return r.GetSession(ctx, id)
		}
		return nil, fmt.Errorf("advancing current pick: %w", err)
	}
	return dbSessionToModel(row)
}

func dbSessionToModel(row sessdb.DraftSession) (*models.Session, error) {
	teamIDs := make([]uuid.UUID, len(row.ControlledTeamIds))
	for i, s := range row.ControlledTeamIds {
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, fmt.Errorf("parsing controlled team id %q: %w", s, err)
		}
		teamIDs[i] = id
	}

	sess := &models.Session{
		ID:                 row.ID,
		DraftID:            row.DraftID,
		Status:             models.SessionStatus(row.Status),
		CurrentPickNumber:  int(row.CurrentPickNumber),
		TimePerPickSeconds: int(row.TimePerPickSeconds),
		AutoPickEnabled:    row.AutoPickEnabled,
		ChartType:          models.ChartType(row.ChartType),
		ControlledTeamIDs:  teamIDs,
		CreatedAt:          row.CreatedAt,
		UpdatedAt:          row.UpdatedAt,
	}
	if row.StartedAt.Valid {
		sess.StartedAt = &row.StartedAt.Time
	}
	if row.CompletedAt.Valid {
		sess.CompletedAt = &row.CompletedAt.Time
	}
	return sess, nil
}
