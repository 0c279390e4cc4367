// Package session implements the Session State Store (SSS): durable session
// lifecycle and event log (spec.md §4.2).
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/draftsim/engine/go/internal/apperr"
	"github.com/draftsim/engine/go/internal/draft/events"
	"github.com/draftsim/engine/go/internal/models"
)

// Repository defines what the Session State Store needs from durable
// storage.
type Repository interface {
	CreateSession(ctx context.Context, req CreateSessionRequest) (*models.Session, error)
	GetSession(ctx context.Context, id uuid.UUID) (*models.Session, error)
	GetActiveSessionByDraft(ctx context.Context, draftID uuid.UUID) (*models.Session, error)
	SetStatus(ctx context.Context, id uuid.UUID, status models.SessionStatus, startedAt, completedAt *time.Time) (*models.Session, error)
	AdvanceCurrentPick(ctx context.Context, id uuid.UUID, to int) (*models.Session, error)
}

// EventAppender is the outbox's InsertEvent entrypoint, the event log that
// doubles as the outbox table (spec.md §12 "Outbox relay").
type EventAppender interface {
	InsertEvent(ctx context.Context, sessionID uuid.UUID, eventType events.Type, payload []byte) error
}

// App implements the Session State Store's operations.
type App struct {
	repo   Repository
	events EventAppender
}

func NewApp(repo Repository, events EventAppender) *App {
	return &App{repo: repo, events: events}
}

// CreateSession enforces the at-most-one-active-per-draft invariant and
// emits SessionCreated.
func (a *App) CreateSession(ctx context.Context, req CreateSessionRequest) (*models.Session, error) {
	if req.TimePerPickSeconds <= 0 {
		return nil, apperr.New(apperr.InvalidArgument, "time_per_pick_seconds must be greater than 0")
	}

	existing, err := a.repo.GetActiveSessionByDraft(ctx, req.DraftID)
	if err != nil && !apperr.Is(err, apperr.NotFound) {
		return nil, fmt.Errorf("checking for an active session: %w", err)
	}
	if existing != nil {
		return nil, apperr.New(apperr.Conflict, "draft %s already has an active session", req.DraftID)
	}

	sess, err := a.repo.CreateSession(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("creating session: %w", err)
	}

	if err := a.emit(ctx, sess.ID, events.SessionCreated, events.SessionCreatedPayload{
		SessionID: sess.ID.String(),
		DraftID:   sess.DraftID.String(),
		ChartType: string(sess.ChartType),
		CreatedAt: sess.CreatedAt,
	}); err != nil {
		return nil, err
	}

	return sess, nil
}

// Start transitions NotStarted -> InProgress, stamps started_at, emits
// SessionStarted.
func (a *App) Start(ctx context.Context, id uuid.UUID) (*models.Session, error) {
	sess, err := a.requireTransition(ctx, id, models.SessionStatusNotStarted, models.SessionStatusInProgress)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	updated, err := a.repo.SetStatus(ctx, id, models.SessionStatusInProgress, &now, nil)
	if err != nil {
		return nil, fmt.Errorf("starting session: %w", err)
	}

	if err := a.emit(ctx, id, events.SessionStarted, events.SessionStartedPayload{
		SessionID: id.String(),
		StartedAt: now,
	}); err != nil {
		return nil, err
	}

	_ = sess
	return updated, nil
}

// Pause transitions InProgress -> Paused, emits SessionPaused.
func (a *App) Pause(ctx context.Context, id uuid.UUID, remainingSeconds int) (*models.Session, error) {
	if _, err := a.requireTransition(ctx, id, models.SessionStatusInProgress, models.SessionStatusPaused); err != nil {
		return nil, err
	}

	updated, err := a.repo.SetStatus(ctx, id, models.SessionStatusPaused, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("pausing session: %w", err)
	}

	if err := a.emit(ctx, id, events.SessionPaused, events.SessionPausedPayload{
		SessionID:        id.String(),
		PausedAt:         time.Now(),
		RemainingSeconds: remainingSeconds,
	}); err != nil {
		return nil, err
	}

	return updated, nil
}

// Resume transitions Paused -> InProgress, emits SessionResumed.
func (a *App) Resume(ctx context.Context, id uuid.UUID) (*models.Session, error) {
	if _, err := a.requireTransition(ctx, id, models.SessionStatusPaused, models.SessionStatusInProgress); err != nil {
		return nil, err
	}

	updated, err := a.repo.SetStatus(ctx, id, models.SessionStatusInProgress, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("resuming session: %w", err)
	}

	if err := a.emit(ctx, id, events.SessionResumed, events.SessionResumedPayload{
		SessionID: id.String(),
		ResumedAt: time.Now(),
	}); err != nil {
		return nil, err
	}

	return updated, nil
}

// Complete transitions {InProgress, Paused} -> Completed, stamps
// completed_at, emits SessionCompleted. Called by the Coordinator once all
// picks are made; totalPicks is carried in the event payload for
// subscribers that don't otherwise see the Pick Board.
func (a *App) Complete(ctx context.Context, id uuid.UUID, totalPicks int) (*models.Session, error) {
	sess, err := a.repo.GetSession(ctx, id)
	if err != nil {
		return nil, apperr.Wrap(apperr.NotFound, err, "session %s not found", id)
	}
	if sess.Status != models.SessionStatusInProgress && sess.Status != models.SessionStatusPaused {
		return nil, apperr.New(apperr.InvalidTransition, "cannot complete session from status %s", sess.Status)
	}

	now := time.Now()
	updated, err := a.repo.SetStatus(ctx, id, models.SessionStatusCompleted, nil, &now)
	if err != nil {
		return nil, fmt.Errorf("completing session: %w", err)
	}

	if err := a.emit(ctx, id, events.SessionCompleted, events.SessionCompletedPayload{
		SessionID:   id.String(),
		CompletedAt: now,
		TotalPicks:  totalPicks,
	}); err != nil {
		return nil, err
	}

	return updated, nil
}

// AdvanceCurrentPick sets current_pick_number := N if N > current, else
// no-op; returns the resulting session either way.
func (a *App) AdvanceCurrentPick(ctx context.Context, id uuid.UUID, to int) (*models.Session, error) {
	if to <= 0 {
		return nil, apperr.New(apperr.InvalidArgument, "current_pick_number target must be positive")
	}

	updated, err := a.repo.AdvanceCurrentPick(ctx, id, to)
	if err != nil {
		return nil, fmt.Errorf("advancing current pick: %w", err)
	}
	return updated, nil
}

// GetSession retrieves a session by ID.
func (a *App) GetSession(ctx context.Context, id uuid.UUID) (*models.Session, error) {
	sess, err := a.repo.GetSession(ctx, id)
	if err != nil {
		return nil, apperr.Wrap(apperr.NotFound, err, "session %s not found", id)
	}
	return sess, nil
}

// GetActiveSessionByDraft retrieves whichever session (NotStarted,
// InProgress, or Paused) is currently active for a draft, used by the
// gateway to route draft-scoped REST calls to the right session.
func (a *App) GetActiveSessionByDraft(ctx context.Context, draftID uuid.UUID) (*models.Session, error) {
	sess, err := a.repo.GetActiveSessionByDraft(ctx, draftID)
	if err != nil {
		return nil, apperr.Wrap(apperr.NotFound, err, "no active session for draft %s", draftID)
	}
	return sess, nil
}

// Append writes an arbitrary event row directly, for components (Trade
// Engine, Pick Board via the Coordinator) that emit events the state
// machine above doesn't cover (PickMade, ClockUpdate, Trade*).
func (a *App) Append(ctx context.Context, sessionID uuid.UUID, eventType events.Type, payload any) error {
	return a.emit(ctx, sessionID, eventType, payload)
}

func (a *App) emit(ctx context.Context, sessionID uuid.UUID, eventType events.Type, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling %s payload: %w", eventType, err)
	}
	if err := a.events.InsertEvent(ctx, sessionID, eventType, data); err != nil {
		return apperr.Wrap(apperr.Unavailable, err, "appending %s event", eventType)
	}
	return nil
}

func (a *App) requireTransition(ctx context.Context, id uuid.UUID, from, to models.SessionStatus) (*models.Session, error) {
	sess, err := a.repo.GetSession(ctx, id)
	if err != nil {
		return nil, apperr.Wrap(apperr.NotFound, err, "session %s not found", id)
	}
	if sess.Status != from {
		return nil, apperr.New(apperr.InvalidTransition, "cannot transition session %s from %s to %s", id, sess.Status, to)
	}
	return sess, nil
}
