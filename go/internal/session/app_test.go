package session

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/draftsim/engine/go/internal/apperr"
	"github.com/draftsim/engine/go/internal/draft/events"
	"github.com/draftsim/engine/go/internal/models"
)

type mockRepo struct {
	sessions map[uuid.UUID]*models.Session
}

func newMockRepo() *mockRepo {
	return &mockRepo{sessions: make(map[uuid.UUID]*models.Session)}
}

func (m *mockRepo) CreateSession(ctx context.Context, req CreateSessionRequest) (*models.Session, error) {
	sess := &models.Session{
		ID:                 uuid.New(),
		DraftID:            req.DraftID,
		Status:             models.SessionStatusNotStarted,
		CurrentPickNumber:  1,
		TimePerPickSeconds: req.TimePerPickSeconds,
		AutoPickEnabled:    req.AutoPickEnabled,
		ChartType:          req.ChartType,
		ControlledTeamIDs:  req.ControlledTeamIDs,
		CreatedAt:          time.Now(),
		UpdatedAt:          time.Now(),
	}
	m.sessions[sess.ID] = sess
	return sess, nil
}

func (m *mockRepo) GetSession(ctx context.Context, id uuid.UUID) (*models.Session, error) {
	sess, ok := m.sessions[id]
	if !ok {
		return nil, apperr.New(apperr.NotFound, "session %s not found", id)
	}
	return sess, nil
}

func (m *mockRepo) GetActiveSessionByDraft(ctx context.Context, draftID uuid.UUID) (*models.Session, error) {
	for _, sess := range m.sessions {
		if sess.DraftID == draftID && sess.Status != models.SessionStatusCompleted {
			return sess, nil
		}
	}
	return nil, apperr.New(apperr.NotFound, "no active session for draft %s", draftID)
}

func (m *mockRepo) SetStatus(ctx context.Context, id uuid.UUID, status models.SessionStatus, startedAt, completedAt *time.Time) (*models.Session, error) {
	sess, ok := m.sessions[id]
	if !ok {
		return nil, apperr.New(apperr.NotFound, "session %s not found", id)
	}
	sess.Status = status
	if startedAt != nil {
		sess.StartedAt = startedAt
	}
	if completedAt != nil {
		sess.CompletedAt = completedAt
	}
	return sess, nil
}

func (m *mockRepo) AdvanceCurrentPick(ctx context.Context, id uuid.UUID, to int) (*models.Session, error) {
	sess, ok := m.sessions[id]
	if !ok {
		return nil, apperr.New(apperr.NotFound, "session %s not found", id)
	}
	if to > sess.CurrentPickNumber {
		sess.CurrentPickNumber = to
	}
	return sess, nil
}

type mockEvents struct {
	inserted []events.Type
}

func (m *mockEvents) InsertEvent(ctx context.Context, sessionID uuid.UUID, eventType events.Type, payload []byte) error {
	m.inserted = append(m.inserted, eventType)
	return nil
}

func TestCreateSessionRejectsSecondActiveForSameDraft(t *testing.T) {
	ctx := context.Background()
	repo := newMockRepo()
	evts := &mockEvents{}
	app := NewApp(repo, evts)

	draftID := uuid.New()
	req := CreateSessionRequest{DraftID: draftID, TimePerPickSeconds: 60, ChartType: models.ChartJimmyJohnson}

	if _, err := app.CreateSession(ctx, req); err != nil {
		t.Fatalf("first CreateSession: %v", err)
	}
	if _, err := app.CreateSession(ctx, req); !apperr.Is(err, apperr.Conflict) {
		t.Errorf("expected Conflict for second active session on same draft, got %v", err)
	}
	if len(evts.inserted) != 1 || evts.inserted[0] != events.SessionCreated {
		t.Errorf("expected exactly one SessionCreated event, got %v", evts.inserted)
	}
}

func TestLifecycleTransitions(t *testing.T) {
	ctx := context.Background()
	repo := newMockRepo()
	evts := &mockEvents{}
	app := NewApp(repo, evts)

	sess, err := app.CreateSession(ctx, CreateSessionRequest{DraftID: uuid.New(), TimePerPickSeconds: 60, ChartType: models.ChartRichHill})
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}

	if _, err := app.Pause(ctx, sess.ID, 30); !apperr.Is(err, apperr.InvalidTransition) {
		t.Errorf("expected InvalidTransition pausing a NotStarted session, got %v", err)
	}

	if _, err := app.Start(ctx, sess.ID); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if _, err := app.Pause(ctx, sess.ID, 30); err != nil {
		t.Fatalf("Pause: %v", err)
	}
	if _, err := app.Resume(ctx, sess.ID); err != nil {
		t.Fatalf("Resume: %v", err)
	}
	if _, err := app.Complete(ctx, sess.ID, 224); err != nil {
		t.Fatalf("Complete: %v", err)
	}

	got, err := app.GetSession(ctx, sess.ID)
	if err != nil {
		t.Fatalf("GetSession: %v", err)
	}
	if got.Status != models.SessionStatusCompleted {
		t.Errorf("expected Completed, got %s", got.Status)
	}

	wantOrder := []events.Type{events.SessionCreated, events.SessionStarted, events.SessionPaused, events.SessionResumed, events.SessionCompleted}
	if len(evts.inserted) != len(wantOrder) {
		t.Fatalf("expected %d events, got %d: %v", len(wantOrder), len(evts.inserted), evts.inserted)
	}
	for i, want := range wantOrder {
		if evts.inserted[i] != want {
			t.Errorf("event %d: expected %s, got %s", i, want, evts.inserted[i])
		}
	}
}

func TestAdvanceCurrentPickIsMonotonic(t *testing.T) {
	ctx := context.Background()
	repo := newMockRepo()
	app := NewApp(repo, &mockEvents{})

	sess, err := app.CreateSession(ctx, CreateSessionRequest{DraftID: uuid.New(), TimePerPickSeconds: 60, ChartType: models.ChartHarvardDraftChart})
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}

	updated, err := app.AdvanceCurrentPick(ctx, sess.ID, 5)
	if err != nil {
		t.Fatalf("AdvanceCurrentPick: %v", err)
	}
	if updated.CurrentPickNumber != 5 {
		t.Errorf("expected current_pick_number 5, got %d", updated.CurrentPickNumber)
	}

	updated, err = app.AdvanceCurrentPick(ctx, sess.ID, 3)
	if err != nil {
		t.Fatalf("AdvanceCurrentPick (no-op): %v", err)
	}
	if updated.CurrentPickNumber != 5 {
		t.Errorf("expected current_pick_number to stay at 5, got %d", updated.CurrentPickNumber)
	}
}
