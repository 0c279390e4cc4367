package coordinator

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/draftsim/engine/go/internal/draft/events"
	"github.com/draftsim/engine/go/internal/models"
	"github.com/draftsim/engine/go/internal/session"
	"github.com/draftsim/engine/go/internal/trade"
)

type fakeSessions struct {
	sess              *models.Session
	inserted          []events.Type
	lastPauseRemain   int
	completeCallCount int
}

func (f *fakeSessions) CreateSession(ctx context.Context, req session.CreateSessionRequest) (*models.Session, error) {
	return f.sess, nil
}
func (f *fakeSessions) GetSession(ctx context.Context, id uuid.UUID) (*models.Session, error) {
	return f.sess, nil
}
func (f *fakeSessions) Start(ctx context.Context, id uuid.UUID) (*models.Session, error) {
	f.sess.Status = models.SessionStatusInProgress
	return f.sess, nil
}
func (f *fakeSessions) Pause(ctx context.Context, id uuid.UUID, remainingSeconds int) (*models.Session, error) {
	f.lastPauseRemain = remainingSeconds
	f.sess.Status = models.SessionStatusPaused
	return f.sess, nil
}
func (f *fakeSessions) Resume(ctx context.Context, id uuid.UUID) (*models.Session, error) {
	f.sess.Status = models.SessionStatusInProgress
	return f.sess, nil
}
func (f *fakeSessions) Complete(ctx context.Context, id uuid.UUID, totalPicks int) (*models.Session, error) {
	f.completeCallCount++
	f.sess.Status = models.SessionStatusCompleted
	return f.sess, nil
}
func (f *fakeSessions) AdvanceCurrentPick(ctx context.Context, id uuid.UUID, to int) (*models.Session, error) {
	if to > f.sess.CurrentPickNumber {
		f.sess.CurrentPickNumber = to
	}
	return f.sess, nil
}
func (f *fakeSessions) Append(ctx context.Context, sessionID uuid.UUID, eventType events.Type, payload any) error {
	f.inserted = append(f.inserted, eventType)
	return nil
}

type fakePick struct {
	id       uuid.UUID
	overall  int
	teamID   uuid.UUID
	playerID *uuid.UUID
}

type fakePicks struct {
	picks []*fakePick
}

func (f *fakePicks) GetPick(ctx context.Context, id uuid.UUID) (*models.DraftPick, error) {
	for _, p := range f.picks {
		if p.id == id {
			return &models.DraftPick{ID: p.id, OverallPick: p.overall, CurrentTeamID: p.teamID, PlayerID: p.playerID}, nil
		}
	}
	return nil, fmt.Errorf("pick %s not found", id)
}

func (f *fakePicks) Assign(ctx context.Context, pickID, playerID uuid.UUID) error {
	for _, p := range f.picks {
		if p.id == pickID {
			id := playerID
			p.playerID = &id
			return nil
		}
	}
	return nil
}

func (f *fakePicks) Snapshot(ctx context.Context, draftID uuid.UUID) ([]models.DraftPick, error) {
	out := make([]models.DraftPick, len(f.picks))
	for i, p := range f.picks {
		out[i] = models.DraftPick{ID: p.id, OverallPick: p.overall, CurrentTeamID: p.teamID, PlayerID: p.playerID}
	}
	return out, nil
}

func (f *fakePicks) AvailableFromCurrent(ctx context.Context, draftID uuid.UUID, currentOverallPick int) ([]models.DraftPick, error) {
	var out []models.DraftPick
	for _, p := range f.picks {
		if p.playerID == nil && p.overall >= currentOverallPick {
			out = append(out, models.DraftPick{ID: p.id, OverallPick: p.overall, CurrentTeamID: p.teamID})
		}
	}
	return out, nil
}

func (f *fakePicks) CountRemainingPicks(ctx context.Context, draftID uuid.UUID) (int, error) {
	n := 0
	for _, p := range f.picks {
		if p.playerID == nil {
			n++
		}
	}
	return n, nil
}

type fakeAutoPick struct {
	runResult *models.Session
}

func (f *fakeAutoPick) RunAutoPick(ctx context.Context, sessionID uuid.UUID) (*models.Session, error) {
	return f.runResult, nil
}
func (f *fakeAutoPick) Select(ctx context.Context, draft *models.Draft, teamID uuid.UUID) (uuid.UUID, error) {
	return uuid.New(), nil
}

type fakeTrades struct {
	proposed *models.Trade
	accepted *models.Trade
	rejected *models.Trade
}

func (f *fakeTrades) Propose(ctx context.Context, req trade.ProposeRequest) (*models.Trade, error) {
	return f.proposed, nil
}
func (f *fakeTrades) Accept(ctx context.Context, tradeID, acceptingTeam uuid.UUID) (*models.Trade, error) {
	return f.accepted, nil
}
func (f *fakeTrades) Reject(ctx context.Context, tradeID, rejectingTeam uuid.UUID) (*models.Trade, error) {
	return f.rejected, nil
}

type fakeDrafts struct{ draft *models.Draft }

func (f *fakeDrafts) GetDraft(ctx context.Context, id uuid.UUID) (*models.Draft, error) {
	return f.draft, nil
}

type fakeBus struct {
	published []events.Type
}

func (f *fakeBus) Publish(sessionID uuid.UUID, eventType events.Type, payload []byte) {
	f.published = append(f.published, eventType)
}

func newTestManager(sess *models.Session, picks []*fakePick, clock clockwork.Clock) (*Manager, *fakeSessions, *fakePicks) {
	sessions := &fakeSessions{sess: sess}
	board := &fakePicks{picks: picks}
	autopick := &fakeAutoPick{runResult: sess}
	trades := &fakeTrades{}
	drafts := &fakeDrafts{draft: &models.Draft{ID: sess.DraftID, Year: 2026}}
	bus := &fakeBus{}
	mgr := NewManager(sessions, board, trades, autopick, drafts, bus, clock)
	return mgr, sessions, board
}

func TestPauseResumePreservesRemainingTime(t *testing.T) {
	clock := clockwork.NewFakeClock()
	draftID := uuid.New()
	sess := &models.Session{ID: uuid.New(), DraftID: draftID, Status: models.SessionStatusNotStarted, TimePerPickSeconds: 60, CurrentPickNumber: 1}
	mgr, sessions, _ := newTestManager(sess, nil, clock)

	res := mgr.Start(context.Background(), sess.ID)
	if res.Err != nil {
		t.Fatalf("Start: %v", res.Err)
	}

	clock.Advance(10 * time.Second)

	res = mgr.Pause(context.Background(), sess.ID)
	if res.Err != nil {
		t.Fatalf("Pause: %v", res.Err)
	}
	if sessions.lastPauseRemain != 50 {
		t.Fatalf("expected 50s remaining after a 10s advance on a 60s clock, got %d", sessions.lastPauseRemain)
	}

	// Resume should re-arm the deadline from the 50s remaining at pause,
	// not the full 60s per-pick duration (spec.md §4.6).
	res = mgr.Resume(context.Background(), sess.ID)
	if res.Err != nil {
		t.Fatalf("Resume: %v", res.Err)
	}
	if got := mgr.actorFor(sess.ID).remainingSeconds(); got != 50 {
		t.Fatalf("expected 50s remaining immediately after resume, got %d", got)
	}
}

func TestResumeAfterLongerPauseStillUsesRemainingTime(t *testing.T) {
	clock := clockwork.NewFakeClock()
	draftID := uuid.New()
	sess := &models.Session{ID: uuid.New(), DraftID: draftID, Status: models.SessionStatusNotStarted, TimePerPickSeconds: 120, CurrentPickNumber: 1}
	mgr, _, _ := newTestManager(sess, nil, clock)

	if res := mgr.Start(context.Background(), sess.ID); res.Err != nil {
		t.Fatalf("Start: %v", res.Err)
	}

	clock.Advance(40 * time.Second)
	if res := mgr.Pause(context.Background(), sess.ID); res.Err != nil {
		t.Fatalf("Pause: %v", res.Err)
	}

	// A pause can last arbitrarily long without burning down the
	// preserved remaining time — it's only consumed once resumed.
	clock.Advance(5 * time.Minute)

	if res := mgr.Resume(context.Background(), sess.ID); res.Err != nil {
		t.Fatalf("Resume: %v", res.Err)
	}
	if got := mgr.actorFor(sess.ID).remainingSeconds(); got != 80 {
		t.Fatalf("expected 80s remaining on resume (120s clock, 40s elapsed before pause), got %d", got)
	}
}

func TestMakePickRejectsNonCurrentPick(t *testing.T) {
	clock := clockwork.NewFakeClock()
	draftID := uuid.New()
	team := uuid.New()
	pick := &fakePick{id: uuid.New(), overall: 2, teamID: team}
	sess := &models.Session{ID: uuid.New(), DraftID: draftID, Status: models.SessionStatusInProgress, CurrentPickNumber: 1, TimePerPickSeconds: 60, ControlledTeamIDs: []uuid.UUID{team}}
	mgr, _, _ := newTestManager(sess, []*fakePick{pick}, clock)

	res := mgr.MakePick(context.Background(), sess.ID, pick.id, uuid.New())
	if res.Err == nil {
		t.Fatal("expected an error for a non-current pick")
	}
}

func TestMakePickRejectsUnownedTeam(t *testing.T) {
	clock := clockwork.NewFakeClock()
	draftID := uuid.New()
	aiTeam := uuid.New()
	pick := &fakePick{id: uuid.New(), overall: 1, teamID: aiTeam}
	sess := &models.Session{ID: uuid.New(), DraftID: draftID, Status: models.SessionStatusInProgress, CurrentPickNumber: 1, TimePerPickSeconds: 60}
	mgr, _, _ := newTestManager(sess, []*fakePick{pick}, clock)

	res := mgr.MakePick(context.Background(), sess.ID, pick.id, uuid.New())
	if res.Err == nil {
		t.Fatal("expected NotOwned for an AI-controlled pick")
	}
}

func TestMakePickAssignsAdvancesAndEmits(t *testing.T) {
	clock := clockwork.NewFakeClock()
	draftID := uuid.New()
	team := uuid.New()
	playerID := uuid.New()
	pick := &fakePick{id: uuid.New(), overall: 1, teamID: team}
	sess := &models.Session{ID: uuid.New(), DraftID: draftID, Status: models.SessionStatusInProgress, CurrentPickNumber: 1, TimePerPickSeconds: 60, ControlledTeamIDs: []uuid.UUID{team}}
	mgr, sessions, board := newTestManager(sess, []*fakePick{pick}, clock)

	res := mgr.MakePick(context.Background(), sess.ID, pick.id, playerID)
	if res.Err != nil {
		t.Fatalf("MakePick: %v", res.Err)
	}
	if board.picks[0].playerID == nil || *board.picks[0].playerID != playerID {
		t.Fatal("expected the pick to be assigned")
	}
	if sess.CurrentPickNumber != 2 {
		t.Fatalf("expected current_pick_number to advance to 2, got %d", sess.CurrentPickNumber)
	}
	found := false
	for _, e := range sessions.inserted {
		if e == events.PickMade {
			found = true
		}
	}
	if !found {
		t.Fatal("expected a PickMade event to be appended")
	}
}

func TestAdvancePickCompletesWhenNoPicksRemain(t *testing.T) {
	clock := clockwork.NewFakeClock()
	draftID := uuid.New()
	playerID := uuid.New()
	pick := &fakePick{id: uuid.New(), overall: 1, teamID: uuid.New(), playerID: &playerID}
	sess := &models.Session{ID: uuid.New(), DraftID: draftID, Status: models.SessionStatusInProgress, CurrentPickNumber: 1, TimePerPickSeconds: 60}
	mgr, sessions, _ := newTestManager(sess, []*fakePick{pick}, clock)

	res := mgr.AdvancePick(context.Background(), sess.ID)
	if res.Err != nil {
		t.Fatalf("AdvancePick: %v", res.Err)
	}
	if sessions.completeCallCount != 1 {
		t.Fatalf("expected Complete to be called once, got %d", sessions.completeCallCount)
	}
	if res.Session.Status != models.SessionStatusCompleted {
		t.Fatalf("expected COMPLETED, got %s", res.Session.Status)
	}
}

func TestTradeCommandsDelegate(t *testing.T) {
	clock := clockwork.NewFakeClock()
	draftID := uuid.New()
	sess := &models.Session{ID: uuid.New(), DraftID: draftID, Status: models.SessionStatusInProgress, CurrentPickNumber: 1, TimePerPickSeconds: 60}
	sessions := &fakeSessions{sess: sess}
	board := &fakePicks{}
	autopick := &fakeAutoPick{runResult: sess}
	proposed := &models.Trade{ID: uuid.New(), Status: models.TradeStatusProposed}
	trades := &fakeTrades{proposed: proposed, accepted: proposed, rejected: proposed}
	drafts := &fakeDrafts{draft: &models.Draft{ID: draftID, Year: 2026}}
	bus := &fakeBus{}
	mgr := NewManager(sessions, board, trades, autopick, drafts, bus, clock)

	res := mgr.ProposeTrade(context.Background(), sess.ID, trade.ProposeRequest{SessionID: sess.ID})
	if res.Err != nil || res.Trade == nil {
		t.Fatalf("ProposeTrade: %v", res.Err)
	}

	res = mgr.AcceptTrade(context.Background(), sess.ID, proposed.ID, uuid.New())
	if res.Err != nil || res.Trade == nil {
		t.Fatalf("AcceptTrade: %v", res.Err)
	}

	res = mgr.RejectTrade(context.Background(), sess.ID, proposed.ID, uuid.New())
	if res.Err != nil || res.Trade == nil {
		t.Fatalf("RejectTrade: %v", res.Err)
	}
}
