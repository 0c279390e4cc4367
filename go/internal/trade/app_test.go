package trade

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
	trades  map[uuid.UUID]models.Trade
	details map[uuid.UUID][]models.TradeDetail
}

func newMockRepo() *mockRepo {
	return &mockRepo{
		trades:  map[uuid.UUID]models.Trade{},
		details: map[uuid.UUID][]models.TradeDetail{},
	}
}

func (m *mockRepo) Create(ctx context.Context, t models.Trade, details []models.TradeDetail) error {
	m.trades[t.ID] = t
	m.details[t.ID] = details
	return nil
}

func (m *mockRepo) Get(ctx context.Context, id uuid.UUID) (*models.Trade, []models.TradeDetail, error) {
	t, ok := m.trades[id]
	if !ok {
		return nil, nil, apperr.New(apperr.NotFound, "trade %s not found", id)
	}
	return &t, m.details[id], nil
}

func (m *mockRepo) Accept(ctx context.Context, tradeID, acceptingTeam uuid.UUID) (*models.Trade, []models.TradeDetail, error) {
	t, ok := m.trades[tradeID]
	if !ok {
		return nil, nil, apperr.New(apperr.NotFound, "trade %s not found", tradeID)
	}
	if t.Status != models.TradeStatusProposed {
		return nil, nil, apperr.New(apperr.Conflict, "trade %s is no longer proposed", tradeID)
	}
	if t.ToTeamID != acceptingTeam {
		return nil, nil, apperr.New(apperr.NotOwned, "trade %s is not addressed to team %s", tradeID, acceptingTeam)
	}
	now := time.Now()
	t.Status = models.TradeStatusAccepted
	t.RespondedAt = &now
	m.trades[tradeID] = t
	return &t, m.details[tradeID], nil
}

func (m *mockRepo) Reject(ctx context.Context, tradeID, rejectingTeam uuid.UUID) (*models.Trade, error) {
	t, ok := m.trades[tradeID]
	if !ok {
		return nil, apperr.New(apperr.NotFound, "trade %s not found", tradeID)
	}
	if t.Status != models.TradeStatusProposed {
		return nil, apperr.New(apperr.Conflict, "trade %s is no longer proposed", tradeID)
	}
	if t.ToTeamID != rejectingTeam {
		return nil, apperr.New(apperr.NotOwned, "trade %s is not addressed to team %s", tradeID, rejectingTeam)
	}
	now := time.Now()
	t.Status = models.TradeStatusRejected
	t.RespondedAt = &now
	m.trades[tradeID] = t
	return &t, nil
}

func (m *mockRepo) ListPendingForTeam(ctx context.Context, sessionID, teamID uuid.UUID) ([]TradeWithDetails, error) {
	var out []TradeWithDetails
	for _, t := range m.trades {
		if t.SessionID == sessionID && t.ToTeamID == teamID && t.Status == models.TradeStatusProposed {
			out = append(out, TradeWithDetails{Trade: t, Details: m.details[t.ID]})
		}
	}
	return out, nil
}

func (m *mockRepo) ListBySession(ctx context.Context, sessionID uuid.UUID) ([]TradeWithDetails, error) {
	var out []TradeWithDetails
	for _, t := range m.trades {
		if t.SessionID == sessionID {
			out = append(out, TradeWithDetails{Trade: t, Details: m.details[t.ID]})
		}
	}
	return out, nil
}

type mockPicks struct {
	picks map[uuid.UUID]*models.DraftPick
}

func (m *mockPicks) GetPick(ctx context.Context, id uuid.UUID) (*models.DraftPick, error) {
	p, ok := m.picks[id]
	if !ok {
		return nil, apperr.New(apperr.NotFound, "pick %s not found", id)
	}
	return p, nil
}

type mockSessions struct {
	session  *models.Session
	inserted []events.Type
}

func (m *mockSessions) GetSession(ctx context.Context, id uuid.UUID) (*models.Session, error) {
	return m.session, nil
}

func (m *mockSessions) Append(ctx context.Context, sessionID uuid.UUID, eventType events.Type, payload any) error {
	m.inserted = append(m.inserted, eventType)
	return nil
}

func newTestPick(id, team uuid.UUID, overall int) *models.DraftPick {
	return &models.DraftPick{
		ID:             id,
		OverallPick:    overall,
		OriginalTeamID: team,
		CurrentTeamID:  team,
	}
}

func TestProposeRejectsUnownedPick(t *testing.T) {
	sessionID := uuid.New()
	teamA, teamB := uuid.New(), uuid.New()
	fromPick := uuid.New()
	toPick := uuid.New()

	picks := &mockPicks{picks: map[uuid.UUID]*models.DraftPick{
		fromPick: newTestPick(fromPick, teamB, 5), // owned by teamB, not teamA
		toPick:   newTestPick(toPick, teamB, 40),
	}}
	sessions := &mockSessions{session: &models.Session{ChartType: models.ChartJimmyJohnson}}
	app := NewApp(newMockRepo(), picks, sessions)

	_, err := app.Propose(context.Background(), ProposeRequest{
		SessionID:   sessionID,
		FromTeamID:  teamA,
		ToTeamID:    teamB,
		FromPickIDs: []uuid.UUID{fromPick},
		ToPickIDs:   []uuid.UUID{toPick},
	})
	if !apperr.Is(err, apperr.NotOwned) {
		t.Fatalf("expected NotOwned, got %v", err)
	}
}

func TestProposeComputesValueDiffAndEmits(t *testing.T) {
	sessionID := uuid.New()
	teamA, teamB := uuid.New(), uuid.New()
	fromPick := uuid.New()
	toPick := uuid.New()

	picks := &mockPicks{picks: map[uuid.UUID]*models.DraftPick{
		fromPick: newTestPick(fromPick, teamA, 1),
		toPick:   newTestPick(toPick, teamB, 50),
	}}
	sessions := &mockSessions{session: &models.Session{ChartType: models.ChartJimmyJohnson}}
	repo := newMockRepo()
	app := NewApp(repo, picks, sessions)

	trade, err := app.Propose(context.Background(), ProposeRequest{
		SessionID:   sessionID,
		FromTeamID:  teamA,
		ToTeamID:    teamB,
		FromPickIDs: []uuid.UUID{fromPick},
		ToPickIDs:   []uuid.UUID{toPick},
	})
	if err != nil {
		t.Fatalf("Propose: %v", err)
	}
	if trade.Status != models.TradeStatusProposed {
		t.Fatalf("expected status PROPOSED, got %s", trade.Status)
	}
	if trade.FromTeamValue <= trade.ToTeamValue {
		t.Fatalf("pick 1 should be worth more than pick 50: from=%v to=%v", trade.FromTeamValue, trade.ToTeamValue)
	}
	if trade.ValueDiff != trade.FromTeamValue-trade.ToTeamValue {
		t.Fatalf("value_diff = %v, want from-to = %v", trade.ValueDiff, trade.FromTeamValue-trade.ToTeamValue)
	}
	if len(repo.details[trade.ID]) != 2 {
		t.Fatalf("expected 2 trade details, got %d", len(repo.details[trade.ID]))
	}
	if len(sessions.inserted) != 1 || sessions.inserted[0] != events.TradeProposed {
		t.Fatalf("expected a single TradeProposed event, got %v", sessions.inserted)
	}
}

func TestAcceptRejectsWrongTeam(t *testing.T) {
	repo := newMockRepo()
	sessionID := uuid.New()
	teamA, teamB, stranger := uuid.New(), uuid.New(), uuid.New()
	tradeID := uuid.New()
	repo.trades[tradeID] = models.Trade{
		ID: tradeID, SessionID: sessionID, FromTeamID: teamA, ToTeamID: teamB,
		Status: models.TradeStatusProposed, ProposedAt: time.Now(),
	}

	app := NewApp(repo, &mockPicks{}, &mockSessions{session: &models.Session{}})
	_, err := app.Accept(context.Background(), tradeID, stranger)
	if !apperr.Is(err, apperr.NotOwned) {
		t.Fatalf("expected NotOwned, got %v", err)
	}
}

func TestAcceptEmitsTradeExecuted(t *testing.T) {
	repo := newMockRepo()
	sessionID := uuid.New()
	teamA, teamB := uuid.New(), uuid.New()
	tradeID := uuid.New()
	repo.trades[tradeID] = models.Trade{
		ID: tradeID, SessionID: sessionID, FromTeamID: teamA, ToTeamID: teamB,
		Status: models.TradeStatusProposed, ProposedAt: time.Now(),
	}

	sessions := &mockSessions{session: &models.Session{}}
	app := NewApp(repo, &mockPicks{}, sessions)
	trade, err := app.Accept(context.Background(), tradeID, teamB)
	if err != nil {
		t.Fatalf("Accept: %v", err)
	}
	if trade.Status != models.TradeStatusAccepted {
		t.Fatalf("expected status ACCEPTED, got %s", trade.Status)
	}
	if len(sessions.inserted) != 1 || sessions.inserted[0] != events.TradeExecuted {
		t.Fatalf("expected a single TradeExecuted event, got %v", sessions.inserted)
	}
}

func TestRejectOnlyAllowedByToTeam(t *testing.T) {
	repo := newMockRepo()
	sessionID := uuid.New()
	teamA, teamB := uuid.New(), uuid.New()
	tradeID := uuid.New()
	repo.trades[tradeID] = models.Trade{
		ID: tradeID, SessionID: sessionID, FromTeamID: teamA, ToTeamID: teamB,
		Status: models.TradeStatusProposed, ProposedAt: time.Now(),
	}

	app := NewApp(repo, &mockPicks{}, &mockSessions{session: &models.Session{}})
	if _, err := app.Reject(context.Background(), tradeID, teamA); !apperr.Is(err, apperr.NotOwned) {
		t.Fatalf("expected NotOwned when from_team tries to reject, got %v", err)
	}

	trade, err := app.Reject(context.Background(), tradeID, teamB)
	if err != nil {
		t.Fatalf("Reject: %v", err)
	}
	if trade.Status != models.TradeStatusRejected {
		t.Fatalf("expected status REJECTED, got %s", trade.Status)
	}
}

func TestFindPendingForTeamFiltersByStatusAndTeam(t *testing.T) {
	repo := newMockRepo()
	sessionID := uuid.New()
	teamA, teamB, teamC := uuid.New(), uuid.New(), uuid.New()

	pending := uuid.New()
	repo.trades[pending] = models.Trade{ID: pending, SessionID: sessionID, FromTeamID: teamA, ToTeamID: teamB, Status: models.TradeStatusProposed}

	accepted := uuid.New()
	repo.trades[accepted] = models.Trade{ID: accepted, SessionID: sessionID, FromTeamID: teamA, ToTeamID: teamB, Status: models.TradeStatusAccepted}

	other := uuid.New()
	repo.trades[other] = models.Trade{ID: other, SessionID: sessionID, FromTeamID: teamA, ToTeamID: teamC, Status: models.TradeStatusProposed}

	app := NewApp(repo, &mockPicks{}, &mockSessions{session: &models.Session{}})
	got, err := app.FindPendingForTeam(context.Background(), sessionID, teamB)
	if err != nil {
		t.Fatalf("FindPendingForTeam: %v", err)
	}
	if len(got) != 1 || got[0].Trade.ID != pending {
		t.Fatalf("expected only the pending trade to teamB, got %+v", got)
	}
}
