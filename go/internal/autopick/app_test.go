package autopick

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/draftsim/engine/go/internal/apperr"
	"github.com/draftsim/engine/go/internal/catalog"
	"github.com/draftsim/engine/go/internal/draft/events"
	"github.com/draftsim/engine/go/internal/models"
	"github.com/draftsim/engine/go/internal/pickboard"
)

type fakePick struct {
	id          uuid.UUID
	round       int
	pickInRound int
	overall     int
	teamID      uuid.UUID
	playerID    *uuid.UUID
}

type fakeBoard struct {
	picks []*fakePick
}

func (f *fakeBoard) ClaimNextPickSlot(ctx context.Context, draftID uuid.UUID) (*pickboard.Slot, error) {
	for _, p := range f.picks {
		if p.playerID == nil {
			return &pickboard.Slot{PickID: p.id, DraftID: draftID, OverallPick: p.overall, CurrentTeamID: p.teamID}, nil
		}
	}
	return nil, apperr.New(apperr.NoEligible, "no open pick slot")
}

func (f *fakeBoard) GetPick(ctx context.Context, id uuid.UUID) (*models.DraftPick, error) {
	for _, p := range f.picks {
		if p.id == id {
			return &models.DraftPick{
				ID: p.id, Round: p.round, PickInRound: p.pickInRound, OverallPick: p.overall,
				CurrentTeamID: p.teamID, OriginalTeamID: p.teamID, PlayerID: p.playerID,
			}, nil
		}
	}
	return nil, apperr.New(apperr.NotFound, "pick %s not found", id)
}

func (f *fakeBoard) Assign(ctx context.Context, pickID, playerID uuid.UUID) error {
	for _, p := range f.picks {
		if p.id == pickID {
			id := playerID
			p.playerID = &id
			return nil
		}
	}
	return apperr.New(apperr.NotFound, "pick %s not found", pickID)
}

func (f *fakeBoard) Snapshot(ctx context.Context, draftID uuid.UUID) ([]models.DraftPick, error) {
	out := make([]models.DraftPick, len(f.picks))
	for i, p := range f.picks {
		out[i] = models.DraftPick{ID: p.id, OverallPick: p.overall, CurrentTeamID: p.teamID, PlayerID: p.playerID}
	}
	return out, nil
}

func (f *fakeBoard) CountRemainingPicks(ctx context.Context, draftID uuid.UUID) (int, error) {
	n := 0
	for _, p := range f.picks {
		if p.playerID == nil {
			n++
		}
	}
	return n, nil
}

type fakeSessions struct {
	session  *models.Session
	inserted []events.Type
}

func (f *fakeSessions) GetSession(ctx context.Context, id uuid.UUID) (*models.Session, error) {
	return f.session, nil
}

func (f *fakeSessions) AdvanceCurrentPick(ctx context.Context, id uuid.UUID, to int) (*models.Session, error) {
	if to > f.session.CurrentPickNumber {
		f.session.CurrentPickNumber = to
	}
	return f.session, nil
}

func (f *fakeSessions) Complete(ctx context.Context, id uuid.UUID, totalPicks int) (*models.Session, error) {
	f.session.Status = models.SessionStatusCompleted
	return f.session, nil
}

func (f *fakeSessions) Append(ctx context.Context, sessionID uuid.UUID, eventType events.Type, payload any) error {
	f.inserted = append(f.inserted, eventType)
	return nil
}

type fakeDrafts struct {
	draft *models.Draft
}

func (f *fakeDrafts) GetDraft(ctx context.Context, id uuid.UUID) (*models.Draft, error) {
	return f.draft, nil
}

type fakeCatalog struct {
	players []catalog.Player
	ranks   map[uuid.UUID]float64
}

func (f *fakeCatalog) PlayersByYear(ctx context.Context, draftYear int) ([]catalog.Player, error) {
	return f.players, nil
}
func (f *fakeCatalog) TeamNeeds(ctx context.Context, teamID uuid.UUID) ([]catalog.TeamNeed, error) {
	return nil, nil
}
func (f *fakeCatalog) ConsensusRankings(ctx context.Context, draftYear int) (map[uuid.UUID]float64, error) {
	return f.ranks, nil
}
func (f *fakeCatalog) ScoutingGrades(ctx context.Context, teamID uuid.UUID) (map[uuid.UUID]float64, error) {
	return nil, nil
}
func (f *fakeCatalog) Strategy(ctx context.Context, teamID uuid.UUID) (*catalog.TeamStrategy, error) {
	return nil, nil
}

func TestRunAutoPickYieldsToHuman(t *testing.T) {
	draftID := uuid.New()
	humanTeam := uuid.New()
	pickID := uuid.New()

	board := &fakeBoard{picks: []*fakePick{
		{id: pickID, round: 1, pickInRound: 1, overall: 1, teamID: humanTeam},
	}}
	sessions := &fakeSessions{session: &models.Session{
		ID: uuid.New(), DraftID: draftID, Status: models.SessionStatusInProgress,
		CurrentPickNumber: 1, ControlledTeamIDs: []uuid.UUID{humanTeam},
	}}
	drafts := &fakeDrafts{draft: &models.Draft{ID: draftID, Year: 2026}}
	app := NewApp(board, sessions, drafts, &fakeCatalog{})

	got, err := app.RunAutoPick(context.Background(), sessions.session.ID)
	if err != nil {
		t.Fatalf("RunAutoPick: %v", err)
	}
	if got.CurrentPickNumber != 1 {
		t.Fatalf("expected no advancement, got current_pick_number=%d", got.CurrentPickNumber)
	}
	if len(sessions.inserted) != 0 {
		t.Fatalf("expected no events appended when yielding to a human, got %v", sessions.inserted)
	}
}

func TestRunAutoPickAssignsAndCompletes(t *testing.T) {
	draftID := uuid.New()
	aiTeam := uuid.New()
	playerA := uuid.New()
	playerB := uuid.New()
	pick1 := uuid.New()
	pick2 := uuid.New()

	board := &fakeBoard{picks: []*fakePick{
		{id: pick1, round: 1, pickInRound: 1, overall: 1, teamID: aiTeam},
		{id: pick2, round: 1, pickInRound: 2, overall: 2, teamID: aiTeam},
	}}
	sessions := &fakeSessions{session: &models.Session{
		ID: uuid.New(), DraftID: draftID, Status: models.SessionStatusInProgress,
		CurrentPickNumber: 1,
	}}
	drafts := &fakeDrafts{draft: &models.Draft{ID: draftID, Year: 2026}}
	cat := &fakeCatalog{
		players: []catalog.Player{
			{ID: playerA, Position: "QB"},
			{ID: playerB, Position: "WR"},
		},
		ranks: map[uuid.UUID]float64{playerA: 1, playerB: 2},
	}
	app := NewApp(board, sessions, drafts, cat)

	got, err := app.RunAutoPick(context.Background(), sessions.session.ID)
	if err != nil {
		t.Fatalf("RunAutoPick: %v", err)
	}
	if got.Status != models.SessionStatusCompleted {
		t.Fatalf("expected session COMPLETED, got %s", got.Status)
	}
	if board.picks[0].playerID == nil || *board.picks[0].playerID != playerA {
		t.Fatalf("expected pick 1 to go to the top-ranked player")
	}
	if board.picks[1].playerID == nil || *board.picks[1].playerID != playerB {
		t.Fatalf("expected pick 2 to go to the remaining player")
	}

	wantEvents := []events.Type{events.PickMade, events.PickMade}
	if len(sessions.inserted) != len(wantEvents) {
		t.Fatalf("expected %d events, got %v", len(wantEvents), sessions.inserted)
	}
	for i, e := range wantEvents {
		if sessions.inserted[i] != e {
			t.Fatalf("event %d: expected %s, got %s", i, e, sessions.inserted[i])
		}
	}
}
