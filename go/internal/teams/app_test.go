package teams

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"

	"github.com/draftsim/engine/go/internal/models"
)

type fakeRepo struct {
	byID         map[uuid.UUID]*models.Team
	byExternalID map[string]*models.Team
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		byID:         map[uuid.UUID]*models.Team{},
		byExternalID: map[string]*models.Team{},
	}
}

func (f *fakeRepo) key(sportID, externalID string) string { return sportID + "/" + externalID }

func (f *fakeRepo) CreateTeam(ctx context.Context, req CreateTeamRequest) (*models.Team, error) {
	t := &models.Team{
		ID: uuid.New(), SportID: req.SportID, ExternalID: req.ExternalID,
		Name: req.Name, Code: req.Code, City: req.City,
		Coach: req.Coach, Owner: req.Owner, Stadium: req.Stadium, EstablishedYear: req.EstablishedYear,
	}
	f.byID[t.ID] = t
	f.byExternalID[f.key(t.SportID, t.ExternalID)] = t
	return t, nil
}

func (f *fakeRepo) GetTeam(ctx context.Context, id uuid.UUID) (*models.Team, error) {
	t, ok := f.byID[id]
	if !ok {
		return nil, fmt.Errorf("not found")
	}
	return t, nil
}

func (f *fakeRepo) GetTeamByExternalID(ctx context.Context, sportID, externalID string) (*models.Team, error) {
	t, ok := f.byExternalID[f.key(sportID, externalID)]
	if !ok {
		return nil, fmt.Errorf("not found")
	}
	return t, nil
}

func (f *fakeRepo) GetTeamBySportIdAndCode(ctx context.Context, sportID, code string) (*models.Team, error) {
	for _, t := range f.byID {
		if t.SportID == sportID && t.Code == code {
			return t, nil
		}
	}
	return nil, fmt.Errorf("not found")
}

func (f *fakeRepo) ListTeamsBySport(ctx context.Context, sportID string) ([]models.Team, error) {
	var out []models.Team
	for _, t := range f.byID {
		if t.SportID == sportID {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListAllTeams(ctx context.Context) ([]models.Team, error) {
	var out []models.Team
	for _, t := range f.byID {
		out = append(out, *t)
	}
	return out, nil
}

func (f *fakeRepo) UpdateTeam(ctx context.Context, id uuid.UUID, req UpdateTeamRequest) (*models.Team, error) {
	t, ok := f.byID[id]
	if !ok {
		return nil, fmt.Errorf("not found")
	}
	if req.Name != nil {
		t.Name = *req.Name
	}
	if req.Code != nil {
		t.Code = *req.Code
	}
	if req.City != nil {
		t.City = *req.City
	}
	return t, nil
}

func (f *fakeRepo) DeleteTeam(ctx context.Context, id uuid.UUID) error {
	t, ok := f.byID[id]
	if !ok {
		return fmt.Errorf("not found")
	}
	delete(f.byID, id)
	delete(f.byExternalID, f.key(t.SportID, t.ExternalID))
	return nil
}

func validCreateReq() CreateTeamRequest {
	return CreateTeamRequest{SportID: "nfl", ExternalID: "ext-1", Name: "Jets", Code: "NYJ", City: "New York"}
}

func TestCreateTeam(t *testing.T) {
	repo := newFakeRepo()
	app := NewApp(repo)
	ctx := context.Background()

	team, err := app.CreateTeam(ctx, validCreateReq())
	if err != nil {
		t.Fatalf("CreateTeam: %v", err)
	}
	if team.Code != "NYJ" {
		t.Fatalf("got code %q", team.Code)
	}
}

func TestCreateTeamDuplicateExternalID(t *testing.T) {
	repo := newFakeRepo()
	app := NewApp(repo)
	ctx := context.Background()

	if _, err := app.CreateTeam(ctx, validCreateReq()); err != nil {
		t.Fatalf("first create: %v", err)
	}
	if _, err := app.CreateTeam(ctx, validCreateReq()); err == nil {
		t.Fatal("expected duplicate external_id to be rejected")
	}
}

func TestCreateTeamValidation(t *testing.T) {
	app := NewApp(newFakeRepo())
	ctx := context.Background()

	req := validCreateReq()
	req.Name = ""
	if _, err := app.CreateTeam(ctx, req); err == nil {
		t.Fatal("expected missing name to be rejected")
	}
}

func TestGetTeamBySportIdAndCode(t *testing.T) {
	repo := newFakeRepo()
	app := NewApp(repo)
	ctx := context.Background()

	created, err := app.CreateTeam(ctx, validCreateReq())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := app.GetTeamBySportIdAndCode(ctx, "nfl", "NYJ")
	if err != nil {
		t.Fatalf("GetTeamBySportIdAndCode: %v", err)
	}
	if got.ID != created.ID {
		t.Fatalf("got team %s, want %s", got.ID, created.ID)
	}
}

func TestDeleteTeamNotFound(t *testing.T) {
	app := NewApp(newFakeRepo())
	if err := app.DeleteTeam(context.Background(), uuid.New()); err == nil {
		t.Fatal("expected delete of unknown team to fail")
	}
}

func TestGetTeamsWithFilterAndPagination(t *testing.T) {
	repo := newFakeRepo()
	app := NewApp(repo)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		req := CreateTeamRequest{
			SportID: "nfl", ExternalID: fmt.Sprintf("ext-%d", i),
			Name: fmt.Sprintf("Team %d", i), Code: fmt.Sprintf("T%d", i), City: "Metropolis",
		}
		if _, err := app.CreateTeam(ctx, req); err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
	}

	resp, err := app.GetTeamsWithFilter(ctx, TeamFilter{SportID: strPtr("nfl")}, PaginationParams{Limit: 2, Offset: 0})
	if err != nil {
		t.Fatalf("GetTeamsWithFilter: %v", err)
	}
	if resp.Total != 5 {
		t.Fatalf("total = %d, want 5", resp.Total)
	}
	if len(resp.Teams) != 2 {
		t.Fatalf("page len = %d, want 2", len(resp.Teams))
	}
	if !resp.HasMore {
		t.Fatal("expected HasMore true")
	}
}

func strPtr(s string) *string { return &s }
