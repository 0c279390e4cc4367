package teams

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/draftsim/engine/go/internal/teams/db"
)

type fakeQuerier struct {
	createArg db.CreateTeamParams
	team      db.Team
}

func (f *fakeQuerier) CreateTeam(ctx context.Context, arg db.CreateTeamParams) (db.Team, error) {
	f.createArg = arg
	return f.team, nil
}
func (f *fakeQuerier) GetTeam(ctx context.Context, id pgtype.UUID) (db.Team, error) {
	return f.team, nil
}
func (f *fakeQuerier) GetTeamByExternalID(ctx context.Context, arg db.GetTeamByExternalIDParams) (db.Team, error) {
	return f.team, nil
}
func (f *fakeQuerier) GetTeamBySportIdAndCode(ctx context.Context, arg db.GetTeamBySportIdAndCodeParams) (db.Team, error) {
	return f.team, nil
}
func (f *fakeQuerier) ListTeamsBySport(ctx context.Context, sportID string) ([]db.Team, error) {
	return []db.Team{f.team}, nil
}
func (f *fakeQuerier) ListAllTeams(ctx context.Context) ([]db.Team, error) {
	return []db.Team{f.team}, nil
}
func (f *fakeQuerier) UpdateTeam(ctx context.Context, arg db.UpdateTeamParams) (db.Team, error) {
	return f.team, nil
}
func (f *fakeQuerier) DeleteTeam(ctx context.Context, id pgtype.UUID) error { return nil }

func sampleDBTeam() db.Team {
	id := uuid.New()
	return db.Team{
		ID:              pgtype.UUID{Bytes: id, Valid: true},
		SportID:         "nfl",
		ExternalID:      "ext-1",
		Name:            "Jets",
		Code:            "NYJ",
		City:            "New York",
		Coach:           pgtype.Text{String: "Coach", Valid: true},
		EstablishedYear: pgtype.Int4{Int32: 1960, Valid: true},
	}
}

func TestRepositoryCreateTeamNullableFields(t *testing.T) {
	fq := &fakeQuerier{team: sampleDBTeam()}
	repo := NewRepository(fq)

	coach := "Head Coach"
	req := CreateTeamRequest{SportID: "nfl", ExternalID: "ext-1", Name: "Jets", Code: "NYJ", City: "New York", Coach: &coach}

	team, err := repo.CreateTeam(context.Background(), req)
	if err != nil {
		t.Fatalf("CreateTeam: %v", err)
	}
	if !fq.createArg.Coach.Valid || fq.createArg.Coach.String != coach {
		t.Fatalf("coach not passed through to params: %+v", fq.createArg.Coach)
	}
	if team.Coach == nil || *team.Coach != "Coach" {
		t.Fatalf("dbTeamToModel did not carry Coach through: %+v", team.Coach)
	}
	if team.EstablishedYear == nil || *team.EstablishedYear != 1960 {
		t.Fatalf("dbTeamToModel did not carry EstablishedYear through: %v", team.EstablishedYear)
	}
}

func TestRepositoryDbTeamToModelNullFieldsOmitted(t *testing.T) {
	fq := &fakeQuerier{team: db.Team{
		ID: pgtype.UUID{Bytes: uuid.New(), Valid: true}, SportID: "nfl", ExternalID: "ext-2",
		Name: "Giants", Code: "NYG", City: "East Rutherford",
	}}
	repo := NewRepository(fq)

	team, err := repo.GetTeam(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("GetTeam: %v", err)
	}
	if team.Coach != nil || team.Owner != nil || team.Stadium != nil || team.EstablishedYear != nil {
		t.Fatalf("expected all optional fields nil, got %+v", team)
	}
}

func TestRepositoryUpdateTeamPartial(t *testing.T) {
	fq := &fakeQuerier{team: sampleDBTeam()}
	repo := NewRepository(fq)

	id := uuid.New()
	params := repo.updateTeamRequestToParams(id, UpdateTeamRequest{Name: strPtr("New Name")})
	if params.Name != "New Name" {
		t.Fatalf("Name not set: %+v", params)
	}
	if params.Code != "" {
		t.Fatalf("expected Code to stay zero-value when absent from request, got %q", params.Code)
	}
}
