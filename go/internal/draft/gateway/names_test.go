package gateway

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"

	"github.com/draftsim/engine/go/internal/catalog"
	"github.com/draftsim/engine/go/internal/models"
	"github.com/draftsim/engine/go/internal/teams"
)

type fakeTeamsRepo struct {
	teams map[uuid.UUID]*models.Team
}

func (f *fakeTeamsRepo) CreateTeam(ctx context.Context, req teams.CreateTeamRequest) (*models.Team, error) {
	return nil, fmt.Errorf("not implemented")
}
func (f *fakeTeamsRepo) GetTeam(ctx context.Context, id uuid.UUID) (*models.Team, error) {
	t, ok := f.teams[id]
	if !ok {
		return nil, fmt.Errorf("not found")
	}
	return t, nil
}
func (f *fakeTeamsRepo) GetTeamByExternalID(ctx context.Context, sportID, externalID string) (*models.Team, error) {
	return nil, fmt.Errorf("not implemented")
}
func (f *fakeTeamsRepo) GetTeamBySportIdAndCode(ctx context.Context, sportID, code string) (*models.Team, error) {
	return nil, fmt.Errorf("not implemented")
}
func (f *fakeTeamsRepo) ListTeamsBySport(ctx context.Context, sportID string) ([]models.Team, error) {
	return nil, nil
}
func (f *fakeTeamsRepo) ListAllTeams(ctx context.Context) ([]models.Team, error) { return nil, nil }
func (f *fakeTeamsRepo) UpdateTeam(ctx context.Context, id uuid.UUID, req teams.UpdateTeamRequest) (*models.Team, error) {
	return nil, fmt.Errorf("not implemented")
}
func (f *fakeTeamsRepo) DeleteTeam(ctx context.Context, id uuid.UUID) error {
	return fmt.Errorf("not implemented")
}

type fakeCatalogRepo struct {
	playersByYear map[int][]catalog.Player
}

func (f *fakeCatalogRepo) PlayersByYear(ctx context.Context, draftYear int) ([]catalog.Player, error) {
	return f.playersByYear[draftYear], nil
}
func (f *fakeCatalogRepo) TeamNeeds(ctx context.Context, teamID uuid.UUID) ([]catalog.TeamNeed, error) {
	return nil, nil
}
func (f *fakeCatalogRepo) ScoutingReportsForTeam(ctx context.Context, teamID uuid.UUID) ([]catalog.ScoutingReport, error) {
	return nil, nil
}
func (f *fakeCatalogRepo) RankingSources(ctx context.Context) ([]catalog.RankingSource, error) {
	return nil, nil
}
func (f *fakeCatalogRepo) RankingsByYear(ctx context.Context, draftYear int) ([]catalog.PlayerRanking, error) {
	return nil, nil
}
func (f *fakeCatalogRepo) TeamStrategy(ctx context.Context, teamID uuid.UUID) (*catalog.TeamStrategy, error) {
	return nil, nil
}

func TestResolverTeamName(t *testing.T) {
	teamID := uuid.New()
	teamsApp := teams.NewApp(&fakeTeamsRepo{teams: map[uuid.UUID]*models.Team{
		teamID: {ID: teamID, Name: "Jets"},
	}})
	catApp := catalog.NewApp(&fakeCatalogRepo{})

	r := NewNameResolver(teamsApp, catApp)
	if got := r.TeamName(teamID); got != "Jets" {
		t.Fatalf("TeamName = %q, want Jets", got)
	}
	if got := r.TeamName(uuid.New()); got != "" {
		t.Fatalf("unknown team should resolve to empty string, got %q", got)
	}
}

func TestResolverPlayerNameCachesPerYear(t *testing.T) {
	playerID := uuid.New()
	calls := 0
	fake := &fakeCatalogRepo{playersByYear: map[int][]catalog.Player{
		2026: {{ID: playerID, Name: "Prospect"}},
	}}
	teamsApp := teams.NewApp(&fakeTeamsRepo{teams: map[uuid.UUID]*models.Team{}})
	catApp := catalog.NewApp(countingRepo{fakeCatalogRepo: fake, calls: &calls})

	r := NewNameResolver(teamsApp, catApp)
	if got := r.PlayerName(2026, playerID); got != "Prospect" {
		t.Fatalf("PlayerName = %q, want Prospect", got)
	}
	if got := r.PlayerName(2026, playerID); got != "Prospect" {
		t.Fatalf("PlayerName (second call) = %q, want Prospect", got)
	}
	if calls != 1 {
		t.Fatalf("expected PlayersByYear to be called once (cached), got %d", calls)
	}
}

type countingRepo struct {
	*fakeCatalogRepo
	calls *int
}

func (c countingRepo) PlayersByYear(ctx context.Context, draftYear int) ([]catalog.Player, error) {
	*c.calls++
	return c.fakeCatalogRepo.PlayersByYear(ctx, draftYear)
}
