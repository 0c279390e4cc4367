package catalog

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Repository defines what the Catalog needs from durable storage.
type Repository interface {
	PlayersByYear(ctx context.Context, draftYear int) ([]Player, error)
	TeamNeeds(ctx context.Context, teamID uuid.UUID) ([]TeamNeed, error)
	ScoutingReportsForTeam(ctx context.Context, teamID uuid.UUID) ([]ScoutingReport, error)
	RankingSources(ctx context.Context) ([]RankingSource, error)
	RankingsByYear(ctx context.Context, draftYear int) ([]PlayerRanking, error)
	TeamStrategy(ctx context.Context, teamID uuid.UUID) (*TeamStrategy, error)
}

// App is the read-only facade the Auto-Pick Engine consults for scoring
// inputs (spec.md §4.4).
type App struct {
	repo Repository
}

func NewApp(repo Repository) *App {
	return &App{repo: repo}
}

// PlayersByYear returns every catalogued prospect for a draft year. The
// Auto-Pick Engine, not the Catalog, filters out players already picked
// (it already has the Pick Board's made-picks view).
func (a *App) PlayersByYear(ctx context.Context, draftYear int) ([]Player, error) {
	players, err := a.repo.PlayersByYear(ctx, draftYear)
	if err != nil {
		return nil, fmt.Errorf("listing players for %d: %w", draftYear, err)
	}
	return players, nil
}

// TeamNeeds returns a team's position priorities.
func (a *App) TeamNeeds(ctx context.Context, teamID uuid.UUID) ([]TeamNeed, error) {
	needs, err := a.repo.TeamNeeds(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("listing team needs for %s: %w", teamID, err)
	}
	return needs, nil
}

// ConsensusRankings computes, for every ranked player in a draft year, the
// mean rank across configured sources (spec.md §9 "consensus rank... mean
// of per-source ranks"). Players with zero ranking-source entries are
// simply absent from the returned map.
func (a *App) ConsensusRankings(ctx context.Context, draftYear int) (map[uuid.UUID]float64, error) {
	rankings, err := a.repo.RankingsByYear(ctx, draftYear)
	if err != nil {
		return nil, fmt.Errorf("listing rankings for %d: %w", draftYear, err)
	}

	sums := make(map[uuid.UUID]float64)
	counts := make(map[uuid.UUID]int)
	for _, r := range rankings {
		sums[r.PlayerID] += float64(r.Rank)
		counts[r.PlayerID]++
	}

	out := make(map[uuid.UUID]float64, len(sums))
	for playerID, sum := range sums {
		out[playerID] = sum / float64(counts[playerID])
	}
	return out, nil
}

// ScoutingGrades returns a team's per-player grades as a lookup map.
func (a *App) ScoutingGrades(ctx context.Context, teamID uuid.UUID) (map[uuid.UUID]float64, error) {
	reports, err := a.repo.ScoutingReportsForTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("listing scouting reports for %s: %w", teamID, err)
	}
	out := make(map[uuid.UUID]float64, len(reports))
	for _, r := range reports {
		out[r.PlayerID] = r.Grade
	}
	return out, nil
}

// Strategy returns a team's scoring overrides, or nil if the team has none
// configured (callers fall back to the Auto-Pick Engine's defaults).
func (a *App) Strategy(ctx context.Context, teamID uuid.UUID) (*TeamStrategy, error) {
	strategy, err := a.repo.TeamStrategy(ctx, teamID)
	if err != nil {
		return nil, err
	}
	return strategy, nil
}
