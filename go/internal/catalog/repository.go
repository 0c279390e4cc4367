package catalog

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	catdb "github.com/draftsim/engine/go/internal/catalog/db"
)

// SQLRepository implements Repository against Postgres via pgx, following
// `internal/teams/repository.go`'s explicit pgtype.UUID<->uuid.UUID
// conversion style.
type SQLRepository struct {
	queries *catdb.Queries
}

func NewSQLRepository(pool catdb.DBTX) *SQLRepository {
	return &SQLRepository{queries: catdb.New(pool)}
}

func toPgUUID(id uuid.UUID) pgtype.UUID {
	return pgtype.UUID{Bytes: id, Valid: true}
}

func fromPgUUID(id pgtype.UUID) uuid.UUID {
	return uuid.UUID(id.Bytes)
}

func (r *SQLRepository) PlayersByYear(ctx context.Context, draftYear int) ([]Player, error) {
	rows, err := r.queries.ListPlayersByYear(ctx, int32(draftYear))
	if err != nil {
		return nil, fmt.Errorf("querying players: %w", err)
	}
	out := make([]Player, len(rows))
	for i, row := range rows {
		out[i] = Player{
			ID:               fromPgUUID(row.ID),
			DraftYear:        int(row.DraftYear),
			Name:             row.Name,
			Position:         row.Position,
			College:          row.College.String,
			InjuryConcern:    row.InjuryConcern,
			CharacterConcern: row.CharacterConcern,
		}
	}
	return out, nil
}

func (r *SQLRepository) TeamNeeds(ctx context.Context, teamID uuid.UUID) ([]TeamNeed, error) {
	rows, err := r.queries.ListTeamNeeds(ctx, toPgUUID(teamID))
	if err != nil {
		return nil, fmt.Errorf("querying team needs: %w", err)
	}
	out := make([]TeamNeed, len(rows))
	for i, row := range rows {
		out[i] = TeamNeed{
			TeamID:   fromPgUUID(row.TeamID),
			Position: row.Position,
			Priority: int(row.Priority),
		}
	}
	return out, nil
}

func (r *SQLRepository) ScoutingReportsForTeam(ctx context.Context, teamID uuid.UUID) ([]ScoutingReport, error) {
	rows, err := r.queries.ListScoutingReportsForTeam(ctx, toPgUUID(teamID))
	if err != nil {
		return nil, fmt.Errorf("querying scouting reports: %w", err)
	}
	out := make([]ScoutingReport, len(rows))
	for i, row := range rows {
		var notes json.RawMessage
		if row.Notes.Valid {
			notes = json.RawMessage(row.Notes.RawMessage)
		}
		out[i] = ScoutingReport{
			TeamID:   fromPgUUID(row.TeamID),
			PlayerID: fromPgUUID(row.PlayerID),
			Grade:    row.Grade,
			Notes:    notes,
		}
	}
	return out, nil
}

func (r *SQLRepository) RankingSources(ctx context.Context) ([]RankingSource, error) {
	rows, err := r.queries.ListRankingSources(ctx)
	if err != nil {
		return nil, fmt.Errorf("querying ranking sources: %w", err)
	}
	out := make([]RankingSource, len(rows))
	for i, row := range rows {
		out[i] = RankingSource{ID: fromPgUUID(row.ID), Name: row.Name}
	}
	return out, nil
}

func (r *SQLRepository) RankingsByYear(ctx context.Context, draftYear int) ([]PlayerRanking, error) {
	rows, err := r.queries.ListRankingsByYear(ctx, int32(draftYear))
	if err != nil {
		return nil, fmt.Errorf("querying rankings: %w", err)
	}
	out := make([]PlayerRanking, len(rows))
	for i, row := range rows {
		out[i] = PlayerRanking{
			SourceID: fromPgUUID(row.SourceID),
			PlayerID: fromPgUUID(row.PlayerID),
			Rank:     int(row.Rank),
		}
	}
	return out, nil
}

// TeamStrategy returns nil, nil if the team has no strategy override
// configured — the caller falls back to the Auto-Pick Engine's defaults.
func (r *SQLRepository) TeamStrategy(ctx context.Context, teamID uuid.UUID) (*TeamStrategy, error) {
	row, err := r.queries.GetTeamStrategy(ctx, toPgUUID(teamID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("querying team strategy: %w", err)
	}

	strategy := &TeamStrategy{
		TeamID:        fromPgUUID(row.TeamID),
		RiskTolerance: row.RiskTolerance,
	}
	if row.WeightBpa.Valid {
		strategy.WeightBPA = &row.WeightBpa.Float64
	}
	if row.WeightNeed.Valid {
		strategy.WeightNeed = &row.WeightNeed.Float64
	}
	if len(row.PositionValues) > 0 {
		var values map[string]float64
		if err := json.Unmarshal(row.PositionValues, &values); err != nil {
			return nil, fmt.Errorf("decoding position values for team %s: %w", teamID, err)
		}
		strategy.PositionValues = values
	}
	return strategy, nil
}
