package draft

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/draftsim/engine/go/internal/draft/draft/db"
	"github.com/draftsim/engine/go/internal/models"
)

// Repository implements DraftRepository against Postgres via the generated
// drafts query set.
type Repository struct {
	queries *db.Queries
}

func NewRepository(queries *db.Queries) *Repository {
	return &Repository{queries: queries}
}

func (r *Repository) CreateDraft(ctx context.Context, req CreateDraftRequest) (*models.Draft, error) {
	var picksPerRound sql.NullInt32
	if req.PicksPerRound != nil {
		picksPerRound = sql.NullInt32{Int32: int32(*req.PicksPerRound), Valid: true}
	}

	draft, err := r.queries.CreateDraft(ctx, db.CreateDraftParams{
		ID:            uuid.New(),
		LeagueID:      req.LeagueID,
		Name:          req.Name,
		Year:          int32(req.Year),
		Mode:          string(req.Mode),
		Rounds:        int32(req.Rounds),
		PicksPerRound: picksPerRound,
		TotalPicks:    int32(req.TotalPicks),
	})
	if err != nil {
		return nil, fmt.Errorf("create draft: %w", err)
	}
	return dbDraftToModel(draft), nil
}

func (r *Repository) GetDraft(ctx context.Context, id uuid.UUID) (*models.Draft, error) {
	draft, err := r.queries.GetDraft(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get draft: %w", err)
	}
	return dbDraftToModel(draft), nil
}

func (r *Repository) SetTotalPicks(ctx context.Context, id uuid.UUID, totalPicks int) (*models.Draft, error) {
	draft, err := r.queries.SetTotalPicks(ctx, id, int32(totalPicks))
	if err != nil {
		return nil, fmt.Errorf("set total picks: %w", err)
	}
	return dbDraftToModel(draft), nil
}

func (r *Repository) DeleteDraft(ctx context.Context, id uuid.UUID) error {
	if err := r.queries.DeleteDraft(ctx, id); err != nil {
		return fmt.Errorf("delete draft: %w", err)
	}
	return nil
}

func dbDraftToModel(d db.Draft) *models.Draft {
	draft := &models.Draft{
		ID:         d.ID,
		LeagueID:   d.LeagueID,
		Name:       d.Name,
		Year:       int(d.Year),
		Mode:       models.DraftMode(d.Mode),
		Rounds:     int(d.Rounds),
		TotalPicks: int(d.TotalPicks),
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
	if d.PicksPerRound.Valid {
		n := int(d.PicksPerRound.Int32)
		draft.PicksPerRound = &n
	}
	return draft
}
