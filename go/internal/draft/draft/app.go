// Package draft implements the Draft entity of spec.md §3: reference
// metadata for a draft (name, year, mode, round shape). Lifecycle and the
// pick list itself belong to the Session State Store and Pick Board
// respectively — this package only ever reads and writes the drafts table.
package draft

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/draftsim/engine/go/internal/apperr"
	"github.com/draftsim/engine/go/internal/models"
)

// DraftRepository defines what the app layer needs from the drafts store.
type DraftRepository interface {
	CreateDraft(ctx context.Context, req CreateDraftRequest) (*models.Draft, error)
	GetDraft(ctx context.Context, id uuid.UUID) (*models.Draft, error)
	SetTotalPicks(ctx context.Context, id uuid.UUID, totalPicks int) (*models.Draft, error)
	DeleteDraft(ctx context.Context, id uuid.UUID) error
}

// App implements the Draft entity's CRUD surface (spec.md §6.1 POST
// /drafts, GET implicit through GetDraft).
type App struct {
	repo DraftRepository
}

func NewApp(repo DraftRepository) *App {
	return &App{repo: repo}
}

// CreateDraft validates and persists a new Draft row.
func (a *App) CreateDraft(ctx context.Context, req CreateDraftRequest) (*models.Draft, error) {
	if err := a.validateCreateDraftRequest(req); err != nil {
		return nil, apperr.Wrap(apperr.InvalidArgument, err, "invalid draft")
	}

	draft, err := a.repo.CreateDraft(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("create draft: %w", err)
	}

	log.Info().
		Str("draft_id", draft.ID.String()).
		Str("mode", string(draft.Mode)).
		Int("year", draft.Year).
		Msg("draft created")
	return draft, nil
}

// GetDraft retrieves a draft by ID.
func (a *App) GetDraft(ctx context.Context, id uuid.UUID) (*models.Draft, error) {
	draft, err := a.repo.GetDraft(ctx, id)
	if err != nil {
		return nil, apperr.Wrap(apperr.NotFound, err, "draft %s not found", id)
	}
	return draft, nil
}

// SetTotalPicks records the pick count once the Pick Board has been
// initialized. Simple-mode drafts already know this at creation
// (rounds * picks_per_round); Realistic-mode drafts only know it once the
// caller has supplied the explicit entry list to PB.Initialize.
func (a *App) SetTotalPicks(ctx context.Context, id uuid.UUID, totalPicks int) (*models.Draft, error) {
	if totalPicks <= 0 {
		return nil, apperr.New(apperr.InvalidArgument, "total_picks must be positive, got %d", totalPicks)
	}
	draft, err := a.repo.SetTotalPicks(ctx, id, totalPicks)
	if err != nil {
		return nil, fmt.Errorf("set total picks: %w", err)
	}
	return draft, nil
}

// DeleteDraft removes a draft. Spec.md §3 "destroyed only by administrative
// cascade" — callers are responsible for ensuring no session references it.
func (a *App) DeleteDraft(ctx context.Context, id uuid.UUID) error {
	if err := a.repo.DeleteDraft(ctx, id); err != nil {
		return fmt.Errorf("delete draft: %w", err)
	}
	return nil
}

func (a *App) validateCreateDraftRequest(req CreateDraftRequest) error {
	if req.LeagueID == uuid.Nil {
		return fmt.Errorf("league_id is required")
	}
	if req.Name == "" {
		return fmt.Errorf("name is required")
	}
	if req.Rounds <= 0 {
		return fmt.Errorf("rounds must be greater than 0")
	}

	switch req.Mode {
	case models.DraftModeSimple:
		if req.PicksPerRound == nil || *req.PicksPerRound <= 0 {
			return fmt.Errorf("picks_per_round is required and must be greater than 0 in simple mode")
		}
		if req.TotalPicks != req.Rounds*(*req.PicksPerRound) {
			return fmt.Errorf("total_picks must equal rounds * picks_per_round in simple mode")
		}
	case models.DraftModeRealistic:
		if req.PicksPerRound != nil {
			return fmt.Errorf("picks_per_round must be nil in realistic mode")
		}
	default:
		return fmt.Errorf("invalid mode: %s", req.Mode)
	}

	return nil
}
