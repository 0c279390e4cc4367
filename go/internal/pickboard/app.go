// Package pickboard implements the Pick Board (PB): materializing and
// maintaining the ordered pick list for a draft (spec.md §4.1).
package pickboard

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/draftsim/engine/go/internal/apperr"
	"github.com/draftsim/engine/go/internal/models"
)

// Repository defines what the Pick Board app layer needs from storage.
type Repository interface {
	CreatePicksBatch(ctx context.Context, picks []models.DraftPick) error
	HasAnyPicks(ctx context.Context, draftID uuid.UUID) (bool, error)
	GetPick(ctx context.Context, id uuid.UUID) (*models.DraftPick, error)
	GetPicksByDraft(ctx context.Context, draftID uuid.UUID) ([]models.DraftPick, error)
	AssignPlayer(ctx context.Context, pickID, playerID uuid.UUID) error
	TransferOwnership(ctx context.Context, updates []OwnershipUpdate) error
	AvailableFromCurrent(ctx context.Context, draftID uuid.UUID, currentOverallPick int) ([]models.DraftPick, error)
	ClaimNextPickSlot(ctx context.Context, draftID uuid.UUID) (*Slot, error)
	CountRemainingPicks(ctx context.Context, draftID uuid.UUID) (int, error)
	DeletePicksByDraft(ctx context.Context, draftID uuid.UUID) (int, error)
}

// App implements the Pick Board's operations.
type App struct {
	repo Repository
}

func NewApp(repo Repository) *App {
	return &App{repo: repo}
}

// InitializeSimple creates rounds x picks_per_round picks with
// overall_pick = (round-1)*picks_per_round + pick_number and initial
// owner = team at index (pick_number-1) in spec.TeamOrder.
func (a *App) InitializeSimple(ctx context.Context, spec SimpleBoardSpec) error {
	if len(spec.TeamOrder) == 0 {
		return apperr.New(apperr.InvalidArgument, "team order must not be empty")
	}
	if spec.PicksPerRound != len(spec.TeamOrder) {
		return apperr.New(apperr.InvalidArgument, "picks_per_round (%d) must match team order length (%d)", spec.PicksPerRound, len(spec.TeamOrder))
	}
	if spec.Rounds <= 0 {
		return apperr.New(apperr.InvalidArgument, "rounds must be greater than 0")
	}

	exists, err := a.repo.HasAnyPicks(ctx, spec.DraftID)
	if err != nil {
		return fmt.Errorf("checking existing picks: %w", err)
	}
	if exists {
		return apperr.New(apperr.Conflict, "draft %s already has picks", spec.DraftID)
	}

	picks := a.generateSimpleBoard(spec)
	if err := a.repo.CreatePicksBatch(ctx, picks); err != nil {
		return fmt.Errorf("creating picks: %w", err)
	}
	return nil
}

func (a *App) generateSimpleBoard(spec SimpleBoardSpec) []models.DraftPick {
	totalPicks := spec.Rounds * spec.PicksPerRound
	picks := make([]models.DraftPick, 0, totalPicks)

	for round := 1; round <= spec.Rounds; round++ {
		for pickInRound, teamID := range spec.TeamOrder {
			overall := (round-1)*spec.PicksPerRound + pickInRound + 1
			picks = append(picks, models.DraftPick{
				ID:             uuid.New(),
				DraftID:        spec.DraftID,
				Round:          round,
				PickInRound:    pickInRound + 1,
				OverallPick:    overall,
				OriginalTeamID: teamID,
				CurrentTeamID:  teamID,
			})
		}
	}
	return picks
}

// InitializeRealistic builds the board from caller-supplied entries after
// validating contiguity of overall_pick across [1..N] and that overall_pick
// is strictly increasing within each round, per SPEC_FULL §12's
// BuildRealisticBoard validator.
func (a *App) InitializeRealistic(ctx context.Context, spec RealisticBoardSpec) error {
	if err := BuildRealisticBoard(spec.Entries); err != nil {
		return err
	}

	exists, err := a.repo.HasAnyPicks(ctx, spec.DraftID)
	if err != nil {
		return fmt.Errorf("checking existing picks: %w", err)
	}
	if exists {
		return apperr.New(apperr.Conflict, "draft %s already has picks", spec.DraftID)
	}

	picks := make([]models.DraftPick, len(spec.Entries))
	for i, e := range spec.Entries {
		originalTeam := e.TeamID
		if e.OriginalTeamID != nil {
			originalTeam = *e.OriginalTeamID
		}
		picks[i] = models.DraftPick{
			ID:             uuid.New(),
			DraftID:        spec.DraftID,
			Round:          e.Round,
			PickInRound:    e.PickInRound,
			OverallPick:    e.OverallPick,
			OriginalTeamID: originalTeam,
			CurrentTeamID:  e.TeamID,
			IsCompensatory: e.IsCompensatory,
			Note:           e.Note,
		}
	}

	if err := a.repo.CreatePicksBatch(ctx, picks); err != nil {
		return fmt.Errorf("creating picks: %w", err)
	}
	return nil
}

// BuildRealisticBoard validates that entries cover overall_pick 1..N with
// no gaps or duplicates, and that within each round overall_pick is
// strictly increasing with pick_in_round.
func BuildRealisticBoard(entries []RealisticPickEntry) error {
	if len(entries) == 0 {
		return apperr.New(apperr.InvalidArgument, "realistic board requires at least one entry")
	}

	seen := make(map[int]bool, len(entries))
	byRound := make(map[int][]RealisticPickEntry)
	maxOverall := 0
	for _, e := range entries {
		if e.OverallPick <= 0 {
			return apperr.New(apperr.InvalidArgument, "overall_pick must be positive, got %d", e.OverallPick)
		}
		if seen[e.OverallPick] {
			return apperr.New(apperr.InvalidArgument, "duplicate overall_pick %d", e.OverallPick)
		}
		seen[e.OverallPick] = true
		if e.OverallPick > maxOverall {
			maxOverall = e.OverallPick
		}
		byRound[e.Round] = append(byRound[e.Round], e)
	}

	for overall := 1; overall <= maxOverall; overall++ {
		if !seen[overall] {
			return apperr.New(apperr.InvalidArgument, "overall_pick sequence has a gap at %d", overall)
		}
	}

	for round, roundEntries := range byRound {
		lastPickInRound := 0
		lastOverall := 0
		for _, e := range roundEntries {
			if e.PickInRound <= lastPickInRound {
				return apperr.New(apperr.InvalidArgument, "round %d: pick_in_round must be strictly increasing", round)
			}
			if e.OverallPick <= lastOverall {
				return apperr.New(apperr.InvalidArgument, "round %d: overall_pick must be ordered with pick_in_round", round)
			}
			lastPickInRound = e.PickInRound
			lastOverall = e.OverallPick
		}
	}

	return nil
}

// Assign sets a pick's player_id and picked_at.
func (a *App) Assign(ctx context.Context, pickID, playerID uuid.UUID) error {
	pick, err := a.repo.GetPick(ctx, pickID)
	if err != nil {
		return apperr.Wrap(apperr.NotFound, err, "pick %s not found", pickID)
	}
	if pick.Made() {
		return apperr.New(apperr.Conflict, "pick %s already made", pickID)
	}

	if err := a.repo.AssignPlayer(ctx, pickID, playerID); err != nil {
		return fmt.Errorf("assigning player: %w", err)
	}
	return nil
}

// TransferOwnership reassigns current owners for a batch of picks,
// all-or-nothing. Fails with Conflict if any target pick is already made.
func (a *App) TransferOwnership(ctx context.Context, updates []OwnershipUpdate) error {
	if len(updates) == 0 {
		return nil
	}
	for _, u := range updates {
		pick, err := a.repo.GetPick(ctx, u.PickID)
		if err != nil {
			return apperr.Wrap(apperr.NotFound, err, "pick %s not found", u.PickID)
		}
		if pick.Made() {
			return apperr.New(apperr.Conflict, "pick %s already made, cannot transfer", u.PickID)
		}
	}

	if err := a.repo.TransferOwnership(ctx, updates); err != nil {
		return fmt.Errorf("transferring ownership: %w", err)
	}
	return nil
}

// GetPick retrieves a single pick by ID, for callers (Trade Engine,
// Auto-Pick Engine) that need one pick's current ownership and made state
// without pulling the whole board.
func (a *App) GetPick(ctx context.Context, id uuid.UUID) (*models.DraftPick, error) {
	pick, err := a.repo.GetPick(ctx, id)
	if err != nil {
		return nil, apperr.Wrap(apperr.NotFound, err, "pick %s not found", id)
	}
	return pick, nil
}

// Snapshot returns all picks for a draft ordered by overall_pick.
func (a *App) Snapshot(ctx context.Context, draftID uuid.UUID) ([]models.DraftPick, error) {
	picks, err := a.repo.GetPicksByDraft(ctx, draftID)
	if err != nil {
		return nil, fmt.Errorf("getting picks for draft: %w", err)
	}
	return picks, nil
}

// AvailableFromCurrent returns all unmade picks with overall_pick >=
// currentOverallPick.
func (a *App) AvailableFromCurrent(ctx context.Context, draftID uuid.UUID, currentOverallPick int) ([]models.DraftPick, error) {
	picks, err := a.repo.AvailableFromCurrent(ctx, draftID, currentOverallPick)
	if err != nil {
		return nil, fmt.Errorf("getting available picks: %w", err)
	}
	return picks, nil
}

// ClaimNextPickSlot atomically claims the next unmade pick slot, for the
// Auto-Pick Engine to act on without racing a human pick.
func (a *App) ClaimNextPickSlot(ctx context.Context, draftID uuid.UUID) (*Slot, error) {
	slot, err := a.repo.ClaimNextPickSlot(ctx, draftID)
	if err != nil {
		return nil, apperr.Wrap(apperr.NoEligible, err, "no open pick slot for draft %s", draftID)
	}
	return slot, nil
}

// CountRemainingPicks returns the number of unmade pick slots in a draft.
func (a *App) CountRemainingPicks(ctx context.Context, draftID uuid.UUID) (int, error) {
	count, err := a.repo.CountRemainingPicks(ctx, draftID)
	if err != nil {
		return 0, fmt.Errorf("counting remaining picks: %w", err)
	}
	return count, nil
}

// DeletePicksByDraft removes all picks for a draft (administrative cascade).
func (a *App) DeletePicksByDraft(ctx context.Context, draftID uuid.UUID) (int, error) {
	count, err := a.repo.DeletePicksByDraft(ctx, draftID)
	if err != nil {
		return 0, fmt.Errorf("deleting picks: %w", err)
	}
	return count, nil
}
