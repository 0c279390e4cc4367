package pickboard

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/draftsim/engine/go/internal/apperr"
	"github.com/draftsim/engine/go/internal/models"
	pbdb "github.com/draftsim/engine/go/internal/pickboard/db"
)

// SQLRepository implements Repository against the pickboard db package.
type SQLRepository struct {
	queries *pbdb.Queries
	sqlDB   *sql.DB
}

func NewSQLRepository(queries *pbdb.Queries, sqlDB *sql.DB) *SQLRepository {
	return &SQLRepository{queries: queries, sqlDB: sqlDB}
}

func (r *SQLRepository) HasAnyPicks(ctx context.Context, draftID uuid.UUID) (bool, error) {
	picks, err := r.queries.GetPicksByDraft(ctx, draftID)
	if err != nil {
		return false, fmt.Errorf("checking for existing picks: %w", err)
	}
	return len(picks) > 0, nil
}

func (r *SQLRepository) CreatePicksBatch(ctx context.Context, picks []models.DraftPick) error {
	if len(picks) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, len(picks))
	draftIDs := make([]uuid.UUID, len(picks))
	rounds := make([]int32, len(picks))
	picksInRound := make([]int32, len(picks))
	overallPicks := make([]int32, len(picks))
	originalTeamIDs := make([]uuid.UUID, len(picks))
	currentTeamIDs := make([]uuid.UUID, len(picks))
	isCompensatory := make([]bool, len(picks))
	notes := make([]string, len(picks))

	for i, p := range picks {
		ids[i] = p.ID
		draftIDs[i] = p.DraftID
		rounds[i] = int32(p.Round)
		picksInRound[i] = int32(p.PickInRound)
		overallPicks[i] = int32(p.OverallPick)
		originalTeamIDs[i] = p.OriginalTeamID
		currentTeamIDs[i] = p.CurrentTeamID
		isCompensatory[i] = p.IsCompensatory
		if p.Note != nil {
			notes[i] = *p.Note
		}
	}

	err := r.queries.CreatePickBatch(ctx, pbdb.CreatePickBatchParams{
		IDs:             ids,
		DraftIDs:        draftIDs,
		Rounds:          rounds,
		PicksInRound:    picksInRound,
		OverallPicks:    overallPicks,
		OriginalTeamIDs: originalTeamIDs,
		CurrentTeamIDs:  currentTeamIDs,
		IsCompensatory:  isCompensatory,
		Notes:           notes,
	})
	if err != nil {
		return fmt.Errorf("batch inserting picks: %w", err)
	}
	return nil
}

func (r *SQLRepository) GetPick(ctx context.Context, id uuid.UUID) (*models.DraftPick, error) {
	pick, err := r.queries.GetPick(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperr.New(apperr.NotFound, "pick %s not found", id)
		}
		return nil, fmt.Errorf("getting pick: %w", err)
	}
	return dbPickToModel(pick), nil
}

func (r *SQLRepository) GetPicksByDraft(ctx context.Context, draftID uuid.UUID) ([]models.DraftPick, error) {
	rows, err := r.queries.GetPicksByDraft(ctx, draftID)
	if err != nil {
		return nil, fmt.Errorf("getting picks by draft: %w", err)
	}
	out := make([]models.DraftPick, len(rows))
	for i, row := range rows {
		out[i] = *dbPickToModel(row)
	}
	return out, nil
}

func (r *SQLRepository) AvailableFromCurrent(ctx context.Context, draftID uuid.UUID, currentOverallPick int) ([]models.DraftPick, error) {
	rows, err := r.queries.GetPicksByDraft(ctx, draftID)
	if err != nil {
		return nil, fmt.Errorf("getting picks by draft: %w", err)
	}
	out := make([]models.DraftPick, 0, len(rows))
	for _, row := range rows {
		if row.PlayerID.Valid {
			continue
		}
		if int(row.OverallPick) < currentOverallPick {
			continue
		}
		out = append(out, *dbPickToModel(row))
	}
	return out, nil
}

func (r *SQLRepository) AssignPlayer(ctx context.Context, pickID, playerID uuid.UUID) error {
	rowsAffected, err := r.queries.AssignPlayer(ctx, pickID, playerID)
	if err != nil {
		if isUniqueViolation(err) {
			return apperr.Wrap(apperr.Conflict, err, "player %s already drafted in this draft", playerID)
		}
		return fmt.Errorf("assigning player: %w", err)
	}
	if rowsAffected == 0 {
		return apperr.New(apperr.Conflict, "pick %s already made", pickID)
	}
	return nil
}

func (r *SQLRepository) TransferOwnership(ctx context.Context, updates []OwnershipUpdate) error {
	tx, err := r.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	qtx := r.queries.WithTx(tx)
	for _, u := range updates {
		pick, err := qtx.GetPick(ctx, u.PickID)
		if err != nil {
			return fmt.Errorf("getting pick %s: %w", u.PickID, err)
		}
		rowsAffected, err := qtx.TransferOwnership(ctx, u.PickID, u.NewTeamID, pick.CurrentTeamID)
		if err != nil {
			return fmt.Errorf("transferring pick %s: %w", u.PickID, err)
		}
		if rowsAffected == 0 {
			return apperr.New(apperr.Conflict, "pick %s already made or owner changed concurrently", u.PickID)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing ownership transfer: %w", err)
	}
	return nil
}

func (r *SQLRepository) ClaimNextPickSlot(ctx context.Context, draftID uuid.UUID) (*Slot, error) {
	tx, err := r.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	qtx := r.queries.WithTx(tx)
	pick, err := qtx.ClaimNextPickSlot(ctx, draftID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperr.New(apperr.NoEligible, "no open pick slot for draft %s", draftID)
		}
		return nil, fmt.Errorf("claiming next pick slot: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing slot claim: %w", err)
	}

	return &Slot{
		PickID:        pick.ID,
		DraftID:       pick.DraftID,
		OverallPick:   int(pick.OverallPick),
		CurrentTeamID: pick.CurrentTeamID,
	}, nil
}

func (r *SQLRepository) CountRemainingPicks(ctx context.Context, draftID uuid.UUID) (int, error) {
	count, err := r.queries.CountRemainingPicks(ctx, draftID)
	if err != nil {
		return 0, fmt.Errorf("counting remaining picks: %w", err)
	}
	return int(count), nil
}

func (r *SQLRepository) DeletePicksByDraft(ctx context.Context, draftID uuid.UUID) (int, error) {
	count, err := r.queries.DeletePicksByDraft(ctx, draftID)
	if err != nil {
		return 0, fmt.Errorf("deleting picks by draft: %w", err)
	}
	return int(count), nil
}

func dbPickToModel(p pbdb.Pick) *models.DraftPick {
	pick := &models.DraftPick{
		ID:             p.ID,
		DraftID:        p.DraftID,
		Round:          int(p.Round),
		PickInRound:    int(p.PickInRound),
		OverallPick:    int(p.OverallPick),
		OriginalTeamID: p.OriginalTeamID,
		CurrentTeamID:  p.CurrentTeamID,
		IsCompensatory: p.IsCompensatory,
	}
	if p.Note.Valid {
		note := p.Note.String
		pick.Note = &note
	}
	if p.PlayerID.Valid {
		playerID := p.PlayerID.UUID
		pick.PlayerID = &playerID
	}
	if p.PickedAt.Valid {
		pickedAt := p.PickedAt.Time
		pick.PickedAt = &pickedAt
	}
	return pick
}

// isUniqueViolation reports whether err came from a unique-index conflict,
// matching the partial uniqueness index enforcing one player per draft
// (spec.md §4.1 Assign edge case).
func isUniqueViolation(err error) bool {
	return strings.Contains(err.Error(), "unique") || strings.Contains(err.Error(), "duplicate key")
}
