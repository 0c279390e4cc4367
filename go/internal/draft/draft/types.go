package draft

import (
	"github.com/google/uuid"

	"github.com/draftsim/engine/go/internal/models"
)

// CreateDraftRequest is the input to CreateDraft, spec.md §3 Draft. Lifecycle
// status is not part of this request — the Draft's status mirrors whatever
// Session is paired with it (spec §3), so it is read through the session
// rather than stored redundantly here.
type CreateDraftRequest struct {
	LeagueID      uuid.UUID
	Name          string
	Year          int
	Mode          models.DraftMode
	Rounds        int
	PicksPerRound *int // required for Simple mode, nil for Realistic
	TotalPicks    int  // computable up front for Simple mode; 0 until Initialize for Realistic
}
