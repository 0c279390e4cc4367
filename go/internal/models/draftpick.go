package models

import (
	"github.com/google/uuid"
	"time"
)

// DraftPick is a single slot in a draft's Pick Board (spec §3 Pick).
// Uniqueness also holds on (draft_id, overall_pick) and
// (draft_id, round, pick_in_round); player_id transitions nil -> set
// exactly once and is never reset.
type DraftPick struct {
	ID               uuid.UUID  `json:"id"`
	DraftID          uuid.UUID  `json:"draft_id"`
	Round            int        `json:"round"`
	PickInRound      int        `json:"pick_in_round"`
	OverallPick      int        `json:"overall_pick"`
	OriginalTeamID   uuid.UUID  `json:"original_team_id"`
	CurrentTeamID    uuid.UUID  `json:"current_team_id"`
	IsCompensatory   bool       `json:"is_compensatory"`
	Note             *string    `json:"note,omitempty"`
	PlayerID         *uuid.UUID `json:"player_id,omitempty"` // nil until picked
	PickedAt         *time.Time `json:"picked_at,omitempty"`
}

// Traded reports whether the pick has changed hands since the board was
// initialized.
func (p DraftPick) Traded() bool {
	return p.CurrentTeamID != p.OriginalTeamID
}

// Made reports whether a player has been assigned to this pick.
func (p DraftPick) Made() bool {
	return p.PlayerID != nil
}
