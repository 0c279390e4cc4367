package models

import (
	"github.com/google/uuid"
	"time"
)

// SessionStatus is the Session State Store's lifecycle (spec §3, §4.2).
type SessionStatus string

const (
	SessionStatusNotStarted SessionStatus = "NOT_STARTED"
	SessionStatusInProgress SessionStatus = "IN_PROGRESS"
	SessionStatusPaused     SessionStatus = "PAUSED"
	SessionStatusCompleted  SessionStatus = "COMPLETED"
)

// ChartType names one of the six trade value charts the Trade Engine and
// Auto-Pick Engine may be configured to use (spec §9 "Chart types as data").
type ChartType string

const (
	ChartJimmyJohnson      ChartType = "JIMMY_JOHNSON"
	ChartRichHill          ChartType = "RICH_HILL"
	ChartHarvardDraftChart ChartType = "HARVARD"
	ChartChaseStuart       ChartType = "CHASE_STUART"
	ChartFitzgerald        ChartType = "FITZGERALD"
	ChartPFR               ChartType = "PFR_BLEND"
)

// Session is the single stateful record for a draft-in-progress. At most
// one session per draft may be in {NotStarted, InProgress, Paused}.
type Session struct {
	ID                 uuid.UUID     `json:"id"`
	DraftID            uuid.UUID     `json:"draft_id"`
	Status             SessionStatus `json:"status"`
	CurrentPickNumber  int           `json:"current_pick_number"` // 1-indexed overall ordinal of next unmade pick
	TimePerPickSeconds int           `json:"time_per_pick_seconds"`
	AutoPickEnabled    bool          `json:"auto_pick_enabled"`
	ChartType          ChartType     `json:"chart_type"`
	ControlledTeamIDs  []uuid.UUID   `json:"controlled_team_ids"`
	StartedAt          *time.Time    `json:"started_at,omitempty"`
	CompletedAt        *time.Time    `json:"completed_at,omitempty"`
	CreatedAt          time.Time     `json:"created_at"`
	UpdatedAt          time.Time     `json:"updated_at"`
}

// IsControlled reports whether the given team requires human action rather
// than auto-pick.
func (s Session) IsControlled(teamID uuid.UUID) bool {
	for _, id := range s.ControlledTeamIDs {
		if id == teamID {
			return true
		}
	}
	return false
}
