package events

import "time"

// Type is the enumerated event_type carried by every Event row (spec §3).
type Type string

const (
	SessionCreated   Type = "SessionCreated"
	SessionStarted   Type = "SessionStarted"
	SessionPaused    Type = "SessionPaused"
	SessionResumed   Type = "SessionResumed"
	SessionCompleted Type = "SessionCompleted"
	PickMade         Type = "PickMade"
	ClockUpdate      Type = "ClockUpdate"
	TradeProposed    Type = "TradeProposed"
	TradeExecuted    Type = "TradeExecuted"
	TradeRejected    Type = "TradeRejected"
)

// SessionCreatedPayload is the payload for a SessionCreated event.
type SessionCreatedPayload struct {
	SessionID string    `json:"session_id"`
	DraftID   string    `json:"draft_id"`
	ChartType string    `json:"chart_type"`
	CreatedAt time.Time `json:"created_at"`
}

// SessionStartedPayload is the payload for a SessionStarted event.
type SessionStartedPayload struct {
	SessionID string    `json:"session_id"`
	StartedAt time.Time `json:"started_at"`
}

// SessionPausedPayload is the payload for a SessionPaused event.
type SessionPausedPayload struct {
	SessionID string    `json:"session_id"`
	PausedAt  time.Time `json:"paused_at"`
	// RemainingSeconds is the clock time left on the current pick at the
	// moment of pause; Resume re-establishes a deadline from this value.
	RemainingSeconds int `json:"remaining_seconds"`
}

// SessionResumedPayload is the payload for a SessionResumed event.
type SessionResumedPayload struct {
	SessionID string    `json:"session_id"`
	ResumedAt time.Time `json:"resumed_at"`
}

// SessionCompletedPayload is the payload for a SessionCompleted event.
type SessionCompletedPayload struct {
	SessionID   string    `json:"session_id"`
	CompletedAt time.Time `json:"completed_at"`
	TotalPicks  int       `json:"total_picks"`
}

// PickMadePayload is the payload for a PickMade event.
type PickMadePayload struct {
	SessionID   string    `json:"session_id"`
	PickID      string    `json:"pick_id"`
	TeamID      string    `json:"team_id"`
	PlayerID    string    `json:"player_id"`
	Round       int       `json:"round"`
	PickInRound int       `json:"pick_in_round"`
	OverallPick int       `json:"overall_pick"`
	AutoPick    bool      `json:"auto_pick"`
	MadeAt      time.Time `json:"made_at"`
}

// ClockUpdatePayload is the payload for a ClockUpdate event. Coalescable and
// droppable under slow-consumer back pressure (spec §4.5).
type ClockUpdatePayload struct {
	SessionID        string `json:"session_id"`
	PickID           string `json:"pick_id"`
	RemainingSeconds int    `json:"remaining_seconds"`
}

// TradeProposedPayload is the payload for a TradeProposed event.
type TradeProposedPayload struct {
	SessionID  string    `json:"session_id"`
	TradeID    string    `json:"trade_id"`
	FromTeamID string    `json:"from_team_id"`
	ToTeamID   string    `json:"to_team_id"`
	ProposedAt time.Time `json:"proposed_at"`
}

// TradeExecutedPayload is the payload for a TradeExecuted event.
type TradeExecutedPayload struct {
	SessionID   string    `json:"session_id"`
	TradeID     string    `json:"trade_id"`
	RespondedAt time.Time `json:"responded_at"`
}

// TradeRejectedPayload is the payload for a TradeRejected event.
type TradeRejectedPayload struct {
	SessionID   string    `json:"session_id"`
	TradeID     string    `json:"trade_id"`
	RespondedAt time.Time `json:"responded_at"`
}

// MustDeliver reports whether subscribers must never silently drop this
// event type (spec §4.5): everything except the high-frequency clock tick.
func (t Type) MustDeliver() bool {
	return t != ClockUpdate
}
