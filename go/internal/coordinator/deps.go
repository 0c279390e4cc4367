package coordinator

import (
	"context"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/draftsim/engine/go/internal/draft/events"
	"github.com/draftsim/engine/go/internal/models"
	"github.com/draftsim/engine/go/internal/session"
	"github.com/draftsim/engine/go/internal/trade"
)

// SessionStore is the subset of session.App a SessionActor drives, plus the
// single event-append entrypoint (session.App.Append) the actor uses to
// record PickMade for explicit human picks.
type SessionStore interface {
	CreateSession(ctx context.Context, req session.CreateSessionRequest) (*models.Session, error)
	GetSession(ctx context.Context, id uuid.UUID) (*models.Session, error)
	Start(ctx context.Context, id uuid.UUID) (*models.Session, error)
	Pause(ctx context.Context, id uuid.UUID, remainingSeconds int) (*models.Session, error)
	Resume(ctx context.Context, id uuid.UUID) (*models.Session, error)
	Complete(ctx context.Context, id uuid.UUID, totalPicks int) (*models.Session, error)
	AdvanceCurrentPick(ctx context.Context, id uuid.UUID, to int) (*models.Session, error)
	Append(ctx context.Context, sessionID uuid.UUID, eventType events.Type, payload any) error
}

// PickBoard is the subset of pickboard.App the coordinator reads/writes
// directly (make_pick's explicit assignment and the clock-expiry forced
// pick; auto-pick's own PickBoard access happens inside AutoPickEngine).
type PickBoard interface {
	GetPick(ctx context.Context, id uuid.UUID) (*models.DraftPick, error)
	Assign(ctx context.Context, pickID, playerID uuid.UUID) error
	Snapshot(ctx context.Context, draftID uuid.UUID) ([]models.DraftPick, error)
	AvailableFromCurrent(ctx context.Context, draftID uuid.UUID, currentOverallPick int) ([]models.DraftPick, error)
	CountRemainingPicks(ctx context.Context, draftID uuid.UUID) (int, error)
}

// AutoPickEngine is the subset of autopick.App the coordinator drives:
// RunAutoPick for the normal "advance, then let AI teams play through"
// flow, Select for the clock-expiry forced pick on a stalled human turn.
type AutoPickEngine interface {
	RunAutoPick(ctx context.Context, sessionID uuid.UUID) (*models.Session, error)
	Select(ctx context.Context, draft *models.Draft, teamID uuid.UUID) (uuid.UUID, error)
}

// TradeEngine is the subset of trade.App the propose/accept/reject_trade
// commands delegate to (spec.md §4.3, §4.6).
type TradeEngine interface {
	Propose(ctx context.Context, req trade.ProposeRequest) (*models.Trade, error)
	Accept(ctx context.Context, tradeID, acceptingTeam uuid.UUID) (*models.Trade, error)
	Reject(ctx context.Context, tradeID, rejectingTeam uuid.UUID) (*models.Trade, error)
}

// DraftLookup resolves a session's draft for the clock-expiry forced pick
// (autopick.Select needs the draft year to build its candidate pool).
type DraftLookup interface {
	GetDraft(ctx context.Context, id uuid.UUID) (*models.Draft, error)
}

// Bus is the narrow slice of broadcast.Bus the coordinator publishes
// ClockUpdate ticks through directly (every must-deliver event instead
// flows through SessionStore.Append -> broadcast.Relay).
type Bus interface {
	Publish(sessionID uuid.UUID, eventType events.Type, payload []byte)
}

// Deps bundles everything one SessionActor needs to drive a session.
type Deps struct {
	Sessions SessionStore
	Picks    PickBoard
	Trades   TradeEngine
	AutoPick AutoPickEngine
	Drafts   DraftLookup
	Bus      Bus
	Clock    clockwork.Clock
}
