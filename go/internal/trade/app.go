// Package trade implements the Trade Engine (TE): value-fair proposal and
// atomic execution of pick swaps (spec.md §4.3).
package trade

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/draftsim/engine/go/internal/apperr"
	"github.com/draftsim/engine/go/internal/chart"
	"github.com/draftsim/engine/go/internal/draft/events"
	"github.com/draftsim/engine/go/internal/models"
)

// PickLookup is the subset of the Pick Board the Trade Engine needs for
// proposal-time validation.
type PickLookup interface {
	GetPick(ctx context.Context, id uuid.UUID) (*models.DraftPick, error)
}

// SessionLookup is the subset of the Session State Store the Trade Engine
// needs: reading the configured chart and appending the events it emits.
type SessionLookup interface {
	GetSession(ctx context.Context, id uuid.UUID) (*models.Session, error)
	Append(ctx context.Context, sessionID uuid.UUID, eventType events.Type, payload any) error
}

// Repository defines what the Trade Engine needs from durable storage. Accept
// performs its revalidation, ownership transfer, and status flip inside one
// serializable transaction with row locks (spec.md §9 design note, §4.3
// concurrency policy).
type Repository interface {
	Create(ctx context.Context, t models.Trade, details []models.TradeDetail) error
	Get(ctx context.Context, id uuid.UUID) (*models.Trade, []models.TradeDetail, error)
	Accept(ctx context.Context, tradeID, acceptingTeam uuid.UUID) (*models.Trade, []models.TradeDetail, error)
	Reject(ctx context.Context, tradeID, rejectingTeam uuid.UUID) (*models.Trade, error)
	ListPendingForTeam(ctx context.Context, sessionID, teamID uuid.UUID) ([]TradeWithDetails, error)
	ListBySession(ctx context.Context, sessionID uuid.UUID) ([]TradeWithDetails, error)
}

// TradeWithDetails pairs a trade with its per-pick detail rows.
type TradeWithDetails struct {
	Trade   models.Trade
	Details []models.TradeDetail
}

// App implements the Trade Engine's operations.
type App struct {
	repo     Repository
	picks    PickLookup
	sessions SessionLookup
}

func NewApp(repo Repository, picks PickLookup, sessions SessionLookup) *App {
	return &App{repo: repo, picks: picks, sessions: sessions}
}

// Propose validates ownership of every referenced pick, computes each side's
// aggregate chart value, and writes the trade with status=Proposed.
func (a *App) Propose(ctx context.Context, req ProposeRequest) (*models.Trade, error) {
	if req.FromTeamID == req.ToTeamID {
		return nil, apperr.New(apperr.InvalidArgument, "from_team and to_team must differ")
	}
	if len(req.FromPickIDs) == 0 || len(req.ToPickIDs) == 0 {
		return nil, apperr.New(apperr.InvalidArgument, "both pick lists must be non-empty")
	}

	sess, err := a.sessions.GetSession(ctx, req.SessionID)
	if err != nil {
		return nil, apperr.Wrap(apperr.NotFound, err, "session %s not found", req.SessionID)
	}
	valueChart, ok := chart.Lookup(sess.ChartType)
	if !ok {
		return nil, apperr.New(apperr.Unavailable, "no chart registered for %s", sess.ChartType)
	}

	fromDetails, fromValue, err := a.validateSide(ctx, req.FromPickIDs, req.FromTeamID, models.TradeSideFrom, valueChart)
	if err != nil {
		return nil, err
	}
	toDetails, toValue, err := a.validateSide(ctx, req.ToPickIDs, req.ToTeamID, models.TradeSideTo, valueChart)
	if err != nil {
		return nil, err
	}

	t := models.Trade{
		ID:            uuid.New(),
		SessionID:     req.SessionID,
		FromTeamID:    req.FromTeamID,
		ToTeamID:      req.ToTeamID,
		Status:        models.TradeStatusProposed,
		FromTeamValue: fromValue,
		ToTeamValue:   toValue,
		ValueDiff:     fromValue - toValue,
		ProposedAt:    time.Now(),
	}
	details := append(fromDetails, toDetails...)
	for i := range details {
		details[i].TradeID = t.ID
	}

	if err := a.repo.Create(ctx, t, details); err != nil {
		return nil, fmt.Errorf("creating trade: %w", err)
	}

	if err := a.sessions.Append(ctx, req.SessionID, events.TradeProposed, events.TradeProposedPayload{
		SessionID:  req.SessionID.String(),
		TradeID:    t.ID.String(),
		FromTeamID: req.FromTeamID.String(),
		ToTeamID:   req.ToTeamID.String(),
		ProposedAt: t.ProposedAt,
	}); err != nil {
		return nil, err
	}

	return &t, nil
}

func (a *App) validateSide(ctx context.Context, pickIDs []uuid.UUID, teamID uuid.UUID, side models.TradeSide, valueChart chart.Chart) ([]models.TradeDetail, float64, error) {
	details := make([]models.TradeDetail, 0, len(pickIDs))
	var total float64
	for _, pickID := range pickIDs {
		pick, err := a.picks.GetPick(ctx, pickID)
		if err != nil {
			return nil, 0, apperr.Wrap(apperr.NotFound, err, "pick %s not found", pickID)
		}
		if pick.Made() {
			return nil, 0, apperr.New(apperr.Conflict, "pick %s already made", pickID)
		}
		if pick.CurrentTeamID != teamID {
			return nil, 0, apperr.New(apperr.NotOwned, "pick %s is not owned by team %s", pickID, teamID)
		}

		value := valueChart.ValueFor(pick.OverallPick)
		total += value
		details = append(details, models.TradeDetail{
			ID:     uuid.New(),
			PickID: pickID,
			Side:   side,
			Value:  value,
		})
	}
	return details, total, nil
}

// Accept revalidates every detail pick is still unmade and still owned by
// the claimed side, transfers ownership, flips status to Accepted, and
// emits TradeExecuted. A revalidation failure returns Conflict without
// auto-rejecting the trade — the caller may re-propose.
func (a *App) Accept(ctx context.Context, tradeID, acceptingTeam uuid.UUID) (*models.Trade, error) {
	t, _, err := a.repo.Accept(ctx, tradeID, acceptingTeam)
	if err != nil {
		return nil, err
	}

	if err := a.sessions.Append(ctx, t.SessionID, events.TradeExecuted, events.TradeExecutedPayload{
		SessionID:   t.SessionID.String(),
		TradeID:     t.ID.String(),
		RespondedAt: *t.RespondedAt,
	}); err != nil {
		return nil, err
	}

	return t, nil
}

// Reject flips a Proposed trade to Rejected and emits TradeRejected.
func (a *App) Reject(ctx context.Context, tradeID, rejectingTeam uuid.UUID) (*models.Trade, error) {
	t, err := a.repo.Reject(ctx, tradeID, rejectingTeam)
	if err != nil {
		return nil, err
	}

	if err := a.sessions.Append(ctx, t.SessionID, events.TradeRejected, events.TradeRejectedPayload{
		SessionID:   t.SessionID.String(),
		TradeID:     t.ID.String(),
		RespondedAt: *t.RespondedAt,
	}); err != nil {
		return nil, err
	}

	return t, nil
}

// Get retrieves a trade by ID, used by the gateway to route
// /trades/{id}/accept|reject to the owning session.
func (a *App) Get(ctx context.Context, tradeID uuid.UUID) (*models.Trade, error) {
	t, _, err := a.repo.Get(ctx, tradeID)
	if err != nil {
		return nil, apperr.Wrap(apperr.NotFound, err, "trade %s not found", tradeID)
	}
	return t, nil
}

// FindPendingForTeam returns all Proposed trades where to_team = team, with
// their details, fetched in a single batch (not N+1).
func (a *App) FindPendingForTeam(ctx context.Context, sessionID, teamID uuid.UUID) ([]TradeWithDetails, error) {
	pending, err := a.repo.ListPendingForTeam(ctx, sessionID, teamID)
	if err != nil {
		return nil, fmt.Errorf("listing pending trades: %w", err)
	}
	return pending, nil
}

// ListBySession returns every trade proposed in a session regardless of
// status, spec.md §6.1 "GET /sessions/{id}/trades".
func (a *App) ListBySession(ctx context.Context, sessionID uuid.UUID) ([]TradeWithDetails, error) {
	trades, err := a.repo.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("listing trades for session: %w", err)
	}
	return trades, nil
}
