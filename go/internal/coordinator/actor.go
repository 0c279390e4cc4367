// Package coordinator implements the Session Coordinator (SC): the single
// per-session serialization point that owns an exclusive in-memory lock
// for the duration of any state-mutating command and drives the pick
// clock (spec.md §4.6, SPEC_FULL §13.1's long-lived-actor redesign).
package coordinator

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/draftsim/engine/go/internal/apperr"
	"github.com/draftsim/engine/go/internal/draft/events"
	"github.com/draftsim/engine/go/internal/models"
)

// clockTickInterval governs how often the actor checks the pick clock and
// emits ClockUpdate — well above spec.md §4.6's >=1Hz floor.
const clockTickInterval = 500 * time.Millisecond

// SessionActor is one goroutine per active session, reading a typed
// command channel. Every command is handled to completion before the next
// is read, which is the actor's serialization guarantee: no two commands
// for the same session ever execute concurrently.
type SessionActor struct {
	sessionID uuid.UUID
	deps      Deps

	inbox chan command
	stop  chan struct{}
	once  sync.Once

	deadline *time.Time // current pick's wall-clock expiry; nil while not running

	// pausedRemainingSeconds is the clock time left on the current pick at
	// the moment of the last cmdPause, consumed by the next cmdResume to
	// re-arm the deadline from where it left off (spec.md §4.6 "resume
	// establishes a new one using the prior remaining time").
	pausedRemainingSeconds int
}

func newSessionActor(sessionID uuid.UUID, deps Deps) *SessionActor {
	a := &SessionActor{
		sessionID: sessionID,
		deps:      deps,
		inbox:     make(chan command),
		stop:      make(chan struct{}),
	}
	go a.run()
	return a
}

// Stop ends the actor's goroutine. Safe to call more than once.
func (a *SessionActor) Stop() {
	a.once.Do(func() { close(a.stop) })
}

func (a *SessionActor) run() {
	ticker := a.deps.Clock.NewTicker(clockTickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-a.stop:
			return
		case cmd := <-a.inbox:
			cmd.reply <- a.handle(cmd)
		case <-ticker.Chan():
			a.onTick(context.Background())
		}
	}
}

func (a *SessionActor) dispatch(ctx context.Context, kind commandKind, args any) Result {
	reply := make(chan Result, 1)
	cmd := command{ctx: ctx, kind: kind, args: args, reply: reply}

	select {
	case a.inbox <- cmd:
	case <-ctx.Done():
		return Result{Err: ctx.Err()}
	case <-a.stop:
		return Result{Err: apperr.New(apperr.Unavailable, "session %s coordinator is shutting down", a.sessionID)}
	}

	select {
	case res := <-reply:
		return res
	case <-ctx.Done():
		return Result{Err: ctx.Err()}
	}
}

func (a *SessionActor) handle(cmd command) Result {
	ctx := cmd.ctx
	switch cmd.kind {
	case cmdCreate:
		args := cmd.args.(CreateArgs)
		sess, err := a.deps.Sessions.CreateSession(ctx, args.Spec)
		if err != nil {
			return Result{Err: err}
		}
		return Result{Session: sess}

	case cmdStart:
		sess, err := a.deps.Sessions.Start(ctx, a.sessionID)
		if err != nil {
			return Result{Err: err}
		}
		a.armClock(sess)
		return a.kickAutoPick(ctx, sess)

	case cmdPause:
		remaining := a.remainingSeconds()
		sess, err := a.deps.Sessions.Pause(ctx, a.sessionID, remaining)
		if err != nil {
			return Result{Err: err}
		}
		a.deadline = nil
		a.pausedRemainingSeconds = remaining
		return Result{Session: sess}

	case cmdResume:
		sess, err := a.deps.Sessions.Resume(ctx, a.sessionID)
		if err != nil {
			return Result{Err: err}
		}
		a.armClockFor(sess, a.pausedRemainingSeconds)
		return Result{Session: sess}

	case cmdMakePick:
		return a.makePick(ctx, cmd.args.(MakePickArgs))

	case cmdAdvancePick:
		return a.advancePick(ctx)

	case cmdAutoPickRun:
		sess, err := a.deps.Sessions.GetSession(ctx, a.sessionID)
		if err != nil {
			return Result{Err: err}
		}
		return a.kickAutoPick(ctx, sess)

	case cmdProposeTrade:
		args := cmd.args.(ProposeTradeArgs)
		t, err := a.deps.Trades.Propose(ctx, args.Req)
		return Result{Trade: t, Err: err}

	case cmdAcceptTrade:
		args := cmd.args.(AcceptTradeArgs)
		t, err := a.deps.Trades.Accept(ctx, args.TradeID, args.AcceptingTeam)
		return Result{Trade: t, Err: err}

	case cmdRejectTrade:
		args := cmd.args.(RejectTradeArgs)
		t, err := a.deps.Trades.Reject(ctx, args.TradeID, args.RejectingTeam)
		return Result{Trade: t, Err: err}

	default:
		return Result{Err: apperr.New(apperr.InvalidArgument, "unknown coordinator command")}
	}
}

// makePick implements the make_pick() command: assigns via the Pick
// Board, advances the pointer via the Session State Store, emits
// PickMade, then kicks the Auto-Pick Engine in case the next pick belongs
// to an AI-controlled team (spec.md §4.6).
func (a *SessionActor) makePick(ctx context.Context, args MakePickArgs) Result {
	sess, err := a.deps.Sessions.GetSession(ctx, a.sessionID)
	if err != nil {
		return Result{Err: err}
	}
	if sess.Status != models.SessionStatusInProgress {
		return Result{Err: apperr.New(apperr.InvalidTransition, "session %s is not in progress", a.sessionID)}
	}

	pick, err := a.deps.Picks.GetPick(ctx, args.PickID)
	if err != nil {
		return Result{Err: err}
	}
	if pick.OverallPick != sess.CurrentPickNumber {
		return Result{Err: apperr.New(apperr.InvalidArgument, "pick %s is not the current pick", args.PickID)}
	}
	if !sess.IsControlled(pick.CurrentTeamID) {
		return Result{Err: apperr.New(apperr.NotOwned, "team %s is not human-controlled in this session", pick.CurrentTeamID)}
	}

	if err := a.deps.Picks.Assign(ctx, args.PickID, args.PlayerID); err != nil {
		return Result{Err: err}
	}

	sess, err = a.deps.Sessions.AdvanceCurrentPick(ctx, a.sessionID, pick.OverallPick+1)
	if err != nil {
		return Result{Err: err}
	}

	if err := a.deps.Sessions.Append(ctx, a.sessionID, events.PickMade, events.PickMadePayload{
		SessionID:   a.sessionID.String(),
		PickID:      pick.ID.String(),
		TeamID:      pick.CurrentTeamID.String(),
		PlayerID:    args.PlayerID.String(),
		Round:       pick.Round,
		PickInRound: pick.PickInRound,
		OverallPick: pick.OverallPick,
		AutoPick:    false,
		MadeAt:      time.Now(),
	}); err != nil {
		return Result{Err: err}
	}

	return a.kickAutoPick(ctx, sess)
}

// advancePick implements advance_pick(): an administrative override that
// forces the pointer to the next unmade pick, skipping whatever pick is
// currently stuck, then kicks the Auto-Pick Engine the same as any other
// pointer-moving command.
func (a *SessionActor) advancePick(ctx context.Context) Result {
	sess, err := a.deps.Sessions.GetSession(ctx, a.sessionID)
	if err != nil {
		return Result{Err: err}
	}
	if sess.Status != models.SessionStatusInProgress {
		return Result{Err: apperr.New(apperr.InvalidTransition, "session %s is not in progress", a.sessionID)}
	}

	unmade, err := a.deps.Picks.AvailableFromCurrent(ctx, sess.DraftID, sess.CurrentPickNumber+1)
	if err != nil {
		return Result{Err: err}
	}
	if len(unmade) == 0 {
		all, err := a.deps.Picks.Snapshot(ctx, sess.DraftID)
		if err != nil {
			return Result{Err: err}
		}
		completed, err := a.deps.Sessions.Complete(ctx, sess.ID, len(all))
		if err != nil {
			return Result{Err: err}
		}
		a.deadline = nil
		return Result{Session: completed}
	}

	sess, err = a.deps.Sessions.AdvanceCurrentPick(ctx, a.sessionID, unmade[0].OverallPick)
	if err != nil {
		return Result{Err: err}
	}

	return a.kickAutoPick(ctx, sess)
}

// kickAutoPick runs the Auto-Pick Engine's loop, which itself yields as
// soon as the current owner is human-controlled and detects + completes
// the draft when no eligible pick remains (spec.md §4.4 steps 2-4). The
// coordinator's only remaining job afterward is to (re)arm the clock for
// whatever session state comes back.
func (a *SessionActor) kickAutoPick(ctx context.Context, sess *models.Session) Result {
	updated, err := a.deps.AutoPick.RunAutoPick(ctx, sess.ID)
	if err != nil {
		return Result{Session: sess, Err: err}
	}

	if updated.Status != models.SessionStatusInProgress {
		a.deadline = nil
	} else {
		a.armClock(updated)
	}
	return Result{Session: updated}
}

// armClock arms the deadline for a fresh pick: the full configured
// per-pick duration.
func (a *SessionActor) armClock(sess *models.Session) {
	a.armClockFor(sess, sess.TimePerPickSeconds)
}

// armClockFor arms the deadline seconds from now, used directly by resume
// to re-establish the clock from the remaining time at the last pause
// rather than the full per-pick duration.
func (a *SessionActor) armClockFor(sess *models.Session, seconds int) {
	deadline := a.deps.Clock.Now().Add(time.Duration(seconds) * time.Second)
	a.deadline = &deadline
}

func (a *SessionActor) remainingSeconds() int {
	if a.deadline == nil {
		return 0
	}
	remaining := a.deadline.Sub(a.deps.Clock.Now())
	if remaining < 0 {
		remaining = 0
	}
	return int(remaining.Seconds())
}

// onTick runs on every clockTickInterval: it emits a ClockUpdate for the
// current pick and, on expiry with auto_pick_enabled, forces a pick for
// the stalled (possibly human-controlled) current team (spec.md §4.6;
// SPEC_FULL §14 decision 2 governs the auto_pick_enabled=false case).
func (a *SessionActor) onTick(ctx context.Context) {
	sess, err := a.deps.Sessions.GetSession(ctx, a.sessionID)
	if err != nil || sess.Status != models.SessionStatusInProgress || a.deadline == nil {
		return
	}

	remaining := a.deadline.Sub(a.deps.Clock.Now())
	remainingSeconds := int(remaining.Seconds())
	if remainingSeconds < 0 {
		remainingSeconds = 0
	}
	a.publishClockUpdate(ctx, sess, remainingSeconds)

	if remaining > 0 || !sess.AutoPickEnabled {
		return
	}

	a.forcePickOnExpiry(ctx, sess)
}

func (a *SessionActor) publishClockUpdate(ctx context.Context, sess *models.Session, remainingSeconds int) {
	pickID := ""
	if unmade, err := a.deps.Picks.AvailableFromCurrent(ctx, sess.DraftID, sess.CurrentPickNumber); err == nil && len(unmade) > 0 {
		pickID = unmade[0].ID.String()
	}

	payload, err := json.Marshal(events.ClockUpdatePayload{
		SessionID:        sess.ID.String(),
		PickID:           pickID,
		RemainingSeconds: remainingSeconds,
	})
	if err != nil {
		log.Error().Err(err).Str("session_id", sess.ID.String()).Msg("marshaling ClockUpdate payload")
		return
	}
	a.deps.Bus.Publish(sess.ID, events.ClockUpdate, payload)
}

// forcePickOnExpiry auto-picks for whichever team owns the current pick,
// human-controlled or not, because the clock ran out and the session
// allows it. Unlike kickAutoPick it does not yield to a human owner.
func (a *SessionActor) forcePickOnExpiry(ctx context.Context, sess *models.Session) {
	draft, err := a.deps.Drafts.GetDraft(ctx, sess.DraftID)
	if err != nil {
		log.Error().Err(err).Str("session_id", sess.ID.String()).Msg("clock expiry: looking up draft")
		return
	}
	unmade, err := a.deps.Picks.AvailableFromCurrent(ctx, sess.DraftID, sess.CurrentPickNumber)
	if err != nil || len(unmade) == 0 {
		return
	}
	pick := unmade[0]

	playerID, err := a.deps.AutoPick.Select(ctx, draft, pick.CurrentTeamID)
	if err != nil {
		log.Error().Err(err).Str("session_id", sess.ID.String()).Msg("clock expiry: selecting a player")
		return
	}
	if err := a.deps.Picks.Assign(ctx, pick.ID, playerID); err != nil {
		log.Error().Err(err).Str("session_id", sess.ID.String()).Msg("clock expiry: assigning pick")
		return
	}

	updated, err := a.deps.Sessions.AdvanceCurrentPick(ctx, sess.ID, pick.OverallPick+1)
	if err != nil {
		log.Error().Err(err).Str("session_id", sess.ID.String()).Msg("clock expiry: advancing current pick")
		return
	}

	if err := a.deps.Sessions.Append(ctx, sess.ID, events.PickMade, events.PickMadePayload{
		SessionID:   sess.ID.String(),
		PickID:      pick.ID.String(),
		TeamID:      pick.CurrentTeamID.String(),
		PlayerID:    playerID.String(),
		Round:       pick.Round,
		PickInRound: pick.PickInRound,
		OverallPick: pick.OverallPick,
		AutoPick:    true,
		MadeAt:      time.Now(),
	}); err != nil {
		log.Error().Err(err).Str("session_id", sess.ID.String()).Msg("clock expiry: appending PickMade")
		return
	}

	a.kickAutoPick(ctx, updated)
}
