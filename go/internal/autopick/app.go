package autopick

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/draftsim/engine/go/internal/apperr"
	"github.com/draftsim/engine/go/internal/catalog"
	"github.com/draftsim/engine/go/internal/draft/events"
	"github.com/draftsim/engine/go/internal/models"
	"github.com/draftsim/engine/go/internal/pickboard"
)

// PickBoard is the subset of the Pick Board the Auto-Pick Engine drives.
type PickBoard interface {
	ClaimNextPickSlot(ctx context.Context, draftID uuid.UUID) (*pickboard.Slot, error)
	GetPick(ctx context.Context, id uuid.UUID) (*models.DraftPick, error)
	Assign(ctx context.Context, pickID, playerID uuid.UUID) error
	Snapshot(ctx context.Context, draftID uuid.UUID) ([]models.DraftPick, error)
	CountRemainingPicks(ctx context.Context, draftID uuid.UUID) (int, error)
}

// SessionStore is the subset of the Session State Store RunAutoPick needs.
type SessionStore interface {
	GetSession(ctx context.Context, id uuid.UUID) (*models.Session, error)
	AdvanceCurrentPick(ctx context.Context, id uuid.UUID, to int) (*models.Session, error)
	Complete(ctx context.Context, id uuid.UUID, totalPicks int) (*models.Session, error)
	Append(ctx context.Context, sessionID uuid.UUID, eventType events.Type, payload any) error
}

// DraftLookup is the reference-metadata read RunAutoPick needs to resolve a
// session's draft year for Catalog lookups.
type DraftLookup interface {
	GetDraft(ctx context.Context, id uuid.UUID) (*models.Draft, error)
}

// Catalog is the subset of catalog.App the Auto-Pick Engine consults.
type Catalog interface {
	PlayersByYear(ctx context.Context, draftYear int) ([]catalog.Player, error)
	TeamNeeds(ctx context.Context, teamID uuid.UUID) ([]catalog.TeamNeed, error)
	ConsensusRankings(ctx context.Context, draftYear int) (map[uuid.UUID]float64, error)
	ScoutingGrades(ctx context.Context, teamID uuid.UUID) (map[uuid.UUID]float64, error)
	Strategy(ctx context.Context, teamID uuid.UUID) (*catalog.TeamStrategy, error)
}

// App implements the Auto-Pick Engine's operations.
type App struct {
	picks   PickBoard
	session SessionStore
	drafts  DraftLookup
	catalog Catalog
}

func NewApp(picks PickBoard, session SessionStore, drafts DraftLookup, cat Catalog) *App {
	return &App{picks: picks, session: session, drafts: drafts, catalog: cat}
}

// RunAutoPick drives picks for AI-controlled teams starting from the
// session's current pick, stopping (without error) as soon as the current
// slot's owner is human-controlled, or once the draft completes
// (spec.md §4.4). It is safe to call repeatedly on the same session: every
// step it takes is itself idempotent (ClaimNextPickSlot only ever returns
// unmade slots, Assign only succeeds once per pick).
func (a *App) RunAutoPick(ctx context.Context, sessionID uuid.UUID) (*models.Session, error) {
	sess, err := a.session.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.Status != models.SessionStatusInProgress {
		return nil, apperr.New(apperr.InvalidTransition, "session %s is not in progress", sessionID)
	}

	draft, err := a.drafts.GetDraft(ctx, sess.DraftID)
	if err != nil {
		return nil, apperr.Wrap(apperr.NotFound, err, "draft %s not found", sess.DraftID)
	}

	for {
		if err := ctx.Err(); err != nil {
			return sess, err
		}

		slot, err := a.picks.ClaimNextPickSlot(ctx, sess.DraftID)
		if err != nil {
			if apperr.Is(err, apperr.NoEligible) {
				return a.completeSession(ctx, sess)
			}
			return nil, err
		}

		if sess.IsControlled(slot.CurrentTeamID) {
			return sess, nil
		}

		playerID, err := a.selectForSlot(ctx, draft, slot.CurrentTeamID)
		if err != nil {
			return nil, err
		}

		pick, err := a.picks.GetPick(ctx, slot.PickID)
		if err != nil {
			return nil, err
		}

		if err := a.picks.Assign(ctx, slot.PickID, playerID); err != nil {
			return nil, err
		}

		nextPick := slot.OverallPick + 1
		sess, err = a.session.AdvanceCurrentPick(ctx, sessionID, nextPick)
		if err != nil {
			return nil, fmt.Errorf("advancing current pick: %w", err)
		}

		madeAt := time.Now()
		if err := a.session.Append(ctx, sessionID, events.PickMade, events.PickMadePayload{
			SessionID:   sessionID.String(),
			PickID:      slot.PickID.String(),
			TeamID:      slot.CurrentTeamID.String(),
			PlayerID:    playerID.String(),
			Round:       pick.Round,
			PickInRound: pick.PickInRound,
			OverallPick: slot.OverallPick,
			AutoPick:    true,
			MadeAt:      madeAt,
		}); err != nil {
			return nil, err
		}

		remaining, err := a.picks.CountRemainingPicks(ctx, sess.DraftID)
		if err != nil {
			return nil, fmt.Errorf("counting remaining picks: %w", err)
		}
		if remaining == 0 {
			return a.completeSession(ctx, sess)
		}
	}
}

func (a *App) completeSession(ctx context.Context, sess *models.Session) (*models.Session, error) {
	picks, err := a.picks.Snapshot(ctx, sess.DraftID)
	if err != nil {
		return nil, fmt.Errorf("snapshotting board: %w", err)
	}
	return a.session.Complete(ctx, sess.ID, len(picks))
}

// Select runs the scoring formula for one team against every currently
// undrafted, eligible candidate and returns the chosen player.
func (a *App) Select(ctx context.Context, draft *models.Draft, teamID uuid.UUID) (uuid.UUID, error) {
	return a.selectForSlot(ctx, draft, teamID)
}

func (a *App) selectForSlot(ctx context.Context, draft *models.Draft, teamID uuid.UUID) (uuid.UUID, error) {
	candidates, needs, strategy, err := a.buildCandidatePool(ctx, draft, teamID)
	if err != nil {
		return uuid.UUID{}, err
	}
	return Select(candidates, needs, strategy)
}

// buildCandidatePool assembles the pure scoring inputs for one pick
// decision: every undrafted player for the draft year, the team's need
// priorities, and its strategy override (SPEC_FULL §13.3).
func (a *App) buildCandidatePool(ctx context.Context, draft *models.Draft, teamID uuid.UUID) ([]Candidate, map[string]int, Strategy, error) {
	players, err := a.catalog.PlayersByYear(ctx, draft.Year)
	if err != nil {
		return nil, nil, Strategy{}, err
	}

	made, err := a.picks.Snapshot(ctx, draft.ID)
	if err != nil {
		return nil, nil, Strategy{}, fmt.Errorf("snapshotting board: %w", err)
	}
	drafted := make(map[uuid.UUID]bool, len(made))
	for _, p := range made {
		if p.PlayerID != nil {
			drafted[*p.PlayerID] = true
		}
	}

	ranks, err := a.catalog.ConsensusRankings(ctx, draft.Year)
	if err != nil {
		return nil, nil, Strategy{}, err
	}
	grades, err := a.catalog.ScoutingGrades(ctx, teamID)
	if err != nil {
		return nil, nil, Strategy{}, err
	}

	candidates := make([]Candidate, 0, len(players))
	for _, p := range players {
		if drafted[p.ID] {
			continue
		}
		c := Candidate{
			PlayerID:         p.ID,
			Position:         p.Position,
			InjuryConcern:    p.InjuryConcern,
			CharacterConcern: p.CharacterConcern,
		}
		if rank, ok := ranks[p.ID]; ok {
			rank := rank
			c.ConsensusRank = &rank
		}
		if grade, ok := grades[p.ID]; ok {
			grade := grade
			c.ScoutingGrade = &grade
		}
		candidates = append(candidates, c)
	}

	teamNeeds, err := a.catalog.TeamNeeds(ctx, teamID)
	if err != nil {
		return nil, nil, Strategy{}, err
	}
	needs := make(map[string]int, len(teamNeeds))
	for _, n := range teamNeeds {
		needs[n.Position] = n.Priority
	}

	strategy := DefaultStrategy()
	override, err := a.catalog.Strategy(ctx, teamID)
	if err != nil {
		return nil, nil, Strategy{}, err
	}
	if override != nil {
		if override.WeightBPA != nil {
			strategy.WeightBPA = *override.WeightBPA
		}
		if override.WeightNeed != nil {
			strategy.WeightNeed = *override.WeightNeed
		}
		strategy.PositionValues = override.PositionValues
		strategy.RiskTolerance = override.RiskTolerance
	}

	return candidates, needs, strategy, nil
}
