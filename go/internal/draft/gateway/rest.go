package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/draftsim/engine/go/internal/apperr"
	"github.com/draftsim/engine/go/internal/coordinator"
	"github.com/draftsim/engine/go/internal/draft/draft"
	"github.com/draftsim/engine/go/internal/draft/outbox"
	"github.com/draftsim/engine/go/internal/models"
	"github.com/draftsim/engine/go/internal/pickboard"
	"github.com/draftsim/engine/go/internal/session"
	"github.com/draftsim/engine/go/internal/trade"
)

// Server implements the spec.md §6.1 HTTP/REST surface. Mutating
// operations on a session (start/pause/resume/make-pick/advance/auto-pick/
// trade lifecycle) are routed through the Session Coordinator so every
// write to a given session is serialized through its actor; pure reads go
// straight to the relevant app.
type Server struct {
	Drafts    *draft.App
	PickBoard *pickboard.App
	Sessions  *session.App
	Trades    *trade.App
	Events    *outbox.App
	Manager   *coordinator.Manager
}

func (s *Server) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /drafts", s.createDraft)
	mux.HandleFunc("POST /drafts/{id}/initialize", s.initializeDraft)
	mux.HandleFunc("GET /drafts/{id}/picks", s.listPicks)
	mux.HandleFunc("GET /drafts/{id}/picks/next", s.nextPick)
	mux.HandleFunc("GET /drafts/{id}/picks/available", s.availablePicks)
	mux.HandleFunc("POST /drafts/{draft_id}/picks/{pick_id}/make", s.makePick)

	mux.HandleFunc("POST /sessions", s.createSession)
	mux.HandleFunc("GET /sessions/{id}", s.getSession)
	mux.HandleFunc("POST /sessions/{id}/start", s.sessionCommand(func(ctx context.Context, m *coordinator.Manager, id uuid.UUID) coordinator.Result {
		return m.Start(ctx, id)
	}))
	mux.HandleFunc("POST /sessions/{id}/pause", s.sessionCommand(func(ctx context.Context, m *coordinator.Manager, id uuid.UUID) coordinator.Result {
		return m.Pause(ctx, id)
	}))
	mux.HandleFunc("POST /sessions/{id}/resume", s.sessionCommand(func(ctx context.Context, m *coordinator.Manager, id uuid.UUID) coordinator.Result {
		return m.Resume(ctx, id)
	}))
	mux.HandleFunc("POST /sessions/{id}/advance-pick", s.sessionCommand(func(ctx context.Context, m *coordinator.Manager, id uuid.UUID) coordinator.Result {
		return m.AdvancePick(ctx, id)
	}))
	mux.HandleFunc("POST /sessions/{id}/auto-pick-run", s.autoPickRun)
	mux.HandleFunc("GET /sessions/{id}/trades", s.listTrades)
	mux.HandleFunc("GET /sessions/{id}/events", s.listEvents)

	mux.HandleFunc("POST /trades", s.proposeTrade)
	mux.HandleFunc("POST /trades/{id}/accept", s.resolveTrade(true))
	mux.HandleFunc("POST /trades/{id}/reject", s.resolveTrade(false))
}

func (s *Server) createDraft(w http.ResponseWriter, r *http.Request) {
	var body struct {
		LeagueID      uuid.UUID        `json:"league_id"`
		Name          string           `json:"name"`
		Year          int              `json:"year"`
		Mode          models.DraftMode `json:"mode"`
		Rounds        int              `json:"rounds"`
		PicksPerRound *int             `json:"picks_per_round"`
		TotalPicks    int              `json:"total_picks"`
	}
	if !decodeJSON(w, r, &body) {
		return
	}

	d, err := s.Drafts.CreateDraft(r.Context(), draft.CreateDraftRequest{
		LeagueID:      body.LeagueID,
		Name:          body.Name,
		Year:          body.Year,
		Mode:          body.Mode,
		Rounds:        body.Rounds,
		PicksPerRound: body.PicksPerRound,
		TotalPicks:    body.TotalPicks,
	})
	if writeAppErr(w, err) {
		return
	}
	writeJSON(w, http.StatusOK, d)
}

// initializeDraft builds the Pick Board for a draft (spec.md §4.1
// Initialize). Callers choose Simple or Realistic mode by which of
// rounds/picks_per_round vs entries they supply.
func (s *Server) initializeDraft(w http.ResponseWriter, r *http.Request) {
	draftID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var body struct {
		TeamOrder []uuid.UUID `json:"team_order"`
		Entries   []struct {
			Round          int        `json:"round"`
			PickInRound    int        `json:"pick_in_round"`
			OverallPick    int        `json:"overall_pick"`
			TeamID         uuid.UUID  `json:"team_id"`
			OriginalTeamID *uuid.UUID `json:"original_team_id"`
			IsCompensatory bool       `json:"is_compensatory"`
			Note           *string    `json:"note"`
		} `json:"entries"`
	}
	if !decodeJSON(w, r, &body) {
		return
	}

	d, err := s.Drafts.GetDraft(r.Context(), draftID)
	if writeAppErr(w, err) {
		return
	}

	switch d.Mode {
	case models.DraftModeSimple:
		if d.PicksPerRound == nil {
			writeAppErr(w, apperr.New(apperr.InvalidArgument, "draft %s has no picks_per_round", draftID))
			return
		}
		err = s.PickBoard.InitializeSimple(r.Context(), pickboard.SimpleBoardSpec{
			DraftID:       draftID,
			Rounds:        d.Rounds,
			PicksPerRound: *d.PicksPerRound,
			TeamOrder:     body.TeamOrder,
		})
	case models.DraftModeRealistic:
		entries := make([]pickboard.RealisticPickEntry, len(body.Entries))
		for i, e := range body.Entries {
			entries[i] = pickboard.RealisticPickEntry{
				Round:          e.Round,
				PickInRound:    e.PickInRound,
				OverallPick:    e.OverallPick,
				TeamID:         e.TeamID,
				OriginalTeamID: e.OriginalTeamID,
				IsCompensatory: e.IsCompensatory,
				Note:           e.Note,
			}
		}
		err = s.PickBoard.InitializeRealistic(r.Context(), pickboard.RealisticBoardSpec{
			DraftID: draftID,
			Entries: entries,
		})
		if err == nil {
			_, err = s.Drafts.SetTotalPicks(r.Context(), draftID, len(entries))
		}
	default:
		err = apperr.New(apperr.InvalidArgument, "unknown draft mode %q", d.Mode)
	}
	if writeAppErr(w, err) {
		return
	}

	picks, err := s.PickBoard.Snapshot(r.Context(), draftID)
	if writeAppErr(w, err) {
		return
	}
	writeJSON(w, http.StatusOK, picks)
}

func (s *Server) listPicks(w http.ResponseWriter, r *http.Request) {
	draftID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	picks, err := s.PickBoard.Snapshot(r.Context(), draftID)
	if writeAppErr(w, err) {
		return
	}
	writeJSON(w, http.StatusOK, picks)
}

func (s *Server) nextPick(w http.ResponseWriter, r *http.Request) {
	draftID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	picks, err := s.PickBoard.Snapshot(r.Context(), draftID)
	if writeAppErr(w, err) {
		return
	}
	sort.Slice(picks, func(i, j int) bool { return picks[i].OverallPick < picks[j].OverallPick })
	for _, p := range picks {
		if !p.Made() {
			writeJSON(w, http.StatusOK, p)
			return
		}
	}
	writeAppErr(w, apperr.New(apperr.NotFound, "draft %s has no remaining picks", draftID))
}

func (s *Server) availablePicks(w http.ResponseWriter, r *http.Request) {
	draftID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	picks, err := s.PickBoard.Snapshot(r.Context(), draftID)
	if writeAppErr(w, err) {
		return
	}
	available := make([]models.DraftPick, 0, len(picks))
	for _, p := range picks {
		if !p.Made() {
			available = append(available, p)
		}
	}
	sort.Slice(available, func(i, j int) bool { return available[i].OverallPick < available[j].OverallPick })
	writeJSON(w, http.StatusOK, available)
}

func (s *Server) makePick(w http.ResponseWriter, r *http.Request) {
	pickID, ok := pathUUID(w, r, "pick_id")
	if !ok {
		return
	}
	var body struct {
		PlayerID uuid.UUID `json:"player_id"`
	}
	if !decodeJSON(w, r, &body) {
		return
	}

	pick, err := s.PickBoard.GetPick(r.Context(), pickID)
	if writeAppErr(w, err) {
		return
	}
	sess, err := sessionForDraft(r, s, pick.DraftID)
	if writeAppErr(w, err) {
		return
	}

	result := s.Manager.MakePick(r.Context(), sess.ID, pickID, body.PlayerID)
	if writeAppErr(w, result.Err) {
		return
	}
	updated, err := s.PickBoard.GetPick(r.Context(), pickID)
	if writeAppErr(w, err) {
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) createSession(w http.ResponseWriter, r *http.Request) {
	var body struct {
		DraftID            uuid.UUID        `json:"draft_id"`
		TimePerPickSeconds int              `json:"time_per_pick_seconds"`
		AutoPickEnabled    bool             `json:"auto_pick_enabled"`
		ChartType          models.ChartType `json:"chart_type"`
		ControlledTeamIDs  []uuid.UUID      `json:"controlled_team_ids"`
	}
	if !decodeJSON(w, r, &body) {
		return
	}

	result := s.Manager.Create(r.Context(), session.CreateSessionRequest{
		DraftID:            body.DraftID,
		TimePerPickSeconds: body.TimePerPickSeconds,
		AutoPickEnabled:    body.AutoPickEnabled,
		ChartType:          body.ChartType,
		ControlledTeamIDs:  body.ControlledTeamIDs,
	})
	if writeAppErr(w, result.Err) {
		return
	}
	writeJSON(w, http.StatusOK, result.Session)
}

func (s *Server) getSession(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	sess, err := s.Sessions.GetSession(r.Context(), id)
	if writeAppErr(w, err) {
		return
	}
	writeJSON(w, http.StatusOK, sess)
}

// sessionCommand adapts a single-session coordinator.Manager call into a
// handler.
func (s *Server) sessionCommand(call func(ctx context.Context, m *coordinator.Manager, id uuid.UUID) coordinator.Result) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathUUID(w, r, "id")
		if !ok {
			return
		}
		result := call(r.Context(), s.Manager, id)
		if writeAppErr(w, result.Err) {
			return
		}
		writeJSON(w, http.StatusOK, result.Session)
	}
}

func (s *Server) autoPickRun(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	before, err := s.Sessions.GetSession(r.Context(), id)
	if writeAppErr(w, err) {
		return
	}
	beforePicks, err := s.PickBoard.Snapshot(r.Context(), before.DraftID)
	if writeAppErr(w, err) {
		return
	}

	result := s.Manager.AutoPickRun(r.Context(), id)
	if writeAppErr(w, result.Err) {
		return
	}

	afterPicks, err := s.PickBoard.Snapshot(r.Context(), before.DraftID)
	if writeAppErr(w, err) {
		return
	}
	madeBefore := make(map[uuid.UUID]bool, len(beforePicks))
	for _, p := range beforePicks {
		if p.Made() {
			madeBefore[p.ID] = true
		}
	}
	var picksMade []models.DraftPick
	for _, p := range afterPicks {
		if p.Made() && !madeBefore[p.ID] {
			picksMade = append(picksMade, p)
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"session":    result.Session,
		"picks_made": picksMade,
	})
}

func (s *Server) listTrades(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	trades, err := s.Trades.ListBySession(r.Context(), id)
	if writeAppErr(w, err) {
		return
	}
	writeJSON(w, http.StatusOK, trades)
}

func (s *Server) listEvents(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	evts, err := s.Events.ListBySession(r.Context(), id)
	if writeAppErr(w, err) {
		return
	}
	writeJSON(w, http.StatusOK, evts)
}

func (s *Server) proposeTrade(w http.ResponseWriter, r *http.Request) {
	var body struct {
		SessionID     uuid.UUID   `json:"session_id"`
		FromTeamID    uuid.UUID   `json:"from_team_id"`
		ToTeamID      uuid.UUID   `json:"to_team_id"`
		FromPickIDs   []uuid.UUID `json:"from_team_pick_ids"`
		ToPickIDs     []uuid.UUID `json:"to_team_pick_ids"`
	}
	if !decodeJSON(w, r, &body) {
		return
	}

	result := s.Manager.ProposeTrade(r.Context(), body.SessionID, trade.ProposeRequest{
		SessionID:   body.SessionID,
		FromTeamID:  body.FromTeamID,
		ToTeamID:    body.ToTeamID,
		FromPickIDs: body.FromPickIDs,
		ToPickIDs:   body.ToPickIDs,
	})
	if writeAppErr(w, result.Err) {
		return
	}
	writeJSON(w, http.StatusOK, result.Trade)
}

func (s *Server) resolveTrade(accept bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tradeID, ok := pathUUID(w, r, "id")
		if !ok {
			return
		}
		var body struct {
			TeamID uuid.UUID `json:"team_id"`
		}
		if !decodeJSON(w, r, &body) {
			return
		}

		trd, err := s.Trades.Get(r.Context(), tradeID)
		if writeAppErr(w, err) {
			return
		}

		var result coordinator.Result
		if accept {
			result = s.Manager.AcceptTrade(r.Context(), trd.SessionID, tradeID, body.TeamID)
		} else {
			result = s.Manager.RejectTrade(r.Context(), trd.SessionID, tradeID, body.TeamID)
		}
		if writeAppErr(w, result.Err) {
			return
		}
		writeJSON(w, http.StatusOK, result.Trade)
	}
}

func sessionForDraft(r *http.Request, s *Server, draftID uuid.UUID) (*models.Session, error) {
	return s.Sessions.GetActiveSessionByDraft(r.Context(), draftID)
}

func pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	raw := r.PathValue(name)
	id, err := uuid.Parse(raw)
	if err != nil {
		http.Error(w, "invalid "+name, http.StatusBadRequest)
		return uuid.Nil, false
	}
	return id, true
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if r.Body == nil {
		return true
	}
	if r.ContentLength == 0 {
		return true
	}
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		http.Error(w, "malformed request body: "+err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

// writeAppErr maps an apperr.Kind to the status codes spec.md §7 names and
// writes the response if err is non-nil. Reports whether it wrote anything.
func writeAppErr(w http.ResponseWriter, err error) bool {
	if err == nil {
		return false
	}

	status := http.StatusInternalServerError
	switch {
	case apperr.Is(err, apperr.NotFound):
		status = http.StatusNotFound
	case apperr.Is(err, apperr.InvalidArgument):
		status = http.StatusBadRequest
	case apperr.Is(err, apperr.InvalidTransition), apperr.Is(err, apperr.Conflict), apperr.Is(err, apperr.NotOwned):
		status = http.StatusConflict
	case apperr.Is(err, apperr.NoEligible):
		status = http.StatusUnprocessableEntity
	case apperr.Is(err, apperr.Unavailable):
		status = http.StatusServiceUnavailable
	default:
		log.Error().Err(err).Msg("unclassified error reaching gateway")
	}

	http.Error(w, strings.TrimSpace(err.Error()), status)
	return true
}
