package trade

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/draftsim/engine/go/internal/apperr"
	"github.com/draftsim/engine/go/internal/models"
	pbdb "github.com/draftsim/engine/go/internal/pickboard/db"
	tradedb "github.com/draftsim/engine/go/internal/trade/db"
)

// SQLRepository implements Repository against Postgres. Accept spans both
// the trades table and the picks table owned by the Pick Board, so it holds
// both query sets over one *sql.DB and runs Accept inside a single
// transaction (spec.md §9 design note on serializable trade acceptance).
type SQLRepository struct {
	tradeQueries *tradedb.Queries
	pickQueries  *pbdb.Queries
	sqlDB        *sql.DB
}

func NewSQLRepository(sqlDB *sql.DB) *SQLRepository {
	return &SQLRepository{
		tradeQueries: tradedb.New(sqlDB),
		pickQueries:  pbdb.New(sqlDB),
		sqlDB:        sqlDB,
	}
}

func (r *SQLRepository) Create(ctx context.Context, t models.Trade, details []models.TradeDetail) error {
	tx, err := r.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning tx: %w", err)
	}
	defer tx.Rollback()

	qtx := r.tradeQueries.WithTx(tx)
	if _, err := qtx.InsertTrade(ctx, tradedb.InsertTradeParams{
		ID:            t.ID,
		SessionID:     t.SessionID,
		FromTeamID:    t.FromTeamID,
		ToTeamID:      t.ToTeamID,
		Status:        string(t.Status),
		FromTeamValue: t.FromTeamValue,
		ToTeamValue:   t.ToTeamValue,
		ValueDiff:     t.ValueDiff,
	}); err != nil {
		return fmt.Errorf("inserting trade: %w", err)
	}

	params := tradedb.InsertTradeDetailBatchParams{
		IDs:      make([]uuid.UUID, len(details)),
		TradeIDs: make([]uuid.UUID, len(details)),
		PickIDs:  make([]uuid.UUID, len(details)),
		Sides:    make([]string, len(details)),
		Values:   make([]float64, len(details)),
	}
	for i, d := range details {
		params.IDs[i] = d.ID
		params.TradeIDs[i] = d.TradeID
		params.PickIDs[i] = d.PickID
		params.Sides[i] = string(d.Side)
		params.Values[i] = d.Value
	}
	if err := qtx.InsertTradeDetailBatch(ctx, params); err != nil {
		return fmt.Errorf("inserting trade details: %w", err)
	}

	return tx.Commit()
}

func (r *SQLRepository) Get(ctx context.Context, id uuid.UUID) (*models.Trade, []models.TradeDetail, error) {
	row, err := r.tradeQueries.GetTrade(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil, apperr.New(apperr.NotFound, "trade %s not found", id)
		}
		return nil, nil, fmt.Errorf("getting trade: %w", err)
	}
	detailRows, err := r.tradeQueries.GetTradeDetails(ctx, id)
	if err != nil {
		return nil, nil, fmt.Errorf("getting trade details: %w", err)
	}

	t := dbTradeToModel(row)
	details := make([]models.TradeDetail, len(detailRows))
	for i, d := range detailRows {
		details[i] = dbDetailToModel(d)
	}
	return &t, details, nil
}

// Accept runs the full revalidation + ownership-transfer + status-flip
// inside one serializable transaction: it locks the trade row, re-checks it
// is still Proposed and claimed by the accepting team, then for each detail
// locks the traded pick, re-checks it is still unmade and still owned by
// the side that offered it, and transfers it to the opposite side. Any
// revalidation failure rolls the whole transaction back and returns
// Conflict without mutating trade status.
func (r *SQLRepository) Accept(ctx context.Context, tradeID, acceptingTeam uuid.UUID) (*models.Trade, []models.TradeDetail, error) {
	tx, err := r.sqlDB.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return nil, nil, fmt.Errorf("beginning tx: %w", err)
	}
	defer tx.Rollback()

	tradeTx := r.tradeQueries.WithTx(tx)
	pickTx := r.pickQueries.WithTx(tx)

	tradeRow, err := tradeTx.GetTradeForUpdate(ctx, tradeID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil, apperr.New(apperr.NotFound, "trade %s not found", tradeID)
		}
		return nil, nil, fmt.Errorf("locking trade: %w", err)
	}
	if tradeRow.Status != string(models.TradeStatusProposed) {
		return nil, nil, apperr.New(apperr.Conflict, "trade %s is no longer proposed (status %s)", tradeID, tradeRow.Status)
	}
	if tradeRow.ToTeamID != acceptingTeam {
		return nil, nil, apperr.New(apperr.NotOwned, "trade %s is not addressed to team %s", tradeID, acceptingTeam)
	}

	detailRows, err := tradeTx.GetTradeDetails(ctx, tradeID)
	if err != nil {
		return nil, nil, fmt.Errorf("getting trade details: %w", err)
	}

	for _, d := range detailRows {
		pick, err := pickTx.LockPick(ctx, d.PickID)
		if err != nil {
			if err == sql.ErrNoRows {
				return nil, nil, apperr.New(apperr.NotFound, "pick %s not found", d.PickID)
			}
			return nil, nil, fmt.Errorf("locking pick %s: %w", d.PickID, err)
		}
		if pick.PlayerID.Valid {
			return nil, nil, apperr.New(apperr.Conflict, "pick %s has already been made", d.PickID)
		}

		var owner, newOwner uuid.UUID
		switch d.Side {
		case string(models.TradeSideFrom):
			owner, newOwner = tradeRow.FromTeamID, tradeRow.ToTeamID
		case string(models.TradeSideTo):
			owner, newOwner = tradeRow.ToTeamID, tradeRow.FromTeamID
		default:
			return nil, nil, fmt.Errorf("trade detail %s has unrecognized side %q", d.ID, d.Side)
		}
		if pick.CurrentTeamID != owner {
			return nil, nil, apperr.New(apperr.Conflict, "pick %s is no longer owned by the offering team", d.PickID)
		}

		rows, err := pickTx.TransferOwnership(ctx, d.PickID, newOwner, owner)
		if err != nil {
			return nil, nil, fmt.Errorf("transferring pick %s: %w", d.PickID, err)
		}
		if rows == 0 {
			return nil, nil, apperr.New(apperr.Conflict, "pick %s changed under us", d.PickID)
		}
	}

	now := time.Now()
	updatedRow, err := tradeTx.UpdateTradeStatus(ctx, tradeID, string(models.TradeStatusAccepted), sql.NullTime{Time: now, Valid: true})
	if err != nil {
		return nil, nil, fmt.Errorf("updating trade status: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, fmt.Errorf("committing accept: %w", err)
	}

	t := dbTradeToModel(updatedRow)
	details := make([]models.TradeDetail, len(detailRows))
	for i, d := range detailRows {
		details[i] = dbDetailToModel(d)
	}
	return &t, details, nil
}

// Reject flips a Proposed trade to Rejected; the rejecting team must be the
// trade's to_team.
func (r *SQLRepository) Reject(ctx context.Context, tradeID, rejectingTeam uuid.UUID) (*models.Trade, error) {
	tx, err := r.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning tx: %w", err)
	}
	defer tx.Rollback()

	tradeTx := r.tradeQueries.WithTx(tx)
	tradeRow, err := tradeTx.GetTradeForUpdate(ctx, tradeID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperr.New(apperr.NotFound, "trade %s not found", tradeID)
		}
		return nil, fmt.Errorf("locking trade: %w", err)
	}
	if tradeRow.Status != string(models.TradeStatusProposed) {
		return nil, apperr.New(apperr.Conflict, "trade %s is no longer proposed (status %s)", tradeID, tradeRow.Status)
	}
	if tradeRow.ToTeamID != rejectingTeam {
		return nil, apperr.New(apperr.NotOwned, "trade %s is not addressed to team %s", tradeID, rejectingTeam)
	}

	updatedRow, err := tradeTx.UpdateTradeStatus(ctx, tradeID, string(models.TradeStatusRejected), sql.NullTime{Time: time.Now(), Valid: true})
	if err != nil {
		return nil, fmt.Errorf("updating trade status: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing reject: %w", err)
	}

	t := dbTradeToModel(updatedRow)
	return &t, nil
}

// ListPendingForTeam fetches Proposed trades for a team and their details in
// two batch queries, avoiding N+1 (spec.md §4.3 FindPendingForTeam).
func (r *SQLRepository) ListPendingForTeam(ctx context.Context, sessionID, teamID uuid.UUID) ([]TradeWithDetails, error) {
	ids, err := r.tradeQueries.ListPendingTradeIDsForTeam(ctx, sessionID, teamID)
	if err != nil {
		return nil, fmt.Errorf("listing pending trade ids: %w", err)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	tradeRows, err := r.tradeQueries.GetTradesBatch(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("batch-getting trades: %w", err)
	}
	detailRows, err := r.tradeQueries.GetTradeDetailsBatch(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("batch-getting trade details: %w", err)
	}

	detailsByTrade := make(map[uuid.UUID][]models.TradeDetail, len(tradeRows))
	for _, d := range detailRows {
		detailsByTrade[d.TradeID] = append(detailsByTrade[d.TradeID], dbDetailToModel(d))
	}

	out := make([]TradeWithDetails, len(tradeRows))
	for i, row := range tradeRows {
		t := dbTradeToModel(row)
		out[i] = TradeWithDetails{Trade: t, Details: detailsByTrade[t.ID]}
	}
	return out, nil
}

// ListBySession fetches every trade for a session regardless of status, in
// the same batch-fetch style as ListPendingForTeam.
func (r *SQLRepository) ListBySession(ctx context.Context, sessionID uuid.UUID) ([]TradeWithDetails, error) {
	ids, err := r.tradeQueries.ListTradeIDsForSession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("listing trade ids for session: %w", err)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	tradeRows, err := r.tradeQueries.GetTradesBatch(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("batch-getting trades: %w", err)
	}
	detailRows, err := r.tradeQueries.GetTradeDetailsBatch(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("batch-getting trade details: %w", err)
	}

	detailsByTrade := make(map[uuid.UUID][]models.TradeDetail, len(tradeRows))
	for _, d := range detailRows {
		detailsByTrade[d.TradeID] = append(detailsByTrade[d.TradeID], dbDetailToModel(d))
	}

	out := make([]TradeWithDetails, len(tradeRows))
	for i, row := range tradeRows {
		t := dbTradeToModel(row)
		out[i] = TradeWithDetails{Trade: t, Details: detailsByTrade[t.ID]}
	}
	return out, nil
}

func dbTradeToModel(row tradedb.Trade) models.Trade {
	t := models.Trade{
		ID:            row.ID,
		SessionID:     row.SessionID,
		FromTeamID:    row.FromTeamID,
		ToTeamID:      row.ToTeamID,
		Status:        models.TradeStatus(row.Status),
		FromTeamValue: row.FromTeamValue,
		ToTeamValue:   row.ToTeamValue,
		ValueDiff:     row.ValueDiff,
		ProposedAt:    row.ProposedAt,
	}
	if row.RespondedAt.Valid {
		respondedAt := row.RespondedAt.Time
		t.RespondedAt = &respondedAt
	}
	return t
}

func dbDetailToModel(row tradedb.TradeDetail) models.TradeDetail {
	return models.TradeDetail{
		ID:      row.ID,
		TradeID: row.TradeID,
		PickID:  row.PickID,
		Side:    models.TradeSide(row.Side),
		Value:   row.Value,
	}
}
