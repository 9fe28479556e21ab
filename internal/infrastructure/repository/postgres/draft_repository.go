package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/addthemup/hoopgeek-sub001/internal/domain/draft"
	qb "github.com/addthemup/hoopgeek-sub001/internal/platform/querybuilder"
)

type DraftRepository struct {
	db *sqlx.DB
}

func NewDraftRepository(db *sqlx.DB) *DraftRepository {
	return &DraftRepository{db: db}
}

func draftPickBaseSelectBuilder() *qb.SelectBuilder {
	return qb.Select(
		"id",
		"league_public_id",
		"round",
		"pick_number",
		"team_public_id",
		"team_position",
		"completed",
		"created_at",
		"updated_at",
	).From("draft_picks")
}

func (r *DraftRepository) ListByLeague(ctx context.Context, leagueID string) ([]draft.Pick, error) {
	query, args, err := draftPickBaseSelectBuilder().
		Where(qb.Eq("league_public_id", leagueID)).
		OrderBy("pick_number").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list draft picks query: %w", err)
	}

	var rows []draftPickTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list draft picks by league: %w", err)
	}

	out := make([]draft.Pick, 0, len(rows))
	for _, row := range rows {
		out = append(out, pickFromRow(row))
	}
	return out, nil
}

// ReplaceForLeague swaps the league's whole order inside one transaction so
// readers never observe a half-written draft.
func (r *DraftRepository) ReplaceForLeague(ctx context.Context, leagueID string, picks []draft.Pick) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin replace draft order: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	deleteQuery, deleteArgs, err := qb.DeleteFrom("draft_picks").
		Where(qb.Eq("league_public_id", leagueID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete draft picks query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("delete draft picks: %w", err)
	}

	if len(picks) > 0 {
		builder := qb.InsertInto("draft_picks").
			Columns("league_public_id", "round", "pick_number", "team_public_id", "team_position", "completed")
		for _, pick := range picks {
			builder.Values(leagueID, pick.Round, pick.PickNumber, pick.TeamID, pick.TeamPosition, pick.Completed)
		}

		insertQuery, insertArgs, err := builder.ToSQL()
		if err != nil {
			return fmt.Errorf("build insert draft picks query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
			return fmt.Errorf("insert draft picks: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace draft order: %w", err)
	}
	return nil
}

func (r *DraftRepository) MarkCompleted(ctx context.Context, leagueID string, pickNumber int) (bool, error) {
	query, args, err := qb.Update("draft_picks").
		Set("completed", true).
		Where(
			qb.Eq("league_public_id", leagueID),
			qb.Eq("pick_number", pickNumber),
		).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build mark pick completed query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("mark pick completed: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("mark pick completed rows affected: %w", err)
	}
	return affected > 0, nil
}
