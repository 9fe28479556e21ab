package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/addthemup/hoopgeek-sub001/internal/domain/league"
	qb "github.com/addthemup/hoopgeek-sub001/internal/platform/querybuilder"
)

type LeagueRepository struct {
	db *sqlx.DB
}

func NewLeagueRepository(db *sqlx.DB) *LeagueRepository {
	return &LeagueRepository{db: db}
}

func leagueBaseSelectBuilder() *qb.SelectBuilder {
	return qb.Select(
		"id",
		"public_id",
		"name",
		"season",
		"draft_rounds",
		"is_default",
		"unit_configs",
		"created_at",
		"updated_at",
		"deleted_at",
	).From("leagues")
}

func (r *LeagueRepository) List(ctx context.Context) ([]league.League, error) {
	query, args, err := leagueBaseSelectBuilder().
		Where(qb.IsNull("deleted_at")).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list leagues query: %w", err)
	}

	var rows []leagueTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list leagues: %w", err)
	}

	out := make([]league.League, 0, len(rows))
	for _, row := range rows {
		item, err := leagueFromRow(row)
		if err != nil {
			return nil, fmt.Errorf("map league %s: %w", row.PublicID, err)
		}
		out = append(out, item)
	}
	return out, nil
}

func (r *LeagueRepository) GetByID(ctx context.Context, leagueID string) (league.League, bool, error) {
	query, args, err := leagueBaseSelectBuilder().
		Where(
			qb.Eq("public_id", leagueID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return league.League{}, false, fmt.Errorf("build get league query: %w", err)
	}

	var row leagueTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return league.League{}, false, nil
		}
		return league.League{}, false, fmt.Errorf("get league: %w", err)
	}

	item, err := leagueFromRow(row)
	if err != nil {
		return league.League{}, false, fmt.Errorf("map league %s: %w", row.PublicID, err)
	}
	return item, true, nil
}
