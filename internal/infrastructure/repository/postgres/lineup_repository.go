package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/addthemup/hoopgeek-sub001/internal/domain/lineup"
	qb "github.com/addthemup/hoopgeek-sub001/internal/platform/querybuilder"
)

type LineupRepository struct {
	db *sqlx.DB
}

func NewLineupRepository(db *sqlx.DB) *LineupRepository {
	return &LineupRepository{db: db}
}

func assignmentBaseSelectBuilder() *qb.SelectBuilder {
	return qb.Select(
		"id",
		"league_public_id",
		"team_public_id",
		"player_public_id",
		"unit",
		"x",
		"y",
		"player_position",
		"player_raw_position",
		"updated_at",
	).From("lineup_assignments")
}

func (r *LineupRepository) ListByTeam(ctx context.Context, leagueID, teamID string) ([]lineup.SlotAssignment, error) {
	query, args, err := assignmentBaseSelectBuilder().
		Where(
			qb.Eq("league_public_id", leagueID),
			qb.Eq("team_public_id", teamID),
		).
		OrderBy("player_public_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list assignments query: %w", err)
	}

	var rows []lineupAssignmentTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list assignments by team: %w", err)
	}

	out := make([]lineup.SlotAssignment, 0, len(rows))
	for _, row := range rows {
		out = append(out, assignmentFromRow(row))
	}
	return out, nil
}

// Upsert writes the player's single slot. The unique key over
// (league, team, player) makes moving a player between units a plain update
// of the same row, which is what keeps a player out of two units at once
// even under racing writers.
func (r *LineupRepository) Upsert(ctx context.Context, assignment lineup.SlotAssignment) error {
	insertModel := lineupAssignmentInsertModel{
		LeagueID:          assignment.LeagueID,
		TeamID:            assignment.TeamID,
		PlayerID:          assignment.PlayerID,
		Unit:              string(assignment.Unit),
		X:                 assignment.X,
		Y:                 assignment.Y,
		PlayerPosition:    string(assignment.PlayerPosition),
		PlayerRawPosition: assignment.PlayerRawPosition,
		UpdatedAt:         assignment.UpdatedAt,
	}

	query, args, err := qb.InsertModel("lineup_assignments", insertModel, `ON CONFLICT (league_public_id, team_public_id, player_public_id)
DO UPDATE SET
    unit = EXCLUDED.unit,
    x = EXCLUDED.x,
    y = EXCLUDED.y,
    player_position = EXCLUDED.player_position,
    player_raw_position = EXCLUDED.player_raw_position,
    updated_at = EXCLUDED.updated_at`)
	if err != nil {
		return fmt.Errorf("build upsert assignment query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert assignment: %w", err)
	}
	return nil
}

func (r *LineupRepository) Delete(ctx context.Context, leagueID, teamID, playerID string) (bool, error) {
	query, args, err := qb.DeleteFrom("lineup_assignments").
		Where(
			qb.Eq("league_public_id", leagueID),
			qb.Eq("team_public_id", teamID),
			qb.Eq("player_public_id", playerID),
		).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete assignment query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("delete assignment: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete assignment rows affected: %w", err)
	}
	return affected > 0, nil
}
