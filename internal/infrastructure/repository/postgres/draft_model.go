package postgres

import (
	"time"

	"github.com/addthemup/hoopgeek-sub001/internal/domain/draft"
)

type draftPickTableModel struct {
	ID           int64     `db:"id"`
	LeagueID     string    `db:"league_public_id"`
	Round        int       `db:"round"`
	PickNumber   int       `db:"pick_number"`
	TeamID       string    `db:"team_public_id"`
	TeamPosition int       `db:"team_position"`
	Completed    bool      `db:"completed"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

func pickFromRow(row draftPickTableModel) draft.Pick {
	return draft.Pick{
		LeagueID:     row.LeagueID,
		Round:        row.Round,
		PickNumber:   row.PickNumber,
		TeamID:       row.TeamID,
		TeamPosition: row.TeamPosition,
		Completed:    row.Completed,
	}
}
