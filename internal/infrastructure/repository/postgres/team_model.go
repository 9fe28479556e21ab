package postgres

import (
	"time"

	"github.com/addthemup/hoopgeek-sub001/internal/domain/team"
)

type teamTableModel struct {
	ID            int64      `db:"id"`
	PublicID      string     `db:"public_id"`
	LeagueID      string     `db:"league_public_id"`
	Name          string     `db:"name"`
	OwnerUserID   string     `db:"owner_user_id"`
	DraftPosition int        `db:"draft_position"`
	CreatedAt     time.Time  `db:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at"`
	DeletedAt     *time.Time `db:"deleted_at"`
}

func teamFromRow(row teamTableModel) team.Team {
	return team.Team{
		ID:            row.PublicID,
		LeagueID:      row.LeagueID,
		Name:          row.Name,
		OwnerUserID:   row.OwnerUserID,
		DraftPosition: row.DraftPosition,
	}
}
