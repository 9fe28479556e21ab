package postgres

import (
	"time"

	"github.com/addthemup/hoopgeek-sub001/internal/domain/player"
)

type playerTableModel struct {
	ID           int64      `db:"id"`
	PublicID     string     `db:"public_id"`
	LeagueID     string     `db:"league_public_id"`
	Name         string     `db:"name"`
	NBATeam      string     `db:"nba_team"`
	JerseyNumber int        `db:"jersey_number"`
	RawPosition  string     `db:"raw_position"`
	Position     string     `db:"position"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at"`
	DeletedAt    *time.Time `db:"deleted_at"`
}

func playerFromRow(row playerTableModel) player.Player {
	return player.Player{
		ID:           row.PublicID,
		LeagueID:     row.LeagueID,
		Name:         row.Name,
		NBATeam:      row.NBATeam,
		JerseyNumber: row.JerseyNumber,
		RawPosition:  row.RawPosition,
		Position:     player.Position(row.Position),
	}
}
