package postgres

import (
	"time"

	"github.com/addthemup/hoopgeek-sub001/internal/domain/league"
	"github.com/addthemup/hoopgeek-sub001/internal/domain/lineup"
	"github.com/addthemup/hoopgeek-sub001/internal/domain/player"
)

type lineupAssignmentTableModel struct {
	ID                int64     `db:"id"`
	LeagueID          string    `db:"league_public_id"`
	TeamID            string    `db:"team_public_id"`
	PlayerID          string    `db:"player_public_id"`
	Unit              string    `db:"unit"`
	X                 float64   `db:"x"`
	Y                 float64   `db:"y"`
	PlayerPosition    string    `db:"player_position"`
	PlayerRawPosition string    `db:"player_raw_position"`
	UpdatedAt         time.Time `db:"updated_at"`
}

type lineupAssignmentInsertModel struct {
	LeagueID          string    `db:"league_public_id"`
	TeamID            string    `db:"team_public_id"`
	PlayerID          string    `db:"player_public_id"`
	Unit              string    `db:"unit"`
	X                 float64   `db:"x"`
	Y                 float64   `db:"y"`
	PlayerPosition    string    `db:"player_position"`
	PlayerRawPosition string    `db:"player_raw_position"`
	UpdatedAt         time.Time `db:"updated_at"`
}

func assignmentFromRow(row lineupAssignmentTableModel) lineup.SlotAssignment {
	return lineup.SlotAssignment{
		LeagueID:          row.LeagueID,
		TeamID:            row.TeamID,
		PlayerID:          row.PlayerID,
		Unit:              league.Unit(row.Unit),
		X:                 row.X,
		Y:                 row.Y,
		PlayerPosition:    player.Position(row.PlayerPosition),
		PlayerRawPosition: row.PlayerRawPosition,
		UpdatedAt:         row.UpdatedAt,
	}
}
