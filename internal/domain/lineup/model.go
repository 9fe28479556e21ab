package lineup

import (
	"fmt"
	"time"

	"github.com/addthemup/hoopgeek-sub001/internal/domain/league"
	"github.com/addthemup/hoopgeek-sub001/internal/domain/player"
)

// SlotAssignment places one player into one lineup unit of a fantasy team.
// X and Y are percentage coordinates (0-100) on the court board and carry no
// rule meaning. A player holds at most one active assignment per
// (league, team); moving between units is a delete plus a fresh insert
// because the unit is part of the assignment's identity in the store.
type SlotAssignment struct {
	LeagueID string
	TeamID   string
	PlayerID string
	Unit     league.Unit
	X        float64
	Y        float64
	// PlayerPosition and PlayerRawPosition are denormalized from the player
	// row so the eligibility engine can run on an assignment snapshot alone.
	PlayerPosition    player.Position
	PlayerRawPosition string
	UpdatedAt         time.Time
}

func (a SlotAssignment) Validate() error {
	if a.LeagueID == "" {
		return fmt.Errorf("assignment league id is required")
	}
	if a.TeamID == "" {
		return fmt.Errorf("assignment team id is required")
	}
	if a.PlayerID == "" {
		return fmt.Errorf("assignment player id is required")
	}
	if _, ok := league.AllUnits[a.Unit]; !ok {
		return fmt.Errorf("invalid lineup unit: %s", a.Unit)
	}
	if a.X < 0 || a.X > 100 || a.Y < 0 || a.Y > 100 {
		return fmt.Errorf("assignment coordinates must be within 0-100")
	}

	return nil
}
