package team

import "fmt"

// Team is a manager-owned fantasy roster inside a league.
type Team struct {
	ID          string
	LeagueID    string
	Name        string
	OwnerUserID string
	// DraftPosition is the team's 1-based slot in the first draft round.
	DraftPosition int
}

func (t Team) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("team id is required")
	}
	if t.LeagueID == "" {
		return fmt.Errorf("team league id is required")
	}
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}
	if t.DraftPosition < 1 {
		return fmt.Errorf("team draft position must be at least 1")
	}

	return nil
}
