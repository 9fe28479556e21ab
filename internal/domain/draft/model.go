package draft

// TeamSlot binds a fantasy team to its 1-based first-round draft position.
type TeamSlot struct {
	TeamID   string
	Position int
}

// Pick is one selection slot in a league's draft. PickNumber runs 1..rounds*n
// across the whole draft; TeamPosition is the owning team's first-round slot.
type Pick struct {
	LeagueID     string
	Round        int
	PickNumber   int
	TeamID       string
	TeamPosition int
	Completed    bool
}

// RoundPicks groups one round's picks for preview rendering.
type RoundPicks struct {
	Round int
	Picks []Pick
}
