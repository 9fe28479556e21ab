package lineup

import (
	"errors"
	"sort"

	"github.com/addthemup/hoopgeek-sub001/internal/domain/league"
	"github.com/addthemup/hoopgeek-sub001/internal/domain/player"
)

var (
	ErrAssignedElsewhere = errors.New("player already holds a slot in another unit")
	ErrUnitFull          = errors.New("unit is at capacity")
	ErrNoPositionOverlap = errors.New("player position does not match any open requirement")
)

// Explain decides whether a player may be placed into a unit given the team's
// full assignment snapshot and the unit's configuration. It returns nil when
// the drop should be accepted and a sentinel error describing the refusal
// otherwise. The check is advisory client-side validation: the store's
// uniqueness constraints remain authoritative against concurrent writers.
func Explain(p player.Player, target league.Unit, assignments []SlotAssignment, cfg league.UnitConfig) error {
	var existing *SlotAssignment
	occupancy := 0
	for i := range assignments {
		if assignments[i].Unit == target {
			occupancy++
		}
		if assignments[i].PlayerID == p.ID {
			existing = &assignments[i]
		}
	}

	if existing != nil && existing.Unit != target {
		return ErrAssignedElsewhere
	}

	// Repositioning inside the unit never increases occupancy, so it is
	// allowed even when the unit reads full.
	alreadyInUnit := existing != nil && existing.Unit == target
	if occupancy >= cfg.MaxPlayers && !alreadyInUnit {
		return ErrUnitFull
	}

	if len(cfg.Requirements) == 0 {
		return nil
	}

	for _, pos := range player.Eligible(p.RawPosition) {
		if cfg.Requirements[pos] > 0 {
			return nil
		}
	}

	return ErrNoPositionOverlap
}

// Available reports whether a drop onto the unit should be accepted.
func Available(p player.Player, target league.Unit, assignments []SlotAssignment, cfg league.UnitConfig) bool {
	return Explain(p, target, assignments, cfg) == nil
}

// RequirementList expands a unit's requirement map into a flat sorted slot
// list for display ({G:1, F:1, UTIL:2} -> [F G UTIL UTIL]). Units with no
// configured requirements fall back to the config's default slot list as-is.
func RequirementList(cfg league.UnitConfig) []player.Position {
	if len(cfg.Requirements) == 0 {
		return append([]player.Position(nil), cfg.FallbackRequirements...)
	}

	out := make([]player.Position, 0, cfg.RequirementSum())
	for pos, count := range cfg.Requirements {
		for i := 0; i < count; i++ {
			out = append(out, pos)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// PositionFilled reports whether any occupant of the unit carries exactly the
// given position code. Display-only; it never gates eligibility.
func PositionFilled(pos player.Position, unit league.Unit, assignments []SlotAssignment) bool {
	for _, a := range assignments {
		if a.Unit != unit {
			continue
		}
		if a.PlayerPosition == pos || player.Position(a.PlayerRawPosition) == pos {
			return true
		}
	}

	return false
}
