package league

import (
	"fmt"

	"github.com/addthemup/hoopgeek-sub001/internal/domain/player"
)

// Unit names a lineup group on the court board.
type Unit string

const (
	UnitStarters Unit = "starters"
	UnitRotation Unit = "rotation"
	UnitBench    Unit = "bench"
)

var AllUnits = map[Unit]struct{}{
	UnitStarters: {},
	UnitRotation: {},
	UnitBench:    {},
}

// ParseUnit validates a unit name coming from the wire.
func ParseUnit(raw string) (Unit, bool) {
	unit := Unit(raw)
	_, ok := AllUnits[unit]
	return unit, ok
}

// UnitConfig controls one lineup unit: how many players it holds, how its
// production is weighted, and which positions it asks for.
type UnitConfig struct {
	MaxPlayers int
	Multiplier float64
	// Requirements maps a position code to how many slots of it the unit
	// wants. Empty means the unit is open to any position.
	Requirements map[player.Position]int
	// FallbackRequirements is the slot list shown when Requirements is empty,
	// so the court board stays usable before a league configures its own
	// slots.
	FallbackRequirements []player.Position
}

// RequirementSum is the total number of position slots the unit asks for.
// Configurations where this exceeds MaxPlayers are tolerated but worth a
// warning upstream.
func (c UnitConfig) RequirementSum() int {
	total := 0
	for _, count := range c.Requirements {
		total += count
	}
	return total
}

type UnitConfigs map[Unit]UnitConfig

// DefaultUnitConfigs is the configuration a league starts with before its
// commissioner customizes units. The fallback slot lists mirror a standard
// basketball sheet: PG/SG/SF/PF/C starters collapsed to short codes, a mixed
// rotation, and an open bench.
func DefaultUnitConfigs() UnitConfigs {
	return UnitConfigs{
		UnitStarters: {
			MaxPlayers: 5,
			Multiplier: 1.0,
			FallbackRequirements: []player.Position{
				player.PositionGuard,
				player.PositionGuard,
				player.PositionForward,
				player.PositionForward,
				player.PositionCenter,
			},
		},
		UnitRotation: {
			MaxPlayers: 5,
			Multiplier: 0.75,
			FallbackRequirements: []player.Position{
				player.PositionGuard,
				player.PositionForward,
				player.PositionUtility,
				player.PositionUtility,
				player.PositionUtility,
			},
		},
		UnitBench: {
			MaxPlayers: 3,
			Multiplier: 0.5,
			FallbackRequirements: []player.Position{
				player.PositionUtility,
				player.PositionUtility,
				player.PositionUtility,
			},
		},
	}
}

// League is a fantasy-basketball league hosted on the platform.
type League struct {
	ID          string
	Name        string
	Season      string
	DraftRounds int
	IsDefault   bool
	Units       UnitConfigs
}

// UnitConfig resolves the league's configuration for a unit, falling back to
// the platform default when the league has none.
func (l League) UnitConfig(unit Unit) UnitConfig {
	if cfg, ok := l.Units[unit]; ok {
		return cfg
	}
	return DefaultUnitConfigs()[unit]
}

func (l League) Validate() error {
	if l.ID == "" {
		return fmt.Errorf("league id is required")
	}
	if l.Name == "" {
		return fmt.Errorf("league name is required")
	}
	if l.Season == "" {
		return fmt.Errorf("league season is required")
	}
	if l.DraftRounds < 1 {
		return fmt.Errorf("league draft rounds must be at least 1")
	}

	return nil
}
