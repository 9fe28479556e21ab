package player

import (
	"fmt"
	"strings"
)

// Position is the short position code used by lineup rules.
type Position string

const (
	PositionGuard   Position = "G"
	PositionForward Position = "F"
	PositionCenter  Position = "C"
	PositionUtility Position = "UTIL"
)

var AllPositions = map[Position]struct{}{
	PositionGuard:   {},
	PositionForward: {},
	PositionCenter:  {},
	PositionUtility: {},
}

// positionByVerboseName maps known roster position labels to short codes.
// Hyphenated labels ("Guard-Forward") are resolved per segment, so only
// single-role names belong here.
var positionByVerboseName = map[string]Position{
	"guard":          PositionGuard,
	"point guard":    PositionGuard,
	"shooting guard": PositionGuard,
	"forward":        PositionForward,
	"small forward":  PositionForward,
	"power forward":  PositionForward,
	"center":         PositionCenter,
	"utility":        PositionUtility,
}

// Normalize resolves a raw roster position string to its primary short code.
// Short codes pass through unchanged. For verbose labels the first hyphen
// segment that resolves wins. The second result is false when nothing
// resolved; the code then degrades to F so downstream display keeps working,
// but callers are expected to log the raw value instead of trusting it.
func Normalize(raw string) (Position, bool) {
	trimmed := strings.TrimSpace(raw)
	if _, ok := AllPositions[Position(trimmed)]; ok {
		return Position(trimmed), true
	}

	for _, segment := range strings.Split(trimmed, "-") {
		if pos, ok := resolveSegment(segment); ok {
			return pos, true
		}
	}

	return PositionForward, false
}

// Eligible returns every short code a raw position string maps to, in segment
// order without duplicates. Dual-role labels ("Guard-Forward") yield both
// codes; unrecognized input yields the same degraded F as Normalize.
func Eligible(raw string) []Position {
	trimmed := strings.TrimSpace(raw)
	if _, ok := AllPositions[Position(trimmed)]; ok {
		return []Position{Position(trimmed)}
	}

	seen := make(map[Position]struct{}, 2)
	out := make([]Position, 0, 2)
	for _, segment := range strings.Split(trimmed, "-") {
		pos, ok := resolveSegment(segment)
		if !ok {
			continue
		}
		if _, dup := seen[pos]; dup {
			continue
		}
		seen[pos] = struct{}{}
		out = append(out, pos)
	}

	if len(out) == 0 {
		return []Position{PositionForward}
	}
	return out
}

func resolveSegment(segment string) (Position, bool) {
	candidate := strings.ToLower(strings.TrimSpace(segment))
	if candidate == "" {
		return "", false
	}
	if pos, ok := positionByVerboseName[candidate]; ok {
		return pos, true
	}

	switch {
	case strings.Contains(candidate, "guard"):
		return PositionGuard, true
	case strings.Contains(candidate, "forward"):
		return PositionForward, true
	case strings.Contains(candidate, "center"):
		return PositionCenter, true
	default:
		return "", false
	}
}

// Player is a draftable NBA athlete in a league's player pool.
type Player struct {
	ID           string
	LeagueID     string
	Name         string
	NBATeam      string
	JerseyNumber int
	RawPosition  string
	Position     Position
}

func (p Player) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("player id is required")
	}
	if p.LeagueID == "" {
		return fmt.Errorf("player league id is required")
	}
	if p.Name == "" {
		return fmt.Errorf("player name is required")
	}
	if _, ok := AllPositions[p.Position]; !ok {
		return fmt.Errorf("invalid player position: %s", p.Position)
	}

	return nil
}
