package draft

import (
	"errors"
	"fmt"
	"sort"
)

// DefaultPreviewRounds bounds how many rounds the order preview materializes.
const DefaultPreviewRounds = 3

var (
	ErrNoTeams       = errors.New("draft order requires at least one team")
	ErrInvalidRounds = errors.New("draft order requires at least one round")
	ErrPickNotFound  = errors.New("draft pick not found")
)

// GenerateOrder produces the complete snake order: odd rounds walk the
// first-round slots forward, even rounds walk them in reverse. Pick numbers
// are contiguous from 1 regardless of direction.
func GenerateOrder(leagueID string, firstRound []TeamSlot, totalRounds int) ([]Pick, error) {
	n := len(firstRound)
	if n == 0 {
		return nil, ErrNoTeams
	}
	if totalRounds < 1 {
		return nil, ErrInvalidRounds
	}

	slots := append([]TeamSlot(nil), firstRound...)
	sort.Slice(slots, func(i, j int) bool { return slots[i].Position < slots[j].Position })

	picks := make([]Pick, 0, totalRounds*n)
	for round := 1; round <= totalRounds; round++ {
		reverse := round%2 == 0
		for i := 0; i < n; i++ {
			slotIndex := i
			if reverse {
				slotIndex = n - 1 - i
			}
			picks = append(picks, Pick{
				LeagueID:     leagueID,
				Round:        round,
				PickNumber:   (round-1)*n + i + 1,
				TeamID:       slots[slotIndex].TeamID,
				TeamPosition: slots[slotIndex].Position,
			})
		}
	}

	return picks, nil
}

// GeneratePreview materializes at most previewRoundCap rounds, grouped by
// round. The covered rounds are identical to a truncated GenerateOrder; the
// cap only bounds rendering cost. A cap <= 0 means DefaultPreviewRounds.
func GeneratePreview(leagueID string, firstRound []TeamSlot, totalRounds, previewRoundCap int) ([]RoundPicks, error) {
	if previewRoundCap <= 0 {
		previewRoundCap = DefaultPreviewRounds
	}
	rounds := totalRounds
	if rounds > previewRoundCap {
		rounds = previewRoundCap
	}

	picks, err := GenerateOrder(leagueID, firstRound, rounds)
	if err != nil {
		return nil, err
	}

	return GroupByRound(picks), nil
}

// GroupByRound splits a flat pick sequence into per-round groups, in order.
func GroupByRound(picks []Pick) []RoundPicks {
	out := make([]RoundPicks, 0)
	for _, pick := range picks {
		if len(out) == 0 || out[len(out)-1].Round != pick.Round {
			out = append(out, RoundPicks{Round: pick.Round})
		}
		last := &out[len(out)-1]
		last.Picks = append(last.Picks, pick)
	}

	return out
}

// SwapFirstRound exchanges the first-round positions of two picks and
// rebuilds the full order from the resulting first-round slot assignment.
// Later rounds are derived from round 1 by the snake rule, so a first-round
// swap always invalidates them; regenerating here keeps the stored order and
// the derivation rule consistent.
func SwapFirstRound(order []Pick, pickNumberA, pickNumberB int) ([]Pick, error) {
	if len(order) == 0 {
		return nil, ErrNoTeams
	}
	if pickNumberA == pickNumberB {
		return nil, fmt.Errorf("%w: cannot swap a pick with itself", ErrPickNotFound)
	}

	totalRounds := 0
	firstRound := make([]TeamSlot, 0)
	indexA, indexB := -1, -1
	for _, pick := range order {
		if pick.Round > totalRounds {
			totalRounds = pick.Round
		}
		if pick.Round != 1 {
			continue
		}
		if pick.PickNumber == pickNumberA {
			indexA = len(firstRound)
		}
		if pick.PickNumber == pickNumberB {
			indexB = len(firstRound)
		}
		firstRound = append(firstRound, TeamSlot{TeamID: pick.TeamID, Position: pick.TeamPosition})
	}

	if indexA < 0 {
		return nil, fmt.Errorf("%w: first-round pick %d", ErrPickNotFound, pickNumberA)
	}
	if indexB < 0 {
		return nil, fmt.Errorf("%w: first-round pick %d", ErrPickNotFound, pickNumberB)
	}

	firstRound[indexA].Position, firstRound[indexB].Position =
		firstRound[indexB].Position, firstRound[indexA].Position

	return GenerateOrder(order[0].LeagueID, firstRound, totalRounds)
}
