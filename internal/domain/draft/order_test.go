package draft

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func slots(teamIDs ...string) []TeamSlot {
	out := make([]TeamSlot, 0, len(teamIDs))
	for i, id := range teamIDs {
		out = append(out, TeamSlot{TeamID: id, Position: i + 1})
	}
	return out
}

func TestGenerateOrderSnakes(t *testing.T) {
	order, err := GenerateOrder("lg-1", slots("A", "B", "C", "D"), 3)
	require.NoError(t, err, "GenerateOrder error")
	require.Len(t, order, 12, "expected rounds*teams picks")

	wantTeams := []string{
		"A", "B", "C", "D", // round 1 forward
		"D", "C", "B", "A", // round 2 reversed
		"A", "B", "C", "D", // round 3 forward again
	}
	for i, pick := range order {
		assert.Equalf(t, i+1, pick.PickNumber, "pick %d number", i)
		assert.Equalf(t, i/4+1, pick.Round, "pick %d round", i)
		assert.Equalf(t, wantTeams[i], pick.TeamID, "pick %d team", i)
		assert.False(t, pick.Completed, "fresh picks must not be completed")
	}
}

func TestGenerateOrderEvenRoundsMirrorRoundOne(t *testing.T) {
	firstRound := slots("A", "B", "C", "D", "E")
	order, err := GenerateOrder("lg-1", firstRound, 4)
	require.NoError(t, err)

	n := len(firstRound)
	byRound := GroupByRound(order)
	for _, round := range byRound {
		for i, pick := range round.Picks {
			want := firstRound[i].TeamID
			if round.Round%2 == 0 {
				want = firstRound[n-1-i].TeamID
			}
			assert.Equalf(t, want, pick.TeamID, "round %d slot %d", round.Round, i)
		}
	}
}

func TestGenerateOrderSortsUnorderedSlots(t *testing.T) {
	unordered := []TeamSlot{
		{TeamID: "C", Position: 3},
		{TeamID: "A", Position: 1},
		{TeamID: "B", Position: 2},
	}

	order, err := GenerateOrder("lg-1", unordered, 1)
	require.NoError(t, err)
	assert.Equal(t, "A", order[0].TeamID)
	assert.Equal(t, "B", order[1].TeamID)
	assert.Equal(t, "C", order[2].TeamID)
}

func TestGenerateOrderFailsFast(t *testing.T) {
	_, err := GenerateOrder("lg-1", nil, 3)
	assert.ErrorIs(t, err, ErrNoTeams)

	_, err = GenerateOrder("lg-1", slots("A", "B"), 0)
	assert.ErrorIs(t, err, ErrInvalidRounds)
}

func TestGeneratePreviewMatchesTruncatedFullOrder(t *testing.T) {
	firstRound := slots("A", "B", "C", "D")

	full, err := GenerateOrder("lg-1", firstRound, 10)
	require.NoError(t, err)

	preview, err := GeneratePreview("lg-1", firstRound, 10, 3)
	require.NoError(t, err)
	require.Len(t, preview, 3, "preview must cap at 3 rounds")

	i := 0
	for _, round := range preview {
		for _, pick := range round.Picks {
			assert.Equal(t, full[i], pick, "preview diverged from full order at pick %d", i+1)
			i++
		}
	}
}

func TestGeneratePreviewCapBeyondRoundsIsFullOrder(t *testing.T) {
	firstRound := slots("A", "B", "C")

	full, err := GenerateOrder("lg-1", firstRound, 2)
	require.NoError(t, err)

	preview, err := GeneratePreview("lg-1", firstRound, 2, 10)
	require.NoError(t, err)

	flattened := make([]Pick, 0, len(full))
	for _, round := range preview {
		flattened = append(flattened, round.Picks...)
	}
	assert.Equal(t, full, flattened)
}

func TestSwapFirstRoundRebuildsDerivedRounds(t *testing.T) {
	order, err := GenerateOrder("lg-1", slots("A", "B", "C", "D"), 2)
	require.NoError(t, err)

	// Swap the slots of pick 1 (team A) and pick 4 (team D).
	swapped, err := SwapFirstRound(order, 1, 4)
	require.NoError(t, err)
	require.Len(t, swapped, len(order))

	wantTeams := []string{
		"D", "B", "C", "A", // round 1 with A and D exchanged
		"A", "C", "B", "D", // round 2 re-derived from the new round 1
	}
	for i, pick := range swapped {
		assert.Equalf(t, wantTeams[i], pick.TeamID, "pick %d team after swap", i+1)
		assert.Equalf(t, i+1, pick.PickNumber, "pick %d number after swap", i+1)
	}
}

func TestSwapFirstRoundRejectsUnknownPicks(t *testing.T) {
	order, err := GenerateOrder("lg-1", slots("A", "B"), 2)
	require.NoError(t, err)

	_, err = SwapFirstRound(order, 1, 3)
	assert.ErrorIs(t, err, ErrPickNotFound, "pick 3 is in round 2, not round 1")

	_, err = SwapFirstRound(order, 2, 2)
	assert.ErrorIs(t, err, ErrPickNotFound)
}
