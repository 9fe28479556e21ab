package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/addthemup/hoopgeek-sub001/internal/domain/lineup"
)

type assignmentKey struct {
	leagueID string
	teamID   string
	playerID string
}

type LineupRepository struct {
	mu    sync.RWMutex
	items map[assignmentKey]lineup.SlotAssignment
}

func NewLineupRepository() *LineupRepository {
	return &LineupRepository{
		items: make(map[assignmentKey]lineup.SlotAssignment),
	}
}

func (r *LineupRepository) ListByTeam(_ context.Context, leagueID, teamID string) ([]lineup.SlotAssignment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]lineup.SlotAssignment, 0)
	for key, a := range r.items {
		if key.leagueID == leagueID && key.teamID == teamID {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PlayerID < out[j].PlayerID })

	return out, nil
}

func (r *LineupRepository) Upsert(_ context.Context, assignment lineup.SlotAssignment) error {
	key := assignmentKey{
		leagueID: assignment.LeagueID,
		teamID:   assignment.TeamID,
		playerID: assignment.PlayerID,
	}

	r.mu.Lock()
	r.items[key] = assignment
	r.mu.Unlock()

	return nil
}

func (r *LineupRepository) Delete(_ context.Context, leagueID, teamID, playerID string) (bool, error) {
	key := assignmentKey{leagueID: leagueID, teamID: teamID, playerID: playerID}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[key]; !ok {
		return false, nil
	}
	delete(r.items, key)

	return true, nil
}
