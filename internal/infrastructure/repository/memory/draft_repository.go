package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/addthemup/hoopgeek-sub001/internal/domain/draft"
)

type DraftRepository struct {
	mu    sync.RWMutex
	items map[string][]draft.Pick
}

func NewDraftRepository() *DraftRepository {
	return &DraftRepository{
		items: make(map[string][]draft.Pick),
	}
}

func (r *DraftRepository) ListByLeague(_ context.Context, leagueID string) ([]draft.Pick, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	picks, ok := r.items[leagueID]
	if !ok {
		return nil, nil
	}

	out := append([]draft.Pick(nil), picks...)
	sort.Slice(out, func(i, j int) bool { return out[i].PickNumber < out[j].PickNumber })

	return out, nil
}

func (r *DraftRepository) ReplaceForLeague(_ context.Context, leagueID string, picks []draft.Pick) error {
	r.mu.Lock()
	r.items[leagueID] = append([]draft.Pick(nil), picks...)
	r.mu.Unlock()

	return nil
}

func (r *DraftRepository) MarkCompleted(_ context.Context, leagueID string, pickNumber int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	picks, ok := r.items[leagueID]
	if !ok {
		return false, nil
	}
	for i := range picks {
		if picks[i].PickNumber == pickNumber {
			picks[i].Completed = true
			return true, nil
		}
	}

	return false, nil
}
