package usecase

import (
	"errors"
	"testing"

	"github.com/addthemup/hoopgeek-sub001/internal/infrastructure/repository/memory"
	"github.com/addthemup/hoopgeek-sub001/internal/platform/logging"
)

func newDraftService() (*DraftService, *memory.DraftRepository) {
	draftRepo := memory.NewDraftRepository()
	service := NewDraftService(
		memory.NewLeagueRepository(memory.SeedLeagues()),
		memory.NewTeamRepository(memory.SeedTeams()),
		draftRepo,
		logging.NewNop(),
	)
	return service, draftRepo
}

func TestDraftService_GetOrder_GeneratesAndPersistsOnFirstRead(t *testing.T) {
	service, draftRepo := newDraftService()

	// Downtown Dynasty: 4 teams, 13 rounds.
	picks, err := service.GetOrder(t.Context(), memory.LeagueIDDowntown)
	if err != nil {
		t.Fatalf("get order failed: %v", err)
	}
	if len(picks) != 52 {
		t.Fatalf("expected 52 picks, got %d", len(picks))
	}

	for i, pick := range picks {
		if pick.PickNumber != i+1 {
			t.Fatalf("expected contiguous pick numbers, got %d at index %d", pick.PickNumber, i)
		}
	}

	// Round 2 walks round 1 backwards.
	round1Teams := []string{picks[0].TeamID, picks[1].TeamID, picks[2].TeamID, picks[3].TeamID}
	for i := 0; i < 4; i++ {
		if picks[4+i].TeamID != round1Teams[3-i] {
			t.Fatalf("expected round 2 reversed, slot %d got %s", i, picks[4+i].TeamID)
		}
	}

	stored, err := draftRepo.ListByLeague(t.Context(), memory.LeagueIDDowntown)
	if err != nil {
		t.Fatalf("list stored picks failed: %v", err)
	}
	if len(stored) != 52 {
		t.Fatalf("expected order persisted on first read, got %d picks", len(stored))
	}
}

func TestDraftService_GetPreview_CapsRounds(t *testing.T) {
	service, _ := newDraftService()

	rounds, err := service.GetPreview(t.Context(), memory.LeagueIDDowntown, 0)
	if err != nil {
		t.Fatalf("get preview failed: %v", err)
	}
	if len(rounds) != 3 {
		t.Fatalf("expected default 3 preview rounds, got %d", len(rounds))
	}

	full, err := service.GetOrder(t.Context(), memory.LeagueIDDowntown)
	if err != nil {
		t.Fatalf("get order failed: %v", err)
	}

	i := 0
	for _, round := range rounds {
		for _, pick := range round.Picks {
			if pick != full[i] {
				t.Fatalf("preview diverged from stored order at pick %d", i+1)
			}
			i++
		}
	}

	wide, err := service.GetPreview(t.Context(), memory.LeagueIDDowntown, 100)
	if err != nil {
		t.Fatalf("get wide preview failed: %v", err)
	}
	if len(wide) != 13 {
		t.Fatalf("expected all 13 rounds when cap exceeds total, got %d", len(wide))
	}
}

func TestDraftService_SwapFirstRoundPicks_RebuildsLaterRounds(t *testing.T) {
	service, _ := newDraftService()

	original, err := service.GetOrder(t.Context(), memory.LeagueIDDowntown)
	if err != nil {
		t.Fatalf("get order failed: %v", err)
	}

	swapped, err := service.SwapFirstRoundPicks(t.Context(), memory.LeagueIDDowntown, 1, 4)
	if err != nil {
		t.Fatalf("swap failed: %v", err)
	}

	if swapped[0].TeamID != original[3].TeamID || swapped[3].TeamID != original[0].TeamID {
		t.Fatal("expected first-round picks 1 and 4 exchanged")
	}
	// Round 2 mirrors the new round 1.
	if swapped[4].TeamID != swapped[3].TeamID || swapped[7].TeamID != swapped[0].TeamID {
		t.Fatal("expected round 2 rebuilt from the swapped round 1")
	}

	stored, err := service.GetOrder(t.Context(), memory.LeagueIDDowntown)
	if err != nil {
		t.Fatalf("get order after swap failed: %v", err)
	}
	if stored[0].TeamID != swapped[0].TeamID {
		t.Fatal("expected swapped order persisted")
	}
}

func TestDraftService_CompletePick(t *testing.T) {
	service, _ := newDraftService()

	if _, err := service.GetOrder(t.Context(), memory.LeagueIDDowntown); err != nil {
		t.Fatalf("get order failed: %v", err)
	}

	if err := service.CompletePick(t.Context(), memory.LeagueIDDowntown, 1); err != nil {
		t.Fatalf("complete pick failed: %v", err)
	}

	picks, err := service.GetOrder(t.Context(), memory.LeagueIDDowntown)
	if err != nil {
		t.Fatalf("get order failed: %v", err)
	}
	if !picks[0].Completed {
		t.Fatal("expected pick 1 marked completed")
	}

	err = service.CompletePick(t.Context(), memory.LeagueIDDowntown, 999)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown pick, got %v", err)
	}
}

func TestDraftService_GetOrder_FailsWithoutTeams(t *testing.T) {
	draftRepo := memory.NewDraftRepository()
	service := NewDraftService(
		memory.NewLeagueRepository(memory.SeedLeagues()),
		memory.NewTeamRepository(nil),
		draftRepo,
		logging.NewNop(),
	)

	_, err := service.GetOrder(t.Context(), memory.LeagueIDDowntown)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for league without teams, got %v", err)
	}
}
