package storage

import (
	"sync"
	"testing"

	"github.com/aliskhannn/football-quiz-bot/internal/domain/entities"
)

func TestSessionStore(t *testing.T) {
	store := NewSessionStore()

	if store.Get(1) != nil {
		t.Fatal("empty store must return nil")
	}

	session := entities.NewQuizSession("players", []entities.Question{
		{Text: "q", Options: []string{"a", "b"}},
	})
	store.Set(1, session)

	if store.Get(1) != session {
		t.Error("Get must return the stored session")
	}
	if store.Get(2) != nil {
		t.Error("sessions must be independent per user")
	}

	store.Clear(1)
	if store.Get(1) != nil {
		t.Error("Clear must remove the session")
	}
}

func TestResultStoreSurvivesSessionTeardown(t *testing.T) {
	sessions := NewSessionStore()
	results := NewResultStore()

	sessions.Set(1, entities.NewQuizSession("players", []entities.Question{
		{Text: "q", Options: []string{"a", "b"}},
	}))
	results.Set(1, "players", entities.CategoryResult{Score: 2, Total: 3})
	sessions.Clear(1)

	got := results.Get(1)["players"]
	if got.Score != 2 || got.Total != 3 {
		t.Errorf("result after teardown = %+v, want {2 3}", got)
	}
}

func TestResultStoreOverwrites(t *testing.T) {
	results := NewResultStore()

	results.Set(1, "players", entities.CategoryResult{Score: 1, Total: 3})
	results.Set(1, "players", entities.CategoryResult{Score: 3, Total: 3})

	if got := results.Get(1)["players"]; got.Score != 3 {
		t.Errorf("result = %+v, want the later score", got)
	}
	if len(results.Get(2)) != 0 {
		t.Error("results must be independent per user")
	}
}

func TestResultStoreReturnsCopy(t *testing.T) {
	results := NewResultStore()
	results.Set(1, "players", entities.CategoryResult{Score: 1, Total: 3})

	snapshot := results.Get(1)
	snapshot["players"] = entities.CategoryResult{Score: 99, Total: 99}

	if got := results.Get(1)["players"]; got.Score != 1 {
		t.Errorf("mutating the snapshot changed the store: %+v", got)
	}
}

func TestMessageRefStore(t *testing.T) {
	refs := NewMessageRefStore()

	if _, ok := refs.Get(1, SurfaceMenu); ok {
		t.Fatal("empty store must report no ref")
	}

	refs.Set(1, SurfaceMenu, 10)
	refs.Set(1, SurfaceResult, 11)

	if id, ok := refs.Get(1, SurfaceMenu); !ok || id != 10 {
		t.Errorf("menu ref = %d/%v, want 10/true", id, ok)
	}

	// Overwrite, not merge.
	refs.Set(1, SurfaceMenu, 20)
	if id, _ := refs.Get(1, SurfaceMenu); id != 20 {
		t.Errorf("menu ref = %d, want 20 after overwrite", id)
	}

	refs.Clear(1, SurfaceMenu)
	if _, ok := refs.Get(1, SurfaceMenu); ok {
		t.Error("Clear must drop the ref")
	}
	if id, ok := refs.Get(1, SurfaceResult); !ok || id != 11 {
		t.Errorf("clearing one surface touched another: %d/%v", id, ok)
	}
}

func TestStoresAreSafeForConcurrentUse(t *testing.T) {
	sessions := NewSessionStore()
	results := NewResultStore()
	refs := NewMessageRefStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(userID int64) {
			defer wg.Done()
			sessions.Set(userID, entities.NewQuizSession("players", []entities.Question{
				{Text: "q", Options: []string{"a", "b"}},
			}))
			_ = sessions.Get(userID)
			results.Set(userID, "players", entities.CategoryResult{Score: 1, Total: 1})
			_ = results.Get(userID)
			refs.Set(userID, SurfaceMenu, int(userID))
			refs.Clear(userID, SurfaceMenu)
			sessions.Clear(userID)
		}(int64(i % 5))
	}
	wg.Wait()
}
