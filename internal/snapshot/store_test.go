package snapshot

import (
	"testing"
	"time"

	"github.com/courtside-live/livestats/internal/domain"
)

func TestStoreEmpty(t *testing.T) {
	store := NewStore()

	if _, ok := store.Bytes(); ok {
		t.Fatal("empty store should report no snapshot")
	}
	if _, ok := store.Game(); ok {
		t.Fatal("empty store should decode no game")
	}
	if !store.UpdatedAt().IsZero() {
		t.Fatal("empty store should have zero update time")
	}
}

func TestStoreUpdate(t *testing.T) {
	store := NewStore()
	now := time.Date(2024, 2, 9, 19, 30, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	live := domain.NewGame()
	live.Status = domain.StatusInProgress
	live.Clock = "07:41"
	live.HomeTeam = &domain.Team{Number: 1, Name: "Dragons", IsHome: true,
		Players: map[int]*domain.Player{4: {Number: 4, FirstName: "Ava", LastName: "Stone"}}}
	live.AwayTeam = &domain.Team{Number: 2, Name: "Comets",
		Players: map[int]*domain.Player{}}
	store.Update(live)

	if !store.UpdatedAt().Equal(now) {
		t.Fatalf("updatedAt = %v, want %v", store.UpdatedAt(), now)
	}

	game, ok := store.Game()
	if !ok {
		t.Fatal("snapshot should be present")
	}
	if game.Status != domain.StatusInProgress || game.Clock != "07:41" {
		t.Fatalf("decoded game wrong: %+v", game)
	}
	if game.HomeTeam == nil || game.HomeTeam.Name != "Dragons" {
		t.Fatalf("decoded home team wrong: %+v", game.HomeTeam)
	}
}

func TestStoreSnapshotIsDetached(t *testing.T) {
	store := NewStore()

	live := domain.NewGame()
	live.Clock = "05:00"
	store.Update(live)

	// Mutating the live state after an update must not leak into the
	// already-stored snapshot.
	live.Clock = "04:59"
	game, _ := store.Game()
	if game.Clock != "05:00" {
		t.Fatalf("snapshot clock = %q, want %q", game.Clock, "05:00")
	}

	// Mutating a decoded copy must not affect later reads.
	game.Clock = "junk"
	again, _ := store.Game()
	if again.Clock != "05:00" {
		t.Fatal("decoded copies must be independent")
	}
}

func TestStoreUpdateReplaces(t *testing.T) {
	store := NewStore()

	live := domain.NewGame()
	live.CurrentPeriod = 1
	store.Update(live)
	live.CurrentPeriod = 2
	store.Update(live)

	game, _ := store.Game()
	if game.CurrentPeriod != 2 {
		t.Fatalf("period = %d, want 2", game.CurrentPeriod)
	}
}
