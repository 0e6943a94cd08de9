package compose

import (
	"testing"

	"github.com/courtside-live/livestats/internal/domain"
)

func TestPlayerStatline(t *testing.T) {
	player := &domain.Player{
		Number: 4, FirstName: "Ava", LastName: "Stone",
		Stats: domain.PlayerStats{
			Points:                 18,
			Assists:                4,
			Blocks:                 1,
			ReboundsTotal:          7,
			FieldGoalsMade:         7,
			FieldGoalsAttempted:    12,
			FieldGoalsPercentage:   58.3,
			FreeThrowsMade:         2,
			FreeThrowsAttempted:    2,
			FreeThrowsPercentage:   100,
			ThreePointersAttempted: 3,
		},
	}

	want := "18 PTS, 2/2 FT, 7/12 FG, 7 REB, 4 AST, 1 BLK"
	if got := PlayerStatline(player); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestPlayerStatlineScoreless(t *testing.T) {
	player := &domain.Player{Number: 12}
	if got := PlayerStatline(player); got != "0 PTS" {
		t.Errorf("got %q, want %q", got, "0 PTS")
	}
}
