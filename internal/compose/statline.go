package compose

import (
	"fmt"
	"sort"

	"github.com/courtside-live/livestats/internal/domain"
)

type statEntry struct {
	label    string
	value    float64
	fraction string
}

// PlayerStatline renders a one-line stat summary: points first, then nonzero
// stats in descending order. Shooting splits show made/attempted fractions
// instead of the raw percentage.
func PlayerStatline(player *domain.Player) string {
	stats := player.Stats
	entries := []statEntry{
		{label: "AST", value: float64(stats.Assists)},
		{label: "BLK", value: float64(stats.Blocks)},
		{label: "REB", value: float64(stats.ReboundsTotal)},
		{label: "FG", value: stats.FieldGoalsPercentage,
			fraction: fraction(stats.FieldGoalsMade, stats.FieldGoalsAttempted)},
		{label: "3FG", value: stats.ThreePointersPercentage,
			fraction: fraction(stats.ThreePointersMade, stats.ThreePointersAttempted)},
		{label: "FT", value: stats.FreeThrowsPercentage,
			fraction: fraction(stats.FreeThrowsMade, stats.FreeThrowsAttempted)},
	}

	nonzero := entries[:0]
	for _, entry := range entries {
		if entry.value != 0 {
			nonzero = append(nonzero, entry)
		}
	}
	sort.SliceStable(nonzero, func(i, j int) bool {
		return nonzero[i].value > nonzero[j].value
	})

	output := fmt.Sprintf("%d PTS", stats.Points)
	for _, entry := range nonzero {
		if entry.fraction != "" {
			output += fmt.Sprintf(", %s %s", entry.fraction, entry.label)
			continue
		}
		output += fmt.Sprintf(", %d %s", int(entry.value), entry.label)
	}
	return output
}

func fraction(made, attempted int) string {
	return fmt.Sprintf("%d/%d", made, attempted)
}
