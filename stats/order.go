package stats

import (
	"cmp"
	"slices"

	"github.com/Dosada05/league-stats/models"
)

// compareChrono orders by anchor date, then group (tournament), then order
// index, then match id. The id fallback keeps matches sharing a date deterministic.
func compareChrono(a, b models.Match) int {
	if c := a.Date.Compare(b.Date); c != 0 {
		return c
	}
	if c := cmp.Compare(a.GroupID(), b.GroupID()); c != 0 {
		return c
	}
	if c := cmp.Compare(a.OrderIndex, b.OrderIndex); c != 0 {
		return c
	}
	return cmp.Compare(a.ID, b.ID)
}

// Chronological returns a sorted copy and leaves the input untouched.
func Chronological(matches []models.Match) []models.Match {
	out := slices.Clone(matches)
	slices.SortStableFunc(out, compareChrono)
	return out
}

func isChronological(matches []models.Match) bool {
	return slices.IsSortedFunc(matches, compareChrono)
}

// chrono avoids a copy when the caller already passes sorted input.
func chrono(matches []models.Match) []models.Match {
	if isChronological(matches) {
		return matches
	}
	return Chronological(matches)
}
