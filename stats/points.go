package stats

import (
	"slices"

	"github.com/Dosada05/league-stats/models"
)

const (
	PointsWin  = 3
	PointsDraw = 1
	PointsLoss = 0
)

func (r Result) Points() int {
	switch r {
	case ResultWin:
		return PointsWin
	case ResultDraw:
		return PointsDraw
	default:
		return PointsLoss
	}
}

// SideOf finds the side the player stood on. ok is false when the player is on
// neither side or, for invalid data, on both.
func SideOf(m models.Match, playerID int) (models.Side, bool) {
	inA := slices.Contains(m.A.PlayerIDs, playerID)
	inB := slices.Contains(m.B.PlayerIDs, playerID)
	switch {
	case inA && !inB:
		return models.SideA, true
	case inB && !inA:
		return models.SideB, true
	default:
		return models.SideNone, false
	}
}

// PointsFor returns the league points the player earned in the match.
// ok is false when the match is not finished or the player's side is undetermined;
// such matches are excluded from aggregates rather than counted as zero.
func PointsFor(m models.Match, playerID int) (int, bool) {
	o, ok := OutcomeOf(m)
	if !ok {
		return 0, false
	}
	side, ok := SideOf(m, playerID)
	if !ok {
		return 0, false
	}
	return o.ResultFor(side).Points(), true
}
