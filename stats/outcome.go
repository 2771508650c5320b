// Package stats derives ratings, tables, form and streaks from an immutable
// match history. Every function here is pure: the same ordered input always
// yields the same output and nothing is written back to the history.
package stats

import "github.com/Dosada05/league-stats/models"

type Result string

const (
	ResultWin  Result = "win"
	ResultDraw Result = "draw"
	ResultLoss Result = "loss"
)

// Score is the actual Elo score of the result.
func (r Result) Score() float64 {
	switch r {
	case ResultWin:
		return 1
	case ResultDraw:
		return 0.5
	default:
		return 0
	}
}

type Outcome struct {
	Winner models.Side
	GoalsA int
	GoalsB int
}

func (o Outcome) IsDraw() bool {
	return o.Winner == models.SideNone
}

// ResultFor returns the result seen from the given side.
func (o Outcome) ResultFor(side models.Side) Result {
	switch {
	case o.IsDraw():
		return ResultDraw
	case o.Winner == side:
		return ResultWin
	default:
		return ResultLoss
	}
}

// GoalsFor returns goals scored and conceded by the given side.
func (o Outcome) GoalsFor(side models.Side) (scored, conceded int) {
	if side == models.SideB {
		return o.GoalsB, o.GoalsA
	}
	return o.GoalsA, o.GoalsB
}

// OutcomeOf reports the winner and goal tallies of a finished match.
// Missing goals count as 0. ok is false for matches that are not finished.
func OutcomeOf(m models.Match) (o Outcome, ok bool) {
	if !m.IsFinished() {
		return Outcome{}, false
	}
	o = Outcome{GoalsA: goals(m.A), GoalsB: goals(m.B)}
	switch {
	case o.GoalsA > o.GoalsB:
		o.Winner = models.SideA
	case o.GoalsB > o.GoalsA:
		o.Winner = models.SideB
	}
	return o, true
}

func goals(s models.MatchSide) int {
	if s.Goals == nil {
		return 0
	}
	return *s.Goals
}

// Playable reports whether a match may take part in a statistical fold:
// finished, both sides non-empty with recorded goals, and no player on both sides.
func Playable(m models.Match) bool {
	if !m.IsFinished() {
		return false
	}
	if len(m.A.PlayerIDs) == 0 || len(m.B.PlayerIDs) == 0 {
		return false
	}
	if m.A.Goals == nil || m.B.Goals == nil || *m.A.Goals < 0 || *m.B.Goals < 0 {
		return false
	}
	seen := make(map[int]struct{}, len(m.A.PlayerIDs))
	for _, id := range m.A.PlayerIDs {
		seen[id] = struct{}{}
	}
	for _, id := range m.B.PlayerIDs {
		if _, dup := seen[id]; dup {
			return false
		}
	}
	return true
}
