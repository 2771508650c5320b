package stats

import (
	"time"

	"github.com/Dosada05/league-stats/models"
)

var day0 = time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)

func intPtr(v int) *int { return &v }

// finished builds a finished friendly-style match dated day0.
func finished(id int, a []int, goalsA int, b []int, goalsB int) models.Match {
	return models.Match{
		ID:    id,
		State: models.MatchFinished,
		Date:  day0,
		Mode:  modeFor(len(a), len(b)),
		A:     models.MatchSide{Side: models.SideA, PlayerIDs: a, Goals: intPtr(goalsA)},
		B:     models.MatchSide{Side: models.SideB, PlayerIDs: b, Goals: intPtr(goalsB)},
	}
}

func modeFor(a, b int) models.Mode {
	switch {
	case a == 1 && b == 1:
		return models.Mode1v1
	case a == 2 && b == 2:
		return models.Mode2v2
	default:
		return ""
	}
}

// inTournament moves m into tournament tid held day days after day0.
func inTournament(m models.Match, tid, day, order int) models.Match {
	m.TournamentID = intPtr(tid)
	m.Date = day0.AddDate(0, 0, day)
	m.OrderIndex = order
	return m
}

func withState(m models.Match, s models.MatchState) models.Match {
	m.State = s
	return m
}

func players(names ...string) []models.Player {
	out := make([]models.Player, len(names))
	for i, n := range names {
		out[i] = models.Player{ID: i + 1, DisplayName: n}
	}
	return out
}
