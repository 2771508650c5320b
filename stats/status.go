package stats

import "github.com/Dosada05/league-stats/models"

// DeriveStatus computes a tournament status from its match states: draft when
// there are no matches or all are scheduled, done when all are finished and
// live otherwise.
func DeriveStatus(matches []models.Match) models.TournamentStatus {
	if len(matches) == 0 {
		return models.TournamentDraft
	}
	scheduled, finished := 0, 0
	for _, m := range matches {
		switch m.State {
		case models.MatchScheduled:
			scheduled++
		case models.MatchFinished:
			finished++
		}
	}
	switch len(matches) {
	case scheduled:
		return models.TournamentDraft
	case finished:
		return models.TournamentDone
	default:
		return models.TournamentLive
	}
}
