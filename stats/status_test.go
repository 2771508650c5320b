package stats

import (
	"testing"

	"github.com/Dosada05/league-stats/models"
)

func TestDeriveStatus(t *testing.T) {
	m := func(s models.MatchState) models.Match { return models.Match{State: s} }
	tests := []struct {
		name    string
		matches []models.Match
		want    models.TournamentStatus
	}{
		{"no matches", nil, models.TournamentDraft},
		{"all scheduled", []models.Match{m(models.MatchScheduled), m(models.MatchScheduled)}, models.TournamentDraft},
		{"all finished", []models.Match{m(models.MatchFinished), m(models.MatchFinished)}, models.TournamentDone},
		{"mixed", []models.Match{m(models.MatchFinished), m(models.MatchScheduled)}, models.TournamentLive},
		{"playing", []models.Match{m(models.MatchPlaying)}, models.TournamentLive},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DeriveStatus(tt.matches); got != tt.want {
				t.Errorf("DeriveStatus() = %q, want %q", got, tt.want)
			}
		})
	}
}
