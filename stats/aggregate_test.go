package stats

import (
	"testing"

	"github.com/Dosada05/league-stats/models"
)

func TestFoldMatches(t *testing.T) {
	matches := []models.Match{
		finished(1, []int{1}, 3, []int{2}, 1),
		finished(2, []int{2}, 2, []int{1}, 2),
		finished(3, []int{3, 1}, 0, []int{2, 4}, 1),
		withState(finished(4, []int{1}, 9, []int{2}, 0), models.MatchScheduled),
		finished(5, []int{3}, 1, []int{4}, 0),
	}
	got := FoldMatches(1, matches)
	want := models.Record{GamesPlayed: 3, Wins: 1, Draws: 1, Losses: 1, ScoreFor: 5, ScoreAgainst: 4, Points: 4}
	if got != want {
		t.Errorf("FoldMatches = %+v, want %+v", got, want)
	}
	if got.ScoreDifference() != 1 {
		t.Errorf("ScoreDifference = %d, want 1", got.ScoreDifference())
	}

	if empty := FoldMatches(9, matches); empty != (models.Record{}) {
		t.Errorf("FoldMatches for absent player = %+v, want zero record", empty)
	}
}

func TestFoldAllPointsIdentity(t *testing.T) {
	matches := replayFixture()
	for id, rec := range FoldAll(matches) {
		if rec.Points != 3*rec.Wins+rec.Draws {
			t.Errorf("player %d: points %d != 3*%d + %d", id, rec.Points, rec.Wins, rec.Draws)
		}
		if rec.GamesPlayed != rec.Wins+rec.Draws+rec.Losses {
			t.Errorf("player %d: played %d != sum of results", id, rec.GamesPlayed)
		}
		if single := FoldMatches(id, matches); single != *rec {
			t.Errorf("player %d: FoldAll %+v disagrees with FoldMatches %+v", id, *rec, single)
		}
	}
}

func TestDrawScoresOneEach(t *testing.T) {
	draw := finished(1, []int{1, 2}, 2, []int{3, 4}, 2)
	for _, id := range []int{1, 2, 3, 4} {
		rec := FoldMatches(id, []models.Match{draw})
		if rec.Points != 1 || rec.Draws != 1 {
			t.Errorf("player %d after 2-2 = %+v, want one draw and 1 point", id, rec)
		}
	}
}
