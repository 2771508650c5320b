package stats

import (
	"testing"

	"github.com/Dosada05/league-stats/models"
)

func TestOutcomeOf(t *testing.T) {
	noGoals := finished(1, []int{1}, 0, []int{2}, 0)
	noGoals.A.Goals = nil
	noGoals.B.Goals = intPtr(2)

	tests := []struct {
		name   string
		match  models.Match
		ok     bool
		winner models.Side
		goalsA int
		goalsB int
	}{
		{"a wins", finished(1, []int{1}, 3, []int{2}, 1), true, models.SideA, 3, 1},
		{"b wins", finished(1, []int{1}, 0, []int{2}, 2), true, models.SideB, 0, 2},
		{"draw", finished(1, []int{1}, 2, []int{2}, 2), true, models.SideNone, 2, 2},
		{"missing goals count as zero", noGoals, true, models.SideB, 0, 2},
		{"scheduled", withState(finished(1, []int{1}, 1, []int{2}, 0), models.MatchScheduled), false, models.SideNone, 0, 0},
		{"playing", withState(finished(1, []int{1}, 1, []int{2}, 0), models.MatchPlaying), false, models.SideNone, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o, ok := OutcomeOf(tt.match)
			if ok != tt.ok {
				t.Fatalf("OutcomeOf ok = %v, want %v", ok, tt.ok)
			}
			if o.Winner != tt.winner || o.GoalsA != tt.goalsA || o.GoalsB != tt.goalsB {
				t.Errorf("OutcomeOf = %+v, want winner %q %d-%d", o, tt.winner, tt.goalsA, tt.goalsB)
			}
		})
	}
}

func TestPlayable(t *testing.T) {
	nilGoals := finished(1, []int{1}, 1, []int{2}, 0)
	nilGoals.B.Goals = nil
	negative := finished(1, []int{1}, -1, []int{2}, 0)

	tests := []struct {
		name  string
		match models.Match
		want  bool
	}{
		{"valid", finished(1, []int{1}, 1, []int{2}, 0), true},
		{"valid team", finished(1, []int{1, 2}, 1, []int{3, 4}, 0), true},
		{"unfinished", withState(finished(1, []int{1}, 1, []int{2}, 0), models.MatchPlaying), false},
		{"empty side", finished(1, nil, 1, []int{2}, 0), false},
		{"nil goals", nilGoals, false},
		{"negative goals", negative, false},
		{"player on both sides", finished(1, []int{1, 2}, 1, []int{2, 3}, 0), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Playable(tt.match); got != tt.want {
				t.Errorf("Playable() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPointsFor(t *testing.T) {
	win := finished(1, []int{1, 2}, 3, []int{3, 4}, 1)
	draw := finished(2, []int{1}, 2, []int{2}, 2)
	invalid := finished(3, []int{1}, 1, []int{1}, 0)
	pending := withState(finished(4, []int{1}, 1, []int{2}, 0), models.MatchScheduled)

	tests := []struct {
		name   string
		match  models.Match
		player int
		want   int
		ok     bool
	}{
		{"winner", win, 1, PointsWin, true},
		{"winner teammate", win, 2, PointsWin, true},
		{"loser", win, 3, PointsLoss, true},
		{"draw", draw, 2, PointsDraw, true},
		{"not in match", win, 9, 0, false},
		{"on both sides", invalid, 1, 0, false},
		{"not finished", pending, 1, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := PointsFor(tt.match, tt.player)
			if got != tt.want || ok != tt.ok {
				t.Errorf("PointsFor(%d) = %d, %v; want %d, %v", tt.player, got, ok, tt.want, tt.ok)
			}
		})
	}
}
