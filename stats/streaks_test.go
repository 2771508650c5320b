package stats

import (
	"errors"
	"slices"
	"testing"

	"github.com/Dosada05/league-stats/models"
)

func TestFindRuns(t *testing.T) {
	tests := []struct {
		name    string
		seq     []bool
		current *Run
		record  Run
	}{
		{"empty", nil, nil, Run{}},
		{"all false", []bool{false, false}, nil, Run{}},
		{"ongoing", []bool{true, false, true, true}, &Run{Length: 2, Start: 2, End: 3}, Run{Length: 2, Start: 2, End: 3}},
		{"broken", []bool{true, true, true, false}, nil, Run{Length: 3, Start: 0, End: 2}},
		{"tie goes to most recent", []bool{true, true, false, true, true, false}, nil, Run{Length: 2, Start: 3, End: 4}},
		{"record before current", []bool{true, true, true, false, true}, &Run{Length: 1, Start: 4, End: 4}, Run{Length: 3, Start: 0, End: 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			current, record := FindRuns(tt.seq, func(b bool) bool { return b })
			if (current == nil) != (tt.current == nil) || (current != nil && *current != *tt.current) {
				t.Errorf("current = %+v, want %+v", current, tt.current)
			}
			if record != tt.record {
				t.Errorf("record = %+v, want %+v", record, tt.record)
			}
		})
	}
}

func categoryByKey(t *testing.T, cats []models.StreakCategory, key string) models.StreakCategory {
	t.Helper()
	for _, c := range cats {
		if c.Key == key {
			return c
		}
	}
	t.Fatalf("category %q missing", key)
	return models.StreakCategory{}
}

func TestDrawStreakPredicates(t *testing.T) {
	draw := finished(1, []int{1, 2}, 2, []int{3, 4}, 2)
	events := MatchEvents([]models.Match{draw})
	for _, id := range []int{1, 2, 3, 4} {
		ev := events[id]
		if len(ev) != 1 {
			t.Fatalf("player %d: %d events, want 1", id, len(ev))
		}
		for _, c := range matchCategories {
			got := c.pred(ev[0])
			want := c.key != CategoryWin && c.key != CategoryCleanSheet
			if got != want {
				t.Errorf("player %d %s = %v, want %v", id, c.key, got, want)
			}
		}
	}
}

func TestStreaksBoard(t *testing.T) {
	ps := players("Ann", "Bob", "Cy")
	matches := []models.Match{
		inTournament(finished(1, []int{1}, 2, []int{2}, 0), 1, 0, 1),
		inTournament(finished(2, []int{1}, 1, []int{3}, 0), 1, 0, 2),
		inTournament(finished(3, []int{2}, 1, []int{3}, 1), 1, 0, 3),
		inTournament(finished(4, []int{2}, 3, []int{1}, 1), 2, 1, 1),
	}
	cats, err := Streaks(StreakQuery{Players: ps, Matches: matches, Tournaments: []models.Tournament{
		{ID: 1, Date: day0, Status: models.TournamentDone},
		{ID: 2, Date: day0.AddDate(0, 0, 1), Status: models.TournamentDone, PlayerIDs: []int{1, 2}},
	}})
	if err != nil {
		t.Fatalf("Streaks: %v", err)
	}
	keys := make([]string, len(cats))
	for i, c := range cats {
		keys[i] = c.Key
	}
	if !slices.Equal(keys, Categories()) {
		t.Fatalf("categories = %v, want %v", keys, Categories())
	}

	win := categoryByKey(t, cats, CategoryWin)
	if win.RecordsTotal != 2 || win.Records[0].Player.ID != 1 || win.Records[0].Length != 2 {
		t.Errorf("win records = %+v", win.Records)
	}
	if win.CurrentTotal != 1 || win.Current[0].Player.ID != 2 || win.Current[0].Length != 1 {
		t.Errorf("win current = %+v", win.Current)
	}

	unbeaten := categoryByKey(t, cats, CategoryUnbeaten)
	if got := unbeaten.Records[0]; got.Player.ID != 1 || got.Length != 2 || !got.EndAt.Equal(day0) {
		t.Errorf("unbeaten leader = %+v", got)
	}
	// Bob's two-match run ends a day later than Ann's, so it sorts after.
	if got := unbeaten.Records[1]; got.Player.ID != 2 || got.Length != 2 {
		t.Errorf("unbeaten second = %+v", got)
	}

	part := categoryByKey(t, cats, CategoryParticipation)
	if part.CurrentTotal != 2 || part.Current[0].Length != 2 || part.Current[1].Length != 2 {
		t.Errorf("participation current = %+v", part.Current)
	}
	if part.RecordsTotal != 3 {
		t.Errorf("participation records total = %d, want 3", part.RecordsTotal)
	}
}

func TestStreaksFilters(t *testing.T) {
	matches := []models.Match{
		finished(1, []int{1}, 1, []int{2}, 0),
		finished(2, []int{1}, 1, []int{3}, 0),
		finished(3, []int{2}, 1, []int{3}, 0),
	}
	cats, err := Streaks(StreakQuery{Players: players("A", "B", "C"), Matches: matches, Category: CategoryWin, PlayerID: intPtr(2), Limit: 1})
	if err != nil {
		t.Fatalf("Streaks: %v", err)
	}
	if len(cats) != 1 || cats[0].Key != CategoryWin {
		t.Fatalf("categories = %+v, want only %s", cats, CategoryWin)
	}
	if cats[0].RecordsTotal != 1 || cats[0].Records[0].Player.ID != 2 {
		t.Errorf("records = %+v, want player 2 only", cats[0].Records)
	}

	all, err := Streaks(StreakQuery{Matches: matches, Category: CategoryWin, Limit: 1})
	if err != nil {
		t.Fatalf("Streaks: %v", err)
	}
	if all[0].RecordsTotal != 2 || len(all[0].Records) != 1 {
		t.Errorf("limit not applied: total %d, rows %d", all[0].RecordsTotal, len(all[0].Records))
	}

	if _, err := Streaks(StreakQuery{Category: "nope"}); !errors.Is(err, ErrUnknownCategory) {
		t.Errorf("unknown category err = %v", err)
	}
}
