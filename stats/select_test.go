package stats

import (
	"slices"
	"testing"

	"github.com/Dosada05/league-stats/models"
)

func selectHistory() History {
	friendly := finished(models.FriendlyMatchIDOffset+1, []int{1}, 1, []int{2}, 0)
	friendlyTeam := finished(models.FriendlyMatchIDOffset+2, []int{1, 2}, 1, []int{3, 4}, 0)
	return History{
		Tournaments: []models.Tournament{
			{ID: 1, Date: day0, Mode: models.Mode1v1, Status: models.TournamentDone},
			{ID: 2, Date: day0.AddDate(0, 0, 1), Mode: models.Mode2v2, Status: models.TournamentDone},
			{ID: 3, Date: day0.AddDate(0, 0, 2), Mode: models.Mode1v1, Status: models.TournamentLive},
			{ID: 4, Date: day0.AddDate(0, 0, 3), Mode: models.Mode1v1},
		},
		Matches: []models.Match{
			inTournament(finished(31, []int{1}, 1, []int{2}, 0), 3, 2, 1),
			inTournament(finished(21, []int{1, 2}, 1, []int{3, 4}, 0), 2, 1, 1),
			// Wrong side size for the tournament's mode.
			inTournament(finished(22, []int{1}, 1, []int{3, 4}, 0), 2, 1, 2),
			inTournament(finished(11, []int{1}, 1, []int{2}, 0), 1, 0, 1),
			inTournament(finished(41, []int{1}, 1, []int{2}, 0), 4, 3, 1),
			friendly,
			friendlyTeam,
		},
	}
}

func ids(matches []models.Match) []int {
	out := make([]int, len(matches))
	for i, m := range matches {
		out[i] = m.ID
	}
	return out
}

func TestSelect(t *testing.T) {
	f1, f2 := models.FriendlyMatchIDOffset+1, models.FriendlyMatchIDOffset+2
	h := selectHistory()
	// Tournament 4 has no stored status and derives done from its only finished match.
	tests := []struct {
		name string
		sel  Selection
		want []int
	}{
		{"tournaments overall", Selection{Mode: models.ModeOverall, Scope: models.ScopeTournaments}, []int{11, 21, 22, 41}},
		{"tournaments 1v1", Selection{Mode: models.Mode1v1, Scope: models.ScopeTournaments}, []int{11, 41}},
		{"tournaments 2v2", Selection{Mode: models.Mode2v2, Scope: models.ScopeTournaments}, []int{21}},
		{"include live", Selection{Mode: models.Mode1v1, Scope: models.ScopeTournaments, IncludeLive: true}, []int{11, 31, 41}},
		{"friendlies", Selection{Mode: models.ModeOverall, Scope: models.ScopeFriendlies}, []int{f1, f2}},
		{"both 1v1", Selection{Mode: models.Mode1v1, Scope: models.ScopeBoth}, []int{11, f1, 41}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ids(Select(h, tt.sel)); !slices.Equal(got, tt.want) {
				t.Errorf("Select = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDoneTournaments(t *testing.T) {
	got := selectHistory().DoneTournaments()
	gotIDs := make([]int, len(got))
	for i, tr := range got {
		gotIDs[i] = tr.ID
	}
	if !slices.Equal(gotIDs, []int{1, 2, 4}) {
		t.Errorf("DoneTournaments = %v, want [1 2 4]", gotIDs)
	}
}

func TestParticipantsInferredFromMatches(t *testing.T) {
	dir := NewDirectory(players("Ann", "Bob"))
	matches := []models.Match{finished(1, []int{2}, 1, []int{5}, 0), finished(2, []int{1}, 0, []int{2}, 0)}
	got := dir.Participants(models.Tournament{ID: 1}, matches)
	names := make([]string, len(got))
	for i, p := range got {
		names[i] = p.DisplayName
	}
	if !slices.Equal(names, []string{"Bob", "5", "Ann"}) {
		t.Errorf("participants = %v", names)
	}
}
