package stats

import (
	"cmp"
	"slices"
	"strings"

	"github.com/Dosada05/league-stats/models"
)

func compareNames(a, b models.Player) int {
	return strings.Compare(strings.ToLower(a.DisplayName), strings.ToLower(b.DisplayName))
}

// Standings ranks the participants over the playable matches. Players who
// appear in matches without being listed are added with a placeholder name.
// The order is total: points, goal difference and goals for descending, then
// lowercased name, then player id.
func Standings(matches []models.Match, participants []models.Player) []models.StandingsRow {
	dir := NewDirectory(participants)
	records := FoldAll(matches)

	rows := make([]models.StandingsRow, 0, len(participants)+len(records))
	listed := make(map[int]struct{}, len(participants))
	add := func(p models.Player) {
		if _, dup := listed[p.ID]; dup {
			return
		}
		listed[p.ID] = struct{}{}
		row := models.StandingsRow{PlayerID: p.ID, Name: p.DisplayName}
		if rec, ok := records[p.ID]; ok {
			row.Record = *rec
		}
		row.ScoreDifference = row.Record.ScoreDifference()
		rows = append(rows, row)
	}
	for _, p := range participants {
		add(p)
	}
	for id := range records {
		add(dir.Player(id))
	}

	slices.SortFunc(rows, compareStandings)
	rank := 0
	for i := range rows {
		if i == 0 || !sameNumbers(rows[i-1], rows[i]) {
			rank = i + 1
		}
		rows[i].Rank = rank
	}
	return rows
}

func compareStandings(a, b models.StandingsRow) int {
	if c := cmp.Compare(b.Points, a.Points); c != 0 {
		return c
	}
	if c := cmp.Compare(b.ScoreDifference, a.ScoreDifference); c != 0 {
		return c
	}
	if c := cmp.Compare(b.ScoreFor, a.ScoreFor); c != 0 {
		return c
	}
	if c := strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name)); c != 0 {
		return c
	}
	return cmp.Compare(a.PlayerID, b.PlayerID)
}

func sameNumbers(a, b models.StandingsRow) bool {
	return a.Points == b.Points && a.ScoreDifference == b.ScoreDifference && a.ScoreFor == b.ScoreFor
}

// Positions maps player id to competition rank (1,1,3) of sorted rows.
func Positions(rows []models.StandingsRow) map[int]int {
	out := make(map[int]int, len(rows))
	for _, r := range rows {
		out[r.PlayerID] = r.Rank
	}
	return out
}

// TopTie returns the players level with the leader on points, goal difference
// and goals for, leader included. Rows must be sorted.
func TopTie(rows []models.StandingsRow) []int {
	if len(rows) == 0 {
		return nil
	}
	ids := []int{rows[0].PlayerID}
	for _, r := range rows[1:] {
		if !sameNumbers(rows[0], r) {
			break
		}
		ids = append(ids, r.PlayerID)
	}
	return ids
}

// RequiresDecider reports whether first place is shared.
func RequiresDecider(rows []models.StandingsRow) bool {
	return len(TopTie(rows)) >= 2
}

// UniqueWinner returns the sole leader; ok is false for empty or tied tables.
func UniqueWinner(rows []models.StandingsRow) (int, bool) {
	top := TopTie(rows)
	if len(top) != 1 {
		return 0, false
	}
	return top[0], true
}
