package stats

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/Dosada05/league-stats/models"
)

var ErrUnknownCategory = errors.New("unknown streak category")

// Run is a maximal stretch of true values, as inclusive indexes into the scanned sequence.
type Run struct {
	Length int
	Start  int
	End    int
}

// FindRuns scans seq once. current is the run ending at the last element, nil
// when the last element fails pred or seq is empty. record is the longest run;
// on equal length the most recent wins. record.Length is 0 when no element matches.
func FindRuns[T any](seq []T, pred func(T) bool) (current *Run, record Run) {
	length, start := 0, 0
	for i, v := range seq {
		if !pred(v) {
			length = 0
			continue
		}
		if length == 0 {
			start = i
		}
		length++
		if length >= record.Length {
			record = Run{Length: length, Start: start, End: i}
		}
	}
	if length > 0 {
		current = &Run{Length: length, Start: start, End: len(seq) - 1}
	}
	return current, record
}

// MatchEvent is one playable match seen from one player.
type MatchEvent struct {
	MatchID      int
	At           time.Time
	Result       Result
	ScoreFor     int
	ScoreAgainst int
}

// MatchEvents splits the playable matches into per-player chronological event lists.
func MatchEvents(matches []models.Match) map[int][]MatchEvent {
	out := make(map[int][]MatchEvent)
	for _, m := range chrono(matches) {
		if !Playable(m) {
			continue
		}
		o, _ := OutcomeOf(m)
		for _, side := range [...]models.Side{models.SideA, models.SideB} {
			ids := m.A.PlayerIDs
			if side == models.SideB {
				ids = m.B.PlayerIDs
			}
			scored, conceded := o.GoalsFor(side)
			ev := MatchEvent{MatchID: m.ID, At: m.Date, Result: o.ResultFor(side), ScoreFor: scored, ScoreAgainst: conceded}
			for _, id := range ids {
				out[id] = append(out[id], ev)
			}
		}
	}
	return out
}

// ParticipationEvent marks whether a player took part in one tournament.
type ParticipationEvent struct {
	TournamentID int
	At           time.Time
	Participated bool
}

// ParticipationEvents gives every player one event per tournament, in date
// order, from their first tournament on. Attendance is registration or any
// match played in the tournament.
func ParticipationEvents(dir Directory, tournaments []models.Tournament, matches []models.Match) map[int][]ParticipationEvent {
	ts := slices.Clone(tournaments)
	slices.SortStableFunc(ts, compareTournaments)

	byTournament := History{Matches: matches}.MatchesByTournament()
	out := make(map[int][]ParticipationEvent)
	for _, t := range ts {
		attended := make(map[int]bool)
		for _, p := range dir.Participants(t, byTournament[t.ID]) {
			attended[p.ID] = true
		}
		for _, m := range byTournament[t.ID] {
			for _, id := range slices.Concat(m.A.PlayerIDs, m.B.PlayerIDs) {
				attended[id] = true
			}
		}
		for id := range attended {
			if _, seen := out[id]; !seen {
				out[id] = nil
			}
		}
		for id := range out {
			out[id] = append(out[id], ParticipationEvent{TournamentID: t.ID, At: t.Date, Participated: attended[id]})
		}
	}
	return out
}

const (
	CategoryWin           = "win_streak"
	CategoryUnbeaten      = "unbeaten_streak"
	CategoryScoring       = "scoring_streak"
	CategoryCleanSheet    = "clean_sheet_streak"
	CategoryParticipation = "participation_streak"
)

type matchCategory struct {
	key, name, description string
	pred                   func(MatchEvent) bool
}

var matchCategories = []matchCategory{
	{CategoryWin, "Win streak", "Consecutive wins.", func(e MatchEvent) bool { return e.Result == ResultWin }},
	{CategoryUnbeaten, "Unbeaten streak", "Consecutive matches without losing.", func(e MatchEvent) bool { return e.Result != ResultLoss }},
	{CategoryScoring, "Scoring streak", "Consecutive matches with at least 1 goal scored.", func(e MatchEvent) bool { return e.ScoreFor > 0 }},
	{CategoryCleanSheet, "Clean sheet streak", "Consecutive matches with 0 goals conceded.", func(e MatchEvent) bool { return e.ScoreAgainst == 0 }},
}

// Categories lists the streak category keys in board order.
func Categories() []string {
	keys := make([]string, 0, len(matchCategories)+1)
	for _, c := range matchCategories {
		keys = append(keys, c.key)
	}
	return append(keys, CategoryParticipation)
}

// StreakQuery selects the streak board to build.
type StreakQuery struct {
	Players []models.Player
	// Matches and Tournaments are the already selected feed.
	Matches     []models.Match
	Tournaments []models.Tournament
	// Optional filters. Limit <= 0 keeps every row.
	PlayerID *int
	Category string
	Limit    int
}

// Streaks builds the current and record leaderboards of every requested category.
func Streaks(q StreakQuery) ([]models.StreakCategory, error) {
	if q.Category != "" && !slices.Contains(Categories(), q.Category) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, q.Category)
	}
	dir := NewDirectory(q.Players)
	want := func(key string) bool { return q.Category == "" || q.Category == key }

	var out []models.StreakCategory
	events := MatchEvents(q.Matches)
	for _, c := range matchCategories {
		if !want(c.key) {
			continue
		}
		cat := categoryBuilder{StreakCategory: models.StreakCategory{Key: c.key, Name: c.name, Description: c.description}}
		for id, evs := range events {
			if q.PlayerID != nil && *q.PlayerID != id {
				continue
			}
			cur, rec := FindRuns(evs, c.pred)
			at := func(i int) time.Time { return evs[i].At }
			cat.addRuns(dir.Player(id), cur, rec, at)
		}
		out = append(out, cat.finish(q.Limit))
	}

	if want(CategoryParticipation) {
		cat := categoryBuilder{StreakCategory: models.StreakCategory{
			Key:         CategoryParticipation,
			Name:        "Participation streak",
			Description: "Consecutive tournaments attended.",
		}}
		for id, evs := range ParticipationEvents(dir, q.Tournaments, q.Matches) {
			if q.PlayerID != nil && *q.PlayerID != id {
				continue
			}
			cur, rec := FindRuns(evs, func(e ParticipationEvent) bool { return e.Participated })
			at := func(i int) time.Time { return evs[i].At }
			cat.addRuns(dir.Player(id), cur, rec, at)
		}
		out = append(out, cat.finish(q.Limit))
	}
	return out, nil
}

type categoryBuilder struct {
	models.StreakCategory
}

func (b *categoryBuilder) addRuns(p models.Player, cur *Run, rec Run, at func(int) time.Time) {
	if rec.Length > 0 {
		b.Records = append(b.Records, streakRow(p, rec, at))
	}
	if cur != nil {
		b.Current = append(b.Current, streakRow(p, *cur, at))
	}
}

func (b *categoryBuilder) finish(limit int) models.StreakCategory {
	cat := b.StreakCategory
	cat.RecordsTotal = len(cat.Records)
	cat.CurrentTotal = len(cat.Current)
	cat.Records = leaderboard(cat.Records, limit)
	cat.Current = leaderboard(cat.Current, limit)
	return cat
}

func streakRow(p models.Player, r Run, at func(int) time.Time) models.StreakRow {
	start, end := at(r.Start), at(r.End)
	return models.StreakRow{Player: p, Length: r.Length, StartAt: &start, EndAt: &end}
}

// leaderboard orders rows by length desc, end time asc, then name and keeps the first limit.
func leaderboard(rows []models.StreakRow, limit int) []models.StreakRow {
	if rows == nil {
		rows = []models.StreakRow{}
	}
	slices.SortFunc(rows, func(a, b models.StreakRow) int {
		if c := cmp.Compare(b.Length, a.Length); c != 0 {
			return c
		}
		if c := a.EndAt.Compare(*b.EndAt); c != 0 {
			return c
		}
		if c := compareNames(a.Player, b.Player); c != 0 {
			return c
		}
		return cmp.Compare(a.Player.ID, b.Player.ID)
	})
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	return rows
}
