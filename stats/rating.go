package stats

import (
	"cmp"
	"context"
	"maps"
	"math"
	"slices"

	"github.com/Dosada05/league-stats/models"
)

const (
	BaseRating = 1000.0
	BaseK      = 24.0

	// MaxMarginMultiplier bounds the swing of a blowout to 3x the base K.
	MaxMarginMultiplier = 3.0
	// marginGoalsPerStep is the goal difference that adds 1x to the multiplier.
	marginGoalsPerStep = 4.0

	eloScale = 400.0
)

// Ratings maps player id to rating. Players without an entry are at BaseRating.
type Ratings map[int]float64

func (r Ratings) Of(playerID int) float64 {
	if v, ok := r[playerID]; ok {
		return v
	}
	return BaseRating
}

// ExpectedScore is the logistic expectation of a side rated ra against rb.
func ExpectedScore(ra, rb float64) float64 {
	return 1 / (1 + math.Pow(10, (rb-ra)/eloScale))
}

// MarginMultiplier grows linearly by 1 every four goals of difference and
// saturates at MaxMarginMultiplier from a difference of eight.
func MarginMultiplier(goalDiff int) float64 {
	if goalDiff < 0 {
		goalDiff = -goalDiff
	}
	return 1 + math.Min(MaxMarginMultiplier-1, float64(goalDiff)/marginGoalsPerStep)
}

func teamRating(r Ratings, playerIDs []int) float64 {
	sum := 0.0
	for _, id := range playerIDs {
		sum += r.Of(id)
	}
	return sum / float64(len(playerIDs))
}

// ApplyMatch returns the ratings after one match. The input map is not
// modified. Malformed or unfinished matches return an unchanged copy.
func ApplyMatch(r Ratings, m models.Match) Ratings {
	next := maps.Clone(r)
	if next == nil {
		next = Ratings{}
	}
	applyMatch(next, m)
	return next
}

// applyMatch updates r in place. Unplayable matches leave it untouched.
func applyMatch(r Ratings, m models.Match) {
	if !Playable(m) {
		return
	}
	o, _ := OutcomeOf(m)

	ra := teamRating(r, m.A.PlayerIDs)
	rb := teamRating(r, m.B.PlayerIDs)
	ea := ExpectedScore(ra, rb)

	k := BaseK * MarginMultiplier(o.GoalsA-o.GoalsB)
	deltaA := k * (o.ResultFor(models.SideA).Score() - ea)
	deltaB := -deltaA

	// Read both team ratings before writing so side B sees pre-match values.
	shareA := deltaA / float64(len(m.A.PlayerIDs))
	shareB := deltaB / float64(len(m.B.PlayerIDs))
	for _, id := range m.A.PlayerIDs {
		r[id] = r.Of(id) + shareA
	}
	for _, id := range m.B.PlayerIDs {
		r[id] = r.Of(id) + shareB
	}
}

// Replay folds the matches in chronological order starting from BaseRating for
// everyone. It checks ctx between matches; on cancellation it returns nil and
// the context error, never a partially folded map.
func Replay(ctx context.Context, matches []models.Match) (Ratings, error) {
	acc := Ratings{}
	for _, m := range chrono(matches) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		applyMatch(acc, m)
	}
	return acc, nil
}

// RatingRows replays matches and returns one row per listed player, ordered by
// rating desc, games played desc, then name. Players who never played sit at BaseRating.
func RatingRows(ctx context.Context, players []models.Player, matches []models.Match) ([]models.RatingRow, error) {
	ratings, err := Replay(ctx, matches)
	if err != nil {
		return nil, err
	}
	records := FoldAll(matches)

	rows := make([]models.RatingRow, 0, len(players))
	for _, p := range players {
		row := models.RatingRow{Player: p, Rating: ratings.Of(p.ID)}
		if rec, ok := records[p.ID]; ok {
			row.Record = *rec
		}
		row.ScoreDifference = row.Record.ScoreDifference()
		rows = append(rows, row)
	}
	slices.SortFunc(rows, func(a, b models.RatingRow) int {
		if c := cmp.Compare(b.Rating, a.Rating); c != 0 {
			return c
		}
		if c := cmp.Compare(b.GamesPlayed, a.GamesPlayed); c != 0 {
			return c
		}
		if c := compareNames(a.Player, b.Player); c != 0 {
			return c
		}
		return cmp.Compare(a.Player.ID, b.Player.ID)
	})
	return rows, nil
}
