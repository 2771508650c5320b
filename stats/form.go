package stats

import (
	"errors"
	"fmt"

	"github.com/Dosada05/league-stats/models"
)

var ErrInvalidWindow = errors.New("window size must be at least 1")

// pointsTimeline lists the player's points per playable match, in chronological order.
func pointsTimeline(playerID int, matches []models.Match) []int {
	var out []int
	for _, m := range chrono(matches) {
		if !Playable(m) {
			continue
		}
		if pts, ok := PointsFor(m, playerID); ok {
			out = append(out, pts)
		}
	}
	return out
}

func windowAverage(pts []int, window int) float64 {
	if len(pts) > window {
		pts = pts[len(pts)-window:]
	}
	sum := 0
	for _, p := range pts {
		sum += p
	}
	return float64(sum) / float64(window)
}

// FormSeries returns the player's trailing-window points average at every
// anchor of the history. Anchors are tournaments (friendlies count as their own
// group) or single matches. The average always divides by window, so a short
// career is zero-padded. Anchors before the player's first match are kept with
// Present unset.
func FormSeries(playerID int, matches []models.Match, window int, kind models.AnchorKind) ([]models.FormPoint, error) {
	if window < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidWindow, window)
	}
	anchorOf := func(m models.Match) models.FormAnchor {
		if kind == models.AnchorMatch {
			return models.FormAnchor{Kind: models.AnchorMatch, ID: m.ID, Date: m.Date, Friendly: m.IsFriendly()}
		}
		return models.FormAnchor{Kind: models.AnchorTournament, ID: m.GroupID(), Date: m.Date, Friendly: m.IsFriendly()}
	}

	var (
		out []models.FormPoint
		pts []int
		cur *models.FormPoint
	)
	flush := func() {
		if cur == nil {
			return
		}
		cur.Present = len(pts) > 0
		if cur.Present {
			cur.Value = windowAverage(pts, window)
		}
		out = append(out, *cur)
		cur = nil
	}
	for _, m := range chrono(matches) {
		if !Playable(m) {
			continue
		}
		a := anchorOf(m)
		if cur != nil && (cur.Anchor.ID != a.ID || cur.Anchor.Friendly != a.Friendly) {
			flush()
		}
		if cur == nil {
			cur = &models.FormPoint{Anchor: a}
		}
		if p, ok := PointsFor(m, playerID); ok {
			pts = append(pts, p)
			cur.Participated = true
		}
	}
	flush()
	return out, nil
}

// LastN returns the player's last n point values and their average over n.
// n <= 0 disables the calculation.
func LastN(playerID int, matches []models.Match, n int) ([]int, float64) {
	if n <= 0 {
		return []int{}, 0
	}
	pts := pointsTimeline(playerID, matches)
	if len(pts) > n {
		pts = pts[len(pts)-n:]
	}
	if len(pts) == 0 {
		return []int{}, 0
	}
	return pts, windowAverage(pts, n)
}
