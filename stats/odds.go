package stats

import (
	"context"
	"errors"
	"math"
	"slices"

	"github.com/Dosada05/league-stats/models"
)

const OddsModelVersion = "v3"

var ErrOddsMode = errors.New("odds are priced for 1v1 or 2v2 only")

// Weights of the matchup signals, in points per match.
const (
	weightGoalDiff = 0.20
	weightH2H      = 0.45
	weightSynergy  = 0.22
	weightElo      = 0.65

	drawRatePrior = 0.25
	drawCloseBump = 0.10
	drawMin       = 0.10
	drawMax       = 0.42
	winSteepness  = 1.45

	priorHome     = 0.36
	priorDraw     = 0.28
	priorAway     = 0.36
	priorStrength = 10.0
	maxEvidence   = 40

	h2hDecay     = 0.84
	maxOverround = 0.25
	minOdds      = 1.01
	maxOdds      = 99.0
)

type OddsParams struct {
	// FormWindow is the last-N window of the form signal.
	FormWindow int
	// H2HWindow caps the direct meetings weighed into the head-to-head edge.
	H2HWindow int
	Overround float64
}

func DefaultOddsParams() OddsParams {
	return OddsParams{FormWindow: 10, H2HWindow: 8, Overround: 0.07}
}

type formAgg struct {
	lastAvg float64
	played  int
	gdpm    float64
}

// OddsModel prices matchups of one mode from the finished history.
type OddsModel struct {
	mode     models.Mode
	params   OddsParams
	history  []models.Match
	overall  map[int]formAgg
	byMode   map[int]formAgg
	pairs    map[pairKey]float64
	drawRate float64
	elo      Ratings
}

// NewOddsModel folds matches of every mode for the overall form and the ones
// of mode, with strict side sizes, for the remaining signals.
func NewOddsModel(ctx context.Context, matches []models.Match, mode models.Mode, params OddsParams) (*OddsModel, error) {
	size := mode.TeamSize()
	if size == 0 {
		return nil, ErrOddsMode
	}
	var all, history []models.Match
	for _, m := range chrono(matches) {
		if !Playable(m) {
			continue
		}
		all = append(all, m)
		if m.Mode == mode && len(m.A.PlayerIDs) == size && len(m.B.PlayerIDs) == size {
			history = append(history, m)
		}
	}
	elo, err := Replay(ctx, history)
	if err != nil {
		return nil, err
	}
	om := &OddsModel{
		mode:     mode,
		params:   params,
		history:  history,
		overall:  formAggs(all, params.FormWindow),
		byMode:   formAggs(history, params.FormWindow),
		drawRate: drawRate(history),
		elo:      elo,
	}
	if size == 2 {
		om.pairs = pairForm(history, params.FormWindow)
	}
	return om, nil
}

func formAggs(matches []models.Match, window int) map[int]formAgg {
	out := make(map[int]formAgg)
	for id, rec := range FoldAll(matches) {
		_, avg := LastN(id, matches, window)
		out[id] = formAgg{
			lastAvg: avg,
			played:  rec.GamesPlayed,
			gdpm:    float64(rec.ScoreDifference()) / float64(rec.GamesPlayed),
		}
	}
	return out
}

func drawRate(matches []models.Match) float64 {
	if len(matches) == 0 {
		return drawRatePrior
	}
	draws := 0
	for _, m := range matches {
		if o, _ := OutcomeOf(m); o.IsDraw() {
			draws++
		}
	}
	return float64(draws) / float64(len(matches))
}

// pairForm is the last-N points average of every duo that shared a side,
// divided by the window like LastN.
func pairForm(matches []models.Match, window int) map[pairKey]float64 {
	if window <= 0 {
		return nil
	}
	timeline := make(map[pairKey][]int)
	for _, m := range matches {
		o, _ := OutcomeOf(m)
		for _, s := range [...]struct {
			side models.Side
			ids  []int
		}{{models.SideA, m.A.PlayerIDs}, {models.SideB, m.B.PlayerIDs}} {
			if len(s.ids) != 2 {
				continue
			}
			k := keyOf(s.ids[0], s.ids[1])
			timeline[k] = append(timeline[k], o.ResultFor(s.side).Points())
		}
	}
	out := make(map[pairKey]float64, len(timeline))
	for k, pts := range timeline {
		out[k] = windowAverage(pts, window)
	}
	return out
}

func (om *OddsModel) strength(id int) float64 {
	o, m := om.overall[id], om.byMode[id]
	w := 0.45
	if m.played >= 3 {
		w = 0.70
	}
	return w*m.lastAvg + (1-w)*o.lastAvg
}

func (om *OddsModel) goalDiff(id int) float64 {
	o, m := om.overall[id], om.byMode[id]
	w := 0.50
	if m.played >= 6 {
		w = 0.75
	}
	return w*m.gdpm + (1-w)*o.gdpm
}

func mean(ids []int, f func(int) float64) float64 {
	sum := 0.0
	for _, id := range ids {
		sum += f(id)
	}
	return sum / float64(len(ids))
}

func sameTeam(side, team []int) bool {
	if len(side) != len(team) {
		return false
	}
	s := slices.Clone(side)
	slices.Sort(s)
	return slices.Equal(s, team)
}

// h2hEdge scores team a against team b over their last direct meetings in
// [-1, 1]. The newest meeting weighs 1 and older ones decay geometrically.
func (om *OddsModel) h2hEdge(a, b []int) float64 {
	if om.params.H2HWindow <= 0 {
		return 0
	}
	a, b = slices.Sorted(slices.Values(a)), slices.Sorted(slices.Values(b))
	var scores []float64
	for _, m := range om.history {
		var side models.Side
		switch {
		case sameTeam(m.A.PlayerIDs, a) && sameTeam(m.B.PlayerIDs, b):
			side = models.SideA
		case sameTeam(m.A.PlayerIDs, b) && sameTeam(m.B.PlayerIDs, a):
			side = models.SideB
		default:
			continue
		}
		o, _ := OutcomeOf(m)
		scores = append(scores, o.ResultFor(side).Score())
	}
	if len(scores) > om.params.H2HWindow {
		scores = scores[len(scores)-om.params.H2HWindow:]
	}
	if len(scores) == 0 {
		return 0
	}
	sum, total := 0.0, 0.0
	for i, v := range scores {
		w := math.Pow(h2hDecay, float64(len(scores)-1-i))
		sum += w * (v - 0.5) * 2
		total += w
	}
	return sum / total
}

// synergy compares how each duo performs together with its players' own form.
func (om *OddsModel) synergy(a, b []int) float64 {
	if om.pairs == nil {
		return 0
	}
	pa := om.pairs[keyOf(a[0], a[1])] - mean(a, om.strength)
	pb := om.pairs[keyOf(b[0], b[1])] - mean(b, om.strength)
	return pa - pb
}

func (om *OddsModel) valid(a, b []int) bool {
	size := om.mode.TeamSize()
	if len(a) != size || len(b) != size {
		return false
	}
	for _, id := range a {
		if id <= 0 || slices.Contains(b, id) {
			return false
		}
	}
	for _, id := range b {
		if id <= 0 {
			return false
		}
	}
	return true
}

// Quote prices side a (home) against side b. ok is false for sides that do not
// fit the mode or share a player.
func (om *OddsModel) Quote(a, b []int) (models.MatchOdds, bool) {
	if !om.valid(a, b) {
		return models.MatchOdds{}, false
	}
	delta := mean(a, om.strength) - mean(b, om.strength) +
		weightGoalDiff*(mean(a, om.goalDiff)-mean(b, om.goalDiff)) +
		weightH2H*om.h2hEdge(a, b) +
		weightSynergy*om.synergy(a, b) +
		weightElo*(teamRating(om.elo, a)-teamRating(om.elo, b))/eloScale

	pDraw := clamp(om.drawRate+drawCloseBump*math.Exp(-math.Abs(delta)*2.5), drawMin, drawMax)
	split := 1 / (1 + math.Exp(-delta*winSteepness))
	pHome := (1 - pDraw) * split
	pAway := (1 - pDraw) * (1 - split)

	// Shrink towards the prior while the mode history is thin.
	eff := float64(min(maxEvidence, len(om.history)))
	denom := eff + priorStrength
	pHome = (pHome*eff + priorHome*priorStrength) / denom
	pDraw = (pDraw*eff + priorDraw*priorStrength) / denom
	pAway = (pAway*eff + priorAway*priorStrength) / denom
	sum := pHome + pDraw + pAway
	pHome, pDraw, pAway = pHome/sum, pDraw/sum, pAway/sum

	return models.MatchOdds{
		Model: OddsModelVersion,
		PHome: round(pHome, 6),
		PDraw: round(pDraw, 6),
		PAway: round(pAway, 6),
		Home:  round(DecimalOdds(pHome, om.params.Overround), 2),
		Draw:  round(DecimalOdds(pDraw, om.params.Overround), 2),
		Away:  round(DecimalOdds(pAway, om.params.Overround), 2),
	}, true
}

// DecimalOdds converts a fair probability into bookmaker odds with the given
// overround, clamped to [0, 0.25]. The price stays within [1.01, 99].
func DecimalOdds(p, overround float64) float64 {
	overround = clamp(overround, 0, maxOverround)
	implied := clamp(p*(1+overround), 1e-6, 0.999999)
	return clamp(1/implied, minOdds, maxOdds)
}

// MatchOdds prices the scheduled and playing matches of upcoming, keeping
// their order. Matches whose sides do not fit mode are left out.
func MatchOdds(ctx context.Context, history, upcoming []models.Match, mode models.Mode, params OddsParams) ([]models.MatchOdds, error) {
	om, err := NewOddsModel(ctx, history, mode, params)
	if err != nil {
		return nil, err
	}
	out := make([]models.MatchOdds, 0, len(upcoming))
	for _, m := range upcoming {
		if m.State != models.MatchScheduled && m.State != models.MatchPlaying {
			continue
		}
		q, ok := om.Quote(m.A.PlayerIDs, m.B.PlayerIDs)
		if !ok {
			continue
		}
		q.MatchID = m.ID
		out = append(out, q)
	}
	return out, nil
}

func clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}

func round(x float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(x*p) / p
}
