package stats

import (
	"cmp"
	"math"
	"slices"

	"github.com/Dosada05/league-stats/models"
)

type RivalryOrder string

const (
	// OrderByRivalry favours frequent and close matchups.
	OrderByRivalry RivalryOrder = "rivalry"
	OrderByPlayed  RivalryOrder = "played"
)

type pairKey struct{ lo, hi int }

func keyOf(a, b int) pairKey {
	if a > b {
		a, b = b, a
	}
	return pairKey{a, b}
}

func comparePair(a1, a2, b1, b2 models.Player) int {
	if c := cmp.Compare(a1.ID, b1.ID); c != 0 {
		return c
	}
	return cmp.Compare(a2.ID, b2.ID)
}

// Closeness is 1 for an even win split and 0 for a one-sided one. Without any
// decisive result the split counts as even.
func Closeness(winShare float64) float64 {
	return 1 - math.Min(1, math.Abs(winShare-0.5)*2)
}

// Rivalries aggregates every pair of players that met on opposite sides of a
// playable match. In team matches each player faces every opponent.
func Rivalries(dir Directory, matches []models.Match, order RivalryOrder, limit int) []models.Rivalry {
	pairs := make(map[pairKey]*models.Rivalry)
	for _, m := range chrono(matches) {
		if !Playable(m) {
			continue
		}
		o, _ := OutcomeOf(m)
		for _, a := range m.A.PlayerIDs {
			for _, b := range m.B.PlayerIDs {
				k := keyOf(a, b)
				r, ok := pairs[k]
				if !ok {
					r = &models.Rivalry{PlayerA: dir.Player(k.lo), PlayerB: dir.Player(k.hi)}
					pairs[k] = r
				}
				// Orient the match so that PlayerA (lower id) reads as our side.
				side := models.SideA
				if a != k.lo {
					side = models.SideB
				}
				scored, conceded := o.GoalsFor(side)
				r.Played++
				r.AScoreFor += scored
				r.AScoreAgainst += conceded
				switch o.ResultFor(side) {
				case ResultWin:
					r.AWins++
				case ResultDraw:
					r.Draws++
				default:
					r.BWins++
				}
			}
		}
	}

	out := make([]models.Rivalry, 0, len(pairs))
	for _, r := range pairs {
		r.WinShareA = 0.5
		if decided := r.AWins + r.BWins; decided > 0 {
			r.WinShareA = float64(r.AWins) / float64(decided)
		}
		c := Closeness(r.WinShareA)
		r.RivalryScore = float64(r.Played) * c
		r.DominanceScore = float64(r.Played) * (1 - c)
		out = append(out, *r)
	}
	slices.SortFunc(out, func(a, b models.Rivalry) int {
		if order == OrderByPlayed {
			if c := cmp.Compare(b.Played, a.Played); c != 0 {
				return c
			}
			if c := cmp.Compare(b.RivalryScore/float64(b.Played), a.RivalryScore/float64(a.Played)); c != 0 {
				return c
			}
		} else {
			if c := cmp.Compare(b.RivalryScore, a.RivalryScore); c != 0 {
				return c
			}
			if c := cmp.Compare(b.Played, a.Played); c != 0 {
				return c
			}
		}
		if c := compareNames(a.PlayerA, b.PlayerA); c != 0 {
			return c
		}
		if c := compareNames(a.PlayerB, b.PlayerB); c != 0 {
			return c
		}
		return comparePair(a.PlayerA, a.PlayerB, b.PlayerA, b.PlayerB)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// Partnerships aggregates teammates who shared a side in a playable two-player
// match, ordered by points per match, then games played, then total points.
func Partnerships(dir Directory, matches []models.Match, limit int) []models.Partnership {
	duos := make(map[pairKey]*models.Partnership)
	for _, m := range chrono(matches) {
		if !Playable(m) {
			continue
		}
		o, _ := OutcomeOf(m)
		for _, s := range [...]struct {
			side models.Side
			ids  []int
		}{{models.SideA, m.A.PlayerIDs}, {models.SideB, m.B.PlayerIDs}} {
			if len(s.ids) != 2 {
				continue
			}
			k := keyOf(s.ids[0], s.ids[1])
			d, ok := duos[k]
			if !ok {
				d = &models.Partnership{PlayerA: dir.Player(k.lo), PlayerB: dir.Player(k.hi)}
				duos[k] = d
			}
			scored, conceded := o.GoalsFor(s.side)
			addResult(&d.Record, o.ResultFor(s.side), scored, conceded)
		}
	}

	out := make([]models.Partnership, 0, len(duos))
	for _, d := range duos {
		d.ScoreDifference = d.Record.ScoreDifference()
		d.PointsPerMatch = float64(d.Points) / float64(d.GamesPlayed)
		d.WinRate = float64(d.Wins) / float64(d.GamesPlayed)
		out = append(out, *d)
	}
	slices.SortFunc(out, func(a, b models.Partnership) int {
		if c := cmp.Compare(b.PointsPerMatch, a.PointsPerMatch); c != 0 {
			return c
		}
		if c := cmp.Compare(b.GamesPlayed, a.GamesPlayed); c != 0 {
			return c
		}
		if c := cmp.Compare(b.Points, a.Points); c != 0 {
			return c
		}
		if c := compareNames(a.PlayerA, b.PlayerA); c != 0 {
			return c
		}
		if c := compareNames(a.PlayerB, b.PlayerB); c != 0 {
			return c
		}
		return comparePair(a.PlayerA, a.PlayerB, b.PlayerA, b.PlayerB)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

type duoMatchup struct{ t1, t2 pairKey }

func compareKeys(a, b pairKey) int {
	if c := cmp.Compare(a.lo, b.lo); c != 0 {
		return c
	}
	return cmp.Compare(a.hi, b.hi)
}

func matchupOf(a, b pairKey) (duoMatchup, bool) {
	if compareKeys(a, b) <= 0 {
		return duoMatchup{a, b}, true
	}
	return duoMatchup{b, a}, false
}

// TeamRivalries aggregates duo-versus-duo meetings of playable two-player
// matches. The order and limit work as in Rivalries.
func TeamRivalries(dir Directory, matches []models.Match, order RivalryOrder, limit int) []models.TeamRivalry {
	teams := make(map[duoMatchup]*models.TeamRivalry)
	for _, m := range chrono(matches) {
		if !Playable(m) || len(m.A.PlayerIDs) != 2 || len(m.B.PlayerIDs) != 2 {
			continue
		}
		o, _ := OutcomeOf(m)
		k, team1IsA := matchupOf(keyOf(m.A.PlayerIDs[0], m.A.PlayerIDs[1]), keyOf(m.B.PlayerIDs[0], m.B.PlayerIDs[1]))
		r, ok := teams[k]
		if !ok {
			r = &models.TeamRivalry{
				Team1: [2]models.Player{dir.Player(k.t1.lo), dir.Player(k.t1.hi)},
				Team2: [2]models.Player{dir.Player(k.t2.lo), dir.Player(k.t2.hi)},
			}
			teams[k] = r
		}
		side := models.SideA
		if !team1IsA {
			side = models.SideB
		}
		scored, conceded := o.GoalsFor(side)
		r.Played++
		r.Team1ScoreFor += scored
		r.Team1ScoreAgainst += conceded
		switch o.ResultFor(side) {
		case ResultWin:
			r.Team1Wins++
		case ResultDraw:
			r.Draws++
		default:
			r.Team2Wins++
		}
	}

	out := make([]models.TeamRivalry, 0, len(teams))
	for _, r := range teams {
		r.WinShareTeam1 = 0.5
		if decided := r.Team1Wins + r.Team2Wins; decided > 0 {
			r.WinShareTeam1 = float64(r.Team1Wins) / float64(decided)
		}
		c := Closeness(r.WinShareTeam1)
		r.RivalryScore = float64(r.Played) * c
		r.DominanceScore = float64(r.Played) * (1 - c)
		out = append(out, *r)
	}
	slices.SortFunc(out, func(a, b models.TeamRivalry) int {
		if order == OrderByPlayed {
			if c := cmp.Compare(b.Played, a.Played); c != 0 {
				return c
			}
			if c := cmp.Compare(b.RivalryScore/float64(b.Played), a.RivalryScore/float64(a.Played)); c != 0 {
				return c
			}
		} else {
			if c := cmp.Compare(b.RivalryScore, a.RivalryScore); c != 0 {
				return c
			}
			if c := cmp.Compare(b.Played, a.Played); c != 0 {
				return c
			}
		}
		for _, pair := range [...][2]models.Player{{a.Team1[0], b.Team1[0]}, {a.Team1[1], b.Team1[1]}, {a.Team2[0], b.Team2[0]}, {a.Team2[1], b.Team2[1]}} {
			if c := compareNames(pair[0], pair[1]); c != 0 {
				return c
			}
		}
		if c := comparePair(a.Team1[0], a.Team1[1], b.Team1[0], b.Team1[1]); c != 0 {
			return c
		}
		return comparePair(a.Team2[0], a.Team2[1], b.Team2[0], b.Team2[1])
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
