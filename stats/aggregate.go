package stats

import (
	"github.com/Dosada05/league-stats/models"
)

func addResult(rec *models.Record, res Result, scored, conceded int) {
	rec.GamesPlayed++
	rec.ScoreFor += scored
	rec.ScoreAgainst += conceded
	switch res {
	case ResultWin:
		rec.Wins++
	case ResultDraw:
		rec.Draws++
	default:
		rec.Losses++
	}
	rec.Points = PointsWin*rec.Wins + PointsDraw*rec.Draws
}

// FoldMatches accumulates the player's record over the playable matches they
// took part in. Other matches are skipped silently.
func FoldMatches(playerID int, matches []models.Match) models.Record {
	var rec models.Record
	for _, m := range chrono(matches) {
		if !Playable(m) {
			continue
		}
		side, ok := SideOf(m, playerID)
		if !ok {
			continue
		}
		o, _ := OutcomeOf(m)
		scored, conceded := o.GoalsFor(side)
		addResult(&rec, o.ResultFor(side), scored, conceded)
	}
	return rec
}

// FoldAll computes the record of every player appearing in the matches in one pass.
func FoldAll(matches []models.Match) map[int]*models.Record {
	out := make(map[int]*models.Record)
	for _, m := range matches {
		if !Playable(m) {
			continue
		}
		o, _ := OutcomeOf(m)
		for _, s := range [...]struct {
			side models.Side
			ids  []int
		}{{models.SideA, m.A.PlayerIDs}, {models.SideB, m.B.PlayerIDs}} {
			scored, conceded := o.GoalsFor(s.side)
			res := o.ResultFor(s.side)
			for _, id := range s.ids {
				rec, ok := out[id]
				if !ok {
					rec = &models.Record{}
					out[id] = rec
				}
				addResult(rec, res, scored, conceded)
			}
		}
	}
	return out
}
