package stats

import (
	"cmp"
	"slices"
	"strconv"

	"github.com/Dosada05/league-stats/models"
)

// History is the read-only snapshot every computation folds over.
type History struct {
	Players     []models.Player
	Tournaments []models.Tournament
	Matches     []models.Match
}

// Selection narrows a history to the matches one query is computed over.
type Selection struct {
	Mode  models.Mode
	Scope models.Scope
	// IncludeLive admits matches of live tournaments; only done tournaments
	// count otherwise.
	IncludeLive bool
}

// Select returns the matches of h admitted by sel, in chronological order.
// Per-mode selections require the match mode and strict side sizes.
func Select(h History, sel Selection) []models.Match {
	statuses := h.TournamentStatuses()
	size := sel.Mode.TeamSize()

	out := make([]models.Match, 0, len(h.Matches))
	for _, m := range h.Matches {
		if m.IsFriendly() {
			if !sel.Scope.IncludesFriendlies() {
				continue
			}
		} else {
			if !sel.Scope.IncludesTournaments() {
				continue
			}
			switch statuses[*m.TournamentID] {
			case models.TournamentDone:
			case models.TournamentLive:
				if !sel.IncludeLive {
					continue
				}
			default:
				continue
			}
		}
		if size > 0 {
			if m.Mode != sel.Mode || len(m.A.PlayerIDs) != size || len(m.B.PlayerIDs) != size {
				continue
			}
		}
		out = append(out, m)
	}
	slices.SortStableFunc(out, compareChrono)
	return out
}

// TournamentStatuses maps tournament id to its status. Tournaments without a
// stored status get one derived from their matches.
func (h History) TournamentStatuses() map[int]models.TournamentStatus {
	out := make(map[int]models.TournamentStatus, len(h.Tournaments))
	var byTournament map[int][]models.Match
	for _, t := range h.Tournaments {
		if t.Status != "" {
			out[t.ID] = t.Status
			continue
		}
		if byTournament == nil {
			byTournament = h.MatchesByTournament()
		}
		out[t.ID] = DeriveStatus(byTournament[t.ID])
	}
	return out
}

// MatchesByTournament groups tournament matches by tournament id. Friendlies are left out.
func (h History) MatchesByTournament() map[int][]models.Match {
	out := make(map[int][]models.Match)
	for _, m := range h.Matches {
		if m.TournamentID == nil {
			continue
		}
		out[*m.TournamentID] = append(out[*m.TournamentID], m)
	}
	return out
}

// DoneTournaments returns the done tournaments ordered by date then id.
func (h History) DoneTournaments() []models.Tournament {
	statuses := h.TournamentStatuses()
	out := make([]models.Tournament, 0, len(h.Tournaments))
	for _, t := range h.Tournaments {
		if statuses[t.ID] == models.TournamentDone {
			out = append(out, t)
		}
	}
	slices.SortStableFunc(out, compareTournaments)
	return out
}

func compareTournaments(a, b models.Tournament) int {
	if c := a.Date.Compare(b.Date); c != 0 {
		return c
	}
	return cmp.Compare(a.ID, b.ID)
}

// Directory resolves player ids to players for presentation.
type Directory map[int]models.Player

func NewDirectory(players []models.Player) Directory {
	d := make(Directory, len(players))
	for _, p := range players {
		d[p.ID] = p
	}
	return d
}

// Player returns the known player or a placeholder named after the id.
func (d Directory) Player(id int) models.Player {
	if p, ok := d[id]; ok {
		return p
	}
	return models.Player{ID: id, DisplayName: strconv.Itoa(id)}
}

// Participants returns the registered players of a tournament, or the players
// seen in its matches when none are registered.
func (d Directory) Participants(t models.Tournament, matches []models.Match) []models.Player {
	ids := t.PlayerIDs
	if len(ids) == 0 {
		seen := make(map[int]struct{})
		for _, m := range matches {
			for _, id := range slices.Concat(m.A.PlayerIDs, m.B.PlayerIDs) {
				if _, ok := seen[id]; ok {
					continue
				}
				seen[id] = struct{}{}
				ids = append(ids, id)
			}
		}
	}
	out := make([]models.Player, 0, len(ids))
	for _, id := range ids {
		out = append(out, d.Player(id))
	}
	return out
}
