package stats

import (
	"errors"
	"fmt"
	"slices"

	"github.com/Dosada05/league-stats/models"
)

var ErrUnknownPlayer = errors.New("unknown player")

// Cup walks the done tournaments in date order and follows the cup from the
// initial owner. The cup moves only when its owner took part and a different
// player won outright; a shared first place keeps it where it is. The owner's
// streak counts the tournaments they attended since taking it.
func Cup(h History, initialOwnerID int) (models.CupState, error) {
	dir := NewDirectory(h.Players)
	owner, ok := dir[initialOwnerID]
	if !ok {
		return models.CupState{}, fmt.Errorf("%w: cup owner %d", ErrUnknownPlayer, initialOwnerID)
	}

	state := models.CupState{Owner: owner, History: []models.CupTransfer{}}
	byTournament := h.MatchesByTournament()
	for _, t := range h.DoneTournaments() {
		matches := byTournament[t.ID]
		participants := dir.Participants(t, matches)
		if !slices.ContainsFunc(participants, func(p models.Player) bool { return p.ID == state.Owner.ID }) {
			continue
		}

		ref := t.Ref()
		winnerID, unique := UniqueWinner(Standings(matches, participants))
		if !unique || winnerID == state.Owner.ID {
			state.StreakTournaments++
			if state.StreakSince == nil {
				state.StreakSince = &ref
			}
			continue
		}

		next := dir.Player(winnerID)
		state.History = append(state.History, models.CupTransfer{Tournament: ref, FromPlayer: state.Owner, ToPlayer: next})
		state.Owner = next
		state.StreakTournaments = 1
		state.StreakSince = &ref
	}
	return state, nil
}
