package models

import "time"

type MatchState string

const (
	MatchScheduled MatchState = "scheduled"
	MatchPlaying   MatchState = "playing"
	MatchFinished  MatchState = "finished"
)

type Side string

const (
	SideA    Side = "A"
	SideB    Side = "B"
	SideNone Side = ""
)

// FriendlyMatchIDOffset keeps friendly match ids disjoint from tournament match ids
// when both feeds are merged into one history.
const FriendlyMatchIDOffset = 2_000_000_000

type MatchSide struct {
	Side      Side  `json:"side" db:"side"`
	PlayerIDs []int `json:"player_ids" db:"-"`
	Goals     *int  `json:"goals,omitempty" db:"goals"`
	ClubID    *int  `json:"club_id,omitempty" db:"club_id"`
}

// Match is one game of the history feed. Date and Mode are copied from the
// owning tournament, or from the friendly record for standalone matches.
type Match struct {
	ID           int        `json:"id" db:"id"`
	TournamentID *int       `json:"tournament_id,omitempty" db:"tournament_id"`
	Leg          int        `json:"leg" db:"leg"`
	OrderIndex   int        `json:"order_index" db:"order_index"`
	State        MatchState `json:"state" db:"state"`
	Date         time.Time  `json:"date" db:"date"`
	Mode         Mode       `json:"mode" db:"mode"`
	A            MatchSide  `json:"a"`
	B            MatchSide  `json:"b"`
}

func (m Match) IsFriendly() bool {
	return m.TournamentID == nil
}

func (m Match) IsFinished() bool {
	return m.State == MatchFinished
}

// GroupID is the chronological bucket of the match: its tournament, or the match
// itself for friendlies.
func (m Match) GroupID() int {
	if m.TournamentID != nil {
		return *m.TournamentID
	}
	return m.ID
}
