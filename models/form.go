package models

import "time"

type AnchorKind string

const (
	AnchorTournament AnchorKind = "tournament"
	AnchorMatch      AnchorKind = "match"
)

type FormAnchor struct {
	Kind     AnchorKind `json:"kind"`
	ID       int        `json:"id"`
	Date     time.Time  `json:"date"`
	Friendly bool       `json:"friendly,omitempty"`
	Label    string     `json:"label,omitempty"`
}

// FormPoint is the trailing-window average at one anchor. Present is false
// until the player's first match; Participated tells whether the player
// played inside this anchor.
type FormPoint struct {
	Anchor       FormAnchor `json:"anchor"`
	Value        float64    `json:"value"`
	Present      bool       `json:"present"`
	Participated bool       `json:"participated"`
}

type FormSeries struct {
	Player Player      `json:"player"`
	Window int         `json:"window"`
	Mode   Mode        `json:"mode"`
	Scope  Scope       `json:"scope"`
	Points []FormPoint `json:"points"`
}

// PlayerOverview is one row of the players dashboard.
type PlayerOverview struct {
	Player Player `json:"player"`
	Record
	ScoreDifference int     `json:"score_difference"`
	LastPoints      []int   `json:"last_n_points"`
	LastAverage     float64 `json:"last_n_avg_points"`
	// Keyed by tournament id; nil when the player did not take part.
	Positions map[int]*int `json:"positions_by_tournament"`
}

type PlayersOverview struct {
	GeneratedAt time.Time        `json:"generated_at"`
	Scope       Scope            `json:"scope"`
	LastN       int              `json:"last_n"`
	Tournaments []TournamentRef  `json:"tournaments"`
	Players     []PlayerOverview `json:"players"`
}
