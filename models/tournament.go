package models

import "time"

type TournamentStatus string

const (
	TournamentDraft TournamentStatus = "draft"
	TournamentLive  TournamentStatus = "live"
	TournamentDone  TournamentStatus = "done"
)

type Tournament struct {
	ID     int              `json:"id" db:"id"`
	Name   string           `json:"name" db:"name"`
	Date   time.Time        `json:"date" db:"date"`
	Mode   Mode             `json:"mode" db:"mode"`
	Status TournamentStatus `json:"status" db:"status"`

	// Registered participants; empty when the feed does not carry them and
	// participation has to be inferred from matches.
	PlayerIDs []int `json:"player_ids,omitempty" db:"-"`
}

// TournamentRef is the label of a chart anchor or a cup event.
type TournamentRef struct {
	ID   int       `json:"id"`
	Name string    `json:"name"`
	Date time.Time `json:"date"`
}

func (t Tournament) Ref() TournamentRef {
	return TournamentRef{ID: t.ID, Name: t.Name, Date: t.Date}
}

// Schedule is a generated fixture list; matches carry no ids until stored.
type Schedule struct {
	Tournament TournamentRef `json:"tournament"`
	Generator  string        `json:"generator"`
	Legs       int           `json:"legs"`
	Matches    []Match       `json:"matches"`
}
