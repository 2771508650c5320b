package models

import "time"

type StreakRow struct {
	Player  Player     `json:"player"`
	Length  int        `json:"length"`
	StartAt *time.Time `json:"start_ts"`
	EndAt   *time.Time `json:"end_ts"`
}

type StreakCategory struct {
	Key          string      `json:"key"`
	Name         string      `json:"name"`
	Description  string      `json:"description"`
	Records      []StreakRow `json:"records"`
	RecordsTotal int         `json:"records_total"`
	Current      []StreakRow `json:"current"`
	CurrentTotal int         `json:"current_total"`
}

type StreakBoard struct {
	GeneratedAt time.Time        `json:"generated_at"`
	Mode        Mode             `json:"mode"`
	Scope       Scope            `json:"scope"`
	Player      *Player          `json:"player,omitempty"`
	Categories  []StreakCategory `json:"categories"`
}
