package models

import "time"

// RatingsSnapshot is the published document: one table per mode.
type RatingsSnapshot struct {
	GeneratedAt time.Time     `json:"generated_at"`
	Scope       Scope         `json:"scope"`
	Tables      []RatingTable `json:"tables"`
}

type SnapshotResult struct {
	Key         string    `json:"key"`
	URL         string    `json:"url"`
	LatestURL   string    `json:"latest_url"`
	GeneratedAt time.Time `json:"generated_at"`
}
