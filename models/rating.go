package models

import "time"

type RatingRow struct {
	Player Player  `json:"player"`
	Rating float64 `json:"rating"`
	Record
	ScoreDifference int `json:"score_difference"`
}

type RatingTable struct {
	GeneratedAt time.Time   `json:"generated_at"`
	Mode        Mode        `json:"mode"`
	Scope       Scope       `json:"scope"`
	BaseRating  float64     `json:"base_rating"`
	K           float64     `json:"k"`
	Rows        []RatingRow `json:"rows"`
}
