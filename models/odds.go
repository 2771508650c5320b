package models

import "time"

// MatchOdds prices one upcoming match. Probabilities sum to one; the decimal
// odds carry the bookmaker margin.
type MatchOdds struct {
	MatchID int     `json:"match_id"`
	Model   string  `json:"model"`
	PHome   float64 `json:"p_home"`
	PDraw   float64 `json:"p_draw"`
	PAway   float64 `json:"p_away"`
	Home    float64 `json:"home"`
	Draw    float64 `json:"draw"`
	Away    float64 `json:"away"`
}

type TournamentOdds struct {
	GeneratedAt time.Time     `json:"generated_at"`
	Tournament  TournamentRef `json:"tournament"`
	Mode        Mode          `json:"mode"`
	Odds        []MatchOdds   `json:"odds"`
}
