package models

import "time"

// Rivalry aggregates every match where PlayerA and PlayerB stood on opposite
// sides. PlayerA always carries the lower id.
type Rivalry struct {
	PlayerA        Player  `json:"a"`
	PlayerB        Player  `json:"b"`
	Played         int     `json:"played"`
	AWins          int     `json:"a_wins"`
	Draws          int     `json:"draws"`
	BWins          int     `json:"b_wins"`
	AScoreFor      int     `json:"a_gf"`
	AScoreAgainst  int     `json:"a_ga"`
	WinShareA      float64 `json:"win_share_a"`
	RivalryScore   float64 `json:"rivalry_score"`
	DominanceScore float64 `json:"dominance_score"`
}

// TeamRivalry aggregates the meetings of two fixed duos. Team1 is the duo
// whose lower-id pair sorts first.
type TeamRivalry struct {
	Team1             [2]Player `json:"team1"`
	Team2             [2]Player `json:"team2"`
	Played            int       `json:"played"`
	Team1Wins         int       `json:"team1_wins"`
	Draws             int       `json:"draws"`
	Team2Wins         int       `json:"team2_wins"`
	Team1ScoreFor     int       `json:"team1_gf"`
	Team1ScoreAgainst int       `json:"team1_ga"`
	WinShareTeam1     float64   `json:"win_share_team1"`
	RivalryScore      float64   `json:"rivalry_score"`
	DominanceScore    float64   `json:"dominance_score"`
}

type CupTransfer struct {
	Tournament TournamentRef `json:"tournament"`
	FromPlayer Player        `json:"from_player"`
	ToPlayer   Player        `json:"to_player"`
}

type CupState struct {
	Owner             Player         `json:"owner"`
	StreakTournaments int            `json:"streak_tournaments_participated"`
	StreakSince       *TournamentRef `json:"streak_since,omitempty"`
	History           []CupTransfer  `json:"history"`
}

// Partnership is the record of two teammates who shared a side.
type Partnership struct {
	PlayerA Player `json:"p1"`
	PlayerB Player `json:"p2"`
	Record
	ScoreDifference int     `json:"score_difference"`
	PointsPerMatch  float64 `json:"pts_per_match"`
	WinRate         float64 `json:"win_rate"`
}

type HeadToHead struct {
	GeneratedAt   time.Time     `json:"generated_at"`
	Mode          Mode          `json:"mode"`
	Scope         Scope         `json:"scope"`
	Order         string        `json:"order"`
	Rivalries     []Rivalry     `json:"rivalries"`
	Partnerships  []Partnership `json:"partnerships"`
	TeamRivalries []TeamRivalry `json:"team_rivalries"`
}
