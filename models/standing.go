package models

// Record is the cumulative W/D/L and goals tally of one player over a set of matches.
type Record struct {
	GamesPlayed  int `json:"games_played"`
	Wins         int `json:"wins"`
	Draws        int `json:"draws"`
	Losses       int `json:"losses"`
	ScoreFor     int `json:"score_for"`
	ScoreAgainst int `json:"score_against"`
	Points       int `json:"points"`
}

func (r Record) ScoreDifference() int {
	return r.ScoreFor - r.ScoreAgainst
}

// StandingsRow is one line of a tournament table. Rank is the competition
// position (1,1,3) on points, goal difference and goals for.
type StandingsRow struct {
	PlayerID int    `json:"player_id"`
	Name     string `json:"name"`
	Record
	ScoreDifference int `json:"score_difference"`
	Rank            int `json:"rank"`
}

type Standings struct {
	Tournament      TournamentRef    `json:"tournament"`
	Status          TournamentStatus `json:"status"`
	Rows            []StandingsRow   `json:"rows"`
	RequiresDecider bool             `json:"requires_decider"`
	DeciderPlayers  []int            `json:"decider_player_ids,omitempty"`
	WinnerID        *int             `json:"winner_id,omitempty"`
}
