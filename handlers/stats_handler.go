package handlers

import (
	"net/http"

	"github.com/Dosada05/league-stats/services"
)

type StatsHandler struct {
	statsService services.StatsService
}

func NewStatsHandler(ss services.StatsService) *StatsHandler {
	return &StatsHandler{statsService: ss}
}

// RatingsHandler godoc
// @Summary Elo rating table
// @Tags stats
// @Produce json
// @Param mode query string false "overall, 1v1 or 2v2"
// @Param scope query string false "tournaments, both or friendlies"
// @Success 200 {object} models.RatingTable
// @Router /stats/ratings [get]
func (h *StatsHandler) RatingsHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	table, err := h.statsService.Ratings(r.Context(), services.RatingsQuery{
		Mode:  q.Get("mode"),
		Scope: q.Get("scope"),
	})
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"ratings": table}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// AllRatingsHandler godoc
// @Summary Rating tables for every mode
// @Tags stats
// @Produce json
// @Param scope query string false "tournaments, both or friendlies"
// @Success 200 {array} models.RatingTable
// @Router /stats/ratings/all [get]
func (h *StatsHandler) AllRatingsHandler(w http.ResponseWriter, r *http.Request) {
	tables, err := h.statsService.AllRatings(r.Context(), r.URL.Query().Get("scope"))
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"tables": tables}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// PlayersHandler godoc
// @Summary Players overview with last-N form and tournament positions
// @Tags stats
// @Produce json
// @Param scope query string false "tournaments, both or friendlies"
// @Param lastN query int false "number of recent matches"
// @Success 200 {object} models.PlayersOverview
// @Router /stats/players [get]
func (h *StatsHandler) PlayersHandler(w http.ResponseWriter, r *http.Request) {
	lastN, err := queryInt(r, "lastN")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	overview, err := h.statsService.PlayersOverview(r.Context(), services.OverviewQuery{
		Scope: r.URL.Query().Get("scope"),
		LastN: lastN,
	})
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"overview": overview}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// StandingsHandler godoc
// @Summary Tournament standings
// @Tags tournaments
// @Produce json
// @Param tournamentID path int true "tournament id"
// @Success 200 {object} models.Standings
// @Failure 404 {object} map[string]string
// @Router /tournaments/{tournamentID}/standings [get]
func (h *StatsHandler) StandingsHandler(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	standings, err := h.statsService.TournamentStandings(r.Context(), id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"standings": standings}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ScheduleHandler godoc
// @Summary Round-robin fixtures for a 1v1 tournament
// @Tags tournaments
// @Produce json
// @Param tournamentID path int true "tournament id"
// @Param legs query int false "1 or 2"
// @Success 200 {object} models.Schedule
// @Router /tournaments/{tournamentID}/schedule [get]
func (h *StatsHandler) ScheduleHandler(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	legs, err := queryInt(r, "legs")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	n := 0
	if legs != nil {
		n = *legs
	}
	schedule, err := h.statsService.Schedule(r.Context(), id, n)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"schedule": schedule}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// OddsHandler godoc
// @Summary Decimal odds for the upcoming matches of a tournament
// @Tags tournaments
// @Produce json
// @Param tournamentID path int true "tournament id"
// @Success 200 {object} models.TournamentOdds
// @Failure 404 {object} map[string]string
// @Router /tournaments/{tournamentID}/odds [get]
func (h *StatsHandler) OddsHandler(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	odds, err := h.statsService.Odds(r.Context(), id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"odds": odds}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// FormHandler godoc
// @Summary Rolling form of one player
// @Tags players
// @Produce json
// @Param playerID path int true "player id"
// @Param window query int false "trailing window size"
// @Param mode query string false "overall, 1v1 or 2v2"
// @Param scope query string false "tournaments, both or friendlies"
// @Param anchor query string false "tournament or match"
// @Success 200 {object} models.FormSeries
// @Router /players/{playerID}/form [get]
func (h *StatsHandler) FormHandler(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "playerID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	window, err := queryInt(r, "window")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	q := r.URL.Query()
	series, err := h.statsService.PlayerForm(r.Context(), services.FormQuery{
		PlayerID: id,
		Window:   window,
		Mode:     q.Get("mode"),
		Scope:    q.Get("scope"),
		Anchor:   q.Get("anchor"),
	})
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"form": series}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// StreaksHandler godoc
// @Summary Current and record streaks
// @Tags stats
// @Produce json
// @Param mode query string false "overall, 1v1 or 2v2"
// @Param scope query string false "tournaments, both or friendlies"
// @Param category query string false "streak category key"
// @Param player_id query int false "restrict to one player"
// @Param limit query int false "rows per leaderboard"
// @Success 200 {object} models.StreakBoard
// @Router /stats/streaks [get]
func (h *StatsHandler) StreaksHandler(w http.ResponseWriter, r *http.Request) {
	playerID, err := queryInt(r, "player_id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	limit, err := queryLimit(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	q := r.URL.Query()
	board, err := h.statsService.Streaks(r.Context(), services.StreakQuery{
		Mode:     q.Get("mode"),
		Scope:    q.Get("scope"),
		Category: q.Get("category"),
		PlayerID: playerID,
		Limit:    limit,
	})
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"streaks": board}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// HeadToHeadHandler godoc
// @Summary Rivalries and partnerships
// @Tags stats
// @Produce json
// @Param mode query string false "overall, 1v1 or 2v2"
// @Param scope query string false "tournaments, both or friendlies"
// @Param order query string false "rivalry or played"
// @Param limit query int false "rows per list"
// @Success 200 {object} models.HeadToHead
// @Router /stats/h2h [get]
func (h *StatsHandler) HeadToHeadHandler(w http.ResponseWriter, r *http.Request) {
	limit, err := queryLimit(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	q := r.URL.Query()
	h2h, err := h.statsService.HeadToHead(r.Context(), services.HeadToHeadQuery{
		Mode:  q.Get("mode"),
		Scope: q.Get("scope"),
		Order: q.Get("order"),
		Limit: limit,
	})
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"h2h": h2h}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// CupHandler godoc
// @Summary Current cup holder and transfer history
// @Tags stats
// @Produce json
// @Success 200 {object} models.CupState
// @Failure 404 {object} map[string]string
// @Router /stats/cup [get]
func (h *StatsHandler) CupHandler(w http.ResponseWriter, r *http.Request) {
	cup, err := h.statsService.Cup(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"cup": cup}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
