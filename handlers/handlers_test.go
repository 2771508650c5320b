package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v4"

	"github.com/Dosada05/league-stats/handlers"
	"github.com/Dosada05/league-stats/models"
	"github.com/Dosada05/league-stats/routes"
	"github.com/Dosada05/league-stats/services"
)

const testSecret = "handler-secret"

type fakeStats struct {
	err       error
	lastForm  services.FormQuery
	lastLegs  int
	lastLimit int
}

func (f *fakeStats) Ratings(ctx context.Context, q services.RatingsQuery) (*models.RatingTable, error) {
	if f.err != nil {
		return nil, f.err
	}
	if q.Mode == "3v3" {
		return nil, fmt.Errorf("%w: %q", services.ErrInvalidMode, q.Mode)
	}
	return &models.RatingTable{Mode: models.ModeOverall, Rows: []models.RatingRow{
		{Player: models.Player{ID: 1, DisplayName: "Ana"}, Rating: 1021},
	}}, nil
}

func (f *fakeStats) AllRatings(ctx context.Context, scope string) ([]models.RatingTable, error) {
	return []models.RatingTable{{Mode: models.ModeOverall}, {Mode: models.Mode1v1}, {Mode: models.Mode2v2}}, f.err
}

func (f *fakeStats) PlayersOverview(ctx context.Context, q services.OverviewQuery) (*models.PlayersOverview, error) {
	overview := &models.PlayersOverview{}
	if q.LastN != nil {
		overview.LastN = *q.LastN
	}
	return overview, f.err
}

func (f *fakeStats) TournamentStandings(ctx context.Context, tournamentID int) (*models.Standings, error) {
	if tournamentID != 10 {
		return nil, services.ErrTournamentNotFound
	}
	return &models.Standings{Tournament: models.TournamentRef{ID: 10, Name: "Spring"}}, nil
}

func (f *fakeStats) PlayerForm(ctx context.Context, q services.FormQuery) (*models.FormSeries, error) {
	f.lastForm = q
	if q.Window != nil && *q.Window < 1 {
		return nil, services.ErrInvalidWindow
	}
	return &models.FormSeries{Player: models.Player{ID: q.PlayerID}, Points: []models.FormPoint{}}, nil
}

func (f *fakeStats) Streaks(ctx context.Context, q services.StreakQuery) (*models.StreakBoard, error) {
	f.lastLimit = q.Limit
	return &models.StreakBoard{}, nil
}

func (f *fakeStats) HeadToHead(ctx context.Context, q services.HeadToHeadQuery) (*models.HeadToHead, error) {
	f.lastLimit = q.Limit
	return &models.HeadToHead{Order: q.Order}, nil
}

func (f *fakeStats) Cup(ctx context.Context) (*models.CupState, error) {
	return nil, services.ErrCupNotConfigured
}

func (f *fakeStats) Schedule(ctx context.Context, tournamentID int, legs int) (*models.Schedule, error) {
	f.lastLegs = legs
	return &models.Schedule{Legs: legs}, nil
}

func (f *fakeStats) Odds(ctx context.Context, tournamentID int) (*models.TournamentOdds, error) {
	if tournamentID != 11 {
		return nil, services.ErrTournamentNotFound
	}
	return &models.TournamentOdds{Tournament: models.TournamentRef{ID: 11}, Odds: []models.MatchOdds{{MatchID: 110}}}, nil
}

type fakeSnapshots struct {
	scope string
	err   error
}

func (f *fakeSnapshots) PublishRatings(ctx context.Context, scope string) (*models.SnapshotResult, error) {
	f.scope = scope
	if f.err != nil {
		return nil, f.err
	}
	return &models.SnapshotResult{Key: "snapshots/ratings/x.json"}, nil
}

func newRouter(t *testing.T, stats *fakeStats, snaps *fakeSnapshots) http.Handler {
	t.Helper()
	router := chi.NewRouter()
	routes.SetupRoutes(router,
		routes.Options{CORSOrigins: []string{"*"}, JWTSecret: testSecret},
		handlers.NewStatsHandler(stats),
		handlers.NewAdminHandler(snaps),
	)
	return router
}

func do(t *testing.T, h http.Handler, method, target string, body string, header http.Header) (*httptest.ResponseRecorder, map[string]json.RawMessage) {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env map[string]json.RawMessage
	if rec.Body.Len() > 0 {
		if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
			t.Fatalf("decode %s %s: %v (%s)", method, target, err, rec.Body.String())
		}
	}
	return rec, env
}

func TestStatsRoutes(t *testing.T) {
	stats := &fakeStats{}
	router := newRouter(t, stats, &fakeSnapshots{})

	tests := []struct {
		name     string
		target   string
		want     int
		envelope string
	}{
		{"ratings", "/stats/ratings", http.StatusOK, "ratings"},
		{"ratings bad mode", "/stats/ratings?mode=3v3", http.StatusBadRequest, "error"},
		{"all ratings", "/stats/ratings/all", http.StatusOK, "tables"},
		{"players", "/stats/players?lastN=3", http.StatusOK, "overview"},
		{"players bad lastN", "/stats/players?lastN=x", http.StatusBadRequest, "error"},
		{"standings", "/tournaments/10/standings", http.StatusOK, "standings"},
		{"standings missing", "/tournaments/99/standings", http.StatusNotFound, "error"},
		{"standings bad id", "/tournaments/abc/standings", http.StatusBadRequest, "error"},
		{"schedule", "/tournaments/10/schedule?legs=2", http.StatusOK, "schedule"},
		{"odds", "/tournaments/11/odds", http.StatusOK, "odds"},
		{"odds missing", "/tournaments/99/odds", http.StatusNotFound, "error"},
		{"form", "/players/1/form?window=3&anchor=match", http.StatusOK, "form"},
		{"form bad window", "/players/1/form?window=0", http.StatusBadRequest, "error"},
		{"streaks", "/stats/streaks?limit=5", http.StatusOK, "streaks"},
		{"streaks negative limit", "/stats/streaks?limit=-1", http.StatusBadRequest, "error"},
		{"h2h", "/stats/h2h?order=played&limit=2", http.StatusOK, "h2h"},
		{"cup unconfigured", "/stats/cup", http.StatusNotFound, "error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, env := do(t, router, http.MethodGet, tt.target, "", nil)
			if rec.Code != tt.want {
				t.Fatalf("status = %d, want %d (%s)", rec.Code, tt.want, rec.Body.String())
			}
			if _, ok := env[tt.envelope]; !ok {
				t.Errorf("missing %q in %s", tt.envelope, rec.Body.String())
			}
		})
	}

	if stats.lastForm.PlayerID != 1 || stats.lastForm.Window == nil || *stats.lastForm.Window != 0 {
		t.Errorf("last form query = %+v", stats.lastForm)
	}
	if stats.lastLegs != 2 {
		t.Errorf("legs = %d", stats.lastLegs)
	}
}

func TestServerErrorHidesDetails(t *testing.T) {
	router := newRouter(t, &fakeStats{err: errors.New("connection refused")}, &fakeSnapshots{})
	rec, _ := do(t, router, http.MethodGet, "/stats/ratings", "", nil)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "connection refused") {
		t.Errorf("internal error leaked: %s", rec.Body.String())
	}
}

func adminHeader(t *testing.T, role string) http.Header {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": 1,
		"role":    role,
		"exp":     time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return http.Header{
		"Authorization": {"Bearer " + token},
		"Content-Type":  {"application/json"},
	}
}

func TestPublishSnapshot(t *testing.T) {
	t.Run("admin with body", func(t *testing.T) {
		snaps := &fakeSnapshots{}
		router := newRouter(t, &fakeStats{}, snaps)
		rec, env := do(t, router, http.MethodPost, "/admin/snapshots", `{"scope":"both"}`, adminHeader(t, "admin"))
		if rec.Code != http.StatusCreated {
			t.Fatalf("status = %d (%s)", rec.Code, rec.Body.String())
		}
		if _, ok := env["snapshot"]; !ok || snaps.scope != "both" {
			t.Errorf("scope=%q body=%s", snaps.scope, rec.Body.String())
		}
	})

	t.Run("unknown body field", func(t *testing.T) {
		router := newRouter(t, &fakeStats{}, &fakeSnapshots{})
		rec, _ := do(t, router, http.MethodPost, "/admin/snapshots", `{"bucket":"x"}`, adminHeader(t, "admin"))
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d", rec.Code)
		}
	})

	t.Run("disabled", func(t *testing.T) {
		router := newRouter(t, &fakeStats{}, &fakeSnapshots{err: services.ErrSnapshotsDisabled})
		rec, _ := do(t, router, http.MethodPost, "/admin/snapshots", "", adminHeader(t, "admin"))
		if rec.Code != http.StatusServiceUnavailable {
			t.Fatalf("status = %d", rec.Code)
		}
	})

	t.Run("not admin", func(t *testing.T) {
		router := newRouter(t, &fakeStats{}, &fakeSnapshots{})
		rec, _ := do(t, router, http.MethodPost, "/admin/snapshots", "", adminHeader(t, "player"))
		if rec.Code != http.StatusForbidden {
			t.Fatalf("status = %d", rec.Code)
		}
	})

	t.Run("anonymous", func(t *testing.T) {
		router := newRouter(t, &fakeStats{}, &fakeSnapshots{})
		rec, _ := do(t, router, http.MethodPost, "/admin/snapshots", "", nil)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d", rec.Code)
		}
	})
}
