package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/Dosada05/league-stats/brackets"
	"github.com/Dosada05/league-stats/config"
	"github.com/Dosada05/league-stats/models"
	"github.com/Dosada05/league-stats/repositories"
)

var day0 = time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)

func intPtr(v int) *int { return &v }

type fakePlayers struct {
	players []models.Player
	err     error
}

func (f *fakePlayers) List(ctx context.Context, exec repositories.SQLExecutor) ([]models.Player, error) {
	return f.players, f.err
}

type fakeTournaments struct {
	tournaments []models.Tournament
}

func (f *fakeTournaments) GetByID(ctx context.Context, exec repositories.SQLExecutor, id int) (*models.Tournament, error) {
	for _, t := range f.tournaments {
		if t.ID == id {
			t := t
			return &t, nil
		}
	}
	return nil, repositories.ErrTournamentNotFound
}

func (f *fakeTournaments) List(ctx context.Context, exec repositories.SQLExecutor) ([]models.Tournament, error) {
	return f.tournaments, nil
}

type fakeMatches struct {
	tournament []models.Match
	friendlies []models.Match
}

func (f *fakeMatches) ListByTournament(ctx context.Context, exec repositories.SQLExecutor, tournamentID int) ([]models.Match, error) {
	var out []models.Match
	for _, m := range f.tournament {
		if m.TournamentID != nil && *m.TournamentID == tournamentID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeMatches) ListTournamentMatches(ctx context.Context, exec repositories.SQLExecutor) ([]models.Match, error) {
	return f.tournament, nil
}

func (f *fakeMatches) ListFriendlies(ctx context.Context, exec repositories.SQLExecutor) ([]models.Match, error) {
	return f.friendlies, nil
}

func match(id int, tid *int, order int, a []int, ga int, b []int, gb int) models.Match {
	date := day0
	if tid == nil {
		date = day0.AddDate(0, 0, 3)
	}
	return models.Match{
		ID:           id,
		TournamentID: tid,
		Leg:          1,
		OrderIndex:   order,
		State:        models.MatchFinished,
		Date:         date,
		Mode:         models.Mode1v1,
		A:            models.MatchSide{Side: models.SideA, PlayerIDs: a, Goals: intPtr(ga)},
		B:            models.MatchSide{Side: models.SideB, PlayerIDs: b, Goals: intPtr(gb)},
	}
}

// league: Ana wins the done 1v1 tournament with 6 points, Cid beats Ana in a
// friendly, a live tournament is still scheduled and a 2v2 one is a draft.
func league() (*fakePlayers, *fakeTournaments, *fakeMatches) {
	spring, summer := intPtr(10), intPtr(11)
	scheduled := match(110, summer, 1, []int{1}, 0, []int{2}, 0)
	scheduled.State = models.MatchScheduled
	scheduled.A.Goals, scheduled.B.Goals = nil, nil
	scheduled.Date = day0.AddDate(0, 0, 7)

	return &fakePlayers{players: []models.Player{
			{ID: 1, DisplayName: "Ana"},
			{ID: 2, DisplayName: "Ben"},
			{ID: 3, DisplayName: "Cid"},
		}},
		&fakeTournaments{tournaments: []models.Tournament{
			{ID: 10, Name: "Spring", Date: day0, Mode: models.Mode1v1, Status: models.TournamentDone, PlayerIDs: []int{1, 2, 3}},
			{ID: 11, Name: "Summer", Date: day0.AddDate(0, 0, 7), Mode: models.Mode1v1, Status: models.TournamentLive, PlayerIDs: []int{1, 2}},
			{ID: 12, Name: "Duo", Date: day0.AddDate(0, 0, 14), Mode: models.Mode2v2, Status: models.TournamentDraft},
		}},
		&fakeMatches{
			tournament: []models.Match{
				match(100, spring, 1, []int{1}, 3, []int{2}, 0),
				match(101, spring, 2, []int{2}, 1, []int{3}, 1),
				match(102, spring, 3, []int{1}, 2, []int{3}, 1),
				// Overlapping sides; never counted.
				match(103, spring, 4, []int{1}, 5, []int{1}, 0),
				scheduled,
			},
			friendlies: []models.Match{
				match(models.FriendlyMatchIDOffset+1, nil, 0, []int{3}, 2, []int{1}, 0),
			},
		}
}

func newTestService(cupOwner *int) *statsService {
	p, t, m := league()
	defaults := config.StatsDefaults{Scope: models.ScopeTournaments, FormWindow: 2, LastN: 2}
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
	svc := NewStatsService(p, t, m, brackets.NewRoundRobinGenerator(), defaults, cupOwner, logger).(*statsService)
	svc.now = func() time.Time { return day0.AddDate(0, 1, 0) }
	return svc
}

var errStorage = errors.New("storage unavailable")
