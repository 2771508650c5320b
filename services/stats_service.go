package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Dosada05/league-stats/brackets"
	"github.com/Dosada05/league-stats/config"
	"github.com/Dosada05/league-stats/models"
	"github.com/Dosada05/league-stats/repositories"
	"github.com/Dosada05/league-stats/stats"
)

// Query parameters arrive as raw strings; an empty string takes the configured default.
type RatingsQuery struct {
	Mode  string
	Scope string
}

type OverviewQuery struct {
	Scope string
	LastN *int
}

type FormQuery struct {
	PlayerID int
	Window   *int
	Mode     string
	Scope    string
	Anchor   string
}

type StreakQuery struct {
	Mode     string
	Scope    string
	Category string
	PlayerID *int
	Limit    int
}

type HeadToHeadQuery struct {
	Mode  string
	Scope string
	Order string
	Limit int
}

type StatsService interface {
	Ratings(ctx context.Context, q RatingsQuery) (*models.RatingTable, error)
	AllRatings(ctx context.Context, scope string) ([]models.RatingTable, error)
	PlayersOverview(ctx context.Context, q OverviewQuery) (*models.PlayersOverview, error)
	TournamentStandings(ctx context.Context, tournamentID int) (*models.Standings, error)
	PlayerForm(ctx context.Context, q FormQuery) (*models.FormSeries, error)
	Streaks(ctx context.Context, q StreakQuery) (*models.StreakBoard, error)
	HeadToHead(ctx context.Context, q HeadToHeadQuery) (*models.HeadToHead, error)
	Cup(ctx context.Context) (*models.CupState, error)
	Schedule(ctx context.Context, tournamentID int, legs int) (*models.Schedule, error)
	Odds(ctx context.Context, tournamentID int) (*models.TournamentOdds, error)
}

type statsService struct {
	playerRepo     repositories.PlayerRepository
	tournamentRepo repositories.TournamentRepository
	matchRepo      repositories.MatchRepository
	generator      brackets.FixtureGenerator
	defaults       config.StatsDefaults
	cupOwnerID     *int
	logger         *slog.Logger
	now            func() time.Time
}

func NewStatsService(
	playerRepo repositories.PlayerRepository,
	tournamentRepo repositories.TournamentRepository,
	matchRepo repositories.MatchRepository,
	generator brackets.FixtureGenerator,
	defaults config.StatsDefaults,
	cupOwnerID *int,
	logger *slog.Logger,
) StatsService {
	return &statsService{
		playerRepo:     playerRepo,
		tournamentRepo: tournamentRepo,
		matchRepo:      matchRepo,
		generator:      generator,
		defaults:       defaults,
		cupOwnerID:     cupOwnerID,
		logger:         logger,
		now:            time.Now,
	}
}

func (s *statsService) selection(mode, scope string) (stats.Selection, error) {
	m, err := models.ParseMode(mode)
	if err != nil {
		return stats.Selection{}, fmt.Errorf("%w: %v", ErrInvalidMode, err)
	}
	sc, err := models.ParseScope(scope, s.defaults.Scope)
	if err != nil {
		return stats.Selection{}, fmt.Errorf("%w: %v", ErrInvalidScope, err)
	}
	return stats.Selection{Mode: m, Scope: sc, IncludeLive: s.defaults.IncludeLive}, nil
}

// loadHistory reads the feeds the scope needs in parallel.
func (s *statsService) loadHistory(ctx context.Context, scope models.Scope) (stats.History, error) {
	var (
		h                             stats.History
		tournamentMatches, friendlies []models.Match
	)
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		players, err := s.playerRepo.List(gCtx, nil)
		if err != nil {
			return err
		}
		h.Players = players
		return nil
	})
	g.Go(func() error {
		tournaments, err := s.tournamentRepo.List(gCtx, nil)
		if err != nil {
			return err
		}
		h.Tournaments = tournaments
		return nil
	})
	if scope.IncludesTournaments() {
		g.Go(func() error {
			matches, err := s.matchRepo.ListTournamentMatches(gCtx, nil)
			if err != nil {
				return err
			}
			tournamentMatches = matches
			return nil
		})
	}
	if scope.IncludesFriendlies() {
		g.Go(func() error {
			matches, err := s.matchRepo.ListFriendlies(gCtx, nil)
			if err != nil {
				return err
			}
			friendlies = matches
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return stats.History{}, fmt.Errorf("failed to load match history: %w", err)
	}
	h.Matches = slices.Concat(tournamentMatches, friendlies)
	return h, nil
}

// logSkipped reports finished matches the folds ignore.
func (s *statsService) logSkipped(op string, matches []models.Match) {
	if !s.logger.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	for _, m := range matches {
		if m.IsFinished() && !stats.Playable(m) {
			s.logger.Debug("skipping malformed match", "op", op, "match_id", m.ID)
		}
	}
}

func (s *statsService) Ratings(ctx context.Context, q RatingsQuery) (*models.RatingTable, error) {
	sel, err := s.selection(q.Mode, q.Scope)
	if err != nil {
		return nil, err
	}
	h, err := s.loadHistory(ctx, sel.Scope)
	if err != nil {
		return nil, err
	}
	return s.ratingTable(ctx, h, sel)
}

// AllRatings computes the overall, 1v1 and 2v2 tables from one history load.
func (s *statsService) AllRatings(ctx context.Context, scope string) ([]models.RatingTable, error) {
	sel, err := s.selection("", scope)
	if err != nil {
		return nil, err
	}
	h, err := s.loadHistory(ctx, sel.Scope)
	if err != nil {
		return nil, err
	}

	modes := []models.Mode{models.ModeOverall, models.Mode1v1, models.Mode2v2}
	tables := make([]models.RatingTable, len(modes))
	g, gCtx := errgroup.WithContext(ctx)
	for i, mode := range modes {
		modeSel := sel
		modeSel.Mode = mode
		g.Go(func() error {
			table, err := s.ratingTable(gCtx, h, modeSel)
			if err != nil {
				return fmt.Errorf("ratings for mode %s: %w", mode, err)
			}
			tables[i] = *table
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return tables, nil
}

func (s *statsService) ratingTable(ctx context.Context, h stats.History, sel stats.Selection) (*models.RatingTable, error) {
	matches := stats.Select(h, sel)
	s.logSkipped("ratings", matches)
	rows, err := stats.RatingRows(ctx, h.Players, matches)
	if err != nil {
		return nil, err
	}
	return &models.RatingTable{
		GeneratedAt: s.now().UTC(),
		Mode:        sel.Mode,
		Scope:       sel.Scope,
		BaseRating:  stats.BaseRating,
		K:           stats.BaseK,
		Rows:        rows,
	}, nil
}

func (s *statsService) PlayersOverview(ctx context.Context, q OverviewQuery) (*models.PlayersOverview, error) {
	sel, err := s.selection("", q.Scope)
	if err != nil {
		return nil, err
	}
	lastN := s.defaults.LastN
	if q.LastN != nil {
		if *q.LastN < 0 {
			return nil, fmt.Errorf("%w: got %d", ErrInvalidLastN, *q.LastN)
		}
		lastN = *q.LastN
	}
	// Positions columns come from tournament standings whatever the scope.
	loadScope := sel.Scope
	if !loadScope.IncludesTournaments() {
		loadScope = models.ScopeBoth
	}
	h, err := s.loadHistory(ctx, loadScope)
	if err != nil {
		return nil, err
	}

	matches := stats.Select(h, sel)
	s.logSkipped("players_overview", matches)
	records := stats.FoldAll(matches)

	dir := stats.NewDirectory(h.Players)
	byTournament := h.MatchesByTournament()
	done := h.DoneTournaments()
	refs := make([]models.TournamentRef, 0, len(done))
	positions := make(map[int]map[int]int, len(done))
	for _, t := range done {
		ms := byTournament[t.ID]
		positions[t.ID] = stats.Positions(stats.Standings(ms, dir.Participants(t, ms)))
		refs = append(refs, t.Ref())
	}

	rows := make([]models.PlayerOverview, 0, len(h.Players))
	for _, p := range h.Players {
		row := models.PlayerOverview{Player: p, Positions: make(map[int]*int, len(done))}
		if rec, ok := records[p.ID]; ok {
			row.Record = *rec
		}
		row.ScoreDifference = row.Record.ScoreDifference()
		row.LastPoints, row.LastAverage = stats.LastN(p.ID, matches, lastN)
		for _, t := range done {
			if rank, ok := positions[t.ID][p.ID]; ok {
				row.Positions[t.ID] = &rank
			} else {
				row.Positions[t.ID] = nil
			}
		}
		rows = append(rows, row)
	}

	return &models.PlayersOverview{
		GeneratedAt: s.now().UTC(),
		Scope:       sel.Scope,
		LastN:       lastN,
		Tournaments: refs,
		Players:     rows,
	}, nil
}

func (s *statsService) TournamentStandings(ctx context.Context, tournamentID int) (*models.Standings, error) {
	var (
		tournament *models.Tournament
		matches    []models.Match
		players    []models.Player
	)
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		t, err := s.tournamentRepo.GetByID(gCtx, nil, tournamentID)
		if err != nil {
			return handleRepositoryError(err, "tournament", tournamentID)
		}
		tournament = t
		return nil
	})
	g.Go(func() error {
		ms, err := s.matchRepo.ListByTournament(gCtx, nil, tournamentID)
		if err != nil {
			return err
		}
		matches = ms
		return nil
	})
	g.Go(func() error {
		ps, err := s.playerRepo.List(gCtx, nil)
		if err != nil {
			return err
		}
		players = ps
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	status := tournament.Status
	if status == "" {
		status = stats.DeriveStatus(matches)
	}
	s.logSkipped("standings", matches)

	dir := stats.NewDirectory(players)
	rows := stats.Standings(matches, dir.Participants(*tournament, matches))
	out := &models.Standings{
		Tournament: tournament.Ref(),
		Status:     status,
		Rows:       rows,
	}
	if status == models.TournamentDone {
		if winnerID, ok := stats.UniqueWinner(rows); ok {
			out.WinnerID = &winnerID
		} else if stats.RequiresDecider(rows) {
			out.RequiresDecider = true
			out.DeciderPlayers = stats.TopTie(rows)
		}
	}
	return out, nil
}

func (s *statsService) PlayerForm(ctx context.Context, q FormQuery) (*models.FormSeries, error) {
	sel, err := s.selection(q.Mode, q.Scope)
	if err != nil {
		return nil, err
	}
	window := s.defaults.FormWindow
	if q.Window != nil {
		window = *q.Window
	}
	if window < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidWindow, window)
	}
	anchor, err := parseAnchor(q.Anchor)
	if err != nil {
		return nil, err
	}

	h, err := s.loadHistory(ctx, sel.Scope)
	if err != nil {
		return nil, err
	}
	player, ok := stats.NewDirectory(h.Players)[q.PlayerID]
	if !ok {
		return nil, fmt.Errorf("%w: id %d", ErrPlayerNotFound, q.PlayerID)
	}

	matches := stats.Select(h, sel)
	s.logSkipped("form", matches)
	points, err := stats.FormSeries(player.ID, matches, window, anchor)
	if err != nil {
		if errors.Is(err, stats.ErrInvalidWindow) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidWindow, err)
		}
		return nil, err
	}

	names := make(map[int]string, len(h.Tournaments))
	for _, t := range h.Tournaments {
		names[t.ID] = t.Name
	}
	groupOf := make(map[int]int, len(matches))
	for _, m := range matches {
		if !m.IsFriendly() {
			groupOf[m.ID] = *m.TournamentID
		}
	}
	for i := range points {
		a := &points[i].Anchor
		if a.Friendly {
			a.Label = "Friendly"
			continue
		}
		tid := a.ID
		if a.Kind == models.AnchorMatch {
			tid = groupOf[a.ID]
		}
		a.Label = names[tid]
	}
	if points == nil {
		points = []models.FormPoint{}
	}

	return &models.FormSeries{
		Player: player,
		Window: window,
		Mode:   sel.Mode,
		Scope:  sel.Scope,
		Points: points,
	}, nil
}

func (s *statsService) Streaks(ctx context.Context, q StreakQuery) (*models.StreakBoard, error) {
	sel, err := s.selection(q.Mode, q.Scope)
	if err != nil {
		return nil, err
	}
	if q.Category != "" && !slices.Contains(stats.Categories(), q.Category) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCategory, q.Category)
	}
	h, err := s.loadHistory(ctx, sel.Scope)
	if err != nil {
		return nil, err
	}

	board := &models.StreakBoard{GeneratedAt: s.now().UTC(), Mode: sel.Mode, Scope: sel.Scope}
	if q.PlayerID != nil {
		p, ok := stats.NewDirectory(h.Players)[*q.PlayerID]
		if !ok {
			return nil, fmt.Errorf("%w: id %d", ErrPlayerNotFound, *q.PlayerID)
		}
		board.Player = &p
	}

	matches := stats.Select(h, sel)
	s.logSkipped("streaks", matches)
	var tournaments []models.Tournament
	if sel.Scope.IncludesTournaments() {
		for _, t := range h.DoneTournaments() {
			if sel.Mode == models.ModeOverall || t.Mode == sel.Mode {
				tournaments = append(tournaments, t)
			}
		}
	}

	categories, err := stats.Streaks(stats.StreakQuery{
		Players:     h.Players,
		Matches:     matches,
		Tournaments: tournaments,
		PlayerID:    q.PlayerID,
		Category:    q.Category,
		Limit:       q.Limit,
	})
	if err != nil {
		if errors.Is(err, stats.ErrUnknownCategory) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidCategory, err)
		}
		return nil, err
	}
	board.Categories = categories
	return board, nil
}

func (s *statsService) HeadToHead(ctx context.Context, q HeadToHeadQuery) (*models.HeadToHead, error) {
	sel, err := s.selection(q.Mode, q.Scope)
	if err != nil {
		return nil, err
	}
	order, err := parseOrder(q.Order)
	if err != nil {
		return nil, err
	}
	h, err := s.loadHistory(ctx, sel.Scope)
	if err != nil {
		return nil, err
	}

	matches := stats.Select(h, sel)
	s.logSkipped("head_to_head", matches)
	dir := stats.NewDirectory(h.Players)
	return &models.HeadToHead{
		GeneratedAt:   s.now().UTC(),
		Mode:          sel.Mode,
		Scope:         sel.Scope,
		Order:         string(order),
		Rivalries:     stats.Rivalries(dir, matches, order, q.Limit),
		Partnerships:  stats.Partnerships(dir, matches, q.Limit),
		TeamRivalries: stats.TeamRivalries(dir, matches, order, q.Limit),
	}, nil
}

func (s *statsService) Cup(ctx context.Context) (*models.CupState, error) {
	if s.cupOwnerID == nil {
		return nil, ErrCupNotConfigured
	}
	h, err := s.loadHistory(ctx, models.ScopeTournaments)
	if err != nil {
		return nil, err
	}
	state, err := stats.Cup(h, *s.cupOwnerID)
	if err != nil {
		if errors.Is(err, stats.ErrUnknownPlayer) {
			return nil, fmt.Errorf("%w: %v", ErrPlayerNotFound, err)
		}
		return nil, err
	}
	return &state, nil
}

// Schedule builds the round robin of a 1v1 tournament's registered players.
// 2v2 tournaments have no fixed teams to pair.
func (s *statsService) Schedule(ctx context.Context, tournamentID int, legs int) (*models.Schedule, error) {
	if legs == 0 {
		legs = 1
	}
	if legs != 1 && legs != 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidLegs, legs)
	}
	t, err := s.tournamentRepo.GetByID(ctx, nil, tournamentID)
	if err != nil {
		return nil, handleRepositoryError(err, "tournament", tournamentID)
	}
	if t.Mode != models.Mode1v1 {
		return nil, fmt.Errorf("%w: schedule for %s tournament %d", ErrUnsupportedMode, t.Mode, t.ID)
	}

	matches, err := s.generator.Generate(ctx, brackets.GenerateParams{
		TournamentID: t.ID,
		Date:         t.Date,
		Mode:         t.Mode,
		Entrants:     brackets.Singles(t.PlayerIDs),
		Legs:         legs,
	})
	if err != nil {
		switch {
		case errors.Is(err, brackets.ErrNotEnoughEntrants):
			return nil, fmt.Errorf("%w: tournament %d", ErrNotEnoughPlayers, t.ID)
		case errors.Is(err, brackets.ErrInvalidLegs):
			return nil, fmt.Errorf("%w: %v", ErrInvalidLegs, err)
		}
		return nil, err
	}

	s.logger.Info("schedule generated", "tournament_id", t.ID, "generator", s.generator.GetName(), "matches", len(matches))
	return &models.Schedule{
		Tournament: t.Ref(),
		Generator:  s.generator.GetName(),
		Legs:       legs,
		Matches:    matches,
	}, nil
}

// Odds prices the scheduled and playing matches of a tournament from every
// finished tournament match, live tournaments included.
func (s *statsService) Odds(ctx context.Context, tournamentID int) (*models.TournamentOdds, error) {
	t, err := s.tournamentRepo.GetByID(ctx, nil, tournamentID)
	if err != nil {
		return nil, handleRepositoryError(err, "tournament", tournamentID)
	}
	h, err := s.loadHistory(ctx, models.ScopeTournaments)
	if err != nil {
		return nil, err
	}

	history := stats.Select(h, stats.Selection{Mode: models.ModeOverall, Scope: models.ScopeTournaments, IncludeLive: true})
	upcoming := stats.Chronological(h.MatchesByTournament()[t.ID])
	params := stats.DefaultOddsParams()
	if s.defaults.FormWindow > 0 {
		params.FormWindow = s.defaults.FormWindow
	}
	odds, err := stats.MatchOdds(ctx, history, upcoming, t.Mode, params)
	if err != nil {
		if errors.Is(err, stats.ErrOddsMode) {
			return nil, fmt.Errorf("%w: odds for %s tournament %d", ErrUnsupportedMode, t.Mode, t.ID)
		}
		return nil, err
	}
	s.logger.Debug("odds priced", "tournament_id", t.ID, "matches", len(odds))
	return &models.TournamentOdds{
		GeneratedAt: s.now().UTC(),
		Tournament:  t.Ref(),
		Mode:        t.Mode,
		Odds:        odds,
	}, nil
}
