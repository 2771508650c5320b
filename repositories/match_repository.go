package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Dosada05/league-stats/models"
)

// MatchRepository reads the match history feeds. Matches come back in
// chronological order with both sides and their players filled in.
type MatchRepository interface {
	ListByTournament(ctx context.Context, exec SQLExecutor, tournamentID int) ([]models.Match, error)
	ListTournamentMatches(ctx context.Context, exec SQLExecutor) ([]models.Match, error)
	// ListFriendlies returns standalone matches with ids shifted by
	// models.FriendlyMatchIDOffset. Databases without the friendlies tables yield none.
	ListFriendlies(ctx context.Context, exec SQLExecutor) ([]models.Match, error)
}

type sqlMatchRepository struct {
	db      *sql.DB
	dialect Dialect
}

func NewMatchRepository(db *sql.DB, dialect Dialect) MatchRepository {
	return &sqlMatchRepository{db: db, dialect: dialect}
}

func (r *sqlMatchRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

const (
	tournamentMatchesQuery = `
		SELECT m.id, m.tournament_id, m.leg, m.order_index, m.state, t.date, t.mode
		FROM matches m
		JOIN tournaments t ON t.id = m.tournament_id`
	tournamentSidesQuery = `
		SELECT s.match_id, s.side, s.goals, s.club_id, sp.player_id
		FROM match_sides s
		JOIN matches m ON m.id = s.match_id
		LEFT JOIN match_side_players sp ON sp.match_side_id = s.id`
	friendlyMatchesQuery = `
		SELECT f.id, NULL, 1, 0, f.state, f.date, f.mode
		FROM friendly_matches f
		ORDER BY f.date, f.id`
	friendlySidesQuery = `
		SELECT s.friendly_match_id, s.side, s.goals, s.club_id, sp.player_id
		FROM friendly_match_sides s
		LEFT JOIN friendly_match_side_players sp ON sp.friendly_match_side_id = s.id
		ORDER BY s.friendly_match_id, s.side, sp.player_id`
)

func (r *sqlMatchRepository) ListByTournament(ctx context.Context, exec SQLExecutor, tournamentID int) ([]models.Match, error) {
	executor := r.getExecutor(exec)
	matches, err := r.load(ctx, executor,
		tournamentMatchesQuery+` WHERE m.tournament_id = ? ORDER BY t.date, m.tournament_id, m.order_index, m.id`,
		tournamentSidesQuery+` WHERE m.tournament_id = ? ORDER BY s.match_id, s.side, sp.player_id`,
		tournamentID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches of tournament %d: %w", tournamentID, err)
	}
	return matches, nil
}

func (r *sqlMatchRepository) ListTournamentMatches(ctx context.Context, exec SQLExecutor) ([]models.Match, error) {
	executor := r.getExecutor(exec)
	matches, err := r.load(ctx, executor,
		tournamentMatchesQuery+` ORDER BY t.date, m.tournament_id, m.order_index, m.id`,
		tournamentSidesQuery+` ORDER BY s.match_id, s.side, sp.player_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list tournament matches: %w", err)
	}
	return matches, nil
}

func (r *sqlMatchRepository) ListFriendlies(ctx context.Context, exec SQLExecutor) ([]models.Match, error) {
	executor := r.getExecutor(exec)
	matches, err := r.load(ctx, executor, friendlyMatchesQuery, friendlySidesQuery)
	if err != nil {
		if isMissingTable(err) {
			return []models.Match{}, nil
		}
		return nil, fmt.Errorf("failed to list friendly matches: %w", err)
	}
	for i := range matches {
		matches[i].ID += models.FriendlyMatchIDOffset
	}
	return matches, nil
}

// load выполняет запрос матчей, затем заполняет стороны и игроков вторым запросом.
// Оба запроса принимают одни и те же аргументы.
func (r *sqlMatchRepository) load(ctx context.Context, executor SQLExecutor, matchQuery, sideQuery string, args ...interface{}) ([]models.Match, error) {
	rows, err := executor.QueryContext(ctx, r.dialect.rebind(matchQuery), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	matches := make([]models.Match, 0)
	index := make(map[int]int)
	for rows.Next() {
		var (
			m            models.Match
			tournamentID sql.NullInt64
			state, mode  string
			date         dbTime
		)
		if scanErr := rows.Scan(&m.ID, &tournamentID, &m.Leg, &m.OrderIndex, &state, &date, &mode); scanErr != nil {
			return nil, fmt.Errorf("failed to scan match: %w", scanErr)
		}
		m.TournamentID = nullableInt(tournamentID)
		m.State = models.MatchState(state)
		m.Mode = models.Mode(mode)
		m.Date = date.Time
		m.A.Side, m.B.Side = models.SideA, models.SideB
		index[m.ID] = len(matches)
		matches = append(matches, m)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error during match rows iteration: %w", err)
	}

	sideRows, err := executor.QueryContext(ctx, r.dialect.rebind(sideQuery), args...)
	if err != nil {
		return nil, err
	}
	defer sideRows.Close()

	for sideRows.Next() {
		var (
			matchID             int
			side                string
			goals, club, player sql.NullInt64
		)
		if scanErr := sideRows.Scan(&matchID, &side, &goals, &club, &player); scanErr != nil {
			return nil, fmt.Errorf("failed to scan match side: %w", scanErr)
		}
		i, ok := index[matchID]
		if !ok {
			continue // Сторона матча, которого нет в первой выборке
		}
		var s *models.MatchSide
		switch models.Side(side) {
		case models.SideA:
			s = &matches[i].A
		case models.SideB:
			s = &matches[i].B
		default:
			continue
		}
		s.Goals = nullableInt(goals)
		s.ClubID = nullableInt(club)
		if player.Valid { // LEFT JOIN: у стороны может не быть игроков
			s.PlayerIDs = append(s.PlayerIDs, int(player.Int64))
		}
	}
	if err = sideRows.Err(); err != nil {
		return nil, fmt.Errorf("error during match side rows iteration: %w", err)
	}
	return matches, nil
}
