package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Dosada05/league-stats/models"
)

var ErrTournamentNotFound = errors.New("tournament not found")

type TournamentRepository interface {
	GetByID(ctx context.Context, exec SQLExecutor, id int) (*models.Tournament, error)
	List(ctx context.Context, exec SQLExecutor) ([]models.Tournament, error)
}

type sqlTournamentRepository struct {
	db      *sql.DB
	dialect Dialect
}

func NewTournamentRepository(db *sql.DB, dialect Dialect) TournamentRepository {
	return &sqlTournamentRepository{db: db, dialect: dialect}
}

func (r *sqlTournamentRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

func (r *sqlTournamentRepository) GetByID(ctx context.Context, exec SQLExecutor, id int) (*models.Tournament, error) {
	executor := r.getExecutor(exec)
	query := `SELECT id, name, date, mode, status FROM tournaments WHERE id = ?`

	t, err := scanTournament(executor.QueryRowContext(ctx, r.dialect.rebind(query), id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTournamentNotFound
		}
		return nil, fmt.Errorf("failed to get tournament %d: %w", id, err)
	}

	registered, err := r.listPlayerIDs(ctx, executor, &id)
	if err != nil {
		return nil, err
	}
	t.PlayerIDs = registered[t.ID]
	return &t, nil
}

// List возвращает все турниры по дате, затем по id, вместе с зарегистрированными игроками.
func (r *sqlTournamentRepository) List(ctx context.Context, exec SQLExecutor) ([]models.Tournament, error) {
	executor := r.getExecutor(exec)
	query := `SELECT id, name, date, mode, status FROM tournaments ORDER BY date, id`

	rows, err := executor.QueryContext(ctx, r.dialect.rebind(query))
	if err != nil {
		return nil, fmt.Errorf("failed to list tournaments: %w", err)
	}
	defer rows.Close()

	tournaments := make([]models.Tournament, 0)
	for rows.Next() {
		t, scanErr := scanTournament(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan tournament: %w", scanErr)
		}
		tournaments = append(tournaments, t)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error during tournament rows iteration: %w", err)
	}

	registered, err := r.listPlayerIDs(ctx, executor, nil)
	if err != nil {
		return nil, err
	}
	for i := range tournaments {
		tournaments[i].PlayerIDs = registered[tournaments[i].ID]
	}
	return tournaments, nil
}

func (r *sqlTournamentRepository) listPlayerIDs(ctx context.Context, executor SQLExecutor, tournamentID *int) (map[int][]int, error) {
	query := `SELECT tournament_id, player_id FROM tournament_players`
	args := []interface{}{}
	if tournamentID != nil {
		query += ` WHERE tournament_id = ?`
		args = append(args, *tournamentID)
	}
	query += ` ORDER BY tournament_id, player_id`

	rows, err := executor.QueryContext(ctx, r.dialect.rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list tournament players: %w", err)
	}
	defer rows.Close()

	out := make(map[int][]int)
	for rows.Next() {
		var tid, pid int
		if scanErr := rows.Scan(&tid, &pid); scanErr != nil {
			return nil, fmt.Errorf("failed to scan tournament player: %w", scanErr)
		}
		out[tid] = append(out[tid], pid)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error during tournament player rows iteration: %w", err)
	}
	return out, nil
}

func scanTournament(rowScanner interface{ Scan(...interface{}) error }) (models.Tournament, error) {
	var (
		t      models.Tournament
		date   dbTime
		mode   string
		status string
	)
	if err := rowScanner.Scan(&t.ID, &t.Name, &date, &mode, &status); err != nil {
		return models.Tournament{}, err
	}
	t.Date = date.Time
	t.Mode = models.Mode(mode)
	t.Status = models.TournamentStatus(status)
	return t, nil
}
