package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Dosada05/league-stats/models"
)

type PlayerRepository interface {
	List(ctx context.Context, exec SQLExecutor) ([]models.Player, error)
}

type sqlPlayerRepository struct {
	db      *sql.DB
	dialect Dialect
}

func NewPlayerRepository(db *sql.DB, dialect Dialect) PlayerRepository {
	return &sqlPlayerRepository{db: db, dialect: dialect}
}

func (r *sqlPlayerRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

func (r *sqlPlayerRepository) List(ctx context.Context, exec SQLExecutor) ([]models.Player, error) {
	executor := r.getExecutor(exec)
	// Порядок по имени, id только для стабильности
	query := `SELECT id, display_name FROM players ORDER BY display_name, id`

	rows, err := executor.QueryContext(ctx, r.dialect.rebind(query))
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	defer rows.Close()

	players := make([]models.Player, 0)
	for rows.Next() {
		var p models.Player
		if scanErr := rows.Scan(&p.ID, &p.DisplayName); scanErr != nil {
			return nil, fmt.Errorf("failed to scan player: %w", scanErr)
		}
		players = append(players, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error during player rows iteration: %w", err)
	}
	return players, nil
}
