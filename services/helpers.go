package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Dosada05/league-stats/models"
	"github.com/Dosada05/league-stats/repositories"
	"github.com/Dosada05/league-stats/stats"
)

func parseAnchor(s string) (models.AnchorKind, error) {
	switch k := models.AnchorKind(strings.ToLower(strings.TrimSpace(s))); k {
	case "", models.AnchorTournament:
		return models.AnchorTournament, nil
	case models.AnchorMatch:
		return k, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidAnchor, s)
	}
}

func parseOrder(s string) (stats.RivalryOrder, error) {
	switch o := stats.RivalryOrder(strings.ToLower(strings.TrimSpace(s))); o {
	case "", stats.OrderByRivalry:
		return stats.OrderByRivalry, nil
	case stats.OrderByPlayed:
		return o, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidOrder, s)
	}
}

// handleRepositoryError maps repository sentinels to service errors.
func handleRepositoryError(err error, entity string, id int) error {
	if errors.Is(err, repositories.ErrTournamentNotFound) {
		return fmt.Errorf("%w: %s %d", ErrTournamentNotFound, entity, id)
	}
	return fmt.Errorf("failed to load %s %d: %w", entity, id, err)
}
