package brackets

import (
	"context"
	"time"

	"github.com/Dosada05/league-stats/models"
)

// GenerateParams describes the fixtures to build for one tournament. Each
// entrant is one side: a single player in 1v1, a fixed pair in 2v2.
type GenerateParams struct {
	TournamentID int
	Date         time.Time
	Mode         models.Mode
	Entrants     [][]int
	Legs         int
}

type FixtureGenerator interface {
	Generate(ctx context.Context, params GenerateParams) ([]models.Match, error)

	GetName() string
}
