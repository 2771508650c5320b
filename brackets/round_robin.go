package brackets

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/Dosada05/league-stats/models"
)

var (
	ErrNotEnoughEntrants = errors.New("round robin needs at least 2 entrants")
	ErrInvalidLegs       = errors.New("round robin supports 1 or 2 legs")
	ErrOverlappingSides  = errors.New("entrants share a player")
)

type RoundRobinGenerator struct{}

func NewRoundRobinGenerator() FixtureGenerator {
	return &RoundRobinGenerator{}
}

func (g *RoundRobinGenerator) GetName() string {
	return "RoundRobin"
}

// Generate pairs every entrant with every other once per leg. The second leg
// repeats the first with sides swapped; order indexes run on across legs.
func (g *RoundRobinGenerator) Generate(ctx context.Context, params GenerateParams) ([]models.Match, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	pairs, err := RoundRobin(params.Entrants, params.Legs)
	if err != nil {
		return nil, fmt.Errorf("RoundRobinGenerator: tournament %d: %w", params.TournamentID, err)
	}

	tid := params.TournamentID
	matches := make([]models.Match, 0, len(pairs))
	for i, p := range pairs {
		matches = append(matches, models.Match{
			TournamentID: &tid,
			Leg:          p.Leg,
			OrderIndex:   i + 1,
			State:        models.MatchScheduled,
			Date:         params.Date,
			Mode:         params.Mode,
			A:            models.MatchSide{Side: models.SideA, PlayerIDs: slices.Clone(p.A)},
			B:            models.MatchSide{Side: models.SideB, PlayerIDs: slices.Clone(p.B)},
		})
	}
	return matches, nil
}

// Pairing is one fixture of a round robin.
type Pairing struct {
	Leg int
	A   []int
	B   []int
}

// RoundRobin lists the fixtures between entrants in play order.
func RoundRobin(entrants [][]int, legs int) ([]Pairing, error) {
	if len(entrants) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrNotEnoughEntrants, len(entrants))
	}
	if legs != 1 && legs != 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidLegs, legs)
	}
	seen := make(map[int]struct{})
	for _, e := range entrants {
		if len(e) == 0 {
			return nil, fmt.Errorf("%w: empty entrant", ErrNotEnoughEntrants)
		}
		for _, id := range e {
			if _, dup := seen[id]; dup {
				return nil, fmt.Errorf("%w: player %d", ErrOverlappingSides, id)
			}
			seen[id] = struct{}{}
		}
	}

	perLeg := len(entrants) * (len(entrants) - 1) / 2
	out := make([]Pairing, 0, perLeg*legs)
	for i := 0; i < len(entrants); i++ {
		for j := i + 1; j < len(entrants); j++ {
			out = append(out, Pairing{Leg: 1, A: entrants[i], B: entrants[j]})
		}
	}
	if legs == 2 {
		for _, p := range out[:perLeg] {
			out = append(out, Pairing{Leg: 2, A: p.B, B: p.A})
		}
	}
	return out, nil
}

// Singles turns player ids into one-player entrants.
func Singles(playerIDs []int) [][]int {
	out := make([][]int, len(playerIDs))
	for i, id := range playerIDs {
		out[i] = []int{id}
	}
	return out
}
