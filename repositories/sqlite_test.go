package repositories_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/Dosada05/league-stats/db"
	"github.com/Dosada05/league-stats/models"
	"github.com/Dosada05/league-stats/repositories"
)

const fixture = `
INSERT INTO players (id, display_name) VALUES (1, 'Ana'), (2, 'Ben'), (3, 'Cid'), (4, 'Dee');
INSERT INTO tournaments (id, name, date, mode, status) VALUES
    (10, 'Spring Cup', '2024-03-01', '1v1', 'done'),
    (11, 'Duo Night', '2024-03-08', '2v2', 'live');
INSERT INTO tournament_players (tournament_id, player_id) VALUES (10, 2), (10, 1), (11, 1), (11, 2), (11, 3), (11, 4);
INSERT INTO matches (id, tournament_id, leg, order_index, state) VALUES
    (100, 10, 1, 2, 'finished'),
    (101, 10, 1, 1, 'finished'),
    (102, 11, 1, 1, 'scheduled');
INSERT INTO match_sides (id, match_id, side, goals, club_id) VALUES
    (1, 100, 'A', 2, 7), (2, 100, 'B', 1, NULL),
    (3, 101, 'A', 0, NULL), (4, 101, 'B', 0, NULL),
    (5, 102, 'A', NULL, NULL), (6, 102, 'B', NULL, NULL);
INSERT INTO match_side_players (match_side_id, player_id) VALUES
    (1, 1), (2, 2), (3, 2), (4, 1),
    (5, 3), (5, 1), (6, 2), (6, 4);
INSERT INTO friendly_matches (id, date, mode, state) VALUES (1, '2024-03-05', '1v1', 'finished');
INSERT INTO friendly_match_sides (id, friendly_match_id, side, goals, club_id) VALUES (1, 1, 'A', 3, NULL), (2, 1, 'B', 3, NULL);
INSERT INTO friendly_match_side_players (friendly_match_side_id, player_id) VALUES (1, 3), (2, 4);
`

func openTestDB(t *testing.T, withSchema bool) *sql.DB {
	t.Helper()
	conn, err := db.Connect(repositories.DialectSQLite, ":memory:", time.Second)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	if !withSchema {
		return conn
	}
	ctx := context.Background()
	if err := db.EnsureSchema(ctx, conn); err != nil {
		t.Fatalf("schema: %v", err)
	}
	if _, err := conn.ExecContext(ctx, fixture); err != nil {
		t.Fatalf("fixture: %v", err)
	}
	return conn
}

func TestPlayerRepositoryList(t *testing.T) {
	conn := openTestDB(t, true)
	repo := repositories.NewPlayerRepository(conn, repositories.DialectSQLite)

	players, err := repo.List(context.Background(), nil)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(players) != 4 || players[0].DisplayName != "Ana" || players[3].DisplayName != "Dee" {
		t.Fatalf("players = %+v", players)
	}
}

func TestTournamentRepository(t *testing.T) {
	conn := openTestDB(t, true)
	repo := repositories.NewTournamentRepository(conn, repositories.DialectSQLite)
	ctx := context.Background()

	t.Run("list", func(t *testing.T) {
		tournaments, err := repo.List(ctx, nil)
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if len(tournaments) != 2 {
			t.Fatalf("got %d tournaments", len(tournaments))
		}
		first := tournaments[0]
		if first.ID != 10 || first.Mode != models.Mode1v1 || first.Status != models.TournamentDone {
			t.Errorf("first = %+v", first)
		}
		if !first.Date.Equal(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("date = %v", first.Date)
		}
		if len(first.PlayerIDs) != 2 || first.PlayerIDs[0] != 1 {
			t.Errorf("player ids = %v", first.PlayerIDs)
		}
	})

	t.Run("get", func(t *testing.T) {
		tournament, err := repo.GetByID(ctx, nil, 11)
		if err != nil {
			t.Fatalf("GetByID: %v", err)
		}
		if tournament.Name != "Duo Night" || len(tournament.PlayerIDs) != 4 {
			t.Errorf("tournament = %+v", tournament)
		}
	})

	t.Run("missing", func(t *testing.T) {
		_, err := repo.GetByID(ctx, nil, 99)
		if !errors.Is(err, repositories.ErrTournamentNotFound) {
			t.Fatalf("err = %v", err)
		}
	})
}

func TestMatchRepository(t *testing.T) {
	conn := openTestDB(t, true)
	repo := repositories.NewMatchRepository(conn, repositories.DialectSQLite)
	ctx := context.Background()

	t.Run("by tournament", func(t *testing.T) {
		matches, err := repo.ListByTournament(ctx, nil, 10)
		if err != nil {
			t.Fatalf("ListByTournament: %v", err)
		}
		if len(matches) != 2 {
			t.Fatalf("got %d matches", len(matches))
		}
		if matches[0].ID != 101 || matches[1].ID != 100 {
			t.Errorf("order = %d, %d", matches[0].ID, matches[1].ID)
		}
		m := matches[1]
		if m.TournamentID == nil || *m.TournamentID != 10 || m.Mode != models.Mode1v1 {
			t.Errorf("match = %+v", m)
		}
		if m.A.Goals == nil || *m.A.Goals != 2 || m.A.ClubID == nil || *m.A.ClubID != 7 {
			t.Errorf("side A = %+v", m.A)
		}
		if m.B.ClubID != nil || len(m.B.PlayerIDs) != 1 || m.B.PlayerIDs[0] != 2 {
			t.Errorf("side B = %+v", m.B)
		}
	})

	t.Run("all tournaments", func(t *testing.T) {
		matches, err := repo.ListTournamentMatches(ctx, nil)
		if err != nil {
			t.Fatalf("ListTournamentMatches: %v", err)
		}
		if len(matches) != 3 {
			t.Fatalf("got %d matches", len(matches))
		}
		duo := matches[2]
		if duo.A.Goals != nil || duo.State != models.MatchScheduled {
			t.Errorf("scheduled match = %+v", duo)
		}
		if len(duo.A.PlayerIDs) != 2 || duo.A.PlayerIDs[0] != 1 || duo.A.PlayerIDs[1] != 3 {
			t.Errorf("side players = %v", duo.A.PlayerIDs)
		}
	})

	t.Run("friendlies", func(t *testing.T) {
		matches, err := repo.ListFriendlies(ctx, nil)
		if err != nil {
			t.Fatalf("ListFriendlies: %v", err)
		}
		if len(matches) != 1 {
			t.Fatalf("got %d friendlies", len(matches))
		}
		f := matches[0]
		if f.ID != models.FriendlyMatchIDOffset+1 || !f.IsFriendly() || f.Leg != 1 {
			t.Errorf("friendly = %+v", f)
		}
		if *f.A.Goals != 3 || *f.B.Goals != 3 {
			t.Errorf("goals = %v / %v", *f.A.Goals, *f.B.Goals)
		}
	})
}

func TestListFriendliesWithoutTables(t *testing.T) {
	conn := openTestDB(t, false)
	repo := repositories.NewMatchRepository(conn, repositories.DialectSQLite)

	matches, err := repo.ListFriendlies(context.Background(), nil)
	if err != nil {
		t.Fatalf("ListFriendlies: %v", err)
	}
	if len(matches) != 0 {
		t.Fatalf("got %d friendlies", len(matches))
	}
}
