package querybuilder

import "testing"

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("player_id", "unit").
		From("lineup_assignments").
		Where(Eq("league_id", "lg-1"), Eq("team_id", "tm-1")).
		OrderBy("player_id").
		Limit(25).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	want := "SELECT player_id, unit FROM lineup_assignments WHERE league_id = $1 AND team_id = $2 ORDER BY player_id LIMIT 25"
	if query != want {
		t.Fatalf("unexpected query:\n got %s\nwant %s", query, want)
	}
	if len(args) != 2 || args[0] != "lg-1" || args[1] != "tm-1" {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestSelectBuilder_InCondition(t *testing.T) {
	query, args, err := Select("id").
		From("players").
		Where(In("id", []any{"p1", "p2"})).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	want := "SELECT id FROM players WHERE id IN ($1, $2)"
	if query != want {
		t.Fatalf("unexpected query: %s", query)
	}
	if len(args) != 2 {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestSelectBuilder_EmptyInMatchesNothing(t *testing.T) {
	query, args, err := Select("id").
		From("players").
		Where(In("id", nil)).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	want := "SELECT id FROM players WHERE 1=0"
	if query != want {
		t.Fatalf("unexpected query: %s", query)
	}
	if len(args) != 0 {
		t.Fatalf("expected no args, got %v", args)
	}
}

func TestInsertBuilder_MultiRowWithSuffix(t *testing.T) {
	query, args, err := InsertInto("draft_picks").
		Columns("league_id", "pick_number", "team_id").
		Values("lg-1", 1, "tm-1").
		Values("lg-1", 2, "tm-2").
		Suffix("ON CONFLICT (league_id, pick_number) DO NOTHING").
		ToSQL()
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	want := "INSERT INTO draft_picks (league_id, pick_number, team_id) VALUES ($1, $2, $3), ($4, $5, $6) ON CONFLICT (league_id, pick_number) DO NOTHING"
	if query != want {
		t.Fatalf("unexpected query:\n got %s\nwant %s", query, want)
	}
	if len(args) != 6 {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestUpdateBuilder(t *testing.T) {
	query, args, err := Update("draft_picks").
		Set("completed", true).
		Where(Eq("league_id", "lg-1"), Eq("pick_number", 5)).
		ToSQL()
	if err != nil {
		t.Fatalf("build update query: %v", err)
	}

	want := "UPDATE draft_picks SET completed = $1 WHERE league_id = $2 AND pick_number = $3"
	if query != want {
		t.Fatalf("unexpected query: %s", query)
	}
	if len(args) != 3 {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestDeleteBuilder(t *testing.T) {
	query, args, err := DeleteFrom("draft_picks").
		Where(Eq("league_id", "lg-1")).
		ToSQL()
	if err != nil {
		t.Fatalf("build delete query: %v", err)
	}

	want := "DELETE FROM draft_picks WHERE league_id = $1"
	if query != want {
		t.Fatalf("unexpected query: %s", query)
	}
	if len(args) != 1 || args[0] != "lg-1" {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestInsertModel(t *testing.T) {
	type row struct {
		LeagueID string `db:"league_id"`
		TeamID   string `db:"team_id"`
		Ignored  string `db:"-"`
	}

	query, args, err := InsertModel("teams", row{LeagueID: "lg-1", TeamID: "tm-1", Ignored: "x"}, "")
	if err != nil {
		t.Fatalf("build insert from model: %v", err)
	}

	want := "INSERT INTO teams (league_id, team_id) VALUES ($1, $2)"
	if query != want {
		t.Fatalf("unexpected query: %s", query)
	}
	if len(args) != 2 {
		t.Fatalf("unexpected args: %v", args)
	}
}
