package querybuilder

import "testing"

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("name", "content").
		From("blob_objects").
		Where(Eq("name", "highscores/2024.json"), IsNull("deleted_at")).
		OrderBy("name").
		Limit(1).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT name, content FROM blob_objects WHERE name = $1 AND deleted_at IS NULL ORDER BY name LIMIT 1"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 1 || args[0] != "highscores/2024.json" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_HasPrefixEscapesWildcards(t *testing.T) {
	query, args, err := Select("name").
		From("blob_objects").
		Where(HasPrefix("name", "high_scores/"), IsNull("deleted_at")).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := `SELECT name FROM blob_objects WHERE name LIKE $1 ESCAPE '\' AND deleted_at IS NULL`
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 1 || args[0] != `high\_scores/%` {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilder(t *testing.T) {
	query, args, err := InsertInto("blob_objects").
		Columns("name", "content").
		Values("highscores/2024.json", "[]").
		Suffix("ON CONFLICT (name) DO UPDATE SET content = EXCLUDED.content").
		ToSQL()
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO blob_objects (name, content) VALUES ($1, $2) ON CONFLICT (name) DO UPDATE SET content = EXCLUDED.content"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "highscores/2024.json" || args[1] != "[]" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertModel(t *testing.T) {
	model := struct {
		Name    string `db:"name"`
		Content string `db:"content"`
		Skipped string `db:"-"`
		hidden  string
	}{Name: "a", Content: "b", Skipped: "c", hidden: "d"}

	query, args, err := InsertModel("blob_objects", model, "")
	if err != nil {
		t.Fatalf("build insert model query: %v", err)
	}
	if query != "INSERT INTO blob_objects (name, content) VALUES ($1, $2)" {
		t.Fatalf("unexpected query: %s", query)
	}
	if len(args) != 2 || model.hidden != "d" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertModel_RejectsNonStruct(t *testing.T) {
	if _, _, err := InsertModel("blob_objects", "nope", ""); err == nil {
		t.Fatalf("expected error for non-struct model")
	}
}
