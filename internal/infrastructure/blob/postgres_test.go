package blob

import (
	"strings"
	"testing"
)

func TestReadQuery(t *testing.T) {
	query, args, err := readQuery("highscores/2024.json")
	if err != nil {
		t.Fatalf("build read query: %v", err)
	}

	want := "SELECT content FROM blob_objects WHERE name = $1 AND deleted_at IS NULL LIMIT 1"
	if query != want {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", want, query)
	}
	if len(args) != 1 || args[0] != "highscores/2024.json" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestWriteQuery_HashesContent(t *testing.T) {
	query, args, err := writeQuery("highscores/2024.json", "[]")
	if err != nil {
		t.Fatalf("build write query: %v", err)
	}

	if !strings.HasPrefix(query, "INSERT INTO blob_objects (name, content, content_hash) VALUES ($1, $2, $3) ON CONFLICT (name)") {
		t.Fatalf("unexpected query: %s", query)
	}
	if len(args) != 3 {
		t.Fatalf("unexpected args: %+v", args)
	}
	// sha256("[]")
	if args[2] != "4f53cda18c2baa0c0354bb5f9a3ecbe5ed12ab4d8e11ba873c2f11161202b945" {
		t.Fatalf("unexpected hash: %v", args[2])
	}
}
