package anki

import (
	"archive/zip"
	"database/sql"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestGenerateAPKG(t *testing.T) {
	tempDir := t.TempDir()
	outputPath := filepath.Join(tempDir, "history.apkg")

	gen := NewAPKGGenerator("Linguist")
	gen.AddCard(Card{Front: "Hello", Back: "Hola", Tags: []string{"en", "es"}})
	gen.AddCard(Card{Front: "Thank you", Back: "Danke", Tags: []string{"en", "de"}})

	if err := gen.GenerateAPKG(outputPath); err != nil {
		t.Fatalf("GenerateAPKG() error = %v", err)
	}

	reader, err := zip.OpenReader(outputPath)
	if err != nil {
		t.Fatalf("failed to open package: %v", err)
	}
	defer reader.Close()

	files := make(map[string]*zip.File)
	for _, f := range reader.File {
		files[f.Name] = f
	}
	for _, name := range []string{"collection.anki2", "media"} {
		if files[name] == nil {
			t.Fatalf("package is missing %s", name)
		}
	}

	// Extract the collection to query it
	dbPath := filepath.Join(tempDir, "collection.anki2")
	extract(t, files["collection.anki2"], dbPath)

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		t.Fatalf("failed to open collection: %v", err)
	}
	defer db.Close()

	var notes, cards int
	if err := db.QueryRow("SELECT COUNT(*) FROM notes").Scan(&notes); err != nil {
		t.Fatal(err)
	}
	if err := db.QueryRow("SELECT COUNT(*) FROM cards").Scan(&cards); err != nil {
		t.Fatal(err)
	}
	if notes != 2 || cards != 4 {
		t.Errorf("notes = %d, cards = %d, want 2 and 4", notes, cards)
	}

	var flds, tags string
	if err := db.QueryRow("SELECT flds, tags FROM notes ORDER BY id LIMIT 1").Scan(&flds, &tags); err != nil {
		t.Fatal(err)
	}
	if flds != "Hello\x1fHola" {
		t.Errorf("flds = %q", flds)
	}
	if strings.TrimSpace(tags) != "en es" {
		t.Errorf("tags = %q", tags)
	}

	var decks string
	if err := db.QueryRow("SELECT decks FROM col").Scan(&decks); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(decks, `"name":"Linguist"`) {
		t.Errorf("decks = %s, want the Linguist deck", decks)
	}
}

func TestGenerateAPKG_BadPath(t *testing.T) {
	gen := NewAPKGGenerator("Linguist")
	err := gen.GenerateAPKG(filepath.Join(t.TempDir(), "missing", "history.apkg"))
	if err == nil {
		t.Error("GenerateAPKG() into a missing directory succeeded")
	}
}

func extract(t *testing.T, f *zip.File, dst string) {
	t.Helper()

	rc, err := f.Open()
	if err != nil {
		t.Fatal(err)
	}
	defer rc.Close()

	out, err := os.Create(dst)
	if err != nil {
		t.Fatal(err)
	}
	defer out.Close()

	if _, err := io.Copy(out, rc); err != nil {
		t.Fatal(err)
	}
}
