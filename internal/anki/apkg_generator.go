package anki

import (
	"archive/zip"
	"crypto/sha1"
	"database/sql"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// APKGGenerator creates Anki package files (.apkg)
type APKGGenerator struct {
	deckName string
	deckID   int64
	modelID  int64
	cards    []Card
	now      time.Time
}

// NewAPKGGenerator creates a new APKG generator
func NewAPKGGenerator(deckName string) *APKGGenerator {
	// IDs are timestamps so repeated exports import as separate decks
	now := time.Now()
	return &APKGGenerator{
		deckName: deckName,
		deckID:   now.UnixMilli(),
		modelID:  now.UnixMilli() + 1,
		cards:    make([]Card, 0),
		now:      now,
	}
}

// AddCard adds a card to the generator
func (g *APKGGenerator) AddCard(card Card) {
	g.cards = append(g.cards, card)
}

// GenerateAPKG writes the package to outputPath
func (g *APKGGenerator) GenerateAPKG(outputPath string) error {
	tempDir, err := os.MkdirTemp("", "linguist_anki_*")
	if err != nil {
		return fmt.Errorf("failed to create temp directory: %w", err)
	}
	defer os.RemoveAll(tempDir)

	dbPath := filepath.Join(tempDir, "collection.anki2")
	if err := g.createDatabase(dbPath); err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}

	// Translations carry no media, but Anki expects the mapping file
	if err := os.WriteFile(filepath.Join(tempDir, "media"), []byte("{}"), 0644); err != nil {
		return fmt.Errorf("failed to create media mapping: %w", err)
	}

	if err := createZipPackage(tempDir, outputPath); err != nil {
		return fmt.Errorf("failed to create zip package: %w", err)
	}
	return nil
}

func (g *APKGGenerator) createDatabase(dbPath string) error {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	for _, query := range schema {
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("failed to create tables: %w", err)
		}
	}

	if err := g.insertCollection(db); err != nil {
		return fmt.Errorf("failed to insert collection: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	if err := g.insertNotesAndCards(tx); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("failed to insert notes and cards: %w", err)
	}
	return tx.Commit()
}

// schema is the subset of the Anki 2.1 collection layout importers read
var schema = []string{
	`CREATE TABLE col (
		id integer PRIMARY KEY, crt integer NOT NULL, mod integer NOT NULL,
		scm integer NOT NULL, ver integer NOT NULL, dty integer NOT NULL,
		usn integer NOT NULL, ls integer NOT NULL, conf text NOT NULL,
		models text NOT NULL, decks text NOT NULL, dconf text NOT NULL, tags text NOT NULL
	)`,
	`CREATE TABLE notes (
		id integer PRIMARY KEY, guid text NOT NULL, mid integer NOT NULL,
		mod integer NOT NULL, usn integer NOT NULL, tags text NOT NULL,
		flds text NOT NULL, sfld text NOT NULL, csum integer NOT NULL,
		flags integer NOT NULL, data text NOT NULL
	)`,
	`CREATE TABLE cards (
		id integer PRIMARY KEY, nid integer NOT NULL, did integer NOT NULL,
		ord integer NOT NULL, mod integer NOT NULL, usn integer NOT NULL,
		type integer NOT NULL, queue integer NOT NULL, due integer NOT NULL,
		ivl integer NOT NULL, factor integer NOT NULL, reps integer NOT NULL,
		lapses integer NOT NULL, left integer NOT NULL, odue integer NOT NULL,
		odid integer NOT NULL, flags integer NOT NULL, data text NOT NULL
	)`,
	`CREATE TABLE revlog (
		id integer PRIMARY KEY, cid integer NOT NULL, usn integer NOT NULL,
		ease integer NOT NULL, ivl integer NOT NULL, lastIvl integer NOT NULL,
		factor integer NOT NULL, time integer NOT NULL, type integer NOT NULL
	)`,
	`CREATE TABLE graves (usn integer NOT NULL, oid integer NOT NULL, type integer NOT NULL)`,
	`CREATE INDEX ix_notes_csum ON notes (csum)`,
	`CREATE INDEX ix_cards_nid ON cards (nid)`,
	`CREATE INDEX ix_cards_sched ON cards (did, queue, due)`,
}

func (g *APKGGenerator) insertCollection(db *sql.DB) error {
	now := g.now.Unix()

	deck := func(id int64, name, desc string) map[string]any {
		return map[string]any{
			"id": id, "name": name, "desc": desc, "mod": now, "usn": 0,
			"conf": 1, "dyn": 0, "collapsed": false,
			"newToday": []int{0, 0}, "revToday": []int{0, 0},
			"lrnToday": []int{0, 0}, "timeToday": []int{0, 0},
		}
	}
	decks := map[string]any{"1": deck(1, "Default", "")}
	decks[strconv.FormatInt(g.deckID, 10)] = deck(g.deckID, g.deckName, "Translations exported from linguist")

	models := map[string]any{
		strconv.FormatInt(g.modelID, 10): g.noteType(),
	}

	conf := map[string]any{
		"nextPos":     1,
		"activeDecks": []int64{1},
		"curDeck":     1,
		"schedVer":    1,
		"curModel":    strconv.FormatInt(g.modelID, 10),
	}

	dconf := map[string]any{
		"1": map[string]any{
			"id": 1, "name": "Default", "mod": now, "usn": 0,
			"new":   map[string]any{"delays": []int{1, 10}, "ints": []int{1, 4, 7}, "initialFactor": 2500, "perDay": 20, "order": 1},
			"lapse": map[string]any{"delays": []int{10}, "mult": 0, "minInt": 1, "leechFails": 8, "leechAction": 0},
			"rev":   map[string]any{"perDay": 100, "ease4": 1.3, "maxIvl": 36500, "ivlFct": 1},
		},
	}

	values := make([]string, 0, 4)
	for _, v := range []any{conf, models, decks, dconf} {
		data, err := json.Marshal(v)
		if err != nil {
			return err
		}
		values = append(values, string(data))
	}

	_, err := db.Exec(`INSERT INTO col VALUES (1, ?, ?, ?, 11, 0, 0, 0, ?, ?, ?, ?, '{}')`,
		now, now*1000, now*1000, values[0], values[1], values[2], values[3])
	return err
}

// noteType is a two field note with a card in each direction
func (g *APKGGenerator) noteType() map[string]any {
	field := func(name string, ord int) map[string]any {
		return map[string]any{"name": name, "ord": ord, "sticky": false, "rtl": false, "font": "Arial", "size": 20, "media": []string{}}
	}
	tmpl := func(name string, ord int, question, answer string) map[string]any {
		return map[string]any{"name": name, "ord": ord, "qfmt": question, "afmt": answer, "did": nil, "bqfmt": "", "bafmt": ""}
	}

	return map[string]any{
		"id":    g.modelID,
		"name":  "linguist translation (and reversed)",
		"type":  0,
		"mod":   g.now.Unix(),
		"usn":   -1,
		"sortf": 0,
		"did":   g.deckID,
		"req":   []any{[]any{0, "all", []int{0}}, []any{1, "all", []int{1}}},
		"tags":  []string{},
		"vers":  []int{},
		"flds":  []any{field("Text", 0), field("Translation", 1)},
		"tmpls": []any{
			tmpl("Forward", 0, `<div class="text">{{Text}}</div>`, "{{FrontSide}}\n<hr id=answer>\n<div class=\"translation\">{{Translation}}</div>"),
			tmpl("Reverse", 1, `<div class="translation">{{Translation}}</div>`, "{{FrontSide}}\n<hr id=answer>\n<div class=\"text\">{{Text}}</div>"),
		},
		"css":       ".card { font-family: Arial, sans-serif; font-size: 24px; text-align: center; }\n.translation { color: #1e66f5; }",
		"latexPre":  "",
		"latexPost": "",
	}
}

func (g *APKGGenerator) insertNotesAndCards(tx *sql.Tx) error {
	mod := g.now.Unix()
	base := g.now.UnixMilli()

	for i, card := range g.cards {
		// Leave room for the two cards of each note
		noteID := base + int64(i*3)

		fields := strings.Join([]string{card.Front, card.Back}, "\x1f")
		_, err := tx.Exec(`INSERT INTO notes VALUES (?, ?, ?, ?, -1, ?, ?, ?, ?, 0, '')`,
			noteID, guid(card), g.modelID, mod,
			" "+strings.Join(card.Tags, " ")+" ",
			fields, card.Front, checksum(card.Front),
		)
		if err != nil {
			return fmt.Errorf("failed to insert note: %w", err)
		}

		for ord := 0; ord < 2; ord++ {
			_, err := tx.Exec(`INSERT INTO cards VALUES (?, ?, ?, ?, ?, -1, 0, 0, ?, 0, 0, 0, 0, 0, 0, 0, 0, '')`,
				noteID+1+int64(ord), noteID, g.deckID, ord, mod, i*2+ord,
			)
			if err != nil {
				return fmt.Errorf("failed to insert card: %w", err)
			}
		}
	}
	return nil
}

// guid is stable for the same translation so re-importing updates notes
func guid(card Card) string {
	sum := sha1.Sum([]byte(card.Front + "\x1f" + card.Back + "\x1f" + strings.Join(card.Tags, " ")))
	return fmt.Sprintf("lg%x", sum[:8])
}

// checksum is Anki's duplicate check: the first 32 bits of the sort field's SHA1
func checksum(field string) int64 {
	sum := sha1.Sum([]byte(field))
	return int64(binary.BigEndian.Uint32(sum[:4]))
}

func createZipPackage(dir, outputPath string) error {
	zipFile, err := os.Create(outputPath)
	if err != nil {
		return err
	}

	archive := zip.NewWriter(zipFile)

	entries, err := os.ReadDir(dir)
	if err == nil {
		for _, entry := range entries {
			if err = addToZip(archive, dir, entry.Name()); err != nil {
				break
			}
		}
	}

	if cerr := archive.Close(); err == nil {
		err = cerr
	}
	if cerr := zipFile.Close(); err == nil {
		err = cerr
	}
	return err
}

func addToZip(archive *zip.Writer, dir, name string) error {
	writer, err := archive.Create(name)
	if err != nil {
		return err
	}

	file, err := os.Open(filepath.Join(dir, name))
	if err != nil {
		return err
	}
	defer file.Close()

	_, err = io.Copy(writer, file)
	return err
}
