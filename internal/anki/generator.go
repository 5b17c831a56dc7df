package anki

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"codeberg.org/snonux/linguist/internal/history"
)

// Card represents a single Anki note built from one translation
type Card struct {
	Front string   // The text that was translated
	Back  string   // Its translation
	Tags  []string // Language codes, e.g. "en" and "es"
}

// CardsFromHistory converts history entries to cards. History is stored
// newest first; cards come out oldest first so Anki's new card order
// follows the order things were translated in.
func CardsFromHistory(entries []history.Entry) []Card {
	cards := make([]Card, 0, len(entries))
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		cards = append(cards, Card{
			Front: e.InputText,
			Back:  e.Translated,
			Tags:  []string{string(e.SourceLanguage), string(e.TargetLanguage)},
		})
	}
	return cards
}

// Generator creates Anki text import files
type Generator struct {
	cards []Card
}

// NewGenerator creates a new Anki generator
func NewGenerator() *Generator {
	return &Generator{cards: make([]Card, 0)}
}

// AddCard adds a card to the collection
func (g *Generator) AddCard(card Card) {
	g.cards = append(g.cards, card)
}

// Cards returns the collected cards
func (g *Generator) Cards() []Card {
	return g.cards
}

// WriteCSV writes the cards in Anki's text import format. The header lines
// tell the importer about the separator and the tags column.
func (g *Generator) WriteCSV(w io.Writer) error {
	if _, err := io.WriteString(w, "#separator:semicolon\n#html:false\n#tags column:3\n"); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	writer := csv.NewWriter(w)
	writer.Comma = ';'

	for _, card := range g.cards {
		record := []string{card.Front, card.Back, strings.Join(card.Tags, " ")}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write card: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
