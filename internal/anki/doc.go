// Package anki turns the translation history into Anki flashcards, either
// as a semicolon separated text file for Anki's importer or as a complete
// .apkg package with one forward and one reverse card per translation.
package anki
