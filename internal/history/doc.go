// Package history persists the translation history as a JSON array in a
// storage slot and exports it for the command line.
package history
