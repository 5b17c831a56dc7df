// Package processor wires linguist's components together for each run mode:
// the desktop GUI, the terminal UI, one-shot command line translations and
// the history maintenance commands (listing, export, archive).
package processor
