// Package session holds the translator's session state machine.
//
// Reduce is a pure function from (State, Msg) to a new State plus the
// Commands that should run as a consequence. The Executor runs a Command
// against the translation client, the history store or the speech adapter
// and turns its outcome into exactly one completion Msg. The Controller owns
// the State on a single goroutine, feeds completions back into Reduce and
// publishes snapshots to subscribers. Render derives the declarative View
// that the GUI and the terminal UI draw.
package session
