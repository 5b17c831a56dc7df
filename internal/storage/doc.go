// Package storage provides the persistent key-value slots the history
// store writes into: a SQLite-backed store for normal use and an
// in-memory store for tests and ephemeral sessions.
package storage
