// Package tui is the terminal front-end of the translator. It drives the
// same session reducer as the desktop GUI: key presses become session
// messages, and the commands Reduce returns run as Bubble Tea commands
// through the session executor.
package tui
