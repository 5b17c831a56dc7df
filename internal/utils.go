package internal

import (
	"os"
	"path/filepath"
)

// Version is the application version shown in the window title and --version
const Version = "0.4.0"

// StateDir returns the XDG-style state directory used for the history database and logs
func StateDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".linguist")
	}
	return filepath.Join(home, ".local", "state", "linguist")
}
