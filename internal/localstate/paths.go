package localstate

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	envHome    = "PICTURE_STATE_DIR" // override for tests and shared machines
	dirName    = ".pai-picture"      // default under $HOME
	dbFilename = "session.db"
)

// DataDir returns the directory where local state is stored. An explicit dir
// wins over PICTURE_STATE_DIR, which wins over ~/.pai-picture. The directory
// is created with 0700 permissions; it holds session cookies.
func DataDir(dir string) (string, error) {
	if dir == "" {
		dir = os.Getenv(envHome)
	}
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine user home: %w", err)
		}
		dir = filepath.Join(home, dirName)
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", err
	}
	return dir, nil
}

// DBPath returns the absolute path to the SQLite database file.
func DBPath(dir string) (string, error) {
	d, err := DataDir(dir)
	if err != nil {
		return "", err
	}
	return filepath.Join(d, dbFilename), nil
}
