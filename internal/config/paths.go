package config

import (
	"os"
	"path/filepath"
)

// Paths holds the file system paths used by the application.
type Paths struct {
	Home       string // ~/.dropdeck
	ConfigPath string // ~/.dropdeck/config.json
	BoardPath  string // ~/.dropdeck/board.db
	LogsRoot   string // ~/.dropdeck/logs
}

// DefaultPaths returns the default paths configuration.
func DefaultPaths() (*Paths, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	root := filepath.Join(home, ".dropdeck")
	return &Paths{
		Home:       root,
		ConfigPath: filepath.Join(root, "config.json"),
		BoardPath:  filepath.Join(root, "board.db"),
		LogsRoot:   filepath.Join(root, "logs"),
	}, nil
}

// EnsureDirectories creates the required directories if they don't exist.
func (p *Paths) EnsureDirectories() error {
	for _, dir := range []string{p.Home, p.LogsRoot} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return nil
}
