package config

import (
	"os"
	"path/filepath"
)

// ProjectConfigName is the per-repository override file.
const ProjectConfigName = ".mkbranch.yaml"

// Paths holds all the file system paths used by the application
type Paths struct {
	Home       string // ~/.mkbranch
	LogDir     string // ~/.mkbranch/logs
	ConfigPath string // ~/.mkbranch/config.yaml
}

// DefaultPaths returns the default paths configuration
func DefaultPaths() (*Paths, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	return PathsFor(filepath.Join(home, ".mkbranch")), nil
}

// PathsFor lays out the application paths under root.
func PathsFor(root string) *Paths {
	return &Paths{
		Home:       root,
		LogDir:     filepath.Join(root, "logs"),
		ConfigPath: filepath.Join(root, "config.yaml"),
	}
}

// ProjectConfigPath returns the override file inside a repository.
func ProjectConfigPath(repoRoot string) string {
	return filepath.Join(repoRoot, ProjectConfigName)
}
