// Package library lists the script library's directory hierarchy:
// unit directories, topic subdirectories, and script files. Listings are
// read from disk on every call; nothing is cached, so external changes are
// visible on the next menu render.
package library

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Library reads the unit/topic/script hierarchy rooted at Root.
type Library struct {
	// Root is the library root directory.
	Root string

	// Ext is the filename suffix marking a file as a script (e.g. ".py").
	Ext string
}

// New creates a library over root with the given script suffix.
func New(root, ext string) *Library {
	return &Library{Root: root, Ext: ext}
}

// UnitPath returns the path of a unit folder under the library root.
func (l *Library) UnitPath(unitName string) string {
	return filepath.Join(l.Root, unitName)
}

// Subdirs returns the names of the immediate child directories of path.
// The error from reading the directory is propagated; callers report it.
func (l *Library) Subdirs(path string) ([]string, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("listing directories in %s: %w", path, err)
	}

	var dirs []string
	for _, entry := range entries {
		if entry.IsDir() {
			dirs = append(dirs, entry.Name())
		}
	}
	return dirs, nil
}

// Scripts returns the names of the immediate child files of path whose
// name ends in the library's script suffix.
func (l *Library) Scripts(path string) ([]string, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("listing scripts in %s: %w", path, err)
	}

	var scripts []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), l.Ext) {
			scripts = append(scripts, entry.Name())
		}
	}
	return scripts, nil
}
