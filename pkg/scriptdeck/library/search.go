package library

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/charlievieth/fastwalk"
)

// Match is one search hit: a script whose filename contains the search term.
type Match struct {
	// Path is the script path relative to the library root.
	Path string

	// Size is the file size in bytes.
	Size int64

	// ModTime is the file's last modification time.
	ModTime time.Time
}

// Search walks the whole library in parallel and returns every script whose
// filename contains term (case-insensitive), sorted by path. Unreadable
// entries are skipped rather than failing the search.
func (l *Library) Search(term string) ([]Match, error) {
	needle := strings.ToLower(term)
	conf := fastwalk.Config{
		Follow: false, // don't follow symlinks
	}

	var (
		mu      sync.Mutex
		matches []Match
	)

	err := fastwalk.Walk(&conf, l.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil //nolint:nilerr // skip unreadable entries
		}
		if d.IsDir() {
			return nil
		}
		name := d.Name()
		if !strings.HasSuffix(name, l.Ext) {
			return nil
		}
		if !strings.Contains(strings.ToLower(name), needle) {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return nil //nolint:nilerr
		}

		rel, relErr := filepath.Rel(l.Root, path)
		if relErr != nil {
			rel = path
		}

		mu.Lock()
		matches = append(matches, Match{Path: rel, Size: info.Size(), ModTime: info.ModTime()})
		mu.Unlock()
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(matches, func(i, j int) bool {
		return matches[i].Path < matches[j].Path
	})
	return matches, nil
}
