// Package catalog holds the static mapping from main-menu keys to unit
// folder names. The mapping is built once at startup and never mutated.
package catalog

import (
	"sort"
	"strconv"
)

// Entry is one browsable unit: a menu key and the unit's folder name.
type Entry struct {
	Key  string
	Name string
}

// Catalog is an immutable key-to-unit mapping with a stable render order.
type Catalog struct {
	entries map[string]string
	keys    []string
}

// New builds a catalog from a key-to-name mapping. Keys render in numeric
// order when they all parse as integers, lexical order otherwise.
func New(units map[string]string) *Catalog {
	entries := make(map[string]string, len(units))
	keys := make([]string, 0, len(units))
	for k, v := range units {
		entries[k] = v
		keys = append(keys, k)
	}

	numeric := true
	for _, k := range keys {
		if _, err := strconv.Atoi(k); err != nil {
			numeric = false
			break
		}
	}

	if numeric {
		sort.Slice(keys, func(i, j int) bool {
			a, _ := strconv.Atoi(keys[i])
			b, _ := strconv.Atoi(keys[j])
			return a < b
		})
	} else {
		sort.Strings(keys)
	}

	return &Catalog{entries: entries, keys: keys}
}

// Lookup returns the unit name for a menu key.
func (c *Catalog) Lookup(key string) (string, bool) {
	name, ok := c.entries[key]
	return name, ok
}

// Entries returns all entries in render order.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, 0, len(c.keys))
	for _, k := range c.keys {
		out = append(out, Entry{Key: k, Name: c.entries[k]})
	}
	return out
}

// Len returns the number of catalog entries.
func (c *Catalog) Len() int {
	return len(c.keys)
}
