// Package alias holds the user's command-line substitutions.
package alias

import (
	"sort"
	"strings"
)

// Table maps a submitted command line to its replacement. It is built once
// and never modified, so it needs no locking.
type Table struct {
	m map[string]string
}

// New copies entries into a table. Keys are trimmed; empty keys and empty
// targets are dropped.
func New(entries map[string]string) Table {
	m := make(map[string]string, len(entries))
	for k, v := range entries {
		k = strings.TrimSpace(k)
		v = strings.TrimSpace(v)
		if k == "" || v == "" {
			continue
		}
		m[k] = v
	}
	return Table{m: m}
}

// Lookup returns the replacement for line, if any. The match is exact.
func (t Table) Lookup(line string) (string, bool) {
	v, ok := t.m[line]
	return v, ok
}

// Len returns the number of aliases.
func (t Table) Len() int { return len(t.m) }

// Names returns the alias keys sorted.
func (t Table) Names() []string {
	out := make([]string, 0, len(t.m))
	for k := range t.m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
