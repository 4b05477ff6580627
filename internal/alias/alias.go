// Package alias resolves alternate and crossover-branded monster names to
// their canonical catalog form. One shared table serves every call site.
package alias

import (
	"siege-companion/internal/namedata"
	"siege-companion/internal/normalize"
)

// Table is an immutable alias lookup. Both indexes are built once, so
// lookups are O(1) and the table is safe for concurrent use.
type Table struct {
	raw   map[string]string // untransformed alias -> canonical
	byKey map[string]string // normalized key -> canonical
}

// New builds a table from entries in declaration order. When two entries
// share a raw name or normalize to the same key, the first one wins.
func New(entries []namedata.Alias) *Table {
	t := &Table{
		raw:   make(map[string]string, len(entries)),
		byKey: make(map[string]string, len(entries)),
	}
	for _, e := range entries {
		if e.From == "" || e.To == "" {
			continue
		}
		if _, ok := t.raw[e.From]; !ok {
			t.raw[e.From] = e.To
		}
		key := normalize.Key(e.From)
		if key == "" {
			continue
		}
		if _, ok := t.byKey[key]; !ok {
			t.byKey[key] = e.To
		}
	}
	return t
}

// Default builds the table from the embedded name data asset.
func Default() *Table {
	return New(namedata.Default().Aliases)
}

// Resolve maps a name to its canonical form. Unknown names come back
// unchanged so callers can chain further resolution passes without nil
// checks. The raw lookup is the fast path for exact historical names; the
// normalized lookup tolerates case, accent and punctuation drift.
func (t *Table) Resolve(name string) string {
	if canonical, ok := t.raw[name]; ok {
		return canonical
	}
	key := normalize.Key(name)
	if key == "" {
		return name
	}
	if canonical, ok := t.byKey[key]; ok {
		return canonical
	}
	return name
}

// ResolveAll resolves a batch, preserving order and length.
func (t *Table) ResolveAll(names []string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = t.Resolve(n)
	}
	return out
}

// Len reports the number of distinct raw alias names.
func (t *Table) Len() int {
	return len(t.raw)
}
