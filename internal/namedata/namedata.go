// Package namedata holds the shared, declarative name data consumed by every
// resolution call site: the alias table, the collaboration-franchise map and
// the abbreviation synonym list. The default asset is embedded; tests and
// deployments can substitute a smaller or newer file.
package namedata

import (
	_ "embed"
	"fmt"
	"os"
	"sync"

	yaml "gopkg.in/yaml.v2"
)

//go:embed data/names.yaml
var embedded []byte

// Alias maps an alternate or crossover-branded name to its canonical form.
// Declaration order is significant: on a normalized-key collision the first
// entry wins.
type Alias struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// Collab is a collaboration-franchise character and its in-game variant
// names, one slot per element in Elements order. Shorter lists mean the
// character exists in fewer elements; a single variant covers all of them.
type Collab struct {
	Collab   string   `yaml:"collab"`
	Variants []string `yaml:"variants"`
}

// Synonym is an explicit bidirectional abbreviation pair.
type Synonym struct {
	A string `yaml:"a"`
	B string `yaml:"b"`
}

// Set is one loaded name data asset.
type Set struct {
	Elements []string  `yaml:"elements"`
	Aliases  []Alias   `yaml:"aliases"`
	Collabs  []Collab  `yaml:"collabs"`
	Synonyms []Synonym `yaml:"synonyms"`
}

// Parse decodes a YAML asset.
func Parse(data []byte) (*Set, error) {
	var s Set
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse name data: %w", err)
	}
	return &s, nil
}

// Load reads and decodes an asset from disk.
func Load(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read name data %s: %w", path, err)
	}
	return Parse(data)
}

var (
	defaultOnce sync.Once
	defaultSet  *Set
)

// Default returns the embedded asset. The asset ships with the binary, so a
// parse failure is a build defect and panics.
func Default() *Set {
	defaultOnce.Do(func() {
		s, err := Parse(embedded)
		if err != nil {
			panic(err)
		}
		defaultSet = s
	})
	return defaultSet
}

// FilledVariants pads the variant list to one slot per element, repeating
// the last variant, then drops empty slots. A character released in a single
// element therefore answers for every element slot.
func (c Collab) FilledVariants(elementCount int) []string {
	if len(c.Variants) == 0 {
		return nil
	}
	filled := make([]string, 0, elementCount)
	filled = append(filled, c.Variants...)
	for len(filled) < elementCount {
		filled = append(filled, filled[len(filled)-1])
	}
	out := filled[:0]
	for _, v := range filled {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

// UniqueVariants returns the filled variant list with duplicates removed,
// preserving first-seen order.
func (c Collab) UniqueVariants(elementCount int) []string {
	filled := c.FilledVariants(elementCount)
	seen := make(map[string]struct{}, len(filled))
	out := make([]string, 0, len(filled))
	for _, v := range filled {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
