// Package match implements approximate name matching against a canonical
// vocabulary: an exact pass over normalized keys, then a Levenshtein
// distance-ratio scan.
package match

import (
	"github.com/lithammer/fuzzysearch/fuzzy"

	"siege-companion/internal/normalize"
)

// Kind classifies how an input name was resolved.
type Kind string

const (
	// KindIdentity means the normalized key matched a vocabulary entry
	// exactly (distance 0).
	KindIdentity Kind = "identity"
	// KindAlias means an alias table entry rewrote the name. Set by
	// callers that chain alias resolution in front of the matcher.
	KindAlias Kind = "alias"
	// KindFuzzy means the closest vocabulary entry was within the
	// caller's distance-ratio threshold.
	KindFuzzy Kind = "fuzzy"
	// KindUnresolved means no vocabulary entry was close enough; the
	// input passes through unchanged.
	KindUnresolved Kind = "unresolved"
)

// Result records one resolution. Resolved is always either Input itself or
// a vocabulary entry's display form, never an invented string.
type Result struct {
	Input    string
	Resolved string
	Kind     Kind
}

// Distance is the classic single-character edit distance.
func Distance(a, b string) int {
	return fuzzy.LevenshteinDistance(a, b)
}

// Ratio is the edit distance between a and b relative to the longer of the
// two. The max(..., 1) guard keeps two empty strings at ratio 0 instead of
// dividing by zero; callers reject empty keys before ever comparing them.
func Ratio(a, b string) float64 {
	longest := len(a)
	if len(b) > longest {
		longest = len(b)
	}
	if longest < 1 {
		longest = 1
	}
	return float64(Distance(a, b)) / float64(longest)
}

type candidate struct {
	display string
	key     string
}

// Resolver matches raw names against a fixed vocabulary. Keys are computed
// once at construction; the zero allocation per lookup on the exact path
// matters because search and detection call this on every request.
type Resolver struct {
	byKey      map[string]string
	candidates []candidate
}

// NewResolver indexes the vocabulary. Entries whose normalized key is empty
// are unmatchable and skipped; on a key collision the first entry keeps the
// exact-lookup slot.
func NewResolver(vocabulary []string) *Resolver {
	r := &Resolver{byKey: make(map[string]string, len(vocabulary))}
	for _, name := range vocabulary {
		key := normalize.Key(name)
		if key == "" {
			continue
		}
		if _, ok := r.byKey[key]; !ok {
			r.byKey[key] = name
		}
		r.candidates = append(r.candidates, candidate{display: name, key: key})
	}
	return r
}

// Resolve maps one raw name to its closest vocabulary entry. An exact
// normalized-key hit short-circuits the scan. Otherwise the vocabulary is
// scanned in order and the first entry with the minimal ratio wins, provided
// that ratio is at or below maxRatio (the boundary is inclusive).
func (r *Resolver) Resolve(name string, maxRatio float64) Result {
	key := normalize.Key(name)
	if key == "" || len(r.candidates) == 0 {
		return Result{Input: name, Resolved: name, Kind: KindUnresolved}
	}

	if display, ok := r.byKey[key]; ok {
		return Result{Input: name, Resolved: display, Kind: KindIdentity}
	}

	bestRatio := -1.0
	bestName := ""
	for _, c := range r.candidates {
		ratio := Ratio(key, c.key)
		if bestRatio < 0 || ratio < bestRatio {
			bestRatio = ratio
			bestName = c.display
		}
	}
	if bestRatio <= maxRatio {
		return Result{Input: name, Resolved: bestName, Kind: KindFuzzy}
	}
	return Result{Input: name, Resolved: name, Kind: KindUnresolved}
}

// ResolveAll resolves a batch, preserving order and length. Running it on
// its own output is a no-op: resolved names hit the exact path.
func (r *Resolver) ResolveAll(names []string, maxRatio float64) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = r.Resolve(n, maxRatio).Resolved
	}
	return out
}
