// Package resolve wires the normalization pieces into the three pipelines
// the application calls: defense search, team import and screenshot
// detection.
package resolve

import (
	"strings"

	"siege-companion/internal/alias"
	"siege-companion/internal/element"
	"siege-companion/internal/match"
	"siege-companion/internal/namedata"
	"siege-companion/internal/normalize"
)

// Default distance-ratio thresholds. Detection runs tighter than the import
// paths; the two values are historical per-call-site choices and stay
// independently configurable.
const (
	DefaultDetectThreshold = 0.25
	DefaultImportThreshold = 0.3
)

// Engine bundles the static name data. Build it once and share it; every
// method is a pure function over immutable state.
type Engine struct {
	aliases  *alias.Table
	collabs  []namedata.Collab
	synonyms []element.Synonym
	elements int
}

// NewEngine builds an engine from a name data set.
func NewEngine(set *namedata.Set) *Engine {
	synonyms := make([]element.Synonym, 0, len(set.Synonyms))
	for _, s := range set.Synonyms {
		synonyms = append(synonyms, element.Synonym{A: s.A, B: s.B})
	}
	elements := len(set.Elements)
	if elements == 0 {
		elements = len(element.All)
	}
	return &Engine{
		aliases:  alias.New(set.Aliases),
		collabs:  set.Collabs,
		synonyms: synonyms,
		elements: elements,
	}
}

// NewDefaultEngine builds an engine from the embedded asset.
func NewDefaultEngine() *Engine {
	return NewEngine(namedata.Default())
}

// Aliases exposes the shared alias table.
func (e *Engine) Aliases() *alias.Table {
	return e.aliases
}

// Synonyms exposes the abbreviation synonym pairs.
func (e *Engine) Synonyms() []element.Synonym {
	return e.synonyms
}

// SearchResult is the outcome of resolving a single search query. Exactly
// one of Variants and Canonical is meaningful: a recognized collab term
// yields the variant list to search by, anything else yields one
// alias-resolved name.
type SearchResult struct {
	Query     string
	Collab    string
	Variants  []string
	Canonical string
}

// Search resolves one user-typed query. Collab-franchise terms match on
// exact normalized key first, then by substring containment when the key
// has at least four characters, so "ginger" still finds GingerBrave without
// one-letter queries matching half the map.
func (e *Engine) Search(query string) SearchResult {
	res := SearchResult{Query: query}
	key := normalize.Key(query)
	if key == "" {
		res.Canonical = query
		return res
	}

	var hit *namedata.Collab
	for i := range e.collabs {
		if normalize.Key(e.collabs[i].Collab) == key {
			hit = &e.collabs[i]
			break
		}
	}
	if hit == nil && len(key) >= 4 {
		for i := range e.collabs {
			if strings.Contains(normalize.Key(e.collabs[i].Collab), key) {
				hit = &e.collabs[i]
				break
			}
		}
	}
	if hit != nil {
		res.Collab = hit.Collab
		res.Variants = hit.UniqueVariants(e.elements)
		return res
	}

	res.Canonical = e.aliases.Resolve(query)
	return res
}

// Teams alias-resolves team member names, preserving team shape and member
// order. When a vocabulary is supplied the members are additionally fuzzy
// matched against it with the import threshold, so imported teams line up
// with catalog spellings before the defense lookup.
func (e *Engine) Teams(teams [][]string, vocabulary []string, maxRatio float64) [][]string {
	var resolver *match.Resolver
	if len(vocabulary) > 0 {
		resolver = match.NewResolver(vocabulary)
	}

	out := make([][]string, len(teams))
	for i, team := range teams {
		members := e.aliases.ResolveAll(team)
		if resolver != nil {
			members = resolver.ResolveAll(members, maxRatio)
		}
		out[i] = members
	}
	return out
}

// ResolveNames reports per-name resolution detail for one alias-then-fuzzy
// pass: which names an alias rewrote, which the matcher corrected, and
// which passed through untouched.
func (e *Engine) ResolveNames(names, vocabulary []string, maxRatio float64) []match.Result {
	resolver := match.NewResolver(vocabulary)
	out := make([]match.Result, len(names))
	for i, name := range names {
		aliased := e.aliases.Resolve(name)
		res := resolver.Resolve(aliased, maxRatio)
		res.Input = name
		if aliased != name && res.Kind != match.KindFuzzy {
			res.Kind = match.KindAlias
		}
		out[i] = res
	}
	return out
}

// Detection is the outcome of reconciling detected screenshot labels.
type Detection struct {
	// Confirmed holds every distinct name that survived resolution and is a
	// member of the allow-set, element fan-out forms included.
	Confirmed []string
	// Display is the user-facing subset: Confirmed minus bare base names
	// that only entered the run through an element-qualified label.
	Display []string
}

// Detect reconciles raw detected labels against the vocabulary. Each pass
// runs alias resolution then fuzzy matching; expansion between the passes
// fans ambiguous names out so the allow-set filter cannot drop a variant
// the screenshot actually showed.
func (e *Engine) Detect(detected, vocabulary, defenseNames []string, groups element.Groups, maxRatio float64) Detection {
	allowed := make(map[string]struct{}, len(vocabulary)+len(defenseNames))
	for _, n := range vocabulary {
		allowed[n] = struct{}{}
	}
	for _, n := range defenseNames {
		allowed[n] = struct{}{}
	}
	for _, q := range element.QualifiedForms(groups) {
		allowed[q] = struct{}{}
	}

	resolver := match.NewResolver(vocabulary)
	pass := func(names []string) []string {
		return resolver.ResolveAll(e.aliases.ResolveAll(names), maxRatio)
	}

	exp := element.Expand(pass(detected), groups, e.synonyms)
	confirmed := keepAllowed(pass(keepAllowed(exp.Expanded, allowed)), allowed)

	display := make([]string, 0, len(confirmed))
	for _, name := range confirmed {
		if element.Qualified(name) || !exp.ElementBases[name] {
			display = append(display, name)
		}
	}
	return Detection{Confirmed: confirmed, Display: display}
}

// keepAllowed filters to allow-set members, deduplicating in first-seen
// order.
func keepAllowed(names []string, allowed map[string]struct{}) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		if _, ok := allowed[n]; !ok {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}
