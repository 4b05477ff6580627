// Package element reconciles bare and element-qualified monster names.
// Some display names are shared by variants of several elements; a bare
// name must fan out to every elemental identity so a lookup cannot silently
// miss one, and an element-qualified name must also answer for its base.
package element

import (
	"regexp"
	"sort"
	"strings"
)

// All lists the game's elements in canonical order. Collab variant slots in
// the name data asset follow this order.
var All = []string{"Fire", "Water", "Wind", "Light", "Dark"}

var qualifiedRe = regexp.MustCompile(`(?i)^(fire|water|wind|light|dark)\s+(.+)$`)

// Groups maps an ambiguous base name to the elements it appears as. Only
// bases with two or more elements belong here; the catalog package derives
// the map.
type Groups map[string][]string

// Synonym is an explicit bidirectional abbreviation pair. Expansion adds the
// counterpart whenever either side (or its element-stripped base) shows up.
type Synonym struct {
	A string
	B string
}

// Expansion is the result of fanning a name list out.
type Expansion struct {
	// Expanded holds every input name plus its derived forms, deduplicated
	// in first-seen order.
	Expanded []string
	// ElementBases records base names that arrived with an explicit element
	// tag. Callers use it to hide synthetic fan-out forms from display.
	ElementBases map[string]bool
}

// Qualified reports whether a name carries an element prefix.
func Qualified(name string) bool {
	return qualifiedRe.MatchString(name)
}

// Base strips the element prefix from a name, or returns the name unchanged
// when it has none.
func Base(name string) string {
	if m := qualifiedRe.FindStringSubmatch(name); m != nil {
		if b := strings.TrimSpace(m[2]); b != "" {
			return b
		}
	}
	return name
}

// Expand applies the reconciliation rules to each name: keep it verbatim;
// if element-qualified, surface the bare base and record it; if the bare
// form is an ambiguous base and the input carried no element tag, add every
// elemental identity; apply the synonym pairs. Blank names are skipped.
func Expand(names []string, groups Groups, synonyms []Synonym) Expansion {
	exp := Expansion{ElementBases: make(map[string]bool)}
	seen := make(map[string]struct{})
	add := func(n string) {
		if _, ok := seen[n]; ok {
			return
		}
		seen[n] = struct{}{}
		exp.Expanded = append(exp.Expanded, n)
	}

	for _, raw := range names {
		name := strings.TrimSpace(raw)
		if name == "" {
			continue
		}
		add(name)

		m := qualifiedRe.FindStringSubmatch(name)
		base := name
		if m != nil {
			if b := strings.TrimSpace(m[2]); b != "" {
				base = b
				add(base)
				exp.ElementBases[base] = true
			}
		}

		if m == nil {
			for _, el := range groups[base] {
				add(el + " " + base)
			}
		}

		for _, syn := range synonyms {
			switch {
			case name == syn.A || base == syn.A:
				add(syn.B)
			case name == syn.B || base == syn.B:
				add(syn.A)
			}
		}
	}
	return exp
}

// QualifiedForms lists every "<Element> <base>" combination the groups
// describe, sorted by base for determinism.
func QualifiedForms(groups Groups) []string {
	bases := make([]string, 0, len(groups))
	for base := range groups {
		bases = append(bases, base)
	}
	sort.Strings(bases)

	var out []string
	for _, base := range bases {
		for _, el := range groups[base] {
			out = append(out, el+" "+base)
		}
	}
	return out
}
