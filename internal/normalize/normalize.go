package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Key canonicalizes a display name into its comparison form: lower-cased,
// diacritics stripped, restricted to letters, digits, whitespace, '-', '_'
// and '.', and trimmed. It is total and idempotent; input with no usable
// characters yields "", which callers must treat as "no match possible".
func Key(s string) string {
	s = strings.ToLower(s)

	// NFKD folds compatibility forms and splits off combining marks so
	// accented letters reduce to their base letter (é -> e, ō -> o).
	decomp := norm.NFKD.String(s)

	var b strings.Builder
	b.Grow(len(decomp))
	for _, r := range decomp {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune(r)
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(r)
		case r == '-' || r == '_' || r == '.':
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}

// Keys normalizes a batch of names, preserving order and length.
func Keys(names []string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = Key(n)
	}
	return out
}
