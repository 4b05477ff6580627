// Package catalog reads monster catalog exports and derives the inputs the
// resolution engine needs: the canonical vocabulary and the ambiguous
// element groups.
package catalog

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"siege-companion/internal/element"
)

// Monster is one catalog row. Element may be empty in name-only exports.
type Monster struct {
	Name    string `json:"name"`
	Element string `json:"element"`
}

// ParseFile reads a catalog export, dispatching on extension.
func ParseFile(path string) ([]Monster, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer file.Close()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		return ParseCSV(file)
	case ".json":
		return ParseJSON(file)
	default:
		return nil, fmt.Errorf("unknown catalog format: %s (must be .csv or .json)", ext)
	}
}

// ParseCSV parses a CSV catalog export. The parser is header-aware and maps
// the "name" and "element" columns case-insensitively; without a header row
// match it falls back to the typical export layout (name first, element
// second). Rows without a name are skipped.
func ParseCSV(reader io.Reader) ([]Monster, error) {
	r := csv.NewReader(reader)
	header, err := r.Read()
	if err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, err
	}

	nameIdx, elementIdx := 0, 1
	headerRow := false
	for i, h := range header {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "name":
			nameIdx = i
			headerRow = true
		case "element":
			elementIdx = i
			headerRow = true
		}
	}

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if !headerRow {
		// The first row was data, not a header.
		records = append([][]string{header}, records...)
	}

	get := func(rec []string, idx int) string {
		if idx < 0 || idx >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[idx])
	}

	var out []Monster
	for _, rec := range records {
		name := get(rec, nameIdx)
		if name == "" {
			continue
		}
		out = append(out, Monster{Name: name, Element: get(rec, elementIdx)})
	}
	return out, nil
}

// ParseJSON parses a JSON catalog export: either an array of objects with
// name/element fields or a plain array of name strings.
func ParseJSON(reader io.Reader) ([]Monster, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var monsters []Monster
	if err := json.Unmarshal(data, &monsters); err == nil {
		out := monsters[:0]
		for _, m := range monsters {
			if strings.TrimSpace(m.Name) != "" {
				m.Name = strings.TrimSpace(m.Name)
				m.Element = strings.TrimSpace(m.Element)
				out = append(out, m)
			}
		}
		return out, nil
	}

	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	var out []Monster
	for _, n := range names {
		if n = strings.TrimSpace(n); n != "" {
			out = append(out, Monster{Name: n})
		}
	}
	return out, nil
}

// ParseNameList reads a plain text file with one name per line. Blank lines
// and '#' comment lines are skipped.
func ParseNameList(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read name list %s: %w", path, err)
	}
	var out []string
	for _, line := range bytes.Split(data, []byte("\n")) {
		name := strings.TrimSpace(string(line))
		if name == "" || strings.HasPrefix(name, "#") {
			continue
		}
		out = append(out, name)
	}
	return out, nil
}

// ParseTeams reads a CSV file where every row is one team's member names.
// Empty cells are dropped; empty rows are skipped.
func ParseTeams(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open teams file: %w", err)
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse teams file: %w", err)
	}

	var teams [][]string
	for _, rec := range records {
		var team []string
		for _, cell := range rec {
			if cell = strings.TrimSpace(cell); cell != "" {
				team = append(team, cell)
			}
		}
		if len(team) > 0 {
			teams = append(teams, team)
		}
	}
	return teams, nil
}

// Names returns the distinct catalog names in first-seen order.
func Names(monsters []Monster) []string {
	seen := make(map[string]struct{}, len(monsters))
	out := make([]string, 0, len(monsters))
	for _, m := range monsters {
		if _, ok := seen[m.Name]; ok {
			continue
		}
		seen[m.Name] = struct{}{}
		out = append(out, m.Name)
	}
	return out
}

// AmbiguousElements groups the catalog by name and keeps the names that
// appear with more than one distinct element. Elements stay in first-seen
// order.
func AmbiguousElements(monsters []Monster) element.Groups {
	byName := make(map[string][]string)
	for _, m := range monsters {
		if m.Name == "" || m.Element == "" {
			continue
		}
		dup := false
		for _, el := range byName[m.Name] {
			if el == m.Element {
				dup = true
				break
			}
		}
		if !dup {
			byName[m.Name] = append(byName[m.Name], m.Element)
		}
	}

	groups := make(element.Groups)
	for name, elements := range byName {
		if len(elements) > 1 {
			groups[name] = elements
		}
	}
	return groups
}
