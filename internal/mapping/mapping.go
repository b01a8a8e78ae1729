package mapping

import (
	"cmp"
	"go/token"
	"slices"
)

// Entry is one key of a mapping file.
type Entry struct {
	// Name is the raw key, e.g. "big dog".
	Name string
	// ID is the numeric label id.
	ID uint32
	// Line is the 1-based line of the key, 0 when unknown.
	Line int
}

// Mapping is a parsed mapping file. Entries keep the on-disk key order.
type Mapping struct {
	Path    string
	Format  Format
	Entries []Entry
}

// Len returns the number of entries.
func (m *Mapping) Len() int {
	return len(m.Entries)
}

// Ordered returns the entries sorted ascending by ID. The sort is stable, so
// entries sharing an ID keep their file order.
func (m *Mapping) Ordered() []Entry {
	out := slices.Clone(m.Entries)
	slices.SortStableFunc(out, func(a, b Entry) int {
		return cmp.Compare(a.ID, b.ID)
	})

	return out
}

// DuplicateIDs returns, for every ID used by more than one key, the keys in
// file order.
func (m *Mapping) DuplicateIDs() map[uint32][]string {
	byID := make(map[uint32][]string)
	for _, e := range m.Entries {
		byID[e.ID] = append(byID[e.ID], e.Name)
	}

	for id, names := range byID {
		if len(names) < 2 {
			delete(byID, id)
		}
	}

	return byID
}

// Position returns the source position of e, or an invalid position when the
// line is unknown.
func (m *Mapping) Position(e Entry) token.Position {
	if e.Line <= 0 {
		return token.Position{Filename: m.Path}
	}

	return token.Position{Filename: m.Path, Line: e.Line, Column: 1}
}
