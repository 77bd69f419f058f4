// Package roster holds the selection state of a browse session: the ordered
// list of known character names and the active search query.
//
// Names are compared in normalized form, so "leia organa" and "Leia Organa"
// are the same entry, and they are stored normalized. The list only grows.
package roster

import "strings"

// DefaultNames seeds a new roster.
var DefaultNames = []string{"Luke Skywalker", "Darth Vader", "Leia Organa"}

// Roster is the selection controller. It is not safe for concurrent use; the
// TUI mutates it only from its Update loop.
type Roster struct {
	names []string
	seen  map[string]bool
	query string
}

// New creates a roster seeded with names. Seeds are normalized and
// deduplicated like any other addition. The query starts at the first name.
func New(seed ...string) *Roster {
	r := &Roster{seen: make(map[string]bool)}
	r.Add(seed...)
	if len(r.names) > 0 {
		r.query = r.names[0]
	}
	return r
}

// Names returns a copy of the known names in insertion order.
func (r *Roster) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Len returns the number of known names.
func (r *Roster) Len() int {
	return len(r.names)
}

// Query returns the current search text.
func (r *Roster) Query() string {
	return r.query
}

// SetQuery replaces the search text.
func (r *Roster) SetQuery(text string) {
	r.query = text
}

// Select makes name the current query. The name list is not touched.
func (r *Roster) Select(name string) {
	r.query = name
}

// Contains reports whether name is already known.
func (r *Roster) Contains(name string) bool {
	return r.seen[Normalize(name)]
}

// Submit adds the trimmed query to the list if it is non-empty and not yet
// known. It reports whether a name was appended.
func (r *Roster) Submit() bool {
	q := strings.TrimSpace(r.query)
	if q == "" {
		return false
	}
	return len(r.Add(q)) > 0
}

// Add appends every name that is non-blank and not yet known, in order, and
// returns the normalized names that were appended.
func (r *Roster) Add(names ...string) []string {
	var added []string
	for _, n := range names {
		norm := Normalize(n)
		if norm == "" || r.seen[norm] {
			continue
		}
		r.seen[norm] = true
		r.names = append(r.names, norm)
		added = append(added, norm)
	}
	return added
}
