package taxonomy

import (
	"fmt"
	"strings"
)

// Entry associates one domain with its keyword evidence list.
type Entry struct {
	Domain   string
	Keywords []string
}

// Taxonomy is the fixed mapping of domain names to keyword phrases.
// Declaration order is significant: keyword matches are emitted in this
// order. A Taxonomy is read-only after construction.
type Taxonomy struct {
	entries []Entry
}

// New validates and builds a taxonomy. An empty taxonomy, a blank domain
// name, a duplicate domain, or a domain without keywords is a configuration
// error and fails fast.
func New(entries []Entry) (*Taxonomy, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("taxonomy must contain at least one domain")
	}
	seen := make(map[string]struct{}, len(entries))
	for i, e := range entries {
		name := strings.TrimSpace(e.Domain)
		if name == "" {
			return nil, fmt.Errorf("taxonomy entry %d has a blank domain name", i)
		}
		if _, ok := seen[name]; ok {
			return nil, fmt.Errorf("duplicate taxonomy domain %q", name)
		}
		seen[name] = struct{}{}
		if len(e.Keywords) == 0 {
			return nil, fmt.Errorf("taxonomy domain %q has no keywords", name)
		}
	}
	copied := make([]Entry, len(entries))
	copy(copied, entries)
	return &Taxonomy{entries: copied}, nil
}

// Entries returns the taxonomy in declaration order.
func (t *Taxonomy) Entries() []Entry {
	return t.entries
}

// Domains returns the domain names in declaration order.
func (t *Taxonomy) Domains() []string {
	names := make([]string, len(t.entries))
	for i, e := range t.entries {
		names[i] = e.Domain
	}
	return names
}

func (t *Taxonomy) Len() int {
	return len(t.entries)
}
