package model

import "strings"

// Record is one input project. IDs must be unique within a run; records are
// immutable after load.
type Record struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	Scope          string `json:"scope"`
	ExistingDomain string `json:"existing_domain,omitempty"`

	// Derived at load time, not serialized.
	NormalizedTitle string `json:"-"`
	NormalizedScope string `json:"-"`
}

// CombinedText returns the normalized title and scope joined for vectorization.
// Empty when the record carries no usable text.
func (r Record) CombinedText() string {
	return strings.TrimSpace(r.NormalizedTitle + " " + r.NormalizedScope)
}
