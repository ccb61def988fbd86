package model

// Resolution methods, in fallback order.
const (
	MethodAI            = "ai"
	MethodKeyword       = "keyword"
	MethodExistingLabel = "existing-label"
	MethodDefault       = "default"
)

// DomainOther is the sentinel domain assigned when nothing else matches.
const DomainOther = "Other"

// DomainConfidence records the evidence behind one matched domain.
type DomainConfidence struct {
	Score     float64  `json:"score"`
	Method    string   `json:"method"`
	Reasoning string   `json:"reasoning,omitempty"`
	Keywords  []string `json:"keywords,omitempty"`
}

// DomainAssignment is the resolved categorization of one record.
// Domains is never empty and contains no duplicates; the first entry is the
// primary domain.
type DomainAssignment struct {
	RecordID   string                      `json:"record_id"`
	Title      string                      `json:"title"`
	Domains    []string                    `json:"domains"`
	Confidence map[string]DomainConfidence `json:"confidence"`
	Method     string                      `json:"method"`
}

func (a DomainAssignment) PrimaryDomain() string {
	if len(a.Domains) == 0 {
		return DomainOther
	}
	return a.Domains[0]
}
