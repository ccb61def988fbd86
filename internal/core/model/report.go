package model

import "time"

// Report is the aggregated output of one analysis run. Assignments and Pairs
// are the two ordered result tables; the count maps are the summary
// statistics; Warnings carries recoverable conditions that did not halt the
// batch.
type Report struct {
	RunID       string             `json:"run_id"`
	GeneratedAt time.Time          `json:"generated_at"`
	Assignments []DomainAssignment `json:"assignments"`
	Pairs       []SimilarityPair   `json:"pairs"`

	MethodCounts map[string]int `json:"method_counts"`
	DomainCounts map[string]int `json:"domain_counts"`
	TierCounts   map[string]int `json:"tier_counts"`
	Warnings     []string       `json:"warnings,omitempty"`
}
