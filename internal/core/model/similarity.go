package model

// Similarity tiers, monotonic in score.
const (
	TierVeryHigh = "Very High"
	TierHigh     = "High"
	TierMedium   = "Medium"
	TierLow      = "Low"
)

// SimilarityPair reports one retained pair of records. RecordA precedes
// RecordB in input order; the score is rounded to 3 decimals for reporting.
type SimilarityPair struct {
	RecordA            string   `json:"record_a"`
	RecordB            string   `json:"record_b"`
	Score              float64  `json:"score"`
	Tier               string   `json:"tier"`
	OverlappingDomains []string `json:"overlapping_domains"`
	Explanation        string   `json:"explanation"`
}
