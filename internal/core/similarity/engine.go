package similarity

import (
	"math"
	"sort"

	"github.com/campuslabs/cohort/internal/core/model"
)

// Engine computes pairwise TF-IDF cosine similarities over a batch of
// records. Threshold gates retention; the tier boundaries are fixed and
// deliberately independent of it.
type Engine struct {
	Threshold  float64
	Vectorizer VectorizerConfig
}

func NewEngine(threshold float64, cfg VectorizerConfig) *Engine {
	return &Engine{
		Threshold:  threshold,
		Vectorizer: cfg,
	}
}

// ComputePairs evaluates the upper triangle (input order) of the similarity
// matrix and returns the pairs whose unrounded score strictly exceeds the
// threshold, sorted descending by score with ties in discovery order.
// Fewer than two records with usable text yields an empty result.
func (e *Engine) ComputePairs(records []model.Record, assignments map[string]model.DomainAssignment) []model.SimilarityPair {
	var ids []string
	var texts []string
	for _, rec := range records {
		if t := rec.CombinedText(); t != "" {
			ids = append(ids, rec.ID)
			texts = append(texts, t)
		}
	}
	if len(texts) < 2 {
		return nil
	}

	vectors := buildVectors(texts, e.Vectorizer)

	var pairs []model.SimilarityPair
	for i := range vectors {
		for j := i + 1; j < len(vectors); j++ {
			raw := dot(vectors[i], vectors[j])
			if raw > 1 {
				raw = 1 // float drift on identical documents
			}
			// Retention is decided on the unrounded value.
			if raw <= e.Threshold {
				continue
			}

			score := math.Round(raw*1000) / 1000
			overlap := overlappingDomains(assignments[ids[i]].Domains, assignments[ids[j]].Domains)

			pairs = append(pairs, model.SimilarityPair{
				RecordA:            ids[i],
				RecordB:            ids[j],
				Score:              score,
				Tier:               Tier(score),
				OverlappingDomains: overlap,
				Explanation:        Explain(score, overlap, texts[i], texts[j]),
			})
		}
	}

	sort.SliceStable(pairs, func(i, j int) bool {
		return pairs[i].Score > pairs[j].Score
	})
	return pairs
}

// Tier buckets a reported (rounded) score.
func Tier(score float64) string {
	switch {
	case score > 0.7:
		return model.TierVeryHigh
	case score > 0.5:
		return model.TierHigh
	case score > 0.3:
		return model.TierMedium
	default:
		return model.TierLow
	}
}

// overlappingDomains intersects two matched-domain sets, preserving the
// first record's domain order.
func overlappingDomains(a, b []string) []string {
	inB := make(map[string]struct{}, len(b))
	for _, d := range b {
		inB[d] = struct{}{}
	}
	var overlap []string
	for _, d := range a {
		if _, ok := inB[d]; ok {
			overlap = append(overlap, d)
		}
	}
	return overlap
}
