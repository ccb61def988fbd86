package similarity

import (
	"fmt"
	"sort"
	"strings"
)

// explainStop is the small fixed stop set for the lexical-overlap clause,
// separate from the vectorizer's stop list.
var explainStop = map[string]struct{}{
	"that": {}, "this": {}, "with": {}, "from": {}, "they": {}, "were": {}, "been": {},
}

// Explain builds the human-readable justification for a retained pair from
// up to three clauses: shared domains, shared vocabulary, and a score band.
// The score band clause is always present.
func Explain(score float64, overlappingDomains []string, textA, textB string) string {
	var parts []string

	if len(overlappingDomains) > 0 {
		parts = append(parts, fmt.Sprintf("Both projects belong to %s domain(s)", strings.Join(overlappingDomains, ", ")))
	}

	if shared := sharedConcepts(textA, textB); len(shared) > 0 {
		if len(shared) > 5 {
			parts = append(parts, "Share multiple technical concepts and approaches")
		} else {
			parts = append(parts, fmt.Sprintf("Share common concepts: %s", strings.Join(shared[:min(3, len(shared))], ", ")))
		}
	}

	switch {
	case score > 0.7:
		parts = append(parts, "Very similar project objectives and methodologies")
	case score > 0.5:
		parts = append(parts, "Similar approach with some methodological overlap")
	default:
		parts = append(parts, "Some conceptual similarities in approach")
	}

	return strings.Join(parts, ". ") + "."
}

// sharedConcepts returns the meaningful tokens common to both texts, sorted
// for deterministic output: whitespace tokens longer than 3 characters that
// are not in the fixed stop set.
func sharedConcepts(textA, textB string) []string {
	wordsA := make(map[string]struct{})
	for _, w := range strings.Fields(textA) {
		wordsA[w] = struct{}{}
	}

	seen := make(map[string]struct{})
	var shared []string
	for _, w := range strings.Fields(textB) {
		if len(w) <= 3 {
			continue
		}
		if _, stop := explainStop[w]; stop {
			continue
		}
		if _, inA := wordsA[w]; !inA {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		shared = append(shared, w)
	}
	sort.Strings(shared)
	return shared
}
