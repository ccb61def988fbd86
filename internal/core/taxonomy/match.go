package taxonomy

import "strings"

// DomainScore is the keyword evidence collected for one matched domain.
type DomainScore struct {
	Domain   string
	Score    int
	Keywords []string
}

// ScoreDomains scores normalized title and scope text against the taxonomy.
// Every keyword phrase contributes its substring occurrence count to its
// domain's score; a domain is matched iff its aggregate score is positive.
// Results preserve taxonomy declaration order, not score order.
func (t *Taxonomy) ScoreDomains(normTitle, normScope string) []DomainScore {
	combined := normTitle + " " + normScope

	var matched []DomainScore
	for _, e := range t.entries {
		score := 0
		var keywords []string
		for _, kw := range e.Keywords {
			if n := strings.Count(combined, strings.ToLower(kw)); n > 0 {
				score += n
				keywords = append(keywords, kw)
			}
		}
		if score > 0 {
			matched = append(matched, DomainScore{Domain: e.Domain, Score: score, Keywords: keywords})
		}
	}
	return matched
}
