package similarity

import (
	"math"
	"regexp"
	"sort"
	"strings"
)

// VectorizerConfig fixes the term-weighting parameters of the vector space.
// StopWords selects the stop set: "english" for the built-in list, "none" to
// keep every token.
type VectorizerConfig struct {
	MaxFeatures int
	StopWords   string
	NGramMin    int
	NGramMax    int
	MinDF       int
	MaxDF       float64
}

func (cfg VectorizerConfig) stopSet() map[string]struct{} {
	if cfg.StopWords == "none" {
		return nil
	}
	return stopWords
}

var tokenPattern = regexp.MustCompile(`[a-z0-9]+`)

// tokenize splits normalized text into lowercase word tokens, dropping
// single-character tokens and stop words.
func tokenize(text string, stopSet map[string]struct{}) []string {
	raw := tokenPattern.FindAllString(strings.ToLower(text), -1)
	tokens := raw[:0]
	for _, tok := range raw {
		if len(tok) < 2 {
			continue
		}
		if _, stop := stopSet[tok]; stop {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

// termSpans expands tokens into the configured n-gram range. Stop words are
// removed before n-grams are formed, so bigrams bridge across them.
func termSpans(tokens []string, minN, maxN int) []string {
	var terms []string
	for n := minN; n <= maxN; n++ {
		for i := 0; i+n <= len(tokens); i++ {
			terms = append(terms, strings.Join(tokens[i:i+n], " "))
		}
	}
	return terms
}

// buildVectors builds L2-normalized TF-IDF vectors over the documents.
// IDF is smoothed as ln((1+N)/(1+df)) + 1 so no retained term gets a zero or
// negative weight. Terms rarer than MinDF documents or present in strictly
// more than MaxDF of the corpus are excluded; on vocabulary overflow the
// most frequent terms are retained, ties broken lexically for determinism.
func buildVectors(texts []string, cfg VectorizerConfig) []map[int]float64 {
	docTerms := make([][]string, len(texts))
	df := make(map[string]int)
	corpusCount := make(map[string]int)

	stopSet := cfg.stopSet()
	for i, t := range texts {
		terms := termSpans(tokenize(t, stopSet), cfg.NGramMin, cfg.NGramMax)
		docTerms[i] = terms

		seen := make(map[string]struct{}, len(terms))
		for _, term := range terms {
			corpusCount[term]++
			if _, ok := seen[term]; !ok {
				seen[term] = struct{}{}
				df[term]++
			}
		}
	}

	n := len(texts)
	maxDocs := cfg.MaxDF * float64(n)

	kept := make([]string, 0, len(df))
	for term, d := range df {
		if d < cfg.MinDF {
			continue
		}
		if float64(d) > maxDocs {
			continue
		}
		kept = append(kept, term)
	}

	if len(kept) > cfg.MaxFeatures {
		sort.Slice(kept, func(i, j int) bool {
			if corpusCount[kept[i]] != corpusCount[kept[j]] {
				return corpusCount[kept[i]] > corpusCount[kept[j]]
			}
			return kept[i] < kept[j]
		})
		kept = kept[:cfg.MaxFeatures]
	}
	sort.Strings(kept)

	vocab := make(map[string]int, len(kept))
	idf := make([]float64, len(kept))
	for i, term := range kept {
		vocab[term] = i
		idf[i] = math.Log((1+float64(n))/(1+float64(df[term]))) + 1
	}

	vectors := make([]map[int]float64, n)
	for i, terms := range docTerms {
		weights := make(map[int]float64)
		for _, term := range terms {
			if idx, ok := vocab[term]; ok {
				weights[idx]++
			}
		}

		var norm float64
		for idx := range weights {
			weights[idx] *= idf[idx]
			norm += weights[idx] * weights[idx]
		}
		if norm > 0 {
			norm = math.Sqrt(norm)
			for idx := range weights {
				weights[idx] /= norm
			}
		}
		vectors[i] = weights
	}

	return vectors
}

// dot of two L2-normalized sparse vectors is their cosine similarity.
func dot(a, b map[int]float64) float64 {
	if len(b) < len(a) {
		a, b = b, a
	}
	var sum float64
	for idx, w := range a {
		sum += w * b[idx]
	}
	return sum
}
