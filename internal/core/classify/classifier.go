package classify

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/campuslabs/cohort/internal/core/common"
	"github.com/campuslabs/cohort/internal/core/model"
	"github.com/campuslabs/cohort/internal/core/taxonomy"
	"github.com/campuslabs/cohort/internal/llm"
)

// ConfidenceCutoff is the minimum confidence (on the prompt's 1-10 scale) a
// reported domain needs to count as a match.
const ConfidenceCutoff = 6

// primarySentinelConfidence is assigned when the primary domain was not
// independently reported above the cutoff.
const primarySentinelConfidence = 8

const classifyPrompt = `Analyze the following project and categorize it into one or more relevant technical domains.

Project Title: %s
Project Description: %s

Available Domains:
%s

Instructions:
1. Identify which domains this project belongs to (it can belong to multiple domains)
2. For each relevant domain, provide a confidence score from 1-10
3. Explain why the project fits into each selected domain
4. Consider the technical requirements, methodologies, and objectives

Respond in JSON format:
{
    "domains": [
        {
            "name": "Domain Name",
            "confidence": 8,
            "reasoning": "Brief explanation why this project fits this domain"
        }
    ],
    "primary_domain": "Most relevant domain name",
    "summary": "Brief overall categorization summary"
}

Only include domains with confidence >= 6. If no domain fits well, suggest the closest match.`

// Classifier calls an external language model to categorize a record. It is a
// best-effort oracle: any failure degrades to a nil result and the caller
// falls through to keyword matching.
type Classifier struct {
	LLM      llm.LLMClient
	Taxonomy *taxonomy.Taxonomy
	Timeout  time.Duration
}

func NewClassifier(llmClient llm.LLMClient, tax *taxonomy.Taxonomy, timeout time.Duration) *Classifier {
	return &Classifier{
		LLM:      llmClient,
		Taxonomy: tax,
		Timeout:  timeout,
	}
}

// Classify asks the external model for a categorization. It returns nil when
// the classifier is unavailable, the call fails or times out, or the response
// cannot be parsed; none of these abort the run.
func (c *Classifier) Classify(ctx context.Context, title, scope string) *model.Classification {
	if c == nil || c.LLM == nil {
		return nil
	}

	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	prompt := fmt.Sprintf(classifyPrompt, title, scope, strings.Join(c.Taxonomy.Domains(), ", "))

	response, err := c.LLM.Generate(ctx, prompt)
	if err != nil {
		log.Printf("Warning: classifier call failed: %v", err)
		return nil
	}

	result, err := common.ParseJSON[model.Classification](response)
	if err != nil {
		log.Printf("Warning: unparseable classifier response: %v", err)
		return nil
	}

	return &result
}

// RetainedDomains applies the confidence cutoff to a classification and
// guarantees the designated primary domain is present. Domains the model
// reported above the cutoff keep their reported order; a missing primary
// domain is inserted first with a sentinel confidence.
func RetainedDomains(result *model.Classification) []model.ClassifiedDomain {
	if result == nil {
		return nil
	}

	var retained []model.ClassifiedDomain
	seen := make(map[string]struct{})
	for _, d := range result.Domains {
		if d.Name == "" || d.Confidence < ConfidenceCutoff {
			continue
		}
		if _, ok := seen[d.Name]; ok {
			continue
		}
		seen[d.Name] = struct{}{}
		retained = append(retained, d)
	}

	primary := strings.TrimSpace(result.PrimaryDomain)
	if primary != "" {
		if _, ok := seen[primary]; !ok {
			retained = append([]model.ClassifiedDomain{{
				Name:       primary,
				Confidence: primarySentinelConfidence,
				Reasoning:  "Primary domain identified by the classifier",
			}}, retained...)
		}
	}

	return retained
}
