package resolve

import (
	"context"
	"strings"

	"github.com/campuslabs/cohort/internal/core/classify"
	"github.com/campuslabs/cohort/internal/core/model"
	"github.com/campuslabs/cohort/internal/core/taxonomy"
)

// Attempt is the discriminated outcome of one resolution strategy.
// Matched is false when the strategy produced no domains and the resolver
// should try the next one.
type Attempt struct {
	Matched    bool
	Domains    []string
	Confidence map[string]model.DomainConfidence
	Method     string
}

// Resolver turns a record into a DomainAssignment by trying strategies in a
// strict order: AI classification, keyword matching, any pre-existing manual
// label, and finally the "Other" default. The first strategy that yields at
// least one domain wins.
type Resolver struct {
	Taxonomy   *taxonomy.Taxonomy
	Classifier *classify.Classifier
}

func NewResolver(tax *taxonomy.Taxonomy, classifier *classify.Classifier) *Resolver {
	return &Resolver{
		Taxonomy:   tax,
		Classifier: classifier,
	}
}

// Resolve never fails: classifier errors are swallowed upstream and the
// default strategy always matches.
func (r *Resolver) Resolve(ctx context.Context, rec model.Record) model.DomainAssignment {
	strategies := []func(context.Context, model.Record) Attempt{
		r.aiAttempt,
		r.keywordAttempt,
		r.existingLabelAttempt,
		r.defaultAttempt,
	}

	var attempt Attempt
	for _, strategy := range strategies {
		attempt = strategy(ctx, rec)
		if attempt.Matched {
			break
		}
	}

	return model.DomainAssignment{
		RecordID:   rec.ID,
		Title:      rec.Title,
		Domains:    attempt.Domains,
		Confidence: attempt.Confidence,
		Method:     attempt.Method,
	}
}

func (r *Resolver) aiAttempt(ctx context.Context, rec model.Record) Attempt {
	if r.Classifier == nil || rec.Title == "" || rec.Scope == "" {
		return Attempt{}
	}

	result := r.Classifier.Classify(ctx, rec.Title, rec.Scope)
	retained := classify.RetainedDomains(result)
	if len(retained) == 0 {
		return Attempt{}
	}

	domains := make([]string, 0, len(retained))
	confidence := make(map[string]model.DomainConfidence, len(retained))
	for _, d := range retained {
		domains = append(domains, d.Name)
		confidence[d.Name] = model.DomainConfidence{
			Score:     float64(d.Confidence),
			Method:    model.MethodAI,
			Reasoning: d.Reasoning,
		}
	}

	return Attempt{Matched: true, Domains: domains, Confidence: confidence, Method: model.MethodAI}
}

func (r *Resolver) keywordAttempt(_ context.Context, rec model.Record) Attempt {
	scores := r.Taxonomy.ScoreDomains(rec.NormalizedTitle, rec.NormalizedScope)
	if len(scores) == 0 {
		return Attempt{}
	}

	domains := make([]string, 0, len(scores))
	confidence := make(map[string]model.DomainConfidence, len(scores))
	for _, s := range scores {
		domains = append(domains, s.Domain)
		confidence[s.Domain] = model.DomainConfidence{
			Score:    float64(s.Score),
			Method:   model.MethodKeyword,
			Keywords: s.Keywords,
		}
	}

	return Attempt{Matched: true, Domains: domains, Confidence: confidence, Method: model.MethodKeyword}
}

func (r *Resolver) existingLabelAttempt(_ context.Context, rec model.Record) Attempt {
	label := strings.TrimSpace(rec.ExistingDomain)
	if label == "" {
		return Attempt{}
	}

	return Attempt{
		Matched: true,
		Domains: []string{label},
		Confidence: map[string]model.DomainConfidence{
			label: {
				Score:     1,
				Method:    model.MethodExistingLabel,
				Reasoning: "Pre-existing manual categorization",
			},
		},
		Method: model.MethodExistingLabel,
	}
}

func (r *Resolver) defaultAttempt(_ context.Context, _ model.Record) Attempt {
	return Attempt{
		Matched: true,
		Domains: []string{model.DomainOther},
		Confidence: map[string]model.DomainConfidence{
			model.DomainOther: {
				Score:  1,
				Method: model.MethodDefault,
			},
		},
		Method: model.MethodDefault,
	}
}
