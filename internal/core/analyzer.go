package core

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/campuslabs/cohort/internal/config"
	"github.com/campuslabs/cohort/internal/core/classify"
	"github.com/campuslabs/cohort/internal/core/model"
	"github.com/campuslabs/cohort/internal/core/resolve"
	"github.com/campuslabs/cohort/internal/core/similarity"
	"github.com/campuslabs/cohort/internal/core/taxonomy"
	"github.com/campuslabs/cohort/internal/llm"
)

// Analyzer wires the domain resolver and the similarity engine over a shared
// taxonomy. It holds no per-run state: each Analyze call is independent.
type Analyzer struct {
	Taxonomy *taxonomy.Taxonomy
	Resolver *resolve.Resolver
	Engine   *similarity.Engine
}

// NewAnalyzer validates the configuration and builds the pipeline. A nil
// llmClient selects keyword-only mode.
func NewAnalyzer(cfg *config.Config, llmClient llm.LLMClient) (*Analyzer, error) {
	if err := cfg.Analysis.Validate(); err != nil {
		return nil, fmt.Errorf("invalid analysis config: %w", err)
	}

	tax := taxonomy.Default()
	if len(cfg.Taxonomy) > 0 {
		entries := make([]taxonomy.Entry, 0, len(cfg.Taxonomy))
		for _, e := range cfg.Taxonomy {
			entries = append(entries, taxonomy.Entry{Domain: e.Domain, Keywords: e.Keywords})
		}
		var err error
		tax, err = taxonomy.New(entries)
		if err != nil {
			return nil, fmt.Errorf("invalid taxonomy config: %w", err)
		}
	}

	var classifier *classify.Classifier
	if llmClient != nil {
		timeout := time.Duration(cfg.Analysis.AITimeoutSeconds) * time.Second
		classifier = classify.NewClassifier(llmClient, tax, timeout)
	}

	engine := similarity.NewEngine(cfg.Analysis.SimilarityThreshold, similarity.VectorizerConfig{
		MaxFeatures: cfg.Analysis.MaxFeatures,
		StopWords:   cfg.Analysis.StopWords,
		NGramMin:    cfg.Analysis.NGramMin,
		NGramMax:    cfg.Analysis.NGramMax,
		MinDF:       cfg.Analysis.MinDF,
		MaxDF:       cfg.Analysis.MaxDF,
	})

	return &Analyzer{
		Taxonomy: tax,
		Resolver: resolve.NewResolver(tax, classifier),
		Engine:   engine,
	}, nil
}

// Analyze runs the full batch: domain resolution per record (sequential, so
// external classifier calls stay rate-limit friendly and deterministic),
// then pairwise similarity over the resolved assignments. Records must carry
// unique IDs; blank IDs are synthesized from position beforehand by the
// caller or PrepareRecords.
func (a *Analyzer) Analyze(ctx context.Context, records []model.Record) (*model.Report, error) {
	seen := make(map[string]struct{}, len(records))
	for _, rec := range records {
		if _, dup := seen[rec.ID]; dup {
			return nil, fmt.Errorf("duplicate record id %q", rec.ID)
		}
		seen[rec.ID] = struct{}{}
	}

	report := &model.Report{
		RunID:        uuid.New().String(),
		GeneratedAt:  time.Now().UTC(),
		Assignments:  make([]model.DomainAssignment, 0, len(records)),
		MethodCounts: make(map[string]int),
		DomainCounts: make(map[string]int),
		TierCounts:   make(map[string]int),
	}

	assignmentsByID := make(map[string]model.DomainAssignment, len(records))
	for _, rec := range records {
		assignment := a.Resolver.Resolve(ctx, rec)
		report.Assignments = append(report.Assignments, assignment)
		assignmentsByID[rec.ID] = assignment

		report.MethodCounts[assignment.Method]++
		for _, d := range assignment.Domains {
			report.DomainCounts[d]++
		}
	}

	report.Pairs = a.Engine.ComputePairs(records, assignmentsByID)
	for _, p := range report.Pairs {
		report.TierCounts[p.Tier]++
	}

	if usable := usableTextCount(records); usable < 2 {
		warn := fmt.Sprintf("similarity skipped: %d record(s) with usable text, need at least 2", usable)
		report.Warnings = append(report.Warnings, warn)
		log.Printf("Warning: %s", warn)
	}

	return report, nil
}

func usableTextCount(records []model.Record) int {
	n := 0
	for _, rec := range records {
		if rec.CombinedText() != "" {
			n++
		}
	}
	return n
}
