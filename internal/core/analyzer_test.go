package core

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuslabs/cohort/internal/config"
	"github.com/campuslabs/cohort/internal/core/classify"
	"github.com/campuslabs/cohort/internal/core/model"
)

func TestNewAnalyzer_RejectsBadConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Analysis.SimilarityThreshold = 2.0
	_, err := NewAnalyzer(cfg, nil)
	assert.Error(t, err)

	cfg = config.Default()
	cfg.Taxonomy = []config.TaxonomyEntry{{Domain: "Web", Keywords: nil}}
	_, err = NewAnalyzer(cfg, nil)
	assert.Error(t, err)
}

func TestPrepareRecords(t *testing.T) {
	prepared := PrepareRecords([]model.Record{
		{ID: "  ", Title: "  Smart\nFarm  ", Scope: "IoT   sensors"},
		{ID: "fyp-2", Title: "", Scope: ""},
	})

	assert.Equal(t, "Project_0", prepared[0].ID)
	assert.Equal(t, "smart farm", prepared[0].NormalizedTitle)
	assert.Equal(t, "iot sensors", prepared[0].NormalizedScope)
	assert.Equal(t, "fyp-2", prepared[1].ID)
	assert.Equal(t, "", prepared[1].NormalizedTitle)
}

func TestAnalyze_KeywordOnlyBatch(t *testing.T) {
	analyzer, err := NewAnalyzer(config.Default(), nil)
	require.NoError(t, err)

	records := PrepareRecords([]model.Record{
		{ID: "p1", Title: "Online store platform", Scope: "An e-commerce website with payment integration"},
		{ID: "p2", Title: "Shop website", Scope: "An e-commerce website with payment checkout"},
		{ID: "p3", Title: "Cricket coaching tracker", Scope: "Performance analysis for cricket coaching"},
		{ID: "p4", Title: "", Scope: ""},
	})

	report, err := analyzer.Analyze(context.Background(), records)
	require.NoError(t, err)
	require.Len(t, report.Assignments, 4)

	// Every record resolves to a non-empty, duplicate-free domain set.
	for _, a := range report.Assignments {
		assert.NotEmpty(t, a.Domains)
		seen := map[string]bool{}
		for _, d := range a.Domains {
			assert.False(t, seen[d], "duplicate domain %q for %s", d, a.RecordID)
			seen[d] = true
		}
	}

	// The empty record falls through to the default.
	assert.Equal(t, model.MethodDefault, report.Assignments[3].Method)
	assert.Equal(t, []string{model.DomainOther}, report.Assignments[3].Domains)

	assert.Equal(t, 3, report.MethodCounts[model.MethodKeyword])
	assert.Equal(t, 1, report.MethodCounts[model.MethodDefault])

	// The two store projects pair up; the other records appear in no pair.
	require.Len(t, report.Pairs, 1)
	assert.Equal(t, "p1", report.Pairs[0].RecordA)
	assert.Equal(t, "p2", report.Pairs[0].RecordB)
	assert.NotEmpty(t, report.Pairs[0].OverlappingDomains)
	assert.Equal(t, 1, report.TierCounts[report.Pairs[0].Tier])

	assert.NotEmpty(t, report.RunID)
}

func TestAnalyze_AIFirstWithMockLLM(t *testing.T) {
	mock := &classify.MockLLMClient{
		Response: `{"domains": [{"name": "Healthcare & Medical", "confidence": 9, "reasoning": "patient records"}], "primary_domain": "Healthcare & Medical", "summary": "healthcare"}`,
	}
	analyzer, err := NewAnalyzer(config.Default(), mock)
	require.NoError(t, err)

	records := PrepareRecords([]model.Record{
		{ID: "p1", Title: "Patient portal", Scope: "Electronic health record access for patients"},
	})

	report, err := analyzer.Analyze(context.Background(), records)
	require.NoError(t, err)
	assert.Equal(t, model.MethodAI, report.Assignments[0].Method)
	assert.Equal(t, "Healthcare & Medical", report.Assignments[0].PrimaryDomain())
	assert.Equal(t, 1, report.MethodCounts[model.MethodAI])
}

func TestAnalyze_DuplicateIDsRejected(t *testing.T) {
	analyzer, err := NewAnalyzer(config.Default(), nil)
	require.NoError(t, err)

	_, err = analyzer.Analyze(context.Background(), []model.Record{
		{ID: "p1"}, {ID: "p1"},
	})
	assert.Error(t, err)
}

func TestAnalyze_InsufficientTextWarns(t *testing.T) {
	analyzer, err := NewAnalyzer(config.Default(), nil)
	require.NoError(t, err)

	report, err := analyzer.Analyze(context.Background(), PrepareRecords([]model.Record{
		{ID: "p1", Title: "Only one usable record", Scope: "with text"},
		{ID: "p2"},
	}))
	require.NoError(t, err)
	assert.Empty(t, report.Pairs)
	assert.NotEmpty(t, report.Warnings)
}

func TestAnalyze_Idempotent(t *testing.T) {
	analyzer, err := NewAnalyzer(config.Default(), nil)
	require.NoError(t, err)

	records := PrepareRecords([]model.Record{
		{ID: "p1", Title: "Campus navigation app", Scope: "A mobile app with indoor navigation"},
		{ID: "p2", Title: "Campus guide app", Scope: "A mobile app with campus navigation maps"},
	})

	first, err := analyzer.Analyze(context.Background(), records)
	require.NoError(t, err)
	second, err := analyzer.Analyze(context.Background(), records)
	require.NoError(t, err)

	assert.Equal(t, first.Assignments, second.Assignments)
	assert.Equal(t, first.Pairs, second.Pairs)
}
