//go:build integration

package integration

import (
	"context"
	"os"
	"testing"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuslabs/cohort/internal/config"
	"github.com/campuslabs/cohort/internal/core"
	"github.com/campuslabs/cohort/internal/core/model"
	"github.com/campuslabs/cohort/internal/llm"
)

// TestLiveClassification runs the full pipeline against a real LLM provider.
// It is skipped unless LLM_PROVIDER is set.
func TestLiveClassification(t *testing.T) {
	_ = godotenv.Load("../../.env")

	if os.Getenv("LLM_PROVIDER") == "" {
		t.Skip("Skipping integration test: LLM_PROVIDER not set")
	}

	cfg := config.Default()
	cfg.ApplyEnv()

	client, err := llm.NewClient(context.Background(), cfg.LLM)
	require.NoError(t, err)

	analyzer, err := core.NewAnalyzer(cfg, client)
	require.NoError(t, err)

	records := core.PrepareRecords([]model.Record{
		{ID: "fyp-1", Title: "Crop Disease Detection", Scope: "A computer vision system that identifies crop diseases from leaf images using convolutional neural networks"},
		{ID: "fyp-2", Title: "Plant Health Monitor", Scope: "Deep learning based image classification of plant leaf diseases for farmers"},
		{ID: "fyp-3", Title: "Library Management System", Scope: "A web application for managing book lending in a university library"},
	})

	report, err := analyzer.Analyze(context.Background(), records)
	require.NoError(t, err)
	require.Len(t, report.Assignments, 3)

	for _, a := range report.Assignments {
		assert.NotEmpty(t, a.Domains)
	}

	// A live classifier should categorize the two vision projects by AI.
	assert.Equal(t, model.MethodAI, report.Assignments[0].Method)

	// The two crop-disease projects overlap heavily; the library system
	// should not pair with either at the default threshold.
	for _, p := range report.Pairs {
		assert.NotEqual(t, "fyp-3", p.RecordA)
		assert.NotEqual(t, "fyp-3", p.RecordB)
	}
}
