package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuslabs/cohort/internal/config"
	"github.com/campuslabs/cohort/internal/core"
	"github.com/campuslabs/cohort/internal/core/model"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	analyzer, err := core.NewAnalyzer(config.Default(), nil)
	require.NoError(t, err)
	return &Server{Analyzer: analyzer}
}

func TestHealthz(t *testing.T) {
	r := testServer(t).SetupRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAnalyze_BadRequest(t *testing.T) {
	r := testServer(t).SetupRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader("not json"))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAnalyze_KeywordOnlyBatch(t *testing.T) {
	r := testServer(t).SetupRouter()

	body := `{"records": [
		{"id": "p1", "title": "Online store", "scope": "An e-commerce website with payment integration"},
		{"id": "p2", "title": "Shop website", "scope": "An e-commerce website with payment checkout"},
		{"title": "Cricket coaching tracker", "scope": "Performance analysis for cricket coaching"}
	]}`

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var report model.Report
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
	require.Len(t, report.Assignments, 3)
	// The record without an id gets a synthesized positional one.
	assert.Equal(t, "Project_2", report.Assignments[2].RecordID)
	assert.NotEmpty(t, report.Pairs)
	assert.NotEmpty(t, report.RunID)
}
