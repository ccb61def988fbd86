package core

import (
	"fmt"
	"strings"

	"github.com/campuslabs/cohort/internal/core/model"
	"github.com/campuslabs/cohort/internal/core/text"
)

// PrepareRecords derives the normalized comparison fields and synthesizes a
// positional identifier for any record that arrived without one. Input
// defects (missing title or scope) degrade to empty strings, never errors.
func PrepareRecords(records []model.Record) []model.Record {
	prepared := make([]model.Record, len(records))
	for i, rec := range records {
		if strings.TrimSpace(rec.ID) == "" {
			rec.ID = fmt.Sprintf("Project_%d", i)
		}
		rec.NormalizedTitle = text.Normalize(rec.Title)
		rec.NormalizedScope = text.Normalize(rec.Scope)
		prepared[i] = rec
	}
	return prepared
}
