package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/joho/godotenv"

	"github.com/campuslabs/cohort/internal/config"
	"github.com/campuslabs/cohort/internal/core"
	"github.com/campuslabs/cohort/internal/core/model"
	"github.com/campuslabs/cohort/internal/llm"
)

func main() {
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}

	inputPath := flag.String("input", "", "CSV file with project records")
	outputDir := flag.String("output", "output", "directory for result files")
	cfgPath := flag.String("config", "", "optional TOML config file")
	flag.Parse()

	if *inputPath == "" {
		log.Fatal("usage: analyze -input projects.csv [-output dir] [-config config.toml]")
	}

	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		cfg, err = config.Load(*cfgPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	cfg.ApplyEnv()

	var llmClient llm.LLMClient
	if cfg.LLM.Configured() {
		var err error
		llmClient, err = llm.NewClient(context.Background(), cfg.LLM)
		if err != nil {
			log.Fatalf("Failed to initialize LLM client: %v", err)
		}
		log.Printf("Using %s for domain categorization", cfg.LLM.Provider)
	} else {
		log.Println("No LLM provider configured, using keyword-based categorization")
	}

	records, err := loadRecords(*inputPath)
	if err != nil {
		log.Fatalf("Failed to load records: %v", err)
	}
	log.Printf("Loaded %d projects from %s", len(records), *inputPath)

	analyzer, err := core.NewAnalyzer(cfg, llmClient)
	if err != nil {
		log.Fatalf("Failed to build analyzer: %v", err)
	}

	report, err := analyzer.Analyze(context.Background(), core.PrepareRecords(records))
	if err != nil {
		log.Fatalf("Analysis failed: %v", err)
	}

	if err := os.MkdirAll(*outputDir, 0o755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}

	domainOut := filepath.Join(*outputDir, "domain_categorization.json")
	similarityOut := filepath.Join(*outputDir, "similarity_analysis.json")
	if err := writeJSON(domainOut, domainReport(report)); err != nil {
		log.Fatalf("Failed to write %s: %v", domainOut, err)
	}
	if err := writeJSON(similarityOut, similarityReport(report)); err != nil {
		log.Fatalf("Failed to write %s: %v", similarityOut, err)
	}

	printSummary(report)
	log.Printf("Output files saved in %s", *outputDir)
}

// loadRecords reads project rows from a CSV file. The header row is matched
// against the column names the upstream spreadsheets use, falling back to
// plain id/title/scope/domain.
func loadRecords(path string) ([]model.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("no data rows in %s", path)
	}

	columns := map[string]string{
		"short_title":                              "id",
		"project short title":                      "id",
		"id":                                       "id",
		"project title":                            "title",
		"title":                                    "title",
		"project scope":                            "scope",
		"scope":                                    "scope",
		"categorize the primary domain of project": "domain",
		"domain":                                   "domain",
	}

	index := make(map[string]int)
	for i, name := range rows[0] {
		key := strings.ToLower(strings.TrimSpace(name))
		if field, ok := columns[key]; ok {
			if _, taken := index[field]; !taken {
				index[field] = i
			}
		}
	}
	if _, ok := index["title"]; !ok {
		return nil, fmt.Errorf("no title column found in %s", path)
	}

	cell := func(row []string, field string) string {
		i, ok := index[field]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	records := make([]model.Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		records = append(records, model.Record{
			ID:             strings.TrimSpace(cell(row, "id")),
			Title:          cell(row, "title"),
			Scope:          cell(row, "scope"),
			ExistingDomain: cell(row, "domain"),
		})
	}
	return records, nil
}

// domainReport groups the domain table with its summary counts, mirroring
// the layout of the categorization export.
func domainReport(report *model.Report) any {
	return map[string]any{
		"run_id":        report.RunID,
		"generated_at":  report.GeneratedAt,
		"assignments":   report.Assignments,
		"method_counts": report.MethodCounts,
		"domain_counts": report.DomainCounts,
	}
}

func similarityReport(report *model.Report) any {
	return map[string]any{
		"run_id":       report.RunID,
		"generated_at": report.GeneratedAt,
		"pairs":        report.Pairs,
		"tier_counts":  report.TierCounts,
		"warnings":     report.Warnings,
	}
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

func printSummary(report *model.Report) {
	fmt.Printf("\nANALYSIS SUMMARY\n")
	fmt.Printf("Total projects analyzed: %d\n", len(report.Assignments))

	fmt.Println("Categorization methods used:")
	for _, method := range []string{model.MethodAI, model.MethodKeyword, model.MethodExistingLabel, model.MethodDefault} {
		if n := report.MethodCounts[method]; n > 0 {
			fmt.Printf("  %s: %d projects\n", method, n)
		}
	}

	type domainCount struct {
		domain string
		n      int
	}
	counts := make([]domainCount, 0, len(report.DomainCounts))
	for d, n := range report.DomainCounts {
		counts = append(counts, domainCount{d, n})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].n != counts[j].n {
			return counts[i].n > counts[j].n
		}
		return counts[i].domain < counts[j].domain
	})
	fmt.Println("Top domains:")
	for i, c := range counts {
		if i == 5 {
			break
		}
		fmt.Printf("  %s: %d projects\n", c.domain, c.n)
	}

	if len(report.Pairs) > 0 {
		fmt.Printf("Similar project pairs found: %d\n", len(report.Pairs))
		for _, tier := range []string{model.TierVeryHigh, model.TierHigh, model.TierMedium, model.TierLow} {
			if n := report.TierCounts[tier]; n > 0 {
				fmt.Printf("  %s similarity: %d pairs\n", tier, n)
			}
		}
	} else {
		fmt.Println("No similar project pairs found above threshold")
	}
}
