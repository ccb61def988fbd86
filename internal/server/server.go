package server

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/campuslabs/cohort/internal/config"
	"github.com/campuslabs/cohort/internal/core"
	"github.com/campuslabs/cohort/internal/core/model"
	"github.com/campuslabs/cohort/internal/llm"
)

type Server struct {
	Analyzer *core.Analyzer
}

func NewServer() *Server {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config/config.toml"
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Printf("Warning: could not load %s: %v. Using defaults", cfgPath, err)
		cfg = config.Default()
	}
	cfg.ApplyEnv()

	var llmClient llm.LLMClient
	if cfg.LLM.Configured() {
		llmClient, err = llm.NewClient(context.Background(), cfg.LLM)
		if err != nil {
			log.Fatalf("Failed to initialize LLM client: %v", err)
		}
	} else {
		log.Println("No LLM provider configured, running in keyword-only mode")
	}

	analyzer, err := core.NewAnalyzer(cfg, llmClient)
	if err != nil {
		log.Fatalf("Failed to build analyzer: %v", err)
	}

	return &Server{
		Analyzer: analyzer,
	}
}

func (s *Server) SetupRouter() *gin.Engine {
	r := gin.Default()

	r.GET("/healthz", s.Health)
	r.POST("/analyze", s.Analyze)

	return r
}

func (s *Server) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type AnalyzeRequest struct {
	Records []struct {
		ID     string `json:"id"`
		Title  string `json:"title"`
		Scope  string `json:"scope"`
		Domain string `json:"domain"`
	} `json:"records"`
}

func (s *Server) Analyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	records := make([]model.Record, 0, len(req.Records))
	for _, r := range req.Records {
		records = append(records, model.Record{
			ID:             r.ID,
			Title:          r.Title,
			Scope:          r.Scope,
			ExistingDomain: r.Domain,
		})
	}

	report, err := s.Analyzer.Analyze(c.Request.Context(), core.PrepareRecords(records))
	if err != nil {
		log.Printf("Failed to analyze batch: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, report)
}
