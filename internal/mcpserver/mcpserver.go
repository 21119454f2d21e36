// Package mcpserver exposes the extraction pipeline over the Model
// Context Protocol so AI agents can request design schemas directly.
package mcpserver

import (
	"context"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/seerworks/styleseer/internal/history"
	"github.com/seerworks/styleseer/internal/logger"
	"github.com/seerworks/styleseer/internal/pipeline"
	"github.com/seerworks/styleseer/internal/schema"
)

// AnalyzeFunc runs one extraction. The CLI wires in the collector and
// pipeline composition; tests substitute a stub.
type AnalyzeFunc func(ctx context.Context, url string, static bool) (*pipeline.Result, error)

// Deps supplies the server's collaborators. Archive is optional; without
// it list_runs reports an error and analyses are not recorded.
type Deps struct {
	Analyze AnalyzeFunc
	Archive *history.Store
	Logger  *logger.Logger
}

// Server is the MCP server for styleseer.
type Server struct {
	deps   Deps
	log    *logger.Logger
	server *mcp.Server
}

// NewServer creates an MCP server exposing the analyze_site and
// list_runs tools.
func NewServer(version string, deps Deps) (*Server, error) {
	if deps.Analyze == nil {
		return nil, fmt.Errorf("analyze function is required")
	}

	impl := &mcp.Implementation{
		Name:    "styleseer",
		Version: version,
	}

	s := &Server{
		deps:   deps,
		log:    deps.Logger.WithComponent("mcp"),
		server: mcp.NewServer(impl, nil),
	}

	s.registerTools()
	return s, nil
}

// Run starts the MCP server over stdio. It blocks until the context is
// cancelled or an error occurs.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// AnalyzeInput is the input schema for the analyze_site tool.
type AnalyzeInput struct {
	URL    string `json:"url" jsonschema:"the page URL to analyze"`
	Static bool   `json:"static,omitempty" jsonschema:"use the static HTTP collector instead of the headless browser"`
}

// AnalyzeOutput is the output schema for the analyze_site tool. Schema is
// the AI-optimized view of the extracted design schema.
type AnalyzeOutput struct {
	RunID    string         `json:"run_id"`
	SiteType string         `json:"site_type"`
	Schema   *schema.Schema `json:"schema"`
}

// ListRunsInput is the input schema for the list_runs tool.
type ListRunsInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"maximum number of runs to return (default 10)"`
}

// ListRunsOutput is the output schema for the list_runs tool.
type ListRunsOutput struct {
	Runs  []RunSummary `json:"runs"`
	Count int          `json:"count"`
}

// RunSummary describes one archived run.
type RunSummary struct {
	RunID     string   `json:"run_id"`
	SourceURL string   `json:"source_url"`
	SiteType  string   `json:"site_type"`
	Keywords  []string `json:"keywords"`
	CreatedAt string   `json:"created_at"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "analyze_site",
		Description: "Extract a design schema (colors, typography, layout, components) from a web page",
	}, s.handleAnalyze)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_runs",
		Description: "List archived extraction runs, newest first",
	}, s.handleListRuns)
}

// handleAnalyze handles the analyze_site tool invocation.
func (s *Server) handleAnalyze(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AnalyzeInput,
) (*mcp.CallToolResult, AnalyzeOutput, error) {
	if input.URL == "" {
		return nil, AnalyzeOutput{}, fmt.Errorf("url is required")
	}

	res, err := s.deps.Analyze(ctx, input.URL, input.Static)
	if err != nil {
		return nil, AnalyzeOutput{}, err
	}

	doc := res.AISchema
	if doc == nil {
		doc = res.Schema
	}

	if s.deps.Archive != nil {
		err := s.deps.Archive.Record(ctx, history.Entry{
			RunID:     res.RunID,
			SourceURL: input.URL,
			SiteType:  res.SiteType,
			Keywords:  res.Schema.DesignSummary.StyleKeywords,
			Schema:    res.Schema,
		})
		if err != nil {
			s.log.Error(err, "failed to archive run")
		}
	}

	return nil, AnalyzeOutput{
		RunID:    res.RunID,
		SiteType: res.SiteType,
		Schema:   doc,
	}, nil
}

// handleListRuns handles the list_runs tool invocation.
func (s *Server) handleListRuns(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ListRunsInput,
) (*mcp.CallToolResult, ListRunsOutput, error) {
	if s.deps.Archive == nil {
		return nil, ListRunsOutput{}, fmt.Errorf("run archive is not configured")
	}

	limit := input.Limit
	if limit <= 0 {
		limit = 10
	}

	entries, err := s.deps.Archive.List(ctx, limit)
	if err != nil {
		return nil, ListRunsOutput{}, err
	}

	runs := make([]RunSummary, len(entries))
	for i, e := range entries {
		runs[i] = RunSummary{
			RunID:     e.RunID,
			SourceURL: e.SourceURL,
			SiteType:  e.SiteType,
			Keywords:  e.Keywords,
			CreatedAt: e.CreatedAt.UTC().Format(time.RFC3339),
		}
	}

	return nil, ListRunsOutput{Runs: runs, Count: len(runs)}, nil
}
