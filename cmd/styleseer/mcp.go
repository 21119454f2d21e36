package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/seerworks/styleseer/internal/collect"
	"github.com/seerworks/styleseer/internal/history"
	"github.com/seerworks/styleseer/internal/mcpserver"
	"github.com/seerworks/styleseer/internal/pipeline"
)

func newMCPCmd(root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Serve analyses over the Model Context Protocol on stdio",
		Long: `Mcp exposes the analyzer to MCP clients over stdio. The analyze_site tool
runs the full pipeline and returns the AI view of the schema; list_runs
reads the local run archive. Logs go to stderr; stdout carries the
protocol.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMCP(root)
		},
	}

	return cmd
}

func runMCP(root *rootFlags) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}
	log, err := newLogger(root, cfg)
	if err != nil {
		return err
	}

	historyPath := cfg.History.Path
	if historyPath == "" {
		historyPath, err = history.DefaultPath()
		if err != nil {
			return err
		}
	}
	archive, err := history.Open(historyPath)
	if err != nil {
		return newCommandError("serve mcp", fmt.Sprintf("opening %s", historyPath), err, "Check that you have write access to the database directory.")
	}
	defer archive.Close()

	analyze := func(ctx context.Context, url string, static bool) (*pipeline.Result, error) {
		static = static || cfg.Collector.Static
		if !static && !collect.BrowserAvailable() {
			log.Warn("no local browser found, falling back to static collection")
			static = true
		}

		bundle, err := newCollector(cfg, analyzeOptions{}, static, log).Collect(ctx, normalizeURL(url))
		if err != nil {
			return nil, err
		}
		return pipeline.Run(bundle, pipeline.Options{AIView: true, Logger: log})
	}

	srv, err := mcpserver.NewServer(version, mcpserver.Deps{
		Analyze: analyze,
		Archive: archive,
		Logger:  log,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.WithFields(map[string]any{"version": version}).Info("mcp server listening on stdio")
	return srv.Run(ctx)
}
