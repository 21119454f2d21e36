package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/seerworks/styleseer/internal/collect"
	"github.com/seerworks/styleseer/internal/config"
	"github.com/seerworks/styleseer/internal/history"
	"github.com/seerworks/styleseer/internal/logger"
	"github.com/seerworks/styleseer/internal/output"
	"github.com/seerworks/styleseer/internal/pipeline"
	"github.com/seerworks/styleseer/internal/tui"
	styleseererrors "github.com/seerworks/styleseer/pkg/errors"
)

type analyzeOptions struct {
	URL     string
	Output  string
	Pretty  bool
	Format  string
	NoAI    bool
	NoCode  bool
	NoDocs  bool
	Static  bool
	Timeout time.Duration
	Archive bool
	Plain   bool
}

var analyzeCmdRunner = runAnalyze

func newAnalyzeCmd(root *rootFlags) *cobra.Command {
	opts := analyzeOptions{}

	cmd := &cobra.Command{
		Use:   "analyze <url>",
		Short: "Extract a design schema from a web page",
		Long: `Analyze renders a page, samples its visual signals (colors, typography,
layout metrics, component styles, imagery), and distills them into a
validated design schema plus optional AI view, theme code snippets, and
markdown documentation.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.URL = normalizeURL(args[0])
			return analyzeCmdRunner(cmd, root, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "Write the schema and artifacts under this path")
	cmd.Flags().BoolVarP(&opts.Pretty, "pretty", "p", false, "Print the full schema instead of the summary")
	cmd.Flags().StringVar(&opts.Format, "format", "", "Print format for --pretty: json or yaml")
	cmd.Flags().BoolVar(&opts.NoAI, "no-ai", false, "Skip the AI consumption view")
	cmd.Flags().BoolVar(&opts.NoCode, "no-code", false, "Skip theme code snippets")
	cmd.Flags().BoolVar(&opts.NoDocs, "no-docs", false, "Skip markdown documentation")
	cmd.Flags().BoolVar(&opts.Static, "static", false, "Collect over plain HTTP without a browser")
	cmd.Flags().DurationVar(&opts.Timeout, "timeout", 0, "Page load timeout (e.g. 45s); overrides the config file")
	cmd.Flags().BoolVar(&opts.Archive, "archive", false, "Record the run in the local history database")
	cmd.Flags().BoolVar(&opts.Plain, "plain", false, "Disable the progress display and styled output")

	return cmd
}

func runAnalyze(cmd *cobra.Command, root *rootFlags, opts analyzeOptions) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}

	format := cfg.Output.Format
	if opts.Format != "" {
		format = opts.Format
	}
	printFormat, err := output.ParseFormat(format)
	if err != nil {
		return err
	}

	log, err := newLogger(root, cfg)
	if err != nil {
		return err
	}

	pipelineOpts := analyzePipelineOptions(cfg, opts)
	pipelineOpts.Logger = log

	static := opts.Static || cfg.Collector.Static
	if !static && !collect.BrowserAvailable() {
		log.Warn("no local browser found, falling back to static collection")
		static = true
	}
	collector := newCollector(cfg, opts, static, log)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	plain := opts.Plain || cfg.Output.Plain
	interactive := output.IsTerminal(os.Stdout) && !plain

	run := func(onStage func(string)) (*pipeline.Result, error) {
		onStage(tui.StageCollect)
		bundle, err := collector.Collect(ctx, opts.URL)
		if err != nil {
			return nil, err
		}

		runOpts := pipelineOpts
		runOpts.OnStage = onStage
		res, err := pipeline.Run(bundle, runOpts)
		if err != nil {
			return nil, err
		}

		if opts.Output != "" {
			onStage(tui.StageWrite)
			if _, err := output.WriteResult(res, opts.Output, log); err != nil {
				return nil, err
			}
		}
		return res, nil
	}

	var res *pipeline.Result
	if interactive {
		hasArtifacts := pipelineOpts.AIView || pipelineOpts.Snippets || pipelineOpts.Docs
		program := tea.NewProgram(tui.NewModel(opts.URL, tui.Stages(hasArtifacts, opts.Output != ""), cancel))

		var runErr error
		done := make(chan struct{})
		go func() {
			defer close(done)
			res, runErr = run(func(stage string) { program.Send(tui.StageStartMsg{Stage: stage}) })
			program.Send(tui.RunDoneMsg{Err: runErr})
		}()

		if _, err := program.Run(); err != nil {
			return err
		}
		<-done
		if runErr != nil {
			return analyzeError(opts.URL, runErr)
		}
	} else {
		res, err = run(func(string) {})
		if err != nil {
			return analyzeError(opts.URL, err)
		}
	}

	if opts.Archive || cfg.History.Archive {
		archiveRun(ctx, cfg, res, log)
	}

	if opts.Pretty {
		doc, err := output.Marshal(res.Schema, printFormat)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(doc))
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), output.Summary(res, opts.Output, interactive))
	return nil
}

// analyzePipelineOptions composes the artifact selection: config defaults,
// narrowed by the command's --no-* flags.
func analyzePipelineOptions(cfg *config.Config, opts analyzeOptions) pipeline.Options {
	return pipeline.Options{
		AIView:   cfg.Output.AIView && !opts.NoAI,
		Snippets: cfg.Output.Snippets && !opts.NoCode,
		Docs:     cfg.Output.Docs && !opts.NoDocs,
	}
}

func newCollector(cfg *config.Config, opts analyzeOptions, static bool, log *logger.Logger) collect.Collector {
	timeout := cfg.Collector.TimeoutDuration()
	if opts.Timeout > 0 {
		timeout = opts.Timeout
	}

	if static {
		return collect.NewStatic(collect.StaticOptions{
			Timeout:   timeout,
			UserAgent: cfg.Collector.UserAgent,
		}, log)
	}
	return collect.NewBrowser(collect.BrowserOptions{
		ViewportWidth:  cfg.Collector.ViewportWidth,
		ViewportHeight: cfg.Collector.ViewportHeight,
		Timeout:        timeout,
		SettleDelay:    cfg.Collector.SettleDuration(),
		ChromiumPath:   cfg.Collector.ChromiumPath,
	}, log)
}

func archiveRun(ctx context.Context, cfg *config.Config, res *pipeline.Result, log *logger.Logger) {
	path := cfg.History.Path
	if path == "" {
		var err error
		path, err = history.DefaultPath()
		if err != nil {
			log.Error(err, "failed to archive run")
			return
		}
	}

	store, err := history.Open(path)
	if err != nil {
		log.Error(err, "failed to archive run")
		return
	}
	defer store.Close()

	entry := history.Entry{
		RunID:     res.RunID,
		SourceURL: res.Schema.Metadata.SourceURL,
		SiteType:  res.SiteType,
		Keywords:  res.Schema.DesignSummary.StyleKeywords,
		Schema:    res.Schema,
	}
	if err := store.Record(ctx, entry); err != nil {
		log.Error(err, "failed to archive run")
		return
	}
	log.WithFields(map[string]any{"run_id": res.RunID}).Debug("run archived")
}

func analyzeError(url string, err error) error {
	if errors.Is(err, context.Canceled) {
		return errors.New("analysis cancelled")
	}
	var collectErr *styleseererrors.CollectError
	if errors.As(err, &collectErr) {
		return newCommandError("analyze", fmt.Sprintf("collecting %s", url), err, "Check that the URL is reachable; pass --static to skip the browser.")
	}
	return err
}

// normalizeURL fills in a missing scheme so bare hostnames work.
func normalizeURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.Contains(raw, "://") {
		return raw
	}
	return "https://" + raw
}
