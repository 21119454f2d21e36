package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/seerworks/styleseer/internal/config"
	"github.com/seerworks/styleseer/internal/logger"
)

type rootFlags struct {
	verbose    bool
	configPath string
	logFormat  string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "styleseer",
		Short:         "Styleseer distills a web page's visual design into a structured schema",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to a styleseer.yaml configuration file")
	cmd.PersistentFlags().StringVar(&flags.logFormat, "log-format", "", "Log output format: console or json")

	cmd.AddCommand(newAnalyzeCmd(flags))
	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newDiffCmd(flags))
	cmd.AddCommand(newHistoryCmd(flags))
	cmd.AddCommand(newMCPCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func loadConfig(flags *rootFlags) (*config.Config, error) {
	return config.Load(flags.configPath)
}

func newLogger(flags *rootFlags, cfg *config.Config) (*logger.Logger, error) {
	level := cfg.Logging.Level
	if flags.verbose {
		level = "debug"
	}
	format := cfg.Logging.Format
	if flags.logFormat != "" {
		format = flags.logFormat
	}
	return logger.New(logger.Options{Level: level, HumanReadable: format != "json"})
}

func newCommandError(operation, context string, cause error, suggestion string) error {
	return &commandError{operation: operation, context: context, cause: cause, suggestion: suggestion}
}

type commandError struct {
	operation  string
	context    string
	cause      error
	suggestion string
}

func (e *commandError) Error() string {
	return fmt.Sprintf("Failed to %s: %s\n\nError: %v\n\nSuggestion: %s", e.operation, e.context, e.cause, e.suggestion)
}
