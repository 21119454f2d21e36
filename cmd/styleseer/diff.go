package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/seerworks/styleseer/internal/schema"
)

var diffCmdRunner = runDiff

func newDiffCmd(root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff <before.json> <after.json>",
		Short: "Report style drift between two saved schemas",
		Long: `Diff compares two saved schema documents and prints a unified diff of
their differences. Extraction timestamps are ignored, so two runs against
an unchanged site report no drift. Returns exit code 1 when the schemas
differ.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := diffCmdRunner(args[0], args[1])
			if err != nil {
				return err
			}
			if report == "" {
				fmt.Fprintln(cmd.OutOrStdout(), "No style drift detected.")
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), report)
			os.Exit(1)
			return nil
		},
	}

	return cmd
}

func runDiff(beforePath, afterPath string) (string, error) {
	before, err := loadSchema(beforePath)
	if err != nil {
		return "", err
	}
	after, err := loadSchema(afterPath)
	if err != nil {
		return "", err
	}

	report, err := schema.Drift(before, after, beforePath, afterPath)
	if err != nil {
		return "", newCommandError("diff", "comparing schemas", err, "Check that both files are schema documents produced by analyze.")
	}
	return report, nil
}

func loadSchema(path string) (*schema.Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, newCommandError("diff", fmt.Sprintf("reading %s", path), err, "Check the path; schemas are written by 'styleseer analyze -o'.")
	}
	var s schema.Schema
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, newCommandError("diff", fmt.Sprintf("parsing %s", path), err, "Pass schema JSON files produced by analyze.")
	}
	return &s, nil
}
