package main

import (
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/seerworks/styleseer/internal/history"
	"github.com/seerworks/styleseer/internal/output"
)

func newHistoryCmd(root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect archived extraction runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(newHistoryListCmd(root))
	cmd.AddCommand(newHistoryShowCmd(root))

	return cmd
}

func openHistory(root *rootFlags) (*history.Store, error) {
	cfg, err := loadConfig(root)
	if err != nil {
		return nil, err
	}

	path := cfg.History.Path
	if path == "" {
		path, err = history.DefaultPath()
		if err != nil {
			return nil, newCommandError("open history", "determining database path", err, "Ensure your HOME directory is set correctly.")
		}
	}

	store, err := history.Open(path)
	if err != nil {
		return nil, newCommandError("open history", fmt.Sprintf("opening %s", path), err, "Check that you have write access to the database directory.")
	}
	return store, nil
}

type historyListOptions struct {
	Limit int
}

func newHistoryListCmd(root *rootFlags) *cobra.Command {
	opts := historyListOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List archived runs, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistoryList(cmd, root, opts)
		},
	}

	cmd.Flags().IntVar(&opts.Limit, "limit", 20, "Maximum number of runs to list")

	return cmd
}

func runHistoryList(cmd *cobra.Command, root *rootFlags, opts historyListOptions) error {
	store, err := openHistory(root)
	if err != nil {
		return err
	}
	defer store.Close()

	entries, err := store.List(cmd.Context(), opts.Limit)
	if err != nil {
		return newCommandError("list runs", "querying the archive", err, "Check database file permissions and try again.")
	}

	if len(entries) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No runs archived yet.")
		fmt.Fprintln(cmd.OutOrStdout(), "\nRun 'styleseer analyze <url> --archive' to record your first run.")
		return nil
	}

	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "RUN ID\tURL\tTYPE\tKEYWORDS\tCAPTURED")
	for _, e := range entries {
		fmt.Fprintf(writer, "%s\t%s\t%s\t%s\t%s\n",
			shortRunID(e.RunID),
			e.SourceURL,
			e.SiteType,
			strings.Join(e.Keywords, ", "),
			e.CreatedAt.Local().Format("2006-01-02 15:04"),
		)
	}
	return writer.Flush()
}

// shortRunID keeps tables readable; Get accepts the prefix back.
func shortRunID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

type historyShowOptions struct {
	RunID  string
	Format string
}

func newHistoryShowCmd(root *rootFlags) *cobra.Command {
	opts := historyShowOptions{}

	cmd := &cobra.Command{
		Use:   "show <run-id>",
		Short: "Print the schema captured by a run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.RunID = args[0]
			return runHistoryShow(cmd, root, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Format, "format", "json", "Output format: json or yaml")

	return cmd
}

func runHistoryShow(cmd *cobra.Command, root *rootFlags, opts historyShowOptions) error {
	format, err := output.ParseFormat(opts.Format)
	if err != nil {
		return err
	}

	store, err := openHistory(root)
	if err != nil {
		return err
	}
	defer store.Close()

	entry, err := store.Get(cmd.Context(), opts.RunID)
	if err != nil {
		if errors.Is(err, history.ErrNotFound) {
			return newCommandError("show run", fmt.Sprintf("looking up %q", opts.RunID), err, "Run 'styleseer history list' to see archived run ids.")
		}
		return err
	}

	doc, err := output.Marshal(entry.Schema, format)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(doc))
	return nil
}
