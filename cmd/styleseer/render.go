package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/seerworks/styleseer/internal/artifact"
	"github.com/seerworks/styleseer/internal/schema"
)

type renderOptions struct {
	Path  string
	Watch bool
	Width int
}

var renderCmdRunner = runRender

func newRenderCmd(root *rootFlags) *cobra.Command {
	opts := renderOptions{}

	cmd := &cobra.Command{
		Use:   "render <schema.json|docs.md>",
		Short: "Render schema documentation in the terminal",
		Long: `Render displays the markdown documentation for a saved schema. Given a
schema JSON file it regenerates the documentation first; given a markdown
file it renders it as is. With --watch the view refreshes whenever the
file changes.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Path = args[0]
			return renderCmdRunner(cmd, opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.Watch, "watch", "w", false, "Re-render whenever the file changes")
	cmd.Flags().IntVar(&opts.Width, "width", 80, "Word wrap width")

	return cmd
}

func runRender(cmd *cobra.Command, opts renderOptions) error {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(opts.Width),
	)
	if err != nil {
		return fmt.Errorf("failed to create renderer: %w", err)
	}

	renderOnce := func() error {
		markdown, err := loadDocs(opts.Path)
		if err != nil {
			return err
		}
		out, err := renderer.Render(markdown)
		if err != nil {
			return fmt.Errorf("failed to render markdown: %w", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	}

	if err := renderOnce(); err != nil {
		return err
	}
	if !opts.Watch {
		return nil
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return watchAndRender(ctx, opts.Path, renderOnce)
}

// loadDocs returns the markdown for the given file: markdown files pass
// through, schema files get their documentation regenerated.
func loadDocs(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", newCommandError("render", fmt.Sprintf("reading %s", path), err, "Generate one with 'styleseer analyze <url> -o <path>'.")
	}

	if strings.EqualFold(filepath.Ext(path), ".md") {
		return string(data), nil
	}

	var s schema.Schema
	if err := json.Unmarshal(data, &s); err != nil {
		return "", newCommandError("render", fmt.Sprintf("parsing %s", path), err, "Pass a schema JSON file or a markdown file.")
	}
	return artifact.Docs(&s), nil
}

// watchAndRender re-renders on writes to the file until ctx is done.
// Watching the directory instead of the file survives the atomic
// write-and-rename that editors and the analyze command both use.
func watchAndRender(ctx context.Context, path string, render func() error) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	const debounce = 200 * time.Millisecond
	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	fire := make(chan struct{}, 1)
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Name != abs || !event.Has(fsnotify.Write|fsnotify.Create|fsnotify.Rename) {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounce, func() {
				select {
				case fire <- struct{}{}:
				default:
				}
			})
		case <-fire:
			if err := render(); err != nil {
				return err
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watch failed: %w", err)
		}
	}
}
