// Package output persists run artifacts to disk and renders the post-run
// console summary. File writes go through a temp-file-plus-rename step so
// a crashed run never leaves a half-written schema behind.
package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/seerworks/styleseer/internal/logger"
	"github.com/seerworks/styleseer/internal/pipeline"
)

// Format selects the console encoding for printed documents. Files on
// disk are always JSON.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a --format flag value.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML:
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown format %q (expected json or yaml)", s)
	}
}

// Marshal encodes a document for printing. YAML output re-reads the JSON
// encoding through a node tree: JSON is valid YAML, and the node tree
// keeps the schema's key order.
func Marshal(v any, format Format) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}
	if format != FormatYAML {
		return data, nil
	}

	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("failed to decode document for yaml output: %w", err)
	}
	clearStyle(&node)
	out, err := yaml.Marshal(&node)
	if err != nil {
		return nil, fmt.Errorf("failed to encode document as yaml: %w", err)
	}
	return out, nil
}

// clearStyle drops the flow and quoting styles the JSON syntax imposed,
// otherwise the node tree re-encodes as JSON rather than block YAML.
func clearStyle(n *yaml.Node) {
	n.Style = 0
	for _, child := range n.Content {
		clearStyle(child)
	}
}

// FileSet lists the on-disk paths derived from one output path. The
// schema takes the path itself; sibling artifacts take suffixed names
// next to it.
type FileSet struct {
	Schema     string
	AIView     string
	Docs       string
	SnippetDir string
}

// NewFileSet derives artifact paths from the analyze output path.
func NewFileSet(out string) FileSet {
	base := strings.TrimSuffix(out, filepath.Ext(out))
	return FileSet{
		Schema:     out,
		AIView:     base + "_ai.json",
		Docs:       base + "_docs.md",
		SnippetDir: base + "_snippets",
	}
}

// SnippetPath maps a snippet name to its file inside the snippet
// directory. Names mentioning css are stylesheets, tailwind and styled
// themes are javascript, anything else lands as plain text.
func (f FileSet) SnippetPath(name string) string {
	ext := ".txt"
	switch {
	case strings.Contains(name, "css"):
		ext = ".css"
	case strings.Contains(name, "tailwind"), strings.Contains(name, "styled"):
		ext = ".js"
	}
	return filepath.Join(f.SnippetDir, name+ext)
}

// WriteResult writes every artifact a run produced under the output path,
// creating parent directories as needed. Artifacts the run skipped are
// skipped here too. Returns the paths written, in a stable order.
func WriteResult(res *pipeline.Result, outPath string, log *logger.Logger) ([]string, error) {
	if res == nil || res.Schema == nil {
		return nil, fmt.Errorf("no schema to write")
	}

	files := NewFileSet(outPath)
	if dir := filepath.Dir(outPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(res.Schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode schema: %w", err)
	}
	if err := writeFileAtomic(files.Schema, data); err != nil {
		return nil, err
	}
	written := []string{files.Schema}

	if res.AISchema != nil {
		data, err := json.MarshalIndent(res.AISchema, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to encode ai view: %w", err)
		}
		if err := writeFileAtomic(files.AIView, data); err != nil {
			return nil, err
		}
		written = append(written, files.AIView)
	}

	if res.Docs != "" {
		if err := writeFileAtomic(files.Docs, []byte(res.Docs)); err != nil {
			return nil, err
		}
		written = append(written, files.Docs)
	}

	if len(res.Snippets) > 0 {
		if err := os.MkdirAll(files.SnippetDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create snippets directory: %w", err)
		}
		names := make([]string, 0, len(res.Snippets))
		for name := range res.Snippets {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			path := files.SnippetPath(name)
			if err := writeFileAtomic(path, []byte(res.Snippets[name])); err != nil {
				return nil, err
			}
			written = append(written, path)
		}
	}

	for _, path := range written {
		log.WithFields(map[string]any{"path": path}).Debug("artifact written")
	}
	return written, nil
}

func writeFileAtomic(path string, data []byte) error {
	// Write to temporary file first
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write temporary file: %w", err)
	}

	// Atomic rename
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath) // Clean up temp file on failure
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}

	return nil
}
