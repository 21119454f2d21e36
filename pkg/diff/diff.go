// Package diff renders unified text diffs. The CLI uses it to report
// style drift between two saved schema documents.
package diff

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/sergi/go-diff/diffmatchpatch"
)

const (
	maxLines        = 10000
	truncateMessage = "... (diff truncated, exceeds 10,000 lines) ..."
)

// Unified compares two documents and renders a unified diff, or an empty
// string when they are identical. Diffs past 10,000 lines are truncated
// with a marker.
func Unified(before, after []byte, beforeLabel, afterLabel string) string {
	if bytes.Equal(before, after) {
		return ""
	}

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffCleanupSemantic(dmp.DiffMain(string(before), string(after), false))

	var buf bytes.Buffer
	timestamp := time.Now().Format("2006-01-02 15:04:05")
	fmt.Fprintf(&buf, "--- %s\t%s\n", beforeLabel, timestamp)
	fmt.Fprintf(&buf, "+++ %s\t%s\n", afterLabel, timestamp)
	fmt.Fprintf(&buf, "@@ -1,%d +1,%d @@\n", lineCount(before), lineCount(after))

	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		}
		for _, line := range splitLines(d.Text) {
			buf.WriteString(prefix)
			buf.WriteString(line)
			buf.WriteString("\n")
		}
	}

	return truncate(buf.String())
}

func lineCount(b []byte) int {
	return len(strings.Split(string(b), "\n"))
}

func splitLines(text string) []string {
	lines := strings.Split(text, "\n")

	// Remove empty trailing line from split
	if len(lines) > 0 && lines[len(lines)-1] == "" && strings.HasSuffix(text, "\n") {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func truncate(s string) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= maxLines {
		return s
	}
	return strings.Join(lines[:maxLines], "\n") + "\n" + truncateMessage + "\n"
}
