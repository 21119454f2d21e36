package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/seerworks/styleseer/internal/pipeline"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	labelStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	keywordStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

// IsTerminal reports whether w is an interactive terminal. Piped and
// redirected output gets the plain summary.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// Summary renders the post-run console summary: style keywords and the
// three role colors, plus the output path when files were written. The
// styled form adds color swatches; the plain form matches the original
// tool's summary block.
func Summary(res *pipeline.Result, outPath string, styled bool) string {
	if res == nil || res.Schema == nil {
		return ""
	}

	keywords := res.Schema.DesignSummary.StyleKeywords
	colors := res.Schema.Colors

	if !styled {
		var b strings.Builder
		b.WriteString("--- Extraction Summary ---\n")
		fmt.Fprintf(&b, "Style Keywords: %s\n", keywordList(keywords))
		fmt.Fprintf(&b, "Primary Color: %s\n", orNA(colors.PrimaryColor))
		fmt.Fprintf(&b, "Secondary Color: %s\n", orNA(colors.SecondaryColor))
		fmt.Fprintf(&b, "Accent Color: %s\n", orNA(colors.AccentColor))
		if outPath != "" {
			fmt.Fprintf(&b, "Full results saved with prefix: %s\n", outPath)
		}
		b.WriteString("------------------------")
		return b.String()
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Extraction Summary"))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Style Keywords:"))
	b.WriteString(" " + keywordBadges(keywords) + "\n")
	b.WriteString(labelStyle.Render("Primary Color:"))
	b.WriteString(" " + swatch(colors.PrimaryColor) + "\n")
	b.WriteString(labelStyle.Render("Secondary Color:"))
	b.WriteString(" " + swatch(colors.SecondaryColor) + "\n")
	b.WriteString(labelStyle.Render("Accent Color:"))
	b.WriteString(" " + swatch(colors.AccentColor))
	if outPath != "" {
		b.WriteString("\n" + mutedStyle.Render("Full results saved with prefix: "+outPath))
	}
	return b.String()
}

func keywordList(keywords []string) string {
	if len(keywords) == 0 {
		return "N/A"
	}
	return strings.Join(keywords, ", ")
}

func keywordBadges(keywords []string) string {
	if len(keywords) == 0 {
		return mutedStyle.Render("N/A")
	}
	badges := make([]string, len(keywords))
	for i, kw := range keywords {
		badges[i] = keywordStyle.Render(kw)
	}
	return strings.Join(badges, " ")
}

func swatch(hex string) string {
	if hex == "" {
		return mutedStyle.Render("N/A")
	}
	block := lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("  ")
	return block + " " + hex
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
