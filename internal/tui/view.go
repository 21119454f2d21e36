package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the current state of the model.
func (m Model) View() string {
	var sections []string

	title := titleStyle.Render(fmt.Sprintf("Styleseer • %s", m.url))
	sections = append(sections, title, m.renderStages())

	switch {
	case m.cancelled:
		sections = append(sections, summaryStyle.Render(failureStyle.Render("Cancelled.")))
	case m.err != nil:
		sections = append(sections, summaryStyle.Render(failureStyle.Render(fmt.Sprintf("✗ %v", m.err))))
	case m.finished:
		sections = append(sections, summaryStyle.Render(successStyle.Render("Done.")))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...) + "\n"
}

func (m Model) renderStages() string {
	var lines []string
	for _, id := range m.order {
		lines = append(lines, fmt.Sprintf(" %s %s", m.statusIcon(m.status[id]), stageLabel(id)))
	}
	return strings.Join(lines, "\n")
}

// statusIcon returns the glyph representing a stage status.
func (m Model) statusIcon(status string) string {
	switch status {
	case StatusDone:
		return successStyle.Render("✓")
	case StatusRunning:
		return m.spinner.View()
	case StatusFailed:
		return failureStyle.Render("✗")
	default:
		return pendingStyle.Render("…")
	}
}
