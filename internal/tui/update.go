package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case StageStartMsg:
		if msg.Stage == "" {
			return m, nil
		}
		m.markRunning(StatusDone)
		m.ensureStage(msg.Stage)
		m.status[msg.Stage] = StatusRunning
		return m, nil
	case RunDoneMsg:
		if msg.Err != nil {
			m.err = msg.Err
			m.markRunning(StatusFailed)
		} else {
			m.markRunning(StatusDone)
		}
		m.finished = true
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.cancelled = true
			m.finished = true
			if m.cancel != nil {
				m.cancel()
			}
			return m, tea.Quit
		}
	}

	return m, nil
}
