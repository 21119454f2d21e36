package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/seerworks/styleseer/internal/pipeline"
)

func TestViewRendersStageLines(t *testing.T) {
	m := NewModel("https://example.com", Stages(true, true), nil)
	updated, _ := m.Update(StageStartMsg{Stage: StageCollect})
	m = updated.(Model)
	updated, _ = m.Update(StageStartMsg{Stage: pipeline.StageResolve})
	m = updated.(Model)

	view := m.View()
	require.Contains(t, view, "Styleseer • https://example.com")
	require.Contains(t, view, "✓ Collecting page signals")
	require.Contains(t, view, "Resolving design schema")
	require.Contains(t, view, "… Validating schema")
	require.Contains(t, view, "… Writing artifacts")
}

func TestViewShowsDoneWhenFinished(t *testing.T) {
	m := NewModel("https://example.com", Stages(false, false), nil)
	updated, _ := m.Update(RunDoneMsg{})
	m = updated.(Model)

	require.Contains(t, m.View(), "Done.")
}

func TestViewShowsFailure(t *testing.T) {
	m := NewModel("https://example.com", Stages(false, false), nil)
	updated, _ := m.Update(StageStartMsg{Stage: StageCollect})
	m = updated.(Model)
	updated, _ = m.Update(RunDoneMsg{Err: errors.New("page fetch timed out")})
	m = updated.(Model)

	view := m.View()
	require.Contains(t, view, "✗ Collecting page signals")
	require.Contains(t, view, "page fetch timed out")
	require.NotContains(t, view, "Done.")
}

func TestViewShowsCancellation(t *testing.T) {
	m := NewModel("https://example.com", Stages(false, false), nil)
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	m = updated.(Model)

	require.Contains(t, m.View(), "Cancelled.")
}

func TestStatusIcon(t *testing.T) {
	t.Parallel()

	m := NewModel("https://example.com", Stages(false, false), nil)
	require.Contains(t, m.statusIcon(StatusDone), "✓")
	require.Contains(t, m.statusIcon(StatusFailed), "✗")
	require.Contains(t, m.statusIcon(StatusPending), "…")
	require.NotEmpty(t, m.statusIcon(StatusRunning))
}
