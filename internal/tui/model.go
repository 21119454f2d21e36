// Package tui renders live progress for an analyze run. The model tracks
// the run's stages and paints one line per stage; the command feeds it
// StageStartMsg from the worker goroutine and RunDoneMsg when the run ends.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/seerworks/styleseer/internal/pipeline"
)

// Stage identifiers owned by the command layer. The stages in between carry
// the pipeline's own identifiers.
const (
	StageCollect = "collect"
	StageWrite   = "write"
)

// Stage statuses.
const (
	StatusPending = "pending"
	StatusRunning = "running"
	StatusDone    = "done"
	StatusFailed  = "failed"
)

// StageStartMsg marks a stage as running. Any stage still running is
// considered finished.
type StageStartMsg struct {
	Stage string
}

// RunDoneMsg ends the program. Err carries the run's fatal error, if any.
type RunDoneMsg struct {
	Err error
}

var stageLabels = map[string]string{
	StageCollect:            "Collecting page signals",
	pipeline.StageResolve:   "Resolving design schema",
	pipeline.StageValidate:  "Validating schema",
	pipeline.StageClassify:  "Classifying site type",
	pipeline.StageEnhance:   "Applying plugin enhancers",
	pipeline.StageArtifacts: "Deriving artifacts",
	StageWrite:              "Writing artifacts",
}

// Stages returns the analyze run's stage ids in display order. The artifact
// stage is dropped when no artifacts were requested, the write stage when
// no files will be written.
func Stages(artifacts, write bool) []string {
	s := []string{StageCollect, pipeline.StageResolve, pipeline.StageValidate, pipeline.StageClassify, pipeline.StageEnhance}
	if artifacts {
		s = append(s, pipeline.StageArtifacts)
	}
	if write {
		s = append(s, StageWrite)
	}
	return s
}

// Model contains the Bubbletea state for the analyze progress display.
type Model struct {
	url       string
	order     []string
	status    map[string]string
	spinner   spinner.Model
	cancel    context.CancelFunc
	finished  bool
	cancelled bool
	err       error
}

// NewModel constructs a progress model over the given stages. cancel, when
// non-nil, is invoked once if the user interrupts the run.
func NewModel(url string, stages []string, cancel context.CancelFunc) Model {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	s.Style = spinnerStyle

	m := Model{
		url:     url,
		order:   make([]string, 0, len(stages)),
		status:  make(map[string]string),
		spinner: s,
		cancel:  cancel,
	}
	for _, id := range stages {
		m.ensureStage(id)
	}
	return m
}

// Init starts the Bubbletea program.
func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// IsFinished reports whether the run has completed.
func (m Model) IsFinished() bool {
	return m.finished
}

// IsCancelled reports whether the user interrupted the run.
func (m Model) IsCancelled() bool {
	return m.cancelled
}

// Err returns the run's fatal error, if any.
func (m Model) Err() error {
	return m.err
}

func (m *Model) ensureStage(id string) {
	if id == "" {
		return
	}
	if _, exists := m.status[id]; !exists {
		m.status[id] = StatusPending
		m.order = append(m.order, id)
	}
}

func (m *Model) markRunning(status string) {
	for id, st := range m.status {
		if st == StatusRunning {
			m.status[id] = status
		}
	}
}

func stageLabel(id string) string {
	if label, ok := stageLabels[id]; ok {
		return label
	}
	return id
}
