// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/openderm/lesionsnap/internal/service"
	"github.com/openderm/lesionsnap/models"
)

// refreshInterval drives the periodic re-render that picks up automatic
// step advances from the sequencer.
const refreshInterval = 500 * time.Millisecond

const (
	zoomStep = 0.5
	zoomMin  = 1.0
	zoomMax  = 10.0
)

type captureModel struct {
	ctx       context.Context
	sequencer service.CaptureSequencer

	steps  []models.PhotoStep
	cursor int
	zoom   float64

	busy   bool
	errMsg string
	status string
}

func newCaptureModel(ctx context.Context, sequencer service.CaptureSequencer) *captureModel {
	return &captureModel{
		ctx:       ctx,
		sequencer: sequencer,
		steps:     models.PhotoSteps,
	}
}

func (m *captureModel) Init() tea.Cmd {
	m.errMsg = ""
	m.status = ""
	m.busy = true
	return tea.Batch(
		func() tea.Msg { return cameraStartedMsg{err: m.sequencer.Start(m.ctx)} },
		m.tick(),
	)
}

func (m *captureModel) tick() tea.Cmd {
	return tea.Tick(refreshInterval, func(time.Time) tea.Msg { return tickMsg{} })
}

func (m *captureModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		// pick up automatic advances and reset the zoom display when the
		// sequencer moved the cursor on its own
		if cursor := m.sequencer.Cursor(); cursor != m.cursor {
			m.cursor = cursor
			m.zoom = 0
		}
		return m, m.tick()

	case cameraStartedMsg:
		m.busy = false
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
		}
		return m, nil

	case frameCapturedMsg:
		m.busy = false
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		return m, nil

	case stepChangedMsg:
		m.busy = false
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.cursor = m.sequencer.Cursor()
		m.zoom = 0
		m.errMsg = ""
		return m, nil

	case submitDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.cursor = 0
		m.zoom = 0
		m.errMsg = ""
		m.status = "Upload complete."
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *captureModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.busy {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.capture):
		m.busy = true
		return m, func() tea.Msg {
			result, err := m.sequencer.Capture(m.ctx)
			return frameCapturedMsg{result: result, err: err}
		}

	case key.Matches(msg, keys.retake):
		return m, func() tea.Msg { return stepChangedMsg{err: m.sequencer.Retake(m.ctx)} }

	case key.Matches(msg, keys.right):
		m.busy = true
		if m.cursor == len(m.steps)-1 {
			// advancing past the final step submits the batch
			return m, func() tea.Msg { return submitDoneMsg{err: m.sequencer.Next(m.ctx)} }
		}
		return m, func() tea.Msg { return stepChangedMsg{err: m.sequencer.Next(m.ctx)} }

	case key.Matches(msg, keys.left):
		return m, func() tea.Msg { return stepChangedMsg{err: m.sequencer.Prev(m.ctx)} }

	case key.Matches(msg, keys.submit):
		m.busy = true
		return m, func() tea.Msg { return submitDoneMsg{err: m.sequencer.Submit(m.ctx)} }

	case key.Matches(msg, keys.zoomIn):
		m.applyZoom(zoomStep)
		return m, nil

	case key.Matches(msg, keys.zoomOut):
		m.applyZoom(-zoomStep)
		return m, nil

	case key.Matches(msg, keys.back):
		return m, func() tea.Msg { return NavigateTo{Page: "form"} }

	case key.Matches(msg, keys.enter):
		if m.sequencer.State() == service.StateDone {
			return m, func() tea.Msg { return NavigateTo{Page: "form"} }
		}
		return m, nil
	}

	return m, nil
}

// applyZoom adjusts the displayed zoom by delta and forwards the absolute
// factor to the sequencer. The starting point is the current step's preset.
func (m *captureModel) applyZoom(delta float64) {
	zoom := m.zoom
	if zoom == 0 {
		zoom = m.presetZoom()
	}

	zoom += delta
	if zoom < zoomMin {
		zoom = zoomMin
	}
	if zoom > zoomMax {
		zoom = zoomMax
	}

	m.zoom = zoom
	m.sequencer.ApplyZoom(m.ctx, zoom)
}

func (m *captureModel) presetZoom() float64 {
	if m.cursor == 0 {
		return 5.0
	}
	return 2.0
}

func (m *captureModel) View() string {
	var b strings.Builder

	step := m.steps[m.cursor]
	results := m.sequencer.Results()

	b.WriteString(fmt.Sprintf("Step %d/%d  %s\n", m.cursor+1, len(m.steps), m.progressDots(results)))
	b.WriteString(titleStyle.Render(step.Title))
	b.WriteString("\n")
	b.WriteString(step.Description)
	b.WriteString("\n\n")

	zoom := m.zoom
	if zoom == 0 {
		zoom = m.presetZoom()
	}
	b.WriteString(fmt.Sprintf("Zoom: %.1fx    State: %s\n", zoom, m.sequencer.State()))

	if result := results[m.cursor]; result.Taken() {
		b.WriteString("\n")
		b.WriteString(scoreStyle.Render(fmt.Sprintf("Score: %d/100", result.Score)))
		b.WriteString("\n")
		b.WriteString(fitText(result.Description, 70))
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
		b.WriteString(" Press enter to start a new session.\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("ERROR: " + m.errMsg))
		b.WriteString("\n")
	}
	if m.busy {
		b.WriteString("\nworking...\n")
	}

	return renderPage(
		"GUIDED CAPTURE",
		strings.TrimRight(b.String(), "\n"),
		"space: capture │ r: retake │ ←/→: steps │ +/-: zoom │ s: submit │ esc: form",
	)
}

// progressDots renders one dot per step, filled when that step has a stored
// capture.
func (m *captureModel) progressDots(results []models.CaptureStepResult) string {
	dots := make([]string, len(results))
	for i, r := range results {
		if r.Taken() {
			dots[i] = filledStyle.Render("●")
		} else {
			dots[i] = "○"
		}
	}
	return strings.Join(dots, " ")
}
