package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/openderm/lesionsnap/internal/logger"
	"github.com/openderm/lesionsnap/internal/service"
)

var ErrUserQuit = errors.New("user quit the program")

type TUI struct {
	services *service.ClientServices

	logger *logger.Logger
}

func New(services *service.ClientServices, logger *logger.Logger) (*TUI, error) {
	return &TUI{services: services, logger: logger}, nil
}

// Run restores any persisted session and drives the intake flow until the
// user quits: form page first, then the guided capture sequence.
func (t *TUI) Run(ctx context.Context) error {
	sequencer := t.services.CaptureSequencer
	defer func() { _ = sequencer.Close() }()

	if err := sequencer.Restore(ctx); err != nil {
		t.logger.Err(err).Str("func", "TUI.Run").Msg("error restoring capture session")
	}

	pages := map[string]tea.Model{
		"form":    newFormModel(ctx, sequencer),
		"capture": newCaptureModel(ctx, sequencer),
	}

	root := NewRootModel(pages, "form")
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if runErr != nil {
		return runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}

	return nil
}
