package tui

import (
	"github.com/openderm/lesionsnap/models"
)

// NavigateTo switches the router to another page. An optional Payload is
// delivered to the target page instead of its Init command.
type NavigateTo struct {
	Page    string
	Payload any
}

type formSavedMsg struct {
	err error
}

type cameraStartedMsg struct {
	err error
}

type frameCapturedMsg struct {
	result models.CaptureStepResult
	err    error
}

type stepChangedMsg struct {
	err error
}

type submitDoneMsg struct {
	err error
}

type tickMsg struct{}
