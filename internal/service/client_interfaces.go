// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"

	"github.com/openderm/lesionsnap/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock -exclude_interfaces=CaptureSequencer

// QualityAssessor maps the scorer's raw verdict onto the capture flow's
// description and 0-100 score. It never returns an error: any failure to
// obtain a verdict yields [models.FallbackAssessment], so the capture flow
// cannot block on scorer unavailability.
type QualityAssessor interface {
	Assess(ctx context.Context, frame []byte, filename string) models.QualityAssessment
}

// CaptureSequencer drives the guided capture flow over the fixed ordered
// step vocabulary: camera lifecycle, per-step capture and scoring, session
// persistence after every mutation, and the final all-or-nothing submit.
//
// Implementations are not safe for concurrent use; the UI loop serialises
// calls.
type CaptureSequencer interface {
	// Restore loads any persisted session (form and captures) so a restart
	// resumes where the previous run stopped.
	Restore(ctx context.Context) error

	// SetForm stores the intake form values and persists them.
	SetForm(ctx context.Context, form models.IntakeForm) error
	Form() models.IntakeForm

	// Start acquires the camera and enters previewing. Fails with
	// [camera.ErrCameraUnavailable] (wrapped) when no device can be
	// acquired; the failure is surfaced, never retried automatically.
	Start(ctx context.Context) error

	// Capture grabs a frame at the current step, scores it, stores the
	// result at the step cursor, and persists the session. When the score
	// crosses the auto-advance threshold and more steps remain, the
	// sequencer advances on its own after the display delay.
	Capture(ctx context.Context) (models.CaptureStepResult, error)

	// Retake discards the current step's result and returns to live
	// preview.
	Retake(ctx context.Context) error

	// Next moves the cursor forward, clamped to the last step; moving past
	// the last step triggers Submit.
	Next(ctx context.Context) error

	// Prev moves the cursor backward, clamped to the first step.
	Prev(ctx context.Context) error

	// ApplyZoom requests a zoom factor on the live stream. Applications
	// are rate-limited and rejections are swallowed.
	ApplyZoom(ctx context.Context, factor float64)

	// Submit uploads the batch. Success clears every per-step result and
	// the persisted session; failure keeps both so the user can retry
	// without recapturing.
	Submit(ctx context.Context) error

	State() CaptureState
	Cursor() int
	Results() []models.CaptureStepResult

	// Close releases the camera.
	Close() error
}

// UploadAssembler packages the form values and the dense capture array into
// one upload batch: empty slots dropped, generated collision-free filenames,
// and a metadata array positionally aligned with the binary parts.
type UploadAssembler interface {
	Assemble(form models.IntakeForm, results []models.CaptureStepResult) (models.UploadBatch, error)
}

// CaptureState is the sequencer's lifecycle state.
type CaptureState string

const (
	StateIdle       CaptureState = "idle"
	StatePreviewing CaptureState = "previewing"
	StateCaptured   CaptureState = "captured"
	StateSubmitting CaptureState = "submitting"
	StateDone       CaptureState = "done"
)
