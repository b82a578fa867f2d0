package store

import (
	"context"

	"github.com/openderm/lesionsnap/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_session_mock.go -package=mock

// SessionStore is the client-side durable session: the intake form state and
// the dense capture-result array survive a client restart. Every mutation
// overwrites the stored value whole.
type SessionStore interface {
	SaveForm(ctx context.Context, form models.IntakeForm) error
	// LoadForm returns the stored form and whether one was present.
	LoadForm(ctx context.Context) (models.IntakeForm, bool, error)

	SaveCaptures(ctx context.Context, captures []models.CaptureStepResult) error
	// LoadCaptures returns the stored dense capture array. A stored entry
	// whose slot count differs from steps is discarded whole.
	LoadCaptures(ctx context.Context, steps int) ([]models.CaptureStepResult, bool, error)

	// Clear drops both the form and the capture array.
	Clear(ctx context.Context) error
}
