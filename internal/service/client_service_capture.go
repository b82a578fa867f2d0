// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/openderm/lesionsnap/internal/adapter"
	"github.com/openderm/lesionsnap/internal/camera"
	"github.com/openderm/lesionsnap/internal/logger"
	"github.com/openderm/lesionsnap/internal/store"
	"github.com/openderm/lesionsnap/models"
)

const (
	// autoAdvanceScore is the quality score above which the sequencer
	// moves to the next step by itself.
	autoAdvanceScore = 80

	// autoAdvanceDelay keeps the captured frame on screen before the
	// automatic advance.
	autoAdvanceDelay = 2 * time.Second

	// zoomThrottle bounds constraint applications on the live stream.
	zoomThrottle = 100 * time.Millisecond

	// Zoom presets: the close-up step starts tight, every later step
	// starts wide.
	zoomPresetFirst = 5.0
	zoomPresetRest  = 2.0

	// Ideal capture resolution requested from the device.
	captureWidth  = 4032
	captureHeight = 3024
)

// captureSequencer owns the guided capture flow: the camera stream, the
// step cursor, the dense result array, and session persistence. The mutex
// covers the auto-advance timer firing concurrently with UI calls.
type captureSequencer struct {
	steps         []models.PhotoStep
	provider      camera.Provider
	quality       QualityAssessor
	assembler     UploadAssembler
	serverAdapter adapter.ServerAdapter
	session       store.SessionStore

	mu       sync.Mutex
	state    CaptureState
	cursor   int
	form     models.IntakeForm
	results  []models.CaptureStepResult
	stream   camera.Stream
	lastZoom time.Time
	advance  *time.Timer

	// injectable clock for tests
	now   func() time.Time
	after func(d time.Duration, f func()) *time.Timer

	logger *logger.Logger
}

func NewCaptureSequencer(
	provider camera.Provider,
	quality QualityAssessor,
	assembler UploadAssembler,
	serverAdapter adapter.ServerAdapter,
	session store.SessionStore,
	logger *logger.Logger,
) CaptureSequencer {
	return &captureSequencer{
		steps:         models.PhotoSteps,
		provider:      provider,
		quality:       quality,
		assembler:     assembler,
		serverAdapter: serverAdapter,
		session:       session,
		state:         StateIdle,
		results:       models.NewCaptureSet(models.StepCount),
		now:           time.Now,
		after:         time.AfterFunc,
		logger:        logger,
	}
}

// Restore loads the persisted session. A stored capture array whose shape
// does not match the step count has already been discarded by the store.
func (s *captureSequencer) Restore(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	form, ok, err := s.session.LoadForm(ctx)
	if err != nil {
		return fmt.Errorf("restore form: %w", err)
	}
	if ok {
		s.form = form
	}

	captures, ok, err := s.session.LoadCaptures(ctx, len(s.steps))
	if err != nil {
		return fmt.Errorf("restore captures: %w", err)
	}
	if ok {
		s.results = captures
	}

	return nil
}

func (s *captureSequencer) SetForm(ctx context.Context, form models.IntakeForm) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.form = form
	return s.session.SaveForm(ctx, form)
}

func (s *captureSequencer) Form() models.IntakeForm {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form
}

// Start acquires the camera with the step's zoom preset and enters live
// preview. An unavailable camera is surfaced to the caller, never retried.
func (s *captureSequencer) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stream != nil {
		_ = s.stream.Close()
		s.stream = nil
	}

	stream, err := s.provider.Open(ctx, camera.Constraints{
		FacingMode: "environment",
		Width:      captureWidth,
		Height:     captureHeight,
		Zoom:       s.presetZoom(),
	})
	if err != nil {
		return err
	}

	s.stream = stream
	s.lastZoom = s.now()
	s.state = StatePreviewing
	return nil
}

// Capture grabs and scores a frame, stores it at the cursor, and persists
// the session. A score above the threshold schedules the automatic advance.
func (s *captureSequencer) Capture(ctx context.Context) (models.CaptureStepResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stream == nil {
		return models.CaptureStepResult{}, ErrNotPreviewing
	}

	frame, err := s.stream.Snapshot(ctx)
	if err != nil {
		return models.CaptureStepResult{}, fmt.Errorf("snapshot: %w", err)
	}

	assessment := s.quality.Assess(ctx, frame.Data, "capture.png")

	result := models.CaptureStepResult{
		Frame:       frame.Data,
		MimeType:    frame.MimeType,
		Description: assessment.Description,
		Score:       assessment.Score,
		CaptureTime: s.now().UTC().Format(time.RFC3339),
	}

	s.results[s.cursor] = result
	s.state = StateCaptured
	s.persistLocked(ctx)

	if assessment.Score > autoAdvanceScore && s.cursor < len(s.steps)-1 {
		s.scheduleAdvanceLocked()
	}

	return result, nil
}

// Retake discards the current step's result and returns to live preview.
func (s *captureSequencer) Retake(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cancelAdvanceLocked()
	s.results[s.cursor] = models.CaptureStepResult{}
	s.state = StatePreviewing
	s.persistLocked(ctx)
	return nil
}

// Next moves forward; past the last step it triggers the submit instead.
func (s *captureSequencer) Next(ctx context.Context) error {
	s.mu.Lock()

	s.cancelAdvanceLocked()
	if s.cursor == len(s.steps)-1 {
		s.mu.Unlock()
		return s.Submit(ctx)
	}

	s.moveCursorLocked(ctx, s.cursor+1)
	s.mu.Unlock()
	return nil
}

func (s *captureSequencer) Prev(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cancelAdvanceLocked()
	if s.cursor > 0 {
		s.moveCursorLocked(ctx, s.cursor-1)
	}
	return nil
}

// ApplyZoom forwards a zoom request to the live stream, at most once per
// throttle window. Rejections and unsupported constraints are swallowed.
func (s *captureSequencer) ApplyZoom(ctx context.Context, factor float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stream == nil {
		return
	}
	if s.now().Sub(s.lastZoom) < zoomThrottle {
		return
	}
	s.lastZoom = s.now()

	if err := s.stream.ApplyConstraints(ctx, camera.Constraints{Zoom: factor}); err != nil {
		s.logger.Debug().
			Err(err).
			Str("func", "captureSequencer.ApplyZoom").
			Msg("zoom constraint rejected")
	}
}

// Submit uploads the assembled batch. Success clears the results and the
// persisted session; any failure keeps both so a retry needs no recapture.
func (s *captureSequencer) Submit(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cancelAdvanceLocked()
	s.state = StateSubmitting

	batch, err := s.assembler.Assemble(s.form, s.results)
	if err != nil {
		return err
	}

	resp, err := s.serverAdapter.UploadBatch(ctx, batch)
	if err != nil {
		return fmt.Errorf("upload batch: %w", err)
	}

	s.logger.Info().
		Str("func", "captureSequencer.Submit").
		Str("upload_id", resp.UploadID).
		Int("images", resp.ImagesWritten).
		Msg("batch uploaded")

	s.results = models.NewCaptureSet(len(s.steps))
	s.cursor = 0
	if err = s.session.Clear(ctx); err != nil {
		s.logger.Err(err).
			Str("func", "captureSequencer.Submit").
			Msg("failed to clear session after upload")
	}

	s.state = StateDone
	return nil
}

func (s *captureSequencer) State() CaptureState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *captureSequencer) Cursor() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cursor
}

func (s *captureSequencer) Results() []models.CaptureStepResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.CaptureStepResult, len(s.results))
	copy(out, s.results)
	return out
}

func (s *captureSequencer) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cancelAdvanceLocked()
	if s.stream != nil {
		if err := s.stream.Close(); err != nil {
			return err
		}
		s.stream = nil
	}
	s.state = StateIdle
	return nil
}

// moveCursorLocked repositions the cursor, applies the step's zoom preset,
// and restores the state matching the slot's content.
func (s *captureSequencer) moveCursorLocked(ctx context.Context, cursor int) {
	s.cursor = cursor

	if s.stream != nil {
		s.lastZoom = s.now()
		if err := s.stream.ApplyConstraints(ctx, camera.Constraints{Zoom: s.presetZoom()}); err != nil {
			s.logger.Debug().
				Err(err).
				Str("func", "captureSequencer.moveCursorLocked").
				Msg("zoom preset rejected")
		}
	}

	if s.results[s.cursor].Taken() {
		s.state = StateCaptured
	} else {
		s.state = StatePreviewing
	}
}

func (s *captureSequencer) presetZoom() float64 {
	if s.cursor == 0 {
		return zoomPresetFirst
	}
	return zoomPresetRest
}

func (s *captureSequencer) scheduleAdvanceLocked() {
	s.cancelAdvanceLocked()
	s.advance = s.after(autoAdvanceDelay, func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		// an explicit navigation may have raced the timer
		if s.state != StateCaptured || s.cursor >= len(s.steps)-1 {
			return
		}
		s.moveCursorLocked(context.Background(), s.cursor+1)
	})
}

func (s *captureSequencer) cancelAdvanceLocked() {
	if s.advance != nil {
		s.advance.Stop()
		s.advance = nil
	}
}

// persistLocked saves the capture array. Persistence is best-effort: a
// failed write never blocks the capture flow.
func (s *captureSequencer) persistLocked(ctx context.Context) {
	if err := s.session.SaveCaptures(ctx, s.results); err != nil {
		s.logger.Err(err).
			Str("func", "captureSequencer.persistLocked").
			Msg("failed to persist capture session")
	}
}
