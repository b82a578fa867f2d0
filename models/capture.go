package models

// CaptureStepResult is the client-local record of one capture step. The
// per-session result collection is always a dense array of StepCount
// entries: a step that has not been captured is represented by the zero
// value (empty Frame), never by omission, so every consumer can address
// results positionally.
type CaptureStepResult struct {
	// Frame is the captured image payload; empty when the step has not
	// been taken (or was retaken and not yet recaptured).
	Frame []byte `json:"frame"`

	// MimeType of Frame, e.g. "image/jpeg". Empty when Frame is empty.
	MimeType string `json:"mime_type"`

	Description string `json:"description"`
	Score       int    `json:"score"`

	// CaptureTime is the RFC 3339 timestamp of the snapshot; empty when
	// the step has not been taken.
	CaptureTime string `json:"capture_time"`
}

// Taken reports whether the step holds a captured frame.
func (r CaptureStepResult) Taken() bool {
	return len(r.Frame) > 0
}

// NewCaptureSet returns a dense, all-empty result collection of the given
// step count.
func NewCaptureSet(steps int) []CaptureStepResult {
	return make([]CaptureStepResult, steps)
}
