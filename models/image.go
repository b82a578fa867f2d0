package models

import "time"

// ImageRecord is one row of the images table. An image belongs to exactly
// one lesion; in practice a lesion has between zero and StepCount images,
// one per capture step identity.
//
// ContainsPHI and PoorQuality are the only fields mutable after creation,
// each through its own annotation endpoint. Repeated identical writes are
// no-ops in effect.
type ImageRecord struct {
	ID         int64     `json:"id"`
	LesionID   int64     `json:"lesion_id"`
	FilePath   string    `json:"file_path"`
	CapturedAt time.Time `json:"captured_at"`

	// DeviceType and DeviceOS are free-text descriptions of the capture
	// device ("mobile", "iOS 17.4", ...).
	DeviceType string `json:"device_type"`
	DeviceOS   string `json:"device_os"`

	// ImageType is one of the step identities in PhotoSteps.
	ImageType string `json:"image_type"`

	ContainsPHI bool `json:"contains_phi"`
	PoorQuality bool `json:"poor_quality"`
}

// PhotoStep describes one stage of the guided capture flow.
type PhotoStep struct {
	// ID is the step identity stored in images.image_type.
	ID          string
	Title       string
	Description string
}

// PhotoSteps is the ordered, fixed capture sequence. The order here defines
// the canonical slot order used by the dense per-lesion image matrix.
var PhotoSteps = []PhotoStep{
	{
		ID:          "close-up",
		Title:       "Close-up Photo",
		Description: "From ~6 inches away, without any camera attachment",
	},
	{
		ID:          "non-polarized-cone",
		Title:       "Non-Polarized, Cone Attachment w/o Glass",
		Description: "Make sure the lesion fills most of the frame",
	},
	{
		ID:          "polarized-contact",
		Title:       "Polarized, Contact Photo",
		Description: "Make sure the lesion fills most of the frame",
	},
	{
		ID:          "non-polarized-contact",
		Title:       "Non-Polarized, Contact Photo",
		Description: "Make sure the lesion fills most of the frame",
	},
	{
		ID:          "non-polarized-liquid-contact",
		Title:       "Non-polarized, Liquid Contact Photo",
		Description: "Apply liquid and turn select non-polarized light",
	},
}

// StepCount is the number of capture steps, and therefore the length of
// every dense slot array.
var StepCount = len(PhotoSteps)

// StepSlot returns the canonical slot index for a step identity, or -1 when
// the identity is not part of the vocabulary.
func StepSlot(stepID string) int {
	for i, step := range PhotoSteps {
		if step.ID == stepID {
			return i
		}
	}
	return -1
}

// StepID returns the step identity at the given slot index, or "" when the
// index is out of range.
func StepID(slot int) string {
	if slot < 0 || slot >= len(PhotoSteps) {
		return ""
	}
	return PhotoSteps[slot].ID
}
