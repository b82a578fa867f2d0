package models

// ImageMeta is the per-image metadata entry carried in the "metas" part of
// an upload. The metas array is positionally aligned with the binary image
// parts: metas[i] describes the i-th appended file, and the receiving side
// zips them by index — order and length must match exactly.
type ImageMeta struct {
	// Code is the step identity of the capture (images.image_type).
	Code string `json:"code"`

	// CaptureTime is the RFC 3339 snapshot timestamp.
	CaptureTime string `json:"capture_time"`

	// Filename is the server-side filename assigned by the upload
	// assembler; generated, never user-controlled.
	Filename string `json:"filename"`
}

// CapturedImage pairs one binary image payload with its assigned filename.
type CapturedImage struct {
	Filename string
	MimeType string
	Data     []byte
}

// IntakeForm holds the patient and lesion scalar fields collected by the
// intake form, exactly as entered. The capture client persists it between
// sessions and the upload assembler folds it into the submitted batch.
type IntakeForm struct {
	// PatientID is the raw external identifier as submitted; the intake
	// service replaces it with a keyed hash before anything is stored.
	PatientID string `json:"patient_id"`

	AgeRange    string `json:"age_range"`
	Sex         string `json:"sex"`
	MonkTone    *int   `json:"monk_tone"`
	Fitzpatrick string `json:"fitzpatrick"`
	Race        string `json:"race"`

	AnatomicSite      string `json:"anatomic_site"`
	ClinicalDiagnosis string `json:"clinical_diagnosis"`
	Biopsied          bool   `json:"biopsied"`
	LesionID          *int64 `json:"lesion_id"`
}

// UploadBatch is the full content of one multipart submission: the
// patient/lesion scalar fields plus every captured image and its aligned
// metadata. The batch is persisted all-or-nothing.
type UploadBatch struct {
	IntakeForm

	DeviceType string
	DeviceOS   string

	Images []CapturedImage
	Metas  []ImageMeta
}
