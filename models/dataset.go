package models

import "time"

// DatasetFilter holds the optional equality filters of the dashboard query.
// Zero values mean "no filter"; Limit defaults to 10 at the handler.
type DatasetFilter struct {
	// AnatomicSite filters lesions by exact site match.
	AnatomicSite string

	// Diagnosis is the canonical stored label (the handler maps the
	// display code through DiagnosisLabels before building the filter).
	Diagnosis string

	// Limit caps the result to the N most recent lesions by lesion id.
	Limit int
}

// LesionRow is one aggregated row of the dashboard query: one row per
// (patient, lesion, device-type, device-os) group, with the per-image
// columns collapsed into same-order comma-delimited lists.
type LesionRow struct {
	PatientRecord
	LesionID          int64  `json:"lesion_id"`
	AnatomicSite      string `json:"anatomic_site"`
	VectraID          *int64 `json:"vectra_id"`
	Biopsied          bool   `json:"biopsied"`
	ClinicalDiagnosis string `json:"clinical_diagnosis"`

	// FilePaths, ImageIDs, PoorQualities, ContainsPHIs and ImageTypes are
	// ", "-delimited lists produced by STRING_AGG. They are positionally
	// aligned with each other.
	FilePaths     string `json:"filepaths"`
	ImageIDs      string `json:"image_ids"`
	PoorQualities string `json:"image_poor_qualities"`
	ContainsPHIs  string `json:"image_contains_phi"`
	ImageTypes    string `json:"image_types"`

	// CapturedAt is the earliest capture timestamp in the group.
	CapturedAt time.Time `json:"captured_at"`

	DeviceType string `json:"device_type"`
	DeviceOS   string `json:"device_os"`

	// Images is the dense slot array derived from the delimited lists:
	// exactly StepCount entries in canonical step order, with placeholders
	// for steps that were never captured.
	Images []ImageSlot `json:"images"`
}

// ImageSlot is one entry of the dense per-lesion image matrix. A step that
// has no stored image is represented by the placeholder slot (ID 0, File
// "N/A", both flags false) at its fixed position.
type ImageSlot struct {
	ID          int64  `json:"id"`
	ImageType   string `json:"image_type"`
	File        string `json:"file"`
	PoorQuality bool   `json:"poor_quality"`
	ContainsPHI bool   `json:"contains_phi"`
}

// PlaceholderSlot returns the "not taken" slot for the given slot index.
func PlaceholderSlot(slot int) ImageSlot {
	return ImageSlot{
		ID:        0,
		ImageType: StepID(slot),
		File:      "N/A",
	}
}
