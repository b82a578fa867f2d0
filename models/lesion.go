package models

// LesionRecord is one row of the lesions table. A lesion belongs to exactly
// one patient and is append-only: nothing updates a lesion after the upload
// batch that created it.
type LesionRecord struct {
	ID        int64  `json:"lesion_id"`
	PatientID string `json:"patient_id"`

	// AnatomicSite is one of the seven values in AnatomicSites.
	AnatomicSite string `json:"anatomic_site"`

	// VectraID is an externally assigned lesion identifier; nil when the
	// capture device does not provide one.
	VectraID *int64 `json:"vectra_id"`

	Biopsied bool `json:"biopsied"`

	// ClinicalDiagnosis holds the canonical full-text label, never the
	// short display code.
	ClinicalDiagnosis string `json:"clinical_diagnosis"`
}

// AnatomicSites is the fixed vocabulary for the anatomic_site field.
var AnatomicSites = []string{
	"Head/Neck",
	"Upper Extremity",
	"Lower Extremity",
	"Anterior Torso",
	"Lateral Torso",
	"Posterior Torso",
	"Palms/Soles",
}

// DiagnosisLabels maps the short display codes shown on the intake form and
// dashboard filters to the canonical stored labels.
var DiagnosisLabels = map[string]string{
	"Angioma":        "Angioma",
	"Solar Lentigo":  "Solar lentigo",
	"SK":             "Seborrheic keratosis",
	"LPLK":           "Lichen planus-like keratosis",
	"Dermatofibroma": "Dermatofibroma",
	"Nevus":          "Melanocytic nevus",
	"BCC":            "Basal cell carcinoma",
	"SCC":            "Squamous cell carcinoma",
	"Melanoma":       "Melanoma",
	"Other":          "Other",
}

// CanonicalDiagnosis maps a raw diagnosis value to its canonical stored
// label. Unrecognized input maps to "Other" rather than being rejected, so a
// batch is never lost to a misspelled diagnosis.
func CanonicalDiagnosis(raw string) string {
	if canonical, ok := DiagnosisLabels[raw]; ok {
		return canonical
	}
	return "Other"
}

// IsValidAnatomicSite reports whether s is one of the seven fixed sites.
func IsValidAnatomicSite(s string) bool {
	for _, site := range AnatomicSites {
		if site == s {
			return true
		}
	}
	return false
}
