package models

// PatientRecord is one row of the patients table. The PatientID column never
// holds the raw externally supplied identifier: it is an HMAC-SHA256 digest
// computed by the intake service before the record reaches the store.
//
// Demographic fields follow last-write-wins upsert semantics keyed by
// PatientID — a resubmission under the same identifier overwrites the
// previous values without history.
type PatientRecord struct {
	// PatientID is the hex-encoded keyed hash of the external identifier.
	PatientID string `json:"patient_id"`

	// AgeRange is one of the fixed age brackets in AgeRanges.
	AgeRange string `json:"age_range"`

	Sex string `json:"sex"`

	// MonkSkinTone is an ordinal 1–10 scale; nil when not reported.
	MonkSkinTone *int `json:"monk_skin_tone"`

	// FitzpatrickSkinType is an ordinal 1–6 scale stored numerically;
	// the intake form collects it as the roman literals I–VI. Nil when
	// not reported.
	FitzpatrickSkinType *int `json:"fitzpatrick_skin_type"`

	SelfReportedRace *string `json:"self_reported_race"`
}

// AgeRanges is the fixed vocabulary of 20 five-year age brackets accepted by
// the intake form.
var AgeRanges = []string{
	"0-4", "5-9", "10-14", "15-19", "20-24", "25-29", "30-34", "35-39",
	"40-44", "45-49", "50-54", "55-59", "60-64", "65-69", "70-74", "75-79",
	"80-84", "85-89", "90-94", "95-99",
}

// Sexes is the accepted vocabulary for the sex field.
var Sexes = []string{"Male", "Female", "Intersex", "Unknown"}

// FitzpatrickScale maps the roman-literal form collected by the intake form
// to the stored numeric ordinal.
var FitzpatrickScale = map[string]int{
	"I": 1, "II": 2, "III": 3, "IV": 4, "V": 5, "VI": 6,
}

// IsValidAgeRange reports whether s is one of the fixed age brackets.
func IsValidAgeRange(s string) bool {
	for _, r := range AgeRanges {
		if r == s {
			return true
		}
	}
	return false
}
