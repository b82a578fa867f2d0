package models

// QualityScores holds the two confidence values returned by the external
// image-quality scorer, each in [0,1].
type QualityScores struct {
	Sharpness float64 `json:"sharpness"`
	Focus     float64 `json:"focus"`
}

// QualityAssessment is the result-or-fallback value produced for every
// captured image. When the scorer cannot be reached (failure, malformed
// response, or deadline) the assessment carries the fixed fallback
// description, score 0, and Fallback=true — the capture flow never sees an
// error from quality assessment.
type QualityAssessment struct {
	Description string `json:"description"`
	Score       int    `json:"score"`
	Fallback    bool   `json:"fallback"`
}

// FallbackAssessment is the assessment used whenever the scorer call fails
// for any reason.
var FallbackAssessment = QualityAssessment{
	Description: "Quality assessment failed",
	Score:       0,
	Fallback:    true,
}
