package models

// Envelope is the uniform JSON response wrapper of every API endpoint.
// Error is set only when OK is false.
type Envelope struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// UploadResponse confirms a persisted upload batch.
type UploadResponse struct {
	OK            bool   `json:"ok"`
	UploadID      string `json:"uploadId"`
	ImagesWritten int    `json:"imagesWritten"`
}

// DatasetResponse carries the aggregated dashboard rows.
type DatasetResponse struct {
	OK   bool        `json:"ok"`
	Data []LesionRow `json:"data"`
}

// SizeResponse carries the total image count of the dataset.
type SizeResponse struct {
	OK   bool  `json:"ok"`
	Size int64 `json:"size"`
}

// QualityResponse mirrors the external scorer's answer for one image: the
// two confidence sections the capture client consumes, each in [0,1].
type QualityResponse struct {
	OK        bool              `json:"ok"`
	Sharpness ConfidenceSection `json:"Sharpness"`
	FocusArea ConfidenceSection `json:"Focus Area"`
}

// ConfidenceSection is one scored aspect of the quality report.
type ConfidenceSection struct {
	Confidence  float64 `json:"confidence"`
	Explanation string  `json:"explanation,omitempty"`
}
