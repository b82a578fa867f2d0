package service

import (
	"context"

	"github.com/openderm/lesionsnap/models"
)

// IntakeService persists a complete upload batch: image files on disk plus
// the patient/lesion/image rows in one transaction.
type IntakeService interface {
	// SaveUpload returns the assigned lesion id and the number of image
	// files written.
	SaveUpload(ctx context.Context, batch models.UploadBatch) (int64, int, error)
}

// DatasetService serves the dashboard views.
type DatasetService interface {
	// GetDataset returns the filtered lesion rows with the dense per-step
	// image matrix attached to every row.
	GetDataset(ctx context.Context, filter models.DatasetFilter) ([]models.LesionRow, error)

	// GetDatasetSize returns the total number of stored images.
	GetDatasetSize(ctx context.Context) (int64, error)
}

// AnnotationService applies the two manual review flags. Both methods take
// the raw form literals and reject anything but a positive integer id and a
// strict "true"/"false" value.
type AnnotationService interface {
	SetPHI(ctx context.Context, imageID, value string) error
	SetQuality(ctx context.Context, imageID, value string) error
}

// BugService is the append-only feedback log.
type BugService interface {
	Report(ctx context.Context, message string) error
}

// ExportService builds the complete downloadable research bundle.
type ExportService interface {
	BuildArchive(ctx context.Context, req models.ExportRequest) (models.ExportArchive, error)
}

// QualityService proxies a single frame to the external image-quality
// scorer.
type QualityService interface {
	// Assess returns the scorer's verdict unchanged. Scorer failure or
	// deadline expiry surfaces as an error; the caller decides the
	// fallback.
	Assess(ctx context.Context, image []byte, filename string) (models.QualityResponse, error)
}
