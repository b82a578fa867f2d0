package store

import (
	"context"

	"github.com/openderm/lesionsnap/models"
)

// IntakeRepository persists one upload batch atomically.
type IntakeRepository interface {
	// SaveBatch upserts the patient, inserts the lesion, and inserts every
	// image row in a single transaction. Returns the assigned lesion id.
	SaveBatch(ctx context.Context, patient models.PatientRecord, lesion models.LesionRecord, images []models.ImageRecord) (int64, error)
}

// DatasetRepository serves the dashboard read queries.
type DatasetRepository interface {
	GetLesionRows(ctx context.Context, filter models.DatasetFilter) ([]models.LesionRow, error)
	CountImages(ctx context.Context) (int64, error)
}

// AnnotationRepository mutates the two per-image review flags.
type AnnotationRepository interface {
	SetImagePHI(ctx context.Context, imageID int64, containsPHI bool) error
	SetImageQuality(ctx context.Context, imageID int64, poorQuality bool) error
}

// BugReportRepository is the append-only feedback log.
type BugReportRepository interface {
	SaveBugReport(ctx context.Context, message string) error
	GetBugReports(ctx context.Context) (models.ResultSet, error)
}

// ExportRepository serves the bulk export read query.
type ExportRepository interface {
	GetExportRows(ctx context.Context, filter models.ExportFilter) (models.ResultSet, error)
}

// FileStore persists captured image payloads outside the database and
// resolves stored relative paths back to absolute ones.
type FileStore interface {
	// Save writes data under the base directory and returns the stored
	// relative path.
	Save(filename string, data []byte) (string, error)

	// Resolve maps a stored path to an absolute one inside the base
	// directory. Returns [ErrPathOutsideImageDir] when the resolved path
	// escapes it.
	Resolve(storedPath string) (string, error)

	// Remove deletes a previously saved file. Missing files are not an
	// error.
	Remove(storedPath string) error
}
