package store

import (
	"github.com/openderm/lesionsnap/internal/logger"
)

// Repositories groups every server-side repository into a single value that
// can be passed to the service layer.
type Repositories struct {
	IntakeRepository     IntakeRepository
	DatasetRepository    DatasetRepository
	AnnotationRepository AnnotationRepository
	BugReportRepository  BugReportRepository
	ExportRepository     ExportRepository
}

// NewRepositories wires every repository to the shared database connection.
func NewRepositories(db *DB, logger *logger.Logger) *Repositories {
	return &Repositories{
		IntakeRepository:     NewIntakeRepository(db, logger),
		DatasetRepository:    NewDatasetRepository(db, logger),
		AnnotationRepository: NewAnnotationRepository(db, logger),
		BugReportRepository:  NewBugReportRepository(db, logger),
		ExportRepository:     NewExportRepository(db, logger),
	}
}
