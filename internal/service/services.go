package service

import (
	"fmt"

	"github.com/openderm/lesionsnap/internal/config"
	"github.com/openderm/lesionsnap/internal/logger"
	"github.com/openderm/lesionsnap/internal/store"
	"github.com/openderm/lesionsnap/internal/utils"
)

type Services struct {
	IntakeService     IntakeService
	DatasetService    DatasetService
	AnnotationService AnnotationService
	BugService        BugService
	ExportService     ExportService
	QualityService    QualityService
}

// NewServices wires the full server service layer. The patient identifier
// hash key is loaded once at startup; a missing key file is a fatal
// configuration error.
func NewServices(repos *store.Repositories, files store.FileStore, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	mrnKey, err := utils.LoadKeyFile(cfg.App.MRNKeyPath)
	if err != nil {
		return nil, fmt.Errorf("error loading patient identifier hash key: %w", err)
	}

	return &Services{
		IntakeService:     NewIntakeService(repos.IntakeRepository, files, mrnKey, logger),
		DatasetService:    NewDatasetService(repos.DatasetRepository, logger),
		AnnotationService: NewAnnotationService(repos.AnnotationRepository, logger),
		BugService:        NewBugService(repos.BugReportRepository, logger),
		ExportService:     NewExportService(repos.ExportRepository, repos.BugReportRepository, files, logger),
		QualityService:    NewQualityService(cfg.Quality, logger),
	}, nil
}
