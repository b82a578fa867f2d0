package store

import (
	"context"
	"fmt"

	"github.com/openderm/lesionsnap/internal/logger"
	"github.com/openderm/lesionsnap/models"
)

// datasetRepository is the PostgreSQL-backed implementation of
// [DatasetRepository]. It serves the aggregated dashboard query built by
// [buildLesionSelect].
type datasetRepository struct {
	*DB
	logger *logger.Logger
}

// NewDatasetRepository constructs a [DatasetRepository] backed by the
// provided database connection and logger.
func NewDatasetRepository(db *DB, logger *logger.Logger) DatasetRepository {
	return &datasetRepository{
		DB:     db,
		logger: logger,
	}
}

// GetLesionRows returns one aggregated row per lesion matching the filter,
// most recent lesion first. The per-image columns come back as ", "-joined
// lists; the service layer reshapes them into the dense slot matrix.
func (r *datasetRepository) GetLesionRows(ctx context.Context, filter models.DatasetFilter) ([]models.LesionRow, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildLesionSelect(filter)
	if err != nil {
		log.Err(err).
			Str("func", "datasetRepository.GetLesionRows").
			Msg("failed to build dashboard query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "datasetRepository.GetLesionRows").
			Str("anatomic_site", filter.AnatomicSite).
			Str("diagnosis", filter.Diagnosis).
			Msg("failed to execute dashboard query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.LesionRow, 0, filter.Limit)

	for rows.Next() {
		var row models.LesionRow

		scanErr := rows.Scan(
			&row.PatientID,
			&row.AgeRange,
			&row.Sex,
			&row.MonkSkinTone,
			&row.FitzpatrickSkinType,
			&row.SelfReportedRace,
			&row.LesionID,
			&row.AnatomicSite,
			&row.VectraID,
			&row.Biopsied,
			&row.ClinicalDiagnosis,
			&row.FilePaths,
			&row.ImageIDs,
			&row.PoorQualities,
			&row.ContainsPHIs,
			&row.ImageTypes,
			&row.CapturedAt,
			&row.DeviceType,
			&row.DeviceOS,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "datasetRepository.GetLesionRows").
				Msg("failed to scan dashboard row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		results = append(results, row)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "datasetRepository.GetLesionRows").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}

// CountImages returns the total number of stored image rows.
func (r *datasetRepository) CountImages(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	var count int64
	row := r.DB.QueryRowContext(ctx, countImages)
	if err := row.Scan(&count); err != nil {
		log.Err(err).
			Str("func", "datasetRepository.CountImages").
			Msg("failed to count images")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}
