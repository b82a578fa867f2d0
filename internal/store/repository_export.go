package store

import (
	"context"
	"fmt"

	"github.com/openderm/lesionsnap/internal/logger"
	"github.com/openderm/lesionsnap/models"
)

// exportRepository is the PostgreSQL-backed implementation of
// [ExportRepository]. It serves the flat per-image query built by
// [buildExportSelect] and returns it in a column-generic shape so the
// spreadsheet writer never needs to know the projection.
type exportRepository struct {
	*DB
	logger *logger.Logger
}

// NewExportRepository constructs an [ExportRepository] backed by the
// provided database connection and logger.
func NewExportRepository(db *DB, logger *logger.Logger) ExportRepository {
	return &exportRepository{
		DB:     db,
		logger: logger,
	}
}

// GetExportRows returns one row per image matching the filter conjunction,
// ordered by image id. The column list comes from the driver so it always
// matches the projection of the built query.
func (r *exportRepository) GetExportRows(ctx context.Context, filter models.ExportFilter) (models.ResultSet, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildExportSelect(filter)
	if err != nil {
		log.Err(err).
			Str("func", "exportRepository.GetExportRows").
			Msg("failed to build export query")
		return models.ResultSet{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "exportRepository.GetExportRows").
			Int("last_months", filter.LastMonths).
			Bool("exclude_phi", filter.ExcludePHI).
			Bool("good_quality_only", filter.GoodQualityOnly).
			Msg("failed to execute export query")
		return models.ResultSet{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return models.ResultSet{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	result := models.ResultSet{Columns: columns}

	for rows.Next() {
		values := make([]any, len(columns))
		pointers := make([]any, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}

		if scanErr := rows.Scan(pointers...); scanErr != nil {
			log.Err(scanErr).
				Str("func", "exportRepository.GetExportRows").
				Msg("failed to scan export row")
			return models.ResultSet{}, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		result.Rows = append(result.Rows, values)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "exportRepository.GetExportRows").
			Msg("error occurred during rows iteration")
		return models.ResultSet{}, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return result, nil
}
