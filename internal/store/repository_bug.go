package store

import (
	"context"
	"fmt"
	"time"

	"github.com/openderm/lesionsnap/internal/logger"
	"github.com/openderm/lesionsnap/models"
)

// bugReportRepository is the PostgreSQL-backed implementation of
// [BugReportRepository]. The bug_reports table is append-only.
type bugReportRepository struct {
	*DB
	logger *logger.Logger
}

// NewBugReportRepository constructs a [BugReportRepository] backed by the
// provided database connection and logger.
func NewBugReportRepository(db *DB, logger *logger.Logger) BugReportRepository {
	return &bugReportRepository{
		DB:     db,
		logger: logger,
	}
}

// SaveBugReport appends one feedback message.
func (r *bugReportRepository) SaveBugReport(ctx context.Context, message string) error {
	log := logger.FromContext(ctx)

	result, err := r.DB.ExecContext(ctx, insertBugReport, message)
	if err != nil {
		log.Err(err).
			Str("func", "bugReportRepository.SaveBugReport").
			Msg("failed to insert bug report")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrBugReportNotSaved
	}

	return nil
}

// GetBugReports returns the whole feedback log as a generic result set,
// oldest first.
func (r *bugReportRepository) GetBugReports(ctx context.Context) (models.ResultSet, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, getBugReports)
	if err != nil {
		log.Err(err).
			Str("func", "bugReportRepository.GetBugReports").
			Msg("failed to query bug reports")
		return models.ResultSet{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	result := models.ResultSet{
		Columns: []string{"id", "message", "created_at"},
	}

	for rows.Next() {
		var (
			id        int64
			message   string
			createdAt time.Time
		)
		if scanErr := rows.Scan(&id, &message, &createdAt); scanErr != nil {
			log.Err(scanErr).
				Str("func", "bugReportRepository.GetBugReports").
				Msg("failed to scan bug report row")
			return models.ResultSet{}, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		result.Rows = append(result.Rows, []any{id, message, createdAt})
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "bugReportRepository.GetBugReports").
			Msg("error occurred during rows iteration")
		return models.ResultSet{}, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return result, nil
}
