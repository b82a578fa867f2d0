package store

import (
	"context"
	"fmt"

	"github.com/openderm/lesionsnap/internal/logger"
)

// annotationRepository is the PostgreSQL-backed implementation of
// [AnnotationRepository]. It updates the two per-image review flags; both
// updates are idempotent single-row writes.
type annotationRepository struct {
	*DB
	logger *logger.Logger
}

// NewAnnotationRepository constructs an [AnnotationRepository] backed by the
// provided database connection and logger.
func NewAnnotationRepository(db *DB, logger *logger.Logger) AnnotationRepository {
	return &annotationRepository{
		DB:     db,
		logger: logger,
	}
}

// SetImagePHI sets the contains_phi flag of a single image.
// Returns [ErrImageNotFound] when no row has the given id.
func (r *annotationRepository) SetImagePHI(ctx context.Context, imageID int64, containsPHI bool) error {
	return r.setFlag(ctx, updateImagePHI, "SetImagePHI", imageID, containsPHI)
}

// SetImageQuality sets the poor_quality flag of a single image.
// Returns [ErrImageNotFound] when no row has the given id.
func (r *annotationRepository) SetImageQuality(ctx context.Context, imageID int64, poorQuality bool) error {
	return r.setFlag(ctx, updateImageQuality, "SetImageQuality", imageID, poorQuality)
}

func (r *annotationRepository) setFlag(ctx context.Context, query, funcName string, imageID int64, value bool) error {
	log := logger.FromContext(ctx)

	result, err := r.DB.ExecContext(ctx, query, value, imageID)
	if err != nil {
		log.Err(err).
			Str("func", "annotationRepository."+funcName).
			Int64("image_id", imageID).
			Msg("failed to update image flag")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrImageNotFound
	}

	return nil
}
