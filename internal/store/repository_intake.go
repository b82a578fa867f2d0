package store

import (
	"context"
	"fmt"

	"github.com/openderm/lesionsnap/internal/logger"
	"github.com/openderm/lesionsnap/models"
)

// intakeRepository is the PostgreSQL-backed implementation of
// [IntakeRepository]. Every upload batch is persisted in one transaction:
// patient upsert, lesion insert, image inserts — all or nothing.
type intakeRepository struct {
	*DB
	logger *logger.Logger
}

// NewIntakeRepository constructs an [IntakeRepository] backed by the
// provided database connection and logger.
func NewIntakeRepository(db *DB, logger *logger.Logger) IntakeRepository {
	return &intakeRepository{
		DB:     db,
		logger: logger,
	}
}

// SaveBatch persists one upload batch atomically and returns the assigned
// lesion id.
//
// The patient row follows last-write-wins semantics: a resubmission under
// the same hashed identifier overwrites the stored demographics. The lesion
// and image rows are append-only.
func (r *intakeRepository) SaveBatch(ctx context.Context, patient models.PatientRecord, lesion models.LesionRecord, images []models.ImageRecord) (int64, error) {
	log := logger.FromContext(ctx)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "intakeRepository.SaveBatch").
			Msg("failed to begin upload transaction")
		return 0, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	// upsert patient
	if _, err = tx.ExecContext(ctx, upsertPatient,
		patient.PatientID,
		patient.AgeRange,
		patient.Sex,
		patient.MonkSkinTone,
		patient.FitzpatrickSkinType,
		patient.SelfReportedRace,
	); err != nil {
		log.Err(err).
			Str("func", "intakeRepository.SaveBatch").
			Msg("failed to upsert patient")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	// insert lesion and read back its assigned id
	var lesionID int64
	row := tx.QueryRowContext(ctx, insertLesion,
		patient.PatientID,
		lesion.AnatomicSite,
		lesion.VectraID,
		lesion.Biopsied,
		lesion.ClinicalDiagnosis,
	)
	if err = row.Scan(&lesionID); err != nil {
		log.Err(err).
			Str("func", "intakeRepository.SaveBatch").
			Msg("failed to insert lesion")
		return 0, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	// insert every image row
	for _, image := range images {
		result, execErr := tx.ExecContext(ctx, insertImage,
			lesionID,
			image.FilePath,
			image.CapturedAt,
			image.DeviceType,
			image.DeviceOS,
			image.ImageType,
		)
		if execErr != nil {
			log.Err(execErr).
				Str("func", "intakeRepository.SaveBatch").
				Str("image_type", image.ImageType).
				Msg("failed to insert image")
			return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
		}

		affected, affErr := result.RowsAffected()
		if affErr != nil {
			return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, affErr)
		}
		if affected == 0 {
			return 0, ErrBatchNotSaved
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).
			Str("func", "intakeRepository.SaveBatch").
			Int64("lesion_id", lesionID).
			Msg("failed to commit upload transaction")
		return 0, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return lesionID, nil
}
