// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/openderm/lesionsnap/internal/logger"
	"github.com/openderm/lesionsnap/internal/store"
	"github.com/openderm/lesionsnap/internal/utils"
	"github.com/openderm/lesionsnap/internal/validators"
	"github.com/openderm/lesionsnap/models"
)

// intakeService validates, normalizes, and persists upload batches.
//
// Files are written to the image store before the database transaction; when
// the transaction fails every file written for the batch is removed again,
// so a failed upload leaves no orphans behind.
type intakeService struct {
	intakeRepository store.IntakeRepository
	files            store.FileStore
	validator        validators.Validator

	logger *logger.Logger
}

// NewIntakeService seeds the hasher pool with the HMAC key used to hash the
// externally supplied patient identifier. The raw identifier never leaves
// this service.
func NewIntakeService(intakeRepository store.IntakeRepository, files store.FileStore, mrnKey []byte, logger *logger.Logger) IntakeService {
	utils.InitHasherPool(mrnKey)

	return &intakeService{
		intakeRepository: intakeRepository,
		files:            files,
		validator:        validators.NewIntakeValidator(),
		logger:           logger,
	}
}

// SaveUpload persists one complete upload batch and returns the assigned
// lesion id and the number of image files written.
func (s *intakeService) SaveUpload(ctx context.Context, batch models.UploadBatch) (int64, int, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, batch); err != nil {
		return 0, 0, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	patient := s.buildPatient(batch)
	lesion := models.LesionRecord{
		PatientID:         patient.PatientID,
		AnatomicSite:      batch.AnatomicSite,
		VectraID:          batch.LesionID,
		Biopsied:          batch.Biopsied,
		ClinicalDiagnosis: models.CanonicalDiagnosis(batch.ClinicalDiagnosis),
	}

	// write files first, clean them up if the transaction fails
	images, written, err := s.writeImages(batch)
	if err != nil {
		s.removeFiles(ctx, written)
		return 0, 0, err
	}

	lesionID, err := s.intakeRepository.SaveBatch(ctx, patient, lesion, images)
	if err != nil {
		log.Err(err).
			Str("func", "intakeService.SaveUpload").
			Int("images", len(images)).
			Msg("upload transaction failed, removing written files")
		s.removeFiles(ctx, written)
		return 0, 0, err
	}

	return lesionID, len(written), nil
}

// buildPatient maps the raw form values to a storable patient record: the
// identifier is replaced by its keyed hash, the roman fitzpatrick literal
// becomes its numeric ordinal, and empty optional fields become NULLs.
func (s *intakeService) buildPatient(batch models.UploadBatch) models.PatientRecord {
	patient := models.PatientRecord{
		PatientID:    hex.EncodeToString(utils.Hash([]byte(batch.PatientID))),
		AgeRange:     batch.AgeRange,
		Sex:          batch.Sex,
		MonkSkinTone: batch.MonkTone,
	}

	if ordinal, ok := models.FitzpatrickScale[batch.Fitzpatrick]; ok {
		patient.FitzpatrickSkinType = &ordinal
	}

	if batch.Race != "" {
		race := batch.Race
		patient.SelfReportedRace = &race
	}

	return patient
}

// writeImages stores every binary part and returns the image rows to insert
// plus the stored paths for compensating cleanup. On error the caller
// receives every path written so far.
func (s *intakeService) writeImages(batch models.UploadBatch) ([]models.ImageRecord, []string, error) {
	images := make([]models.ImageRecord, 0, len(batch.Images))
	written := make([]string, 0, len(batch.Images))

	for i, img := range batch.Images {
		meta := batch.Metas[i]

		stored, err := s.files.Save(meta.Filename, img.Data)
		if err != nil {
			return nil, written, fmt.Errorf("error writing image %q: %w", meta.Filename, err)
		}
		written = append(written, stored)

		capturedAt, parseErr := time.Parse(time.RFC3339, meta.CaptureTime)
		if parseErr != nil {
			capturedAt = time.Now().UTC()
		}

		images = append(images, models.ImageRecord{
			FilePath:   stored,
			CapturedAt: capturedAt,
			DeviceType: batch.DeviceType,
			DeviceOS:   batch.DeviceOS,
			ImageType:  meta.Code,
		})
	}

	return images, written, nil
}

func (s *intakeService) removeFiles(ctx context.Context, paths []string) {
	log := logger.FromContext(ctx)

	for _, path := range paths {
		if err := s.files.Remove(path); err != nil {
			log.Err(err).
				Str("func", "intakeService.removeFiles").
				Str("path", path).
				Msg("failed to remove image file during cleanup")
		}
	}
}
