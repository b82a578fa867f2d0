// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openderm/lesionsnap/internal/logger"
	"github.com/openderm/lesionsnap/internal/utils"
	"github.com/openderm/lesionsnap/models"
)

// ─────────────────────────────────────────────
// Mock: store.IntakeRepository
// ─────────────────────────────────────────────

type mockIntakeRepository struct {
	saveBatchFn func(ctx context.Context, patient models.PatientRecord, lesion models.LesionRecord, images []models.ImageRecord) (int64, error)
}

func (m *mockIntakeRepository) SaveBatch(ctx context.Context, patient models.PatientRecord, lesion models.LesionRecord, images []models.ImageRecord) (int64, error) {
	if m.saveBatchFn != nil {
		return m.saveBatchFn(ctx, patient, lesion, images)
	}
	return 1, nil
}

// ─────────────────────────────────────────────
// Mock: store.FileStore
// ─────────────────────────────────────────────

type mockFileStore struct {
	saveFn    func(filename string, data []byte) (string, error)
	resolveFn func(storedPath string) (string, error)
	removeFn  func(storedPath string) error
}

func (m *mockFileStore) Save(filename string, data []byte) (string, error) {
	if m.saveFn != nil {
		return m.saveFn(filename, data)
	}
	return filename, nil
}

func (m *mockFileStore) Resolve(storedPath string) (string, error) {
	if m.resolveFn != nil {
		return m.resolveFn(storedPath)
	}
	return storedPath, nil
}

func (m *mockFileStore) Remove(storedPath string) error {
	if m.removeFn != nil {
		return m.removeFn(storedPath)
	}
	return nil
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

var testMRNKey = []byte("unit-test-hash-key")

func newTestIntakeService(repo *mockIntakeRepository, files *mockFileStore) IntakeService {
	return NewIntakeService(repo, files, testMRNKey, logger.Nop())
}

func validUploadBatch() models.UploadBatch {
	return models.UploadBatch{
		IntakeForm: models.IntakeForm{
			PatientID:         "MRN-001234",
			AgeRange:          "40-44",
			Sex:               "Female",
			Fitzpatrick:       "III",
			Race:              "White",
			AnatomicSite:      "Upper Extremity",
			ClinicalDiagnosis: "SK",
			Biopsied:          true,
		},
		DeviceType: "mobile",
		DeviceOS:   "iOS 17.4",
		Images: []models.CapturedImage{
			{Filename: "seborrheic_keratosis_a.jpg", Data: []byte("jpeg-a")},
			{Filename: "seborrheic_keratosis_b.jpg", Data: []byte("jpeg-b")},
		},
		Metas: []models.ImageMeta{
			{Code: "close-up", CaptureTime: "2026-08-14T10:30:00Z", Filename: "seborrheic_keratosis_a.jpg"},
			{Code: "polarized-contact", CaptureTime: "2026-08-14T10:31:00Z", Filename: "seborrheic_keratosis_b.jpg"},
		},
	}
}

var errRepository = errors.New("repository error")

// ─────────────────────────────────────────────
// SaveUpload
// ─────────────────────────────────────────────

func TestIntakeService_SaveUpload_Success(t *testing.T) {
	batch := validUploadBatch()

	var gotPatient models.PatientRecord
	var gotLesion models.LesionRecord
	var gotImages []models.ImageRecord
	repo := &mockIntakeRepository{
		saveBatchFn: func(_ context.Context, patient models.PatientRecord, lesion models.LesionRecord, images []models.ImageRecord) (int64, error) {
			gotPatient, gotLesion, gotImages = patient, lesion, images
			return 42, nil
		},
	}
	svc := newTestIntakeService(repo, &mockFileStore{})

	lesionID, written, err := svc.SaveUpload(context.Background(), batch)

	require.NoError(t, err)
	assert.Equal(t, int64(42), lesionID)
	assert.Equal(t, 2, written)

	// the raw identifier must never reach the store
	assert.Equal(t, utils.HashString("MRN-001234", testMRNKey), gotPatient.PatientID)
	assert.NotEqual(t, "MRN-001234", gotPatient.PatientID)
	assert.Equal(t, gotPatient.PatientID, gotLesion.PatientID)

	require.NotNil(t, gotPatient.FitzpatrickSkinType)
	assert.Equal(t, 3, *gotPatient.FitzpatrickSkinType)
	require.NotNil(t, gotPatient.SelfReportedRace)
	assert.Equal(t, "White", *gotPatient.SelfReportedRace)

	// short display code expands to the canonical label
	assert.Equal(t, "Seborrheic keratosis", gotLesion.ClinicalDiagnosis)

	require.Len(t, gotImages, 2)
	assert.Equal(t, "close-up", gotImages[0].ImageType)
	assert.Equal(t, "polarized-contact", gotImages[1].ImageType)
	assert.Equal(t, "mobile", gotImages[0].DeviceType)
	assert.Equal(t, "iOS 17.4", gotImages[0].DeviceOS)
	assert.Equal(t, time.Date(2026, 8, 14, 10, 30, 0, 0, time.UTC), gotImages[0].CapturedAt)
}

func TestIntakeService_SaveUpload_OptionalFieldsBecomeNil(t *testing.T) {
	batch := validUploadBatch()
	batch.Fitzpatrick = ""
	batch.Race = ""

	var gotPatient models.PatientRecord
	repo := &mockIntakeRepository{
		saveBatchFn: func(_ context.Context, patient models.PatientRecord, _ models.LesionRecord, _ []models.ImageRecord) (int64, error) {
			gotPatient = patient
			return 1, nil
		},
	}
	svc := newTestIntakeService(repo, &mockFileStore{})

	_, _, err := svc.SaveUpload(context.Background(), batch)

	require.NoError(t, err)
	assert.Nil(t, gotPatient.FitzpatrickSkinType)
	assert.Nil(t, gotPatient.SelfReportedRace)
}

func TestIntakeService_SaveUpload_UnknownDiagnosisStoredAsOther(t *testing.T) {
	batch := validUploadBatch()
	batch.ClinicalDiagnosis = "Melanomaa"

	var gotLesion models.LesionRecord
	repo := &mockIntakeRepository{
		saveBatchFn: func(_ context.Context, _ models.PatientRecord, lesion models.LesionRecord, _ []models.ImageRecord) (int64, error) {
			gotLesion = lesion
			return 1, nil
		},
	}
	svc := newTestIntakeService(repo, &mockFileStore{})

	_, _, err := svc.SaveUpload(context.Background(), batch)

	require.NoError(t, err)
	assert.Equal(t, "Other", gotLesion.ClinicalDiagnosis)
}

func TestIntakeService_SaveUpload_ValidationRejected(t *testing.T) {
	batch := validUploadBatch()
	batch.PatientID = ""

	saved := false
	repo := &mockIntakeRepository{
		saveBatchFn: func(_ context.Context, _ models.PatientRecord, _ models.LesionRecord, _ []models.ImageRecord) (int64, error) {
			saved = true
			return 1, nil
		},
	}
	files := &mockFileStore{
		saveFn: func(filename string, _ []byte) (string, error) {
			t.Fatalf("no file must be written for a rejected batch, got %q", filename)
			return "", nil
		},
	}

	_, _, err := newTestIntakeService(repo, files).SaveUpload(context.Background(), batch)

	require.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.False(t, saved)
}

func TestIntakeService_SaveUpload_TransactionFailureRemovesWrittenFiles(t *testing.T) {
	batch := validUploadBatch()

	var removed []string
	files := &mockFileStore{
		removeFn: func(storedPath string) error {
			removed = append(removed, storedPath)
			return nil
		},
	}
	repo := &mockIntakeRepository{
		saveBatchFn: func(_ context.Context, _ models.PatientRecord, _ models.LesionRecord, _ []models.ImageRecord) (int64, error) {
			return 0, errRepository
		},
	}

	_, _, err := newTestIntakeService(repo, files).SaveUpload(context.Background(), batch)

	require.ErrorIs(t, err, errRepository)
	assert.Equal(t, []string{"seborrheic_keratosis_a.jpg", "seborrheic_keratosis_b.jpg"}, removed)
}

func TestIntakeService_SaveUpload_FileWriteFailureRemovesEarlierFiles(t *testing.T) {
	batch := validUploadBatch()

	var removed []string
	files := &mockFileStore{
		saveFn: func(filename string, _ []byte) (string, error) {
			if filename == batch.Metas[1].Filename {
				return "", fmt.Errorf("disk full")
			}
			return filename, nil
		},
		removeFn: func(storedPath string) error {
			removed = append(removed, storedPath)
			return nil
		},
	}
	repo := &mockIntakeRepository{
		saveBatchFn: func(_ context.Context, _ models.PatientRecord, _ models.LesionRecord, _ []models.ImageRecord) (int64, error) {
			t.Fatal("SaveBatch must not run when a file write fails")
			return 0, nil
		},
	}

	_, _, err := newTestIntakeService(repo, files).SaveUpload(context.Background(), batch)

	require.Error(t, err)
	assert.Equal(t, []string{"seborrheic_keratosis_a.jpg"}, removed)
}

func TestIntakeService_SaveUpload_BadCaptureTimeFallsBackToNow(t *testing.T) {
	batch := validUploadBatch()
	batch.Metas[0].CaptureTime = "not-a-timestamp"

	var gotImages []models.ImageRecord
	repo := &mockIntakeRepository{
		saveBatchFn: func(_ context.Context, _ models.PatientRecord, _ models.LesionRecord, images []models.ImageRecord) (int64, error) {
			gotImages = images
			return 1, nil
		},
	}

	before := time.Now().UTC()
	_, _, err := newTestIntakeService(repo, &mockFileStore{}).SaveUpload(context.Background(), batch)
	after := time.Now().UTC()

	require.NoError(t, err)
	require.Len(t, gotImages, 2)
	assert.False(t, gotImages[0].CapturedAt.Before(before))
	assert.False(t, gotImages[0].CapturedAt.After(after))
}
