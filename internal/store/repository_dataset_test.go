package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/openderm/lesionsnap/internal/logger"
	"github.com/openderm/lesionsnap/models"
)

var lesionRowColumns = []string{
	"patient_id", "age_range", "sex", "monk_skin_tone",
	"fitzpatrick_skin_type", "self_reported_race",
	"lesion_id", "anatomic_site", "vectra_id", "biopsied",
	"clinical_diagnosis",
	"filepaths", "image_ids", "image_poor_qualities",
	"image_contains_phi", "image_types",
	"captured_at", "device_type", "device_os",
}

func TestGetLesionRows_Success(t *testing.T) {
	wrapped, mock, db := newTestDB(t)
	defer db.Close()

	repo := NewDatasetRepository(wrapped, logger.Nop())
	now := time.Now()

	rows := sqlmock.NewRows(lesionRowColumns).
		AddRow(
			"a1b2", "40-44", "Female", nil, 3, nil,
			int64(12), "Head/Neck", nil, true, "Melanoma",
			"a.jpg, b.jpg", "1, 2", "false, true", "false, false",
			"close-up, polarized-contact",
			now, "mobile", "iOS 17",
		)

	mock.ExpectQuery("SELECT (.+) FROM images i").
		WithArgs("Melanoma").
		WillReturnRows(rows)

	result, err := repo.GetLesionRows(context.Background(), models.DatasetFilter{Diagnosis: "Melanoma", Limit: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result) != 1 {
		t.Fatalf("expected 1 row, got %d", len(result))
	}

	row := result[0]
	if row.LesionID != 12 {
		t.Errorf("expected lesion id 12, got %d", row.LesionID)
	}
	if row.FilePaths != "a.jpg, b.jpg" {
		t.Errorf("unexpected filepaths: %q", row.FilePaths)
	}
	if row.FitzpatrickSkinType == nil || *row.FitzpatrickSkinType != 3 {
		t.Errorf("unexpected fitzpatrick value: %v", row.FitzpatrickSkinType)
	}
	if row.MonkSkinTone != nil {
		t.Errorf("expected nil monk skin tone, got %v", *row.MonkSkinTone)
	}
}

func TestGetLesionRows_QueryError(t *testing.T) {
	wrapped, mock, db := newTestDB(t)
	defer db.Close()

	repo := NewDatasetRepository(wrapped, logger.Nop())

	mock.ExpectQuery("SELECT (.+) FROM images i").
		WillReturnError(errors.New("relation does not exist"))

	_, err := repo.GetLesionRows(context.Background(), models.DatasetFilter{})
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}

func TestGetLesionRows_Empty(t *testing.T) {
	wrapped, mock, db := newTestDB(t)
	defer db.Close()

	repo := NewDatasetRepository(wrapped, logger.Nop())

	mock.ExpectQuery("SELECT (.+) FROM images i").
		WillReturnRows(sqlmock.NewRows(lesionRowColumns))

	result, err := repo.GetLesionRows(context.Background(), models.DatasetFilter{Limit: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result) != 0 {
		t.Errorf("expected empty result, got %d rows", len(result))
	}
}

func TestCountImages(t *testing.T) {
	wrapped, mock, db := newTestDB(t)
	defer db.Close()

	repo := NewDatasetRepository(wrapped, logger.Nop())

	mock.ExpectQuery("SELECT COUNT").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(321))

	count, err := repo.CountImages(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 321 {
		t.Errorf("expected 321, got %d", count)
	}
}

func TestCountImages_Error(t *testing.T) {
	wrapped, mock, db := newTestDB(t)
	defer db.Close()

	repo := NewDatasetRepository(wrapped, logger.Nop())

	mock.ExpectQuery("SELECT COUNT").
		WillReturnError(errors.New("timeout"))

	_, err := repo.CountImages(context.Background())
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}
