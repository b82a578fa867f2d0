// SPDX-License-Identifier: Apache-2.0

package http

import (
	"context"
	"testing"

	"github.com/openderm/lesionsnap/internal/logger"
	"github.com/openderm/lesionsnap/internal/service"
	"github.com/openderm/lesionsnap/internal/store"
	"github.com/openderm/lesionsnap/models"
)

// ─────────────────────────────────────────────
// Mock services
// ─────────────────────────────────────────────

// Each mock implements one service interface with per-test overridable
// function fields.

type mockIntakeService struct {
	saveUploadFn func(ctx context.Context, batch models.UploadBatch) (int64, int, error)
}

func (m *mockIntakeService) SaveUpload(ctx context.Context, batch models.UploadBatch) (int64, int, error) {
	return m.saveUploadFn(ctx, batch)
}

type mockDatasetService struct {
	getDatasetFn     func(ctx context.Context, filter models.DatasetFilter) ([]models.LesionRow, error)
	getDatasetSizeFn func(ctx context.Context) (int64, error)
}

func (m *mockDatasetService) GetDataset(ctx context.Context, filter models.DatasetFilter) ([]models.LesionRow, error) {
	return m.getDatasetFn(ctx, filter)
}

func (m *mockDatasetService) GetDatasetSize(ctx context.Context) (int64, error) {
	return m.getDatasetSizeFn(ctx)
}

type mockAnnotationService struct {
	setPHIFn     func(ctx context.Context, imageID, value string) error
	setQualityFn func(ctx context.Context, imageID, value string) error
}

func (m *mockAnnotationService) SetPHI(ctx context.Context, imageID, value string) error {
	return m.setPHIFn(ctx, imageID, value)
}

func (m *mockAnnotationService) SetQuality(ctx context.Context, imageID, value string) error {
	return m.setQualityFn(ctx, imageID, value)
}

type mockBugService struct {
	reportFn func(ctx context.Context, message string) error
}

func (m *mockBugService) Report(ctx context.Context, message string) error {
	return m.reportFn(ctx, message)
}

type mockExportService struct {
	buildArchiveFn func(ctx context.Context, req models.ExportRequest) (models.ExportArchive, error)
}

func (m *mockExportService) BuildArchive(ctx context.Context, req models.ExportRequest) (models.ExportArchive, error) {
	return m.buildArchiveFn(ctx, req)
}

type mockQualityService struct {
	assessFn func(ctx context.Context, image []byte, filename string) (models.QualityResponse, error)
}

func (m *mockQualityService) Assess(ctx context.Context, image []byte, filename string) (models.QualityResponse, error) {
	return m.assessFn(ctx, image, filename)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestHandler builds a Handler over the given services. A nil file store
// is fine for every endpoint except image serving.
func newTestHandler(t *testing.T, services *service.Services, files store.FileStore) *Handler {
	t.Helper()
	return NewHandler(services, files, logger.Nop())
}
