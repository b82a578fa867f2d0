// SPDX-License-Identifier: Apache-2.0

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openderm/lesionsnap/internal/service"
	"github.com/openderm/lesionsnap/internal/store"
	"github.com/openderm/lesionsnap/models"
)

// ─────────────────────────────────────────────
// dataset
// ─────────────────────────────────────────────

func TestDataset_DefaultFilter(t *testing.T) {
	var got models.DatasetFilter
	dataset := &mockDatasetService{
		getDatasetFn: func(_ context.Context, filter models.DatasetFilter) ([]models.LesionRow, error) {
			got = filter
			return []models.LesionRow{}, nil
		},
	}
	h := newTestHandler(t, &service.Services{DatasetService: dataset}, nil)

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/db", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.DatasetFilter{Limit: 10}, got)
}

func TestDataset_FilterParams(t *testing.T) {
	var got models.DatasetFilter
	dataset := &mockDatasetService{
		getDatasetFn: func(_ context.Context, filter models.DatasetFilter) ([]models.LesionRow, error) {
			got = filter
			return nil, nil
		},
	}
	h := newTestHandler(t, &service.Services{DatasetService: dataset}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/db?last=25&anatomicSite=Palms%2FSoles&diagnosis=SK", nil)
	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 25, got.Limit)
	assert.Equal(t, "Palms/Soles", got.AnatomicSite)
	// the display code arrives canonicalised
	assert.Equal(t, "Seborrheic keratosis", got.Diagnosis)
}

func TestDataset_UnknownDiagnosisAppliesNoFilter(t *testing.T) {
	var got models.DatasetFilter
	dataset := &mockDatasetService{
		getDatasetFn: func(_ context.Context, filter models.DatasetFilter) ([]models.LesionRow, error) {
			got = filter
			return nil, nil
		},
	}
	h := newTestHandler(t, &service.Services{DatasetService: dataset}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/db?diagnosis=NotARealCode", nil)
	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	// a code outside the display vocabulary must not collapse onto "Other"
	assert.Empty(t, got.Diagnosis)
}

func TestDataset_InvalidLastParam(t *testing.T) {
	h := newTestHandler(t, &service.Services{DatasetService: &mockDatasetService{
		getDatasetFn: func(context.Context, models.DatasetFilter) ([]models.LesionRow, error) {
			t.Fatal("service must not be called")
			return nil, nil
		},
	}}, nil)

	for _, last := range []string{"ten", "0", "-5"} {
		rec := httptest.NewRecorder()
		h.Init().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/db?last="+last, nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code, "last=%s", last)
	}
}

func TestDataset_ResponseBody(t *testing.T) {
	rows := []models.LesionRow{
		{
			LesionID:          3,
			AnatomicSite:      "Head/Neck",
			ClinicalDiagnosis: "Melanoma",
			Images: []models.ImageSlot{
				{ID: 11, ImageType: "close-up", File: "melanoma_a.jpg"},
			},
		},
	}
	dataset := &mockDatasetService{
		getDatasetFn: func(context.Context, models.DatasetFilter) ([]models.LesionRow, error) {
			return rows, nil
		},
	}
	h := newTestHandler(t, &service.Services{DatasetService: dataset}, nil)

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/db", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp models.DatasetResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.OK)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, int64(3), resp.Data[0].LesionID)
	require.Len(t, resp.Data[0].Images, 1)
	assert.Equal(t, "close-up", resp.Data[0].Images[0].ImageType)
}

func TestDataset_QueryError(t *testing.T) {
	dataset := &mockDatasetService{
		getDatasetFn: func(context.Context, models.DatasetFilter) ([]models.LesionRow, error) {
			return nil, store.ErrExecutingQuery
		},
	}
	h := newTestHandler(t, &service.Services{DatasetService: dataset}, nil)

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/db", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

// ─────────────────────────────────────────────
// dataset size
// ─────────────────────────────────────────────

func TestDatasetSize_Success(t *testing.T) {
	dataset := &mockDatasetService{
		getDatasetSizeFn: func(context.Context) (int64, error) {
			return 314, nil
		},
	}
	h := newTestHandler(t, &service.Services{DatasetService: dataset}, nil)

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/db/size", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.SizeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.OK)
	assert.Equal(t, int64(314), resp.Size)
}

func TestDatasetSize_QueryError(t *testing.T) {
	dataset := &mockDatasetService{
		getDatasetSizeFn: func(context.Context) (int64, error) {
			return 0, store.ErrScanningRow
		},
	}
	h := newTestHandler(t, &service.Services{DatasetService: dataset}, nil)

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/db/size", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
