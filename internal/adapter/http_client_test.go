// SPDX-License-Identifier: Apache-2.0

package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openderm/lesionsnap/internal/config"
	"github.com/openderm/lesionsnap/internal/logger"
	"github.com/openderm/lesionsnap/models"
)

func newTestAdapter(t *testing.T, serverURL string) ServerAdapter {
	t.Helper()

	a, err := NewHTTPServerAdapter(config.ClientAdapter{
		HTTPAddress:    serverURL,
		RequestTimeout: 5 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)
	return a
}

func testBatch() models.UploadBatch {
	monk := 4
	return models.UploadBatch{
		IntakeForm: models.IntakeForm{
			PatientID:         "MRN-001234",
			AgeRange:          "50-54",
			Sex:               "Male",
			MonkTone:          &monk,
			Fitzpatrick:       "II",
			AnatomicSite:      "Posterior Torso",
			ClinicalDiagnosis: "Nevus",
			Biopsied:          false,
		},
		DeviceType: "desktop",
		DeviceOS:   "linux",
		Images: []models.CapturedImage{
			{Filename: "melanocytic_nevus_a.jpg", MimeType: "image/jpeg", Data: []byte("frame-a")},
			{Filename: "melanocytic_nevus_b.jpg", MimeType: "image/jpeg", Data: []byte("frame-b")},
		},
		Metas: []models.ImageMeta{
			{Code: "close-up", CaptureTime: "2026-08-20T09:00:00Z", Filename: "melanocytic_nevus_a.jpg"},
			{Code: "non-polarized-cone", CaptureTime: "2026-08-20T09:01:00Z", Filename: "melanocytic_nevus_b.jpg"},
		},
	}
}

// ── NewHTTPServerAdapter ────────────────────────────────────────────────────

func TestNewHTTPServerAdapter_AddressValidation(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: ""}, logger.Nop())
	require.Error(t, err)

	_, err = NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: "localhost:8080"}, logger.Nop())
	require.NoError(t, err, "bare host:port must get an implicit http scheme")
}

// ── UploadBatch ─────────────────────────────────────────────────────────────

func TestUploadBatch_MultipartAlignment(t *testing.T) {
	batch := testBatch()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/upload", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(4<<20))

		assert.Equal(t, "MRN-001234", r.FormValue("patient_id"))
		assert.Equal(t, "50-54", r.FormValue("age"))
		assert.Equal(t, "Male", r.FormValue("sex"))
		assert.Equal(t, "4", r.FormValue("monk_skin_tone"))
		assert.Equal(t, "II", r.FormValue("fitzpatrick"))
		assert.Equal(t, "Posterior Torso", r.FormValue("anatomic_site"))
		assert.Equal(t, "Nevus", r.FormValue("clinical_diagnosis"))
		assert.Equal(t, "false", r.FormValue("biopsy"))
		assert.Equal(t, "desktop", r.FormValue("device_type"))
		assert.Equal(t, "linux", r.FormValue("os"))

		// optional empty fields stay off the wire
		_, raceSent := r.MultipartForm.Value["race"]
		assert.False(t, raceSent)
		_, lesionSent := r.MultipartForm.Value["lesion_id"]
		assert.False(t, lesionSent)

		var metas []models.ImageMeta
		require.NoError(t, json.Unmarshal([]byte(r.FormValue("metas")), &metas))
		require.Len(t, metas, 2)

		files := r.MultipartForm.File["images"]
		require.Len(t, files, 2)
		for i, fh := range files {
			assert.Equal(t, metas[i].Filename, fh.Filename)

			f, err := fh.Open()
			require.NoError(t, err)
			payload, err := io.ReadAll(f)
			require.NoError(t, err)
			_ = f.Close()
			assert.Equal(t, batch.Images[i].Data, payload)
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.UploadResponse{OK: true, UploadID: "u-1", ImagesWritten: 2})
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).UploadBatch(context.Background(), batch)

	require.NoError(t, err)
	assert.True(t, got.OK)
	assert.Equal(t, 2, got.ImagesWritten)
}

func TestUploadBatch_BadRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte("age is required"))
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).UploadBatch(context.Background(), testBatch())

	require.ErrorIs(t, err, ErrBadRequest)
	assert.Contains(t, err.Error(), "age is required")
}

func TestUploadBatch_InternalServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).UploadBatch(context.Background(), testBatch())

	require.ErrorIs(t, err, ErrInternalServerError)
}

// ── AssessQuality ───────────────────────────────────────────────────────────

func TestAssessQuality_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/quality", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))

		file, header, err := r.FormFile("image")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "frame.jpg", header.Filename)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true,"Sharpness":{"confidence":0.77},"Focus Area":{"confidence":0.95}}`))
	}))
	defer srv.Close()

	verdict, err := newTestAdapter(t, srv.URL).AssessQuality(context.Background(), []byte("frame"), "frame.jpg")

	require.NoError(t, err)
	assert.True(t, verdict.OK)
	assert.InDelta(t, 0.77, verdict.Sharpness.Confidence, 1e-9)
	assert.InDelta(t, 0.95, verdict.FocusArea.Confidence, 1e-9)
}

func TestAssessQuality_BadGateway(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).AssessQuality(context.Background(), []byte("frame"), "frame.jpg")

	require.ErrorIs(t, err, ErrBadGateway)
}

// ── ReportBug ───────────────────────────────────────────────────────────────

func TestReportBug_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/db/bug", r.URL.Path)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "zoom resets between steps", r.FormValue("message"))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	err := newTestAdapter(t, srv.URL).ReportBug(context.Background(), "zoom resets between steps")

	require.NoError(t, err)
}

func TestReportBug_BadRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte("message is required"))
	}))
	defer srv.Close()

	err := newTestAdapter(t, srv.URL).ReportBug(context.Background(), "")

	require.ErrorIs(t, err, ErrBadRequest)
}
