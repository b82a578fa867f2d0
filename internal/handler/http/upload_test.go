// SPDX-License-Identifier: Apache-2.0

package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openderm/lesionsnap/internal/service"
	"github.com/openderm/lesionsnap/models"
)

// buildUploadRequest assembles a multipart upload: scalar fields, a "metas"
// JSON field, and one binary "images" part per payload.
func buildUploadRequest(t *testing.T, fields map[string]string, metas []models.ImageMeta, payloads [][]byte) *http.Request {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	for name, value := range fields {
		require.NoError(t, writer.WriteField(name, value))
	}

	metasJSON, err := json.Marshal(metas)
	require.NoError(t, err)
	require.NoError(t, writer.WriteField("metas", string(metasJSON)))

	for i, payload := range payloads {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition", `form-data; name="images"; filename="`+metas[i].Filename+`"`)
		header.Set("Content-Type", "image/jpeg")
		part, partErr := writer.CreatePart(header)
		require.NoError(t, partErr)
		_, partErr = part.Write(payload)
		require.NoError(t, partErr)
	}

	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func validUploadFields() map[string]string {
	return map[string]string{
		"patient_id":         "MRN-0042",
		"age":                "40-49",
		"sex":                "Female",
		"anatomic_site":      "Upper Extremity",
		"monk_skin_tone":     "4",
		"fitzpatrick":        "III",
		"race":               "White",
		"clinical_diagnosis": "Melanoma",
		"biopsy":             "true",
		"lesion_id":          "12",
		"device_type":        "desktop",
		"os":                 "macOS",
	}
}

func validUploadMetas() []models.ImageMeta {
	return []models.ImageMeta{
		{Code: "close-up", CaptureTime: "2026-08-20T09:00:00Z", Filename: "melanoma_a.jpg"},
		{Code: "overview", CaptureTime: "2026-08-20T09:01:00Z", Filename: "melanoma_b.jpg"},
	}
}

// ─────────────────────────────────────────────
// upload
// ─────────────────────────────────────────────

func TestUpload_Success(t *testing.T) {
	var got models.UploadBatch
	intake := &mockIntakeService{
		saveUploadFn: func(_ context.Context, batch models.UploadBatch) (int64, int, error) {
			got = batch
			return 7, 2, nil
		},
	}
	h := newTestHandler(t, &service.Services{IntakeService: intake}, nil)

	req := buildUploadRequest(t, validUploadFields(), validUploadMetas(), [][]byte{[]byte("img-a"), []byte("img-b")})
	rec := httptest.NewRecorder()

	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.UploadResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.OK)
	assert.Equal(t, "7", resp.UploadID)
	assert.Equal(t, 2, resp.ImagesWritten)

	// the batch must arrive with every wire field mapped
	assert.Equal(t, "MRN-0042", got.PatientID)
	assert.Equal(t, "40-49", got.AgeRange)
	assert.Equal(t, "Female", got.Sex)
	assert.Equal(t, "Upper Extremity", got.AnatomicSite)
	require.NotNil(t, got.MonkTone)
	assert.Equal(t, 4, *got.MonkTone)
	assert.Equal(t, "III", got.Fitzpatrick)
	assert.Equal(t, "White", got.Race)
	assert.Equal(t, "Melanoma", got.ClinicalDiagnosis)
	assert.True(t, got.Biopsied)
	require.NotNil(t, got.LesionID)
	assert.Equal(t, int64(12), *got.LesionID)
	assert.Equal(t, "desktop", got.DeviceType)
	assert.Equal(t, "macOS", got.DeviceOS)

	require.Len(t, got.Images, 2)
	assert.Equal(t, "melanoma_a.jpg", got.Images[0].Filename)
	assert.Equal(t, "image/jpeg", got.Images[0].MimeType)
	assert.Equal(t, []byte("img-a"), got.Images[0].Data)
	assert.Equal(t, []byte("img-b"), got.Images[1].Data)
	require.Len(t, got.Metas, 2)
	assert.Equal(t, "close-up", got.Metas[0].Code)
}

func TestUpload_OptionalFieldsAbsent(t *testing.T) {
	var got models.UploadBatch
	intake := &mockIntakeService{
		saveUploadFn: func(_ context.Context, batch models.UploadBatch) (int64, int, error) {
			got = batch
			return 1, 1, nil
		},
	}
	h := newTestHandler(t, &service.Services{IntakeService: intake}, nil)

	fields := validUploadFields()
	delete(fields, "monk_skin_tone")
	delete(fields, "lesion_id")
	delete(fields, "race")

	metas := validUploadMetas()[:1]
	req := buildUploadRequest(t, fields, metas, [][]byte{[]byte("img")})
	rec := httptest.NewRecorder()

	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, got.MonkTone)
	assert.Nil(t, got.LesionID)
	assert.Empty(t, got.Race)
}

func TestUpload_MetasMisaligned(t *testing.T) {
	h := newTestHandler(t, &service.Services{IntakeService: &mockIntakeService{
		saveUploadFn: func(context.Context, models.UploadBatch) (int64, int, error) {
			t.Fatal("service must not be called")
			return 0, 0, nil
		},
	}}, nil)

	// two metas, one file part
	req := buildUploadRequest(t, validUploadFields(), validUploadMetas(), [][]byte{[]byte("img-a"), []byte("img-b")}[:1])
	rec := httptest.NewRecorder()

	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpload_NotMultipart(t *testing.T) {
	h := newTestHandler(t, &service.Services{IntakeService: &mockIntakeService{}}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/upload", strings.NewReader(`{"patient_id":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
}

func TestUpload_ValidationErrorMapsTo400(t *testing.T) {
	intake := &mockIntakeService{
		saveUploadFn: func(context.Context, models.UploadBatch) (int64, int, error) {
			return 0, 0, service.ErrInvalidDataProvided
		},
	}
	h := newTestHandler(t, &service.Services{IntakeService: intake}, nil)

	req := buildUploadRequest(t, validUploadFields(), validUploadMetas(), [][]byte{[]byte("a"), []byte("b")})
	rec := httptest.NewRecorder()

	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var envelope models.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.False(t, envelope.OK)
	assert.NotEmpty(t, envelope.Error)
}

func TestUpload_RepositoryErrorMapsTo500(t *testing.T) {
	intake := &mockIntakeService{
		saveUploadFn: func(context.Context, models.UploadBatch) (int64, int, error) {
			return 0, 0, errors.New("connection reset")
		},
	}
	h := newTestHandler(t, &service.Services{IntakeService: intake}, nil)

	req := buildUploadRequest(t, validUploadFields(), validUploadMetas(), [][]byte{[]byte("a"), []byte("b")})
	rec := httptest.NewRecorder()

	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
