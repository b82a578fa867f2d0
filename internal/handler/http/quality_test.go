// SPDX-License-Identifier: Apache-2.0

package http

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openderm/lesionsnap/internal/service"
	"github.com/openderm/lesionsnap/models"
)

func buildQualityRequest(t *testing.T, filename string, frame []byte) *http.Request {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("image", filename)
	require.NoError(t, err)
	_, err = part.Write(frame)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/quality", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestAssessQuality_Success(t *testing.T) {
	var gotFrame []byte
	var gotFilename string
	quality := &mockQualityService{
		assessFn: func(_ context.Context, image []byte, filename string) (models.QualityResponse, error) {
			gotFrame, gotFilename = image, filename
			return models.QualityResponse{
				Sharpness: models.ConfidenceSection{Confidence: 0.91},
				FocusArea: models.ConfidenceSection{Confidence: 0.88},
			}, nil
		},
	}
	h := newTestHandler(t, &service.Services{QualityService: quality}, nil)

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, buildQualityRequest(t, "capture.png", []byte("frame-bytes")))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []byte("frame-bytes"), gotFrame)
	assert.Equal(t, "capture.png", gotFilename)

	var resp models.QualityResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.OK)
	assert.InDelta(t, 0.91, resp.Sharpness.Confidence, 1e-9)
	assert.InDelta(t, 0.88, resp.FocusArea.Confidence, 1e-9)
}

func TestAssessQuality_MissingImagePart(t *testing.T) {
	h := newTestHandler(t, &service.Services{QualityService: &mockQualityService{}}, nil)

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	require.NoError(t, writer.WriteField("note", "no image here"))
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/quality", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAssessQuality_NotMultipart(t *testing.T) {
	h := newTestHandler(t, &service.Services{QualityService: &mockQualityService{}}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/quality", strings.NewReader("raw-bytes"))
	req.Header.Set("Content-Type", "application/octet-stream")
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
}

func TestAssessQuality_ScorerUnavailableMapsTo502(t *testing.T) {
	quality := &mockQualityService{
		assessFn: func(context.Context, []byte, string) (models.QualityResponse, error) {
			return models.QualityResponse{}, service.ErrScorerUnavailable
		},
	}
	h := newTestHandler(t, &service.Services{QualityService: quality}, nil)

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, buildQualityRequest(t, "capture.png", []byte("frame")))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}
