// SPDX-License-Identifier: Apache-2.0

package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/openderm/lesionsnap/internal/config"
	"github.com/openderm/lesionsnap/internal/logger"
	"github.com/openderm/lesionsnap/models"
)

const defaultRequestTimeout = 15 * time.Second

type httpServerAdapter struct {
	client *resty.Client

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying client with the
// resolved base URL and request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as
// a valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	timeout := adapterCfg.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// UploadBatch submits the batch as one multipart request. The metas array is
// serialised into a single JSON field; every image becomes an "images" file
// part in the same order, so metas[i] describes part i.
func (h *httpServerAdapter) UploadBatch(ctx context.Context, batch models.UploadBatch) (models.UploadResponse, error) {
	metas, err := json.Marshal(batch.Metas)
	if err != nil {
		return models.UploadResponse{}, fmt.Errorf("encode image metas: %w", err)
	}

	req := h.client.R().
		SetContext(ctx).
		SetMultipartFormData(uploadFormFields(batch)).
		SetMultipartField("metas", "", "application/json", bytes.NewReader(metas))

	for _, img := range batch.Images {
		mime := img.MimeType
		if mime == "" {
			mime = "application/octet-stream"
		}
		req.SetMultipartField("images", img.Filename, mime, bytes.NewReader(img.Data))
	}

	resp, err := req.Post("/api/upload")
	if err != nil {
		return models.UploadResponse{}, fmt.Errorf("upload request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UploadResponse{}, err
	}

	var result models.UploadResponse
	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		return models.UploadResponse{}, fmt.Errorf("decode upload response: %w", err)
	}

	return result, nil
}

// AssessQuality posts a single frame to the server-side quality proxy.
func (h *httpServerAdapter) AssessQuality(ctx context.Context, frame []byte, filename string) (models.QualityResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetMultipartField("image", filename, "application/octet-stream", bytes.NewReader(frame)).
		Post("/api/quality")
	if err != nil {
		return models.QualityResponse{}, fmt.Errorf("quality request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.QualityResponse{}, err
	}

	var verdict models.QualityResponse
	if err = json.Unmarshal(resp.Body(), &verdict); err != nil {
		return models.QualityResponse{}, fmt.Errorf("decode quality response: %w", err)
	}

	return verdict, nil
}

// ReportBug submits one feedback message as a form post.
func (h *httpServerAdapter) ReportBug(ctx context.Context, message string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{"message": message}).
		Post("/api/db/bug")
	if err != nil {
		return fmt.Errorf("bug report request: %w", err)
	}

	return mapHTTPError(resp)
}

// uploadFormFields flattens the form scalars into their wire names. Optional
// fields are sent only when set.
func uploadFormFields(batch models.UploadBatch) map[string]string {
	fields := map[string]string{
		"patient_id":         batch.PatientID,
		"age":                batch.AgeRange,
		"sex":                batch.Sex,
		"anatomic_site":      batch.AnatomicSite,
		"clinical_diagnosis": batch.ClinicalDiagnosis,
		"biopsy":             strconv.FormatBool(batch.Biopsied),
		"device_type":        batch.DeviceType,
		"os":                 batch.DeviceOS,
	}

	if batch.MonkTone != nil {
		fields["monk_skin_tone"] = strconv.Itoa(*batch.MonkTone)
	}
	if batch.Fitzpatrick != "" {
		fields["fitzpatrick"] = batch.Fitzpatrick
	}
	if batch.Race != "" {
		fields["race"] = batch.Race
	}
	if batch.LesionID != nil {
		fields["lesion_id"] = strconv.FormatInt(*batch.LesionID, 10)
	}

	return fields
}
