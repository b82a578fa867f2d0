// SPDX-License-Identifier: Apache-2.0

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/openderm/lesionsnap/internal/logger"
	"github.com/openderm/lesionsnap/internal/utils"
	"github.com/openderm/lesionsnap/models"
)

// maxUploadMemory bounds the in-memory part of a parsed multipart upload;
// larger file parts spill to temporary files.
const maxUploadMemory = 64 << 20

func (h *Handler) upload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		if errors.Is(err, http.ErrNotMultipart) {
			log.Err(err).Str("func", "*Handler.upload").Msg("upload is not multipart")
			if _, writeErr := utils.WriteJSON(w, models.Envelope{OK: false, Error: "multipart form expected"}, http.StatusUnsupportedMediaType); writeErr != nil {
				log.Err(writeErr).Msg("error writing error envelope")
			}
			return
		}
		log.Err(err).Str("func", "*Handler.upload").Msg("error parsing multipart form")
		respondBadRequest(w, r, "invalid multipart form")
		return
	}

	batch, err := parseUploadBatch(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.upload").Msg("error reading upload batch")
		respondBadRequest(w, r, err.Error())
		return
	}

	lesionID, written, err := h.services.IntakeService.SaveUpload(ctx, batch)
	if err != nil {
		respondError(w, r, err, "error saving upload")
		return
	}

	log.Info().
		Str("func", "*Handler.upload").
		Int64("lesion_id", lesionID).
		Int("images", written).
		Msg("upload batch saved")

	response := models.UploadResponse{
		OK:            true,
		UploadID:      strconv.FormatInt(lesionID, 10),
		ImagesWritten: written,
	}
	if _, err = utils.WriteJSON(w, response, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.upload").Msg("error writing upload response")
	}
}

// parseUploadBatch maps the multipart form onto an upload batch: the scalar
// fields by wire name, the metas JSON array, and the binary "images" parts
// in submission order. The metas array and the file parts must have the same
// length; everything else is the service layer's to validate.
func parseUploadBatch(r *http.Request) (models.UploadBatch, error) {
	batch := models.UploadBatch{
		IntakeForm: models.IntakeForm{
			PatientID:         r.FormValue("patient_id"),
			AgeRange:          r.FormValue("age"),
			Sex:               r.FormValue("sex"),
			Fitzpatrick:       r.FormValue("fitzpatrick"),
			Race:              r.FormValue("race"),
			AnatomicSite:      r.FormValue("anatomic_site"),
			ClinicalDiagnosis: r.FormValue("clinical_diagnosis"),
		},
		DeviceType: r.FormValue("device_type"),
		DeviceOS:   r.FormValue("os"),
	}

	if v := r.FormValue("biopsy"); v != "" {
		biopsied, err := strconv.ParseBool(v)
		if err != nil {
			return models.UploadBatch{}, fmt.Errorf("invalid biopsy value %q", v)
		}
		batch.Biopsied = biopsied
	}

	if v := r.FormValue("monk_skin_tone"); v != "" {
		tone, err := strconv.Atoi(v)
		if err != nil {
			return models.UploadBatch{}, fmt.Errorf("invalid monk_skin_tone value %q", v)
		}
		batch.MonkTone = &tone
	}

	if v := r.FormValue("lesion_id"); v != "" {
		lesionID, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return models.UploadBatch{}, fmt.Errorf("invalid lesion_id value %q", v)
		}
		batch.LesionID = &lesionID
	}

	if err := json.Unmarshal([]byte(r.FormValue("metas")), &batch.Metas); err != nil {
		return models.UploadBatch{}, fmt.Errorf("invalid metas array: %w", err)
	}

	files := r.MultipartForm.File["images"]
	if len(files) != len(batch.Metas) {
		return models.UploadBatch{}, fmt.Errorf("metas array length %d does not match %d image parts", len(batch.Metas), len(files))
	}

	for i, header := range files {
		part, err := header.Open()
		if err != nil {
			return models.UploadBatch{}, fmt.Errorf("error opening image part %d: %w", i, err)
		}

		data, err := io.ReadAll(part)
		_ = part.Close()
		if err != nil {
			return models.UploadBatch{}, fmt.Errorf("error reading image part %d: %w", i, err)
		}

		batch.Images = append(batch.Images, models.CapturedImage{
			Filename: batch.Metas[i].Filename,
			MimeType: header.Header.Get("Content-Type"),
			Data:     data,
		})
	}

	return batch, nil
}
