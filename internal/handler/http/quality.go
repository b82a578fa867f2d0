// SPDX-License-Identifier: Apache-2.0

package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/openderm/lesionsnap/internal/logger"
	"github.com/openderm/lesionsnap/internal/utils"
	"github.com/openderm/lesionsnap/models"
)

// assessQuality proxies one frame to the external image-quality scorer and
// returns its verdict unchanged. A scorer failure is a 502; the capture
// client decides what to show instead.
func (h *Handler) assessQuality(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	file, header, err := r.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrNotMultipart) {
			log.Err(err).Str("func", "*Handler.assessQuality").Msg("quality request is not multipart")
			if _, writeErr := utils.WriteJSON(w, models.Envelope{OK: false, Error: "multipart form expected"}, http.StatusUnsupportedMediaType); writeErr != nil {
				log.Err(writeErr).Msg("error writing error envelope")
			}
			return
		}
		log.Err(err).Str("func", "*Handler.assessQuality").Msg("missing image part")
		respondBadRequest(w, r, `"image" part is required`)
		return
	}
	defer func() { _ = file.Close() }()

	frame, err := io.ReadAll(file)
	if err != nil {
		log.Err(err).Str("func", "*Handler.assessQuality").Msg("error reading image part")
		respondBadRequest(w, r, "error reading image part")
		return
	}

	verdict, err := h.services.QualityService.Assess(ctx, frame, header.Filename)
	if err != nil {
		respondError(w, r, err, "image-quality scorer unavailable")
		return
	}

	verdict.OK = true
	if _, err = utils.WriteJSON(w, verdict, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.assessQuality").Msg("error writing quality response")
	}
}
