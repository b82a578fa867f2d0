// SPDX-License-Identifier: Apache-2.0

package http

import (
	"context"
	"net/http"

	"github.com/openderm/lesionsnap/internal/logger"
	"github.com/openderm/lesionsnap/internal/utils"
	"github.com/openderm/lesionsnap/models"
)

// The two manual review endpoints share one shape: form fields "image_id"
// and "value", strict literal validation in the service, single-row update.

func (h *Handler) manualPHI(w http.ResponseWriter, r *http.Request) {
	h.annotate(w, r, "*Handler.manualPHI", h.services.AnnotationService.SetPHI)
}

func (h *Handler) manualQuality(w http.ResponseWriter, r *http.Request) {
	h.annotate(w, r, "*Handler.manualQuality", h.services.AnnotationService.SetQuality)
}

func (h *Handler) annotate(w http.ResponseWriter, r *http.Request, funcName string, set func(ctx context.Context, imageID, value string) error) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		log.Err(err).Str("func", funcName).Msg("error parsing form")
		respondBadRequest(w, r, "invalid form data")
		return
	}

	imageID := r.PostFormValue("image_id")
	value := r.PostFormValue("value")

	if err := set(ctx, imageID, value); err != nil {
		respondError(w, r, err, "error updating image flag")
		return
	}

	log.Info().
		Str("func", funcName).
		Str("image_id", imageID).
		Str("value", value).
		Msg("image flag updated")

	if _, err := utils.WriteJSON(w, models.Envelope{OK: true}, http.StatusOK); err != nil {
		log.Err(err).Str("func", funcName).Msg("error writing response")
	}
}
