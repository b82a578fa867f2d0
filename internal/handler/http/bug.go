// SPDX-License-Identifier: Apache-2.0

package http

import (
	"net/http"

	"github.com/openderm/lesionsnap/internal/logger"
	"github.com/openderm/lesionsnap/internal/utils"
	"github.com/openderm/lesionsnap/models"
)

func (h *Handler) reportBug(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		log.Err(err).Str("func", "*Handler.reportBug").Msg("error parsing form")
		respondBadRequest(w, r, "invalid form data")
		return
	}

	if err := h.services.BugService.Report(ctx, r.PostFormValue("message")); err != nil {
		respondError(w, r, err, "error saving bug report")
		return
	}

	if _, err := utils.WriteJSON(w, models.Envelope{OK: true}, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.reportBug").Msg("error writing response")
	}
}
