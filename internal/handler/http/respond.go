package http

import (
	"net/http"

	"github.com/openderm/lesionsnap/internal/logger"
	"github.com/openderm/lesionsnap/internal/utils"
	"github.com/openderm/lesionsnap/models"
)

// respondError writes the uniform error envelope with the status derived
// from the error's sentinel. The public message is the caller's msg, never
// the raw error text.
func respondError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	log.Err(err).Int("status", status).Msg(msg)

	if _, writeErr := utils.WriteJSON(w, models.Envelope{OK: false, Error: msg}, status); writeErr != nil {
		log.Err(writeErr).Msg("error writing error envelope")
	}
}

// respondBadRequest writes a 400 envelope for request parse failures that
// never reached the service layer.
func respondBadRequest(w http.ResponseWriter, r *http.Request, msg string) {
	log := logger.FromRequest(r)

	if _, err := utils.WriteJSON(w, models.Envelope{OK: false, Error: msg}, http.StatusBadRequest); err != nil {
		log.Err(err).Msg("error writing error envelope")
	}
}
