// SPDX-License-Identifier: Apache-2.0

package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/openderm/lesionsnap/internal/logger"
	"github.com/openderm/lesionsnap/models"
)

// export builds the complete research bundle and serves it as a buffered
// attachment. The archive is assembled in memory before the first response
// byte, so a failed build still produces a clean JSON error.
func (h *Handler) export(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.ExportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.export").Msg("Invalid JSON was passed")
		respondBadRequest(w, r, "Invalid JSON was passed")
		return
	}

	archive, err := h.services.ExportService.BuildArchive(ctx, req)
	if err != nil {
		respondError(w, r, err, "error building export archive")
		return
	}

	log.Info().
		Str("func", "*Handler.export").
		Str("filename", archive.Filename).
		Int("images_added", archive.ImagesAdded).
		Int("images_missing", archive.ImagesMissing).
		Msg("export archive built")

	w.Header().Set("Content-Type", "application/gzip")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", archive.Filename))
	w.WriteHeader(http.StatusOK)
	if _, err = w.Write(archive.Data); err != nil {
		log.Err(err).Str("func", "*Handler.export").Msg("error writing archive body")
	}
}
