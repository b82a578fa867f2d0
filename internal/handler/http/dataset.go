// SPDX-License-Identifier: Apache-2.0

package http

import (
	"net/http"
	"strconv"

	"github.com/openderm/lesionsnap/internal/logger"
	"github.com/openderm/lesionsnap/internal/utils"
	"github.com/openderm/lesionsnap/models"
)

// defaultDatasetLimit caps the dashboard query when the request does not
// carry an explicit "last" parameter.
const defaultDatasetLimit = 10

func (h *Handler) dataset(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	filter, err := parseDatasetFilter(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.dataset").Msg("invalid dataset filter")
		respondBadRequest(w, r, err.Error())
		return
	}

	rows, err := h.services.DatasetService.GetDataset(ctx, filter)
	if err != nil {
		respondError(w, r, err, "error fetching dataset")
		return
	}

	if _, err = utils.WriteJSON(w, models.DatasetResponse{OK: true, Data: rows}, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.dataset").Msg("error writing dataset response")
	}
}

func (h *Handler) datasetSize(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	size, err := h.services.DatasetService.GetDatasetSize(ctx)
	if err != nil {
		respondError(w, r, err, "error fetching dataset size")
		return
	}

	if _, err = utils.WriteJSON(w, models.SizeResponse{OK: true, Size: size}, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.datasetSize").Msg("error writing size response")
	}
}

// parseDatasetFilter reads the three optional query parameters. The
// diagnosis parameter carries the display code and is mapped to the
// canonical stored label before it reaches the query builder; a code that
// maps to nothing applies no diagnosis filter at all.
func parseDatasetFilter(r *http.Request) (models.DatasetFilter, error) {
	filter := models.DatasetFilter{
		AnatomicSite: r.URL.Query().Get("anatomicSite"),
		Limit:        defaultDatasetLimit,
	}

	if diagnosis := r.URL.Query().Get("diagnosis"); diagnosis != "" {
		filter.Diagnosis = models.DiagnosisLabels[diagnosis]
	}

	if last := r.URL.Query().Get("last"); last != "" {
		limit, err := strconv.Atoi(last)
		if err != nil || limit <= 0 {
			return models.DatasetFilter{}, errInvalidLastParam
		}
		filter.Limit = limit
	}

	return filter, nil
}
