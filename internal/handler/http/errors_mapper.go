// SPDX-License-Identifier: Apache-2.0

package http

import (
	"errors"
	"net/http"

	"github.com/openderm/lesionsnap/internal/service"
	"github.com/openderm/lesionsnap/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrInvalidImageID:      http.StatusBadRequest,
	service.ErrInvalidFlagLiteral:  http.StatusBadRequest,
	service.ErrEmptyBugMessage:     http.StatusBadRequest,
	service.ErrInvalidExportWindow: http.StatusBadRequest,
	service.ErrScorerUnavailable:   http.StatusBadGateway,

	store.ErrImageNotFound:       http.StatusNotFound,
	store.ErrImageFileNotFound:   http.StatusNotFound,
	store.ErrPathOutsideImageDir: http.StatusBadRequest,
	store.ErrBatchNotSaved:       http.StatusInternalServerError,
	store.ErrBugReportNotSaved:   http.StatusInternalServerError,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
