// SPDX-License-Identifier: Apache-2.0

package http

import (
	"net/http"
	"net/url"
	"os"

	"github.com/go-chi/chi/v5"

	"github.com/openderm/lesionsnap/internal/logger"
	"github.com/openderm/lesionsnap/internal/store"
)

// serveImage serves one stored image file. The requested path is resolved
// through the file store's containment guard, so a traversal attempt is a
// 400 and never touches the filesystem.
func (h *Handler) serveImage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	// the wildcard param keeps percent-encoding
	requested, err := url.PathUnescape(chi.URLParam(r, "*"))
	if err != nil {
		respondBadRequest(w, r, "invalid image path")
		return
	}

	resolved, err := h.files.Resolve(requested)
	if err != nil {
		respondError(w, r, err, "invalid image path")
		return
	}

	info, err := os.Stat(resolved)
	if err != nil || info.IsDir() {
		log.Warn().
			Str("func", "*Handler.serveImage").
			Str("path", requested).
			Msg("requested image does not exist")
		respondError(w, r, store.ErrImageFileNotFound, "image not found")
		return
	}

	// content type comes from the file extension
	http.ServeFile(w, r, resolved)
}
