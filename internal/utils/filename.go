package utils

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// extByMime maps the image MIME types the capture client may produce to the
// file extension used for the stored copy. Unknown types fall back to jpg,
// matching the capture pipeline's default encoding.
var extByMime = map[string]string{
	"image/png":     "png",
	"image/webp":    "webp",
	"image/jpeg":    "jpg",
	"image/jpg":     "jpg",
	"image/heic":    "heic",
	"image/avif":    "avif",
	"image/gif":     "gif",
	"image/svg+xml": "svg",
}

var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9]`)

// NewImageFilename generates a collision-free server-side filename for one
// captured image: a sanitized lower-case diagnosis prefix, a random UUID,
// and an extension derived from the MIME type.
func NewImageFilename(diagnosis, mimeType string) string {
	clean := strings.ToLower(nonAlphanumeric.ReplaceAllString(diagnosis, "_"))

	ext, ok := extByMime[mimeType]
	if !ok {
		ext = "jpg"
	}

	return clean + "_" + uuid.NewString() + "." + ext
}
