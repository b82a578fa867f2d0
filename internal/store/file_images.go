// SPDX-License-Identifier: Apache-2.0

package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/openderm/lesionsnap/internal/logger"
)

// legacyStoragePrefix is the prefix older records carry in their file_path
// column, in either the absolute "/data/images/" or the relative
// "data/images/" form. Paths are stored relative to the image directory now,
// but stored prefixes from earlier deployments must still resolve.
const legacyStoragePrefix = "data/images/"

// imageFileStore is the filesystem implementation of [FileStore]. All files
// live directly under a single base directory; every resolution is checked
// to stay inside it.
type imageFileStore struct {
	baseDir string
	logger  *logger.Logger
}

// NewImageFileStore constructs a [FileStore] rooted at baseDir, creating the
// directory if it does not yet exist.
func NewImageFileStore(baseDir string, log *logger.Logger) (FileStore, error) {
	abs, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, fmt.Errorf("error resolving image directory: %w", err)
	}

	if err = os.MkdirAll(abs, 0o755); err != nil {
		log.Err(err).Str("func", "NewImageFileStore").Msg("error creating image directory")
		return nil, fmt.Errorf("error creating image directory: %w", err)
	}

	return &imageFileStore{
		baseDir: abs,
		logger:  log,
	}, nil
}

// Save writes one image payload under the base directory and returns the
// stored relative path.
func (s *imageFileStore) Save(filename string, data []byte) (string, error) {
	abs, err := s.Resolve(filename)
	if err != nil {
		return "", err
	}

	if err = os.WriteFile(abs, data, 0o644); err != nil {
		s.logger.Err(err).
			Str("func", "imageFileStore.Save").
			Str("filename", filename).
			Msg("failed to write image file")
		return "", fmt.Errorf("error writing image file: %w", err)
	}

	return StripStoragePrefix(filename), nil
}

// Resolve maps a stored path to an absolute path and verifies it stays
// inside the base directory. The check is exact containment: the resolved
// path must equal the base or be a strict descendant of base plus the path
// separator, so "/data/images-evil" can never pass for "/data/images".
func (s *imageFileStore) Resolve(storedPath string) (string, error) {
	rel := StripStoragePrefix(storedPath)

	resolved := filepath.Join(s.baseDir, filepath.FromSlash(rel))
	resolved = filepath.Clean(resolved)

	if resolved != s.baseDir && !strings.HasPrefix(resolved, s.baseDir+string(filepath.Separator)) {
		return "", ErrPathOutsideImageDir
	}

	return resolved, nil
}

// Remove deletes a previously saved file. A missing file is not an error so
// compensating cleanup stays idempotent.
func (s *imageFileStore) Remove(storedPath string) error {
	abs, err := s.Resolve(storedPath)
	if err != nil {
		return err
	}

	if err = os.Remove(abs); err != nil && !errors.Is(err, fs.ErrNotExist) {
		s.logger.Err(err).
			Str("func", "imageFileStore.Remove").
			Str("path", storedPath).
			Msg("failed to remove image file")
		return fmt.Errorf("error removing image file: %w", err)
	}

	return nil
}

// StripStoragePrefix normalizes a stored file path to a path relative to the
// image directory: any leading slash and the legacy prefix, in both its
// absolute and relative forms, are removed.
func StripStoragePrefix(storedPath string) string {
	rel := strings.TrimPrefix(storedPath, "/")
	return strings.TrimPrefix(rel, legacyStoragePrefix)
}
