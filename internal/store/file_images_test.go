package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openderm/lesionsnap/internal/logger"
)

func newTestFileStore(t *testing.T) (FileStore, string) {
	t.Helper()
	dir := t.TempDir()
	fs, err := NewImageFileStore(dir, logger.Nop())
	require.NoError(t, err)
	return fs, dir
}

func TestImageFileStore_SaveAndResolve(t *testing.T) {
	fs, dir := newTestFileStore(t)

	stored, err := fs.Save("melanoma_abc.jpg", []byte("jpeg-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "melanoma_abc.jpg", stored)

	abs, err := fs.Resolve(stored)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "melanoma_abc.jpg"), abs)

	data, err := os.ReadFile(abs)
	require.NoError(t, err)
	assert.Equal(t, []byte("jpeg-bytes"), data)
}

func TestImageFileStore_ResolveStripsLegacyPrefix(t *testing.T) {
	fs, dir := newTestFileStore(t)

	// older rows carry the prefix in both forms
	for _, stored := range []string{"/data/images/nevus_x.jpg", "data/images/nevus_x.jpg"} {
		abs, err := fs.Resolve(stored)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "nevus_x.jpg"), abs, "stored=%s", stored)
	}
}

func TestStripStoragePrefix(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"/data/images/foo.jpg", "foo.jpg"},
		{"data/images/foo.jpg", "foo.jpg"},
		{"/foo.jpg", "foo.jpg"},
		{"foo.jpg", "foo.jpg"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, StripStoragePrefix(tt.in), "in=%s", tt.in)
	}
}

func TestImageFileStore_TraversalGuard(t *testing.T) {
	fs, _ := newTestFileStore(t)

	tests := []struct {
		name string
		path string
	}{
		{"parent escape", "../etc/passwd"},
		{"nested escape", "sub/../../etc/passwd"},
		{"legacy prefix escape", "/data/images/../../etc/passwd"},
		{"deep escape", "a/b/../../../outside"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fs.Resolve(tt.path)
			assert.ErrorIs(t, err, ErrPathOutsideImageDir)
		})
	}
}

// A sibling directory sharing the base as a string prefix must not pass the
// containment check.
func TestImageFileStore_SiblingPrefixRejected(t *testing.T) {
	parent := t.TempDir()
	base := filepath.Join(parent, "images")
	fs, err := NewImageFileStore(base, logger.Nop())
	require.NoError(t, err)

	_, err = fs.Resolve("../images-evil/file.jpg")
	assert.ErrorIs(t, err, ErrPathOutsideImageDir)
}

func TestImageFileStore_RemoveMissingIsNoError(t *testing.T) {
	fs, _ := newTestFileStore(t)

	err := fs.Remove("never_saved.jpg")
	assert.NoError(t, err)
}

func TestImageFileStore_RemoveDeletesFile(t *testing.T) {
	fs, dir := newTestFileStore(t)

	stored, err := fs.Save("sk_y.jpg", []byte("x"))
	require.NoError(t, err)

	require.NoError(t, fs.Remove(stored))

	_, statErr := os.Stat(filepath.Join(dir, "sk_y.jpg"))
	assert.True(t, errors.Is(statErr, os.ErrNotExist))
}
