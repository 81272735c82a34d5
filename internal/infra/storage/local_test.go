package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"souk/config"
	domainerrors "souk/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T, maxBytes int64) (*localStorage, string) {
	t.Helper()

	dir := t.TempDir()
	cfg := &config.Config{}
	cfg.Uploads.Dir = dir
	cfg.Uploads.BaseURL = "/media"
	cfg.Uploads.MaxBytes = maxBytes

	s, ok := NewLocalStorage(cfg).(*localStorage)
	require.True(t, ok)
	s.now = func() time.Time { return time.Unix(1700000000, 0) }

	return s, dir
}

func TestLocalStorage_Store(t *testing.T) {
	t.Parallel()

	s, dir := newTestStorage(t, 1024)

	stored, err := s.Store(context.Background(), 42, "photo.jpg", "image/jpeg", strings.NewReader("payload"))
	require.NoError(t, err)

	assert.Equal(t, "/media/product-42/1700000000-photo.jpg", stored.URL)
	assert.Equal(t, int64(7), stored.SizeBytes)
	assert.Equal(t, "image/jpeg", stored.MimeType)

	data, err := os.ReadFile(filepath.Join(dir, "product-42", "1700000000-photo.jpg"))
	require.NoError(t, err)
	assert.Equal(t, "payload", string(data))
}

func TestLocalStorage_Store_SanitizesFilename(t *testing.T) {
	t.Parallel()

	s, dir := newTestStorage(t, 1024)

	stored, err := s.Store(context.Background(), 7, "../../evil.sh", "application/octet-stream", strings.NewReader("x"))
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "product-7", "1700000000-evil.sh"), stored.Path)
}

func TestLocalStorage_Store_RejectsOversizedUpload(t *testing.T) {
	t.Parallel()

	s, dir := newTestStorage(t, 10)

	_, err := s.Store(context.Background(), 1, "big.bin", "application/octet-stream", strings.NewReader(strings.Repeat("a", 11)))
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrPayloadTooLarge.ErrorCode(), appErr.ErrorCode())

	// The partial file must not survive.
	entries, err := os.ReadDir(filepath.Join(dir, "product-1"))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestLocalStorage_Store_AcceptsExactlyAtCap(t *testing.T) {
	t.Parallel()

	s, _ := newTestStorage(t, 10)

	stored, err := s.Store(context.Background(), 1, "fit.bin", "application/octet-stream", strings.NewReader(strings.Repeat("a", 10)))
	require.NoError(t, err)
	assert.Equal(t, int64(10), stored.SizeBytes)
}

func TestLocalStorage_Remove(t *testing.T) {
	t.Parallel()

	s, _ := newTestStorage(t, 1024)

	stored, err := s.Store(context.Background(), 3, "gone.txt", "text/plain", strings.NewReader("bye"))
	require.NoError(t, err)

	require.NoError(t, s.Remove(context.Background(), stored.Path))
	_, statErr := os.Stat(stored.Path)
	assert.True(t, os.IsNotExist(statErr))

	// Removing again is not an error.
	assert.NoError(t, s.Remove(context.Background(), stored.Path))
}
