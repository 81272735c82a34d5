// Package storage implements product media storage on the local filesystem.
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"souk/config"
	domainerrors "souk/internal/domain/errors"
	"souk/internal/domain/service"
	"souk/internal/util"

	"github.com/pkg/errors"
)

// localStorage writes uploads under a configured root directory, one
// subdirectory per product.
type localStorage struct {
	root     string
	baseURL  string
	maxBytes int64
	now      func() time.Time
}

// NewLocalStorage creates the filesystem media storage adapter.
func NewLocalStorage(cfg *config.Config) service.MediaStorage {
	return &localStorage{
		root:     cfg.Uploads.Dir,
		baseURL:  strings.TrimRight(cfg.Uploads.BaseURL, "/"),
		maxBytes: cfg.Uploads.MaxBytes,
		now:      time.Now,
	}
}

// Store streams the upload to disk under product-<id>/. The write is capped
// at maxBytes; an oversized stream is deleted and reported as payload too
// large.
func (s *localStorage) Store(_ context.Context, productID int64, filename, mimeType string, r io.Reader) (*service.StoredFile, error) {
	dir := filepath.Join(s.root, fmt.Sprintf("product-%d", productID))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "create upload directory")
	}

	name := fmt.Sprintf("%d-%s", s.now().Unix(), util.SanitizeFilename(filename))
	path := filepath.Join(dir, name)

	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrap(err, "create upload file")
	}

	// Copy one byte past the cap so an exactly-at-cap file is accepted and
	// anything larger is detected without reading the whole stream.
	written, err := io.Copy(f, io.LimitReader(r, s.maxBytes+1))
	closeErr := f.Close()
	if err != nil {
		_ = os.Remove(path)

		return nil, errors.Wrap(err, "write upload file")
	}
	if closeErr != nil {
		_ = os.Remove(path)

		return nil, errors.Wrap(closeErr, "close upload file")
	}
	if written > s.maxBytes {
		_ = os.Remove(path)

		return nil, domainerrors.ErrPayloadTooLarge.WrapMessage(
			fmt.Sprintf("upload exceeds the %s limit", util.FormatBytes(s.maxBytes)))
	}

	return &service.StoredFile{
		URL:       fmt.Sprintf("%s/product-%d/%s", s.baseURL, productID, name),
		Path:      path,
		SizeBytes: written,
		MimeType:  mimeType,
	}, nil
}

// Remove deletes a stored file. Absent files are ignored.
func (s *localStorage) Remove(_ context.Context, path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "remove stored file")
	}

	return nil
}
