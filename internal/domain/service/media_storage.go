// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

import (
	"context"
	"io"
)

// StoredFile describes a file that has been persisted to media storage.
type StoredFile struct {
	// URL is the public URL the file is served under.
	URL string

	// Path is the location on the backing store.
	Path string

	// SizeBytes is the number of bytes written.
	SizeBytes int64

	// MimeType is the detected or declared content type.
	MimeType string
}

// MediaStorage persists uploaded product media. Implementations enforce the
// configured size cap and must not leave partial files behind when a write
// is aborted.
type MediaStorage interface {
	// Store writes the stream under the product's upload directory. Returns
	// ErrPayloadTooLarge when the stream exceeds the cap.
	Store(ctx context.Context, productID int64, filename, mimeType string, r io.Reader) (*StoredFile, error)

	// Remove deletes a previously stored file. Removing an absent file is
	// not an error.
	Remove(ctx context.Context, path string) error
}
