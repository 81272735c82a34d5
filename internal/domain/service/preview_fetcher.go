package service

import "context"

// PreviewResult describes a remote image that was downloaded to local
// storage for previewing.
type PreviewResult struct {
	// LocalURL is the public URL of the cached copy.
	LocalURL string

	// MimeType of the downloaded content.
	MimeType string

	// SizeBytes of the downloaded content.
	SizeBytes int64

	// Cached is true when the download was served from a previous fetch of
	// the same source URL.
	Cached bool
}

// PreviewFetcher downloads a remote image to local storage so clients can
// preview it without hotlinking the source.
type PreviewFetcher interface {
	// Fetch downloads the URL, subject to the configured size cap and
	// timeouts. Repeat fetches of the same URL return the cached copy.
	Fetch(ctx context.Context, url string) (*PreviewResult, error)
}
