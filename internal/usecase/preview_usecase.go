package usecase

import (
	"context"

	"souk/internal/domain/service"
)

// PreviewUsecase defines the remote-image preview use case.
type PreviewUsecase interface {
	// FetchPreview downloads a remote image to local storage, or serves a
	// previously downloaded copy of the same URL.
	FetchPreview(ctx context.Context, url string) (*service.PreviewResult, error)
}
