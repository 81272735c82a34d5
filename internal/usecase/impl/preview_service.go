package impl

import (
	"context"

	"souk/internal/domain/service"
	"souk/internal/usecase"
)

type previewService struct {
	fetcher service.PreviewFetcher
}

// NewPreviewService creates the remote-image preview service.
func NewPreviewService(fetcher service.PreviewFetcher) usecase.PreviewUsecase {
	return &previewService{fetcher: fetcher}
}

// FetchPreview downloads a remote image, or serves the cached copy.
func (s *previewService) FetchPreview(ctx context.Context, url string) (*service.PreviewResult, error) {
	return s.fetcher.Fetch(ctx, url)
}
