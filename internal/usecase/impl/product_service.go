package impl

import (
	"context"
	"fmt"
	"time"

	"souk/internal/domain/entity"
	domainerrors "souk/internal/domain/errors"
	"souk/internal/domain/repository"
	"souk/internal/domain/service"
	"souk/internal/usecase"

	"github.com/pkg/errors"
)

type productService struct {
	products repository.Store[entity.Product]
	query    repository.ProductQuery
	media    repository.ProductMediaRepository
	storage  service.MediaStorage

	// cache and search are optional; nil means the feature is off.
	cache    repository.Cache[entity.Product]
	search   repository.Search[entity.Product]
	cacheTTL time.Duration
}

// NewProductService creates the product catalogue service. The cache and
// search ports may be nil when those backends are not configured.
func NewProductService(
	products repository.Store[entity.Product],
	query repository.ProductQuery,
	media repository.ProductMediaRepository,
	storage service.MediaStorage,
	cache repository.Cache[entity.Product],
	search repository.Search[entity.Product],
	cacheTTL time.Duration,
) usecase.ProductUsecase {
	return &productService{
		products: products,
		query:    query,
		media:    media,
		storage:  storage,
		cache:    cache,
		search:   search,
		cacheTTL: cacheTTL,
	}
}

// CreateProduct adds a product.
func (s *productService) CreateProduct(ctx context.Context, input *usecase.ProductInput) (*entity.Product, error) {
	product := productFromInput(input)

	if err := s.products.Save(ctx, product); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, domainerrors.ErrProductConflict
		}

		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return product, nil
}

// GetProduct retrieves one product, trying the cache first.
func (s *productService) GetProduct(ctx context.Context, id int64) (*entity.Product, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, id); err == nil {
			return cached, nil
		}
	}

	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, fmt.Errorf("failed to find product: %w", err)
	}

	if s.cache != nil {
		// A failed cache fill never fails the read.
		_ = s.cache.Put(ctx, id, product, s.cacheTTL)
	}

	return product, nil
}

// GetProductBySKU retrieves one product by exact SKU match.
func (s *productService) GetProductBySKU(ctx context.Context, sku string) (*entity.Product, error) {
	product, err := s.query.FindBySKU(ctx, sku)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, fmt.Errorf("failed to find product by SKU: %w", err)
	}

	return product, nil
}

// ListProducts returns every product with media.
func (s *productService) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	products, err := s.products.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	return products, nil
}

// SearchProducts runs a free-text query against the external index. Without
// a configured index every query returns no hits.
func (s *productService) SearchProducts(ctx context.Context, query string, limit int) ([]*entity.Product, error) {
	if s.search == nil {
		return []*entity.Product{}, nil
	}

	hits, err := s.search.Search(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search products: %w", err)
	}

	return hits, nil
}

// UpdateProduct replaces the product's fields and evicts its cache entry.
// The media collection is managed through the media operations and is left
// untouched here.
func (s *productService) UpdateProduct(ctx context.Context, id int64, input *usecase.ProductInput) (*entity.Product, error) {
	existing, err := s.findProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	product := productFromInput(input)
	product.ID = id
	product.CreatedAt = existing.CreatedAt
	product.SetMedia(existing.Media)

	if err := s.products.Save(ctx, product); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, domainerrors.ErrProductConflict
		}

		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	s.evict(ctx, id)

	return product, nil
}

// DeleteProduct removes the product, its media rows and its cache entry.
func (s *productService) DeleteProduct(ctx context.Context, id int64) error {
	if err := s.products.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domainerrors.ErrProductNotFound
		}

		return fmt.Errorf("failed to delete product: %w", err)
	}

	s.evict(ctx, id)

	return nil
}

// ListMedia returns a product's media rows, newest first.
func (s *productService) ListMedia(ctx context.Context, productID int64) ([]*entity.ProductMedia, error) {
	if _, err := s.findProduct(ctx, productID); err != nil {
		return nil, err
	}

	media, err := s.media.FindMediaByProduct(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to list media: %w", err)
	}

	return media, nil
}

// AddMedia attaches a media row to a product by URL. The storage provider is
// derived from the URL.
func (s *productService) AddMedia(ctx context.Context, productID int64, input *usecase.MediaInput) (*entity.ProductMedia, error) {
	if _, err := s.findProduct(ctx, productID); err != nil {
		return nil, err
	}

	media := mediaFromInput(input)
	media.ProductID = productID

	if err := s.media.CreateMedia(ctx, media); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, fmt.Errorf("failed to add media: %w", err)
	}

	s.evict(ctx, productID)

	return media, nil
}

// UploadMedia stores a file locally and attaches the resulting URL as an
// image row.
func (s *productService) UploadMedia(ctx context.Context, productID int64, input *usecase.UploadInput) (*entity.ProductMedia, error) {
	if _, err := s.findProduct(ctx, productID); err != nil {
		return nil, err
	}

	stored, err := s.storage.Store(ctx, productID, input.Filename, input.MimeType, input.Content)
	if err != nil {
		return nil, err
	}

	media := &entity.ProductMedia{
		ProductID:   productID,
		Kind:        entity.MediaImage,
		Description: input.Description,
		MimeType:    stored.MimeType,
		SizeKB:      int(stored.SizeBytes / 1024),
		Status:      entity.ValidationPending,
	}
	media.SetURL(stored.URL)

	if err := s.media.CreateMedia(ctx, media); err != nil {
		// The row failed, so the stored file must not linger.
		_ = s.storage.Remove(ctx, stored.Path)

		return nil, fmt.Errorf("failed to record uploaded media: %w", err)
	}

	s.evict(ctx, productID)

	return media, nil
}

// RemoveMedia deletes one media row scoped to its product.
func (s *productService) RemoveMedia(ctx context.Context, productID, mediaID int64) error {
	if _, err := s.findProduct(ctx, productID); err != nil {
		return err
	}

	if err := s.media.DeleteMedia(ctx, productID, mediaID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domainerrors.ErrMediaNotFound
		}

		return fmt.Errorf("failed to remove media: %w", err)
	}

	s.evict(ctx, productID)

	return nil
}

// findProduct reads straight from the store, bypassing the cache, and maps
// the missing case.
func (s *productService) findProduct(ctx context.Context, id int64) (*entity.Product, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, fmt.Errorf("failed to find product: %w", err)
	}

	return product, nil
}

func (s *productService) evict(ctx context.Context, id int64) {
	if s.cache != nil {
		_ = s.cache.Evict(ctx, id)
	}
}

func productFromInput(input *usecase.ProductInput) *entity.Product {
	available := true
	if input.Available != nil {
		available = *input.Available
	}

	product := &entity.Product{
		Name:            input.Name,
		SKU:             input.SKU,
		Price:           input.Price,
		VendorID:        input.VendorID,
		Available:       available,
		CategoryDetails: input.CategoryDetails,
		ImageMeta:       input.ImageMeta,
		Schedule:        input.Schedule,
	}

	media := make([]*entity.ProductMedia, 0, len(input.Media))
	for _, m := range input.Media {
		media = append(media, mediaFromInput(m))
	}
	product.SetMedia(media)

	return product
}

// mediaFromInput maps client-supplied media fields. The storage provider is
// derived from the URL, never taken from the input.
func mediaFromInput(input *usecase.MediaInput) *entity.ProductMedia {
	kind, _ := entity.ParseMediaKind(input.Kind)
	status, _ := entity.ParseValidationStatus(input.Status)

	media := &entity.ProductMedia{
		Kind:            kind,
		Description:     input.Description,
		MimeType:        input.MimeType,
		Width:           input.Width,
		Height:          input.Height,
		SizeKB:          input.SizeKB,
		DurationSeconds: input.DurationSeconds,
		Resolution:      input.Resolution,
		Status:          status,
	}
	media.SetURL(input.URL)

	return media
}
