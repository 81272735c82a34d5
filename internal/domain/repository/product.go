package repository

import (
	"context"

	"souk/internal/domain/entity"
)

// ProductQuery covers the product lookups that fall outside the generic
// store contract.
type ProductQuery interface {
	// FindBySKU retrieves a product by exact SKU match. Returns ErrNotFound
	// when absent.
	FindBySKU(ctx context.Context, sku string) (*entity.Product, error)
}

// ProductMediaRepository manages the media rows owned by a product.
type ProductMediaRepository interface {
	// CreateMedia persists a new media row scoped to a product.
	CreateMedia(ctx context.Context, media *entity.ProductMedia) error

	// FindMediaByProduct lists every media row for a product, newest first.
	FindMediaByProduct(ctx context.Context, productID int64) ([]*entity.ProductMedia, error)

	// DeleteMedia removes one media row scoped to its parent product.
	// Returns ErrNotFound when no such row exists under that product.
	DeleteMedia(ctx context.Context, productID, mediaID int64) error
}
