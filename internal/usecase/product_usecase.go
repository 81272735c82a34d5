package usecase

import (
	"context"
	"encoding/json"
	"io"

	"souk/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// ProductInput carries the client-supplied fields of a product. The three
// JSON blobs are stored verbatim.
type ProductInput struct {
	Name            string          `json:"name" validate:"required,max=255"`
	SKU             string          `json:"sku" validate:"required,max=100"`
	Price           decimal.Decimal `json:"price" validate:"gt=0"`
	VendorID        int64           `json:"vendorId" validate:"gte=0"`
	Available       *bool           `json:"available"`
	CategoryDetails json.RawMessage `json:"categoryDetails"`
	ImageMeta       json.RawMessage `json:"imageMeta"`
	Schedule        json.RawMessage `json:"schedule"`
	Media           []*MediaInput   `json:"media" validate:"omitempty,dive"`
}

// MediaInput carries one media attachment of a product. The storage
// provider is derived from the URL and cannot be set directly.
type MediaInput struct {
	Kind            string `json:"kind"`
	URL             string `json:"url" validate:"required,max=1000"`
	Description     string `json:"description" validate:"max=500"`
	MimeType        string `json:"mimeType" validate:"max=100"`
	Width           int    `json:"width" validate:"gte=0"`
	Height          int    `json:"height" validate:"gte=0"`
	SizeKB          int    `json:"sizeKb" validate:"gte=0"`
	DurationSeconds int    `json:"durationSeconds" validate:"gte=0"`
	Resolution      string `json:"resolution" validate:"max=50"`
	Status          string `json:"status"`
}

// UploadInput carries a streamed file upload destined for local media
// storage.
type UploadInput struct {
	Filename    string
	MimeType    string
	Description string
	Content     io.Reader
}

// ProductUsecase defines the product catalogue and media use cases.
type ProductUsecase interface {
	// CreateProduct adds a product. The SKU must be unique.
	CreateProduct(ctx context.Context, input *ProductInput) (*entity.Product, error)

	// GetProduct retrieves one product with media, through the cache when
	// one is configured.
	GetProduct(ctx context.Context, id int64) (*entity.Product, error)

	// GetProductBySKU retrieves one product by exact SKU match.
	GetProductBySKU(ctx context.Context, sku string) (*entity.Product, error)

	// ListProducts returns every product with media.
	ListProducts(ctx context.Context) ([]*entity.Product, error)

	// SearchProducts runs a free-text query against the external index.
	// Without a configured index it returns no hits.
	SearchProducts(ctx context.Context, query string, limit int) ([]*entity.Product, error)

	// UpdateProduct replaces the product's fields and evicts its cache
	// entry.
	UpdateProduct(ctx context.Context, id int64, input *ProductInput) (*entity.Product, error)

	// DeleteProduct removes the product, its media rows and its cache
	// entry.
	DeleteProduct(ctx context.Context, id int64) error

	// ListMedia returns a product's media attachments, newest first.
	ListMedia(ctx context.Context, productID int64) ([]*entity.ProductMedia, error)

	// AddMedia attaches a media row to a product by URL.
	AddMedia(ctx context.Context, productID int64, input *MediaInput) (*entity.ProductMedia, error)

	// UploadMedia stores a file in local media storage and attaches the
	// resulting URL as an image row.
	UploadMedia(ctx context.Context, productID int64, input *UploadInput) (*entity.ProductMedia, error)

	// RemoveMedia deletes one media row scoped to its product.
	RemoveMedia(ctx context.Context, productID, mediaID int64) error
}
