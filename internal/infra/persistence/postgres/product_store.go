package postgres

import (
	"context"
	"encoding/json"

	"souk/internal/domain/entity"
	domainerrors "souk/internal/domain/errors"
	"souk/internal/domain/repository"
	"souk/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// NewProductStore instantiates the generic store for products. Media rows are
// an owned collection and follow the product's lifecycle.
func NewProductStore(db *gorm.DB) repository.Store[entity.Product] {
	return NewStore(db, fromProductDomain, toProductDomain, (*model.ProductModel).PrimaryKey,
		WithPreloads("Media"),
		WithOwnedCollection("Media", "product_id", &model.ProductMediaModel{}),
	)
}

// productQuery implements the SKU lookup that the generic contract cannot
// express.
type productQuery struct {
	db *gorm.DB
}

// NewProductQuery creates the product lookup adapter.
func NewProductQuery(db *gorm.DB) repository.ProductQuery {
	return &productQuery{db: db}
}

// FindBySKU retrieves a product by exact SKU match.
func (q *productQuery) FindBySKU(ctx context.Context, sku string) (*entity.Product, error) {
	var m model.ProductModel
	err := q.db.WithContext(ctx).Preload("Media").Where("sku = ?", sku).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find product by SKU")
	}

	return toProductDomain(&m), nil
}

// --- Mapper Functions ---

// toProductDomain converts a GORM ProductModel to a domain Product entity.
func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	media := make([]*entity.ProductMedia, 0, len(data.Media))
	for _, mediaM := range data.Media {
		media = append(media, toProductMediaDomain(mediaM))
	}

	return &entity.Product{
		ID:              data.ID,
		Name:            data.Name,
		SKU:             data.SKU,
		Price:           data.Price,
		VendorID:        data.VendorID,
		Available:       data.Available,
		CategoryDetails: json.RawMessage(data.CategoryDetails),
		ImageMeta:       json.RawMessage(data.ImageMeta),
		Schedule:        json.RawMessage(data.Schedule),
		Media:           media,
		CreatedAt:       data.CreatedAt,
		ScheduleUpdated: data.ScheduleUpdated,
	}
}

// fromProductDomain converts a domain Product entity to a GORM ProductModel.
func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	media := make([]*model.ProductMediaModel, 0, len(data.Media))
	for _, m := range data.Media {
		media = append(media, fromProductMediaDomain(m))
	}

	return &model.ProductModel{
		ID:              data.ID,
		Name:            data.Name,
		SKU:             data.SKU,
		Price:           data.Price,
		VendorID:        data.VendorID,
		Available:       data.Available,
		CategoryDetails: datatypes.JSON(data.CategoryDetails),
		ImageMeta:       datatypes.JSON(data.ImageMeta),
		Schedule:        datatypes.JSON(data.Schedule),
		Media:           media,
		CreatedAt:       data.CreatedAt,
		ScheduleUpdated: data.ScheduleUpdated,
	}
}

// toProductMediaDomain converts a GORM ProductMediaModel to a domain entity.
func toProductMediaDomain(data *model.ProductMediaModel) *entity.ProductMedia {
	if data == nil {
		return nil
	}

	kind, _ := entity.ParseMediaKind(data.Kind)
	provider, _ := entity.ParseStorageProvider(data.Provider)
	status, _ := entity.ParseValidationStatus(data.Status)

	return &entity.ProductMedia{
		ID:              data.ID,
		ProductID:       data.ProductID,
		Kind:            kind,
		URL:             data.URL,
		Description:     data.Description,
		Provider:        provider,
		MimeType:        data.MimeType,
		Width:           data.Width,
		Height:          data.Height,
		SizeKB:          data.SizeKB,
		DurationSeconds: data.DurationSeconds,
		Resolution:      data.Resolution,
		Status:          status,
		ValidationError: data.ValidationError,
		UploadedAt:      data.UploadedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

// fromProductMediaDomain converts a domain entity to a GORM ProductMediaModel.
func fromProductMediaDomain(data *entity.ProductMedia) *model.ProductMediaModel {
	if data == nil {
		return nil
	}

	return &model.ProductMediaModel{
		ID:              data.ID,
		ProductID:       data.ProductID,
		Kind:            data.Kind.String(),
		URL:             data.URL,
		Description:     data.Description,
		Provider:        data.Provider.String(),
		MimeType:        data.MimeType,
		Width:           data.Width,
		Height:          data.Height,
		SizeKB:          data.SizeKB,
		DurationSeconds: data.DurationSeconds,
		Resolution:      data.Resolution,
		Status:          data.Status.String(),
		ValidationError: data.ValidationError,
		UploadedAt:      data.UploadedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}
