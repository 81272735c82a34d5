package postgres

import (
	"context"

	"souk/internal/domain/entity"
	domainerrors "souk/internal/domain/errors"
	"souk/internal/domain/repository"
	"souk/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// mediaRepository persists product media rows. Every operation is scoped to
// the owning product so a media id from another product cannot be touched.
type mediaRepository struct {
	db *gorm.DB
}

// NewProductMediaRepository creates the media persistence adapter.
func NewProductMediaRepository(db *gorm.DB) repository.ProductMediaRepository {
	return &mediaRepository{db: db}
}

// CreateMedia persists a new media row under its product.
func (r *mediaRepository) CreateMedia(ctx context.Context, media *entity.ProductMedia) error {
	m := fromProductMediaDomain(media)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create media")
	}
	*media = *toProductMediaDomain(m)

	return nil
}

// FindMediaByProduct lists a product's media rows, newest upload first.
func (r *mediaRepository) FindMediaByProduct(ctx context.Context, productID int64) ([]*entity.ProductMedia, error) {
	var models []*model.ProductMediaModel
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("uploaded_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list media")
	}

	media := make([]*entity.ProductMedia, 0, len(models))
	for _, m := range models {
		media = append(media, toProductMediaDomain(m))
	}

	return media, nil
}

// DeleteMedia removes one media row under its product.
func (r *mediaRepository) DeleteMedia(ctx context.Context, productID, mediaID int64) error {
	result := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Delete(&model.ProductMediaModel{}, mediaID)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete media")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}
