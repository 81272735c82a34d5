package postgres

import (
	"souk/internal/domain/entity"
	"souk/internal/domain/repository"
	"souk/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// NewCuisineStore instantiates the generic store for cuisines.
func NewCuisineStore(db *gorm.DB) repository.Store[entity.Cuisine] {
	return NewStore(db, fromCuisineDomain, toCuisineDomain, (*model.CuisineModel).PrimaryKey)
}

// --- Mapper Functions ---

// toCuisineDomain converts a GORM CuisineModel to a domain Cuisine entity.
func toCuisineDomain(data *model.CuisineModel) *entity.Cuisine {
	if data == nil {
		return nil
	}

	return &entity.Cuisine{
		ID:          data.ID,
		Name:        data.Name,
		Category:    data.Category,
		Subcategory: data.Subcategory,
		Region:      data.Region,
	}
}

// fromCuisineDomain converts a domain Cuisine entity to a GORM CuisineModel.
func fromCuisineDomain(data *entity.Cuisine) *model.CuisineModel {
	if data == nil {
		return nil
	}

	return &model.CuisineModel{
		ID:          data.ID,
		Name:        data.Name,
		Category:    data.Category,
		Subcategory: data.Subcategory,
		Region:      data.Region,
	}
}
