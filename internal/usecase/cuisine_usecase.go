package usecase

import (
	"context"

	"souk/internal/domain/entity"
)

// CuisineInput carries the client-supplied fields of a cuisine catalogue
// entry.
type CuisineInput struct {
	Name        string `json:"name" validate:"required,max=100"`
	Category    string `json:"category" validate:"max=100"`
	Subcategory string `json:"subcategory" validate:"max=100"`
	Region      string `json:"region" validate:"max=100"`
}

// CuisineUsecase defines the cuisine catalogue use cases.
type CuisineUsecase interface {
	// CreateCuisine adds a catalogue entry. The (name, category,
	// subcategory, region) tuple must be unique.
	CreateCuisine(ctx context.Context, input *CuisineInput) (*entity.Cuisine, error)

	// GetCuisine retrieves one entry by id.
	GetCuisine(ctx context.Context, id int64) (*entity.Cuisine, error)

	// ListCuisines returns the whole catalogue.
	ListCuisines(ctx context.Context) ([]*entity.Cuisine, error)

	// UpdateCuisine replaces an entry's fields.
	UpdateCuisine(ctx context.Context, id int64, input *CuisineInput) (*entity.Cuisine, error)

	// DeleteCuisine removes an entry.
	DeleteCuisine(ctx context.Context, id int64) error
}
