package impl

import (
	"context"
	"fmt"

	"souk/internal/domain/entity"
	domainerrors "souk/internal/domain/errors"
	"souk/internal/domain/repository"
	"souk/internal/usecase"

	"github.com/pkg/errors"
)

type cuisineService struct {
	cuisines repository.Store[entity.Cuisine]
}

// NewCuisineService creates the cuisine catalogue service.
func NewCuisineService(cuisines repository.Store[entity.Cuisine]) usecase.CuisineUsecase {
	return &cuisineService{cuisines: cuisines}
}

// CreateCuisine adds a catalogue entry.
func (s *cuisineService) CreateCuisine(ctx context.Context, input *usecase.CuisineInput) (*entity.Cuisine, error) {
	cuisine := cuisineFromInput(input)

	if err := s.cuisines.Save(ctx, cuisine); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, domainerrors.ErrCuisineConflict
		}

		return nil, fmt.Errorf("failed to create cuisine: %w", err)
	}

	return cuisine, nil
}

// GetCuisine retrieves one entry by id.
func (s *cuisineService) GetCuisine(ctx context.Context, id int64) (*entity.Cuisine, error) {
	cuisine, err := s.cuisines.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domainerrors.ErrCuisineNotFound
		}

		return nil, fmt.Errorf("failed to find cuisine: %w", err)
	}

	return cuisine, nil
}

// ListCuisines returns the whole catalogue.
func (s *cuisineService) ListCuisines(ctx context.Context) ([]*entity.Cuisine, error) {
	cuisines, err := s.cuisines.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list cuisines: %w", err)
	}

	return cuisines, nil
}

// UpdateCuisine replaces an entry's fields.
func (s *cuisineService) UpdateCuisine(ctx context.Context, id int64, input *usecase.CuisineInput) (*entity.Cuisine, error) {
	if _, err := s.GetCuisine(ctx, id); err != nil {
		return nil, err
	}

	cuisine := cuisineFromInput(input)
	cuisine.ID = id

	if err := s.cuisines.Save(ctx, cuisine); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, domainerrors.ErrCuisineConflict
		}

		return nil, fmt.Errorf("failed to update cuisine: %w", err)
	}

	return cuisine, nil
}

// DeleteCuisine removes an entry.
func (s *cuisineService) DeleteCuisine(ctx context.Context, id int64) error {
	if err := s.cuisines.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domainerrors.ErrCuisineNotFound
		}

		return fmt.Errorf("failed to delete cuisine: %w", err)
	}

	return nil
}

func cuisineFromInput(input *usecase.CuisineInput) *entity.Cuisine {
	return &entity.Cuisine{
		Name:        input.Name,
		Category:    input.Category,
		Subcategory: input.Subcategory,
		Region:      input.Region,
	}
}
