package impl

import (
	"context"
	"testing"

	"souk/internal/domain/entity"
	domainerrors "souk/internal/domain/errors"
	"souk/internal/domain/repository"
	"souk/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCuisineService_CreateCuisine(t *testing.T) {
	store := &fakeStore[entity.Cuisine]{
		saveFn: func(_ context.Context, c *entity.Cuisine) error {
			c.ID = 7

			return nil
		},
	}
	svc := NewCuisineService(store)

	cuisine, err := svc.CreateCuisine(context.Background(), &usecase.CuisineInput{
		Name:        "Nyonya",
		Category:    "Asian",
		Subcategory: "Peranakan",
		Region:      "Malacca",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), cuisine.ID)
	assert.Equal(t, "Nyonya", cuisine.Name)
}

func TestCuisineService_CreateCuisine_DuplicateTuple(t *testing.T) {
	store := &fakeStore[entity.Cuisine]{
		saveFn: func(_ context.Context, _ *entity.Cuisine) error {
			return repository.ErrConflict
		},
	}
	svc := NewCuisineService(store)

	_, err := svc.CreateCuisine(context.Background(), &usecase.CuisineInput{Name: "Nyonya"})
	assert.ErrorIs(t, err, domainerrors.ErrCuisineConflict)
}

func TestCuisineService_GetCuisine_NotFound(t *testing.T) {
	store := &fakeStore[entity.Cuisine]{
		findFn: func(_ context.Context, _ int64) (*entity.Cuisine, error) {
			return nil, repository.ErrNotFound
		},
	}
	svc := NewCuisineService(store)

	_, err := svc.GetCuisine(context.Background(), 99)
	assert.ErrorIs(t, err, domainerrors.ErrCuisineNotFound)
}

func TestCuisineService_UpdateCuisine_KeepsID(t *testing.T) {
	var saved *entity.Cuisine
	store := &fakeStore[entity.Cuisine]{
		findFn: func(_ context.Context, id int64) (*entity.Cuisine, error) {
			return &entity.Cuisine{ID: id, Name: "Old"}, nil
		},
		saveFn: func(_ context.Context, c *entity.Cuisine) error {
			saved = c

			return nil
		},
	}
	svc := NewCuisineService(store)

	updated, err := svc.UpdateCuisine(context.Background(), 3, &usecase.CuisineInput{Name: "New"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), updated.ID)
	assert.Equal(t, "New", saved.Name)
}

func TestCuisineService_UpdateCuisine_MissingEntry(t *testing.T) {
	store := &fakeStore[entity.Cuisine]{
		findFn: func(_ context.Context, _ int64) (*entity.Cuisine, error) {
			return nil, repository.ErrNotFound
		},
	}
	svc := NewCuisineService(store)

	_, err := svc.UpdateCuisine(context.Background(), 3, &usecase.CuisineInput{Name: "New"})
	assert.ErrorIs(t, err, domainerrors.ErrCuisineNotFound)
}

func TestCuisineService_DeleteCuisine_NotFound(t *testing.T) {
	store := &fakeStore[entity.Cuisine]{
		delFn: func(_ context.Context, _ int64) error {
			return repository.ErrNotFound
		},
	}
	svc := NewCuisineService(store)

	assert.ErrorIs(t, svc.DeleteCuisine(context.Background(), 4), domainerrors.ErrCuisineNotFound)
}
