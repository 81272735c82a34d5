// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"souk/internal/errors"
)

// Sentinel errors shared by every store instantiation.
var (
	// ErrNotFound is returned when the requested row does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrConflict is returned when a save violates a uniqueness constraint,
	// e.g. a duplicate email, SKU or cuisine tuple.
	ErrConflict = errors.New("record conflicts with an existing one")
)

// Store is the generic data-access port. It is parameterized over the entity
// type; every entity uses a store-assigned int64 surrogate key.
//
// One instantiation exists per entity, all backed by the same generic GORM
// adapter configured with per-entity mappers.
type Store[E any] interface {
	// Save inserts the entity when its ID is unset and fully updates the row
	// otherwise. The entity is updated in place with the generated ID and any
	// server-computed columns. Uniqueness violations surface as ErrConflict.
	Save(ctx context.Context, e *E) error

	// FindByID retrieves an entity by ID. Returns ErrNotFound when absent.
	FindByID(ctx context.Context, id int64) (*E, error)

	// FindAll returns every row of the backing table. Order is unspecified
	// unless the entity documents one.
	FindAll(ctx context.Context) ([]*E, error)

	// DeleteByID removes the row. Deleting an absent ID returns ErrNotFound;
	// interactive callers check existence first via FindByID.
	DeleteByID(ctx context.Context, id int64) error
}
