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

func TestCustomerService_CreateCustomer_StampsAddressOwnership(t *testing.T) {
	var saved *entity.Customer
	store := &fakeStore[entity.Customer]{
		saveFn: func(_ context.Context, c *entity.Customer) error {
			c.ID = 11
			saved = c

			return nil
		},
	}
	svc := NewCustomerService(store)

	customer, err := svc.CreateCustomer(context.Background(), &usecase.CustomerInput{
		FirstName: "Mei",
		Email:     "mei@example.com",
		Addresses: []*usecase.AddressInput{
			{Type: "office", Street: "1 Raffles Place"},
			{Type: "bogus", Street: "2 Orchard Road"},
		},
	})
	require.NoError(t, err)
	require.Len(t, saved.Addresses, 2)

	assert.Equal(t, entity.AddressTypeOffice, customer.Addresses[0].Type)
	// Unknown types silently fall back to HOME.
	assert.Equal(t, entity.AddressTypeHome, customer.Addresses[1].Type)
}

func TestCustomerService_CreateCustomer_DuplicateEmail(t *testing.T) {
	store := &fakeStore[entity.Customer]{
		saveFn: func(_ context.Context, _ *entity.Customer) error {
			return repository.ErrConflict
		},
	}
	svc := NewCustomerService(store)

	_, err := svc.CreateCustomer(context.Background(), &usecase.CustomerInput{
		FirstName: "Mei",
		Email:     "mei@example.com",
	})
	assert.ErrorIs(t, err, domainerrors.ErrCustomerConflict)
}

func TestCustomerService_UpdateCustomer_ReplacesAddressBook(t *testing.T) {
	var saved *entity.Customer
	store := &fakeStore[entity.Customer]{
		findFn: func(_ context.Context, id int64) (*entity.Customer, error) {
			return &entity.Customer{
				ID: id,
				Addresses: []*entity.CustomerAddress{
					{ID: 1, CustomerID: id, Street: "Old Street"},
					{ID: 2, CustomerID: id, Street: "Gone Street"},
				},
			}, nil
		},
		saveFn: func(_ context.Context, c *entity.Customer) error {
			saved = c

			return nil
		},
	}
	svc := NewCustomerService(store)

	_, err := svc.UpdateCustomer(context.Background(), 5, &usecase.CustomerInput{
		FirstName: "Mei",
		Email:     "mei@example.com",
		Addresses: []*usecase.AddressInput{
			{ID: 1, Type: "HOME", Street: "Kept Street"},
		},
	})
	require.NoError(t, err)

	require.Len(t, saved.Addresses, 1)
	assert.Equal(t, int64(5), saved.Addresses[0].CustomerID)
	assert.Equal(t, "Kept Street", saved.Addresses[0].Street)
}

func TestCustomerService_GetCustomer_NotFound(t *testing.T) {
	store := &fakeStore[entity.Customer]{
		findFn: func(_ context.Context, _ int64) (*entity.Customer, error) {
			return nil, repository.ErrNotFound
		},
	}
	svc := NewCustomerService(store)

	_, err := svc.GetCustomer(context.Background(), 404)
	assert.ErrorIs(t, err, domainerrors.ErrCustomerNotFound)
}

func TestCustomerService_DeleteCustomer_NotFound(t *testing.T) {
	store := &fakeStore[entity.Customer]{
		delFn: func(_ context.Context, _ int64) error {
			return repository.ErrNotFound
		},
	}
	svc := NewCustomerService(store)

	assert.ErrorIs(t, svc.DeleteCustomer(context.Background(), 404), domainerrors.ErrCustomerNotFound)
}
