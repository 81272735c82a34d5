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

type customerService struct {
	customers repository.Store[entity.Customer]
}

// NewCustomerService creates the customer account service.
func NewCustomerService(customers repository.Store[entity.Customer]) usecase.CustomerUsecase {
	return &customerService{customers: customers}
}

// CreateCustomer registers a customer together with its address book.
func (s *customerService) CreateCustomer(ctx context.Context, input *usecase.CustomerInput) (*entity.Customer, error) {
	customer := customerFromInput(input)

	if err := s.customers.Save(ctx, customer); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, domainerrors.ErrCustomerConflict
		}

		return nil, fmt.Errorf("failed to create customer: %w", err)
	}

	return customer, nil
}

// GetCustomer retrieves one customer with its addresses.
func (s *customerService) GetCustomer(ctx context.Context, id int64) (*entity.Customer, error) {
	customer, err := s.customers.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domainerrors.ErrCustomerNotFound
		}

		return nil, fmt.Errorf("failed to find customer: %w", err)
	}

	return customer, nil
}

// ListCustomers returns every customer with addresses.
func (s *customerService) ListCustomers(ctx context.Context) ([]*entity.Customer, error) {
	customers, err := s.customers.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}

	return customers, nil
}

// UpdateCustomer replaces the customer's fields and address book. Stored
// addresses missing from the input are removed.
func (s *customerService) UpdateCustomer(ctx context.Context, id int64, input *usecase.CustomerInput) (*entity.Customer, error) {
	if _, err := s.GetCustomer(ctx, id); err != nil {
		return nil, err
	}

	customer := customerFromInput(input)
	customer.ID = id
	// Re-stamp the back-references now that the id is known.
	customer.SetAddresses(customer.Addresses)

	if err := s.customers.Save(ctx, customer); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, domainerrors.ErrCustomerConflict
		}

		return nil, fmt.Errorf("failed to update customer: %w", err)
	}

	return customer, nil
}

// DeleteCustomer removes the customer and its addresses.
func (s *customerService) DeleteCustomer(ctx context.Context, id int64) error {
	if err := s.customers.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domainerrors.ErrCustomerNotFound
		}

		return fmt.Errorf("failed to delete customer: %w", err)
	}

	return nil
}

func customerFromInput(input *usecase.CustomerInput) *entity.Customer {
	customer := &entity.Customer{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Phone:     input.Phone,
	}

	addresses := make([]*entity.CustomerAddress, 0, len(input.Addresses))
	for _, addr := range input.Addresses {
		addrType, _ := entity.ParseAddressType(addr.Type)
		addresses = append(addresses, &entity.CustomerAddress{
			ID:        addr.ID,
			Type:      addrType,
			Street:    addr.Street,
			Unit:      addr.Unit,
			City:      addr.City,
			Postal:    addr.Postal,
			Country:   addr.Country,
			IsDefault: addr.IsDefault,
			Metadata:  addr.Metadata,
		})
	}
	customer.SetAddresses(addresses)

	return customer
}
