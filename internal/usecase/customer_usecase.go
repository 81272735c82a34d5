package usecase

import (
	"context"
	"encoding/json"

	"souk/internal/domain/entity"
)

// AddressInput carries one entry of a customer's address book. Unknown type
// strings fall back to HOME.
type AddressInput struct {
	ID        int64           `json:"id"`
	Type      string          `json:"type"`
	Street    string          `json:"street" validate:"required,max=255"`
	Unit      string          `json:"unit" validate:"max=50"`
	City      string          `json:"city" validate:"max=100"`
	Postal    string          `json:"postal" validate:"max=20"`
	Country   string          `json:"country" validate:"max=100"`
	IsDefault bool            `json:"isDefault"`
	Metadata  json.RawMessage `json:"metadata"`
}

// CustomerInput carries the client-supplied fields of a customer account.
// The address list fully replaces the stored address book on update.
type CustomerInput struct {
	FirstName string          `json:"firstName" validate:"required,max=100"`
	LastName  string          `json:"lastName" validate:"max=100"`
	Email     string          `json:"email" validate:"required,email,max=255"`
	Phone     string          `json:"phone" validate:"max=20"`
	Addresses []*AddressInput `json:"addresses" validate:"dive"`
}

// CustomerUsecase defines the customer account use cases.
type CustomerUsecase interface {
	// CreateCustomer registers a customer together with its address book.
	// Email, and phone when set, must be unique.
	CreateCustomer(ctx context.Context, input *CustomerInput) (*entity.Customer, error)

	// GetCustomer retrieves one customer with its addresses.
	GetCustomer(ctx context.Context, id int64) (*entity.Customer, error)

	// ListCustomers returns every customer with addresses.
	ListCustomers(ctx context.Context) ([]*entity.Customer, error)

	// UpdateCustomer replaces the customer's fields and address book.
	// Addresses omitted from the input are removed.
	UpdateCustomer(ctx context.Context, id int64, input *CustomerInput) (*entity.Customer, error)

	// DeleteCustomer removes the customer and its addresses.
	DeleteCustomer(ctx context.Context, id int64) error
}
