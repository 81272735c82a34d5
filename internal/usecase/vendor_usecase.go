package usecase

import (
	"context"
	"encoding/json"

	"souk/internal/domain/entity"
)

// VendorInput carries the client-supplied fields of a vendor profile.
type VendorInput struct {
	Name                string          `json:"name" validate:"required,max=100"`
	SupportedCategories json.RawMessage `json:"supportedCategories"`
	Image               string          `json:"image" validate:"max=300"`
	Address1            string          `json:"address1" validate:"max=100"`
	Address2            string          `json:"address2" validate:"max=100"`
	State               string          `json:"state" validate:"max=100"`
	Landmark            string          `json:"landmark" validate:"max=255"`
	Pincode             string          `json:"pincode" validate:"max=15"`
	ContactName         string          `json:"contactName" validate:"max=100"`
	PhoneNumber         string          `json:"phoneNumber" validate:"max=20"`
	Email               string          `json:"email" validate:"omitempty,email,max=100"`
}

// VendorUsecase defines the vendor directory use cases.
type VendorUsecase interface {
	// CreateVendor registers a vendor profile.
	CreateVendor(ctx context.Context, input *VendorInput) (*entity.Vendor, error)

	// GetVendor retrieves one vendor by id.
	GetVendor(ctx context.Context, id int64) (*entity.Vendor, error)

	// ListVendors returns vendors, optionally narrowed by a case-insensitive
	// substring filter over name, contact, phone, email and id.
	ListVendors(ctx context.Context, filter string) ([]*entity.Vendor, error)

	// UpdateVendor replaces a vendor's fields.
	UpdateVendor(ctx context.Context, id int64, input *VendorInput) (*entity.Vendor, error)

	// DeleteVendor removes a vendor profile.
	DeleteVendor(ctx context.Context, id int64) error
}
