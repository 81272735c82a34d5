package impl

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"souk/internal/domain/entity"
	domainerrors "souk/internal/domain/errors"
	"souk/internal/domain/repository"
	"souk/internal/usecase"

	"github.com/pkg/errors"
)

type vendorService struct {
	vendors repository.Store[entity.Vendor]
}

// NewVendorService creates the vendor directory service.
func NewVendorService(vendors repository.Store[entity.Vendor]) usecase.VendorUsecase {
	return &vendorService{vendors: vendors}
}

// CreateVendor registers a vendor profile.
func (s *vendorService) CreateVendor(ctx context.Context, input *usecase.VendorInput) (*entity.Vendor, error) {
	vendor := vendorFromInput(input)

	if err := s.vendors.Save(ctx, vendor); err != nil {
		return nil, fmt.Errorf("failed to create vendor: %w", err)
	}

	return vendor, nil
}

// GetVendor retrieves one vendor by id.
func (s *vendorService) GetVendor(ctx context.Context, id int64) (*entity.Vendor, error) {
	vendor, err := s.vendors.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domainerrors.ErrVendorNotFound
		}

		return nil, fmt.Errorf("failed to find vendor: %w", err)
	}

	return vendor, nil
}

// ListVendors returns vendors, optionally narrowed by a case-insensitive
// substring filter over name, phone, email and id.
func (s *vendorService) ListVendors(ctx context.Context, filter string) ([]*entity.Vendor, error) {
	vendors, err := s.vendors.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list vendors: %w", err)
	}

	filter = strings.TrimSpace(filter)
	if filter == "" {
		return vendors, nil
	}

	needle := strings.ToLower(filter)
	matched := make([]*entity.Vendor, 0, len(vendors))
	for _, vendor := range vendors {
		if vendorMatches(vendor, needle) {
			matched = append(matched, vendor)
		}
	}

	return matched, nil
}

// UpdateVendor replaces a vendor's fields.
func (s *vendorService) UpdateVendor(ctx context.Context, id int64, input *usecase.VendorInput) (*entity.Vendor, error) {
	existing, err := s.GetVendor(ctx, id)
	if err != nil {
		return nil, err
	}

	vendor := vendorFromInput(input)
	vendor.ID = id
	vendor.CreatedAt = existing.CreatedAt

	if err := s.vendors.Save(ctx, vendor); err != nil {
		return nil, fmt.Errorf("failed to update vendor: %w", err)
	}

	return vendor, nil
}

// DeleteVendor removes a vendor profile.
func (s *vendorService) DeleteVendor(ctx context.Context, id int64) error {
	if err := s.vendors.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domainerrors.ErrVendorNotFound
		}

		return fmt.Errorf("failed to delete vendor: %w", err)
	}

	return nil
}

func vendorMatches(vendor *entity.Vendor, needle string) bool {
	if strings.Contains(strconv.FormatInt(vendor.ID, 10), needle) {
		return true
	}

	for _, field := range []string{vendor.Name, vendor.PhoneNumber, vendor.Email} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}

	return false
}

func vendorFromInput(input *usecase.VendorInput) *entity.Vendor {
	return &entity.Vendor{
		Name:                input.Name,
		SupportedCategories: input.SupportedCategories,
		Image:               input.Image,
		Address1:            input.Address1,
		Address2:            input.Address2,
		State:               input.State,
		Landmark:            input.Landmark,
		Pincode:             input.Pincode,
		ContactName:         input.ContactName,
		PhoneNumber:         input.PhoneNumber,
		Email:               input.Email,
	}
}
