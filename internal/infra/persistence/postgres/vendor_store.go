package postgres

import (
	"encoding/json"

	"souk/internal/domain/entity"
	"souk/internal/domain/repository"
	"souk/internal/infra/persistence/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// NewVendorStore instantiates the generic store for vendors.
func NewVendorStore(db *gorm.DB) repository.Store[entity.Vendor] {
	return NewStore(db, fromVendorDomain, toVendorDomain, (*model.VendorModel).PrimaryKey)
}

// --- Mapper Functions ---

// toVendorDomain converts a GORM VendorModel to a domain Vendor entity.
func toVendorDomain(data *model.VendorModel) *entity.Vendor {
	if data == nil {
		return nil
	}

	return &entity.Vendor{
		ID:                  data.ID,
		Name:                data.Name,
		SupportedCategories: json.RawMessage(data.SupportedCategories),
		Image:               data.Image,
		Address1:            data.Address1,
		Address2:            data.Address2,
		State:               data.State,
		Landmark:            data.Landmark,
		Pincode:             data.Pincode,
		ContactName:         data.ContactName,
		PhoneNumber:         data.PhoneNumber,
		Email:               data.Email,
		CreatedAt:           data.CreatedAt,
	}
}

// fromVendorDomain converts a domain Vendor entity to a GORM VendorModel.
func fromVendorDomain(data *entity.Vendor) *model.VendorModel {
	if data == nil {
		return nil
	}

	return &model.VendorModel{
		ID:                  data.ID,
		Name:                data.Name,
		SupportedCategories: datatypes.JSON(data.SupportedCategories),
		Image:               data.Image,
		Address1:            data.Address1,
		Address2:            data.Address2,
		State:               data.State,
		Landmark:            data.Landmark,
		Pincode:             data.Pincode,
		ContactName:         data.ContactName,
		PhoneNumber:         data.PhoneNumber,
		Email:               data.Email,
		CreatedAt:           data.CreatedAt,
	}
}
