package postgres

import (
	"encoding/json"

	"souk/internal/domain/entity"
	"souk/internal/domain/repository"
	"souk/internal/infra/persistence/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// NewCustomerStore instantiates the generic store for customers. The address
// book is an owned collection: replaced lists are pruned of orphans, and the
// database cascade removes addresses with the customer.
func NewCustomerStore(db *gorm.DB) repository.Store[entity.Customer] {
	return NewStore(db, fromCustomerDomain, toCustomerDomain, (*model.CustomerModel).PrimaryKey,
		WithPreloads("Addresses"),
		WithOwnedCollection("Addresses", "customer_id", &model.CustomerAddressModel{}),
	)
}

// NewCustomerAddressStore instantiates the generic store for standalone
// address lookups (e.g. resolving an order's delivery address).
func NewCustomerAddressStore(db *gorm.DB) repository.Store[entity.CustomerAddress] {
	return NewStore(db, fromAddressDomain, toAddressDomain, (*model.CustomerAddressModel).PrimaryKey)
}

// --- Mapper Functions ---

// toCustomerDomain converts a GORM CustomerModel to a domain Customer entity.
func toCustomerDomain(data *model.CustomerModel) *entity.Customer {
	if data == nil {
		return nil
	}

	addresses := make([]*entity.CustomerAddress, 0, len(data.Addresses))
	for _, addrM := range data.Addresses {
		addresses = append(addresses, toAddressDomain(addrM))
	}

	return &entity.Customer{
		ID:        data.ID,
		FirstName: data.FirstName,
		LastName:  data.LastName,
		Email:     data.Email,
		Phone:     data.Phone,
		Addresses: addresses,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromCustomerDomain converts a domain Customer entity to a GORM CustomerModel.
func fromCustomerDomain(data *entity.Customer) *model.CustomerModel {
	if data == nil {
		return nil
	}

	addresses := make([]*model.CustomerAddressModel, 0, len(data.Addresses))
	for _, addr := range data.Addresses {
		addresses = append(addresses, fromAddressDomain(addr))
	}

	return &model.CustomerModel{
		ID:        data.ID,
		FirstName: data.FirstName,
		LastName:  data.LastName,
		Email:     data.Email,
		Phone:     data.Phone,
		Addresses: addresses,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// toAddressDomain converts a GORM CustomerAddressModel to a domain entity.
func toAddressDomain(data *model.CustomerAddressModel) *entity.CustomerAddress {
	if data == nil {
		return nil
	}

	addrType, _ := entity.ParseAddressType(data.Type)

	return &entity.CustomerAddress{
		ID:         data.ID,
		CustomerID: data.CustomerID,
		Type:       addrType,
		Street:     data.Street,
		Unit:       data.Unit,
		City:       data.City,
		Postal:     data.Postal,
		Country:    data.Country,
		IsDefault:  data.IsDefault,
		Metadata:   json.RawMessage(data.Metadata),
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

// fromAddressDomain converts a domain entity to a GORM CustomerAddressModel.
func fromAddressDomain(data *entity.CustomerAddress) *model.CustomerAddressModel {
	if data == nil {
		return nil
	}

	return &model.CustomerAddressModel{
		ID:         data.ID,
		CustomerID: data.CustomerID,
		Type:       data.Type.String(),
		Street:     data.Street,
		Unit:       data.Unit,
		City:       data.City,
		Postal:     data.Postal,
		Country:    data.Country,
		IsDefault:  data.IsDefault,
		Metadata:   datatypes.JSON(data.Metadata),
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
