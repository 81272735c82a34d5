package postgres

import (
	"souk/internal/domain/entity"
	"souk/internal/domain/repository"
	"souk/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// NewOrderStore instantiates the generic store for orders. Item lines are an
// owned collection with the same orphan-removal lifecycle as the customer
// address book.
func NewOrderStore(db *gorm.DB) repository.Store[entity.Order] {
	return NewStore(db, fromOrderDomain, toOrderDomain, (*model.OrderModel).PrimaryKey,
		WithPreloads("Items"),
		WithOwnedCollection("Items", "order_id", &model.OrderItemModel{}),
	)
}

// --- Mapper Functions ---

// toOrderDomain converts a GORM OrderModel to a domain Order entity.
func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	status, _ := entity.ParseOrderStatus(data.Status)
	payment, _ := entity.ParsePaymentMethod(data.PaymentMethod)
	flexibility, _ := entity.ParseDeliveryFlexibility(data.DeliveryFlexibility)

	items := make([]*entity.OrderItem, 0, len(data.Items))
	for _, itemM := range data.Items {
		items = append(items, toOrderItemDomain(itemM))
	}

	return &entity.Order{
		ID:                    data.ID,
		CustomerID:            data.CustomerID,
		AddressID:             data.AddressID,
		TotalAmount:           data.TotalAmount,
		Status:                status,
		PaymentMethod:         payment,
		RequestedDeliveryDate: data.RequestedDeliveryDate,
		DeliveryFlexibility:   flexibility,
		DeliverySlotStart:     data.DeliverySlotStart,
		DeliverySlotEnd:       data.DeliverySlotEnd,
		Notes:                 data.Notes,
		Items:                 items,
		CreatedAt:             data.CreatedAt,
		UpdatedAt:             data.UpdatedAt,
	}
}

// fromOrderDomain converts a domain Order entity to a GORM OrderModel.
func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	items := make([]*model.OrderItemModel, 0, len(data.Items))
	for _, item := range data.Items {
		items = append(items, fromOrderItemDomain(item))
	}

	return &model.OrderModel{
		ID:                    data.ID,
		CustomerID:            data.CustomerID,
		AddressID:             data.AddressID,
		TotalAmount:           data.TotalAmount,
		Status:                data.Status.String(),
		PaymentMethod:         data.PaymentMethod.String(),
		RequestedDeliveryDate: data.RequestedDeliveryDate,
		DeliveryFlexibility:   data.DeliveryFlexibility.String(),
		DeliverySlotStart:     data.DeliverySlotStart,
		DeliverySlotEnd:       data.DeliverySlotEnd,
		Notes:                 data.Notes,
		Items:                 items,
		CreatedAt:             data.CreatedAt,
		UpdatedAt:             data.UpdatedAt,
	}
}

// toOrderItemDomain converts a GORM OrderItemModel to a domain entity.
func toOrderItemDomain(data *model.OrderItemModel) *entity.OrderItem {
	if data == nil {
		return nil
	}

	flexibility, _ := entity.ParseDeliveryFlexibility(data.DeliveryFlexibility)

	return &entity.OrderItem{
		ID:                    data.ID,
		OrderID:               data.OrderID,
		ProductID:             data.ProductID,
		Quantity:              data.Quantity,
		UnitPrice:             data.UnitPrice,
		Subtotal:              data.Subtotal,
		RequestedDeliveryDate: data.RequestedDeliveryDate,
		DeliveryFlexibility:   flexibility,
		DeliverySlotStart:     data.DeliverySlotStart,
		DeliverySlotEnd:       data.DeliverySlotEnd,
	}
}

// fromOrderItemDomain converts a domain entity to a GORM OrderItemModel.
// Subtotal is intentionally not mapped: the column is DB-generated.
func fromOrderItemDomain(data *entity.OrderItem) *model.OrderItemModel {
	if data == nil {
		return nil
	}

	return &model.OrderItemModel{
		ID:                    data.ID,
		OrderID:               data.OrderID,
		ProductID:             data.ProductID,
		Quantity:              data.Quantity,
		UnitPrice:             data.UnitPrice,
		RequestedDeliveryDate: data.RequestedDeliveryDate,
		DeliveryFlexibility:   data.DeliveryFlexibility.String(),
		DeliverySlotStart:     data.DeliverySlotStart,
		DeliverySlotEnd:       data.DeliverySlotEnd,
	}
}
