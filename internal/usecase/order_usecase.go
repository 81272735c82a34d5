package usecase

import (
	"context"

	"souk/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// OrderItemInput carries one product line of an order. Delivery fields are
// optional per-line overrides of the order-level window.
type OrderItemInput struct {
	ID                    int64           `json:"id"`
	ProductID             int64           `json:"productId" validate:"required,gt=0"`
	Quantity              int             `json:"quantity" validate:"required,gt=0"`
	UnitPrice             decimal.Decimal `json:"unitPrice"`
	RequestedDeliveryDate string          `json:"requestedDeliveryDate"`
	DeliveryFlexibility   string          `json:"deliveryFlexibility"`
	DeliverySlotStart     *string         `json:"deliverySlotStart"`
	DeliverySlotEnd       *string         `json:"deliverySlotEnd"`
}

// OrderInput carries the client-supplied fields of an order. Dates use the
// "2006-01-02" form; unknown enum strings fall back to their defaults.
type OrderInput struct {
	CustomerID            int64             `json:"customerId" validate:"required,gt=0"`
	AddressID             *int64            `json:"addressId"`
	TotalAmount           decimal.Decimal   `json:"totalAmount"`
	Status                string            `json:"status"`
	PaymentMethod         string            `json:"paymentMethod"`
	RequestedDeliveryDate string            `json:"requestedDeliveryDate"`
	DeliveryFlexibility   string            `json:"deliveryFlexibility"`
	DeliverySlotStart     *string           `json:"deliverySlotStart"`
	DeliverySlotEnd       *string           `json:"deliverySlotEnd"`
	Notes                 string            `json:"notes"`
	Items                 []*OrderItemInput `json:"items" validate:"dive"`
}

// OrderUsecase defines the order management use cases.
type OrderUsecase interface {
	// CreateOrder places an order. The referenced customer must exist; the
	// item lines are persisted with the order.
	CreateOrder(ctx context.Context, input *OrderInput) (*entity.Order, error)

	// GetOrder retrieves one order with its item lines.
	GetOrder(ctx context.Context, id int64) (*entity.Order, error)

	// ListOrders returns every order with item lines.
	ListOrders(ctx context.Context) ([]*entity.Order, error)

	// UpdateOrder replaces the order's fields and item lines. Lines omitted
	// from the input are removed.
	UpdateOrder(ctx context.Context, id int64, input *OrderInput) (*entity.Order, error)

	// DeleteOrder removes the order and its item lines.
	DeleteOrder(ctx context.Context, id int64) error
}
