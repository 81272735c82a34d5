package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItem is a single product line on an order. Subtotal is computed by
// the database (quantity * unit price) and is never written by the
// application.
type OrderItem struct {
	ID                    int64
	OrderID               int64
	ProductID             int64
	Quantity              int
	UnitPrice             decimal.Decimal
	Subtotal              decimal.Decimal // Read-only, DB-generated.
	RequestedDeliveryDate *time.Time
	DeliveryFlexibility   DeliveryFlexibility
	DeliverySlotStart     *string
	DeliverySlotEnd       *string
}
