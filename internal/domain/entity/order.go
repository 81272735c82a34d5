package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus tracks an order through its lifecycle. New orders start PENDING.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusConfirmed OrderStatus = "CONFIRMED"
	OrderStatusPaid      OrderStatus = "PAID"
	OrderStatusShipped   OrderStatus = "SHIPPED"
	OrderStatusDelivered OrderStatus = "DELIVERED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
	OrderStatusRefunded  OrderStatus = "REFUNDED"
)

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the OrderStatus is a valid value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusPaid, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled, OrderStatusRefunded:
		return true
	default:
		return false
	}
}

// ParseOrderStatus coerces a request string into an OrderStatus. The ok flag
// is false when the input was unknown and PENDING was substituted.
func ParseOrderStatus(s string) (OrderStatus, bool) {
	status := OrderStatus(normalizeEnumToken(s))
	if status.IsValid() {
		return status, true
	}

	return OrderStatusPending, false
}

// PaymentMethod names how an order is paid for.
type PaymentMethod string

const (
	PaymentMethodCash         PaymentMethod = "CASH"
	PaymentMethodCard         PaymentMethod = "CARD"
	PaymentMethodWallet       PaymentMethod = "WALLET"
	PaymentMethodBankTransfer PaymentMethod = "BANK_TRANSFER"
	PaymentMethodPayNow       PaymentMethod = "PAYNOW"
	PaymentMethodOthers       PaymentMethod = "OTHERS"
)

// String returns the string representation of the PaymentMethod.
func (m PaymentMethod) String() string {
	return string(m)
}

// IsValid checks if the PaymentMethod is a valid value.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodWallet,
		PaymentMethodBankTransfer, PaymentMethodPayNow, PaymentMethodOthers:
		return true
	default:
		return false
	}
}

// ParsePaymentMethod coerces a request string into a PaymentMethod. The ok
// flag is false when the input was unknown and CARD was substituted.
func ParsePaymentMethod(s string) (PaymentMethod, bool) {
	m := PaymentMethod(normalizeEnumToken(s))
	if m.IsValid() {
		return m, true
	}

	return PaymentMethodCard, false
}

// DeliveryFlexibility states how strictly a requested delivery window binds.
type DeliveryFlexibility string

const (
	DeliveryStrict   DeliveryFlexibility = "STRICT"
	DeliveryFlexible DeliveryFlexibility = "FLEXIBLE"
)

// String returns the string representation of the DeliveryFlexibility.
func (f DeliveryFlexibility) String() string {
	return string(f)
}

// IsValid checks if the DeliveryFlexibility is a valid value.
func (f DeliveryFlexibility) IsValid() bool {
	switch f {
	case DeliveryStrict, DeliveryFlexible:
		return true
	default:
		return false
	}
}

// ParseDeliveryFlexibility coerces a request string into a
// DeliveryFlexibility. The ok flag is false when FLEXIBLE was substituted.
func ParseDeliveryFlexibility(s string) (DeliveryFlexibility, bool) {
	f := DeliveryFlexibility(normalizeEnumToken(s))
	if f.IsValid() {
		return f, true
	}

	return DeliveryFlexible, false
}

// Order is a purchase placed by a customer. It owns its item lines; the
// customer and optional delivery address are plain foreign-key references.
type Order struct {
	ID                    int64
	CustomerID            int64
	AddressID             *int64 // Optional delivery address reference.
	TotalAmount           decimal.Decimal
	Status                OrderStatus
	PaymentMethod         PaymentMethod
	RequestedDeliveryDate *time.Time
	DeliveryFlexibility   DeliveryFlexibility
	DeliverySlotStart     *string // "HH:MM:SS" wall-clock time.
	DeliverySlotEnd       *string
	Notes                 string
	Items                 []*OrderItem
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// SetItems replaces the owned item lines and stamps the back-reference on
// every child.
func (o *Order) SetItems(items []*OrderItem) {
	for _, item := range items {
		item.OrderID = o.ID
	}
	o.Items = items
}
