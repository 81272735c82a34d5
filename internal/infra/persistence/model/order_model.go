package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderModel is the GORM-specific struct for the 'orders' table.
type OrderModel struct {
	ID                    int64           `gorm:"primaryKey;autoIncrement"`
	CustomerID            int64           `gorm:"not null;index:idx_orders_customer"`
	AddressID             *int64          `gorm:"index"`
	TotalAmount           decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Status                string          `gorm:"type:varchar(20);not null;default:PENDING;index:idx_orders_status"`
	PaymentMethod         string          `gorm:"type:varchar(30);not null;default:CARD"`
	RequestedDeliveryDate *time.Time      `gorm:"type:date"`
	DeliveryFlexibility   string          `gorm:"type:varchar(20);default:FLEXIBLE"`
	DeliverySlotStart     *string         `gorm:"type:time"`
	DeliverySlotEnd       *string         `gorm:"type:time"`
	Notes                 string          `gorm:"type:text"`
	CreatedAt             time.Time       `gorm:"index:idx_orders_created_at"`
	UpdatedAt             time.Time

	// Owned collection: rows are deleted with the order.
	Items []*OrderItemModel `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// PrimaryKey returns the surrogate key.
func (m *OrderModel) PrimaryKey() int64 {
	return m.ID
}

// OrderItemModel is the GORM-specific struct for the 'order_items' table.
// Subtotal is a generated column; GORM only ever reads it.
type OrderItemModel struct {
	ID                    int64           `gorm:"primaryKey;autoIncrement"`
	OrderID               int64           `gorm:"not null;index"`
	ProductID             int64           `gorm:"not null"`
	Quantity              int             `gorm:"not null;default:1"`
	UnitPrice             decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Subtotal              decimal.Decimal `gorm:"->;type:numeric(10,2) GENERATED ALWAYS AS (quantity * unit_price) STORED"`
	RequestedDeliveryDate *time.Time      `gorm:"type:date"`
	DeliveryFlexibility   string          `gorm:"type:varchar(20);default:FLEXIBLE"`
	DeliverySlotStart     *string         `gorm:"type:time"`
	DeliverySlotEnd       *string         `gorm:"type:time"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}

// PrimaryKey returns the surrogate key.
func (m *OrderItemModel) PrimaryKey() int64 {
	return m.ID
}
