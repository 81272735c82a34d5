package model

import (
	"time"

	"gorm.io/datatypes"
)

// CustomerModel is the GORM-specific struct for the 'customers' table.
type CustomerModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	FirstName string `gorm:"type:varchar(100);not null"`
	LastName  string `gorm:"type:varchar(100);not null"`
	Email     string `gorm:"type:varchar(255);not null;uniqueIndex"`
	Phone     string `gorm:"type:varchar(20);uniqueIndex"`
	CreatedAt time.Time
	UpdatedAt time.Time

	// Owned collection: rows are deleted with the customer.
	Addresses []*CustomerAddressModel `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (CustomerModel) TableName() string {
	return "customers"
}

// PrimaryKey returns the surrogate key.
func (m *CustomerModel) PrimaryKey() int64 {
	return m.ID
}

// CustomerAddressModel is the GORM-specific struct for the
// 'customer_addresses' table.
type CustomerAddressModel struct {
	ID         int64  `gorm:"primaryKey;autoIncrement"`
	CustomerID int64  `gorm:"not null;index"`
	Type       string `gorm:"type:varchar(20);not null;default:HOME"`
	Street     string `gorm:"type:varchar(255)"`
	Unit       string `gorm:"type:varchar(50)"`
	City       string `gorm:"type:varchar(100)"`
	Postal     string `gorm:"type:varchar(20)"`
	Country    string `gorm:"type:varchar(100)"`
	IsDefault  bool   `gorm:"not null;default:false"`
	Metadata   datatypes.JSON
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (CustomerAddressModel) TableName() string {
	return "customer_addresses"
}

// PrimaryKey returns the surrogate key.
func (m *CustomerAddressModel) PrimaryKey() int64 {
	return m.ID
}
