package model

import (
	"time"

	"gorm.io/datatypes"
)

// VendorModel is the GORM-specific struct for the 'vendor_details' table.
type VendorModel struct {
	ID                  int64  `gorm:"primaryKey;autoIncrement"`
	Name                string `gorm:"type:varchar(100);not null"`
	SupportedCategories datatypes.JSON
	Image               string `gorm:"type:varchar(300)"`
	Address1            string `gorm:"type:varchar(100)"`
	Address2            string `gorm:"type:varchar(100)"`
	State               string `gorm:"type:varchar(100)"`
	Landmark            string `gorm:"type:varchar(255)"`
	Pincode             string `gorm:"type:varchar(15)"`
	ContactName         string `gorm:"type:varchar(100)"`
	PhoneNumber         string `gorm:"type:varchar(20)"`
	Email               string `gorm:"type:varchar(100)"`
	CreatedAt           time.Time
}

// TableName explicitly sets the table name for GORM.
func (VendorModel) TableName() string {
	return "vendor_details"
}

// PrimaryKey returns the surrogate key.
func (m *VendorModel) PrimaryKey() int64 {
	return m.ID
}
