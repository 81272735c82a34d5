package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// ProductModel is the GORM-specific struct for the 'products' table.
type ProductModel struct {
	ID              int64           `gorm:"primaryKey;autoIncrement"`
	Name            string          `gorm:"type:varchar(255);not null"`
	SKU             string          `gorm:"column:sku;type:varchar(100);not null;uniqueIndex"`
	Price           decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	VendorID        int64           `gorm:"not null;index"`
	Available       bool            `gorm:"not null;default:true"`
	CategoryDetails datatypes.JSON
	ImageMeta       datatypes.JSON
	Schedule        datatypes.JSON
	CreatedAt       time.Time
	ScheduleUpdated time.Time `gorm:"autoUpdateTime"`

	// Owned collection: rows are deleted with the product.
	Media []*ProductMediaModel `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// PrimaryKey returns the surrogate key.
func (m *ProductModel) PrimaryKey() int64 {
	return m.ID
}

// ProductMediaModel is the GORM-specific struct for the 'product_media'
// table. Images and videos share the row shape; the video-only columns stay
// NULL for images.
type ProductMediaModel struct {
	ID              int64  `gorm:"primaryKey;autoIncrement"`
	ProductID       int64  `gorm:"not null;index:idx_media_product"`
	Kind            string `gorm:"type:varchar(10);not null;default:IMAGE"`
	URL             string `gorm:"column:url;type:varchar(1000);not null"`
	Description     string `gorm:"type:varchar(500)"`
	Provider        string `gorm:"type:varchar(20);not null;default:LOCAL"`
	MimeType        string `gorm:"type:varchar(100)"`
	Width           int
	Height          int
	SizeKB          int    `gorm:"column:size_kb"`
	DurationSeconds int
	Resolution      string `gorm:"type:varchar(50)"`
	Status          string `gorm:"type:varchar(20);default:PENDING;index:idx_media_status"`
	ValidationError string `gorm:"type:text"`
	UploadedAt      time.Time `gorm:"autoCreateTime;index:idx_media_uploaded"`
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductMediaModel) TableName() string {
	return "product_media"
}

// PrimaryKey returns the surrogate key.
func (m *ProductMediaModel) PrimaryKey() int64 {
	return m.ID
}
