// Package model contains the GORM-specific structs for the souk tables.
package model

// CuisineModel is the GORM-specific struct for the 'cuisines' table.
type CuisineModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Name        string `gorm:"type:varchar(100);not null;uniqueIndex:uq_cuisine,priority:1"`
	Category    string `gorm:"type:varchar(100);uniqueIndex:uq_cuisine,priority:2"`
	Subcategory string `gorm:"type:varchar(100);uniqueIndex:uq_cuisine,priority:3"`
	Region      string `gorm:"type:varchar(100);uniqueIndex:uq_cuisine,priority:4"`
}

// TableName explicitly sets the table name for GORM.
func (CuisineModel) TableName() string {
	return "cuisines"
}

// PrimaryKey returns the surrogate key, satisfying the generic store's
// record contract.
func (m *CuisineModel) PrimaryKey() int64 {
	return m.ID
}
