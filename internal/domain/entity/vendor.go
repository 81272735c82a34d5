package entity

import (
	"encoding/json"
	"time"
)

// Vendor is a seller on the marketplace. SupportedCategories is an opaque
// JSON structure owned by the client.
type Vendor struct {
	ID                  int64
	Name                string
	SupportedCategories json.RawMessage
	Image               string
	Address1            string
	Address2            string
	State               string
	Landmark            string
	Pincode             string
	ContactName         string
	PhoneNumber         string
	Email               string
	CreatedAt           time.Time
}
