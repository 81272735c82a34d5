package entity

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Product is a vendor's sellable item. The three JSON fields are opaque
// structured blobs owned by the client; the backend stores them verbatim.
// A product owns its media rows.
type Product struct {
	ID              int64
	Name            string
	SKU             string // Unique.
	Price           decimal.Decimal
	VendorID        int64
	Available       bool
	CategoryDetails json.RawMessage
	ImageMeta       json.RawMessage
	Schedule        json.RawMessage
	Media           []*ProductMedia
	CreatedAt       time.Time
	ScheduleUpdated time.Time
}

// SetMedia replaces the owned media list and stamps the back-reference on
// every child.
func (p *Product) SetMedia(media []*ProductMedia) {
	for _, m := range media {
		m.ProductID = p.ID
	}
	p.Media = media
}
