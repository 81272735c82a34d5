package handler

import (
	"encoding/json"
	"time"

	"souk/internal/domain/entity"
	"souk/internal/domain/service"

	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// CuisineResponse is the wire shape of a cuisine catalogue entry.
type CuisineResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category,omitempty"`
	Subcategory string `json:"subcategory,omitempty"`
	Region      string `json:"region,omitempty"`
}

func toCuisineResponse(c *entity.Cuisine) *CuisineResponse {
	return &CuisineResponse{
		ID:          c.ID,
		Name:        c.Name,
		Category:    c.Category,
		Subcategory: c.Subcategory,
		Region:      c.Region,
	}
}

func toCuisineResponses(cuisines []*entity.Cuisine) []*CuisineResponse {
	out := make([]*CuisineResponse, 0, len(cuisines))
	for _, c := range cuisines {
		out = append(out, toCuisineResponse(c))
	}

	return out
}

// AddressResponse is the wire shape of a customer address.
type AddressResponse struct {
	ID        int64           `json:"id"`
	Type      string          `json:"type"`
	Street    string          `json:"street"`
	Unit      string          `json:"unit,omitempty"`
	City      string          `json:"city,omitempty"`
	Postal    string          `json:"postal,omitempty"`
	Country   string          `json:"country,omitempty"`
	IsDefault bool            `json:"isDefault"`
	Metadata  json.RawMessage `json:"metadata,omitempty"`
}

// CustomerResponse is the wire shape of a customer account.
type CustomerResponse struct {
	ID        int64              `json:"id"`
	FirstName string             `json:"firstName"`
	LastName  string             `json:"lastName,omitempty"`
	Email     string             `json:"email"`
	Phone     string             `json:"phone,omitempty"`
	Addresses []*AddressResponse `json:"addresses"`
	CreatedAt time.Time          `json:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt"`
}

func toCustomerResponse(c *entity.Customer) *CustomerResponse {
	addresses := make([]*AddressResponse, 0, len(c.Addresses))
	for _, a := range c.Addresses {
		addresses = append(addresses, &AddressResponse{
			ID:        a.ID,
			Type:      a.Type.String(),
			Street:    a.Street,
			Unit:      a.Unit,
			City:      a.City,
			Postal:    a.Postal,
			Country:   a.Country,
			IsDefault: a.IsDefault,
			Metadata:  a.Metadata,
		})
	}

	return &CustomerResponse{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
		Phone:     c.Phone,
		Addresses: addresses,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func toCustomerResponses(customers []*entity.Customer) []*CustomerResponse {
	out := make([]*CustomerResponse, 0, len(customers))
	for _, c := range customers {
		out = append(out, toCustomerResponse(c))
	}

	return out
}

// OrderItemResponse is the wire shape of one order line.
type OrderItemResponse struct {
	ID                    int64           `json:"id"`
	ProductID             int64           `json:"productId"`
	Quantity              int             `json:"quantity"`
	UnitPrice             decimal.Decimal `json:"unitPrice"`
	Subtotal              decimal.Decimal `json:"subtotal"`
	RequestedDeliveryDate string          `json:"requestedDeliveryDate,omitempty"`
	DeliveryFlexibility   string          `json:"deliveryFlexibility"`
	DeliverySlotStart     *string         `json:"deliverySlotStart,omitempty"`
	DeliverySlotEnd       *string         `json:"deliverySlotEnd,omitempty"`
}

// OrderResponse is the wire shape of an order.
type OrderResponse struct {
	ID                    int64                `json:"id"`
	CustomerID            int64                `json:"customerId"`
	AddressID             *int64               `json:"addressId,omitempty"`
	TotalAmount           decimal.Decimal      `json:"totalAmount"`
	Status                string               `json:"status"`
	PaymentMethod         string               `json:"paymentMethod"`
	RequestedDeliveryDate string               `json:"requestedDeliveryDate,omitempty"`
	DeliveryFlexibility   string               `json:"deliveryFlexibility"`
	DeliverySlotStart     *string              `json:"deliverySlotStart,omitempty"`
	DeliverySlotEnd       *string              `json:"deliverySlotEnd,omitempty"`
	Notes                 string               `json:"notes,omitempty"`
	Items                 []*OrderItemResponse `json:"items"`
	CreatedAt             time.Time            `json:"createdAt"`
	UpdatedAt             time.Time            `json:"updatedAt"`
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}

	return t.Format(dateLayout)
}

func toOrderResponse(o *entity.Order) *OrderResponse {
	items := make([]*OrderItemResponse, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, &OrderItemResponse{
			ID:                    item.ID,
			ProductID:             item.ProductID,
			Quantity:              item.Quantity,
			UnitPrice:             item.UnitPrice,
			Subtotal:              item.Subtotal,
			RequestedDeliveryDate: formatDate(item.RequestedDeliveryDate),
			DeliveryFlexibility:   item.DeliveryFlexibility.String(),
			DeliverySlotStart:     item.DeliverySlotStart,
			DeliverySlotEnd:       item.DeliverySlotEnd,
		})
	}

	return &OrderResponse{
		ID:                    o.ID,
		CustomerID:            o.CustomerID,
		AddressID:             o.AddressID,
		TotalAmount:           o.TotalAmount,
		Status:                o.Status.String(),
		PaymentMethod:         o.PaymentMethod.String(),
		RequestedDeliveryDate: formatDate(o.RequestedDeliveryDate),
		DeliveryFlexibility:   o.DeliveryFlexibility.String(),
		DeliverySlotStart:     o.DeliverySlotStart,
		DeliverySlotEnd:       o.DeliverySlotEnd,
		Notes:                 o.Notes,
		Items:                 items,
		CreatedAt:             o.CreatedAt,
		UpdatedAt:             o.UpdatedAt,
	}
}

func toOrderResponses(orders []*entity.Order) []*OrderResponse {
	out := make([]*OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrderResponse(o))
	}

	return out
}

// MediaResponse is the wire shape of a product media row.
type MediaResponse struct {
	ID              int64     `json:"id"`
	ProductID       int64     `json:"productId"`
	Kind            string    `json:"kind"`
	URL             string    `json:"url"`
	Description     string    `json:"description,omitempty"`
	Provider        string    `json:"provider"`
	MimeType        string    `json:"mimeType,omitempty"`
	Width           int       `json:"width,omitempty"`
	Height          int       `json:"height,omitempty"`
	SizeKB          int       `json:"sizeKb,omitempty"`
	DurationSeconds int       `json:"durationSeconds,omitempty"`
	Resolution      string    `json:"resolution,omitempty"`
	Status          string    `json:"status"`
	ValidationError string    `json:"validationError,omitempty"`
	UploadedAt      time.Time `json:"uploadedAt"`
}

func toMediaResponse(m *entity.ProductMedia) *MediaResponse {
	return &MediaResponse{
		ID:              m.ID,
		ProductID:       m.ProductID,
		Kind:            m.Kind.String(),
		URL:             m.URL,
		Description:     m.Description,
		Provider:        m.Provider.String(),
		MimeType:        m.MimeType,
		Width:           m.Width,
		Height:          m.Height,
		SizeKB:          m.SizeKB,
		DurationSeconds: m.DurationSeconds,
		Resolution:      m.Resolution,
		Status:          m.Status.String(),
		ValidationError: m.ValidationError,
		UploadedAt:      m.UploadedAt,
	}
}

func toMediaResponses(media []*entity.ProductMedia) []*MediaResponse {
	out := make([]*MediaResponse, 0, len(media))
	for _, m := range media {
		out = append(out, toMediaResponse(m))
	}

	return out
}

// ProductResponse is the wire shape of a product.
type ProductResponse struct {
	ID              int64            `json:"id"`
	Name            string           `json:"name"`
	SKU             string           `json:"sku"`
	Price           decimal.Decimal  `json:"price"`
	VendorID        int64            `json:"vendorId"`
	Available       bool             `json:"available"`
	CategoryDetails json.RawMessage  `json:"categoryDetails,omitempty"`
	ImageMeta       json.RawMessage  `json:"imageMeta,omitempty"`
	Schedule        json.RawMessage  `json:"schedule,omitempty"`
	Media           []*MediaResponse `json:"media"`
	CreatedAt       time.Time        `json:"createdAt"`
	ScheduleUpdated time.Time        `json:"scheduleUpdated"`
}

func toProductResponse(p *entity.Product) *ProductResponse {
	return &ProductResponse{
		ID:              p.ID,
		Name:            p.Name,
		SKU:             p.SKU,
		Price:           p.Price,
		VendorID:        p.VendorID,
		Available:       p.Available,
		CategoryDetails: p.CategoryDetails,
		ImageMeta:       p.ImageMeta,
		Schedule:        p.Schedule,
		Media:           toMediaResponses(p.Media),
		CreatedAt:       p.CreatedAt,
		ScheduleUpdated: p.ScheduleUpdated,
	}
}

func toProductResponses(products []*entity.Product) []*ProductResponse {
	out := make([]*ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}

	return out
}

// VendorResponse is the wire shape of a vendor profile.
type VendorResponse struct {
	ID                  int64           `json:"id"`
	Name                string          `json:"name"`
	SupportedCategories json.RawMessage `json:"supportedCategories,omitempty"`
	Image               string          `json:"image,omitempty"`
	Address1            string          `json:"address1,omitempty"`
	Address2            string          `json:"address2,omitempty"`
	State               string          `json:"state,omitempty"`
	Landmark            string          `json:"landmark,omitempty"`
	Pincode             string          `json:"pincode,omitempty"`
	ContactName         string          `json:"contactName,omitempty"`
	PhoneNumber         string          `json:"phoneNumber,omitempty"`
	Email               string          `json:"email,omitempty"`
	CreatedAt           time.Time       `json:"createdAt"`
}

func toVendorResponse(v *entity.Vendor) *VendorResponse {
	return &VendorResponse{
		ID:                  v.ID,
		Name:                v.Name,
		SupportedCategories: v.SupportedCategories,
		Image:               v.Image,
		Address1:            v.Address1,
		Address2:            v.Address2,
		State:               v.State,
		Landmark:            v.Landmark,
		Pincode:             v.Pincode,
		ContactName:         v.ContactName,
		PhoneNumber:         v.PhoneNumber,
		Email:               v.Email,
		CreatedAt:           v.CreatedAt,
	}
}

func toVendorResponses(vendors []*entity.Vendor) []*VendorResponse {
	out := make([]*VendorResponse, 0, len(vendors))
	for _, v := range vendors {
		out = append(out, toVendorResponse(v))
	}

	return out
}

// PreviewResponse is the wire shape of a preview fetch result.
type PreviewResponse struct {
	LocalURL  string `json:"localUrl"`
	MimeType  string `json:"mimeType,omitempty"`
	SizeBytes int64  `json:"sizeBytes"`
	Cached    bool   `json:"cached"`
}

func toPreviewResponse(r *service.PreviewResult) *PreviewResponse {
	return &PreviewResponse{
		LocalURL:  r.LocalURL,
		MimeType:  r.MimeType,
		SizeBytes: r.SizeBytes,
		Cached:    r.Cached,
	}
}
