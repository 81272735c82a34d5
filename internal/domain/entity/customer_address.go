package entity

import (
	"encoding/json"
	"time"
)

// AddressType classifies an entry in a customer's address book.
type AddressType string

const (
	AddressTypeHome     AddressType = "HOME"
	AddressTypeOffice   AddressType = "OFFICE"
	AddressTypeShipping AddressType = "SHIPPING"
	AddressTypeBilling  AddressType = "BILLING"
	AddressTypeOther    AddressType = "OTHER"
)

// String returns the string representation of the AddressType.
func (t AddressType) String() string {
	return string(t)
}

// IsValid checks if the AddressType is a valid value.
func (t AddressType) IsValid() bool {
	switch t {
	case AddressTypeHome, AddressTypeOffice, AddressTypeShipping, AddressTypeBilling, AddressTypeOther:
		return true
	default:
		return false
	}
}

// ParseAddressType coerces a request string into an AddressType. The second
// return value reports whether the input named a known type; when false the
// HOME default was substituted, so callers can tell an explicit HOME apart
// from a silently defaulted one.
func ParseAddressType(s string) (AddressType, bool) {
	t := AddressType(normalizeEnumToken(s))
	if t.IsValid() {
		return t, true
	}

	return AddressTypeHome, false
}

// CustomerAddress is a single entry in a customer's address book. It belongs
// to exactly one customer and is removed together with it.
type CustomerAddress struct {
	ID         int64
	CustomerID int64
	Type       AddressType
	Street     string
	Unit       string
	City       string
	Postal     string
	Country    string
	IsDefault  bool
	Metadata   json.RawMessage // Opaque blob, stored as-is.
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
