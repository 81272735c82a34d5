package entity

import "time"

// Customer is a buyer account. A customer owns its address book: addresses
// live and die with the customer, and replacing the address list removes
// the rows that are no longer referenced.
type Customer struct {
	ID        int64
	FirstName string
	LastName  string
	Email     string // Unique.
	Phone     string // Unique when set.
	Addresses []*CustomerAddress
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SetAddresses replaces the owned address list and stamps the back-reference
// on every child so the ownership link cannot drift out of sync.
func (c *Customer) SetAddresses(addresses []*CustomerAddress) {
	for _, addr := range addresses {
		addr.CustomerID = c.ID
	}
	c.Addresses = addresses
}
