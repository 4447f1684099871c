package po

import (
	"github.com/xRenanMartins/ddd-tactical-modeling-and-patterns/domain/customer"
)

// CustomerPO Customer persistence object
// The address columns are NULL for customers without an address.
type CustomerPO struct {
	ID           string  `gorm:"primaryKey;size:64"`
	Name         string  `gorm:"size:255;not null"`
	Street       *string `gorm:"size:255"`
	Number       *int
	Zipcode      *string `gorm:"size:32"`
	City         *string `gorm:"size:128"`
	Active       bool    `gorm:"not null"`
	RewardPoints int     `gorm:"not null"`
}

func (CustomerPO) TableName() string {
	return "customers"
}

// FromCustomerDomain Convert domain model to persistence object
func FromCustomerDomain(c *customer.Customer) *CustomerPO {
	p := &CustomerPO{
		ID:           c.ID(),
		Name:         c.Name(),
		Active:       c.IsActive(),
		RewardPoints: c.RewardPoints(),
	}
	if addr, ok := c.Address(); ok {
		street, number, zip, city := addr.Street(), addr.Number(), addr.Zip(), addr.City()
		p.Street = &street
		p.Number = &number
		p.Zipcode = &zip
		p.City = &city
	}
	return p
}

// ToDomain Convert persistence object to domain model
func (p *CustomerPO) ToDomain() (*customer.Customer, error) {
	dto := customer.ReconstructionDTO{
		ID:           p.ID,
		Name:         p.Name,
		Active:       p.Active,
		RewardPoints: p.RewardPoints,
	}
	if p.Street != nil {
		addr, err := customer.NewAddress(deref(p.Street), derefInt(p.Number), deref(p.Zipcode), deref(p.City))
		if err != nil {
			return nil, err
		}
		dto.Address = &addr
	}
	return customer.RebuildFromDTO(dto)
}

// Columns rewritten by an update, zero values included
func (p *CustomerPO) Columns() map[string]interface{} {
	return map[string]interface{}{
		"name":          p.Name,
		"street":        p.Street,
		"number":        p.Number,
		"zipcode":       p.Zipcode,
		"city":          p.City,
		"active":        p.Active,
		"reward_points": p.RewardPoints,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefInt(n *int) int {
	if n == nil {
		return 0
	}
	return *n
}
