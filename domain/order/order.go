/*
Package order Order subdomain

An Order belongs to one customer by id and exclusively owns its lines.
Every modification goes through the Order so that the cached total always
matches the lines it holds.
*/
package order

import (
	"github.com/xRenanMartins/ddd-tactical-modeling-and-patterns/domain/shared"
)

// Order Order aggregate root
type Order struct {
	id         string
	customerID string
	items      []OrderItem
	total      float64
}

// NewOrder creates a validated order owning a copy of items.
// Checks run in order id, customer, items, item quantities.
func NewOrder(id, customerID string, items []OrderItem) (*Order, error) {
	o := &Order{
		id:         id,
		customerID: customerID,
		items:      cloneItems(items),
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}
	o.total = o.computeTotal()
	return o, nil
}

// ReconstructionDTO Stored order state, repository use only
type ReconstructionDTO struct {
	ID         string
	CustomerID string
	Items      []OrderItem
}

// RebuildFromDTO restores a stored order and recomputes its total
func RebuildFromDTO(dto ReconstructionDTO) (*Order, error) {
	return NewOrder(dto.ID, dto.CustomerID, dto.Items)
}

func (o *Order) Validate() error {
	return validate(o.id, o.customerID, o.items)
}

func validate(id, customerID string, items []OrderItem) error {
	if id == "" {
		return shared.NewValidationError("Order", "id", "Id is required")
	}
	if customerID == "" {
		return shared.NewValidationError("Order", "customerID", "CustomerID is required")
	}
	if len(items) == 0 {
		return shared.NewValidationError("Order", "items", "Items are required")
	}
	for _, item := range items {
		if item.quantity <= 0 {
			return shared.NewValidationError("Order", "items", "Quantity must be greater than 0")
		}
	}
	return nil
}

// AddItem appends item. The candidate line set is validated first, so a
// rejected item leaves the order untouched.
func (o *Order) AddItem(item OrderItem) error {
	candidate := make([]OrderItem, 0, len(o.items)+1)
	candidate = append(candidate, o.items...)
	candidate = append(candidate, item)

	if err := validate(o.id, o.customerID, candidate); err != nil {
		return err
	}
	if err := item.Validate(); err != nil {
		return err
	}

	o.items = candidate
	o.total = o.computeTotal()
	return nil
}

func (o *Order) computeTotal() float64 {
	var total float64
	for _, item := range o.items {
		total += item.Total()
	}
	return total
}

func (o *Order) ID() string         { return o.id }
func (o *Order) CustomerID() string { return o.customerID }

// Total sum of the line totals
func (o *Order) Total() float64 { return o.total }

// Items returns a copy of the order lines
func (o *Order) Items() []OrderItem {
	return cloneItems(o.items)
}

func cloneItems(items []OrderItem) []OrderItem {
	if items == nil {
		return nil
	}
	out := make([]OrderItem, len(items))
	copy(out, items)
	return out
}

var _ shared.AggregateRoot = (*Order)(nil)
