// Package product Product catalogue subdomain
package product

import (
	"github.com/xRenanMartins/ddd-tactical-modeling-and-patterns/domain/shared"
)

// EventKindCreated is emitted by the application once a product is stored
const EventKindCreated = "ProductCreated"

// CreatedPayload Payload of ProductCreated
type CreatedPayload struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// Product Product aggregate root
type Product struct {
	id    string
	name  string
	price float64
}

// NewProduct creates a validated product
func NewProduct(id, name string, price float64) (*Product, error) {
	p := &Product{id: id, name: name, price: price}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// ReconstructionDTO Stored product state, repository use only
type ReconstructionDTO struct {
	ID    string
	Name  string
	Price float64
}

// RebuildFromDTO restores a stored product
func RebuildFromDTO(dto ReconstructionDTO) (*Product, error) {
	return NewProduct(dto.ID, dto.Name, dto.Price)
}

func (p *Product) Validate() error {
	if p.id == "" {
		return shared.NewValidationError("Product", "id", "Id is required")
	}
	if p.name == "" {
		return shared.NewValidationError("Product", "name", "Name is required")
	}
	if p.price < 0 {
		return shared.NewValidationError("Product", "price", "Price must be greater than or equal to 0")
	}
	return nil
}

// ChangeName renames the product; invalid names leave it untouched
func (p *Product) ChangeName(name string) error {
	if name == "" {
		return shared.NewValidationError("Product", "name", "Name is required")
	}
	p.name = name
	return nil
}

// ChangePrice reprices the product; negative prices are rejected
func (p *Product) ChangePrice(price float64) error {
	if price < 0 {
		return shared.NewValidationError("Product", "price", "Price must be greater than or equal to 0")
	}
	p.price = price
	return nil
}

// CreatedEvent builds the ProductCreated event for p
func (p *Product) CreatedEvent() shared.Event {
	return shared.NewEvent(EventKindCreated, CreatedPayload{ID: p.id, Name: p.name, Price: p.price})
}

func (p *Product) ID() string     { return p.id }
func (p *Product) Name() string   { return p.name }
func (p *Product) Price() float64 { return p.price }

var _ shared.AggregateRoot = (*Product)(nil)
