package order

import (
	"github.com/xRenanMartins/ddd-tactical-modeling-and-patterns/domain/shared"
)

// OrderItem Order line, an entity inside the Order aggregate
// It has no life of its own: it is stored, loaded and removed with its order.
type OrderItem struct {
	id        string
	name      string
	price     float64
	productID string
	quantity  int
}

// NewOrderItem creates a line for quantity units of productID at unit price price
func NewOrderItem(id, name string, price float64, productID string, quantity int) (OrderItem, error) {
	item := OrderItem{
		id:        id,
		name:      name,
		price:     price,
		productID: productID,
		quantity:  quantity,
	}
	if err := item.Validate(); err != nil {
		return OrderItem{}, err
	}
	return item, nil
}

// NewSingleOrderItem creates a line for a single unit
func NewSingleOrderItem(id, name string, price float64, productID string) (OrderItem, error) {
	return NewOrderItem(id, name, price, productID, 1)
}

// ItemReconstructionDTO Stored order line, repository use only
type ItemReconstructionDTO struct {
	ID        string
	Name      string
	Price     float64
	ProductID string
	Quantity  int
}

// RebuildItemFromDTO restores a stored line
func RebuildItemFromDTO(dto ItemReconstructionDTO) (OrderItem, error) {
	return NewOrderItem(dto.ID, dto.Name, dto.Price, dto.ProductID, dto.Quantity)
}

func (item OrderItem) Validate() error {
	if item.quantity <= 0 {
		return shared.NewValidationError("OrderItem", "quantity", "Quantity must be greater than 0")
	}
	if item.price < 0 {
		return shared.NewValidationError("OrderItem", "price", "Price must be greater than or equal to 0")
	}
	return nil
}

func (item OrderItem) ID() string        { return item.id }
func (item OrderItem) Name() string      { return item.name }
func (item OrderItem) Price() float64    { return item.price }
func (item OrderItem) ProductID() string { return item.productID }
func (item OrderItem) Quantity() int     { return item.quantity }

// Total line total, unit price times quantity
func (item OrderItem) Total() float64 {
	return item.price * float64(item.quantity)
}
