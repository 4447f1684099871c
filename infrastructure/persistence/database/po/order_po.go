package po

import (
	"github.com/xRenanMartins/ddd-tactical-modeling-and-patterns/domain/order"
)

// OrderPO Order persistence object
// Note: Only used for database mapping; GORM associations are not declared
// so the aggregate boundary stays in the repository.
type OrderPO struct {
	ID         string  `gorm:"primaryKey;size:64"`
	CustomerID string  `gorm:"size:64;index;not null"` // customers.id
	Total      float64 `gorm:"not null"`
}

func (OrderPO) TableName() string {
	return "orders"
}

// OrderItemPO Order line persistence object
// Position keeps the line order of the aggregate.
type OrderItemPO struct {
	ID        string  `gorm:"primaryKey;size:64"`
	OrderID   string  `gorm:"size:64;index;not null"` // orders.id
	ProductID string  `gorm:"size:64;index;not null"` // products.id
	Name      string  `gorm:"size:255;not null"`
	Price     float64 `gorm:"not null"`
	Quantity  int     `gorm:"not null"`
	Position  int     `gorm:"not null"`
}

func (OrderItemPO) TableName() string {
	return "order_items"
}

// FromOrderDomain Convert domain model to persistence objects
func FromOrderDomain(o *order.Order) (*OrderPO, []OrderItemPO) {
	orderPO := &OrderPO{
		ID:         o.ID(),
		CustomerID: o.CustomerID(),
		Total:      o.Total(),
	}

	items := o.Items()
	itemPOs := make([]OrderItemPO, len(items))
	for i, item := range items {
		itemPOs[i] = OrderItemPO{
			ID:        item.ID(),
			OrderID:   o.ID(),
			ProductID: item.ProductID(),
			Name:      item.Name(),
			Price:     item.Price(),
			Quantity:  item.Quantity(),
			Position:  i,
		}
	}
	return orderPO, itemPOs
}

// ToDomain rebuilds the order; itemPOs must already be sorted by position
func (p *OrderPO) ToDomain(itemPOs []OrderItemPO) (*order.Order, error) {
	items := make([]order.OrderItem, len(itemPOs))
	for i, itemPO := range itemPOs {
		item, err := order.RebuildItemFromDTO(order.ItemReconstructionDTO{
			ID:        itemPO.ID,
			Name:      itemPO.Name,
			Price:     itemPO.Price,
			ProductID: itemPO.ProductID,
			Quantity:  itemPO.Quantity,
		})
		if err != nil {
			return nil, err
		}
		items[i] = item
	}

	return order.RebuildFromDTO(order.ReconstructionDTO{
		ID:         p.ID,
		CustomerID: p.CustomerID,
		Items:      items,
	})
}
