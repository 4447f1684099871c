package database

import (
	"context"
	"errors"

	"github.com/xRenanMartins/ddd-tactical-modeling-and-patterns/domain/order"
	"github.com/xRenanMartins/ddd-tactical-modeling-and-patterns/domain/shared"
	"github.com/xRenanMartins/ddd-tactical-modeling-and-patterns/infrastructure/persistence/database/po"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderRepository GORM implementation of order.Repository
// Orders and their lines are written together; GORM associations are not used.
type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// NextIdentity Generate new order ID
func (r *OrderRepository) NextIdentity() string {
	return uuid.Must(uuid.NewV7()).String()
}

// Create inserts the order row and one row per line
func (r *OrderRepository) Create(ctx context.Context, o *order.Order) error {
	orderPO, itemPOs := po.FromOrderDomain(o)

	return transaction(ctx, r.db, func(tx *gorm.DB) error {
		if err := tx.Create(orderPO).Error; err != nil {
			return err
		}
		if len(itemPOs) > 0 {
			if err := tx.Create(&itemPOs).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Update rewrites the order row, then replaces all of its lines
func (r *OrderRepository) Update(ctx context.Context, o *order.Order) error {
	orderPO, itemPOs := po.FromOrderDomain(o)

	return transaction(ctx, r.db, func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&po.OrderPO{}).Where("id = ?", orderPO.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return shared.NewNotFoundError("Order")
		}

		if err := tx.Model(&po.OrderPO{}).
			Where("id = ?", orderPO.ID).
			Updates(map[string]interface{}{
				"customer_id": orderPO.CustomerID,
				"total":       orderPO.Total,
			}).Error; err != nil {
			return err
		}

		// Simple strategy: delete then insert
		if err := tx.Where("order_id = ?", orderPO.ID).Delete(&po.OrderItemPO{}).Error; err != nil {
			return err
		}
		if len(itemPOs) > 0 {
			if err := tx.Create(&itemPOs).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Find loads the order row, then its lines by position
func (r *OrderRepository) Find(ctx context.Context, id string) (*order.Order, error) {
	db := conn(ctx, r.db)

	var orderPO po.OrderPO
	if err := db.First(&orderPO, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError("Order")
		}
		return nil, err
	}

	var itemPOs []po.OrderItemPO
	if err := db.Where("order_id = ?", id).Order("position").Find(&itemPOs).Error; err != nil {
		return nil, err
	}

	return orderPO.ToDomain(itemPOs)
}

// FindAll loads every order, fetching all lines with a single IN query
func (r *OrderRepository) FindAll(ctx context.Context) ([]*order.Order, error) {
	db := conn(ctx, r.db)

	var orderPOs []po.OrderPO
	if err := db.Order("id").Find(&orderPOs).Error; err != nil {
		return nil, err
	}
	if len(orderPOs) == 0 {
		return []*order.Order{}, nil
	}

	ids := make([]string, len(orderPOs))
	for i, orderPO := range orderPOs {
		ids[i] = orderPO.ID
	}

	var itemPOs []po.OrderItemPO
	if err := db.Where("order_id IN ?", ids).Order("order_id").Order("position").Find(&itemPOs).Error; err != nil {
		return nil, err
	}

	itemsByOrder := make(map[string][]po.OrderItemPO, len(orderPOs))
	for _, itemPO := range itemPOs {
		itemsByOrder[itemPO.OrderID] = append(itemsByOrder[itemPO.OrderID], itemPO)
	}

	orders := make([]*order.Order, len(orderPOs))
	for i := range orderPOs {
		o, err := orderPOs[i].ToDomain(itemsByOrder[orderPOs[i].ID])
		if err != nil {
			return nil, err
		}
		orders[i] = o
	}
	return orders, nil
}

// Delete removes the lines and the order row together
func (r *OrderRepository) Delete(ctx context.Context, id string) error {
	return transaction(ctx, r.db, func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).Delete(&po.OrderItemPO{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&po.OrderPO{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.NewNotFoundError("Order")
		}
		return nil
	})
}

// Compile-time interface implementation check
var _ order.Repository = (*OrderRepository)(nil)
