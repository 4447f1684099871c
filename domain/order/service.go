package order

import (
	"math"

	"github.com/xRenanMartins/ddd-tactical-modeling-and-patterns/domain/customer"
	"github.com/xRenanMartins/ddd-tactical-modeling-and-patterns/domain/shared"
)

// PlaceOrder creates an order for c and credits half of its total, rounded
// down, as reward points. Persisting both aggregates is up to the caller.
func PlaceOrder(c *customer.Customer, orderID string, items []OrderItem) (*Order, error) {
	if len(items) == 0 {
		return nil, shared.NewValidationError("Order", "items", "Order must have at least one item")
	}

	o, err := NewOrder(orderID, c.ID(), items)
	if err != nil {
		return nil, err
	}

	if err := c.AddRewardPoints(int(math.Floor(o.Total() / 2))); err != nil {
		return nil, err
	}
	return o, nil
}

// Total sums the totals of orders
func Total(orders []*Order) float64 {
	var total float64
	for _, o := range orders {
		total += o.Total()
	}
	return total
}
