package order

import (
	"github.com/xRenanMartins/ddd-tactical-modeling-and-patterns/domain/order"
)

func toOrderResponse(o *order.Order) *OrderResponse {
	items := o.Items()
	resp := &OrderResponse{
		ID:         o.ID(),
		CustomerID: o.CustomerID(),
		Items:      make([]OrderItemResponse, len(items)),
		Total:      o.Total(),
	}
	for i, item := range items {
		resp.Items[i] = OrderItemResponse{
			ID:        item.ID(),
			ProductID: item.ProductID(),
			Name:      item.Name(),
			Price:     item.Price(),
			Quantity:  item.Quantity(),
			Total:     item.Total(),
		}
	}
	return resp
}
