package order

// OrderItemRequest line payload; name and price are taken from the product
type OrderItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,gt=0"`
}

// PlaceOrderRequest place order payload
type PlaceOrderRequest struct {
	CustomerID string             `json:"customer_id" binding:"required"`
	Items      []OrderItemRequest `json:"items" binding:"required,dive"`
}

// OrderItemResponse order line view
type OrderItemResponse struct {
	ID        string  `json:"id"`
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Total     float64 `json:"total"`
}

// OrderResponse order view
type OrderResponse struct {
	ID         string              `json:"id"`
	CustomerID string              `json:"customer_id"`
	Items      []OrderItemResponse `json:"items"`
	Total      float64             `json:"total"`
}

// OrderListResponse every order plus the grand total
type OrderListResponse struct {
	Orders []*OrderResponse `json:"orders"`
	Total  float64          `json:"total"`
}
