package product

// CreateProductRequest create product payload; ID is generated when empty
type CreateProductRequest struct {
	ID    string   `json:"id"`
	Name  string   `json:"name" binding:"required"`
	Price *float64 `json:"price" binding:"required"`
}

// UpdateProductRequest fields left nil keep their current value
type UpdateProductRequest struct {
	Name  *string  `json:"name"`
	Price *float64 `json:"price"`
}

// ProductResponse product view
type ProductResponse struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}
