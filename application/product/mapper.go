package product

import (
	"github.com/xRenanMartins/ddd-tactical-modeling-and-patterns/domain/product"
)

func toProductResponse(p *product.Product) *ProductResponse {
	return &ProductResponse{
		ID:    p.ID(),
		Name:  p.Name(),
		Price: p.Price(),
	}
}
