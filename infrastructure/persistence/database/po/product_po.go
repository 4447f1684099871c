package po

import (
	"github.com/xRenanMartins/ddd-tactical-modeling-and-patterns/domain/product"
)

// ProductPO Product persistence object
type ProductPO struct {
	ID    string  `gorm:"primaryKey;size:64"`
	Name  string  `gorm:"size:255;not null"`
	Price float64 `gorm:"not null"`
}

func (ProductPO) TableName() string {
	return "products"
}

func FromProductDomain(p *product.Product) *ProductPO {
	return &ProductPO{ID: p.ID(), Name: p.Name(), Price: p.Price()}
}

func (p *ProductPO) ToDomain() (*product.Product, error) {
	return product.RebuildFromDTO(product.ReconstructionDTO{ID: p.ID, Name: p.Name, Price: p.Price})
}
