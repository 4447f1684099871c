package database

import (
	"context"
	"errors"

	"github.com/xRenanMartins/ddd-tactical-modeling-and-patterns/domain/product"
	"github.com/xRenanMartins/ddd-tactical-modeling-and-patterns/domain/shared"
	"github.com/xRenanMartins/ddd-tactical-modeling-and-patterns/infrastructure/persistence/database/po"

	"gorm.io/gorm"
)

// ProductRepository GORM implementation of product.Repository
type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) Create(ctx context.Context, p *product.Product) error {
	return conn(ctx, r.db).Create(po.FromProductDomain(p)).Error
}

func (r *ProductRepository) Update(ctx context.Context, p *product.Product) error {
	db := conn(ctx, r.db)
	result := db.Model(&po.ProductPO{}).
		Where("id = ?", p.ID()).
		Updates(map[string]interface{}{
			"name":  p.Name(),
			"price": p.Price(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := db.Model(&po.ProductPO{}).Where("id = ?", p.ID()).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return shared.NewNotFoundError("Product")
		}
	}
	return nil
}

func (r *ProductRepository) Find(ctx context.Context, id string) (*product.Product, error) {
	var productPO po.ProductPO
	if err := conn(ctx, r.db).First(&productPO, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError("Product")
		}
		return nil, err
	}
	return productPO.ToDomain()
}

func (r *ProductRepository) FindAll(ctx context.Context) ([]*product.Product, error) {
	var productPOs []po.ProductPO
	if err := conn(ctx, r.db).Order("id").Find(&productPOs).Error; err != nil {
		return nil, err
	}

	products := make([]*product.Product, len(productPOs))
	for i := range productPOs {
		p, err := productPOs[i].ToDomain()
		if err != nil {
			return nil, err
		}
		products[i] = p
	}
	return products, nil
}

func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	result := conn(ctx, r.db).Delete(&po.ProductPO{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.NewNotFoundError("Product")
	}
	return nil
}

// Compile-time interface implementation check
var _ product.Repository = (*ProductRepository)(nil)
