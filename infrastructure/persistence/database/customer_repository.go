package database

import (
	"context"
	"errors"

	"github.com/xRenanMartins/ddd-tactical-modeling-and-patterns/domain/customer"
	"github.com/xRenanMartins/ddd-tactical-modeling-and-patterns/domain/shared"
	"github.com/xRenanMartins/ddd-tactical-modeling-and-patterns/infrastructure/persistence/database/po"

	"gorm.io/gorm"
)

// CustomerRepository GORM implementation of customer.Repository
type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

func (r *CustomerRepository) Create(ctx context.Context, c *customer.Customer) error {
	return conn(ctx, r.db).Create(po.FromCustomerDomain(c)).Error
}

// Update rewrites every column, including NULL address columns and false flags
func (r *CustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	customerPO := po.FromCustomerDomain(c)
	db := conn(ctx, r.db)

	result := db.Model(&po.CustomerPO{}).
		Where("id = ?", customerPO.ID).
		Updates(customerPO.Columns())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return r.notFoundUnlessExists(db, customerPO.ID)
	}
	return nil
}

// notFoundUnlessExists MySQL reports zero affected rows for no-op updates
func (r *CustomerRepository) notFoundUnlessExists(db *gorm.DB, id string) error {
	var count int64
	if err := db.Model(&po.CustomerPO{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return shared.NewNotFoundError("Customer")
	}
	return nil
}

func (r *CustomerRepository) Find(ctx context.Context, id string) (*customer.Customer, error) {
	var customerPO po.CustomerPO
	if err := conn(ctx, r.db).First(&customerPO, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError("Customer")
		}
		return nil, err
	}
	return customerPO.ToDomain()
}

func (r *CustomerRepository) FindAll(ctx context.Context) ([]*customer.Customer, error) {
	var customerPOs []po.CustomerPO
	if err := conn(ctx, r.db).Order("id").Find(&customerPOs).Error; err != nil {
		return nil, err
	}

	customers := make([]*customer.Customer, len(customerPOs))
	for i := range customerPOs {
		c, err := customerPOs[i].ToDomain()
		if err != nil {
			return nil, err
		}
		customers[i] = c
	}
	return customers, nil
}

func (r *CustomerRepository) Delete(ctx context.Context, id string) error {
	result := conn(ctx, r.db).Delete(&po.CustomerPO{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.NewNotFoundError("Customer")
	}
	return nil
}

// Compile-time interface implementation check
var _ customer.Repository = (*CustomerRepository)(nil)
