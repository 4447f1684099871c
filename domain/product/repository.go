package product

import "context"

// Repository Product repository interface
type Repository interface {
	Create(ctx context.Context, p *Product) error

	// Update overwrites name and price; shared.ErrNotFound when the row is missing
	Update(ctx context.Context, p *Product) error

	Find(ctx context.Context, id string) (*Product, error)

	// FindAll returns every product ordered by id
	FindAll(ctx context.Context) ([]*Product, error)

	Delete(ctx context.Context, id string) error
}
