package customer

import "context"

// Repository Customer repository interface
type Repository interface {
	// Create persists a new customer
	Create(ctx context.Context, c *Customer) error

	// Update overwrites the stored row; shared.ErrNotFound when it does not exist
	Update(ctx context.Context, c *Customer) error

	// Find rebuilds the customer stored under id
	Find(ctx context.Context, id string) (*Customer, error)

	// FindAll returns every customer ordered by id
	FindAll(ctx context.Context) ([]*Customer, error)

	// Delete removes the customer; shared.ErrNotFound when nothing was removed
	Delete(ctx context.Context, id string) error
}
