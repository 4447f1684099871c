package order

import "context"

// Repository Order repository interface
// The order and its lines are always persisted together.
type Repository interface {
	// NextIdentity generates a new order id
	NextIdentity() string

	// Create stores the order row and one row per line in one transaction
	Create(ctx context.Context, o *Order) error

	// Update rewrites the order row and replaces all its lines in one transaction
	Update(ctx context.Context, o *Order) error

	// Find rebuilds the order with its lines in their original order
	Find(ctx context.Context, id string) (*Order, error)

	// FindAll returns every order ordered by id
	FindAll(ctx context.Context) ([]*Order, error)

	// Delete removes the order together with its lines
	Delete(ctx context.Context, id string) error
}
