package shared

import "context"

// UnitOfWork runs fn inside one transactional boundary.
// Repositories called with the ctx handed to fn join that boundary.
type UnitOfWork interface {
	Execute(ctx context.Context, fn func(ctx context.Context) error) error
}
