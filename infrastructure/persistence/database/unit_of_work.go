package database

import (
	"context"

	"github.com/xRenanMartins/ddd-tactical-modeling-and-patterns/domain/shared"
	"github.com/xRenanMartins/ddd-tactical-modeling-and-patterns/infrastructure/persistence"
	"github.com/xRenanMartins/ddd-tactical-modeling-and-patterns/infrastructure/persistence/retry"

	"gorm.io/gorm"
)

// UnitOfWork implements shared.UnitOfWork with a GORM transaction.
// Outbox rows written by event handlers during fn commit with the aggregates.
type UnitOfWork struct {
	db          *gorm.DB
	retryConfig retry.Config
}

// NewUnitOfWork creates a UnitOfWork using retry.DefaultConfig
func NewUnitOfWork(db *gorm.DB) *UnitOfWork {
	return &UnitOfWork{
		db:          db,
		retryConfig: retry.DefaultConfig,
	}
}

// SetRetryConfig updates the retry configuration for this UnitOfWork
func (u *UnitOfWork) SetRetryConfig(config retry.Config) {
	u.retryConfig = config
}

// Execute runs fn inside a transaction carried by the context it receives.
// A nested Execute joins the outer transaction. The whole unit is retried
// on deadlocks and lock timeouts, so fn must be safe to run again.
// Hooks registered with persistence.AfterCommit run once, after the commit
// of the successful attempt; a panic in fn rolls the transaction back.
func (u *UnitOfWork) Execute(ctx context.Context, fn func(ctx context.Context) error) error {
	if persistence.TxFromContext(ctx) != nil {
		return fn(ctx)
	}

	// each attempt gets its own hooks; a rolled back attempt drops them
	var hooks *persistence.AfterCommitHooks
	executeOnce := func(ctx context.Context) error {
		var txCtx context.Context
		txCtx, hooks = persistence.ContextWithAfterCommit(ctx)
		return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			return fn(persistence.ContextWithTx(txCtx, tx))
		})
	}

	if err := retry.ExecuteWithRetry(ctx, u.retryConfig, executeOnce); err != nil {
		return err
	}
	hooks.Run()
	return nil
}

// Compile-time check that UnitOfWork implements shared.UnitOfWork
var _ shared.UnitOfWork = (*UnitOfWork)(nil)
