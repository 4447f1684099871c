/*
Package application orchestrates the shop use cases.

Application services load aggregates through repositories, call their
behaviour and persist them inside one unit of work. Domain events go
through a dispatcher built per operation, so handlers that write to the
outbox join the same transaction as the aggregates.
*/
package application

import (
	"context"

	"github.com/xRenanMartins/ddd-tactical-modeling-and-patterns/domain/shared"
)

// EventBus builds the dispatcher for one operation running under ctx
type EventBus interface {
	Dispatcher(ctx context.Context) *shared.EventDispatcher
}

// NoopEventBus hands out dispatchers with no handlers
type NoopEventBus struct{}

func (NoopEventBus) Dispatcher(context.Context) *shared.EventDispatcher {
	return shared.NewEventDispatcher()
}
