package eventhandler

import (
	"context"

	"github.com/xRenanMartins/ddd-tactical-modeling-and-patterns/domain/customer"
	"github.com/xRenanMartins/ddd-tactical-modeling-and-patterns/domain/product"
	"github.com/xRenanMartins/ddd-tactical-modeling-and-patterns/domain/shared"
)

// Registry builds the dispatcher used by one application operation.
// Handlers that need the operation context (outbox, mailer) are bound to it.
type Registry struct {
	mailer Mailer
	outbox OutboxStore
}

// NewRegistry outbox may be nil to disable the outbox handler
func NewRegistry(mailer Mailer, outbox OutboxStore) *Registry {
	if mailer == nil {
		mailer = LogMailer{}
	}
	return &Registry{mailer: mailer, outbox: outbox}
}

// Dispatcher returns a fresh dispatcher with every handler registered
func (r *Registry) Dispatcher(ctx context.Context) *shared.EventDispatcher {
	d := shared.NewEventDispatcher()

	d.Register(customer.EventKindCreated, CustomerCreatedLogHandler{Variant: "first"})
	d.Register(customer.EventKindCreated, CustomerCreatedLogHandler{Variant: "second"})
	d.Register(customer.EventKindAddressChanged, AddressChangedLogHandler{})
	d.Register(product.EventKindCreated, NewProductCreatedEmailHandler(ctx, r.mailer))

	if r.outbox != nil {
		outbox := NewOutboxHandler(ctx, r.outbox)
		for _, kind := range []string{customer.EventKindCreated, customer.EventKindAddressChanged, product.EventKindCreated} {
			d.Register(kind, outbox)
		}
	}
	return d
}
