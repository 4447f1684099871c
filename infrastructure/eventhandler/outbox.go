package eventhandler

import (
	"context"

	"github.com/xRenanMartins/ddd-tactical-modeling-and-patterns/domain/shared"
)

// OutboxStore persists events for asynchronous relay
type OutboxStore interface {
	SaveEvent(ctx context.Context, event shared.Event) error
}

// OutboxHandler writes every event it receives to the outbox.
// It is bound to the context of one unit of work so the row commits with it.
type OutboxHandler struct {
	ctx   context.Context
	store OutboxStore
}

func NewOutboxHandler(ctx context.Context, store OutboxStore) *OutboxHandler {
	return &OutboxHandler{ctx: ctx, store: store}
}

func (h *OutboxHandler) Handle(event shared.Event) error {
	return h.store.SaveEvent(h.ctx, event)
}
