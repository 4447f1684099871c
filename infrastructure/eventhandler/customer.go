// Package eventhandler holds the side effects wired to domain events.
package eventhandler

import (
	"fmt"

	"github.com/xRenanMartins/ddd-tactical-modeling-and-patterns/domain/customer"
	"github.com/xRenanMartins/ddd-tactical-modeling-and-patterns/domain/shared"
	"github.com/xRenanMartins/ddd-tactical-modeling-and-patterns/pkg/logger"

	"go.uber.org/zap"
)

// CustomerCreatedLogHandler records CustomerCreated in the application log.
// Two instances with different Variant values are registered by default.
type CustomerCreatedLogHandler struct {
	Variant string
}

func (h CustomerCreatedLogHandler) Handle(event shared.Event) error {
	payload, ok := event.Payload().(customer.CreatedPayload)
	if !ok {
		return fmt.Errorf("unexpected %s payload %T", event.Kind(), event.Payload())
	}

	logger.Info("customer created",
		zap.String("handler", h.Variant),
		zap.String("customer_id", payload.ID),
		zap.String("customer_name", payload.Name),
		zap.Time("occurred_at", event.OccurredAt()),
	)
	return nil
}

// AddressChangedLogHandler records CustomerAddressChanged in the application log
type AddressChangedLogHandler struct{}

func (AddressChangedLogHandler) Handle(event shared.Event) error {
	payload, ok := event.Payload().(customer.AddressChangedPayload)
	if !ok {
		return fmt.Errorf("unexpected %s payload %T", event.Kind(), event.Payload())
	}

	logger.Info("customer address changed",
		zap.String("customer_id", payload.ID),
		zap.String("customer_name", payload.Name),
		zap.String("address", payload.Address),
	)
	return nil
}
