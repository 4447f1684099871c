package eventhandler

import (
	"context"
	"fmt"

	"github.com/xRenanMartins/ddd-tactical-modeling-and-patterns/domain/product"
	"github.com/xRenanMartins/ddd-tactical-modeling-and-patterns/domain/shared"
	"github.com/xRenanMartins/ddd-tactical-modeling-and-patterns/infrastructure/persistence"
	"github.com/xRenanMartins/ddd-tactical-modeling-and-patterns/pkg/logger"

	"go.uber.org/zap"
)

// Mailer sends notification emails
type Mailer interface {
	Send(ctx context.Context, subject, body string) error
}

// LogMailer stands in for a real mail gateway and only logs what it would send
type LogMailer struct{}

func (LogMailer) Send(ctx context.Context, subject, body string) error {
	logger.FromContext(ctx).Info("email sent",
		zap.String("subject", subject),
		zap.String("body", body),
	)
	return nil
}

// ProductCreatedEmailHandler notifies by email that a product was created.
// The email leaves only after the unit of work in ctx commits, once per
// committed product; a send failure is logged and cannot undo the commit.
type ProductCreatedEmailHandler struct {
	ctx    context.Context
	mailer Mailer
}

func NewProductCreatedEmailHandler(ctx context.Context, mailer Mailer) *ProductCreatedEmailHandler {
	return &ProductCreatedEmailHandler{ctx: ctx, mailer: mailer}
}

func (h *ProductCreatedEmailHandler) Handle(event shared.Event) error {
	payload, ok := event.Payload().(product.CreatedPayload)
	if !ok {
		return fmt.Errorf("unexpected %s payload %T", event.Kind(), event.Payload())
	}

	body := fmt.Sprintf("Sending an email to notify that the product %s was created.", payload.Name)
	persistence.AfterCommit(h.ctx, func() {
		if err := h.mailer.Send(h.ctx, "Product created", body); err != nil {
			logger.FromContext(h.ctx).Error("product created email failed",
				zap.String("product_id", payload.ID),
				zap.Error(err),
			)
		}
	})
	return nil
}
