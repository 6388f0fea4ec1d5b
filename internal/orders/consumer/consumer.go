package consumer

import (
	"context"
	"errors"
	"fmt"

	attributionProcessor "affiliate-server/internal/attribution/processor"
	"affiliate-server/internal/clients/kafka"
	commissionProcessor "affiliate-server/internal/commission/processor"
	"affiliate-server/internal/observability"
)

// OrderConsumer drives attribution and commission computation from the
// commerce platform's order event stream. It is the asynchronous twin of the
// order hooks: both paths converge on the same processors, and the duplicate
// guards there make redelivered events harmless.
type OrderConsumer struct {
	consumer    *kafka.Consumer
	attribution attributionProcessor.AttributionProcessor
	commission  commissionProcessor.CommissionProcessor
	logger      *observability.Logger
}

func New(consumer *kafka.Consumer, attribution attributionProcessor.AttributionProcessor,
	commission commissionProcessor.CommissionProcessor, logger *observability.Logger) OrderConsumer {
	return OrderConsumer{
		consumer:    consumer,
		attribution: attribution,
		commission:  commission,
		logger:      logger,
	}
}

// Run blocks consuming order events until ctx is cancelled.
func (o *OrderConsumer) Run(ctx context.Context) error {
	return o.consumer.ConsumeOrderEvents(ctx, o.handleEvent)
}

func (o *OrderConsumer) handleEvent(ctx context.Context, event kafka.OrderEvent) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "order_id", Value: event.OrderID},
		observability.Field{Key: "event_type", Value: event.EventType},
	)

	switch event.EventType {
	case kafka.EventOrderCompleted:
		return o.handleOrderCompleted(ctx, event)
	case kafka.EventOrderRefunded:
		return o.attribution.Reverse(ctx, event.OrderID)
	default:
		o.logger.Info(ctx, "ignoring unrecognized order event type")
		return nil
	}
}

func (o *OrderConsumer) handleOrderCompleted(ctx context.Context, event kafka.OrderEvent) error {
	attribution, err := o.attribution.Resolve(ctx, attributionProcessor.ResolveRequest{
		OrderID:     event.OrderID,
		Email:       event.Email,
		BaseAmount:  event.Amount,
		CouponCode:  event.CouponCode,
		ClickToken:  event.ClickToken,
		CookieValue: event.CookieJWT,
	})
	if err != nil {
		if errors.Is(err, attributionProcessor.ErrDuplicateAttribution) {
			// Redelivered event; the first delivery won.
			return nil
		}
		return fmt.Errorf("failed to resolve attribution: %w", err)
	}

	if attribution == nil {
		return nil
	}

	if _, err := o.commission.Compute(ctx, attribution.ID, event.Amount); err != nil {
		if errors.Is(err, commissionProcessor.ErrDuplicateCommission) {
			return nil
		}
		return fmt.Errorf("failed to compute commissions: %w", err)
	}

	return nil
}
