package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"affiliate-server/internal/config"
	"affiliate-server/internal/observability"

	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
)

const (
	EventOrderCompleted = "order.completed"
	EventOrderRefunded  = "order.refunded"
)

// OrderEvent is the payload published by the commerce platform for order
// lifecycle changes. CouponCode and CookieJWT are optional attribution hints
// forwarded from checkout.
type OrderEvent struct {
	EventType  string          `json:"event_type"`
	OrderID    string          `json:"order_id"`
	Email      string          `json:"customer_email"`
	Amount     decimal.Decimal `json:"amount"`
	Currency   string          `json:"currency"`
	CouponCode string          `json:"coupon_code,omitempty"`
	ClickToken string          `json:"click_token,omitempty"`
	CookieJWT  string          `json:"attribution_cookie,omitempty"`
	OccurredAt time.Time       `json:"occurred_at"`
}

type Consumer struct {
	reader *kafka.Reader
	logger *observability.Logger
}

func NewConsumer(cfg config.KafkaConfig, logger *observability.Logger) *Consumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:     strings.Split(cfg.Brokers, ","),
		GroupID:     cfg.ConsumerGroup,
		Topic:       cfg.OrdersTopic,
		StartOffset: kafka.FirstOffset,
		MinBytes:    1,
		MaxBytes:    10e6,
	})
	return &Consumer{reader: reader, logger: logger}
}

// ConsumeOrderEvents blocks, delivering each decoded order event to handler.
// Messages are committed only after the handler succeeds, so a crashed
// processing attempt is redelivered. Malformed messages are committed and
// skipped since retrying them can never succeed.
func (c *Consumer) ConsumeOrderEvents(ctx context.Context, handler func(ctx context.Context, event OrderEvent) error) error {
	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("failed to fetch message: %w", err)
		}

		var event OrderEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			c.logger.Error(ctx, "skipping malformed order event", err)
			if err := c.reader.CommitMessages(ctx, msg); err != nil {
				return fmt.Errorf("failed to commit malformed message: %w", err)
			}
			continue
		}

		if err := handler(ctx, event); err != nil {
			// Left uncommitted so the group redelivers it.
			c.logger.Error(ctx, "failed to process order event", err)
			continue
		}

		if err := c.reader.CommitMessages(ctx, msg); err != nil {
			return fmt.Errorf("failed to commit message: %w", err)
		}
	}
}

func (c *Consumer) Close() error {
	if c == nil || c.reader == nil {
		return nil
	}
	return c.reader.Close()
}
