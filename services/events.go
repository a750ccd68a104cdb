package services

import (
	"context"
	"gin-manufacturer/infra"
	"time"

	"go.uber.org/zap"
)

// ドメインイベントのルーティングキー
const (
	EventProductCreated   = "product.created"
	EventProductDeleted   = "product.deleted"
	EventBookingCreated   = "booking.created"
	EventBookingPaid      = "booking.paid"
	EventBookingDelivered = "booking.delivered"
)

type EventPublisher interface {
	Publish(ctx context.Context, key string, payload interface{}) error
}

// NopPublisher AMQP_URLが未設定のときに使う
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, string, interface{}) error { return nil }

type Event struct {
	Type          string    `json:"type"`
	ID            string    `json:"id"`
	Email         string    `json:"email,omitempty"`
	TransactionID string    `json:"transactionId,omitempty"`
	OccurredAt    time.Time `json:"occurredAt"`
}

// publish 失敗してもリクエストは失敗させずにログだけ残す
func publish(ctx context.Context, publisher EventPublisher, event Event) {
	event.OccurredAt = time.Now().UTC()
	if err := publisher.Publish(ctx, event.Type, event); err != nil {
		infra.LoggerFromContext(ctx).Warn("failed to publish event",
			zap.String("type", event.Type),
			zap.String("id", event.ID),
			zap.Error(err),
		)
	}
}
