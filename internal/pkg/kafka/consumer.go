package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/Hunterthief/Weave-Wonder-sub000/internal/entity"
	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

// readRetryDelay is the pause after a failed read before trying again.
const readRetryDelay = 2 * time.Second

type OrderHandler func(ctx context.Context, event entity.OrderEvent) error

type messageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

// ConsumeOrders reads order events until ctx is cancelled. Malformed
// messages are skipped; handler errors are logged and the offset is still
// committed.
func ConsumeOrders(ctx context.Context, brokers []string, topic, groupID string, handler OrderHandler) error {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        brokers,
		Topic:          topic,
		GroupID:        groupID,
		MinBytes:       1,
		MaxBytes:       10e6, // 10MB
		CommitInterval: time.Second,
		StartOffset:    kafka.FirstOffset,
	})
	defer reader.Close()

	logrus.WithFields(logrus.Fields{"brokers": brokers, "topic": topic, "group": groupID}).Info("Order consumer started")

	consume(ctx, reader, handler, readRetryDelay)
	return nil
}

func consume(ctx context.Context, reader messageReader, handler OrderHandler, retryDelay time.Duration) {
	for {
		msg, err := reader.ReadMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || ctx.Err() != nil {
				return
			}
			logrus.Errorf("Error reading message from Kafka: %v", err)
			select {
			case <-ctx.Done():
				return
			case <-time.After(retryDelay):
			}
			continue
		}

		var event entity.OrderEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			logrus.WithField("offset", msg.Offset).Errorf("Failed to parse order event: %v", err)
			continue
		}

		if err := handler(ctx, event); err != nil {
			logrus.WithField("order_id", event.OrderID).Errorf("Order event handling failed: %v", err)
		}
	}
}
