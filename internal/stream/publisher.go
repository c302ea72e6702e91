// Package stream publishes order lifecycle events to Kafka for
// downstream consumers (notifications, analytics). The service only
// produces; consuming is someone else's job.
package stream

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/light-bringer/storefront-service/internal/app/catalog/contracts"
)

// TopicOrderStatusUpdated carries one message per committed status
// transition, keyed by order id so a single order's events stay ordered.
const TopicOrderStatusUpdated = "order-status-updated"

// Publisher implements contracts.OrderEventPublisher on a kafka writer.
type Publisher struct {
	writer *kafka.Writer
}

// NewPublisher creates a Publisher for the given brokers.
func NewPublisher(brokers []string) *Publisher {
	return &Publisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        TopicOrderStatusUpdated,
			Balancer:     &kafka.LeastBytes{},
			RequiredAcks: kafka.RequireOne,
		},
	}
}

// PublishStatusChanged writes one status event, keyed by order id.
func (p *Publisher) PublishStatusChanged(ctx context.Context, event *contracts.OrderStatusEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to serialize status event: %w", err)
	}

	message := kafka.Message{
		Key:   []byte(event.OrderID),
		Value: value,
		Time:  time.Now(),
	}

	if err := p.writer.WriteMessages(ctx, message); err != nil {
		return fmt.Errorf("failed to write status event: %w", err)
	}
	return nil
}

// Close flushes and closes the underlying writer.
func (p *Publisher) Close() error {
	return p.writer.Close()
}

// CreateTopics creates the service's topics with 3 partitions and
// replication factor 1. Intended for local development; production
// topics are managed out of band.
func CreateTopics(brokerAddr string) error {
	conn, err := kafka.Dial("tcp", brokerAddr)
	if err != nil {
		return err
	}
	defer conn.Close()

	controller, err := conn.Controller()
	if err != nil {
		return err
	}

	controllerConn, err := kafka.Dial("tcp", controller.Host+":"+strconv.Itoa(controller.Port))
	if err != nil {
		return err
	}
	defer controllerConn.Close()

	return controllerConn.CreateTopics(kafka.TopicConfig{
		Topic:             TopicOrderStatusUpdated,
		NumPartitions:     3,
		ReplicationFactor: 1,
	})
}
