// Package rabbitmq publishes order status changes to a RabbitMQ topic
// exchange so that downstream services (inventory, notifications) can react.
package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

// DefaultExchange is the topic exchange order events are published to.
const DefaultExchange = "marketplace.orders"

const eventType = "OrderStatusChanged"

var _ ports.EventPublisher = (*Publisher)(nil)

// Channel is the part of *amqp.Channel the publisher needs.
type Channel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// StatusChangedMessage is the JSON body of every published event.
type StatusChangedMessage struct {
	EventType       string              `json:"eventType"`
	OrderID         string              `json:"orderId"`
	CustomerID      string              `json:"customerId"`
	FromStatus      string              `json:"fromStatus"`
	ToStatus        string              `json:"toStatus"`
	StockAdjustment *StockAdjustmentDTO `json:"stockAdjustment,omitempty"`
	Timestamp       string              `json:"timestamp"`
}

type StockAdjustmentDTO struct {
	Kind  string         `json:"kind"`
	Lines []StockLineDTO `json:"lines"`
}

type StockLineDTO struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// Publisher sends one persistent message per status change. The routing key
// is order.status.<status>, lower-cased, so consumers can bind to the
// transitions they care about.
type Publisher struct {
	mu       sync.Mutex
	conn     *amqp.Connection
	channel  Channel
	exchange string
	now      func() time.Time
	logger   *slog.Logger
}

// Dial connects to the broker, opens a channel and declares the exchange.
func Dial(url, exchange string, logger *slog.Logger) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open rabbitmq channel: %w", err)
	}

	p, err := NewPublisher(channel, exchange, logger)
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	p.conn = conn
	return p, nil
}

// NewPublisher declares a durable topic exchange on the channel.
func NewPublisher(channel Channel, exchange string, logger *slog.Logger) (*Publisher, error) {
	if channel == nil {
		return nil, errs.NewValueIsRequiredError("channel")
	}
	if strings.TrimSpace(exchange) == "" {
		exchange = DefaultExchange
	}
	if logger == nil {
		logger = slog.Default()
	}

	if err := channel.ExchangeDeclare(
		exchange,
		amqp.ExchangeTopic,
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,
	); err != nil {
		_ = channel.Close()
		return nil, fmt.Errorf("declare exchange %s: %w", exchange, err)
	}

	return &Publisher{
		channel:  channel,
		exchange: exchange,
		now:      time.Now,
		logger:   logger.With("component", "rabbitmq_publisher"),
	}, nil
}

// RoutingKey returns the key a transition into status is published with.
func RoutingKey(status order.Status) string {
	return "order.status." + strings.ToLower(status.String())
}

func (p *Publisher) Publish(ctx context.Context, event order.StatusChanged) error {
	body, err := json.Marshal(p.message(event))
	if err != nil {
		return fmt.Errorf("encode status change: %w", err)
	}

	key := RoutingKey(event.To)

	// amqp channels are not safe for concurrent publishing.
	p.mu.Lock()
	defer p.mu.Unlock()

	err = p.channel.PublishWithContext(ctx, p.exchange, key, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    uuid.NewString(),
		Type:         eventType,
		Timestamp:    p.now().UTC(),
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("publish %s for order %s: %w", key, event.OrderID, err)
	}

	p.logger.DebugContext(ctx, "status change published",
		"order_id", event.OrderID.String(),
		"from", event.From.String(),
		"to", event.To.String(),
	)
	return nil
}

// Close closes the channel and, when the publisher dialed it, the connection.
func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	err := p.channel.Close()
	if p.conn != nil {
		if connErr := p.conn.Close(); err == nil {
			err = connErr
		}
	}
	return err
}

func (p *Publisher) message(event order.StatusChanged) StatusChangedMessage {
	msg := StatusChangedMessage{
		EventType:  eventType,
		OrderID:    event.OrderID.String(),
		CustomerID: event.CustomerID.String(),
		FromStatus: event.From.String(),
		ToStatus:   event.To.String(),
		Timestamp:  p.now().UTC().Format(time.RFC3339),
	}

	if event.Adjustment.Required() {
		lines := event.Adjustment.Lines()
		dto := &StockAdjustmentDTO{
			Kind:  event.Adjustment.Kind().String(),
			Lines: make([]StockLineDTO, len(lines)),
		}
		for i, line := range lines {
			dto.Lines[i] = StockLineDTO{ProductID: line.ProductID.String(), Quantity: line.Quantity}
		}
		msg.StockAdjustment = dto
	}

	return msg
}
