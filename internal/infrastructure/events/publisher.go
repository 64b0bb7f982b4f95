package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/TemiKayode/wumikay-ventures/internal/domain/entity"
	"github.com/TemiKayode/wumikay-ventures/internal/logger"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// OrderCompletedEvent is published after a checkout finishes.
type OrderCompletedEvent struct {
	OrderID      uint      `json:"order_id"`
	OrderNumber  string    `json:"order_number"`
	CustomerName string    `json:"customer_name"`
	TotalAmount  float64   `json:"total_amount"`
	PaymentMode  string    `json:"payment_mode"`
	ItemCount    int       `json:"item_count"`
	CompletedAt  time.Time `json:"completed_at"`
}

// Publisher emits order lifecycle events. Implementations must tolerate
// broker outages; checkout never fails because an event could not be sent.
type Publisher interface {
	PublishOrderCompleted(ctx context.Context, order *entity.Order) error
	Close()
}

type rabbitPublisher struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	queue   string
}

// NewRabbitPublisher connects to RabbitMQ and declares the event queue.
func NewRabbitPublisher(url, queue string) (Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	_, err = channel.QueueDeclare(
		queue,
		true,  // durable
		false, // auto-delete
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare queue: %w", err)
	}

	logger.L().Info("connected to RabbitMQ", zap.String("queue", queue))

	return &rabbitPublisher{
		conn:    conn,
		channel: channel,
		queue:   queue,
	}, nil
}

func (p *rabbitPublisher) PublishOrderCompleted(ctx context.Context, order *entity.Order) error {
	event := OrderCompletedEvent{
		OrderID:      order.ID,
		OrderNumber:  order.OrderNumber,
		CustomerName: order.CustomerName,
		TotalAmount:  float64(order.TotalAmount) / 100,
		PaymentMode:  string(order.PaymentMode),
		ItemCount:    len(order.Items),
		CompletedAt:  time.Now(),
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	err = p.channel.PublishWithContext(ctx,
		"",      // exchange
		p.queue, // routing key
		false,   // mandatory
		false,   // immediate
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}
	return nil
}

func (p *rabbitPublisher) Close() {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
}

type noopPublisher struct{}

// NewNoopPublisher returns a publisher that discards events. Used when no
// broker is configured.
func NewNoopPublisher() Publisher {
	return noopPublisher{}
}

func (noopPublisher) PublishOrderCompleted(context.Context, *entity.Order) error { return nil }
func (noopPublisher) Close()                                                     {}
