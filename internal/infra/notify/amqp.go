package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"cafe-reservation/internal/pkg/config"
	"cafe-reservation/internal/usecase/commands"

	amqp "github.com/rabbitmq/amqp091-go"
)

// AMQPPublisher emits booking events onto a durable queue. Callers treat
// publishing as best-effort; delivery guarantees end at the broker.
type AMQPPublisher struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
	queue    string
}

func NewAMQPPublisher(cfg config.AMQPConfig) (*AMQPPublisher, func(), error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to dial amqp broker: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, nil, fmt.Errorf("failed to open amqp channel: %w", err)
	}

	// Durable so events survive broker restarts.
	if _, err := ch.QueueDeclare(cfg.Queue, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, nil, fmt.Errorf("failed to declare queue: %w", err)
	}

	p := &AMQPPublisher{
		conn:     conn,
		ch:       ch,
		exchange: cfg.Exchange,
		queue:    cfg.Queue,
	}

	cleanup := func() {
		_ = p.ch.Close()
		_ = p.conn.Close()
	}

	return p, cleanup, nil
}

func (p *AMQPPublisher) Publish(ctx context.Context, routingKey string, event commands.BookingEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	key := p.queue
	if p.exchange != "" {
		key = routingKey
	}

	return p.ch.PublishWithContext(ctx,
		p.exchange,
		key,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now().UTC(),
			Type:         event.Type,
			Body:         body,
		},
	)
}
