package queue

import (
	"context"
	"encoding/json"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Publisher emits booking events to RabbitMQ.  A zero URL disables
// publishing entirely, which keeps local setups without a broker
// working.  Errors are logged and returned so callers can ignore them
// without losing the trace.
type Publisher struct {
	url string
}

// NewPublisher returns a Publisher for the given AMQP URL.  An empty
// URL yields a disabled publisher.
func NewPublisher(url string) *Publisher { return &Publisher{url: url} }

// Enabled reports whether a broker URL is configured.
func (p *Publisher) Enabled() bool { return p.url != "" }

// Publish marshals the event and sends it to the named durable queue.
// The connection is dialed per publish; booking volume here makes a
// pooled channel not worth its failure modes.
func (p *Publisher) Publish(ctx context.Context, queueName string, event any) error {
	if !p.Enabled() {
		return nil
	}
	conn, err := amqp.Dial(p.url)
	if err != nil {
		log.Printf("queue: dial failed: %v", err)
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Printf("queue: channel open failed: %v", err)
		return err
	}
	defer func() { _ = ch.Close() }()

	// Idempotent declare; durable so messages survive broker restarts.
	if _, err := ch.QueueDeclare(queueName, true, false, false, false, nil); err != nil {
		log.Printf("queue: declare %s failed: %v", queueName, err)
		return err
	}

	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("queue: marshal event failed: %v", err)
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx, "", queueName, false, false, pub); err != nil {
		log.Printf("queue: publish to %s failed: %v", queueName, err)
		return err
	}
	return nil
}
