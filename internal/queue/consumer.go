package queue

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// StartConfirmationConsumer connects to RabbitMQ and consumes
// booking.confirmed events, appending one line per confirmation to
// logs/bookings.log.  It runs a reconnect loop with capped backoff and
// never returns once started; processing errors reject the offending
// message and keep the loop alive.  Intended to run in its own
// goroutine when a broker URL is configured.
func StartConfirmationConsumer(url string) {
	backoff := time.Second
	for {
		conn, err := amqp.Dial(url)
		if err != nil {
			log.Printf("queue: consumer dial failed: %v; retrying in %s", err, backoff)
			time.Sleep(backoff)
			if backoff < 30*time.Second {
				backoff *= 2
			}
			continue
		}
		backoff = time.Second

		if err := consumeConfirmations(conn); err != nil {
			log.Printf("queue: consumer loop ended: %v; reconnecting", err)
			time.Sleep(2 * time.Second)
		}
	}
}

func consumeConfirmations(conn *amqp.Connection) error {
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("channel open: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(QueueBookingConfirmed, true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare queue: %w", err)
	}
	msgs, err := ch.Consume(QueueBookingConfirmed, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("consume: %w", err)
	}

	for d := range msgs {
		var ev BookingConfirmedEvent
		if err := json.Unmarshal(d.Body, &ev); err != nil {
			log.Printf("queue: bad confirmation payload: %v", err)
			_ = d.Reject(false)
			continue
		}
		if err := appendConfirmationLog(ev); err != nil {
			log.Printf("queue: write booking log: %v", err)
			_ = d.Reject(true)
			continue
		}
		_ = d.Ack(false)
	}
	return fmt.Errorf("delivery channel closed")
}

func appendConfirmationLog(ev BookingConfirmedEvent) error {
	if err := os.MkdirAll("logs", 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(filepath.Join("logs", "bookings.log"), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	line := fmt.Sprintf("%s booking=%s restaurant=%q table=%d guests=%d date=%s time=%s total=%s\n",
		ev.ConfirmedAt, ev.BookingID, ev.RestaurantName, ev.TableNumber, ev.Guests, ev.Date, ev.Time, ev.TotalAmount)
	_, err = f.WriteString(line)
	return err
}
