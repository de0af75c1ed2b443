// Package events publishes booking lifecycle notifications to RabbitMQ.
// Publishing is best-effort: a broker outage must never fail a booking.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"
)

const (
	EventBookingCreated   = "booking.created"
	EventBookingCancelled = "booking.cancelled"
)

type BookingEvent struct {
	Event      string    `json:"event"`
	BookingID  string    `json:"bookingId"`
	UserID     string    `json:"userId,omitempty"`
	RoomTypeID uint      `json:"roomTypeId,omitempty"`
	Reason     string    `json:"reason,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

type Notifier struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	queue   amqp.Queue
}

// NewNotifier dials the broker and declares the queue. A nil *Notifier is a
// valid no-op publisher so the portal runs without a broker configured.
func NewNotifier(url, queueName string) (*Notifier, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	q, err := channel.QueueDeclare(
		queueName,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare queue: %w", err)
	}

	return &Notifier{conn: conn, channel: channel, queue: q}, nil
}

func (n *Notifier) Publish(ctx context.Context, event BookingEvent) {
	if n == nil {
		return
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}

	body, err := json.Marshal(event)
	if err != nil {
		logrus.WithError(err).Warn("failed to marshal booking event")
		return
	}

	err = n.channel.PublishWithContext(
		ctx,
		"",           // exchange
		n.queue.Name, // routing key
		false,        // mandatory
		false,        // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
			Body:         body,
		},
	)
	if err != nil {
		logrus.WithError(err).WithField("event", event.Event).Warn("failed to publish booking event")
	}
}

func (n *Notifier) Close() {
	if n == nil {
		return
	}
	if n.channel != nil {
		n.channel.Close()
	}
	if n.conn != nil {
		n.conn.Close()
	}
}
