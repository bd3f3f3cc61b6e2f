package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rabbitmq/amqp091-go"
)

const (
	draftExpirationExchange = "draft_expiration_exchange"
	draftExpirationQueue    = "draft_expiration_queue"
	draftExpirationKey      = "draft_expiration"
)

// DraftExpirationMessage is delivered once the draft reaches ExpiresAt.
type DraftExpirationMessage struct {
	DraftID   string    `json:"draft_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

// DraftExpirationPublisher schedules draft expiry.
type DraftExpirationPublisher interface {
	PublishDraftExpiration(ctx context.Context, msg DraftExpirationMessage) error
}

type Publisher struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
}

func NewPublisher(host string, port int, user, password string) (*Publisher, error) {
	conn, channel, err := open(host, port, user, password)
	if err != nil {
		return nil, err
	}
	return &Publisher{conn: conn, channel: channel}, nil
}

// PublishDraftExpiration publishes msg through the delayed exchange; the broker holds
// it until ExpiresAt.
func (p *Publisher) PublishDraftExpiration(ctx context.Context, msg DraftExpirationMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	return p.channel.PublishWithContext(ctx,
		draftExpirationExchange,
		draftExpirationKey,
		false, // mandatory
		false, // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Body:         body,
			Headers: amqp091.Table{
				"x-delay": delayMillis(msg.ExpiresAt, time.Now()),
			},
		},
	)
}

func (p *Publisher) Close() error {
	return closeAll(p.channel, p.conn)
}

func delayMillis(at, now time.Time) int64 {
	d := at.Sub(now).Milliseconds()
	if d < 0 {
		return 0
	}
	return d
}

// open dials the broker and declares the delayed exchange, the queue and their binding.
func open(host string, port int, user, password string) (*amqp091.Connection, *amqp091.Channel, error) {
	dsn := fmt.Sprintf("amqp://%s:%s@%s:%d/", user, password, host, port)
	conn, err := amqp091.Dial(dsn)
	if err != nil {
		return nil, nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, nil, err
	}

	if err := declare(channel); err != nil {
		_ = closeAll(channel, conn)
		return nil, nil, err
	}
	return conn, channel, nil
}

func declare(ch *amqp091.Channel) error {
	err := ch.ExchangeDeclare(
		draftExpirationExchange,
		"x-delayed-message",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		amqp091.Table{"x-delayed-type": "direct"},
	)
	if err != nil {
		return fmt.Errorf("declare exchange: %w", err)
	}

	if _, err := ch.QueueDeclare(draftExpirationQueue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare queue: %w", err)
	}

	if err := ch.QueueBind(draftExpirationQueue, draftExpirationKey, draftExpirationExchange, false, nil); err != nil {
		return fmt.Errorf("bind queue: %w", err)
	}
	return nil
}

func closeAll(ch *amqp091.Channel, conn *amqp091.Connection) error {
	if ch != nil {
		ch.Close()
	}
	if conn != nil {
		return conn.Close()
	}
	return nil
}
