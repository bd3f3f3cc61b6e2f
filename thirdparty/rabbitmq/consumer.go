package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/muhammadheryan/storefront/utils/logger"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Consumer expires drafts by calling the internal API for every delivered message.
type Consumer struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
	expirer *DraftExpirer
}

func NewConsumer(host string, port int, user, password string, expirer *DraftExpirer) (*Consumer, error) {
	conn, channel, err := open(host, port, user, password)
	if err != nil {
		return nil, err
	}
	return &Consumer{conn: conn, channel: channel, expirer: expirer}, nil
}

func (c *Consumer) Start(ctx context.Context) error {
	// one message at a time
	if err := c.channel.Qos(1, 0, false); err != nil {
		return err
	}

	msgs, err := c.channel.Consume(
		draftExpirationQueue,
		"",    // consumer tag
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		return err
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					logger.Info("[Consumer] delivery channel closed")
					return
				}
				c.handle(ctx, msg)
			}
		}
	}()

	return nil
}

func (c *Consumer) handle(ctx context.Context, msg amqp091.Delivery) {
	var m DraftExpirationMessage
	if err := json.Unmarshal(msg.Body, &m); err != nil || m.DraftID == "" {
		logger.Error("[Consumer] drop malformed message", zap.ByteString("body", msg.Body))
		_ = msg.Ack(false)
		return
	}

	requeue, err := c.expirer.Expire(ctx, m.DraftID)
	if err != nil {
		logger.Error("[Consumer] expire draft",
			zap.String("draft_id", m.DraftID), zap.Bool("requeue", requeue), zap.String("error", err.Error()))
		_ = msg.Nack(false, requeue)
		return
	}

	_ = msg.Ack(false)
	logger.Info("[Consumer] draft expired", zap.String("draft_id", m.DraftID))
}

func (c *Consumer) Close() error {
	return closeAll(c.channel, c.conn)
}

// DraftExpirer calls POST /internal/v1/admin/drafts/{id}/expire.
type DraftExpirer struct {
	apiURL string
	apiKey string
	client *http.Client
}

func NewDraftExpirer(apiURL, apiKey string) *DraftExpirer {
	return &DraftExpirer{
		apiURL: apiURL,
		apiKey: apiKey,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// Expire reports whether a failed call is worth retrying: transport errors and 5xx are,
// other statuses are not.
func (e *DraftExpirer) Expire(ctx context.Context, draftID string) (bool, error) {
	endpoint, err := url.JoinPath(e.apiURL, "internal/v1/admin/drafts", draftID, "expire")
	if err != nil {
		return false, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, nil)
	if err != nil {
		return false, err
	}
	req.Header.Set("Authorization", "Bearer "+e.apiKey)
	req.Header.Set("X-Internal-Service", "draft-expiration-consumer")

	resp, err := e.client.Do(req)
	if err != nil {
		return true, err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	switch {
	case resp.StatusCode >= 500:
		return true, fmt.Errorf("internal api returned status %d: %s", resp.StatusCode, body)
	case resp.StatusCode >= 300:
		return false, fmt.Errorf("internal api returned status %d: %s", resp.StatusCode, body)
	}
	return false, nil
}
