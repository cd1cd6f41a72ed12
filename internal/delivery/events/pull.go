package events

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/Pesokrava/tournament_registry/internal/pkg/logger"
)

const (
	fetchBatch   = 10
	fetchWait    = 5 * time.Second
	fetchBackoff = 5 * time.Second
)

// acker is the part of *nats.Msg a pull loop settles
type acker interface {
	Ack(opts ...nats.AckOpt) error
	Nak(opts ...nats.AckOpt) error
}

// PullConsumer fetches messages of a durable JetStream consumer in batches
type PullConsumer struct {
	sub    *nats.Subscription
	logger *logger.Logger
}

// NewPullConsumer binds to the durable consumer provisioned by EnsureConsumer
func NewPullConsumer(js nats.JetStreamContext, log *logger.Logger) (*PullConsumer, error) {
	sub, err := js.PullSubscribe(StreamSubjects, ConsumerName, nats.ManualAck())
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to JetStream consumer: %w", err)
	}

	log.WithFields(map[string]any{
		"stream":   StreamName,
		"consumer": ConsumerName,
	}).Info("Subscribed to JetStream consumer")

	return &PullConsumer{sub: sub, logger: log}, nil
}

// Run fetches and handles messages until ctx is done. Handler errors nak the
// message so JetStream redelivers it with backoff.
func (c *PullConsumer) Run(ctx context.Context, handler func(data []byte) error) {
	for ctx.Err() == nil {
		msgs, err := c.sub.Fetch(fetchBatch, nats.MaxWait(fetchWait))
		if err != nil {
			if errors.Is(err, nats.ErrTimeout) || errors.Is(err, context.DeadlineExceeded) {
				continue
			}
			c.logger.Error("Failed to fetch messages from JetStream", err)

			select {
			case <-time.After(fetchBackoff):
			case <-ctx.Done():
			}
			continue
		}

		for _, msg := range msgs {
			settle(msg, msg.Data, handler, c.logger)
		}
	}
}

// Close unsubscribes from the consumer; the durable consumer itself is kept
func (c *PullConsumer) Close() {
	if err := c.sub.Unsubscribe(); err != nil {
		c.logger.Error("Failed to unsubscribe from JetStream", err)
	}
}

func settle(msg acker, data []byte, handler func(data []byte) error, log *logger.Logger) {
	if err := handler(data); err != nil {
		log.Error("Failed to handle event", err)

		if nakErr := msg.Nak(); nakErr != nil {
			log.Error("Failed to NAK message", nakErr)
		}
		return
	}

	if ackErr := msg.Ack(); ackErr != nil {
		log.Error("Failed to ACK message", ackErr)
	}
}
