package events

import (
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"

	"github.com/Pesokrava/tournament_registry/internal/config"
	"github.com/Pesokrava/tournament_registry/internal/domain"
	"github.com/Pesokrava/tournament_registry/internal/pkg/logger"
)

// Consumer handles consuming events from NATS
type Consumer struct {
	nc     *nats.Conn
	logger *logger.Logger
	sub    *nats.Subscription
}

// NewConsumer creates a new NATS consumer
func NewConsumer(cfg *config.Config, log *logger.Logger) (*Consumer, error) {
	nc, err := nats.Connect(cfg.NATS.URL, nats.Name("tournament-notifier"))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	log.Infof("Connected to NATS at %s", cfg.NATS.URL)

	return &Consumer{
		nc:     nc,
		logger: log,
	}, nil
}

// Subscribe subscribes to a NATS subject and processes messages
func (c *Consumer) Subscribe(subject string, handler func(data []byte) error) error {
	sub, err := c.nc.Subscribe(subject, func(msg *nats.Msg) {
		c.logger.Debugf("Received message on subject %s", subject)

		if err := handler(msg.Data); err != nil {
			c.logger.Errorf(err, "Failed to handle message on subject %s", subject)
		}
	})
	if err != nil {
		return fmt.Errorf("failed to subscribe to subject %s: %w", subject, err)
	}

	c.sub = sub
	c.logger.Infof("Subscribed to NATS subject: %s", subject)
	return nil
}

// Close closes the NATS connection
func (c *Consumer) Close() {
	if c.sub != nil {
		if err := c.sub.Unsubscribe(); err != nil {
			c.logger.Warnf("Failed to unsubscribe from NATS: %v", err)
		}
	}
	if c.nc != nil {
		c.nc.Close()
		c.logger.Info("NATS consumer connection closed")
	}
}

// DecodeChange decodes a change event and rejects events without a concept or entity
func DecodeChange(data []byte) (domain.ChangeEvent, error) {
	var event domain.ChangeEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return event, fmt.Errorf("failed to unmarshal change event: %w", err)
	}
	if event.Concept == "" || event.EntityID <= 0 {
		return event, fmt.Errorf("incomplete change event %q", event.EventType)
	}
	return event, nil
}

// ChangeLogHandler creates a handler that logs every change event
func ChangeLogHandler(log *logger.Logger) func(data []byte) error {
	return func(data []byte) error {
		event, err := DecodeChange(data)
		if err != nil {
			return err
		}

		log.WithFields(map[string]any{
			"event_id":   event.ID.String(),
			"event_type": event.EventType,
			"concept":    string(event.Concept),
			"entity_id":  event.EntityID,
			"timestamp":  event.Timestamp,
		}).Info("Entity changed")
		return nil
	}
}
