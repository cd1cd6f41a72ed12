package events

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/Pesokrava/tournament_registry/internal/domain"
	"github.com/Pesokrava/tournament_registry/internal/pkg/logger"
)

const (
	// StreamName is the JetStream stream for entity change events
	StreamName = "TOURNAMENT"

	// StreamSubjects defines the subjects this stream listens to
	StreamSubjects = domain.ChangeSubject

	// ConsumerName is the durable consumer of the cache worker
	ConsumerName = "cache-worker"

	// MaxDeliveryAttempts bounds redeliveries. A dropped event only leaves the
	// entity uncached until its next change or lookup.
	MaxDeliveryAttempts = 3

	// AckWait is how long to wait for acknowledgment before redelivery
	AckWait = 30 * time.Second

	streamMaxAge = 24 * time.Hour
)

// StreamConfig provisions the change stream and the cache worker consumer
type StreamConfig struct {
	js     nats.JetStreamContext
	logger *logger.Logger
}

// NewStreamConfig creates a new stream configuration helper
func NewStreamConfig(js nats.JetStreamContext, log *logger.Logger) *StreamConfig {
	return &StreamConfig{
		js:     js,
		logger: log,
	}
}

// redeliveryBackoff returns 1s, 2s, 4s, ... One entry per redelivery,
// the first delivery is immediate.
func redeliveryBackoff(attempts int) []time.Duration {
	if attempts <= 1 {
		return nil
	}

	backoff := make([]time.Duration, attempts-1)
	for i := range backoff {
		backoff[i] = time.Second << i
	}
	return backoff
}

// changeStream is a file-backed work queue; events older than a day are dropped
func changeStream() *nats.StreamConfig {
	return &nats.StreamConfig{
		Name:        StreamName,
		Description: "Municipality, profile and phone type change events",
		Subjects:    []string{StreamSubjects},
		Retention:   nats.WorkQueuePolicy,
		Storage:     nats.FileStorage,
		Replicas:    1,
		MaxAge:      streamMaxAge,
		Discard:     nats.DiscardOld,
	}
}

// cacheWorkerConsumer acks explicitly and has no dead letter queue
func cacheWorkerConsumer() *nats.ConsumerConfig {
	return &nats.ConsumerConfig{
		Durable:       ConsumerName,
		Description:   "Cache worker consumer refreshing changed entities",
		AckPolicy:     nats.AckExplicitPolicy,
		AckWait:       AckWait,
		MaxDeliver:    MaxDeliveryAttempts,
		FilterSubject: StreamSubjects,
		BackOff:       redeliveryBackoff(MaxDeliveryAttempts),
	}
}

// EnsureStream creates the change stream, or widens an existing stream that
// does not capture the change subject
func (s *StreamConfig) EnsureStream(ctx context.Context) error {
	log := s.logger.With("stream", StreamName)
	want := changeStream()

	info, err := s.js.StreamInfo(StreamName, nats.Context(ctx))
	switch {
	case errors.Is(err, nats.ErrStreamNotFound):
		if _, err := s.js.AddStream(want, nats.Context(ctx)); err != nil {
			return fmt.Errorf("failed to create stream %s: %w", StreamName, err)
		}
		log.Info("JetStream stream created")
		return nil
	case err != nil:
		return fmt.Errorf("failed to get stream info: %w", err)
	}

	if !slices.Contains(info.Config.Subjects, StreamSubjects) {
		cfg := info.Config
		cfg.Subjects = append(cfg.Subjects, StreamSubjects)
		if _, err := s.js.UpdateStream(&cfg, nats.Context(ctx)); err != nil {
			return fmt.Errorf("failed to add %s to stream %s: %w", StreamSubjects, StreamName, err)
		}
		log.Warnf("Added missing subject %s to stream", StreamSubjects)
	}

	log.WithFields(map[string]any{
		"messages": info.State.Msgs,
		"bytes":    info.State.Bytes,
	}).Info("JetStream stream ready")
	return nil
}

// EnsureConsumer creates the durable pull consumer of the cache worker if it is missing
func (s *StreamConfig) EnsureConsumer(ctx context.Context) error {
	log := s.logger.WithFields(map[string]any{
		"stream":   StreamName,
		"consumer": ConsumerName,
	})

	info, err := s.js.ConsumerInfo(StreamName, ConsumerName, nats.Context(ctx))
	switch {
	case errors.Is(err, nats.ErrConsumerNotFound):
		if _, err := s.js.AddConsumer(StreamName, cacheWorkerConsumer(), nats.Context(ctx)); err != nil {
			return fmt.Errorf("failed to create consumer %s: %w", ConsumerName, err)
		}
		log.Info("JetStream consumer created")
		return nil
	case err != nil:
		return fmt.Errorf("failed to get consumer info: %w", err)
	}

	log.WithFields(map[string]any{
		"pending":     info.NumPending,
		"redelivered": info.NumRedelivered,
		"ack_pending": info.NumAckPending,
	}).Info("JetStream consumer ready")
	return nil
}
