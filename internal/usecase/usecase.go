package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/Pesokrava/tournament_registry/internal/domain"
	"github.com/Pesokrava/tournament_registry/internal/pkg/logger"
	"github.com/Pesokrava/tournament_registry/internal/pkg/retry"
	"github.com/Pesokrava/tournament_registry/internal/repository/cache"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100

	readRetryBackoff  = 50 * time.Millisecond
	publishTimeout    = 5 * time.Second
	invalidateTimeout = 2 * time.Second
)

// Cache defines the entity cache used for read-through lookups.
// Add must not replace an entry left by Invalidate, so a read that raced a
// write cannot cache what it loaded before the write.
type Cache interface {
	Get(ctx context.Context, concept domain.Concept, id int64, dst any) error
	Add(ctx context.Context, concept domain.Concept, id int64, v any) (bool, error)
	Invalidate(ctx context.Context, concept domain.Concept, id int64) error
}

// EventPublisher defines the interface for publishing events
type EventPublisher interface {
	Publish(ctx context.Context, subject string, data []byte) error
}

// ClampPage normalizes pagination input
func ClampPage(limit, offset int) (int, int) {
	if limit <= 0 || limit > MaxLimit {
		limit = DefaultLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

// ReadPolicy retries a lookup once when the failure is transient
func ReadPolicy(log *logger.Logger) retry.Policy {
	return retry.Policy{
		Attempts:  2,
		Backoff:   readRetryBackoff,
		Retryable: domain.IsRetryable,
		OnRetry: func(attempt int, err error, wait time.Duration) {
			log.WithError(err).WithFields(map[string]any{
				"attempt": attempt,
				"wait_ms": wait.Milliseconds(),
			}).Warn("Retrying lookup")
		},
	}
}

// ReadThrough serves dst from the cache, falling back to load with the
// read policy. Cache failures are logged and never fail the lookup.
func ReadThrough[T any](
	ctx context.Context,
	c Cache,
	log *logger.Logger,
	concept domain.Concept,
	id int64,
	load func(ctx context.Context) (*T, error),
) (*T, error) {
	var cached T
	err := c.Get(ctx, concept, id, &cached)
	if err == nil {
		log.Debugf("Cache hit for %s %d", concept, id)
		return &cached, nil
	}
	if !errors.Is(err, cache.ErrMiss) {
		log.Warnf("Failed to read %s %d from cache: %v", concept, id, err)
	}

	var entity *T
	err = retry.Do(ctx, ReadPolicy(log), func(ctx context.Context) error {
		var loadErr error
		entity, loadErr = load(ctx)
		return loadErr
	})
	if err != nil {
		if domain.HasScenario(err, domain.ScenarioNotFound) {
			log.Debugf("%s not found: %d", concept, id)
		} else {
			log.Error("Failed to load "+string(concept), err)
		}
		return nil, err
	}

	stored, err := c.Add(ctx, concept, id, entity)
	if err != nil {
		log.Warnf("Failed to cache %s %d: %v", concept, id, err)
	} else if !stored {
		log.Debugf("Skipped caching %s %d, entry changed during load", concept, id)
	}

	return entity, nil
}

// Notifier invalidates cached entities and announces changes on the event bus
type Notifier struct {
	cache     Cache
	publisher EventPublisher
	logger    *logger.Logger
	wg        sync.WaitGroup
}

// NewNotifier creates a new change notifier
func NewNotifier(c Cache, publisher EventPublisher, log *logger.Logger) *Notifier {
	return &Notifier{
		cache:     c,
		publisher: publisher,
		logger:    log,
	}
}

// Changed drops the cached entity and publishes a change event (non-blocking).
// The write has committed, so invalidation outlives a cancelled request.
func (n *Notifier) Changed(ctx context.Context, concept domain.Concept, kind string, id int64) {
	invCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), invalidateTimeout)
	err := n.cache.Invalidate(invCtx, concept, id)
	cancel()
	if err != nil {
		n.logger.Warnf("Failed to invalidate cache for %s %d: %v", concept, id, err)
	}

	event := domain.NewChangeEvent(concept, kind, id)
	data, err := json.Marshal(event)
	if err != nil {
		n.logger.Errorf(err, "Failed to marshal event for %s %d", concept, id)
		return
	}

	n.wg.Add(1)
	go func() {
		defer n.wg.Done()

		// The request context may be cancelled once the response is written
		pubCtx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		defer cancel()

		if err := n.publisher.Publish(pubCtx, domain.ChangeSubject, data); err != nil {
			n.logger.Errorf(err, "Failed to publish %s event for %s %d", event.EventType, concept, id)
		}
	}()
}

// Wait blocks until in-flight publishes are done
func (n *Notifier) Wait() {
	n.wg.Wait()
}
