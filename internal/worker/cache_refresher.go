package worker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Pesokrava/tournament_registry/internal/config"
	"github.com/Pesokrava/tournament_registry/internal/delivery/events"
	"github.com/Pesokrava/tournament_registry/internal/domain"
	"github.com/Pesokrava/tournament_registry/internal/pkg/logger"
	"github.com/Pesokrava/tournament_registry/internal/pkg/metrics"
	"github.com/Pesokrava/tournament_registry/internal/pkg/retry"
)

const defaultAttemptTimeout = 5 * time.Second

// Refresh outcomes recorded in metrics
const (
	OutcomeRefreshed = "refreshed"
	OutcomeEvicted   = "evicted"
	OutcomeFailed    = "failed"
)

// Loader reads the current state of one entity
type Loader func(ctx context.Context, id int64) (any, error)

// Loaders maps each concept to the loader of its entities
type Loaders map[domain.Concept]Loader

// LoaderFor adapts a repository lookup to a Loader
func LoaderFor[T any](get func(ctx context.Context, id int64) (*T, error)) Loader {
	return func(ctx context.Context, id int64) (any, error) {
		entity, err := get(ctx, id)
		if err != nil {
			return nil, err
		}
		return entity, nil
	}
}

// EntityCache is the cache the refresher writes to
type EntityCache interface {
	Set(ctx context.Context, concept domain.Concept, id int64, v any) error
	Invalidate(ctx context.Context, concept domain.Concept, id int64) error
}

type entityKey struct {
	concept domain.Concept
	id      int64
}

type pendingRefresh struct {
	timestamp time.Time
	timer     *time.Timer
}

// CacheRefresher reloads changed entities into the cache. Bursts of events
// for the same entity within the debounce window collapse into one reload.
type CacheRefresher struct {
	loaders Loaders
	cache   EntityCache
	metrics *metrics.Metrics
	cfg     config.WorkerConfig
	logger  *logger.Logger

	// bounds each load-and-store attempt
	attemptTimeout time.Duration

	mu         sync.Mutex
	pending    map[entityKey]*pendingRefresh
	shutdownCh chan struct{}
	wg         sync.WaitGroup
	ctx        context.Context
	cancel     context.CancelFunc
}

// NewCacheRefresher creates a new cache refresher
func NewCacheRefresher(
	loaders Loaders,
	cache EntityCache,
	m *metrics.Metrics,
	cfg config.WorkerConfig,
	log *logger.Logger,
) *CacheRefresher {
	ctx, cancel := context.WithCancel(context.Background())

	return &CacheRefresher{
		loaders:    loaders,
		cache:      cache,
		metrics:    m,
		cfg:        cfg,
		logger:         log,
		attemptTimeout: defaultAttemptTimeout,
		pending:        make(map[entityKey]*pendingRefresh),
		shutdownCh:     make(chan struct{}),
		ctx:            ctx,
		cancel:         cancel,
	}
}

// HandleEvent schedules a refresh for the entity named by a change event
func (w *CacheRefresher) HandleEvent(data []byte) error {
	event, err := events.DecodeChange(data)
	if err != nil {
		return err
	}

	if _, ok := w.loaders[event.Concept]; !ok {
		w.logger.Warnf("No loader for concept %q, ignoring %s", event.Concept, event.EventType)
		return nil
	}

	w.logger.WithFields(map[string]any{
		"event_type": event.EventType,
		"entity_id":  event.EntityID,
	}).Debug("Received change event")

	w.schedule(entityKey{concept: event.Concept, id: event.EntityID}, event.Timestamp)
	return nil
}

func (w *CacheRefresher) schedule(key entityKey, timestamp time.Time) {
	w.mu.Lock()
	defer w.mu.Unlock()

	select {
	case <-w.shutdownCh:
		w.logger.Info("Worker shutting down, ignoring new event")
		return
	default:
	}

	existing, found := w.pending[key]
	if found {
		if timestamp.Before(existing.timestamp) {
			w.logger.Debugf("Ignoring stale event for %s %d", key.concept, key.id)
			return
		}

		// A timer that already fired owns its WaitGroup slot; its refresh
		// reads the entity after this event anyway.
		if !existing.timer.Stop() {
			w.wg.Add(1)
		}
	} else {
		w.wg.Add(1)
	}

	p := &pendingRefresh{timestamp: timestamp}
	p.timer = time.AfterFunc(w.cfg.DebounceWindow, func() {
		w.refresh(key, p)
	})
	w.pending[key] = p
}

func (w *CacheRefresher) refresh(key entityKey, p *pendingRefresh) {
	defer w.wg.Done()

	w.mu.Lock()
	if w.pending[key] == p {
		delete(w.pending, key)
	}
	w.mu.Unlock()

	log := w.logger.WithFields(map[string]any{
		"concept":   key.concept.Key(),
		"entity_id": key.id,
	})

	policy := retry.Policy{
		Attempts:   w.cfg.MaxRetries,
		Backoff:    w.cfg.InitialBackoff,
		Multiplier: 2,
		Retryable:  w.retryableRefresh,
		OnRetry: func(attempt int, err error, wait time.Duration) {
			log.WithError(err).WithFields(map[string]any{
				"attempt":    attempt,
				"backoff_ms": wait.Milliseconds(),
			}).Warn("Retrying cache refresh")
		},
	}

	err := retry.Do(w.ctx, policy, func(ctx context.Context) error {
		attemptCtx, cancel := context.WithTimeout(ctx, w.attemptTimeout)
		defer cancel()
		return w.refreshOnce(attemptCtx, key)
	})

	switch {
	case err == nil:
		w.metrics.ObserveRefresh(key.concept, OutcomeRefreshed)
		log.Debug("Cache refreshed")
	case domain.HasScenario(err, domain.ScenarioNotFound):
		w.evict(key, log)
	default:
		w.metrics.ObserveRefresh(key.concept, OutcomeFailed)
		w.metrics.ObserveError(err)
		log.Error("Cache refresh failed", err)
	}
}

func (w *CacheRefresher) refreshOnce(ctx context.Context, key entityKey) error {
	entity, err := w.loaders[key.concept](ctx, key.id)
	if err != nil {
		return err
	}

	if err := w.cache.Set(ctx, key.concept, key.id, entity); err != nil {
		return fmt.Errorf("failed to cache %s %d: %w", key.concept, key.id, err)
	}
	return nil
}

// evict drops an entity that no longer exists
func (w *CacheRefresher) evict(key entityKey, log *logger.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), w.attemptTimeout)
	defer cancel()

	if err := w.cache.Invalidate(ctx, key.concept, key.id); err != nil {
		w.metrics.ObserveRefresh(key.concept, OutcomeFailed)
		log.Error("Failed to evict missing entity", err)
		return
	}

	w.metrics.ObserveRefresh(key.concept, OutcomeEvicted)
	log.Debug("Evicted missing entity")
}

// retryableRefresh retries transient domain failures, cache errors and
// attempts that ran out of time. Missing entities and rejected data are
// final, and nothing is retried once the worker is shutting down.
func (w *CacheRefresher) retryableRefresh(err error) bool {
	if w.ctx.Err() != nil {
		return false
	}
	if domain.HasScenario(err, domain.ScenarioNotFound) ||
		domain.HasScenario(err, domain.ScenarioInvalidInput) ||
		domain.HasScenario(err, domain.ScenarioConflict) {
		return false
	}
	// The worker context is live, so the deadline was the attempt's own
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	if _, ok := domain.AsError(err); ok {
		return domain.IsRetryable(err)
	}
	return !errors.Is(err, context.Canceled)
}

// Shutdown gracefully shuts down the worker.
// Cancels pending timers and waits for in-flight refreshes to complete.
func (w *CacheRefresher) Shutdown(ctx context.Context) error {
	w.logger.Info("Shutting down cache refresher...")

	close(w.shutdownCh)
	w.cancel()

	w.mu.Lock()
	cancelled := 0
	for key, p := range w.pending {
		if p.timer.Stop() {
			w.wg.Done()
			cancelled++
		}
		delete(w.pending, key)
	}
	w.mu.Unlock()

	w.logger.WithFields(map[string]any{
		"cancelled_refreshes": cancelled,
	}).Info("Cancelled pending refreshes")

	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		w.logger.Info("All in-flight refreshes completed")
		return nil
	case <-ctx.Done():
		w.logger.Warn("Shutdown timeout reached, forcing exit")
		return ctx.Err()
	}
}

// GetPendingCount returns the number of scheduled refreshes (used for monitoring/testing)
func (w *CacheRefresher) GetPendingCount() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.pending)
}
