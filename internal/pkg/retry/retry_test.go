package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Pesokrava/tournament_registry/internal/domain"
)

func TestDo_SucceedsFirstTime(t *testing.T) {
	calls := 0
	err := Do(context.Background(), Policy{Attempts: 3}, func(ctx context.Context) error {
		calls++
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestDo_RetriesOperationFailureOnce(t *testing.T) {
	failure := domain.NewProfileOperationFailure(domain.OpFind, errors.New("conn reset"))
	calls := 0

	err := Do(context.Background(), Policy{Attempts: 2, Backoff: time.Millisecond, Retryable: domain.IsRetryable},
		func(ctx context.Context) error {
			calls++
			if calls == 1 {
				return failure
			}
			return nil
		})

	assert.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestDo_DoesNotRetryNotFound(t *testing.T) {
	notFound := domain.NewProfileNotFound(1)
	calls := 0

	err := Do(context.Background(), Policy{Attempts: 5, Backoff: time.Millisecond, Retryable: domain.IsRetryable},
		func(ctx context.Context) error {
			calls++
			return notFound
		})

	assert.Same(t, notFound, err)
	assert.Equal(t, 1, calls)
}

func TestDo_ReturnsLastErrorUnchanged(t *testing.T) {
	failure := domain.NewMunicipalityOperationFailure(domain.OpList, errors.New("timeout"))
	var retried []int

	err := Do(context.Background(), Policy{
		Attempts:   3,
		Backoff:    time.Millisecond,
		Multiplier: 2,
		OnRetry: func(attempt int, err error, wait time.Duration) {
			retried = append(retried, attempt)
		},
	}, func(ctx context.Context) error {
		return failure
	})

	assert.Same(t, failure, err)
	assert.Equal(t, []int{1, 2}, retried)
}

func TestDo_StopsWhenContextDone(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	failure := errors.New("transient")
	calls := 0

	err := Do(ctx, Policy{Attempts: 3, Backoff: time.Hour}, func(ctx context.Context) error {
		calls++
		return failure
	})

	assert.Same(t, failure, err)
	assert.Equal(t, 1, calls)
}

func TestDo_BackoffGrowsByMultiplier(t *testing.T) {
	var waits []time.Duration

	_ = Do(context.Background(), Policy{
		Attempts:   4,
		Backoff:    time.Millisecond,
		Multiplier: 2,
		OnRetry: func(attempt int, err error, wait time.Duration) {
			waits = append(waits, wait)
		},
	}, func(ctx context.Context) error {
		return errors.New("transient")
	})

	assert.Equal(t, []time.Duration{time.Millisecond, 2 * time.Millisecond, 4 * time.Millisecond}, waits)
}

func TestDo_ConstantBackoffWithoutMultiplier(t *testing.T) {
	var waits []time.Duration

	_ = Do(context.Background(), Policy{
		Attempts: 3,
		Backoff:  time.Millisecond,
		OnRetry: func(attempt int, err error, wait time.Duration) {
			waits = append(waits, wait)
		},
	}, func(ctx context.Context) error {
		return errors.New("transient")
	})

	assert.Equal(t, []time.Duration{time.Millisecond, time.Millisecond}, waits)
}
