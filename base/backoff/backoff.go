package backoff

import (
	"context"
	"math"
	"time"
)

type BackoffStrategy interface {
	GetBackoffDuration(int, time.Duration, time.Duration) time.Duration
}

type Backoff struct {
	LastDuration time.Duration
	NextDuration time.Duration
	start        time.Duration
	limit        time.Duration
	count        int
	strategy     BackoffStrategy
}

func NewBackoff(strategy BackoffStrategy, start time.Duration, limit time.Duration) *Backoff {
	backoff := Backoff{strategy: strategy, start: start, limit: limit}
	backoff.Reset()
	return &backoff
}

func (b *Backoff) Reset() {
	b.count = 0
	b.LastDuration = 0
	b.NextDuration = b.getNextDuration()
}

// Count returns the number of completed waits since the last reset
func (b *Backoff) Count() int {
	return b.count
}

// Backoff sleeps for NextDuration unless ctx ends first
func (b *Backoff) Backoff(ctx context.Context) error {
	timer := time.NewTimer(b.NextDuration)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
	}
	b.count++
	b.LastDuration = b.NextDuration
	b.NextDuration = b.getNextDuration()
	return nil
}

// Poll calls fn until it reports done or returns an error, waiting between
// calls. It returns ctx.Err() if ctx ends first.
func (b *Backoff) Poll(ctx context.Context, fn func() (bool, error)) error {
	for {
		done, err := fn()
		if err != nil {
			return err
		}
		if done {
			return nil
		}
		if err := b.Backoff(ctx); err != nil {
			return err
		}
	}
}

func (b *Backoff) getNextDuration() time.Duration {
	if b.limit > 0 && b.LastDuration >= b.limit {
		return b.limit
	}
	backoff := b.strategy.GetBackoffDuration(b.count, b.start, b.LastDuration)
	if b.limit > 0 && (backoff > b.limit || backoff < 0) {
		backoff = b.limit
	}
	return backoff
}

type exponential struct{}

// GetBackoffDuration doubles start per count and saturates at the largest
// duration instead of wrapping.
func (exponential) GetBackoffDuration(backoffCount int, start time.Duration, lastBackoff time.Duration) time.Duration {
	if start <= 0 {
		return start
	}
	if backoffCount >= 63 || start > time.Duration(math.MaxInt64>>uint(backoffCount)) {
		return time.Duration(math.MaxInt64)
	}
	return start << uint(backoffCount)
}

func NewExponential(start time.Duration, limit time.Duration) *Backoff {
	return NewBackoff(exponential{}, start, limit)
}

type constant struct{}

func (constant) GetBackoffDuration(backoffCount int, start time.Duration, lastBackoff time.Duration) time.Duration {
	return start
}

func NewConstant(interval time.Duration) *Backoff {
	return NewBackoff(constant{}, interval, 0)
}
