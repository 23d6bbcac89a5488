package bookings

import (
	"context"
	"errors"
	"time"
)

// errorWithLabels is satisfied by the mongo driver's labeled errors.
type errorWithLabels interface {
	error
	HasErrorLabel(label string) bool
}

// isTransient reports whether the commit failed in a way that can succeed on
// a clean re-run, as opposed to losing the slot to another booking.
func isTransient(err error) bool {
	var labeled errorWithLabels
	if !errors.As(err, &labeled) {
		return false
	}
	return labeled.HasErrorLabel("TransientTransactionError") ||
		labeled.HasErrorLabel("UnknownTransactionCommitResult")
}

// retryPolicy re-runs the commit on transient transaction failures with a
// doubling backoff. Non-transient errors surface immediately.
type retryPolicy struct {
	maxAttempts int
	baseDelay   time.Duration
}

func (p retryPolicy) run(ctx context.Context, fn func() error) error {
	var lastErr error
	for attempt := 0; attempt < p.maxAttempts; attempt++ {
		if attempt > 0 {
			delay := p.baseDelay * time.Duration(1<<(attempt-1))
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}

		lastErr = fn()
		if lastErr == nil {
			return nil
		}
		if !isTransient(lastErr) {
			return lastErr
		}
	}
	return lastErr
}
