package bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type labeledError struct {
	labels []string
}

func (e *labeledError) Error() string {
	return "transaction error"
}

func (e *labeledError) HasErrorLabel(label string) bool {
	for _, l := range e.labels {
		if l == label {
			return true
		}
	}
	return false
}

func transientError() error {
	return &labeledError{labels: []string{"TransientTransactionError"}}
}

func TestIsTransient(t *testing.T) {
	t.Run("Transient Transaction Label", func(t *testing.T) {
		assert.True(t, isTransient(transientError()))
	})

	t.Run("Unknown Commit Result Label", func(t *testing.T) {
		assert.True(t, isTransient(&labeledError{labels: []string{"UnknownTransactionCommitResult"}}))
	})

	t.Run("Other Labels Are Not Transient", func(t *testing.T) {
		assert.False(t, isTransient(&labeledError{labels: []string{"SomethingElse"}}))
	})

	t.Run("Plain Errors Are Not Transient", func(t *testing.T) {
		assert.False(t, isTransient(errors.New("boom")))
	})

	t.Run("Wrapped Labeled Errors Are Found", func(t *testing.T) {
		wrapped := errors.Join(errors.New("outer"), transientError())
		assert.True(t, isTransient(wrapped))
	})
}

func TestRetryPolicy(t *testing.T) {
	policy := retryPolicy{maxAttempts: 3, baseDelay: time.Millisecond}

	t.Run("Success On First Attempt", func(t *testing.T) {
		attempts := 0
		err := policy.run(context.Background(), func() error {
			attempts++
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 1, attempts)
	})

	t.Run("Non Transient Error Surfaces Immediately", func(t *testing.T) {
		attempts := 0
		boom := errors.New("boom")
		err := policy.run(context.Background(), func() error {
			attempts++
			return boom
		})
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, 1, attempts)
	})

	t.Run("Transient Error Retried Until Success", func(t *testing.T) {
		attempts := 0
		err := policy.run(context.Background(), func() error {
			attempts++
			if attempts < 3 {
				return transientError()
			}
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 3, attempts)
	})

	t.Run("Attempts Are Capped", func(t *testing.T) {
		attempts := 0
		err := policy.run(context.Background(), func() error {
			attempts++
			return transientError()
		})
		require.Error(t, err)
		assert.True(t, isTransient(err), "the last transient error is returned")
		assert.Equal(t, 3, attempts)
	})

	t.Run("Cancelled Context Stops The Backoff", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		attempts := 0
		err := policy.run(ctx, func() error {
			attempts++
			cancel()
			return transientError()
		})
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 1, attempts)
	})
}
