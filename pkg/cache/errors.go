package cache

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrLocked is returned when a database file is held by another process.
	ErrLocked = errors.New("cache database locked")

	// ErrClosed is returned when a closed cache is used.
	ErrClosed = errors.New("cache closed")
)

// RetryableError marks a failure that may succeed on a later attempt, such
// as bbolt timing out on a file lock another citeorder process holds.
type RetryableError struct{ Err error }

// Retryable marks err as retryable. It returns nil for a nil err.
func Retryable(err error) error {
	if err == nil {
		return nil
	}
	return &RetryableError{Err: err}
}

func (e *RetryableError) Error() string { return e.Err.Error() }

func (e *RetryableError) Unwrap() error { return e.Err }

// IsRetryable reports whether any error in err's chain is a RetryableError.
func IsRetryable(err error) bool {
	var re *RetryableError
	return errors.As(err, &re)
}

// retryDelay is the wait before the second attempt; it doubles after that.
var retryDelay = 200 * time.Millisecond

// retryAttempts bounds RetryWithBackoff.
const retryAttempts = 3

// RetryWithBackoff calls fn until it succeeds, returns an error not marked
// [Retryable], or has been tried three times. It returns ctx.Err() if ctx
// ends while waiting between attempts.
func RetryWithBackoff(ctx context.Context, fn func() error) error {
	delay := retryDelay
	for attempt := 1; ; attempt++ {
		err := fn()
		if err == nil || !IsRetryable(err) || attempt == retryAttempts {
			return err
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
		delay *= 2
	}
}
