package retry

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/rohmanhakim/recipebox/pkg/failure"
	"github.com/rohmanhakim/recipebox/pkg/timeutil"
)

// Retry executes fn up to MaxAttempts times, applying exponential backoff
// with jitter between attempts. Only retryable errors trigger another attempt;
// a non-retryable error is returned as-is. Waiting between attempts stops
// early when ctx is done.
//
// Type parameter T represents the return type of the function being retried.
func Retry[T any](
	ctx context.Context,
	retryParam RetryParam,
	fn func(ctx context.Context) (T, failure.ClassifiedError),
) (T, failure.ClassifiedError) {
	var lastErr failure.ClassifiedError
	var zero T

	if retryParam.MaxAttempts < 1 {
		return zero, &RetryError{
			Message:   "max attempt cannot be 0",
			Cause:     ErrZeroAttempt,
			Retryable: false,
		}
	}

	rng := rand.New(rand.NewSource(retryParam.RandomSeed))

	for attempt := 1; attempt <= retryParam.MaxAttempts; attempt++ {
		result, err := fn(ctx)
		if err == nil {
			return result, nil
		}
		lastErr = err

		if !isErrorRetryable(err) {
			return zero, err
		}

		// a single attempt means the caller opted out of retrying
		if retryParam.MaxAttempts == 1 {
			return zero, err
		}

		if attempt == retryParam.MaxAttempts {
			break
		}

		backoffDelay := timeutil.ExponentialBackoffDelay(
			attempt,
			retryParam.Jitter,
			rng,
			retryParam.BackoffParam,
		)
		if retryParam.OnRetry != nil {
			retryParam.OnRetry(attempt, backoffDelay, err)
		}

		if sleepErr := timeutil.Sleep(ctx, backoffDelay); sleepErr != nil {
			return zero, &RetryError{
				Message:   fmt.Sprintf("stopped after %d attempts: %v", attempt, sleepErr),
				Cause:     ErrCancelled,
				Retryable: false,
				Err:       lastErr,
			}
		}
	}

	return zero, &RetryError{
		Message:   fmt.Sprintf("exhausted %d attempts. Last error: %v", retryParam.MaxAttempts, lastErr),
		Cause:     ErrExhaustedAttempts,
		Retryable: true,
		Err:       lastErr,
	}
}

// isErrorRetryable checks whether an error should be retried.
// Errors that do not expose IsRetryable fall back to their severity.
func isErrorRetryable(err failure.ClassifiedError) bool {
	type hasRetryable interface {
		IsRetryable() bool
	}
	if r, ok := err.(hasRetryable); ok {
		return r.IsRetryable()
	}
	return err.Severity() == failure.SeverityRecoverable
}
