package retry

import (
	"time"

	"github.com/rohmanhakim/recipebox/pkg/failure"
	"github.com/rohmanhakim/recipebox/pkg/timeutil"
)

// RetryParam is built by the caller, usually from config. Retry itself
// knows nothing about where the values came from.
type RetryParam struct {
	Jitter       time.Duration
	RandomSeed   int64
	MaxAttempts  int
	BackoffParam timeutil.BackoffParam
	// OnRetry, when set, is called before each wait with the attempt that
	// just failed and the delay about to be slept.
	OnRetry func(attempt int, delay time.Duration, err failure.ClassifiedError)
}

func NewRetryParam(
	jitter time.Duration,
	randomSeed int64,
	maxAttempts int,
	backoffParam timeutil.BackoffParam,
) RetryParam {
	return RetryParam{
		Jitter:       jitter,
		RandomSeed:   randomSeed,
		MaxAttempts:  maxAttempts,
		BackoffParam: backoffParam,
	}
}

// WithOnRetry returns a copy of p that reports each retry to fn.
func (p RetryParam) WithOnRetry(fn func(attempt int, delay time.Duration, err failure.ClassifiedError)) RetryParam {
	p.OnRetry = fn
	return p
}
