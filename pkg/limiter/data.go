package limiter

import "time"

// timing-related data used to decide when a host may be requested again
type hostTiming struct {
	lastFetchAt  time.Time
	backoffDelay time.Duration
	hostDelay    time.Duration
	backoffCount int
}

func (h hostTiming) HostDelay() time.Duration {
	return h.hostDelay
}

func (h hostTiming) BackoffDelay() time.Duration {
	return h.backoffDelay
}

func (h hostTiming) LastFetchAt() time.Time {
	return h.lastFetchAt
}

func (h hostTiming) BackoffCount() int {
	return h.backoffCount
}
