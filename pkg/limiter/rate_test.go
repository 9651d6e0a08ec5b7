package limiter_test

import (
	"testing"
	"time"

	"github.com/rohmanhakim/recipebox/pkg/limiter"
	"github.com/rohmanhakim/recipebox/pkg/timeutil"
)

func TestNewConcurrentRateLimiter(t *testing.T) {
	rl := limiter.NewConcurrentRateLimiter()
	rl.SetBaseDelay(time.Second)
	rl.SetJitter(100 * time.Millisecond)
	rl.SetRandomSeed(42)

	if rl.BaseDelay() != time.Second {
		t.Errorf("baseDelay = %v, want %v", rl.BaseDelay(), time.Second)
	}
	if rl.Jitter() != 100*time.Millisecond {
		t.Errorf("jitter = %v, want %v", rl.Jitter(), 100*time.Millisecond)
	}
	if rl.HostTimings() == nil {
		t.Error("hostTimings map not initialized")
	}
}

func TestRateLimiter_SetHostDelay(t *testing.T) {
	rl := limiter.NewConcurrentRateLimiter()
	host := "example.com"

	rl.SetHostDelay(host, 2*time.Second)

	timing := rl.HostTimings()[host]
	if timing.HostDelay() != 2*time.Second {
		t.Errorf("hostDelay = %v, want 2s", timing.HostDelay())
	}
}

func TestRateLimiter_Backoff(t *testing.T) {
	rl := limiter.NewConcurrentRateLimiter()
	rl.SetBackoffParam(timeutil.NewBackoffParam(time.Second, 2.0, 30*time.Second))
	host := "example.com"

	rl.Backoff(host)
	timing1 := rl.HostTimings()[host]
	if timing1.BackoffCount() != 1 {
		t.Errorf("backoffCount after first Backoff = %d, want 1", timing1.BackoffCount())
	}
	if timing1.BackoffDelay() != time.Second {
		t.Errorf("backoffDelay after first Backoff = %v, want 1s", timing1.BackoffDelay())
	}

	rl.Backoff(host)
	timing2 := rl.HostTimings()[host]
	if timing2.BackoffCount() != 2 {
		t.Errorf("backoffCount after second Backoff = %d, want 2", timing2.BackoffCount())
	}
	if timing2.BackoffDelay() != 2*time.Second {
		t.Errorf("backoffDelay after second Backoff = %v, want 2s", timing2.BackoffDelay())
	}

	rl.ResetBackoff(host)
	timing3 := rl.HostTimings()[host]
	if timing3.BackoffCount() != 0 || timing3.BackoffDelay() != 0 {
		t.Errorf("expected backoff reset, got count=%d delay=%v", timing3.BackoffCount(), timing3.BackoffDelay())
	}
}

func TestRateLimiter_ResolveDelay_UnknownHost(t *testing.T) {
	rl := limiter.NewConcurrentRateLimiter()
	rl.SetBaseDelay(time.Second)

	if got := rl.ResolveDelay("never-fetched.example"); got != 0 {
		t.Errorf("ResolveDelay() = %v, want 0 for unknown host", got)
	}
}

func TestRateLimiter_ResolveDelay_ZeroBaseDelay(t *testing.T) {
	rl := limiter.NewConcurrentRateLimiter()
	rl.SetJitter(500 * time.Millisecond)
	host := "example.com"
	rl.MarkLastFetchAsNow(host)

	if got := rl.ResolveDelay(host); got != 0 {
		t.Errorf("ResolveDelay() = %v, want 0 when no delay is configured", got)
	}
}

func TestRateLimiter_ResolveDelay_RemainingTime(t *testing.T) {
	rl := limiter.NewConcurrentRateLimiter()
	rl.SetBaseDelay(time.Second)
	rl.SetJitter(0)
	host := "example.com"
	rl.MarkLastFetchAsNow(host)

	got := rl.ResolveDelay(host)
	if got <= 0 || got > time.Second {
		t.Errorf("ResolveDelay() = %v, want in (0, 1s]", got)
	}
}

func TestRateLimiter_ResolveDelay_HostDelayWins(t *testing.T) {
	rl := limiter.NewConcurrentRateLimiter()
	rl.SetBaseDelay(10 * time.Millisecond)
	rl.SetJitter(0)
	host := "example.com"
	rl.MarkLastFetchAsNow(host)
	rl.SetHostDelay(host, 5*time.Second)

	got := rl.ResolveDelay(host)
	if got <= time.Second {
		t.Errorf("ResolveDelay() = %v, want close to 5s", got)
	}
}
