package timeutil

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMaxDuration(t *testing.T) {
	tests := []struct {
		name      string
		durations []time.Duration
		want      time.Duration
	}{
		{
			name:      "multiple values returns maximum",
			durations: []time.Duration{100 * time.Millisecond, 500 * time.Millisecond, 200 * time.Millisecond},
			want:      500 * time.Millisecond,
		},
		{
			name:      "single value returns that value",
			durations: []time.Duration{300 * time.Millisecond},
			want:      300 * time.Millisecond,
		},
		{
			name:      "empty slice returns zero",
			durations: []time.Duration{},
			want:      0,
		},
		{
			name:      "all negative returns least negative",
			durations: []time.Duration{-100 * time.Millisecond, -50 * time.Millisecond, -200 * time.Millisecond},
			want:      -50 * time.Millisecond,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MaxDuration(tt.durations); got != tt.want {
				t.Errorf("MaxDuration() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestComputeJitter(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	assert.Equal(t, time.Duration(0), ComputeJitter(0, rng))
	assert.Equal(t, time.Duration(0), ComputeJitter(-time.Second, rng))
	assert.Equal(t, time.Duration(0), ComputeJitter(time.Second, nil))

	for i := 0; i < 1000; i++ {
		got := ComputeJitter(100*time.Millisecond, rng)
		if got < 0 || got >= 100*time.Millisecond {
			t.Fatalf("ComputeJitter() = %v, want in [0, 100ms)", got)
		}
	}
}

func TestExponentialBackoffDelay(t *testing.T) {
	tests := []struct {
		name         string
		backoffCount int
		backoffParam BackoffParam
		want         time.Duration
	}{
		{
			name:         "first backoff",
			backoffCount: 1,
			backoffParam: NewBackoffParam(1*time.Second, 2.0, 30*time.Second),
			want:         1 * time.Second,
		},
		{
			name:         "third backoff quadruples",
			backoffCount: 3,
			backoffParam: NewBackoffParam(1*time.Second, 2.0, 30*time.Second),
			want:         4 * time.Second,
		},
		{
			name:         "backoff hits max cap",
			backoffCount: 10,
			backoffParam: NewBackoffParam(1*time.Second, 2.0, 10*time.Second),
			want:         10 * time.Second,
		},
		{
			name:         "zero count treated as first",
			backoffCount: 0,
			backoffParam: NewBackoffParam(1*time.Second, 2.0, 30*time.Second),
			want:         1 * time.Second,
		},
		{
			name:         "fractional multiplier",
			backoffCount: 2,
			backoffParam: NewBackoffParam(1*time.Second, 1.5, 30*time.Second),
			want:         1500 * time.Millisecond,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExponentialBackoffDelay(tt.backoffCount, 0, nil, tt.backoffParam)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExponentialBackoffDelay_JitterBounded(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	param := NewBackoffParam(time.Second, 2.0, 30*time.Second)

	for i := 0; i < 100; i++ {
		got := ExponentialBackoffDelay(2, 50*time.Millisecond, rng, param)
		if got < 2*time.Second || got >= 2*time.Second+50*time.Millisecond {
			t.Fatalf("ExponentialBackoffDelay() = %v, want in [2s, 2.05s)", got)
		}
	}
}

func TestSleep_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	err := Sleep(ctx, time.Minute)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Less(t, time.Since(start), time.Second)
}

func TestSleep_Elapses(t *testing.T) {
	err := Sleep(context.Background(), 5*time.Millisecond)
	assert.NoError(t, err)
}
