package resilient

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestBreaker(cfg BreakerConfig) (*Breaker, *time.Time) {
	b := NewBreaker(cfg)
	now := time.Now()
	b.now = func() time.Time { return now }
	return b, &now
}

func TestBreakerTripsAfterConsecutiveFailures(t *testing.T) {
	b, _ := newTestBreaker(BreakerConfig{FailureThreshold: 3})

	assert.Equal(t, StateClosed, b.State())
	for i := 0; i < 2; i++ {
		assert.True(t, b.Allow())
		b.Failure()
	}
	assert.Equal(t, StateClosed, b.State())

	b.Failure()
	assert.Equal(t, StateOpen, b.State())
	assert.False(t, b.Allow())
}

func TestBreakerSuccessResetsCount(t *testing.T) {
	b, _ := newTestBreaker(BreakerConfig{FailureThreshold: 3})

	b.Failure()
	b.Failure()
	b.Success()
	b.Failure()
	b.Failure()
	assert.Equal(t, StateClosed, b.State())
}

func TestBreakerWindowExpiry(t *testing.T) {
	b, now := newTestBreaker(BreakerConfig{FailureThreshold: 3, Window: time.Minute})

	b.Failure()
	b.Failure()
	// failures outside the window start a fresh count
	*now = now.Add(2 * time.Minute)
	b.Failure()
	b.Failure()
	assert.Equal(t, StateClosed, b.State())

	b.Failure()
	assert.Equal(t, StateOpen, b.State())
}

func TestBreakerHalfOpenProbe(t *testing.T) {
	b, now := newTestBreaker(BreakerConfig{FailureThreshold: 1, Cooldown: 30 * time.Second})

	b.Failure()
	assert.Equal(t, StateOpen, b.State())
	assert.False(t, b.Allow())

	// cooldown elapses; exactly one probe gets through
	*now = now.Add(31 * time.Second)
	assert.True(t, b.Allow())
	assert.Equal(t, StateHalfOpen, b.State())
	assert.False(t, b.Allow())

	b.Success()
	assert.Equal(t, StateClosed, b.State())
	assert.True(t, b.Allow())
}

func TestBreakerHalfOpenFailureReopens(t *testing.T) {
	b, now := newTestBreaker(BreakerConfig{FailureThreshold: 1, Cooldown: 30 * time.Second})

	b.Failure()
	*now = now.Add(31 * time.Second)
	assert.True(t, b.Allow())

	b.Failure()
	assert.Equal(t, StateOpen, b.State())
	assert.False(t, b.Allow())

	// a second cooldown earns another probe
	*now = now.Add(31 * time.Second)
	assert.True(t, b.Allow())
}
