package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIPRateLimiter(t *testing.T) {
	limiter := NewIPRateLimiter(1, 2, testLogger())

	l1 := limiter.GetLimiter("1.2.3.4")
	l2 := limiter.GetLimiter("1.2.3.4")
	assert.Same(t, l1, l2)

	other := limiter.GetLimiter("5.6.7.8")
	assert.NotSame(t, l1, other)

	// Burst of 2, then the bucket is empty
	assert.True(t, l1.Allow())
	assert.True(t, l1.Allow())
	assert.False(t, l1.Allow())

	// Independent bucket per IP
	assert.True(t, other.Allow())
}
