package core

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestContextConcurrentAccess tests that context values can be safely accessed concurrently.
func TestContextConcurrentAccess(t *testing.T) {
	fixed := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	ctx := WithClock(WithSuppressHeader(context.Background()), fixed)

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			assert.True(t, shouldSuppressHeader(ctx), "Goroutine %d: header should be suppressed", id)
			assert.Equal(t, fixed, Now(ctx), "Goroutine %d: clock should be fixed", id)
		}(i)
	}
	wg.Wait()
}

// TestContextIsolation tests that different contexts maintain isolation.
func TestContextIsolation(t *testing.T) {
	base := context.Background()
	suppressed := WithSuppressHeader(base)

	assert.False(t, shouldSuppressHeader(base))
	assert.True(t, shouldSuppressHeader(suppressed))

	before := time.Now()
	assert.False(t, Now(suppressed).Before(before), "no clock falls back to wall time")
}
