// Package providers contains the simulated watchlist sources. Each one
// reproduces a real provider's latency envelope and exposes deterministic
// trigger values so end-to-end behavior can be exercised without external
// connectivity.
package providers

import (
	"context"
	"math/rand/v2"
	"time"
)

// simulateLatency sleeps a random duration in [min, max], honoring context
// cancellation so provider timeouts cut the wait short.
func simulateLatency(ctx context.Context, min, max time.Duration) error {
	d := min
	if max > min {
		d += rand.N(max - min)
	}
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
