package fetch

import (
	"time"

	"github.com/cenkalti/backoff/v5"
)

// GET traffic backs off linearly (1s, 2s, 3s) while POST traffic backs off
// exponentially (1s, 2s, 4s). The asymmetry is intentional and matches the
// schedules the upstreams were tuned against; both schedules are explicit
// backoff.BackOff implementations so neither is an accident of arithmetic.

// linearBackOff yields step, 2*step, 3*step, ...
type linearBackOff struct {
	step time.Duration
	n    int
}

func newLinearBackOff(step time.Duration) *linearBackOff {
	return &linearBackOff{step: step}
}

func (b *linearBackOff) NextBackOff() time.Duration {
	b.n++
	return time.Duration(b.n) * b.step
}

func (b *linearBackOff) Reset() {
	b.n = 0
}

// newExponentialBackOff yields initial, 2*initial, 4*initial, ... with no
// jitter, so retry timing stays deterministic and testable.
func newExponentialBackOff(initial time.Duration) backoff.BackOff {
	b := &backoff.ExponentialBackOff{
		InitialInterval:     initial,
		RandomizationFactor: 0,
		Multiplier:          2,
		MaxInterval:         30 * time.Second,
	}
	b.Reset()
	return b
}
