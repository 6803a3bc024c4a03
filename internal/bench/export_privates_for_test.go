package bench

import "time"

// Test-Bridge (White-Box)
//
// Purpose:
//   - Let bench_test replace the runner's time source, so timing assertions
//     are deterministic instead of sampling a real clock.

// SetClock_TestOnly swaps the runner's time source.
func (r *Runner) SetClock_TestOnly(clock func() time.Time) {
	r.now = clock
}
