// Package count_test verifies the counters are safe for concurrent callers:
// evaluation is pure, so goroutines hammering the same cells must always
// agree and never race.
package count_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/monotone/count"
)

// TestConcurrentCounters runs every strategy from many goroutines against a
// shared set of cells and checks all answers afterwards.
func TestConcurrentCounters(t *testing.T) {
	t.Parallel()

	const workers = 64
	want := map[[2]int]string{
		{4, 3}: "28",
		{5, 4}: "490",
		{5, 5}: "2878",
	}

	results := make([]string, workers)
	var wg sync.WaitGroup
	wg.Add(workers)

	cells := [][2]int{{4, 3}, {5, 4}, {5, 5}}
	for w := 0; w < workers; w++ {
		go func(w int) {
			defer wg.Done()
			cell := cells[w%len(cells)]
			s := allStrategies[w%len(allStrategies)]

			got, err := count.NonMonotone(cell[0], cell[1], count.WithStrategy(s))
			if err != nil {
				results[w] = err.Error()
				return
			}
			results[w] = got.String()
		}(w)
	}
	wg.Wait()

	for w, got := range results {
		cell := cells[w%len(cells)]
		require.Equal(t, want[cell], got, "worker %d on cell %v", w, cell)
	}
}

// TestConcurrentOracles runs several whole-grid verifications in parallel;
// the oracle spawns its own goroutines, so this doubles as a nesting check.
func TestConcurrentOracles(t *testing.T) {
	t.Parallel()

	const oracles = 4
	errs := make([]error, oracles)
	var wg sync.WaitGroup
	wg.Add(oracles)

	for i := 0; i < oracles; i++ {
		go func(i int) {
			defer wg.Done()
			errs[i] = count.CrossCheck(context.Background(), 4, 4)
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		require.NoError(t, err, "oracle %d", i)
	}
}
