package count_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/monotone/count"
)

// TestCrossCheck_GridAgrees replays the full 6×6 grid through every
// strategy; all derivations must coincide on every cell.
func TestCrossCheck_GridAgrees(t *testing.T) {
	t.Parallel()

	require.NoError(t, count.CrossCheck(context.Background(), 6, 6))
}

// TestCrossCheck_TallGrid stresses the shape where the reducer and closed
// form diverge structurally (long sequences over tiny alphabets): brute
// force stays cheap because 2^12 and 3^8 are small spaces.
func TestCrossCheck_TallGrid(t *testing.T) {
	t.Parallel()

	require.NoError(t, count.CrossCheck(context.Background(), 3, 8))
}

// TestCrossCheck_HonorsCancellation verifies an already-cancelled context
// aborts the grid without fabricating a verdict.
func TestCrossCheck_HonorsCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := count.CrossCheck(ctx, 4, 4)
	require.ErrorIs(t, err, context.Canceled)
}

// TestCrossCheck_DomainAndOptions verifies boundary validation: bad grid
// bounds and bad options are rejected before any cell runs, options first.
func TestCrossCheck_DomainAndOptions(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, count.CrossCheck(context.Background(), 0, 3), count.ErrDomain)
	require.ErrorIs(t, count.CrossCheck(context.Background(), 3, 0), count.ErrDomain)

	err := count.CrossCheck(context.Background(), 0, 0, count.WithStrategy(count.Strategy(99)))
	require.ErrorIs(t, err, count.ErrUnknownStrategy)
}

// TestCrossCheck_ForwardsGuardOptions verifies per-cell brute-force guards
// surface through the oracle: a ten-state limit cannot cover a 3×3 grid.
func TestCrossCheck_ForwardsGuardOptions(t *testing.T) {
	t.Parallel()

	err := count.CrossCheck(context.Background(), 3, 3, count.WithBruteForceLimit(10))
	require.ErrorIs(t, err, count.ErrIntractable)
}
