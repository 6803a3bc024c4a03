package bench

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/monotone/count"
	"github.com/katalvlaran/monotone/exact"
)

// Measurement is one timed case×strategy cell of a sweep.
type Measurement struct {
	N        int
	L        int
	Strategy count.Strategy
	States   *big.Int // n^l, the size of the enumerated space
	Result   *big.Int // B(n,l), re-verified against the closed form
	MinNS    int64    // fastest repetition
	MeanNS   int64    // arithmetic mean over repetitions
	Reps     int
}

// Report is the ordered outcome of one plan run: cases in plan order, and
// within each case the strategies in plan order.
type Report struct {
	Measurements []Measurement
}

// Runner times the counting strategies over a plan. The zero value is not
// usable; construct with NewRunner.
type Runner struct {
	log *zap.Logger
	now func() time.Time
}

// NewRunner returns a Runner logging through log; nil gets a no-op logger.
func NewRunner(log *zap.Logger) *Runner {
	if log == nil {
		log = zap.NewNop()
	}

	return &Runner{log: log, now: time.Now}
}

// Run executes the plan and returns the full measurement grid.
//
// Every measured result is compared against the closed form for its cell;
// a disagreement aborts the sweep with an error wrapping count.ErrMismatch.
// Cancellation is honored between repetitions, never mid-evaluation.
//
// Errors: plan sentinels, ctx.Err(), count evaluation errors (including
// count.ErrIntractable for under-provisioned brute-force cells), and
// wrapped count.ErrMismatch.
func (r *Runner) Run(ctx context.Context, p Plan) (Report, error) {
	if err := p.Validate(); err != nil {
		return Report{}, err
	}

	guard := make([]count.Option, 0, 1)
	if p.StateLimit > 0 {
		guard = append(guard, count.WithBruteForceLimit(p.StateLimit))
	}

	grid := make([]Measurement, 0, len(p.Cases)*len(p.Strategies))
	for _, c := range p.Cases {
		states, err := exact.Pow(c.N, c.L)
		if err != nil {
			return Report{}, err
		}
		expected, err := count.NonMonotone(c.N, c.L)
		if err != nil {
			return Report{}, err
		}

		for _, name := range p.Strategies {
			s, perr := count.ParseStrategy(name)
			if perr != nil {
				return Report{}, perr // unreachable after Validate
			}

			m, merr := r.measure(ctx, c, s, guard, p.Reps, states, expected)
			if merr != nil {
				return Report{}, merr
			}
			grid = append(grid, m)
		}
	}

	r.log.Info("sweep complete",
		zap.Int("cases", len(p.Cases)),
		zap.Int("measurements", len(grid)))

	return Report{Measurements: grid}, nil
}

// measure times one case×strategy cell over reps repetitions.
func (r *Runner) measure(
	ctx context.Context,
	c Case,
	s count.Strategy,
	guard []count.Option,
	reps int,
	states, expected *big.Int,
) (Measurement, error) {
	opts := make([]count.Option, 0, len(guard)+1)
	opts = append(opts, guard...)
	opts = append(opts, count.WithStrategy(s))

	var (
		result  *big.Int
		minNS   int64
		totalNS int64
	)
	for rep := 0; rep < reps; rep++ {
		select {
		case <-ctx.Done():
			return Measurement{}, ctx.Err()
		default:
		}

		start := r.now()
		v, err := count.NonMonotone(c.N, c.L, opts...)
		elapsed := r.now().Sub(start).Nanoseconds()
		if err != nil {
			return Measurement{}, fmt.Errorf("cell (n=%d, l=%d) %s: %w", c.N, c.L, s, err)
		}

		if v.Cmp(expected) != 0 {
			return Measurement{}, fmt.Errorf(
				"cell (n=%d, l=%d) %s returned %s, closed form says %s: %w",
				c.N, c.L, s, v, expected, count.ErrMismatch)
		}

		result = v
		totalNS += elapsed
		if rep == 0 || elapsed < minNS {
			minNS = elapsed
		}
	}

	m := Measurement{
		N:        c.N,
		L:        c.L,
		Strategy: s,
		States:   states,
		Result:   result,
		MinNS:    minNS,
		MeanNS:   totalNS / int64(reps),
		Reps:     reps,
	}

	r.log.Debug("timed cell",
		zap.Int("n", m.N),
		zap.Int("l", m.L),
		zap.Stringer("strategy", m.Strategy),
		zap.String("result", m.Result.String()),
		zap.Int64("min_ns", m.MinNS),
		zap.Int64("mean_ns", m.MeanNS),
		zap.Int("reps", m.Reps))

	return m, nil
}
