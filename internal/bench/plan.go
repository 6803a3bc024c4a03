// Package bench runs timing sweeps of the counting strategies and renders
// the measurements as aligned tables or plot-ready CSV.
//
// A sweep is described by a small YAML plan:
//
//	cases:
//	  - n: 26
//	    l: 5
//	  - n: 4
//	    l: 3
//	strategies: [closed, reducer, brute]   # default: all three
//	reps: 5                                # default: 3
//	state_limit: 12000000                  # default: the library's limit
//
// The runner re-verifies every measured result against the closed form; a
// sweep that produces wrong numbers fails instead of reporting timings.
package bench

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/monotone/count"
)

var (
	// ErrNoCases is returned when a plan lists nothing to measure.
	ErrNoCases = errors.New("bench: plan has no cases")

	// ErrBadCase is returned for a case with n < 1 or l < 1.
	ErrBadCase = errors.New("bench: case dimensions must be at least 1")

	// ErrBadStrategy is returned when a plan names a strategy the count
	// package does not declare.
	ErrBadStrategy = errors.New("bench: unknown strategy in plan")

	// ErrBadRepetitions is returned for reps < 1 after defaulting.
	ErrBadRepetitions = errors.New("bench: repetitions must be at least 1")

	// ErrBadStateLimit is returned for a negative brute-force state limit.
	ErrBadStateLimit = errors.New("bench: state limit must not be negative")
)

// DefaultReps is the repetition count used when a plan omits reps.
const DefaultReps = 3

// Case is one (n, l) input cell of a sweep.
type Case struct {
	N int `yaml:"n"`
	L int `yaml:"l"`
}

// Plan describes a benchmark sweep: which cells to time, with which
// strategies, how many repetitions per cell, and an optional override for
// the brute-force state limit (0 keeps the library default).
type Plan struct {
	Cases      []Case   `yaml:"cases"`
	Strategies []string `yaml:"strategies"`
	Reps       int      `yaml:"reps"`
	StateLimit int64    `yaml:"state_limit"`
}

// Load reads a YAML plan from path, fills defaults and validates it.
//
// Errors: wrapped I/O or YAML errors, or the plan sentinels above.
func Load(path string) (Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Plan{}, fmt.Errorf("bench: read plan: %w", err)
	}

	var p Plan
	if err = yaml.Unmarshal(data, &p); err != nil {
		return Plan{}, fmt.Errorf("bench: parse plan: %w", err)
	}

	p.normalize()
	if err = p.Validate(); err != nil {
		return Plan{}, err
	}

	return p, nil
}

// normalize fills the documented defaults for omitted fields.
func (p *Plan) normalize() {
	if p.Reps == 0 {
		p.Reps = DefaultReps
	}
	if len(p.Strategies) == 0 {
		p.Strategies = []string{
			count.ClosedForm.String(),
			count.Reducer.String(),
			count.BruteForce.String(),
		}
	}
}

// Validate checks the plan against the sentinels. It does not fill
// defaults; Load does that before calling it.
func (p Plan) Validate() error {
	if len(p.Cases) == 0 {
		return ErrNoCases
	}
	for _, c := range p.Cases {
		if c.N < 1 || c.L < 1 {
			return fmt.Errorf("case (n=%d, l=%d): %w", c.N, c.L, ErrBadCase)
		}
	}
	for _, name := range p.Strategies {
		if _, err := count.ParseStrategy(name); err != nil {
			return fmt.Errorf("strategy %q: %w", name, ErrBadStrategy)
		}
	}
	if p.Reps < 1 {
		return ErrBadRepetitions
	}
	if p.StateLimit < 0 {
		return ErrBadStateLimit
	}

	return nil
}
