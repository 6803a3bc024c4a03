package cli

import (
	"fmt"
	"math/big"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/katalvlaran/monotone/count"
	"github.com/katalvlaran/monotone/exact"
	"github.com/katalvlaran/monotone/internal/bench"
)

// countFlags holds the per-invocation flags of the count command.
type countFlags struct {
	strategy string
	limit    int64
	force    bool
	all      bool
}

// NewCountCommand creates the count command: evaluate B(n,l), the number of
// non-monotone length-l sequences over an n-symbol alphabet.
func NewCountCommand(rootOpts *RootOptions) *cobra.Command {
	flags := &countFlags{}

	cmd := &cobra.Command{
		Use:   "count <n> <l>",
		Short: "Count non-monotone sequences of length l over n symbols",
		Long: `Count the length-l sequences over an ordered n-symbol alphabet that are
neither non-decreasing nor non-increasing.

The result is an exact arbitrary-precision integer. The default strategy is
the closed form; the brute-force strategy refuses inputs beyond its state
limit unless --force is given.`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCount(rootOpts, flags, cmd, args)
		},
	}

	cmd.Flags().StringVar(&flags.strategy, "strategy", count.ClosedForm.String(),
		"evaluation strategy: closed, reducer, or brute")
	cmd.Flags().Int64Var(&flags.limit, "limit", 0,
		"override the brute-force state limit (0 keeps the default)")
	cmd.Flags().BoolVar(&flags.force, "force", false,
		"run brute force without a state limit")
	cmd.Flags().BoolVar(&flags.all, "all", false,
		"also print A(n,l), the state space, and the non-monotone share")

	return cmd
}

func runCount(rootOpts *RootOptions, flags *countFlags, cmd *cobra.Command, args []string) error {
	n, l, err := parseDims(args[0], args[1])
	if err != nil {
		return err
	}

	strategy, err := count.ParseStrategy(flags.strategy)
	if err != nil {
		return fmt.Errorf("--strategy %q: %w", flags.strategy, err)
	}

	if flags.limit < 0 {
		return fmt.Errorf("--limit must not be negative, got %d", flags.limit)
	}

	opts := []count.Option{count.WithStrategy(strategy)}
	if flags.limit > 0 {
		opts = append(opts, count.WithBruteForceLimit(flags.limit))
	}
	if flags.force {
		opts = append(opts, count.WithUnboundedBruteForce())
	}

	rootOpts.logger().Debug("counting",
		zap.Int("n", n), zap.Int("l", l),
		zap.Stringer("strategy", strategy))

	b, err := count.NonMonotone(n, l, opts...)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if !flags.all {
		fmt.Fprintf(out, "B(%d,%d) = %s\n", n, l, bench.GroupDigits(b))
		return nil
	}

	a, err := count.NonDecreasing(n, l, opts...)
	if err != nil {
		return err
	}
	states, err := exact.Pow(n, l)
	if err != nil {
		return err
	}

	share, _ := new(big.Float).Quo(
		new(big.Float).SetInt(b), new(big.Float).SetInt(states)).Float64()

	p := message.NewPrinter(language.English)
	fmt.Fprintf(out, "A(%d,%d) = %s\n", n, l, bench.GroupDigits(a))
	fmt.Fprintf(out, "B(%d,%d) = %s\n", n, l, bench.GroupDigits(b))
	fmt.Fprintf(out, "states  = %s\n", bench.GroupDigits(states))
	fmt.Fprintf(out, "share   = %s\n", p.Sprintf("%.4f%%", 100*share))

	return nil
}

// parseDims converts the two positional arguments into (n, l). Values that
// are not positive integers fail here, before the library's own domain
// check, so the message names the offending argument.
func parseDims(nArg, lArg string) (int, int, error) {
	n, err := strconv.Atoi(nArg)
	if err != nil {
		return 0, 0, fmt.Errorf("alphabet size %q is not an integer", nArg)
	}
	l, err := strconv.Atoi(lArg)
	if err != nil {
		return 0, 0, fmt.Errorf("sequence length %q is not an integer", lArg)
	}
	if n < 1 || l < 1 {
		return 0, 0, count.ErrDomain
	}

	return n, l, nil
}
