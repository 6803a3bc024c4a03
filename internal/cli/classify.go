package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/monotone/count"
)

// NewClassifyCommand creates the classify command: report which monotone
// class, if any, a concrete sequence belongs to.
func NewClassifyCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify <seq>",
		Short: "Classify a comma-separated sequence of integers",
		Long: `Classify a sequence as constant, non-decreasing, non-increasing, or
non-monotone. Symbols are comma-separated integers, e.g. "1,3,5,2".

The symbol values themselves do not matter to the counting problem — only
their relative order does — which is why this command accepts any integers.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			seq, err := parseSequence(args[0])
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%v: %s\n", seq, classify(seq))

			return nil
		},
	}

	return cmd
}

// classify names the monotone class of seq. Constant sequences satisfy both
// monotone predicates and get their own name; everything else is named by
// the single predicate it satisfies, or "non-monotone" when neither holds.
func classify(seq []int) string {
	up := count.IsNonDecreasing(seq)
	down := count.IsNonIncreasing(seq)

	switch {
	case up && down:
		return "constant"
	case up:
		return "non-decreasing"
	case down:
		return "non-increasing"
	default:
		return "non-monotone"
	}
}

// parseSequence splits a comma-separated list of integers, tolerating
// whitespace around each symbol. At least one symbol is required.
func parseSequence(arg string) ([]int, error) {
	parts := strings.Split(arg, ",")
	seq := make([]int, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			return nil, fmt.Errorf("sequence %q has an empty symbol", arg)
		}

		v, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("symbol %q is not an integer", part)
		}
		seq = append(seq, v)
	}

	return seq, nil
}
