package bench_test

import (
	"bytes"
	"math/big"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/monotone/count"
	"github.com/katalvlaran/monotone/internal/bench"
)

// fixtureReport builds a hand-written report with two cases and all three
// strategies, so both renderers exercise grouping, the relative column and
// the bar cap.
func fixtureReport(t *testing.T) bench.Report {
	t.Helper()

	mk := func(n, l int, s count.Strategy, states, result string, minNS, meanNS int64) bench.Measurement {
		st, ok := new(big.Int).SetString(states, 10)
		require.True(t, ok)
		res, ok := new(big.Int).SetString(result, 10)
		require.True(t, ok)

		return bench.Measurement{
			N: n, L: l, Strategy: s,
			States: st, Result: res,
			MinNS: minNS, MeanNS: meanNS, Reps: 3,
		}
	}

	return bench.Report{Measurements: []bench.Measurement{
		mk(26, 5, count.ClosedForm, "11881376", "11596390", 8100, 8500),
		mk(26, 5, count.Reducer, "11881376", "11596390", 52000, 54200),
		mk(26, 5, count.BruteForce, "11881376", "11596390", 612000000, 618000000),
		mk(4, 3, count.ClosedForm, "64", "28", 900, 1100),
		mk(4, 3, count.Reducer, "64", "28", 2100, 2300),
		mk(4, 3, count.BruteForce, "64", "28", 5400, 5700),
	}}
}

// TestWriteCSV_Golden pins the plot-ready face byte for byte.
func TestWriteCSV_Golden(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, bench.WriteCSV(&buf, fixtureReport(t)))

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "report_csv", buf.Bytes())
}

// TestRenderTable_Golden pins the aligned human-readable face.
func TestRenderTable_Golden(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, bench.RenderTable(&buf, fixtureReport(t)))

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "report_table", buf.Bytes())
}

// TestGroupDigits covers the grouping helper across widths and signs.
func TestGroupDigits(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"0":          "0",
		"7":          "7",
		"999":        "999",
		"1000":       "1,000",
		"11596390":   "11,596,390",
		"-42":        "-42",
		"-1234567":   "-1,234,567",
		"1000000000": "1,000,000,000",
	}
	for in, want := range cases {
		x, ok := new(big.Int).SetString(in, 10)
		require.True(t, ok)
		require.Equal(t, want, bench.GroupDigits(x), "GroupDigits(%s)", in)
	}
}

// TestWriteCSV_EmptyReport keeps the header-only degenerate case stable.
func TestWriteCSV_EmptyReport(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, bench.WriteCSV(&buf, bench.Report{}))
	require.Equal(t, "n,l,strategy,states,result,min_ns,mean_ns\n", buf.String())
}
