package bench

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"math/big"
	"strconv"
	"strings"
	"text/tabwriter"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Rendering is pure: it reads a Report and writes bytes, so both renderers
// are covered by golden files. The CSV layout is the plot-ready face, the
// table the human one.

// csvHeader is the stable column set plotting scripts rely on.
var csvHeader = []string{"n", "l", "strategy", "states", "result", "min_ns", "mean_ns"}

// maxBarWidth caps the relative-speed bar in the rendered table.
const maxBarWidth = 12

// WriteCSV emits one record per measurement, timings in raw nanoseconds and
// counts in plain decimal, ready for external plotting.
func WriteCSV(w io.Writer, rep Report) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	for _, m := range rep.Measurements {
		record := []string{
			strconv.Itoa(m.N),
			strconv.Itoa(m.L),
			m.Strategy.String(),
			m.States.String(),
			m.Result.String(),
			strconv.FormatInt(m.MinNS, 10),
			strconv.FormatInt(m.MeanNS, 10),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

// RenderTable writes an aligned human-readable table. The RELATIVE column
// compares each strategy's mean against the fastest one measured for the
// same (n, l) cell: a multiplier plus a crude bar, capped at maxBarWidth.
func RenderTable(w io.Writer, rep Report) error {
	fastest := fastestMeans(rep)
	p := message.NewPrinter(language.English)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, "N\tL\tSTRATEGY\tSTATES\tRESULT\tMIN\tMEAN\tRELATIVE")
	for _, m := range rep.Measurements {
		ratio := 1.0
		if base := fastest[[2]int{m.N, m.L}]; base > 0 {
			ratio = float64(m.MeanNS) / float64(base)
		}
		bar := int(math.Round(ratio))
		if bar < 1 {
			bar = 1
		}
		if bar > maxBarWidth {
			bar = maxBarWidth
		}

		fmt.Fprintf(tw, "%d\t%d\t%s\t%s\t%s\t%s\t%s\t%s %s\n",
			m.N, m.L, m.Strategy,
			GroupDigits(m.States), GroupDigits(m.Result),
			p.Sprintf("%d ns", m.MinNS), p.Sprintf("%d ns", m.MeanNS),
			p.Sprintf("%.2fx", ratio), strings.Repeat("#", bar))
	}

	return tw.Flush()
}

// fastestMeans indexes the fastest mean per (n, l) cell.
func fastestMeans(rep Report) map[[2]int]int64 {
	fastest := make(map[[2]int]int64, len(rep.Measurements))
	for _, m := range rep.Measurements {
		key := [2]int{m.N, m.L}
		if cur, ok := fastest[key]; !ok || m.MeanNS < cur {
			fastest[key] = m.MeanNS
		}
	}

	return fastest
}

// GroupDigits renders x in decimal with a comma every three digits. The
// x/text printer handles the fixed-width numbers above, but it cannot format
// a *big.Int, and the whole point of this package is that results outgrow
// fixed widths.
func GroupDigits(x *big.Int) string {
	s := x.String()
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	if len(s) <= 3 {
		if neg {
			return "-" + s
		}

		return s
	}

	var b strings.Builder
	b.Grow(len(s) + len(s)/3 + 1)
	if neg {
		b.WriteByte('-')
	}

	// Head group first so the groups of three align from the right.
	head := len(s) % 3
	if head == 0 {
		head = 3
	}
	b.WriteString(s[:head])
	for i := head; i < len(s); i += 3 {
		b.WriteByte(',')
		b.WriteString(s[i : i+3])
	}

	return b.String()
}
