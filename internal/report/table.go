package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/san-kum/rodsim/internal/clock"
	"github.com/san-kum/rodsim/internal/physics"
)

// Interval is the wall-clock spacing between report rows.
const Interval = time.Second

var columns = []any{"Heat", "Length expansion", "Diameter expansion", "Temperature", "Time elapsed"}

const (
	headerFormat = "| %-16s | %-20s | %-20s | %-20s | %-20s |"
	rowFormat    = "| %16f | %20f | %20f | %20f | %20f |\n"
)

// Table writes one fixed-width row per elapsed Interval of wall time. The
// header is printed on the first observation. The report clock advances by
// exactly one Interval per row so a slow tick does not shift the cadence.
type Table struct {
	w         io.Writer
	clk       clock.Clock
	lastPrint time.Time
	printed   bool
	rows      int
	err       error
}

func NewTable(w io.Writer, clk clock.Clock) *Table {
	return &Table{
		w:         w,
		clk:       clk,
		lastPrint: clk.Now(),
	}
}

func Header() string {
	return fmt.Sprintf(headerFormat, columns...)
}

func (t *Table) Observe(m physics.Measurement) {
	elapsed := t.clk.Now().Sub(t.lastPrint).Seconds()

	if !t.printed {
		header := Header()
		t.write(header + "\n" + strings.Repeat("-", len(header)) + "\n")
		t.printed = true
	}

	if elapsed >= Interval.Seconds() {
		t.write(fmt.Sprintf(rowFormat, m.Heat, m.LengthExpansion, m.DiameterExpansion, m.Celsius, elapsed))
		t.lastPrint = t.lastPrint.Add(Interval)
		t.rows++
	}
}

func (t *Table) Rows() int { return t.rows }

// Err returns the first write error, if any.
func (t *Table) Err() error { return t.err }

func (t *Table) write(s string) {
	if t.err != nil {
		return
	}
	_, t.err = io.WriteString(t.w, s)
}
