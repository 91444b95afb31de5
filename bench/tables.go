// SPDX-License-Identifier: MIT

package bench

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	lgtable "github.com/charmbracelet/lipgloss/table"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).PaddingTop(1)
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1).Align(lipgloss.Center)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	// highlight marks a notable row: the fastest kernel, a failed check.
	highlight = cellStyle.Foreground(lipgloss.Color("9")).Bold(true)
	border    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// reportTable is a bordered table with per-column alignment and optional
// highlighting of single rows.
type reportTable struct {
	t      *lgtable.Table
	align  []lipgloss.Position
	marked []bool
}

// newReportTable builds a table with the given headers (nil for none).
// align[i] aligns column i; columns past the end of align use its last entry.
func newReportTable(headers []string, align ...lipgloss.Position) *reportTable {
	rt := &reportTable{align: align}
	rt.t = lgtable.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(border).
		StyleFunc(rt.style)
	if headers != nil {
		rt.t.Headers(headers...)
	}

	return rt
}

func (rt *reportTable) style(row, col int) lipgloss.Style {
	if row == lgtable.HeaderRow {
		return headerStyle
	}
	s := cellStyle
	if row >= 0 && row < len(rt.marked) && rt.marked[row] {
		s = highlight
	}
	if n := len(rt.align); n > 0 {
		return s.Align(rt.align[min(col, n-1)])
	}

	return s
}

// row appends cells, highlighted when mark is set.
func (rt *reportTable) row(mark bool, cells ...string) {
	rt.marked = append(rt.marked, mark)
	rt.t.Row(cells...)
}

// writeTo prints the bold title followed by the table.
func (rt *reportTable) writeTo(w io.Writer, title string) error {
	_, err := fmt.Fprintf(w, "%s\n%s\n", titleStyle.Render(title), rt.t.Render())

	return err
}
