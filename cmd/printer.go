package cmd

import (
	"bufio"
	"io"
	"strings"
	"unicode/utf8"
)

// ANSI escapes used when colors are enabled.
const (
	ansiReset = "\033[0m"
	ansiBold  = "\033[1m"
	ansiRed   = "\033[31m"
	ansiGreen = "\033[32m"
)

// tablePrinter prints column-aligned tables.
type tablePrinter struct {
	widths        []int
	rows          [][]string
	escapes       [][]string
	enableEscapes bool
	separator     int // Index of the column preceded by a vertical bar, or -1
}

// newTablePrinter constructs an empty table with the given number of columns.
func newTablePrinter(width int) *tablePrinter {
	return &tablePrinter{widths: make([]int, width), enableEscapes: true, separator: -1}
}

// AddRow appends a row and returns its index.
func (p *tablePrinter) AddRow(vals ...string) int {
	if len(vals) != len(p.widths) {
		panic("incorrect number of columns")
	}
	for i, val := range vals {
		p.widths[i] = max(p.widths[i], utf8.RuneCountInString(val))
	}
	p.rows = append(p.rows, vals)
	p.escapes = append(p.escapes, make([]string, len(vals)))
	return len(p.rows) - 1
}

// SetEscape sets the escape to use when printing a given cell.
func (p *tablePrinter) SetEscape(col, row int, escape string) {
	p.escapes[row][col] = escape
}

// AnsiEscapes enables or disables escapes. Disabled escapes are simply not printed.
func (p *tablePrinter) AnsiEscapes(enable bool) {
	p.enableEscapes = enable
}

// SetSeparator draws a vertical bar before the given column.
func (p *tablePrinter) SetSeparator(col int) {
	p.separator = col
}

// Print writes the table on w.
func (p *tablePrinter) Print(w io.Writer) error {
	out := bufio.NewWriter(w)
	for i, row := range p.rows {
		for j, cell := range row {
			if j > 0 {
				out.WriteByte(' ')
			}
			if j == p.separator {
				out.WriteString("| ")
			}
			escape := p.escapes[i][j]
			if p.enableEscapes && escape != "" {
				out.WriteString(escape)
			}
			out.WriteString(cell)
			if p.enableEscapes && escape != "" {
				out.WriteString(ansiReset)
			}
			if j < len(row)-1 {
				out.WriteString(strings.Repeat(" ", p.widths[j]-utf8.RuneCountInString(cell)))
			}
		}
		out.WriteByte('\n')
	}
	return out.Flush()
}
