package cmd

import (
	"encoding/csv"
	"io"
	"os"
	"strings"

	"github.com/crillab/gotruth/config"
	"github.com/crillab/gotruth/table"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// useColor tells whether escapes should be written on w.
func useColor(w io.Writer, mode string) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// header returns the expression on a single line.
func header(expr string) string {
	return strings.Join(strings.Fields(expr), " ")
}

func writeText(w io.Writer, tbl *table.Table, rows []table.Row, cfg *config.Config) error {
	nbVars := len(tbl.Vars)
	p := newTablePrinter(nbVars + 1)
	p.AnsiEscapes(useColor(w, cfg.Color))
	if nbVars > 0 {
		p.SetSeparator(nbVars)
	}
	hdr := p.AddRow(append(append([]string{}, tbl.Vars...), header(tbl.Expression))...)
	for j := 0; j <= nbVars; j++ {
		p.SetEscape(j, hdr, ansiBold)
	}
	for _, row := range rows {
		vals := make([]string, 0, nbVars+1)
		for _, v := range tbl.Vars {
			vals = append(vals, symbol(row.Assignment[v], cfg))
		}
		i := p.AddRow(append(vals, symbol(row.Result, cfg))...)
		if row.Result {
			p.SetEscape(nbVars, i, ansiGreen)
		} else {
			p.SetEscape(nbVars, i, ansiRed)
		}
	}
	return p.Print(w)
}

type yamlRow struct {
	Values map[string]bool `yaml:"values"`
	Result bool            `yaml:"result"`
}

type yamlTable struct {
	Expression string    `yaml:"expression"`
	Variables  []string  `yaml:"variables"`
	Class      string    `yaml:"class"`
	Models     int       `yaml:"models"`
	Rows       []yamlRow `yaml:"rows"`
}

func writeYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

func writeTableYAML(w io.Writer, tbl *table.Table, rows []table.Row) error {
	doc := yamlTable{
		Expression: header(tbl.Expression),
		Variables:  tbl.Vars,
		Class:      tbl.Class().String(),
		Models:     tbl.Count(),
		Rows:       make([]yamlRow, len(rows)),
	}
	if doc.Variables == nil {
		doc.Variables = []string{}
	}
	for i, row := range rows {
		doc.Rows[i] = yamlRow{Values: row.Assignment, Result: row.Result}
	}
	return writeYAML(w, doc)
}

func writeCSV(w io.Writer, records [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.WriteAll(records); err != nil {
		return err
	}
	return cw.Error()
}

func writeTableCSV(w io.Writer, tbl *table.Table, rows []table.Row, cfg *config.Config) error {
	records := make([][]string, 0, len(rows)+1)
	records = append(records, append(append([]string{}, tbl.Vars...), header(tbl.Expression)))
	for _, row := range rows {
		record := make([]string, 0, len(tbl.Vars)+1)
		for _, v := range tbl.Vars {
			record = append(record, symbol(row.Assignment[v], cfg))
		}
		records = append(records, append(record, symbol(row.Result, cfg)))
	}
	return writeCSV(w, records)
}
