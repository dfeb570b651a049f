// Package table builds truth tables of propositional expressions.
//
// Variables are ordered alphabetically and rows enumerate their assignments in ascending
// binary order, the first variable being the most significant one. The table of "b -> a" is:
//
//	a b  b -> a
//	F F  T
//	F T  F
//	T F  T
//	T T  T
package table

import (
	"sort"

	"github.com/crillab/gotruth/logic"
)

// A Row is an assignment of the variables of an expression, along with the value of the
// expression under that assignment.
type Row struct {
	Assignment logic.Assignment
	Result     bool
}

// A Table is the truth table of an expression.
type Table struct {
	Expression string
	Vars       []string // Variables, sorted
	Rows       []Row
}

// Variables returns the distinct letters of expression, sorted.
// The expression is not parsed: this works on malformed expressions, too.
func Variables(expression string) []string {
	seen := make(map[string]bool)
	var vars []string
	for i := 0; i < len(expression); i++ {
		c := expression[i]
		if ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') {
			if name := expression[i : i+1]; !seen[name] {
				seen[name] = true
				vars = append(vars, name)
			}
		}
	}
	sort.Strings(vars)
	return vars
}

// Rows returns all the assignments of vars, in ascending binary order, false being 0,
// true being 1 and vars[0] the most significant bit.
// There are 2^len(vars) of them, none if vars is empty.
func Rows(vars []string) []logic.Assignment {
	switch len(vars) {
	case 0:
		return nil
	case 1:
		return []logic.Assignment{{vars[0]: false}, {vars[0]: true}}
	}
	first, rest := vars[0], vars[1:]
	sub := Rows(rest)
	res := make([]logic.Assignment, 0, 2*len(sub))
	for _, val := range []bool{false, true} {
		for _, a := range sub {
			row := make(logic.Assignment, len(vars))
			row[first] = val
			for k, v := range a {
				row[k] = v
			}
			res = append(res, row)
		}
	}
	return res
}

// Build parses expression and computes its truth table.
// Nothing is kept between calls: callers simply call Build again when the expression changes.
func Build(expression string) (*Table, error) {
	n, err := logic.Parse(expression)
	if err != nil {
		return nil, err
	}
	return FromNode(expression, n), nil
}

// FromNode computes the truth table of an already parsed expression.
// Variables are the ones of the text, so that the table layout only depends on it.
func FromNode(expression string, n logic.Node) *Table {
	vars := Variables(expression)
	assignments := Rows(vars)
	t := &Table{Expression: expression, Vars: vars, Rows: make([]Row, len(assignments))}
	for i, a := range assignments {
		t.Rows[i] = Row{Assignment: a, Result: logic.Evaluate(n, a)}
	}
	return t
}
