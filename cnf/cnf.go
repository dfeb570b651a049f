package cnf

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/crillab/gotruth/logic"
)

// A CNF is the representation of an expression as a conjunction of disjunctions.
// Literals follow the DIMACS convention: variable i is written i, its negation -i.
type CNF struct {
	Names   []string // Names[i-1] is the name of variable i. Auxiliary variables come after named ones.
	NbVars  int      // Total nb of vars, auxiliary ones included
	Clauses [][]int
}

// vars associate variable names with numeric indices.
type vars struct {
	idx map[string]int
	nb  int
}

// litValue returns the int value associated with the given literal.
func (vars *vars) litValue(l lit) int {
	val, ok := l.aux, l.aux != 0
	if !ok {
		val, ok = vars.idx[l.name]
	}
	if !ok {
		panic(fmt.Errorf("no index for variable %s", l.name))
	}
	if l.signed {
		return -val
	}
	return val
}

// dummy creates an auxiliary variable and returns its index.
func (vars *vars) dummy() int {
	vars.nb++
	return vars.nb
}

// FromNode returns a CNF equivalent to n, modulo auxiliary variables.
// The variables of n are numbered from 1 in alphabetical order.
// A nil node, which is always false, is translated to a single empty clause.
func FromNode(n logic.Node) *CNF {
	names := names(n)
	vars := vars{idx: make(map[string]int, len(names)), nb: len(names)}
	for i, name := range names {
		vars.idx[name] = i + 1
	}
	res := &CNF{Names: names}
	if n == nil {
		res.Clauses = [][]int{{}}
	} else {
		conv := newConverter(&vars)
		f := conv.nnf(n, false)
		res.Clauses = cnfRec(mkAnd(append([]formula{f}, conv.defs...)...), &vars)
	}
	res.NbVars = vars.nb
	return res
}

// names returns the sorted names of the variables appearing in n.
func names(n logic.Node) []string {
	seen := make(map[string]bool)
	var walk func(n logic.Node)
	walk = func(n logic.Node) {
		switch n := n.(type) {
		case logic.Var:
			seen[string(n)] = true
		case *logic.Not:
			walk(n.X)
		case *logic.Binary:
			walk(n.Left)
			walk(n.Right)
		}
	}
	walk(n)
	res := make([]string, 0, len(seen))
	for name := range seen {
		res = append(res, name)
	}
	sort.Strings(res)
	return res
}

// cnfRec transforms the f NNF formula into a CNF formula.
func cnfRec(f formula, vars *vars) [][]int {
	switch f := f.(type) {
	case lit:
		return [][]int{{vars.litValue(f)}}
	case and:
		var res [][]int
		for _, sub := range f {
			res = append(res, cnfRec(sub, vars)...)
		}
		return res
	case or:
		var res [][]int
		var lits []int
		for _, sub := range f {
			switch sub := sub.(type) {
			case lit:
				lits = append(lits, vars.litValue(sub))
			case and:
				// d implies every clause of sub.
				d := vars.dummy()
				lits = append(lits, d)
				for _, sub2 := range sub {
					for _, clause := range cnfRec(sub2, vars) {
						res = append(res, append(clause, -d))
					}
				}
			default:
				panic("unexpected or in or")
			}
		}
		res = append(res, lits)
		return res
	default:
		panic("invalid NNF formula")
	}
}

// Dimacs writes the DIMACS version of the CNF on w.
// The names of the variables are associated with their DIMACS indices in comments,
// between the prolog and the set of clauses: if the variable "a" is associated with the
// index 1, there will be a comment line "c a=1".
func (c *CNF) Dimacs(w io.Writer) error {
	prefix := fmt.Sprintf("p cnf %d %d\n", c.NbVars, len(c.Clauses))
	if _, err := io.WriteString(w, prefix); err != nil {
		return fmt.Errorf("could not write DIMACS output: %v", err)
	}
	for i, name := range c.Names {
		line := fmt.Sprintf("c %s=%d\n", name, i+1)
		if _, err := io.WriteString(w, line); err != nil {
			return fmt.Errorf("could not write DIMACS output: %v", err)
		}
	}
	for _, clause := range c.Clauses {
		strClause := make([]string, len(clause), len(clause)+1)
		for i, l := range clause {
			strClause[i] = strconv.Itoa(l)
		}
		line := strings.Join(append(strClause, "0"), " ") + "\n"
		if _, err := io.WriteString(w, line); err != nil {
			return fmt.Errorf("could not write DIMACS output: %v", err)
		}
	}
	return nil
}
