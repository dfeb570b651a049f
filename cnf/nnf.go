package cnf

import (
	"strconv"
	"strings"

	"github.com/crillab/gotruth/logic"
)

// A formula is an expression in negation normal form: a literal, or a conjunction or
// disjunction of formulas. Conjunctions never directly contain conjunctions, and
// disjunctions never directly contain disjunctions.
type formula interface {
	String() string
}

// A lit is either a named variable or, when aux is not 0, the auxiliary variable
// with that index.
type lit struct {
	name   string
	aux    int
	signed bool
}

func (l lit) String() string {
	name := l.name
	if l.aux != 0 {
		name = "#" + strconv.Itoa(l.aux)
	}
	if l.signed {
		return "not(" + name + ")"
	}
	return name
}

type and []formula

func (a and) String() string {
	return "and(" + join(a) + ")"
}

type or []formula

func (o or) String() string {
	return "or(" + join(o) + ")"
}

func join(subs []formula) string {
	strs := make([]string, len(subs))
	for i, f := range subs {
		strs[i] = f.String()
	}
	return strings.Join(strs, ", ")
}

// mkAnd generates a conjunction of subformulas. "and"s in the "and" get to the higher level.
func mkAnd(subs ...formula) formula {
	var res and
	for _, s := range subs {
		if sub, ok := s.(and); ok {
			res = append(res, sub...)
		} else {
			res = append(res, s)
		}
	}
	if len(res) == 1 {
		return res[0]
	}
	return res
}

// mkOr generates a disjunction of subformulas. "or"s in the "or" get to the higher level.
func mkOr(subs ...formula) formula {
	var res or
	for _, s := range subs {
		if sub, ok := s.(or); ok {
			res = append(res, sub...)
		} else {
			res = append(res, s)
		}
	}
	if len(res) == 1 {
		return res[0]
	}
	return res
}

// A converter puts expressions in negation normal form.
// Operands of equivalences and exclusive disjunctions are needed with both polarities,
// so unless they are literals they are named by an auxiliary variable. Otherwise a chain
// of such operators would double in size at each level. defs holds the definitions of
// these auxiliary variables.
type converter struct {
	vars *vars
	aux  map[logic.Node]int
	defs []formula
}

func newConverter(vars *vars) *converter {
	return &converter{vars: vars, aux: make(map[logic.Node]int)}
}

// nnf returns the negation normal form of n, or of its negation if neg is true.
// A nil node is false: it is translated to an empty disjunction, and its negation to
// an empty conjunction.
func (c *converter) nnf(n logic.Node, neg bool) formula {
	switch n := n.(type) {
	case nil:
		if neg {
			return and(nil)
		}
		return or(nil)
	case logic.Var:
		return lit{name: string(n), signed: neg}
	case *logic.Not:
		return c.nnf(n.X, !neg)
	case *logic.Binary:
		l, r := n.Left, n.Right
		switch {
		case n.Op == logic.And && !neg, n.Op == logic.Or && neg:
			return mkAnd(c.nnf(l, neg), c.nnf(r, neg))
		case n.Op == logic.Or && !neg, n.Op == logic.And && neg:
			return mkOr(c.nnf(l, neg), c.nnf(r, neg))
		case n.Op == logic.Implies && !neg:
			return mkOr(c.nnf(l, true), c.nnf(r, false))
		case n.Op == logic.Implies && neg:
			return mkAnd(c.nnf(l, false), c.nnf(r, true))
		case n.Op == logic.Iff, n.Op == logic.Xor:
			lp, ln := c.operand(l)
			rp, rn := c.operand(r)
			if (n.Op == logic.Iff) != neg {
				return mkAnd(mkOr(ln, rp), mkOr(lp, rn))
			}
			return mkAnd(mkOr(ln, rn), mkOr(lp, rp))
		}
	}
	panic("invalid node type")
}

// operand returns the NNF of n and of its negation. If n is not a literal, these are
// the literals of the auxiliary variable standing for n.
func (c *converter) operand(n logic.Node) (pos, neg formula) {
	if isLiteral(n) {
		return c.nnf(n, false), c.nnf(n, true)
	}
	d, ok := c.aux[n]
	if !ok {
		d = c.vars.dummy()
		c.aux[n] = d
		// d <-> n
		c.defs = append(c.defs,
			mkOr(lit{aux: d, signed: true}, c.nnf(n, false)),
			mkOr(lit{aux: d}, c.nnf(n, true)))
	}
	return lit{aux: d}, lit{aux: d, signed: true}
}

func isLiteral(n logic.Node) bool {
	switch n := n.(type) {
	case nil, logic.Var:
		return true
	case *logic.Not:
		return isLiteral(n.X)
	}
	return false
}
