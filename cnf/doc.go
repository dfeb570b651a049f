// Package cnf translates parsed expressions to conjunctive normal form, so that they can
// be fed to any SAT solver through the DIMACS format.
//
// A CNF is a set of clauses that must all be true, each clause being a set of potentially
// negated literals. For the clause to be true, at least one of these literals must be true.
//
// The expression is first put in negation normal form: implications, equivalences and
// exclusive disjunctions are expanded and negations are pushed down to the variables.
// Operands of equivalences and exclusive disjunctions that are not literals are named by
// auxiliary variables, and so are conjunctions appearing inside disjunctions, which keeps
// the size of the translation linear in the size of the expression. For instance,
//
//	a | b & c
//
// is translated to
//
//	p cnf 4 3
//	c a=1
//	c b=2
//	c c=3
//	2 -4 0
//	3 -4 0
//	1 4 0
//
// where 4 is an auxiliary variable that, when true, forces b and c to be true.
// The models of the CNF, once restricted to the original variables, are exactly the
// assignments that make the expression true.
package cnf
