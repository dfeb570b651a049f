package table

// Class is the classification of an expression according to its truth table.
type Class byte

const (
	// Contingent expressions are true under some assignments and false under others.
	Contingent = Class(iota)
	// Tautology expressions are true under every assignment.
	Tautology
	// Contradiction expressions are false under every assignment.
	Contradiction
)

func (c Class) String() string {
	switch c {
	case Contingent:
		return "contingent"
	case Tautology:
		return "tautology"
	case Contradiction:
		return "contradiction"
	default:
		panic("invalid class")
	}
}

// Class classifies the expression of t.
// A table without rows comes from the empty expression, which is always false.
func (t *Table) Class() Class {
	nb := t.Count()
	switch {
	case nb == 0:
		return Contradiction
	case nb == len(t.Rows):
		return Tautology
	default:
		return Contingent
	}
}

// Models returns the rows where the expression is true.
func (t *Table) Models() []Row {
	var res []Row
	for _, row := range t.Rows {
		if row.Result {
			res = append(res, row)
		}
	}
	return res
}

// Count returns the number of rows where the expression is true.
func (t *Table) Count() int {
	nb := 0
	for _, row := range t.Rows {
		if row.Result {
			nb++
		}
	}
	return nb
}
