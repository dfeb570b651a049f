package logic

// A Node is a parsed expression.
// It is either a Var, a *Not or a *Binary. A nil Node is the empty expression.
// Nodes are never modified once built, and no node is shared between two parents.
// A nil operand of a *Not or a *Binary is handled like a nil Node: it renders as
// an empty string and evaluates to false.
type Node interface {
	String() string
	// Eval evaluates the node. Variables missing from model are false.
	Eval(model Assignment) bool
	evalStrict(model Assignment) (bool, error)
}

// An Assignment associates variable names with truth values.
type Assignment map[string]bool

// Var is a propositional variable.
type Var string

func (v Var) String() string {
	return string(v)
}

func (v Var) Eval(model Assignment) bool {
	return model[string(v)]
}

func (v Var) evalStrict(model Assignment) (bool, error) {
	b, ok := model[string(v)]
	if !ok {
		return false, newError(UnboundVariable, -1, "assignment lacks a binding for %s", string(v))
	}
	return b, nil
}

func str(n Node) string {
	if n == nil {
		return ""
	}
	return n.String()
}

// Not is the negation of its operand.
type Not struct {
	X Node
}

func (n *Not) String() string {
	return "not(" + str(n.X) + ")"
}

func (n *Not) Eval(model Assignment) bool {
	return !Evaluate(n.X, model)
}

func (n *Not) evalStrict(model Assignment) (bool, error) {
	b, err := EvaluateStrict(n.X, model)
	return !b, err
}

// Binary applies a binary operator to two operands.
type Binary struct {
	Op          Operator
	Left, Right Node
}

func (b *Binary) String() string {
	return operators[b.Op].keyword + "(" + str(b.Left) + ", " + str(b.Right) + ")"
}

// Eval always evaluates both operands.
func (b *Binary) Eval(model Assignment) bool {
	left := Evaluate(b.Left, model)
	right := Evaluate(b.Right, model)
	return b.Op.Apply(left, right)
}

func (b *Binary) evalStrict(model Assignment) (bool, error) {
	left, err := EvaluateStrict(b.Left, model)
	if err != nil {
		return false, err
	}
	right, err := EvaluateStrict(b.Right, model)
	if err != nil {
		return false, err
	}
	return b.Op.Apply(left, right), nil
}
