package logic

// An Operator is one of the binary connectives.
type Operator byte

// The binary operators, from the loosest to the tightest binding.
const (
	Iff = Operator(iota)
	Implies
	Or
	Xor
	And
)

var operators = [...]struct {
	symbol, keyword, name, description string
}{
	Iff:     {"<->", "iff", "IF AND ONLY IF (Biconditional)", "True when both operands have the same truth value"},
	Implies: {"->", "implies", "IF (Implication)", "False only when first is true and second is false"},
	Or:      {"|", "or", "OR (Disjunction)", "True when at least one operand is true"},
	Xor:     {"^", "xor", "XOR (Exclusive OR)", "True when operands have different truth values"},
	And:     {"&", "and", "AND (Conjunction)", "True when both operands are true"},
}

// Precedence returns the binding strength of op. Higher binds tighter.
func (op Operator) Precedence() int {
	return int(op)
}

// String returns the symbol of op, as written in expressions.
func (op Operator) String() string {
	return operators[op].symbol
}

// Name returns the human-readable name of op.
func (op Operator) Name() string {
	return operators[op].name
}

// Apply is the truth function of op.
func (op Operator) Apply(left, right bool) bool {
	switch op {
	case And:
		return left && right
	case Or:
		return left || right
	case Xor:
		return left != right
	case Implies:
		return !left || right
	case Iff:
		return left == right
	default:
		panic("invalid operator")
	}
}

// lookupOperator returns the operator written as symbol, if any.
func lookupOperator(symbol string) (Operator, bool) {
	for op := range operators {
		if operators[op].symbol == symbol {
			return Operator(op), true
		}
	}
	return 0, false
}

// A LegendEntry describes one connective of the expression language.
type LegendEntry struct {
	Symbol      string `yaml:"symbol"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// Legend lists every connective in the order they are usually taught: negation first.
func Legend() []LegendEntry {
	res := []LegendEntry{{Symbol: "~", Name: "NOT (Negation)", Description: "True when operand is false"}}
	for _, op := range []Operator{And, Or, Xor, Implies, Iff} {
		res = append(res, LegendEntry{
			Symbol:      operators[op].symbol,
			Name:        operators[op].name,
			Description: operators[op].description,
		})
	}
	return res
}
