package logic

// Evaluate returns the truth value of n under model.
// A nil node is false. So is any variable model has no binding for.
func Evaluate(n Node, model Assignment) bool {
	if n == nil {
		return false
	}
	return n.Eval(model)
}

// EvaluateStrict is like Evaluate, but fails with an UnboundVariable error instead of
// treating unbound variables as false.
func EvaluateStrict(n Node, model Assignment) (bool, error) {
	if n == nil {
		return false, nil
	}
	return n.evalStrict(model)
}

// EvaluateExpression parses expression and evaluates it under model.
func EvaluateExpression(expression string, model Assignment) (bool, error) {
	n, err := Parse(expression)
	if err != nil {
		return false, err
	}
	return Evaluate(n, model), nil
}
