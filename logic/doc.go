// Package logic parses and evaluates propositional formulas written as text.
//
// An expression is made of single-letter variables (case matters), parentheses and the
// following connectives, from the tightest to the loosest binding:
//
//	~    negation
//	&    conjunction
//	^    exclusive disjunction
//	|    disjunction
//	->   implication
//	<->  equivalence
//
// For example, the expression
//
//	~(a & b) -> c | d
//
// is parsed as
//
//	implies(not(and(a, b)), or(c, d))
//
// Parsing happens in two steps. Tokenize turns the text into tokens, keeping each
// parenthesized group as a single opaque token. ParseTokens then builds the tree with
// precedence climbing, and tokenizes and parses groups again when it reaches them.
//
// Evaluation needs an Assignment, binding variable names to truth values:
//
//	ok, err := logic.EvaluateExpression("a -> b", logic.Assignment{"a": true, "b": false})
//
// returns false. All functions of this package are pure and safe for concurrent use.
package logic
