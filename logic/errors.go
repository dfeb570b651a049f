package logic

import "fmt"

// ErrorKind is the category of an Error.
type ErrorKind byte

const (
	// MalformedOperator means a '-' or a '<' was not followed by the rest of "->" or "<->".
	MalformedOperator = ErrorKind(iota)
	// UnexpectedToken means a token appeared where the grammar does not allow it.
	UnexpectedToken
	// UnbalancedParentheses means a ')' had no matching '(' or a group was never closed.
	UnbalancedParentheses
	// UnboundVariable means a strict evaluation met a variable absent from the assignment.
	UnboundVariable
)

func (k ErrorKind) String() string {
	switch k {
	case MalformedOperator:
		return "malformed operator"
	case UnexpectedToken:
		return "unexpected token"
	case UnbalancedParentheses:
		return "unbalanced parentheses"
	case UnboundVariable:
		return "unbound variable"
	default:
		panic("invalid error kind")
	}
}

// Sentinels usable with errors.Is. Only the Kind is compared.
var (
	ErrMalformedOperator     = &Error{Kind: MalformedOperator, Pos: -1}
	ErrUnexpectedToken       = &Error{Kind: UnexpectedToken, Pos: -1}
	ErrUnbalancedParentheses = &Error{Kind: UnbalancedParentheses, Pos: -1}
	ErrUnboundVariable       = &Error{Kind: UnboundVariable, Pos: -1}
)

// An Error is returned by the tokenizer, the parser and strict evaluation.
// Pos is the byte index in the expression the error relates to, or -1 when no position applies.
type Error struct {
	Kind ErrorKind
	Pos  int
	Msg  string
}

func newError(kind ErrorKind, pos int, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	if e.Pos < 0 {
		if e.Msg == "" {
			return e.Kind.String()
		}
		return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
	}
	return fmt.Sprintf("%s at position %d: %s", e.Kind, e.Pos, e.Msg)
}

// Is reports whether target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}
