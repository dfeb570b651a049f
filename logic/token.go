package logic

import (
	"strings"
	"unicode/utf8"
)

// A Token is a lexical unit of an expression.
// Its Text is a variable name, an operator symbol, "~", any other single character,
// or a whole parenthesized group, kept verbatim with its delimiters so that it can be
// tokenized again when the parser needs its content.
type Token struct {
	Text string
	Pos  int // Byte index of the first character of the token in the expression
}

func (t Token) String() string {
	return t.Text
}

// isGroup is true iff t is a parenthesized group.
func (t Token) isGroup() bool {
	return strings.HasPrefix(t.Text, "(")
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\v' || b == '\f'
}

func isLetter(b byte) bool {
	return ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z')
}

// Tokenize splits expression into tokens, from left to right.
// Whitespace is ignored. A parenthesized group, nested groups included, is returned as
// a single token; its content is not checked until it is parsed.
// It fails with a MalformedOperator error if a '-' is not followed by '>' or a '<' is not
// followed by "->", and with an UnbalancedParentheses error if parentheses do not match.
func Tokenize(expression string) ([]Token, error) {
	return tokenize(expression, 0)
}

// tokenize is Tokenize for a part of an expression starting at index offset.
// Token and error positions are relative to the whole expression.
func tokenize(expression string, offset int) ([]Token, error) {
	var (
		tokens []Token
		depth  int
		open   int // Index of the '(' opening the current group
	)
	for i := 0; i < len(expression); i++ {
		c := expression[i]
		switch {
		case isSpace(c):
			continue
		case c == '(':
			if depth == 0 {
				open = i
			}
			depth++
			continue
		case c == ')':
			if depth == 0 {
				return nil, newError(UnbalancedParentheses, offset+i, "')' has no matching '('")
			}
			depth--
			if depth == 0 {
				tokens = append(tokens, Token{Text: expression[open : i+1], Pos: offset + open})
			}
			continue
		case depth > 0:
			continue
		}
		switch c {
		case '-':
			if !follows(expression, i+1, '>') {
				return nil, newError(MalformedOperator, offset+i+1, "expected '>' after '-'")
			}
			tokens = append(tokens, Token{Text: "->", Pos: offset + i})
			i++
		case '<':
			if !follows(expression, i+1, '-') {
				return nil, newError(MalformedOperator, offset+i+1, "expected '-' after '<'")
			}
			if !follows(expression, i+2, '>') {
				return nil, newError(MalformedOperator, offset+i+2, "expected '>' after '<-'")
			}
			tokens = append(tokens, Token{Text: "<->", Pos: offset + i})
			i += 2
		default:
			_, size := utf8.DecodeRuneInString(expression[i:])
			tokens = append(tokens, Token{Text: expression[i : i+size], Pos: offset + i})
			i += size - 1
		}
	}
	if depth > 0 {
		return nil, newError(UnbalancedParentheses, offset+open, "'(' is never closed")
	}
	return tokens, nil
}

// follows is true iff the byte at index i in s is b.
func follows(s string, i int, b byte) bool {
	return i < len(s) && s[i] == b
}
