package logic

type parser struct {
	tokens []Token
	pos    int // Index of the next token to read
}

// Parse tokenizes and parses the given expression.
// Binary operators are, from the loosest to the tightest binding:
//
// - "<->" for an equivalence,
// - "->" for an implication,
// - "|" for a disjunction,
// - "^" for an exclusive disjunction,
// - "&" for a conjunction.
//
// All of them are left-associative. "~" negates the variable or the parenthesized group
// that immediately follows it.
// An empty expression, or one made only of whitespace, is parsed as a nil Node.
func Parse(expression string) (Node, error) {
	tokens, err := Tokenize(expression)
	if err != nil {
		return nil, err
	}
	return ParseTokens(tokens)
}

// ParseTokens parses a whole sequence of tokens, as returned by Tokenize.
func ParseTokens(tokens []Token) (Node, error) {
	p := parser{tokens: tokens}
	return p.parseExpr(Iff.Precedence())
}

func (p *parser) eof() bool {
	return p.pos >= len(p.tokens)
}

func (p *parser) peek() Token {
	return p.tokens[p.pos]
}

func (p *parser) next() Token {
	tok := p.tokens[p.pos]
	p.pos++
	return tok
}

// parseExpr parses tokens as long as it meets no binary operator binding looser than minPrec.
// Such an operator is left unread for the caller.
func (p *parser) parseExpr(minPrec int) (Node, error) {
	var lhs Node
	for !p.eof() {
		tok := p.peek()
		if op, ok := lookupOperator(tok.Text); ok {
			if op.Precedence() < minPrec {
				break
			}
			if lhs == nil {
				return nil, newError(UnexpectedToken, tok.Pos, "operator %q has no left operand", tok.Text)
			}
			p.next()
			// A tighter minimum keeps operators of the same precedence for this level: left associativity.
			rhs, err := p.parseExpr(op.Precedence() + 1)
			if err != nil {
				return nil, err
			}
			if rhs == nil {
				return nil, newError(UnexpectedToken, tok.Pos, "operator %q has no right operand", tok.Text)
			}
			lhs = &Binary{Op: op, Left: lhs, Right: rhs}
			continue
		}
		if lhs != nil {
			return nil, newError(UnexpectedToken, tok.Pos, "expected an operator, found %q", tok.Text)
		}
		if tok.Text == "~" {
			p.next()
			if p.eof() {
				return nil, newError(UnexpectedToken, tok.Pos, "'~' has no operand")
			}
			operand, err := p.parseAtom()
			if err != nil {
				return nil, err
			}
			lhs = &Not{X: operand}
			continue
		}
		atom, err := p.parseAtom()
		if err != nil {
			return nil, err
		}
		lhs = atom
	}
	return lhs, nil
}

// parseAtom parses a variable or a parenthesized group.
func (p *parser) parseAtom() (Node, error) {
	tok := p.next()
	if tok.isGroup() {
		return parseGroup(tok)
	}
	if len(tok.Text) == 1 && isLetter(tok.Text[0]) {
		return Var(tok.Text), nil
	}
	return nil, newError(UnexpectedToken, tok.Pos, "expected a variable or a group, found %q", tok.Text)
}

// parseGroup tokenizes and parses the content of a group token.
func parseGroup(group Token) (Node, error) {
	tokens, err := tokenize(group.Text[1:len(group.Text)-1], group.Pos+1)
	if err != nil {
		return nil, err
	}
	n, err := ParseTokens(tokens)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, newError(UnexpectedToken, group.Pos, "empty group")
	}
	return n, nil
}
