package filter

import "github.com/shibukawa/filterlang/tokenizer"

// Grammar matchers. Each peek* reports whether its production matches at the
// given 1-based lookahead offset and, when it does, how many tokens the
// production would consume. None of them move the cursor, so callers can
// chain lookahead past a matched rule before committing anything.

// peekAndExpr matches: comparison "&&" comparison.
func (p *parser) peekAndExpr(at int) (int, bool) {
	return p.peekLogical(tokenizer.AND, at)
}

// peekOrExpr matches: comparison "||" comparison.
func (p *parser) peekOrExpr(at int) (int, bool) {
	return p.peekLogical(tokenizer.OR, at)
}

func (p *parser) peekLogical(connective tokenizer.TokenType, at int) (int, bool) {
	left, ok := p.peekComparison(at)
	if !ok {
		return 0, false
	}

	if !p.cur.peek(connective, at+left) {
		return 0, false
	}

	right, ok := p.peekComparison(at + left + 1)
	if !ok {
		return 0, false
	}

	return left + 1 + right, true
}

// peekComparison matches: operand comparator operand.
func (p *parser) peekComparison(at int) (int, bool) {
	left, ok := p.peekOperand(at)
	if !ok {
		return 0, false
	}

	if _, ok := p.peekComparator(at + left); !ok {
		return 0, false
	}

	right, ok := p.peekOperand(at + left + 1)
	if !ok {
		return 0, false
	}

	return left + 1 + right, true
}

// peekComparator matches one of the six comparison operators.
func (p *parser) peekComparator(at int) (int, bool) {
	token, ok := p.cur.at(at)
	if !ok || !token.Type.IsComparator() {
		return 0, false
	}

	return 1, true
}

// peekOperand matches a literal or an identifier chain.
func (p *parser) peekOperand(at int) (int, bool) {
	token, ok := p.cur.at(at)
	if !ok {
		return 0, false
	}

	if token.Type.IsLiteral() {
		return 1, true
	}

	return p.peekIdentifierChain(at)
}

// peekIdentifierChain matches: IDENT ("." IDENT)*. The chain must end on an
// IDENT, so a trailing dot is left unmatched for the reducer to report.
func (p *parser) peekIdentifierChain(at int) (int, bool) {
	if !p.cur.peek(tokenizer.IDENT, at) {
		return 0, false
	}

	length := 1
	for p.cur.peek(tokenizer.DOT, at+length) && p.cur.peek(tokenizer.IDENT, at+length+1) {
		length += 2
	}

	return length, true
}
