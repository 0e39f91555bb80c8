package filter

import (
	"reflect"
	"strconv"

	"github.com/shibukawa/filterlang/tokenizer"
	"github.com/shibukawa/filterlang/typeindex"
)

// parser reduces one token sequence to a boolean expression tree. A parser
// instance is single-use and must not be shared across compiles.
type parser struct {
	cur   cursor
	index *typeindex.Index
}

func newParser(tokens []tokenizer.Token, index *typeindex.Index) *parser {
	return &parser{cur: cursor{tokens: tokens}, index: index}
}

// parse reduces the whole token sequence to a single boolean expression.
// Tokens past the root production (other than a final EOF) are an error: an
// expression is the entire input, not a prefix of it.
func (p *parser) parse() (boolExpr, error) {
	root, err := p.eatBooleanExpr()
	if err != nil {
		return nil, err
	}

	if token, ok := p.cur.at(1); ok && token.Type != tokenizer.EOF {
		return nil, &SyntaxError{
			Kind:       ErrUnexpectedToken,
			Position:   token.Position,
			TokenIndex: p.cur.pos,
			Found:      token.Type,
			Expected:   tokenizer.EOF,
		}
	}

	return root, nil
}

// Grammar reducers. Each eat* consumes the tokens its production matched and
// builds the corresponding tree node. Every eat* assumes the matching peek*
// already succeeded; the top-level dispatch below is the only place
// alternatives are chosen.

// eatBooleanExpr tries and-expr, then or-expr, then a plain comparison, and
// reduces the first whose lookahead succeeds.
func (p *parser) eatBooleanExpr() (boolExpr, error) {
	if _, ok := p.peekAndExpr(1); ok {
		return p.eatLogical(tokenizer.AND)
	}

	if _, ok := p.peekOrExpr(1); ok {
		return p.eatLogical(tokenizer.OR)
	}

	if _, ok := p.peekComparison(1); ok {
		return p.eatComparison()
	}

	position := p.cur.endPosition()
	if token, ok := p.cur.at(1); ok {
		position = token.Position
	}

	return nil, &SyntaxError{
		Kind:       ErrExpectedBooleanEvaluation,
		Position:   position,
		TokenIndex: p.cur.pos,
	}
}

// eatLogical reduces: comparison connective comparison.
func (p *parser) eatLogical(connective tokenizer.TokenType) (boolExpr, error) {
	left, err := p.eatComparison()
	if err != nil {
		return nil, err
	}

	if _, err := p.cur.consume(connective); err != nil {
		return nil, err
	}

	right, err := p.eatComparison()
	if err != nil {
		return nil, err
	}

	return &logicalExpr{and: connective == tokenizer.AND, left: left, right: right}, nil
}

// eatComparison reduces: operand comparator operand, reconciling the operand
// types before the comparison node is built.
func (p *parser) eatComparison() (boolExpr, error) {
	left, err := p.eatOperand()
	if err != nil {
		return nil, err
	}

	op, err := p.eatComparator()
	if err != nil {
		return nil, err
	}

	right, err := p.eatOperand()
	if err != nil {
		return nil, err
	}

	left, right, err = reconcile(left, right)
	if err != nil {
		return nil, err
	}

	compare, err := buildCompare(op.Type, left.resultType())
	if err != nil {
		return nil, err
	}

	return &comparisonExpr{left: left, right: right, compare: compare}, nil
}

// eatComparator consumes whichever of the six comparators is current.
func (p *parser) eatComparator() (tokenizer.Token, error) {
	token, ok := p.cur.at(1)
	if !ok || !token.Type.IsComparator() {
		return p.cur.consume(tokenizer.EQUAL)
	}

	return p.cur.consume(token.Type)
}

// eatOperand reduces a literal or an identifier chain to a typed operand.
func (p *parser) eatOperand() (operand, error) {
	token, ok := p.cur.at(1)
	if !ok {
		return nil, &SyntaxError{
			Kind:       ErrExpectedConstantOrIdentifier,
			Position:   p.cur.endPosition(),
			TokenIndex: p.cur.pos,
		}
	}

	switch token.Type {
	case tokenizer.NUMBER:
		return p.eatNumber()
	case tokenizer.STRING:
		token, err := p.cur.consume(tokenizer.STRING)
		if err != nil {
			return nil, err
		}

		return &constExpr{typ: reflect.TypeFor[string](), val: reflect.ValueOf(token.Value)}, nil
	case tokenizer.BOOLEAN:
		token, err := p.cur.consume(tokenizer.BOOLEAN)
		if err != nil {
			return nil, err
		}

		return &constExpr{typ: reflect.TypeFor[bool](), val: reflect.ValueOf(token.Value == "true")}, nil
	case tokenizer.NULL:
		if _, err := p.cur.consume(tokenizer.NULL); err != nil {
			return nil, err
		}

		return &constExpr{typ: anyType, val: reflect.Zero(anyType)}, nil
	case tokenizer.IDENT:
		return p.eatIdentifierChain()
	}

	return nil, &SyntaxError{
		Kind:       ErrExpectedConstantOrIdentifier,
		Position:   token.Position,
		TokenIndex: p.cur.pos,
		Found:      token.Type,
	}
}

// eatNumber types an integer literal as int64, the language's native signed
// integer type. Unparsable digits propagate the strconv failure.
func (p *parser) eatNumber() (operand, error) {
	token, err := p.cur.consume(tokenizer.NUMBER)
	if err != nil {
		return nil, err
	}

	value, err := strconv.ParseInt(token.Value, 10, 64)
	if err != nil {
		return nil, &SyntaxError{
			Kind:       ErrMalformedNumber,
			Position:   token.Position,
			TokenIndex: p.cur.pos - 1,
			Ident:      token.Value,
			Cause:      err,
		}
	}

	return &constExpr{typ: reflect.TypeFor[int64](), val: reflect.ValueOf(value)}, nil
}

// eatIdentifierChain consumes IDENT ("." IDENT)* and hands the segments to
// the identifier resolver.
func (p *parser) eatIdentifierChain() (operand, error) {
	first, err := p.cur.consume(tokenizer.IDENT)
	if err != nil {
		return nil, err
	}

	segments := []segment{{name: first.Value, token: first}}

	for p.cur.peek(tokenizer.DOT, 1) && p.cur.peek(tokenizer.IDENT, 2) {
		if _, err := p.cur.consume(tokenizer.DOT); err != nil {
			return nil, err
		}

		ident, err := p.cur.consume(tokenizer.IDENT)
		if err != nil {
			return nil, err
		}

		segments = append(segments, segment{name: ident.Value, token: ident})
	}

	return p.resolveChain(segments)
}
