package tokenizer

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Tokenize scans a filter expression and returns the full token sequence,
// ending with an EOF token. Whitespace separates tokens and is never emitted.
func Tokenize(input string) ([]Token, error) {
	t := &tokenizer{input: input, line: 1, column: 1}

	tokens := make([]Token, 0, 16)

	for {
		token, err := t.nextToken()
		if err != nil {
			return nil, err
		}

		tokens = append(tokens, token)

		if token.Type == EOF {
			return tokens, nil
		}
	}
}

type tokenizer struct {
	input    string
	position int
	line     int
	column   int
}

func (t *tokenizer) nextToken() (Token, error) {
	t.skipWhitespace()

	if t.position >= len(t.input) {
		return Token{Type: EOF, Position: t.pos()}, nil
	}

	start := t.pos()

	r, _ := utf8.DecodeRuneInString(t.input[t.position:])

	switch {
	case r == '.':
		t.advance()
		return Token{Type: DOT, Value: ".", Position: start}, nil
	case r == '\'' || r == '"':
		return t.readString(r, start)
	case r == '&' || r == '|':
		return t.readConnective(r, start)
	case isOperatorStart(r):
		return t.readComparator(start)
	case unicode.IsDigit(r) || r == '-':
		return t.readNumber(start)
	case isIdentStart(r):
		return t.readWord(start), nil
	}

	return Token{}, fmt.Errorf("%w: '%c' at line %d, column %d", ErrUnexpectedCharacter, r, start.Line, start.Column)
}

// readConnective scans "&&" or "||". A single '&' or '|' is an error.
func (t *tokenizer) readConnective(first rune, start Position) (Token, error) {
	t.advance()

	r, _ := utf8.DecodeRuneInString(t.input[t.position:])
	if t.position >= len(t.input) || r != first {
		return Token{}, fmt.Errorf("%w: '%c' at line %d, column %d", ErrUnexpectedOperator, first, start.Line, start.Column)
	}

	t.advance()

	if first == '&' {
		return Token{Type: AND, Value: "&&", Position: start}, nil
	}

	return Token{Type: OR, Value: "||", Position: start}, nil
}

// readComparator scans one of the six comparison operators.
func (t *tokenizer) readComparator(start Position) (Token, error) {
	r, _ := utf8.DecodeRuneInString(t.input[t.position:])
	t.advance()

	hasEqual := false
	if t.position < len(t.input) {
		next, _ := utf8.DecodeRuneInString(t.input[t.position:])
		if next == '=' {
			t.advance()

			hasEqual = true
		}
	}

	switch {
	case r == '=' && hasEqual:
		return Token{Type: EQUAL, Value: "==", Position: start}, nil
	case r == '!' && hasEqual:
		return Token{Type: NOT_EQUAL, Value: "!=", Position: start}, nil
	case r == '<' && hasEqual:
		return Token{Type: LESS_EQUAL, Value: "<=", Position: start}, nil
	case r == '>' && hasEqual:
		return Token{Type: GREATER_EQUAL, Value: ">=", Position: start}, nil
	case r == '<':
		return Token{Type: LESS_THAN, Value: "<", Position: start}, nil
	case r == '>':
		return Token{Type: GREATER_THAN, Value: ">", Position: start}, nil
	}

	return Token{}, fmt.Errorf("%w: '%c' at line %d, column %d", ErrUnexpectedOperator, r, start.Line, start.Column)
}

// readString scans a quoted string literal. The returned token value has the
// surrounding quotes stripped.
func (t *tokenizer) readString(quote rune, start Position) (Token, error) {
	t.advance() // opening quote

	var sb strings.Builder

	for t.position < len(t.input) {
		r, _ := utf8.DecodeRuneInString(t.input[t.position:])
		if r == quote {
			t.advance()
			return Token{Type: STRING, Value: sb.String(), Position: start}, nil
		}

		sb.WriteRune(r)
		t.advance()
	}

	return Token{}, fmt.Errorf("%w: starting at line %d, column %d", ErrUnterminatedString, start.Line, start.Column)
}

// readNumber scans a signed integer literal. The digits are not range-checked
// here; the parser reports malformed numbers when it types the literal.
func (t *tokenizer) readNumber(start Position) (Token, error) {
	from := t.position

	r, _ := utf8.DecodeRuneInString(t.input[t.position:])
	if r == '-' {
		t.advance()

		next, _ := utf8.DecodeRuneInString(t.input[t.position:])
		if t.position >= len(t.input) || !unicode.IsDigit(next) {
			return Token{}, fmt.Errorf("%w: '-' at line %d, column %d", ErrUnexpectedCharacter, start.Line, start.Column)
		}
	}

	for t.position < len(t.input) {
		r, _ := utf8.DecodeRuneInString(t.input[t.position:])
		if !unicode.IsDigit(r) {
			break
		}

		t.advance()
	}

	return Token{Type: NUMBER, Value: t.input[from:t.position], Position: start}, nil
}

// readWord scans an identifier and classifies the keyword literals
// true/false/null.
func (t *tokenizer) readWord(start Position) Token {
	from := t.position

	for t.position < len(t.input) {
		r, _ := utf8.DecodeRuneInString(t.input[t.position:])
		if !isIdentPart(r) {
			break
		}

		t.advance()
	}

	word := t.input[from:t.position]

	switch word {
	case "true", "false":
		return Token{Type: BOOLEAN, Value: word, Position: start}
	case "null":
		return Token{Type: NULL, Value: word, Position: start}
	}

	return Token{Type: IDENT, Value: word, Position: start}
}

func (t *tokenizer) skipWhitespace() {
	for t.position < len(t.input) {
		r, _ := utf8.DecodeRuneInString(t.input[t.position:])
		if !unicode.IsSpace(r) {
			break
		}

		t.advance()
	}
}

// advance moves past the current rune, tracking line/column.
func (t *tokenizer) advance() {
	r, width := utf8.DecodeRuneInString(t.input[t.position:])
	t.position += width

	if r == '\n' {
		t.line++
		t.column = 1
	} else {
		t.column++
	}
}

func (t *tokenizer) pos() Position {
	return Position{Line: t.line, Column: t.column, Offset: t.position}
}

func isOperatorStart(r rune) bool {
	switch r {
	case '<', '>', '=', '!':
		return true
	default:
		return false
	}
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentPart(r rune) bool {
	return isIdentStart(r) || unicode.IsDigit(r)
}
