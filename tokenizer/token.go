package tokenizer

import "errors"

// Sentinel errors
var (
	ErrUnexpectedCharacter = errors.New("unexpected character")
	ErrUnterminatedString  = errors.New("unterminated string literal")
	ErrUnexpectedOperator  = errors.New("unexpected operator")
)

// TokenType represents the type of a token
type TokenType int

const (
	// Basic tokens
	EOF TokenType = iota
	IDENT // property or type names
	DOT   // .

	// Logical connectives
	AND // &&
	OR  // ||

	// Comparators
	EQUAL         // ==
	NOT_EQUAL     // !=
	LESS_THAN     // <
	GREATER_THAN  // >
	LESS_EQUAL    // <=
	GREATER_EQUAL // >=

	// Literals
	NUMBER  // signed integer literals
	STRING  // 'text' or "text"
	BOOLEAN // true, false
	NULL    // null
)

// String returns the string representation of TokenType
func (t TokenType) String() string {
	switch t {
	case EOF:
		return "EOF"
	case IDENT:
		return "IDENT"
	case DOT:
		return "DOT"
	case AND:
		return "AND"
	case OR:
		return "OR"
	case EQUAL:
		return "EQUAL"
	case NOT_EQUAL:
		return "NOT_EQUAL"
	case LESS_THAN:
		return "LESS_THAN"
	case GREATER_THAN:
		return "GREATER_THAN"
	case LESS_EQUAL:
		return "LESS_EQUAL"
	case GREATER_EQUAL:
		return "GREATER_EQUAL"
	case NUMBER:
		return "NUMBER"
	case STRING:
		return "STRING"
	case BOOLEAN:
		return "BOOLEAN"
	case NULL:
		return "NULL"
	default:
		return "UNKNOWN"
	}
}

// IsComparator reports whether the token type is one of the six comparison
// operators.
func (t TokenType) IsComparator() bool {
	switch t {
	case EQUAL, NOT_EQUAL, LESS_THAN, GREATER_THAN, LESS_EQUAL, GREATER_EQUAL:
		return true
	default:
		return false
	}
}

// IsLiteral reports whether the token type is a literal value.
func (t TokenType) IsLiteral() bool {
	switch t {
	case NUMBER, STRING, BOOLEAN, NULL:
		return true
	default:
		return false
	}
}

// Position represents a position in the source expression.
// Line/Column are 1-based, Offset is the 0-based byte index.
type Position struct {
	Line   int
	Column int
	Offset int
}

// Token represents a token
type Token struct {
	Type     TokenType
	Value    string
	Position Position
}

// String returns the string representation of Token
func (t Token) String() string {
	return t.Type.String() + ": " + t.Value
}
