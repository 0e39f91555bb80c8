package filter

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/shibukawa/filterlang/tokenizer"
)

// Sentinel errors
var (
	// ErrUnexpectedToken indicates a token did not match the grammar rule
	// being reduced.
	ErrUnexpectedToken = errors.New("unexpected token")
	// ErrExpectedBooleanEvaluation indicates no top-level production matched
	// the token sequence.
	ErrExpectedBooleanEvaluation = errors.New("expected boolean evaluation")
	// ErrExpectedConstantOrIdentifier indicates an operand position held
	// neither a literal nor an identifier chain.
	ErrExpectedConstantOrIdentifier = errors.New("expected constant or identifier")
	// ErrMalformedNumber indicates a number literal could not be parsed.
	ErrMalformedNumber = errors.New("malformed number literal")
	// ErrUnresolvedIdentifier indicates an identifier chain matched neither a
	// property path nor an enum constant.
	ErrUnresolvedIdentifier = errors.New("unresolved identifier")
	// ErrAmbiguousIdentifier indicates an identifier chain resolved to more
	// than one candidate.
	ErrAmbiguousIdentifier = errors.New("ambiguous identifier")
	// ErrTypeMismatch indicates two comparison operands could not be
	// reconciled to a common type.
	ErrTypeMismatch = errors.New("type mismatch")
	// ErrIndexTargetMismatch indicates a reused type index was built for a
	// different target type than the compile requested.
	ErrIndexTargetMismatch = errors.New("type index was built for a different target type")
	// ErrEmptyTokenList indicates the token sequence was empty.
	ErrEmptyTokenList = errors.New("empty token list")
)

// SyntaxError reports a compile-time failure against the filter grammar or
// the identifier resolver. Kind is one of the sentinel errors above, so
// callers can classify failures with errors.Is.
type SyntaxError struct {
	Kind       error
	Position   tokenizer.Position
	TokenIndex int
	Found      tokenizer.TokenType
	Expected   tokenizer.TokenType
	Ident      string
	Cause      error
}

func (e *SyntaxError) Error() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "syntax error at line %d, column %d: %s", e.Position.Line, e.Position.Column, e.Kind)

	switch {
	case errors.Is(e.Kind, ErrUnexpectedToken):
		fmt.Fprintf(&sb, ": found %s, expected %s", e.Found, e.Expected)
	case e.Ident != "":
		fmt.Fprintf(&sb, " '%s'", e.Ident)
	}

	if e.Cause != nil {
		fmt.Fprintf(&sb, ": %v", e.Cause)
	}

	return sb.String()
}

func (e *SyntaxError) Unwrap() []error {
	if e.Cause != nil {
		return []error{e.Kind, e.Cause}
	}

	return []error{e.Kind}
}

// TypeMismatchError reports that the two sides of a comparison could not be
// reconciled to a common type by checked conversion in either direction.
type TypeMismatchError struct {
	Left  reflect.Type
	Right reflect.Type
	Op    string
}

func (e *TypeMismatchError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("type mismatch: operator %s is not defined for operands %s and %s", e.Op, e.Left, e.Right)
	}

	return fmt.Sprintf("type mismatch: cannot reconcile operand types %s and %s", e.Left, e.Right)
}

func (e *TypeMismatchError) Unwrap() error {
	return ErrTypeMismatch
}
