// Package filter compiles boolean filter expressions such as
// "msg.Tag == 10 && client.ID == 0" into reusable predicates over a known
// record type. Parsing, identifier resolution against the record's property
// graph, and type reconciliation all happen once at compile time; the
// returned predicate evaluates with no further parsing or reflection setup
// and is safe for concurrent callers.
package filter

import (
	"reflect"

	"github.com/shibukawa/filterlang/tokenizer"
	"github.com/shibukawa/filterlang/typeindex"
)

// Predicate is a compiled filter expression. It is immutable and safe to
// invoke repeatedly and concurrently.
type Predicate[T any] func(T) bool

type options struct {
	visibility typeindex.Visibility
	registry   *typeindex.Registry
	index      *typeindex.Index
}

// Option configures a compile.
type Option func(*options)

// WithVisibility sets the member visibility policy identifiers resolve
// against. The default is typeindex.Exported.
func WithVisibility(v typeindex.Visibility) Option {
	return func(o *options) { o.visibility = v }
}

// WithEnums sets the enum registry used when the reachable-type index is
// built. The default is typeindex.Default().
func WithEnums(r *typeindex.Registry) Option {
	return func(o *options) { o.registry = r }
}

// WithIndex reuses a prebuilt reachable-type index. The index only depends on
// the target type's static shape, so one index can serve any number of
// compiles against the same type; WithVisibility and WithEnums are ignored
// when an index is supplied.
func WithIndex(idx *typeindex.Index) Option {
	return func(o *options) { o.index = idx }
}

// Compile turns a token sequence into a predicate over T. Identifier chains
// resolve against T's readable properties and the enum types reachable from
// T. Any failure aborts the compile; no partial predicate is ever returned.
func Compile[T any](tokens []tokenizer.Token, opts ...Option) (Predicate[T], error) {
	if len(tokens) == 0 {
		return nil, ErrEmptyTokenList
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	target := reflect.TypeFor[T]()

	index := o.index
	if index == nil {
		index = typeindex.New(target, o.visibility, o.registry)
	} else if index.Target() != target {
		return nil, ErrIndexTargetMismatch
	}

	root, err := newParser(tokens, index).parse()
	if err != nil {
		return nil, err
	}

	return func(v T) bool {
		return root.evalBool(reflect.ValueOf(&v).Elem())
	}, nil
}

// CompileString tokenizes and compiles a filter expression in one step.
func CompileString[T any](expr string, opts ...Option) (Predicate[T], error) {
	tokens, err := tokenizer.Tokenize(expr)
	if err != nil {
		return nil, err
	}

	return Compile[T](tokens, opts...)
}

// Validate checks a token sequence against the grammar without resolving
// identifiers, so no target type is needed. Tools use it to lint filter
// expressions whose record types are not known at lint time.
func Validate(tokens []tokenizer.Token) error {
	if len(tokens) == 0 {
		return ErrEmptyTokenList
	}

	p := newParser(tokens, nil)

	length, ok := p.peekAndExpr(1)
	if !ok {
		length, ok = p.peekOrExpr(1)
	}

	if !ok {
		length, ok = p.peekComparison(1)
	}

	if !ok {
		position := p.cur.endPosition()
		if token, found := p.cur.at(1); found {
			position = token.Position
		}

		return &SyntaxError{Kind: ErrExpectedBooleanEvaluation, Position: position}
	}

	if token, found := p.cur.at(length + 1); found && token.Type != tokenizer.EOF {
		return &SyntaxError{
			Kind:       ErrUnexpectedToken,
			Position:   token.Position,
			TokenIndex: length,
			Found:      token.Type,
			Expected:   tokenizer.EOF,
		}
	}

	return nil
}
