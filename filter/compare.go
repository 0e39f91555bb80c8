package filter

import (
	"reflect"

	"github.com/shibukawa/filterlang/tokenizer"
)

// buildCompare picks the native comparison for the reconciled operand type
// once, at compile time. Ordering comparators are defined for numbers and
// strings; booleans and reference types support equality only, and reference
// types compare by identity with nil equal to nil.
func buildCompare(op tokenizer.TokenType, t reflect.Type) (func(l, r reflect.Value) bool, error) {
	kind := t.Kind()

	switch {
	case isSigned(kind):
		return compareOrdered(op, reflect.Value.Int), nil
	case isUnsigned(kind):
		return compareOrdered(op, reflect.Value.Uint), nil
	case isFloat(kind):
		return compareOrdered(op, reflect.Value.Float), nil
	case kind == reflect.String:
		return compareOrdered(op, reflect.Value.String), nil
	case kind == reflect.Bool:
		return compareEquality(op, func(l, r reflect.Value) bool {
			return l.Bool() == r.Bool()
		}, t)
	case isNilable(kind):
		return compareEquality(op, referencesEqual, t)
	}

	return nil, &TypeMismatchError{Left: t, Right: t, Op: opText(op)}
}

func compareOrdered[V int64 | uint64 | float64 | string](op tokenizer.TokenType, value func(reflect.Value) V) func(l, r reflect.Value) bool {
	switch op {
	case tokenizer.EQUAL:
		return func(l, r reflect.Value) bool { return value(l) == value(r) }
	case tokenizer.NOT_EQUAL:
		return func(l, r reflect.Value) bool { return value(l) != value(r) }
	case tokenizer.LESS_THAN:
		return func(l, r reflect.Value) bool { return value(l) < value(r) }
	case tokenizer.GREATER_THAN:
		return func(l, r reflect.Value) bool { return value(l) > value(r) }
	case tokenizer.LESS_EQUAL:
		return func(l, r reflect.Value) bool { return value(l) <= value(r) }
	default:
		return func(l, r reflect.Value) bool { return value(l) >= value(r) }
	}
}

func compareEquality(op tokenizer.TokenType, equal func(l, r reflect.Value) bool, t reflect.Type) (func(l, r reflect.Value) bool, error) {
	switch op {
	case tokenizer.EQUAL:
		return equal, nil
	case tokenizer.NOT_EQUAL:
		return func(l, r reflect.Value) bool { return !equal(l, r) }, nil
	default:
		return nil, &TypeMismatchError{Left: t, Right: t, Op: opText(op)}
	}
}

// referencesEqual treats two nils as equal and compares pointers by identity.
// Non-pointer reference kinds only support nil tests; two non-nil values of
// those kinds are never equal.
func referencesEqual(l, r reflect.Value) bool {
	if l.IsNil() || r.IsNil() {
		return l.IsNil() && r.IsNil()
	}

	if l.Kind() == reflect.Pointer {
		return l.Pointer() == r.Pointer()
	}

	return false
}

func opText(op tokenizer.TokenType) string {
	switch op {
	case tokenizer.EQUAL:
		return "=="
	case tokenizer.NOT_EQUAL:
		return "!="
	case tokenizer.LESS_THAN:
		return "<"
	case tokenizer.GREATER_THAN:
		return ">"
	case tokenizer.LESS_EQUAL:
		return "<="
	default:
		return ">="
	}
}
