package filter

import (
	"reflect"

	"github.com/shibukawa/filterlang/typeindex"
)

var anyType = reflect.TypeFor[any]()

// operand is a typed value node: a literal constant, an enum constant, a
// property access chain, or a widening conversion around one of those. Every
// operand knows its result type at construction time.
type operand interface {
	resultType() reflect.Type
	eval(root reflect.Value) reflect.Value
}

// boolExpr is a boolean node: a comparison or a logical combination. The
// compiled predicate evaluates the root boolExpr directly.
type boolExpr interface {
	evalBool(root reflect.Value) bool
}

// constExpr holds a typed constant: a parsed literal or a resolved enum
// member. The null literal is represented by the nil value of the universal
// base type any until coercion retypes it against the other operand.
type constExpr struct {
	typ reflect.Type
	val reflect.Value
}

func (e *constExpr) resultType() reflect.Type { return e.typ }

func (e *constExpr) eval(reflect.Value) reflect.Value { return e.val }

func (e *constExpr) isNull() bool { return e.typ == anyType }

// propertyExpr reads a chain of properties starting from the predicate
// parameter. Pointers are dereferenced between steps; a nil pointer short
// circuits the chain to the zero value of the chain's static type.
type propertyExpr struct {
	path []typeindex.Member
	typ  reflect.Type
}

func (e *propertyExpr) resultType() reflect.Type { return e.typ }

func (e *propertyExpr) eval(root reflect.Value) reflect.Value {
	v := root

	for _, step := range e.path {
		for v.Kind() == reflect.Pointer {
			if v.IsNil() {
				return reflect.Zero(e.typ)
			}

			v = v.Elem()
		}

		v = v.Field(step.Index)
	}

	return v
}

// convertExpr widens a non-constant operand to the reconciled comparison
// type. Only conversions that preserve every value of the source type are
// built (see widens).
type convertExpr struct {
	inner operand
	typ   reflect.Type
}

func (e *convertExpr) resultType() reflect.Type { return e.typ }

func (e *convertExpr) eval(root reflect.Value) reflect.Value {
	return e.inner.eval(root).Convert(e.typ)
}

// comparisonExpr joins two type-reconciled operands with one of the six
// comparators. The kind-specific compare function is chosen once at build
// time.
type comparisonExpr struct {
	left    operand
	right   operand
	compare func(l, r reflect.Value) bool
}

func (e *comparisonExpr) evalBool(root reflect.Value) bool {
	return e.compare(e.left.eval(root), e.right.eval(root))
}

// logicalExpr joins two comparisons with && or ||.
type logicalExpr struct {
	and   bool
	left  boolExpr
	right boolExpr
}

func (e *logicalExpr) evalBool(root reflect.Value) bool {
	if e.and {
		return e.left.evalBool(root) && e.right.evalBool(root)
	}

	return e.left.evalBool(root) || e.right.evalBool(root)
}
