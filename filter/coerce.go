package filter

import (
	"reflect"

	"github.com/shopspring/decimal"
)

// reconcile brings two comparison operands to a common type. The checked
// conversion is tried right-to-left first, then left-to-right; the order is
// part of the language contract and decides which type a comparison settles
// on when both directions would work.
func reconcile(left, right operand) (operand, operand, error) {
	lt, rt := left.resultType(), right.resultType()
	if lt == rt {
		return left, right, nil
	}

	if converted, ok := convert(right, lt); ok {
		return left, converted, nil
	}

	if converted, ok := convert(left, rt); ok {
		return converted, right, nil
	}

	return nil, nil, &TypeMismatchError{Left: lt, Right: rt}
}

// convert attempts a checked conversion of e to the target type. Constant
// operands are checked against their actual value; anything else is only
// converted when every value of the source type is representable in the
// target.
func convert(e operand, to reflect.Type) (operand, bool) {
	if c, ok := e.(*constExpr); ok {
		return convertConst(c, to)
	}

	from := e.resultType()
	if !widens(from, to) {
		return nil, false
	}

	return &convertExpr{inner: e, typ: to}, true
}

func convertConst(c *constExpr, to reflect.Type) (operand, bool) {
	// The null literal converts to the typed nil of any nilable type.
	if c.isNull() {
		if !isNilable(to.Kind()) {
			return nil, false
		}

		return &constExpr{typ: to, val: reflect.Zero(to)}, true
	}

	from := c.val.Type()

	switch {
	case isInteger(from.Kind()) && isInteger(to.Kind()):
		if !integerFits(c.val, to) {
			return nil, false
		}

		return &constExpr{typ: to, val: c.val.Convert(to)}, true
	case isInteger(from.Kind()) && isFloat(to.Kind()):
		return convertRoundTrip(c, to)
	case from.Kind() == reflect.String && isNumeric(to.Kind()):
		return convertStringToNumber(c, to)
	case from.Kind() == reflect.String && to.Kind() == reflect.String:
		return &constExpr{typ: to, val: c.val.Convert(to)}, true
	case from.Kind() == reflect.Bool && to.Kind() == reflect.Bool:
		return &constExpr{typ: to, val: c.val.Convert(to)}, true
	case isFloat(from.Kind()) && isNumeric(to.Kind()):
		return convertRoundTrip(c, to)
	}

	return nil, false
}

// convertRoundTrip accepts a numeric constant conversion only when converting
// back reproduces the original value exactly. Float conversions round rather
// than wrap, so the round trip is a faithful representability check for them.
func convertRoundTrip(c *constExpr, to reflect.Type) (operand, bool) {
	from := c.val.Type()
	if !from.ConvertibleTo(to) {
		return nil, false
	}

	converted := c.val.Convert(to)
	if !converted.Convert(from).Equal(c.val) {
		return nil, false
	}

	return &constExpr{typ: to, val: converted}, true
}

// convertStringToNumber parses a string constant as an exact decimal and
// accepts the conversion only when the target numeric type represents that
// decimal without loss.
func convertStringToNumber(c *constExpr, to reflect.Type) (operand, bool) {
	d, err := decimal.NewFromString(c.val.String())
	if err != nil {
		return nil, false
	}

	target := reflect.New(to).Elem()

	switch {
	case isSigned(to.Kind()):
		if !d.IsInteger() || !decimalFitsSigned(d, to.Bits()) {
			return nil, false
		}

		target.SetInt(d.IntPart())
	case isUnsigned(to.Kind()):
		if !d.IsInteger() || d.Sign() < 0 || !decimalFitsUnsigned(d, to.Bits()) {
			return nil, false
		}

		target.SetUint(d.BigInt().Uint64())
	case isFloat(to.Kind()):
		f, exact := d.Float64()
		if !exact {
			return nil, false
		}

		if to.Bits() == 32 && float64(float32(f)) != f {
			return nil, false
		}

		target.SetFloat(f)
	default:
		return nil, false
	}

	return &constExpr{typ: to, val: target}, true
}

// integerFits reports whether the integer constant v is representable in the
// integer type to. Bounds are checked explicitly: reflect conversions between
// integer types wrap, so a convert-and-compare round trip cannot detect
// overflow at equal widths.
func integerFits(v reflect.Value, to reflect.Type) bool {
	if isSigned(v.Kind()) {
		n := v.Int()
		if isSigned(to.Kind()) {
			return n >= minInt(to.Bits()) && n <= maxInt(to.Bits())
		}

		return n >= 0 && uint64(n) <= maxUint(to.Bits())
	}

	u := v.Uint()
	if isSigned(to.Kind()) {
		return u <= uint64(maxInt(to.Bits()))
	}

	return u <= maxUint(to.Bits())
}

func decimalFitsSigned(d decimal.Decimal, bits int) bool {
	return d.Cmp(decimal.NewFromInt(minInt(bits))) >= 0 && d.Cmp(decimal.NewFromInt(maxInt(bits))) <= 0
}

func decimalFitsUnsigned(d decimal.Decimal, bits int) bool {
	return d.Cmp(decimal.NewFromUint64(maxUint(bits))) <= 0
}

func minInt(bits int) int64 {
	return -1 << (bits - 1)
}

func maxInt(bits int) int64 {
	return 1<<(bits-1) - 1
}

func maxUint(bits int) uint64 {
	if bits == 64 {
		return ^uint64(0)
	}

	return 1<<bits - 1
}

// widens reports whether every value of type from is exactly representable in
// type to. Non-constant operands may only be converted under this rule.
func widens(from, to reflect.Type) bool {
	fk, tk := from.Kind(), to.Kind()

	switch {
	case isSigned(fk) && isSigned(tk):
		return to.Bits() >= from.Bits()
	case isUnsigned(fk) && isUnsigned(tk):
		return to.Bits() >= from.Bits()
	case isUnsigned(fk) && isSigned(tk):
		return to.Bits() > from.Bits()
	case isInteger(fk) && isFloat(tk):
		// float64 holds 53 bits of integer precision, float32 holds 24.
		if tk == reflect.Float64 {
			return from.Bits() <= 32
		}

		return from.Bits() <= 16
	case fk == reflect.Float32 && tk == reflect.Float64:
		return true
	case fk == reflect.String && tk == reflect.String:
		return true
	case fk == reflect.Bool && tk == reflect.Bool:
		return true
	}

	return false
}

func isNilable(k reflect.Kind) bool {
	switch k {
	case reflect.Pointer, reflect.Interface, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return true
	default:
		return false
	}
}

func isSigned(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	default:
		return false
	}
}

func isUnsigned(k reflect.Kind) bool {
	switch k {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	default:
		return false
	}
}

func isInteger(k reflect.Kind) bool {
	return isSigned(k) || isUnsigned(k)
}

func isFloat(k reflect.Kind) bool {
	return k == reflect.Float32 || k == reflect.Float64
}

func isNumeric(k reflect.Kind) bool {
	return isInteger(k) || isFloat(k)
}
