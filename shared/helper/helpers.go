package helper

import (
	"errors"
	"fmt"
	"reflect"
)

var ErrArgIndex = errors.New("argument index out of range")

// CastArg asserts the i-th positional argument to T.
// An untyped nil yields the zero value of T, so nil pointers, funcs and
// interfaces survive the round trip through []any.
// Panics if the index is out of range or the dynamic type does not match.
func CastArg[T any](args []any, i int) T {
	if i < 0 || i >= len(args) {
		panic(fmt.Errorf("%w: %d of %d", ErrArgIndex, i, len(args)))
	}
	raw := args[i]
	if raw == nil {
		var zero T
		return zero
	}
	v, ok := raw.(T)
	if !ok {
		panic(fmt.Errorf("unexpected type at %d: %T, want %v", i, raw, reflect.TypeFor[T]()))
	}
	return v
}

// GetTypedValueOf2 asserts the result of a comma-ok getter to the expected type T.
// ok is false if the getter misses or the stored value is not a T.
func GetTypedValueOf2[T any](getFn func() (any, bool)) (res T, ok bool) {
	var raw any
	if raw, ok = getFn(); ok {
		res, ok = raw.(T)
	}
	return
}
