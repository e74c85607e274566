package bind

import (
	"fmt"

	"github.com/on-the-ground/bind_ive_go/shared/helper"
)

// invoker is the erased form of a callable: it takes the fully assembled
// positional argument list and returns the callable's result unmodified.
type invoker[R any] func(args []any) R

func mustCallable(isNil bool, arity int) {
	if isNil {
		panic(fmt.Errorf("%w: arity %d", ErrNilCallable, arity))
	}
}

func checkArity(args []any, n int) {
	if len(args) != n {
		panic(fmt.Errorf("%w: got %d, want %d", ErrArity, len(args), n))
	}
}

func adapt0[F Func0[R], R any](fn F) invoker[R] {
	f := (func() R)(fn)
	mustCallable(f == nil, 0)
	return func(args []any) R {
		checkArity(args, 0)
		return f()
	}
}

func adapt1[F Func1[A1, R], A1, R any](fn F) invoker[R] {
	f := (func(A1) R)(fn)
	mustCallable(f == nil, 1)
	return func(args []any) R {
		checkArity(args, 1)
		return f(helper.CastArg[A1](args, 0))
	}
}

func adapt2[F Func2[A1, A2, R], A1, A2, R any](fn F) invoker[R] {
	f := (func(A1, A2) R)(fn)
	mustCallable(f == nil, 2)
	return func(args []any) R {
		checkArity(args, 2)
		return f(
			helper.CastArg[A1](args, 0),
			helper.CastArg[A2](args, 1),
		)
	}
}

func adapt3[F Func3[A1, A2, A3, R], A1, A2, A3, R any](fn F) invoker[R] {
	f := (func(A1, A2, A3) R)(fn)
	mustCallable(f == nil, 3)
	return func(args []any) R {
		checkArity(args, 3)
		return f(
			helper.CastArg[A1](args, 0),
			helper.CastArg[A2](args, 1),
			helper.CastArg[A3](args, 2),
		)
	}
}

func adapt4[F Func4[A1, A2, A3, A4, R], A1, A2, A3, A4, R any](fn F) invoker[R] {
	f := (func(A1, A2, A3, A4) R)(fn)
	mustCallable(f == nil, 4)
	return func(args []any) R {
		checkArity(args, 4)
		return f(
			helper.CastArg[A1](args, 0),
			helper.CastArg[A2](args, 1),
			helper.CastArg[A3](args, 2),
			helper.CastArg[A4](args, 3),
		)
	}
}

// Do0 lifts a callable with no result into one returning Unit.
// A nil fn lifts to nil, so binding it panics with ErrNilCallable.
func Do0(fn func()) func() Unit {
	if fn == nil {
		return nil
	}
	return func() Unit {
		fn()
		return Unit{}
	}
}

func Do1[A1 any](fn func(A1)) func(A1) Unit {
	if fn == nil {
		return nil
	}
	return func(a1 A1) Unit {
		fn(a1)
		return Unit{}
	}
}

func Do2[A1, A2 any](fn func(A1, A2)) func(A1, A2) Unit {
	if fn == nil {
		return nil
	}
	return func(a1 A1, a2 A2) Unit {
		fn(a1, a2)
		return Unit{}
	}
}

func Do3[A1, A2, A3 any](fn func(A1, A2, A3)) func(A1, A2, A3) Unit {
	if fn == nil {
		return nil
	}
	return func(a1 A1, a2 A2, a3 A3) Unit {
		fn(a1, a2, a3)
		return Unit{}
	}
}

func Do4[A1, A2, A3, A4 any](fn func(A1, A2, A3, A4)) func(A1, A2, A3, A4) Unit {
	if fn == nil {
		return nil
	}
	return func(a1 A1, a2 A2, a3 A3, a4 A4) Unit {
		fn(a1, a2, a3, a4)
		return Unit{}
	}
}

// Both0 lifts a dual-output callable into one returning a Pair.
// The common (T, error) shape goes through here.
func Both0[O1, O2 any](fn func() (O1, O2)) func() Pair[O1, O2] {
	if fn == nil {
		return nil
	}
	return func() Pair[O1, O2] {
		return PairOf[O1, O2](fn())
	}
}

func Both1[A1, O1, O2 any](fn func(A1) (O1, O2)) func(A1) Pair[O1, O2] {
	if fn == nil {
		return nil
	}
	return func(a1 A1) Pair[O1, O2] {
		return PairOf[O1, O2](fn(a1))
	}
}

func Both2[A1, A2, O1, O2 any](fn func(A1, A2) (O1, O2)) func(A1, A2) Pair[O1, O2] {
	if fn == nil {
		return nil
	}
	return func(a1 A1, a2 A2) Pair[O1, O2] {
		return PairOf[O1, O2](fn(a1, a2))
	}
}

func Both3[A1, A2, A3, O1, O2 any](fn func(A1, A2, A3) (O1, O2)) func(A1, A2, A3) Pair[O1, O2] {
	if fn == nil {
		return nil
	}
	return func(a1 A1, a2 A2, a3 A3) Pair[O1, O2] {
		return PairOf[O1, O2](fn(a1, a2, a3))
	}
}

func Both4[A1, A2, A3, A4, O1, O2 any](fn func(A1, A2, A3, A4) (O1, O2)) func(A1, A2, A3, A4) Pair[O1, O2] {
	if fn == nil {
		return nil
	}
	return func(a1 A1, a2 A2, a3 A3, a4 A4) Pair[O1, O2] {
		return PairOf[O1, O2](fn(a1, a2, a3, a4))
	}
}
