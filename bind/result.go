package bind

// Func0 through Func4 are the callable shapes a binding accepts.
// The result type R is fixed by type inference at the binding call site;
// named function types are accepted through their underlying type.
//
// Callables of any other shape are rejected at compile time. Adapt them first:
//   - no result: Do0..Do4
//   - two results: Both0..Both4
//   - more parameters: bind an inner closure, or group them in a struct
type (
	Func0[R any]                 interface{ ~func() R }
	Func1[A1, R any]             interface{ ~func(A1) R }
	Func2[A1, A2, R any]         interface{ ~func(A1, A2) R }
	Func3[A1, A2, A3, R any]     interface{ ~func(A1, A2, A3) R }
	Func4[A1, A2, A3, A4, R any] interface{ ~func(A1, A2, A3, A4) R }
)

// Unit is the result of a callable that produces nothing.
type Unit struct{}

// Pair carries both results of a dual-output callable.
type Pair[O1, O2 any] struct {
	First  O1
	Second O2
}

// PairOf builds a Pair.
func PairOf[O1, O2 any](o1 O1, o2 O2) Pair[O1, O2] {
	return Pair[O1, O2]{First: o1, Second: o2}
}

// Unpack returns both results, restoring the callable's original shape.
func (p Pair[O1, O2]) Unpack() (O1, O2) {
	return p.First, p.Second
}
