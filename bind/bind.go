package bind

// Invocable0 is a callable with its leading arguments bound, waiting for no
// trailing arguments.
type Invocable0[R any] struct {
	b *bound[R]
}

// Run invokes the callable with the bound arguments and returns its result.
func (i Invocable0[R]) Run() R {
	return i.b.run()
}

// Func returns Run as a plain function value.
func (i Invocable0[R]) Func() func() R {
	return i.Run
}

// ID identifies the invocable in logs and Invocation records.
func (i Invocable0[R]) ID() string {
	return i.b.ident()
}

// Captures lists the capture policy of each bound argument, in order.
func (i Invocable0[R]) Captures() []Capture {
	return i.b.captures()
}

// Len is the number of bound arguments.
func (i Invocable0[R]) Len() int {
	return len(i.b.captures())
}

// Invocable1 is a callable with its leading arguments bound, waiting for one
// trailing argument. Build one with BindI1B0, BindI2B1, BindI3B2 or BindI4B3.
//
// The zero value is unbound: running it panics with ErrUnbound.
type Invocable1[T1, R any] struct {
	b *bound[R]
}

// Run invokes the callable with the bound arguments followed by t1.
// Each run is an independent call sharing the same bound prefix.
func (i Invocable1[T1, R]) Run(t1 T1) R {
	return i.b.run(t1)
}

// Func returns Run as a plain function value.
func (i Invocable1[T1, R]) Func() func(T1) R {
	return i.Run
}

// ID identifies the invocable in logs and Invocation records.
func (i Invocable1[T1, R]) ID() string {
	return i.b.ident()
}

// Captures lists the capture policy of each bound argument, in order.
func (i Invocable1[T1, R]) Captures() []Capture {
	return i.b.captures()
}

// Len is the number of bound arguments.
func (i Invocable1[T1, R]) Len() int {
	return len(i.b.captures())
}

// Invocable2 is a callable with its leading arguments bound, waiting for two
// trailing arguments.
type Invocable2[T1, T2, R any] struct {
	b *bound[R]
}

func (i Invocable2[T1, T2, R]) Run(t1 T1, t2 T2) R {
	return i.b.run(t1, t2)
}

func (i Invocable2[T1, T2, R]) Func() func(T1, T2) R {
	return i.Run
}

func (i Invocable2[T1, T2, R]) ID() string {
	return i.b.ident()
}

func (i Invocable2[T1, T2, R]) Captures() []Capture {
	return i.b.captures()
}

func (i Invocable2[T1, T2, R]) Len() int {
	return len(i.b.captures())
}

// Invocable3 is a callable with its leading arguments bound, waiting for three
// trailing arguments.
type Invocable3[T1, T2, T3, R any] struct {
	b *bound[R]
}

func (i Invocable3[T1, T2, T3, R]) Run(t1 T1, t2 T2, t3 T3) R {
	return i.b.run(t1, t2, t3)
}

func (i Invocable3[T1, T2, T3, R]) Func() func(T1, T2, T3) R {
	return i.Run
}

func (i Invocable3[T1, T2, T3, R]) ID() string {
	return i.b.ident()
}

func (i Invocable3[T1, T2, T3, R]) Captures() []Capture {
	return i.b.captures()
}

func (i Invocable3[T1, T2, T3, R]) Len() int {
	return len(i.b.captures())
}

// Invocable4 is a callable with its leading arguments bound, waiting for four
// trailing arguments.
type Invocable4[T1, T2, T3, T4, R any] struct {
	b *bound[R]
}

func (i Invocable4[T1, T2, T3, T4, R]) Run(t1 T1, t2 T2, t3 T3, t4 T4) R {
	return i.b.run(t1, t2, t3, t4)
}

func (i Invocable4[T1, T2, T3, T4, R]) Func() func(T1, T2, T3, T4) R {
	return i.Run
}

func (i Invocable4[T1, T2, T3, T4, R]) ID() string {
	return i.b.ident()
}

func (i Invocable4[T1, T2, T3, T4, R]) Captures() []Capture {
	return i.b.captures()
}

func (i Invocable4[T1, T2, T3, T4, R]) Len() int {
	return len(i.b.captures())
}

// BindI0B0 wraps a callable with no parameters.
func BindI0B0[F Func0[R], R any](
	fn F,
	opts ...Option,
) Invocable0[R] {
	b := newBound[R](adapt0[F, R](fn), opts)
	return Invocable0[R]{b: b}
}

// BindI1B0 wraps a one-parameter callable without binding anything.
func BindI1B0[F Func1[A1, R], A1, R any](
	fn F,
	opts ...Option,
) Invocable1[A1, R] {
	b := newBound[R](adapt1[F, A1, R](fn), opts)
	return Invocable1[A1, R]{b: b}
}

// BindI1B1 binds the only argument of a one-parameter callable.
func BindI1B1[F Func1[A1, R], A1, R any](
	fn F,
	a1 Arg[A1],
	opts ...Option,
) Invocable0[R] {
	b := newBound[R](adapt1[F, A1, R](fn), opts,
		erase(0, a1),
	)
	return Invocable0[R]{b: b}
}

func BindI2B0[F Func2[A1, A2, R], A1, A2, R any](
	fn F,
	opts ...Option,
) Invocable2[A1, A2, R] {
	b := newBound[R](adapt2[F, A1, A2, R](fn), opts)
	return Invocable2[A1, A2, R]{b: b}
}

// BindI2B1 binds the first argument of a two-parameter callable.
func BindI2B1[F Func2[A1, A2, R], A1, A2, R any](
	fn F,
	a1 Arg[A1],
	opts ...Option,
) Invocable1[A2, R] {
	b := newBound[R](adapt2[F, A1, A2, R](fn), opts,
		erase(0, a1),
	)
	return Invocable1[A2, R]{b: b}
}

func BindI2B2[F Func2[A1, A2, R], A1, A2, R any](
	fn F,
	a1 Arg[A1],
	a2 Arg[A2],
	opts ...Option,
) Invocable0[R] {
	b := newBound[R](adapt2[F, A1, A2, R](fn), opts,
		erase(0, a1),
		erase(1, a2),
	)
	return Invocable0[R]{b: b}
}

func BindI3B0[F Func3[A1, A2, A3, R], A1, A2, A3, R any](
	fn F,
	opts ...Option,
) Invocable3[A1, A2, A3, R] {
	b := newBound[R](adapt3[F, A1, A2, A3, R](fn), opts)
	return Invocable3[A1, A2, A3, R]{b: b}
}

func BindI3B1[F Func3[A1, A2, A3, R], A1, A2, A3, R any](
	fn F,
	a1 Arg[A1],
	opts ...Option,
) Invocable2[A2, A3, R] {
	b := newBound[R](adapt3[F, A1, A2, A3, R](fn), opts,
		erase(0, a1),
	)
	return Invocable2[A2, A3, R]{b: b}
}

// BindI3B2 binds the first two arguments of a three-parameter callable.
//
//	task := Task{ID: 123, Name: "123456"}
//	inv := bind.BindI3B2(Foo, bind.OwnedOf(123), bind.RefOf(&task))
//	inv.Run(3) // Foo(<owned *int>, &task, 3)
//	inv.Run(5) // Foo(<same *int>, &task, 5)
func BindI3B2[F Func3[A1, A2, A3, R], A1, A2, A3, R any](
	fn F,
	a1 Arg[A1],
	a2 Arg[A2],
	opts ...Option,
) Invocable1[A3, R] {
	b := newBound[R](adapt3[F, A1, A2, A3, R](fn), opts,
		erase(0, a1),
		erase(1, a2),
	)
	return Invocable1[A3, R]{b: b}
}

func BindI3B3[F Func3[A1, A2, A3, R], A1, A2, A3, R any](
	fn F,
	a1 Arg[A1],
	a2 Arg[A2],
	a3 Arg[A3],
	opts ...Option,
) Invocable0[R] {
	b := newBound[R](adapt3[F, A1, A2, A3, R](fn), opts,
		erase(0, a1),
		erase(1, a2),
		erase(2, a3),
	)
	return Invocable0[R]{b: b}
}

func BindI4B0[F Func4[A1, A2, A3, A4, R], A1, A2, A3, A4, R any](
	fn F,
	opts ...Option,
) Invocable4[A1, A2, A3, A4, R] {
	b := newBound[R](adapt4[F, A1, A2, A3, A4, R](fn), opts)
	return Invocable4[A1, A2, A3, A4, R]{b: b}
}

func BindI4B1[F Func4[A1, A2, A3, A4, R], A1, A2, A3, A4, R any](
	fn F,
	a1 Arg[A1],
	opts ...Option,
) Invocable3[A2, A3, A4, R] {
	b := newBound[R](adapt4[F, A1, A2, A3, A4, R](fn), opts,
		erase(0, a1),
	)
	return Invocable3[A2, A3, A4, R]{b: b}
}

func BindI4B2[F Func4[A1, A2, A3, A4, R], A1, A2, A3, A4, R any](
	fn F,
	a1 Arg[A1],
	a2 Arg[A2],
	opts ...Option,
) Invocable2[A3, A4, R] {
	b := newBound[R](adapt4[F, A1, A2, A3, A4, R](fn), opts,
		erase(0, a1),
		erase(1, a2),
	)
	return Invocable2[A3, A4, R]{b: b}
}

func BindI4B3[F Func4[A1, A2, A3, A4, R], A1, A2, A3, A4, R any](
	fn F,
	a1 Arg[A1],
	a2 Arg[A2],
	a3 Arg[A3],
	opts ...Option,
) Invocable1[A4, R] {
	b := newBound[R](adapt4[F, A1, A2, A3, A4, R](fn), opts,
		erase(0, a1),
		erase(1, a2),
		erase(2, a3),
	)
	return Invocable1[A4, R]{b: b}
}

// BindI4B4 binds every argument of a four-parameter callable.
func BindI4B4[F Func4[A1, A2, A3, A4, R], A1, A2, A3, A4, R any](
	fn F,
	a1 Arg[A1],
	a2 Arg[A2],
	a3 Arg[A3],
	a4 Arg[A4],
	opts ...Option,
) Invocable0[R] {
	b := newBound[R](adapt4[F, A1, A2, A3, A4, R](fn), opts,
		erase(0, a1),
		erase(1, a2),
		erase(2, a3),
		erase(3, a4),
	)
	return Invocable0[R]{b: b}
}
