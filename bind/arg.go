package bind

import "fmt"

// Capture tells how a bound argument is stored by an invocable.
type Capture int

const (
	// CaptureValue stores a copy; the callable receives that copy on every run.
	CaptureValue Capture = iota

	// CaptureOwned moves the value into storage owned by the invocable;
	// the callable receives a pointer into it.
	CaptureOwned

	// CaptureReference aliases an object owned by the caller.
	// The caller must keep it alive for every run.
	CaptureReference

	// CaptureLazy produces the argument anew on every run.
	CaptureLazy
)

func (c Capture) String() string {
	switch c {
	case CaptureValue:
		return "value"
	case CaptureOwned:
		return "owned"
	case CaptureReference:
		return "reference"
	case CaptureLazy:
		return "lazy"
	default:
		return fmt.Sprintf("Capture(%d)", int(c))
	}
}

// Arg is a bound argument tagged with its capture policy.
// T is the parameter type the callable receives once the argument is unwrapped.
//
// Arg is sealed; build one with ValueOf, OwnedOf, RefOf, DerefOf or LazyOf.
type Arg[T any] interface {
	Capture() Capture
	Unwrap() T

	// capture is called once per invocable at construction.
	capture() Arg[T]
}

// ValueOf binds a copy of v. This is the default convention.
func ValueOf[T any](v T) Arg[T] {
	return value[T]{v: v}
}

// OwnedOf moves v into the invocable. Each invocable built from the returned
// Arg owns a separate copy, which persists across its runs.
func OwnedOf[T any](v T) Arg[*T] {
	return owned[T]{v: v}
}

// RefOf binds a reference to the caller's object. Mutations made by the
// callable are visible through p after Run returns.
func RefOf[T any](p *T) Arg[*T] {
	if p == nil {
		panic(fmt.Errorf("%w: RefOf(nil)", ErrNilArg))
	}
	return ref[T]{p: p}
}

// DerefOf binds a reference to the caller's object and hands the callable a
// copy of its current value on each run.
func DerefOf[T any](p *T) Arg[T] {
	if p == nil {
		panic(fmt.Errorf("%w: DerefOf(nil)", ErrNilArg))
	}
	return deref[T]{p: p}
}

// LazyOf binds a producer that is called on each run, right before the callable.
func LazyOf[T any](fn func() T) Arg[T] {
	if fn == nil {
		panic(fmt.Errorf("%w: LazyOf(nil)", ErrNilArg))
	}
	return lazy[T]{fn: fn}
}

type value[T any] struct{ v T }

func (value[T]) Capture() Capture { return CaptureValue }
func (a value[T]) Unwrap() T { return a.v }
func (a value[T]) capture() Arg[T] { return a }

// owned keeps the moved-in value until capture allocates per-invocable storage.
type owned[T any] struct {
	v T
	p *T
}

func (owned[T]) Capture() Capture { return CaptureOwned }

func (a owned[T]) Unwrap() *T {
	if a.p == nil {
		v := a.v
		return &v
	}
	return a.p
}

func (a owned[T]) capture() Arg[*T] {
	p := new(T)
	*p = a.v
	return owned[T]{p: p}
}

type ref[T any] struct{ p *T }

func (ref[T]) Capture() Capture { return CaptureReference }
func (a ref[T]) Unwrap() *T { return a.p }
func (a ref[T]) capture() Arg[*T] { return a }

type deref[T any] struct{ p *T }

func (deref[T]) Capture() Capture { return CaptureReference }
func (a deref[T]) Unwrap() T { return *a.p }
func (a deref[T]) capture() Arg[T] { return a }

type lazy[T any] struct{ fn func() T }

func (lazy[T]) Capture() Capture { return CaptureLazy }
func (a lazy[T]) Unwrap() T { return a.fn() }
func (a lazy[T]) capture() Arg[T] { return a }

// unwrapper erases an Arg into the positional form the invoker consumes.
type unwrapper struct {
	capture Capture
	unwrap  func() any
}

func erase[T any](i int, a Arg[T]) unwrapper {
	if a == nil {
		panic(fmt.Errorf("%w: position %d", ErrNilArg, i))
	}
	c := a.capture()
	return unwrapper{
		capture: c.Capture(),
		unwrap:  func() any { return c.Unwrap() },
	}
}
