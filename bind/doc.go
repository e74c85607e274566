// Package bind provides typed partial application for fixed-arity Go functions.
//
// A binding fixes the leading arguments of a function ahead of time and yields
// an invocable that completes the call later:
//
//	add3 := func(a, b, c int) int { return a + b + c }
//	inv := bind.BindI3B2(add3, bind.ValueOf(1), bind.ValueOf(2))
//	inv.Run(3) // add3(1, 2, 3)
//	inv.Run(4) // add3(1, 2, 4)
//
// # Naming
//
// BindI{n}B{k} binds the first k arguments of a function with n parameters and
// returns an Invocable{n-k}. Go has no variadic type parameters, so every
// supported (n, k) pair up to four parameters has its own constructor.
//
// # Bound arguments
//
// Every bound argument is an explicit Arg tagged with how it is captured:
//   - ValueOf: a copy, handed to the callable as is (the default convention)
//   - OwnedOf: moved into storage owned by the invocable, handed over as a pointer
//   - RefOf: a pointer to the caller's object; mutations are visible to the caller
//   - DerefOf: a pointer to the caller's object, read at each run
//   - LazyOf: produced at each run
//
// Bound arguments always precede trailing ones. The callable itself is held by
// value, so an invocable never outlives what it calls.
//
// # Results
//
// The result type is inferred from the callable. Functions without a result
// are lifted with Do0..Do4 (result Unit), and dual-output functions such as
// (T, error) with Both0..Both4 (result Pair).
//
// # Concurrency
//
// Run is synchronous and does no locking. Running one invocable from several
// goroutines is safe only if the callable and every RefOf/DerefOf target are.
//
// WARNING: RefOf and DerefOf targets must stay valid for every Run.
package bind
