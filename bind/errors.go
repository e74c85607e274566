package bind

import "errors"

var (
	ErrNilCallable = errors.New("nil callable")
	ErrNilArg      = errors.New("nil bound argument")
	ErrArity       = errors.New("argument count does not match callable arity")
	ErrUnbound     = errors.New("run on unbound invocable")
)
