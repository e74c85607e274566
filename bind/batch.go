package bind

import "go.uber.org/multierr"

// RunEach runs inv once per argument, in order, and combines every error it
// returns. All arguments are run even after a failure.
func RunEach[T any](inv Invocable1[T, error], args ...T) error {
	var err error
	for _, arg := range args {
		err = multierr.Append(err, inv.Run(arg))
	}
	return err
}

// RunEach2 is RunEach for invocables taking two trailing arguments.
func RunEach2[T1, T2 any](inv Invocable2[T1, T2, error], args ...Pair[T1, T2]) error {
	var err error
	for _, arg := range args {
		err = multierr.Append(err, inv.Run(arg.Unpack()))
	}
	return err
}
