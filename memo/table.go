package memo

import "fmt"

// Key is one level of a table key path: a comparable value or a string.
type Key any

// Table stores results by the key path of the arguments that produced them.
type Table[O any] interface {
	Load(keys []Key) (O, bool)
	Store(keys []Key, value O)
}

func tableKey(arg any) Key {
	if stringer, ok := arg.(fmt.Stringer); ok {
		return stringer.String()
	}
	return arg
}

// keysOf normalizes positional arguments into a key path.
func keysOf(args ...any) []Key {
	keys := make([]Key, len(args))
	for i, arg := range args {
		keys[i] = tableKey(arg)
	}
	return keys
}
