package memo

import "github.com/on-the-ground/bind_ive_go/bind"

// unitKey is the key path of an invocable without trailing arguments.
var unitKey = []Key{bind.Unit{}}

// Tableize0 runs inv once and then serves its result from table.
func Tableize0[R any](inv bind.Invocable0[R], table Table[R]) func() R {
	return func() R {
		v, ok := table.Load(unitKey)
		if !ok {
			v = inv.Run()
			table.Store(unitKey, v)
		}
		return v
	}
}

// Tableize1 memoizes inv by its trailing argument.
//
//	fib := memo.Tableize1(bind.BindI1B0(slowFib), memo.NewTrie[int](64))
func Tableize1[T1, R any](inv bind.Invocable1[T1, R], table Table[R]) func(T1) R {
	return func(t1 T1) R {
		keys := keysOf(t1)
		v, ok := table.Load(keys)
		if !ok {
			v = inv.Run(t1)
			table.Store(keys, v)
		}
		return v
	}
}

func Tableize2[T1, T2, R any](inv bind.Invocable2[T1, T2, R], table Table[R]) func(T1, T2) R {
	return func(t1 T1, t2 T2) R {
		keys := keysOf(t1, t2)
		v, ok := table.Load(keys)
		if !ok {
			v = inv.Run(t1, t2)
			table.Store(keys, v)
		}
		return v
	}
}

func Tableize3[T1, T2, T3, R any](inv bind.Invocable3[T1, T2, T3, R], table Table[R]) func(T1, T2, T3) R {
	return func(t1 T1, t2 T2, t3 T3) R {
		keys := keysOf(t1, t2, t3)
		v, ok := table.Load(keys)
		if !ok {
			v = inv.Run(t1, t2, t3)
			table.Store(keys, v)
		}
		return v
	}
}

func Tableize4[T1, T2, T3, T4, R any](inv bind.Invocable4[T1, T2, T3, T4, R], table Table[R]) func(T1, T2, T3, T4) R {
	return func(t1 T1, t2 T2, t3 T3, t4 T4) R {
		keys := keysOf(t1, t2, t3, t4)
		v, ok := table.Load(keys)
		if !ok {
			v = inv.Run(t1, t2, t3, t4)
			table.Store(keys, v)
		}
		return v
	}
}
