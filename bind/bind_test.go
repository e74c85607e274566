package bind_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/on-the-ground/bind_ive_go/bind"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type Task struct {
	ID   int
	Name string
}

func (t Task) String() string {
	return fmt.Sprintf("Task: %d name: %s", t.ID, t.Name)
}

func requirePanicsWith(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected panic wrapping %v", target)
		err, ok := r.(error)
		require.True(t, ok, "panic value is not an error: %v", r)
		assert.ErrorIs(t, err, target)
	}()
	fn()
}

func TestBindI3B2_TaskScenario(t *testing.T) {
	type seen struct {
		a *int
		b *Task
	}
	var calls []seen
	foo := func(a *int, b *Task, c int) int {
		calls = append(calls, seen{a: a, b: b})
		return c
	}

	task := Task{ID: 123, Name: "123456"}
	inv := bind.BindI3B2(foo, bind.OwnedOf(123), bind.RefOf(&task))

	assert.Equal(t, 3, inv.Run(3))
	assert.Equal(t, 5, inv.Run(5))

	require.Len(t, calls, 2)
	assert.Same(t, calls[0].a, calls[1].a)
	assert.Equal(t, 123, *calls[0].a)
	assert.Same(t, &task, calls[0].b)
	assert.Same(t, &task, calls[1].b)
	assert.Equal(t, "Task: 123 name: 123456", calls[1].b.String())
}

func TestBind_EqualsDirectCall(t *testing.T) {
	concat := func(a, b, c, d string) string { return a + b + c + d }

	assert.Equal(t, concat("w", "x", "y", "z"), bind.BindI4B0(concat).Run("w", "x", "y", "z"))
	assert.Equal(t, concat("w", "x", "y", "z"), bind.BindI4B1(concat, bind.ValueOf("w")).Run("x", "y", "z"))
	assert.Equal(t, concat("w", "x", "y", "z"), bind.BindI4B2(concat, bind.ValueOf("w"), bind.ValueOf("x")).Run("y", "z"))
	assert.Equal(t, concat("w", "x", "y", "z"),
		bind.BindI4B3(concat, bind.ValueOf("w"), bind.ValueOf("x"), bind.ValueOf("y")).Run("z"))
	assert.Equal(t, concat("w", "x", "y", "z"),
		bind.BindI4B4(concat, bind.ValueOf("w"), bind.ValueOf("x"), bind.ValueOf("y"), bind.ValueOf("z")).Run())

	sub := func(a, b int) int { return a - b }
	assert.Equal(t, sub(10, 3), bind.BindI2B0(sub).Run(10, 3))
	assert.Equal(t, sub(10, 3), bind.BindI2B1(sub, bind.ValueOf(10)).Run(3))
	assert.Equal(t, sub(10, 3), bind.BindI2B2(sub, bind.ValueOf(10), bind.ValueOf(3)).Run())

	neg := func(a int) int { return -a }
	assert.Equal(t, -7, bind.BindI1B0(neg).Run(7))
	assert.Equal(t, -7, bind.BindI1B1(neg, bind.ValueOf(7)).Run())

	answer := func() int { return 42 }
	assert.Equal(t, 42, bind.BindI0B0(answer).Run())

	mul3 := func(a, b, c int) int { return a * b * c }
	assert.Equal(t, 24, bind.BindI3B0(mul3).Run(2, 3, 4))
	assert.Equal(t, 24, bind.BindI3B1(mul3, bind.ValueOf(2)).Run(3, 4))
	assert.Equal(t, 24, bind.BindI3B3(mul3, bind.ValueOf(2), bind.ValueOf(3), bind.ValueOf(4)).Run())
}

func TestBind_Repeatable(t *testing.T) {
	count := 0
	scale := func(factor, v int) int {
		count++
		return factor * v
	}
	inv := bind.BindI2B1(scale, bind.ValueOf(10))

	assert.Equal(t, 10, inv.Run(1))
	assert.Equal(t, 20, inv.Run(2))
	assert.Equal(t, 10, inv.Run(1))
	assert.Equal(t, 3, count)
}

func TestBind_BoundArgumentsPrecedeTrailing(t *testing.T) {
	collect := func(a, b, c, d int) []int { return []int{a, b, c, d} }

	assert.Equal(t, []int{1, 2, 3, 4}, bind.BindI4B1(collect, bind.ValueOf(1)).Run(2, 3, 4))
	assert.Equal(t, []int{1, 2, 3, 4}, bind.BindI4B2(collect, bind.ValueOf(1), bind.ValueOf(2)).Run(3, 4))
	assert.Equal(t, []int{1, 2, 3, 4}, bind.BindI4B3(collect, bind.ValueOf(1), bind.ValueOf(2), bind.ValueOf(3)).Run(4))
}

func TestRefOf_MutationVisibleAtBindingSite(t *testing.T) {
	rename := bind.Do2(func(task *Task, name string) {
		task.Name = name
	})
	task := Task{ID: 1, Name: "before"}
	inv := bind.BindI2B1(rename, bind.RefOf(&task))

	inv.Run("after")
	assert.Equal(t, "after", task.Name)
}

func TestValueOf_CopiesAtBindTime(t *testing.T) {
	name := func(task Task) string { return task.Name }
	task := Task{ID: 1, Name: "before"}
	inv := bind.BindI1B1(name, bind.ValueOf(task))

	task.Name = "after"
	assert.Equal(t, "before", inv.Run())
}

func TestDerefOf_ReadsAtEachRun(t *testing.T) {
	name := func(task Task) string { return task.Name }
	task := Task{ID: 1, Name: "before"}
	inv := bind.BindI1B1(name, bind.DerefOf(&task))

	assert.Equal(t, "before", inv.Run())
	task.Name = "after"
	assert.Equal(t, "after", inv.Run())
}

func TestOwnedOf_PersistsPerInvocable(t *testing.T) {
	incr := func(counter *int) int {
		*counter++
		return *counter
	}
	start := 0
	arg := bind.OwnedOf(start)

	first := bind.BindI1B1(incr, arg)
	second := bind.BindI1B1(incr, arg)

	assert.Equal(t, 1, first.Run())
	assert.Equal(t, 2, first.Run())
	assert.Equal(t, 1, second.Run())
	assert.Equal(t, 0, start)
}

func TestLazyOf_ProducedAtEachRun(t *testing.T) {
	next := 0
	gen := func() int {
		next++
		return next
	}
	add := func(a, b int) int { return a + b }
	inv := bind.BindI2B1(add, bind.LazyOf(gen))

	assert.Equal(t, 0, next)
	assert.Equal(t, 11, inv.Run(10))
	assert.Equal(t, 12, inv.Run(10))
}

type greeter func(greeting, name string) string

func TestBind_NamedFuncType(t *testing.T) {
	var g greeter = func(greeting, name string) string { return greeting + ", " + name }
	inv := bind.BindI2B1(g, bind.ValueOf("hello"))

	assert.Equal(t, "hello, gopher", inv.Run("gopher"))
}

func TestBind_NilInterfaceAndPointerArguments(t *testing.T) {
	describe := func(err error, task *Task) string {
		return fmt.Sprintf("%v %v", err == nil, task == nil)
	}

	assert.Equal(t, "true true", bind.BindI2B1(describe, bind.ValueOf[error](nil)).Run(nil))
	assert.Equal(t, "true true", bind.BindI2B0(describe).Run(nil, nil))
	assert.Equal(t, "false true", bind.BindI2B0(describe).Run(errors.New("boom"), nil))
}

func TestBind_MethodValue(t *testing.T) {
	task := Task{ID: 7, Name: "seven"}
	inv := bind.BindI0B0(task.String)

	assert.Equal(t, "Task: 7 name: seven", inv.Run())
}

func TestBind_FuncAndIntrospection(t *testing.T) {
	task := Task{ID: 1, Name: "x"}
	join := func(a string, b *int, c *Task, d int) string {
		return fmt.Sprintf("%s-%d-%d-%d", a, *b, c.ID, d)
	}
	inv := bind.BindI4B3(join, bind.ValueOf("v"), bind.OwnedOf(2), bind.RefOf(&task))

	assert.Equal(t, []bind.Capture{bind.CaptureValue, bind.CaptureOwned, bind.CaptureReference}, inv.Captures())
	assert.Equal(t, 3, inv.Len())
	assert.NotEmpty(t, inv.ID())

	fn := inv.Func()
	assert.Equal(t, "v-2-1-9", fn(9))

	other := bind.BindI4B3(join, bind.ValueOf("v"), bind.OwnedOf(2), bind.RefOf(&task))
	assert.NotEqual(t, inv.ID(), other.ID())
}

func TestBind_NilCallablePanics(t *testing.T) {
	var fn func(int, int) int
	requirePanicsWith(t, bind.ErrNilCallable, func() {
		bind.BindI2B1(fn, bind.ValueOf(1))
	})

	var g greeter
	requirePanicsWith(t, bind.ErrNilCallable, func() {
		bind.BindI2B0(g)
	})

	var rename func(*Task, string)
	requirePanicsWith(t, bind.ErrNilCallable, func() {
		bind.BindI2B1(bind.Do2(rename), bind.RefOf(&Task{}))
	})

	var parse func(string) (int, error)
	requirePanicsWith(t, bind.ErrNilCallable, func() {
		bind.BindI1B0(bind.Both1(parse))
	})

	var tick func()
	requirePanicsWith(t, bind.ErrNilCallable, func() {
		bind.BindI0B0(bind.Do0(tick))
	})
}

func TestBind_NilArgPanics(t *testing.T) {
	add := func(a, b int) int { return a + b }
	requirePanicsWith(t, bind.ErrNilArg, func() {
		bind.BindI2B2(add, bind.ValueOf(1), nil)
	})
	requirePanicsWith(t, bind.ErrNilArg, func() {
		bind.RefOf[int](nil)
	})
	requirePanicsWith(t, bind.ErrNilArg, func() {
		bind.DerefOf[int](nil)
	})
	requirePanicsWith(t, bind.ErrNilArg, func() {
		bind.LazyOf[int](nil)
	})
}

func TestInvocable_ZeroValuePanics(t *testing.T) {
	var inv bind.Invocable1[int, int]

	requirePanicsWith(t, bind.ErrUnbound, func() {
		inv.Run(1)
	})
	assert.Empty(t, inv.ID())
	assert.Equal(t, 0, inv.Len())
}

func TestBind_CallablePanicPropagates(t *testing.T) {
	boom := errors.New("boom")
	explode := func(a, b int) int { panic(boom) }
	inv := bind.BindI2B1(explode, bind.ValueOf(1))

	requirePanicsWith(t, boom, func() {
		inv.Run(2)
	})
}
