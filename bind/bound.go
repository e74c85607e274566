package bind

import (
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// bound is the erased core shared by every InvocableN.
// The callable and the bound prefix are fixed at construction; Run only
// appends trailing arguments.
//
// bound does not lock its arguments: concurrent runs are safe only when the
// callable and every reference-captured argument are synchronized by the caller.
type bound[R any] struct {
	id     string
	fn     invoker[R]
	prefix []unwrapper
	config Config
	seq    atomic.Uint64
}

func newBound[R any](fn invoker[R], opts []Option, prefix ...unwrapper) *bound[R] {
	b := &bound[R]{
		id:     uuid.New().String(),
		fn:     fn,
		prefix: prefix,
		config: NewConfig(opts...),
	}
	b.config.Logger.Debug("created bound invocable",
		zap.String("id", b.id),
		zap.String("name", b.config.Name),
		zap.Stringers("captures", b.captures()),
	)
	return b
}

func (b *bound[R]) run(trailing ...any) R {
	if b == nil {
		panic(ErrUnbound)
	}

	args := make([]any, 0, len(b.prefix)+len(trailing))
	for _, u := range b.prefix {
		args = append(args, u.unwrap())
	}
	args = append(args, trailing...)

	seq := b.seq.Add(1)
	if !b.config.traced() {
		return b.fn(args)
	}

	start := time.Now()
	res := b.fn(args)
	b.emit(Invocation{
		ID:       b.id,
		Name:     b.config.Name,
		Seq:      seq,
		Bound:    len(b.prefix),
		Trailing: len(trailing),
		Span:     NewTimeSpan(start, time.Now()),
	})
	return res
}

func (b *bound[R]) emit(inv Invocation) {
	b.config.Logger.Debug("ran bound invocable", inv.fields()...)
	if b.config.Observer != nil {
		b.config.Observer(inv)
	}
}

func (b *bound[R]) captures() []Capture {
	if b == nil {
		return nil
	}
	cs := make([]Capture, len(b.prefix))
	for i, u := range b.prefix {
		cs[i] = u.capture
	}
	return cs
}

func (b *bound[R]) ident() string {
	if b == nil {
		return ""
	}
	return b.id
}
