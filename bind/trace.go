package bind

import (
	"time"

	"github.com/rickb777/date/v2/timespan"
	"go.uber.org/zap"
)

type TimeSpan = timespan.TimeSpan

func NewTimeSpan(from, to time.Time) TimeSpan {
	return timespan.BetweenTimes(from, to)
}

// Invocation describes one completed run of an invocable.
type Invocation struct {
	ID       string   // id of the invocable
	Name     string   // Config.Name of the invocable
	Seq      uint64   // 1 for the first run, incremented on each run
	Bound    int      // number of bound arguments
	Trailing int      // number of trailing arguments supplied to Run
	Span     TimeSpan // wall-clock span of the call
}

func (inv Invocation) Elapsed() time.Duration {
	return inv.Span.Duration()
}

func (inv Invocation) fields() []zap.Field {
	return []zap.Field{
		zap.String("id", inv.ID),
		zap.String("name", inv.Name),
		zap.Uint64("seq", inv.Seq),
		zap.Int("bound", inv.Bound),
		zap.Int("trailing", inv.Trailing),
		zap.Time("start", inv.Span.Start()),
		zap.Duration("elapsed", inv.Elapsed()),
	}
}
