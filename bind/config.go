package bind

import "go.uber.org/zap"

const defaultName = "anonymous"

// Config holds the ambient settings of an invocable.
type Config struct {
	Name     string           // default: "anonymous"
	Logger   *zap.Logger      // default: zap.NewNop()
	Observer func(Invocation) // default: nil, nothing observed
}

// Option mutates a Config under construction.
type Option func(*Config)

// WithName labels the invocable in logs and Invocation records.
func WithName(name string) Option {
	return func(c *Config) { c.Name = name }
}

// WithLogger sets the logger used for Debug traces of construction and runs.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Config) { c.Logger = logger }
}

// WithObserver registers fn to receive an Invocation after every successful run.
// fn is called synchronously, on the goroutine that called Run.
func WithObserver(fn func(Invocation)) Option {
	return func(c *Config) { c.Observer = fn }
}

func NewConfig(opts ...Option) Config {
	var c Config
	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}
	if c.Name == "" {
		c.Name = defaultName
	}
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}
	return c
}

// traced reports whether a run needs to be timed at all.
func (c Config) traced() bool {
	return c.Observer != nil || c.Logger.Core().Enabled(zap.DebugLevel)
}
