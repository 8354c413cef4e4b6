package bsp

import (
	"github.com/sirupsen/logrus"

	"github.com/makeclean/csgtool/bspconfig"
)

// Option configures optional behavior of the core's entry points
// (Build, Emit, ClipPolygons, Clip), following the functional-options
// convention used throughout this module.
type Option func(*Options)

// Options holds resolved optional behavior. Exported so embedding
// packages (csg) can build one once and reuse it across calls.
type Options struct {
	// Config supplies the shared bspconfig policy. Defaults to
	// bspconfig.Default() when nil. bsp itself reads only its LogLevel;
	// classification epsilon is applied by the Splitter.
	Config *bspconfig.Config

	// Log receives structured debug events when Build picks a divider and
	// after each node is built, emitted, or clipped. Defaults to
	// a logger with output discarded, so logging has no observable cost
	// unless a caller opts in.
	Log *logrus.Logger
}

// resolveOptions applies opts over sane defaults.
func resolveOptions(opts []Option) *Options {
	o := &Options{
		Config: bspconfig.Default(),
		Log:    discardingLogger(),
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.Config == nil {
		o.Config = bspconfig.Default()
	}
	if o.Log == nil {
		o.Log = discardingLogger()
	}
	if o.Config.LogLevel != "" {
		if lvl, err := logrus.ParseLevel(o.Config.LogLevel); err == nil {
			o.Log.SetLevel(lvl)
		}
	}
	return o
}

func discardingLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(discardWriter{})
	return l
}

type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) { return len(p), nil }

// WithConfig injects the shared bspconfig policy (bsp reads its LogLevel).
func WithConfig(cfg *bspconfig.Config) Option {
	return func(o *Options) { o.Config = cfg }
}

// WithLogger installs a logrus.Logger for structured debug events.
// Passing nil restores the discarding default.
func WithLogger(l *logrus.Logger) Option {
	return func(o *Options) { o.Log = l }
}
