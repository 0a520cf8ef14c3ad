package search

import (
	"log/slog"

	"github.com/mobius-tri/lextet/classify"
)

// Options configures one Run. Built with functional options in the style of
// builder.BuilderOption (builder/options.go): each With* panics on an
// out-of-range argument, since these are construction-time mistakes rather
// than runtime conditions a caller should recover from.
type Options struct {
	res, mod        int
	irreducibleOnly bool
	logger          *slog.Logger
	sink            *classify.Sink
}

// Option mutates an in-progress Options during Run's setup.
type Option func(*Options)

func defaultOptions() Options {
	return Options{res: 0, mod: 1}
}

// WithSplit restricts this Run to residue res modulo mod siblings at the
// split level (§4.4's "res/mod splitting"). Requires 0 <= res < mod.
func WithSplit(res, mod int) Option {
	if mod < 1 || res < 0 || res >= mod {
		panic("search: invalid res/mod split")
	}
	return func(o *Options) { o.res, o.mod = res, mod }
}

// WithIrreducibleOnly restricts the root-edge-degree loop to d ∈ [3, n-3]
// (§4.6) and is expected to yield strictly fewer leaves than the default
// [3, n-2] range (§8 scenario S4).
func WithIrreducibleOnly() Option {
	return func(o *Options) { o.irreducibleOnly = true }
}

// WithVerbose attaches a logger that receives one summary record per
// completed root-edge degree.
func WithVerbose(logger *slog.Logger) Option {
	if logger == nil {
		panic("search: nil logger")
	}
	return func(o *Options) { o.logger = logger }
}

// WithSink directs completed triangulations to sink instead of the default
// Sink opened against the current working directory.
func WithSink(sink *classify.Sink) Option {
	if sink == nil {
		panic("search: nil sink")
	}
	return func(o *Options) { o.sink = sink }
}
