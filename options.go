package mdblog

import (
	"io"
	"time"
)

// Option configures a Blog.
type Option func(*options)

type options struct {
	out      io.Writer
	verbose  bool
	workers  int
	theme    string
	buildDir string
	now      func() time.Time
}

func defaultOptions() options {
	return options{
		out: io.Discard,
		now: time.Now,
	}
}

// WithLogOutput sets where progress lines are written. Default: discarded.
func WithLogOutput(w io.Writer) Option {
	return func(o *options) {
		if w != nil {
			o.out = w
		}
	}
}

// WithVerbose enables per-file progress lines.
func WithVerbose(verbose bool) Option {
	return func(o *options) { o.verbose = verbose }
}

// WithWorkers sets the number of concurrent post parsers.
// Zero selects a size from GOMAXPROCS, see ResolvePoolSize.
// Panics if n is negative.
func WithWorkers(n int) Option {
	if n < 0 {
		panic("mdblog: WithWorkers count must not be negative")
	}
	return func(o *options) { o.workers = n }
}

// WithTheme overrides the theme named in the settings file.
func WithTheme(name string) Option {
	return func(o *options) { o.theme = name }
}

// WithBuildDir overrides the build directory named in the settings file.
// The path is relative to the blog root.
func WithBuildDir(dir string) Option {
	return func(o *options) { o.buildDir = dir }
}

// WithNow sets the clock used for the scaffolded first post.
func WithNow(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}
