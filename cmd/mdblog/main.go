package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	deps := DefaultDeps()

	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply.
	if hasVerboseFlag(os.Args[1:]) {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(deps.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	ctx, stop := notifyContext(context.Background())
	code := runMain(ctx, os.Args[1:], deps)
	stop()
	os.Exit(code)
}

// hasVerboseFlag reports whether a build runs with -v, before flags are
// parsed, so GOMAXPROCS logging can follow it.
func hasVerboseFlag(args []string) bool {
	if len(args) == 0 || args[0] != cmdBuild {
		return false
	}
	for _, a := range args[1:] {
		if a == "-v" || a == "--verbose" {
			return true
		}
	}
	return false
}
