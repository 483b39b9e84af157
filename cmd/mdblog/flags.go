package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// ErrUsage marks invalid command lines.
var ErrUsage = errors.New("invalid usage")

// commonFlags holds flags shared across commands.
type commonFlags struct {
	quiet   bool
	verbose bool
}

// buildFlags holds all flags for the build command.
type buildFlags struct {
	common   commonFlags
	dir      string
	workers  int
	theme    string
	buildDir string

	// set records flags given on the command line, so env values only
	// fill what the user left out.
	set map[string]bool
}

// initFlags holds all flags for the init command.
type initFlags struct {
	common commonFlags
	theme  string
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show every file written")
}

// newFlagSet returns a FlagSet that reports errors instead of exiting and
// prints usage to w.
func newFlagSet(name string, w io.Writer, usage func(io.Writer)) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(w)
	fs.Usage = func() { usage(w) }
	return fs
}

// parseBuildFlags parses build command flags and returns positional args.
func parseBuildFlags(args []string, stderr io.Writer) (*buildFlags, []string, error) {
	f := &buildFlags{set: make(map[string]bool)}
	fs := newFlagSet(cmdBuild, stderr, printBuildUsage)

	fs.StringVarP(&f.dir, "dir", "C", ".", "blog root directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel post parsers (0 = auto)")
	fs.StringVar(&f.theme, "theme", "", "theme name, overrides mdblog.yaml")
	fs.StringVar(&f.buildDir, "build-dir", "", "output directory, overrides mdblog.yaml")
	addCommonFlags(fs, &f.common)

	if err := fs.Parse(args); err != nil {
		return nil, nil, usageError(err)
	}
	fs.Visit(func(fl *flag.Flag) { f.set[fl.Name] = true })
	return f, fs.Args(), nil
}

// parseInitFlags parses init command flags and returns positional args.
func parseInitFlags(args []string, stderr io.Writer) (*initFlags, []string, error) {
	f := &initFlags{}
	fs := newFlagSet(cmdInit, stderr, printInitUsage)

	fs.StringVar(&f.theme, "theme", "", "theme to materialize (default simple)")
	addCommonFlags(fs, &f.common)

	if err := fs.Parse(args); err != nil {
		return nil, nil, usageError(err)
	}
	return f, fs.Args(), nil
}

func usageError(err error) error {
	if errors.Is(err, flag.ErrHelp) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrUsage, err)
}
