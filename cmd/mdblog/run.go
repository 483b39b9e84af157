package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	flag "github.com/spf13/pflag"

	mdblog "github.com/alnah/go-mdblog"
	"github.com/alnah/go-mdblog/internal/config"
	"github.com/alnah/go-mdblog/internal/hints"
	"github.com/alnah/go-mdblog/internal/theme"
)

// Command names.
const (
	cmdInit    = "init"
	cmdBuild   = "build"
	cmdVersion = "version"
	cmdHelp    = "help"
	cmdServer  = "server"
)

// runMain dispatches a command line (without the program name) and
// returns the process exit code.
func runMain(ctx context.Context, args []string, deps *Dependencies) int {
	if len(args) == 0 {
		printUsage(deps.Stderr)
		return ExitUsage
	}

	switch cmd, rest := args[0], args[1:]; cmd {
	case cmdHelp, "-h", "--help":
		return runHelp(rest, deps)
	case cmdVersion, "-v", "--version":
		fmt.Fprintf(deps.Stdout, "mdblog %s\n", Version)
		return ExitSuccess
	case cmdInit:
		return finish(deps, runInit(ctx, rest, deps))
	case cmdBuild:
		return finish(deps, runBuild(ctx, rest, deps))
	case cmdServer:
		fmt.Fprintln(deps.Stderr, "error: the server command is not supported; serve the build directory with any static file server")
		return ExitUsage
	default:
		fmt.Fprintf(deps.Stderr, "Unknown command: %s\n", cmd)
		printUsage(deps.Stderr)
		return ExitUsage
	}
}

// finish reports err, if any, and maps it to an exit code.
func finish(deps *Dependencies, err error) int {
	if err == nil || errors.Is(err, flag.ErrHelp) {
		return ExitSuccess
	}
	var failure *commandError
	if errors.As(err, &failure) {
		reportError(deps.Stderr, failure.err, failure.root)
		return exitCodeFor(failure.err)
	}
	reportError(deps.Stderr, err, "")
	return exitCodeFor(err)
}

// commandError carries the blog root alongside a failure, for hints.
type commandError struct {
	root string
	err  error
}

func (e *commandError) Error() string { return e.err.Error() }
func (e *commandError) Unwrap() error { return e.err }

// runInit creates a new blog.
func runInit(ctx context.Context, args []string, deps *Dependencies) error {
	flags, positional, err := parseInitFlags(args, deps.Stderr)
	if err != nil {
		return err
	}
	if len(positional) != 1 {
		printInitUsage(deps.Stderr)
		return fmt.Errorf("%w: init takes exactly one directory", ErrUsage)
	}

	env := loadEnvConfig(deps.Getenv)
	themeName := flags.theme
	if themeName == "" {
		themeName = env.Theme
	}

	blog, err := mdblog.New(positional[0],
		mdblog.WithLogOutput(progressWriter(deps, flags.common)),
		mdblog.WithVerbose(flags.common.verbose),
		mdblog.WithTheme(themeName),
		mdblog.WithNow(deps.Now),
	)
	if err != nil {
		return err
	}
	if err := blog.Init(ctx); err != nil {
		return &commandError{root: blog.Root(), err: err}
	}
	return nil
}

// runBuild loads and renders the blog.
func runBuild(ctx context.Context, args []string, deps *Dependencies) error {
	flags, positional, err := parseBuildFlags(args, deps.Stderr)
	if err != nil {
		return err
	}
	if len(positional) > 0 {
		printBuildUsage(deps.Stderr)
		return fmt.Errorf("%w: unexpected argument %q (use -C to pick the blog root)", ErrUsage, positional[0])
	}
	if flags.workers < 0 {
		return fmt.Errorf("%w: %d", mdblog.ErrInvalidWorkers, flags.workers)
	}

	warnUnknownEnvVars(deps.Stderr, deps.Environ())
	applyEnvConfig(loadEnvConfig(deps.Getenv), flags)

	poolSize := mdblog.ResolvePoolSize(flags.workers)
	out := progressWriter(deps, flags.common)
	if flags.common.verbose {
		fmt.Fprintf(out, "workers: %d\n", poolSize)
	}

	blog, err := mdblog.New(flags.dir,
		mdblog.WithLogOutput(out),
		mdblog.WithVerbose(flags.common.verbose),
		mdblog.WithWorkers(poolSize),
		mdblog.WithTheme(flags.theme),
		mdblog.WithBuildDir(flags.buildDir),
		mdblog.WithNow(deps.Now),
	)
	if err != nil {
		return err
	}
	if err := blog.Load(ctx); err != nil {
		return &commandError{root: blog.Root(), err: err}
	}
	if _, err := blog.Build(ctx); err != nil {
		return &commandError{root: blog.Root(), err: err}
	}
	return nil
}

func progressWriter(deps *Dependencies, f commonFlags) io.Writer {
	if f.quiet {
		return io.Discard
	}
	return deps.Stdout
}

// reportError prints err, any header diagnostics and a hint.
func reportError(w io.Writer, err error, root string) {
	fmt.Fprintf(w, "error: %v", err)

	var headerErr *mdblog.HeaderParseError
	if errors.As(err, &headerErr) {
		if detail := headerErr.Detail(); detail != "" && !strings.Contains(err.Error(), detail) {
			fmt.Fprintf(w, "\n%s", detail)
		}
	}

	fmt.Fprintln(w, hintFor(err, root))
}

// hintFor returns the hint matching err, or "".
func hintFor(err error, root string) string {
	switch {
	case errors.Is(err, mdblog.ErrThemeNotFound):
		return hints.ForThemeNotFound(availableThemes(root))
	case errors.Is(err, mdblog.ErrMissingHeadBody),
		errors.Is(err, mdblog.ErrEmptyHead),
		errors.Is(err, mdblog.ErrEmptyBody),
		errors.Is(err, mdblog.ErrHeaderParse):
		return hints.ForPostFormat()
	case errors.Is(err, mdblog.ErrConfigParse):
		return hints.ForConfigParse(config.Keys())
	case errors.Is(err, mdblog.ErrBlogExists):
		return hints.ForBlogExists(root)
	case errors.Is(err, mdblog.ErrPostsDirMissing):
		return hints.ForMissingPosts(postsDir(root))
	case errors.Is(err, mdblog.ErrBuildWrite):
		return hints.ForOutputDirectory()
	}
	return ""
}

// availableThemes lists the themes under the blog's theme root, reading
// the settings file again since a failed Load leaves no config behind.
func availableThemes(root string) []string {
	if root == "" {
		return []string{theme.DefaultName}
	}
	cfg, err := config.LoadConfig(filepath.Join(root, config.FileName))
	if err != nil {
		cfg = config.DefaultConfig()
	}
	return theme.Available(filepath.Join(root, cfg.ThemeRootDir))
}

func postsDir(root string) string {
	cfg, err := config.LoadConfig(filepath.Join(root, config.FileName))
	if err != nil {
		cfg = config.DefaultConfig()
	}
	return cfg.PostsDir
}
