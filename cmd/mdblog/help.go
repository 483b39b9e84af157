package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdblog <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  init       Create a new blog")
	fmt.Fprintln(w, "  build      Render the blog to static HTML")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'mdblog help <command>' for details on a specific command.")
}

// printInitUsage prints usage for the init command.
func printInitUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdblog init <blog> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Create a new blog directory with mdblog.yaml, a sample post,")
	fmt.Fprintln(w, "a media directory and an editable copy of the theme.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  blog    Directory to create; must not exist")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --theme <name>        Theme to write (default: simple)")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show details")
}

// printBuildUsage prints usage for the build command.
func printBuildUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdblog build [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render every post, the index and tag pages into the build directory.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -C, --dir <path>          Blog root (default: current directory)")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel post parsers (0 = auto)")
	fmt.Fprintln(w, "      --theme <name>        Theme, overrides mdblog.yaml")
	fmt.Fprintln(w, "      --build-dir <path>    Output directory, overrides mdblog.yaml")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show every file written")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  MDBLOG_THEME, MDBLOG_BUILD_DIR, MDBLOG_WORKERS")
	fmt.Fprintln(w, "  Flags win over environment, environment over mdblog.yaml.")
}

// runHelp prints help for a specific command.
func runHelp(args []string, deps *Dependencies) int {
	if len(args) == 0 {
		printUsage(deps.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case cmdInit:
		printInitUsage(deps.Stdout)
	case cmdBuild:
		printBuildUsage(deps.Stdout)
	case cmdVersion:
		fmt.Fprintln(deps.Stdout, "Usage: mdblog version")
		fmt.Fprintln(deps.Stdout)
		fmt.Fprintln(deps.Stdout, "Show version information.")
	case cmdHelp:
		fmt.Fprintln(deps.Stdout, "Usage: mdblog help [command]")
		fmt.Fprintln(deps.Stdout)
		fmt.Fprintln(deps.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(deps.Stderr, "Unknown command: %s\n", args[0])
		printUsage(deps.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
