// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"strings"
)

// ForThemeNotFound lists the themes that can be used instead.
func ForThemeNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// ForPostFormat reminds the expected post file layout.
func ForPostFormat() string {
	return format("a post is a YAML header with at least 'created: 2006-01-02T15:04:05+08:00', one blank line, then Markdown")
}

// ForConfigParse returns hints for settings file errors, listing the
// accepted keys when known.
func ForConfigParse(keys []string) string {
	if len(keys) == 0 {
		return format("check mdblog.yaml syntax")
	}
	return format("mdblog.yaml accepts: " + strings.Join(keys, ", "))
}

// ForBlogExists returns hints when init targets an existing path.
func ForBlogExists(path string) string {
	return format("choose a new directory, or run 'mdblog build -C " + path + "' to build it")
}

// ForMissingPosts returns hints when the posts directory is absent.
func ForMissingPosts(dir string) string {
	return formatHints([]string{
		"create " + dir + " or set posts_dir in mdblog.yaml",
		"use -C to point at the blog root",
	})
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
