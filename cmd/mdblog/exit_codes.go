package main

import (
	"context"
	"errors"
	"os"

	mdblog "github.com/alnah/go-mdblog"
)

// Exit codes for the mdblog CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, custom codes < 126.
const (
	ExitSuccess     = 0   // Success
	ExitGeneral     = 1   // General/unexpected error
	ExitUsage       = 2   // Invalid flags, settings, theme or post content
	ExitIO          = 3   // File not found, permission denied, write failure
	ExitInterrupted = 130 // Canceled by SIGINT/SIGTERM
)

// exitCodeFor returns the exit code for an error.
// It relies on errors.Is, so callers must wrap with %w.
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if errors.Is(err, context.Canceled) {
		return ExitInterrupted
	}

	// Content and settings errors come first: a malformed post is a user
	// error even though it was read from disk.
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, mdblog.ErrInvalidWorkers) ||
		errors.Is(err, mdblog.ErrEmptyRoot) ||
		errors.Is(err, mdblog.ErrBlogExists) ||
		errors.Is(err, mdblog.ErrConfigParse) ||
		errors.Is(err, mdblog.ErrFieldTooLong) ||
		errors.Is(err, mdblog.ErrInvalidDir) ||
		errors.Is(err, mdblog.ErrDirConflict) ||
		errors.Is(err, mdblog.ErrInvalidConfig) ||
		errors.Is(err, mdblog.ErrThemeNotFound) ||
		errors.Is(err, mdblog.ErrInvalidThemeName) ||
		errors.Is(err, mdblog.ErrPathTraversal) ||
		errors.Is(err, mdblog.ErrInvalidUTF8) ||
		errors.Is(err, mdblog.ErrTemplateParse) ||
		errors.Is(err, mdblog.ErrTemplateExec) ||
		errors.Is(err, mdblog.ErrMissingHeadBody) ||
		errors.Is(err, mdblog.ErrEmptyHead) ||
		errors.Is(err, mdblog.ErrEmptyBody) ||
		errors.Is(err, mdblog.ErrHeaderParse) ||
		errors.Is(err, mdblog.ErrInvalidFilename) {
		return ExitUsage
	}

	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, mdblog.ErrPostsDirMissing) ||
		errors.Is(err, mdblog.ErrPostRead) ||
		errors.Is(err, mdblog.ErrConfigRead) ||
		errors.Is(err, mdblog.ErrAssetRead) ||
		errors.Is(err, mdblog.ErrAssetWrite) ||
		errors.Is(err, mdblog.ErrBuildWrite) {
		return ExitIO
	}

	return ExitGeneral
}
