package main

// Notes:
// - exitCodeFor: we test the sentinels re-exported by the root package plus
//   wrapped and joined errors to verify the errors.Is chain.
// - Exit code constants: we verify Unix conventions.

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"

	mdblog "github.com/alnah/go-mdblog"
)

// ---------------------------------------------------------------------------
// TestExitCodeFor - Error to exit code mapping
// ---------------------------------------------------------------------------

func TestExitCodeFor(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, ExitSuccess},

		{"canceled", context.Canceled, ExitInterrupted},
		{"wrapped canceled", fmt.Errorf("build: %w", context.Canceled), ExitInterrupted},

		// I/O errors (exit 3)
		{"file not exist", os.ErrNotExist, ExitIO},
		{"permission denied", os.ErrPermission, ExitIO},
		{"posts dir missing", mdblog.ErrPostsDirMissing, ExitIO},
		{"post read", mdblog.ErrPostRead, ExitIO},
		{"config read", mdblog.ErrConfigRead, ExitIO},
		{"asset read", mdblog.ErrAssetRead, ExitIO},
		{"asset write", mdblog.ErrAssetWrite, ExitIO},
		{"build write", mdblog.ErrBuildWrite, ExitIO},

		// Usage/settings/content errors (exit 2)
		{"usage", ErrUsage, ExitUsage},
		{"invalid workers", mdblog.ErrInvalidWorkers, ExitUsage},
		{"blog exists", mdblog.ErrBlogExists, ExitUsage},
		{"config parse", mdblog.ErrConfigParse, ExitUsage},
		{"field too long", mdblog.ErrFieldTooLong, ExitUsage},
		{"invalid dir", mdblog.ErrInvalidDir, ExitUsage},
		{"dir conflict", mdblog.ErrDirConflict, ExitUsage},
		{"theme not found", mdblog.ErrThemeNotFound, ExitUsage},
		{"invalid theme name", mdblog.ErrInvalidThemeName, ExitUsage},
		{"template parse", mdblog.ErrTemplateParse, ExitUsage},
		{"missing head body", mdblog.ErrMissingHeadBody, ExitUsage},
		{"empty head", mdblog.ErrEmptyHead, ExitUsage},
		{"empty body", mdblog.ErrEmptyBody, ExitUsage},
		{"header parse", &mdblog.HeaderParseError{Path: "posts/a.md", Err: errors.New("bad")}, ExitUsage},
		{"invalid filename", mdblog.ErrInvalidFilename, ExitUsage},
		{"joined post errors", errors.Join(mdblog.ErrEmptyBody, mdblog.ErrEmptyHead), ExitUsage},
		{"content beats io in a join", errors.Join(mdblog.ErrPostRead, mdblog.ErrEmptyBody), ExitUsage},

		// General errors (exit 1)
		{"unknown error", errors.New("something unexpected"), ExitGeneral},
		{"wrapped unknown", fmt.Errorf("context: %w", errors.New("unknown")), ExitGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestExitCodeConstants - Unix conventions
// ---------------------------------------------------------------------------

func TestExitCodeConstants(t *testing.T) {
	t.Parallel()

	if ExitSuccess != 0 {
		t.Errorf("ExitSuccess = %d, want 0", ExitSuccess)
	}
	if ExitGeneral != 1 {
		t.Errorf("ExitGeneral = %d, want 1", ExitGeneral)
	}
	if ExitUsage != 2 {
		t.Errorf("ExitUsage = %d, want 2", ExitUsage)
	}
	for _, code := range []int{ExitIO} {
		if code >= 126 {
			t.Errorf("custom exit code %d must be below 126", code)
		}
	}
}
