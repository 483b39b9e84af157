package hints

import (
	"strings"
	"testing"
)

func TestHints(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		got          string
		wantContains []string
	}{
		{"theme not found", ForThemeNotFound([]string{"custom", "simple"}), []string{"available: custom, simple"}},
		{"post format", ForPostFormat(), []string{"created:", "blank line"}},
		{"config keys", ForConfigParse([]string{"site_name", "theme"}), []string{"site_name, theme"}},
		{"config without keys", ForConfigParse(nil), []string{"mdblog.yaml"}},
		{"blog exists", ForBlogExists("myblog"), []string{"mdblog build -C myblog"}},
		{"missing posts", ForMissingPosts("posts"), []string{"create posts", "; ", "-C"}},
		{"output directory", ForOutputDirectory(), []string{"writable"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if !strings.HasPrefix(tt.got, "\n  hint: ") {
				t.Errorf("hint %q missing prefix", tt.got)
			}
			for _, want := range tt.wantContains {
				if !strings.Contains(tt.got, want) {
					t.Errorf("hint %q missing %q", tt.got, want)
				}
			}
		})
	}
}

func TestEmptyHints(t *testing.T) {
	t.Parallel()

	if got := ForThemeNotFound(nil); got != "" {
		t.Errorf("ForThemeNotFound(nil) = %q, want empty", got)
	}
	if got := format(""); got != "" {
		t.Errorf("format(\"\") = %q, want empty", got)
	}
	if got := formatHints(nil); got != "" {
		t.Errorf("formatHints(nil) = %q, want empty", got)
	}
}
