package post

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// writePost creates root/rel with content and returns root.
func writePost(t *testing.T, rel, content string) string {
	t.Helper()
	root := t.TempDir()
	path := filepath.Join(root, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	return root
}

const validHead = "created: 2024-03-01T10:00:00+08:00\ntags: [hello, world]"

// ---------------------------------------------------------------------------
// TestParse - Well-formed posts
// ---------------------------------------------------------------------------

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		rel       string
		content   string
		wantTitle string
		wantURL   string
		wantDest  string
		check     func(t *testing.T, p *Post)
	}{
		{
			name:      "LF separators",
			rel:       filepath.Join("posts", "hello.md"),
			content:   validHead + "\n\n# Hello\n\nWorld.\n",
			wantTitle: "hello",
			wantURL:   filepath.Join("/", "posts", "hello.html"),
			wantDest:  filepath.Join("posts", "hello.html"),
		},
		{
			name:      "CRLF separators",
			rel:       "crlf.md",
			content:   "created: 2024-03-01T10:00:00+08:00\r\ntitle: Windows\r\n\r\n# Hi\r\n\r\nBody.\r\n",
			wantTitle: "Windows",
			wantURL:   filepath.Join("/", "crlf.html"),
			wantDest:  "crlf.html",
			check: func(t *testing.T, p *Post) {
				if strings.Contains(p.Content, "\r") {
					t.Errorf("Content kept CR characters: %q", p.Content)
				}
				if p.Headers.Description != "# Hi..." {
					t.Errorf("Description = %q, want %q", p.Headers.Description, "# Hi...")
				}
			},
		},
		{
			name:      "title falls back to filename with underscores",
			rel:       "my_post.md",
			content:   validHead + "\n\nbody",
			wantTitle: "my post",
			wantURL:   filepath.Join("/", "my_post.html"),
			wantDest:  "my_post.html",
		},
		{
			name:      "header title kept verbatim",
			rel:       "x.markdown",
			content:   "created: 2024-03-01T10:00:00Z\ntitle: snake_case title\n\nbody",
			wantTitle: "snake_case title",
			wantURL:   filepath.Join("/", "x.html"),
			wantDest:  "x.html",
		},
		{
			name:      "headers decoded",
			rel:       "h.md",
			content:   "created: 2024-03-01T10:00:00+08:00\nhidden: true\ntags: [a, b]\ndescription: given\n\nbody text",
			wantTitle: "h",
			wantURL:   filepath.Join("/", "h.html"),
			wantDest:  "h.html",
			check: func(t *testing.T, p *Post) {
				h := p.Headers
				if !h.Hidden || p.Visible() {
					t.Error("Hidden = false, want true")
				}
				if len(h.Tags) != 2 || h.Tags[0] != "a" || h.Tags[1] != "b" {
					t.Errorf("Tags = %v, want [a b]", h.Tags)
				}
				if h.Description != "given" {
					t.Errorf("Description = %q, want %q", h.Description, "given")
				}
				_, offset := h.Created.Zone()
				if offset != 8*3600 {
					t.Errorf("offset = %d, want %d", offset, 8*3600)
				}
				want := time.Date(2024, 3, 1, 2, 0, 0, 0, time.UTC)
				if !h.Created.Equal(want) {
					t.Errorf("Created = %v, want %v", h.Created, want)
				}
			},
		},
		{
			name:      "defaults for optional headers",
			rel:       "d.md",
			content:   "created: 2024-03-01T10:00:00Z\n\nbody",
			wantTitle: "d",
			wantURL:   filepath.Join("/", "d.html"),
			wantDest:  "d.html",
			check: func(t *testing.T, p *Post) {
				if p.Headers.Hidden {
					t.Error("Hidden = true, want false")
				}
				if p.Headers.Tags == nil || len(p.Headers.Tags) != 0 {
					t.Errorf("Tags = %#v, want empty slice", p.Headers.Tags)
				}
			},
		},
		{
			name:      "split on first blank line only",
			rel:       "first.md",
			content:   validHead + "\n\nfirst para\n\nsecond: not a header\n",
			wantTitle: "first",
			wantURL:   filepath.Join("/", "first.html"),
			wantDest:  "first.html",
			check: func(t *testing.T, p *Post) {
				if !strings.Contains(p.Content, "second: not a header") {
					t.Errorf("Content lost second paragraph: %s", p.Content)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			root := writePost(t, tt.rel, tt.content)
			p, err := Parse(root, tt.rel)
			if err != nil {
				t.Fatalf("Parse() error: %v", err)
			}
			if p.Title != tt.wantTitle {
				t.Errorf("Title = %q, want %q", p.Title, tt.wantTitle)
			}
			if p.URL != tt.wantURL {
				t.Errorf("URL = %q, want %q", p.URL, tt.wantURL)
			}
			if p.Dest() != tt.wantDest {
				t.Errorf("Dest() = %q, want %q", p.Dest(), tt.wantDest)
			}
			if strings.Contains(p.FormattedPath, `\`) || !strings.HasPrefix(p.FormattedPath, "/") {
				t.Errorf("FormattedPath = %q, want forward slashes rooted at /", p.FormattedPath)
			}
			if p.Src() != filepath.Join(root, tt.rel) {
				t.Errorf("Src() = %q, want %q", p.Src(), filepath.Join(root, tt.rel))
			}
			if strings.Contains(p.Content, "created:") {
				t.Errorf("Content contains header text: %s", p.Content)
			}
			if tt.check != nil {
				tt.check(t, p)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestParse_Errors - Structural and header failures
// ---------------------------------------------------------------------------

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		rel     string
		content string
		wantErr error
	}{
		{"no separator", "a.md", "created: 2024-03-01T10:00:00Z\nbody", ErrMissingHeadBody},
		{"empty file", "a.md", "", ErrMissingHeadBody},
		{"empty head", "a.md", "   \n\nbody", ErrEmptyHead},
		{"whitespace body", "a.md", validHead + "\n\n  \n\t\n", ErrEmptyBody},
		{"malformed yaml", "a.md", "tags: [unclosed\n\nbody", ErrHeaderParse},
		{"missing created", "a.md", "title: t\n\nbody", ErrHeaderParse},
		{"created not RFC3339", "a.md", "created: 2024-03-01\n\nbody", ErrHeaderParse},
		{"empty filename stem", ".md", validHead + "\n\nbody", ErrInvalidFilename},
		{"invalid UTF-8", "a.md", validHead + "\n\n\xff\xfe", ErrRead},
		// A single CRLF anywhere switches the whole file to the CRLF
		// separator, so an LF blank line is not seen as the boundary.
		{"mixed endings use whole-file heuristic", "a.md", validHead + "\n\nbody line\r\nmore", ErrMissingHeadBody},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			root := writePost(t, tt.rel, tt.content)
			_, err := Parse(root, tt.rel)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Parse() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestParse_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := Parse(t.TempDir(), "missing.md")
	if !errors.Is(err, ErrRead) {
		t.Errorf("error = %v, want ErrRead", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error = %v, want os.ErrNotExist in chain", err)
	}
}

func TestHeaderParseError(t *testing.T) {
	t.Parallel()

	root := writePost(t, "bad.md", "created: [\n\nbody")
	_, err := Parse(root, "bad.md")

	var hpe *HeaderParseError
	if !errors.As(err, &hpe) {
		t.Fatalf("error = %T %v, want *HeaderParseError", err, err)
	}
	if hpe.Path != "bad.md" {
		t.Errorf("Path = %q, want %q", hpe.Path, "bad.md")
	}
	if hpe.Unwrap() == nil {
		t.Error("Unwrap() = nil, want decoder error")
	}
	if !strings.Contains(hpe.Error(), "bad.md") {
		t.Errorf("Error() = %q, want path included", hpe.Error())
	}
	if hpe.Detail() == "" {
		t.Error("Detail() is empty")
	}
}

// ---------------------------------------------------------------------------
// TestDescription - Derived summaries
// ---------------------------------------------------------------------------

func TestDescription(t *testing.T) {
	t.Parallel()

	words := func(n int) []string {
		out := make([]string, n)
		for i := range out {
			out[i] = "w"
		}
		return out
	}

	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "short paragraph joined with single spaces",
			body: "one  two\nthree\tfour",
			want: "one two three four...",
		},
		{
			name: "only first paragraph",
			body: "first para\n\nsecond para",
			want: "first para...",
		},
		{
			name: "exactly 100 words",
			body: strings.Join(words(100), " "),
			want: strings.Join(words(100), " ") + "...",
		},
		{
			name: "more than 100 words truncated",
			body: strings.Join(words(150), "\n"),
			want: strings.Join(words(100), " ") + "...",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			root := writePost(t, "p.md", validHead+"\n\n"+tt.body)
			p, err := Parse(root, "p.md")
			if err != nil {
				t.Fatalf("Parse() error: %v", err)
			}
			if p.Headers.Description != tt.want {
				t.Errorf("Description = %q, want %q", p.Headers.Description, tt.want)
			}
		})
	}

	if got := deriveDescription("", separatorLF); got != "" {
		t.Errorf("deriveDescription(\"\") = %q, want empty", got)
	}
}

// ---------------------------------------------------------------------------
// TestParse_Idempotent - Same bytes in, same post out
// ---------------------------------------------------------------------------

func TestParse_Idempotent(t *testing.T) {
	t.Parallel()

	root := writePost(t, "same.md", validHead+"\n\n# Title\n\n```go\nfunc main() {}\n```\n\n==mark==\n")
	parser := NewParser()

	a, err := parser.Parse(root, "same.md")
	if err != nil {
		t.Fatalf("first Parse: %v", err)
	}
	b, err := parser.Parse(root, "same.md")
	if err != nil {
		t.Fatalf("second Parse: %v", err)
	}
	if a.Title != b.Title || a.URL != b.URL || a.FormattedPath != b.FormattedPath || a.Content != b.Content {
		t.Errorf("posts differ:\n%+v\n%+v", a, b)
	}
	if !strings.Contains(a.Content, "<mark>mark</mark>") {
		t.Errorf("Content missing <mark>: %s", a.Content)
	}
	if string(a.HTML()) != a.Content {
		t.Error("HTML() differs from Content")
	}
}

type stubRenderer struct {
	out string
	err error
}

func (s stubRenderer) Render(string) (string, error) { return s.out, s.err }

func TestParser_WithRenderer(t *testing.T) {
	t.Parallel()

	root := writePost(t, "r.md", validHead+"\n\nbody")

	p, err := NewParser(WithRenderer(stubRenderer{out: "<p>stub</p>"})).Parse(root, "r.md")
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if p.Content != "<p>stub</p>" {
		t.Errorf("Content = %q, want stub output", p.Content)
	}

	_, err = NewParser(WithRenderer(stubRenderer{err: errors.New("boom")})).Parse(root, "r.md")
	if !errors.Is(err, ErrRender) {
		t.Errorf("error = %v, want ErrRender", err)
	}
}
