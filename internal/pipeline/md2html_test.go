package pipeline

import (
	"errors"
	"strings"
	"testing"
)

func TestGoldmarkConverter_ToHTML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		opts         []GoldmarkOption
		input        string
		wantContains []string
		wantNot      []string
	}{
		{
			name:         "heading with auto id, no document wrapper",
			input:        "# Hello World",
			wantContains: []string{`<h1 id="hello-world">Hello World</h1>`},
			wantNot:      []string{"<!DOCTYPE", "<html", "<body"},
		},
		{
			name:         "soft breaks by default",
			input:        "Line one\nLine two",
			wantContains: []string{"Line one\nLine two"},
			wantNot:      []string{"<br"},
		},
		{
			name:         "hard wraps when enabled",
			opts:         []GoldmarkOption{WithHardWraps()},
			input:        "Line one\nLine two",
			wantContains: []string{"<br />"},
		},
		{
			name:         "GFM table",
			input:        "| A | B |\n|---|---|\n| 1 | 2 |",
			wantContains: []string{"<table>", "<thead>", "<td>1</td>"},
		},
		{
			name:         "GFM strikethrough",
			input:        "~~deleted~~",
			wantContains: []string{"<del>deleted</del>"},
		},
		{
			name:         "GFM task list",
			input:        "- [x] Done\n- [ ] Todo",
			wantContains: []string{`type="checkbox"`, "checked"},
		},
		{
			name:         "footnote",
			input:        "Text[^1]\n\n[^1]: Note",
			wantContains: []string{"footnote"},
		},
		{
			name:         "code highlighted with classes",
			input:        "```go\nfunc main() {}\n```",
			wantContains: []string{`class="chroma"`},
			wantNot:      []string{`style="`},
		},
		{
			name:         "raw HTML omitted by default",
			input:        "<div>raw</div>",
			wantNot:      []string{"<div>raw</div>"},
		},
		{
			name:         "raw HTML kept when unsafe",
			opts:         []GoldmarkOption{WithUnsafeHTML()},
			input:        "<div>raw</div>",
			wantContains: []string{"<div>raw</div>"},
		},
		{
			name:  "empty input",
			input: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := NewGoldmarkConverter(tt.opts...).ToHTML(tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			for _, want := range tt.wantContains {
				if !strings.Contains(got, want) {
					t.Errorf("output missing %q\ngot: %s", want, got)
				}
			}
			for _, not := range tt.wantNot {
				if strings.Contains(got, not) {
					t.Errorf("output should not contain %q\ngot: %s", not, got)
				}
			}
		})
	}
}

func TestHighlightCSS(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		style string
	}{
		{"default style", ""},
		{"named style", "monokai"},
		{"unknown style falls back", "no-such-style"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			css, err := HighlightCSS(tt.style)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !strings.Contains(string(css), ".chroma") {
				t.Errorf("stylesheet missing .chroma selector:\n%s", css)
			}
		})
	}
}

type failingConverter struct{}

func (failingConverter) ToHTML(string) (string, error) {
	return "", ErrHTMLConversion
}

func TestRenderer_Render(t *testing.T) {
	t.Parallel()

	t.Run("marks and line endings", func(t *testing.T) {
		t.Parallel()

		got, err := NewRenderer().Render("Some ==key== words.\r\n\r\nNext paragraph.")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(got, "<mark>key</mark>") {
			t.Errorf("output missing <mark>: %s", got)
		}
		if strings.Contains(got, "\r") || strings.Contains(got, MarkStartPlaceholder) {
			t.Errorf("output has leftover markers: %q", got)
		}
		if strings.Count(got, "<p>") != 2 {
			t.Errorf("want 2 paragraphs, got: %s", got)
		}
	})

	t.Run("converter error propagates", func(t *testing.T) {
		t.Parallel()

		_, err := NewRendererWith(nil, failingConverter{}).Render("x")
		if !errors.Is(err, ErrHTMLConversion) {
			t.Errorf("error = %v, want ErrHTMLConversion", err)
		}
	})
}
