package pipeline

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
)

// ErrHTMLConversion indicates HTML conversion failed.
var ErrHTMLConversion = errors.New("HTML conversion failed")

// DefaultHighlightStyle is the chroma style used for fenced code blocks.
const DefaultHighlightStyle = "github"

// HTMLConverter abstracts Markdown to HTML conversion.
// Implementations return an HTML fragment, not a full document: the theme
// templates own the surrounding page.
type HTMLConverter interface {
	ToHTML(content string) (string, error)
}

// GoldmarkOption configures a GoldmarkConverter.
type GoldmarkOption func(*goldmarkSettings)

type goldmarkSettings struct {
	unsafeHTML bool
	hardWraps  bool
	style      string
}

// WithUnsafeHTML lets raw HTML in post bodies pass through unescaped.
func WithUnsafeHTML() GoldmarkOption {
	return func(s *goldmarkSettings) { s.unsafeHTML = true }
}

// WithHardWraps renders single newlines as <br>.
func WithHardWraps() GoldmarkOption {
	return func(s *goldmarkSettings) { s.hardWraps = true }
}

// WithHighlightStyle selects the chroma style name for code blocks.
func WithHighlightStyle(name string) GoldmarkOption {
	return func(s *goldmarkSettings) {
		if name != "" {
			s.style = name
		}
	}
}

// GoldmarkConverter converts Markdown to HTML using goldmark (pure Go).
type GoldmarkConverter struct {
	md goldmark.Markdown
}

// NewGoldmarkConverter creates a GoldmarkConverter with GFM extensions,
// footnotes and syntax highlighting.
func NewGoldmarkConverter(opts ...GoldmarkOption) *GoldmarkConverter {
	s := goldmarkSettings{style: DefaultHighlightStyle}
	for _, opt := range opts {
		opt(&s)
	}

	rendererOptions := []renderer.Option{html.WithXHTML()}
	if s.hardWraps {
		rendererOptions = append(rendererOptions, html.WithHardWraps())
	}
	if s.unsafeHTML {
		rendererOptions = append(rendererOptions, html.WithUnsafe())
	}

	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,      // Tables, strikethrough, autolinks, task lists
			extension.Footnote, // [^1] footnotes
			highlighting.NewHighlighting(
				highlighting.WithStyle(s.style),
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true), // styled by static/highlight.css
				),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(rendererOptions...),
	)
	return &GoldmarkConverter{md: md}
}

// ToHTML converts Markdown content to an HTML fragment.
func (c *GoldmarkConverter) ToHTML(content string) (string, error) {
	var buf bytes.Buffer
	if err := c.md.Convert([]byte(content), &buf); err != nil {
		return "", fmt.Errorf("%w: %v", ErrHTMLConversion, err)
	}
	return buf.String(), nil
}

// WriteHighlightCSS writes the stylesheet matching the class names emitted
// for fenced code blocks. Unknown style names fall back to chroma's default.
func WriteHighlightCSS(w io.Writer, style string) error {
	formatter := chromahtml.New(chromahtml.WithClasses(true))
	return formatter.WriteCSS(w, lookupStyle(style))
}

// HighlightCSS returns the stylesheet produced by WriteHighlightCSS.
func HighlightCSS(style string) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteHighlightCSS(&buf, style); err != nil {
		return nil, fmt.Errorf("writing highlight css: %w", err)
	}
	return buf.Bytes(), nil
}

func lookupStyle(name string) *chroma.Style {
	if name == "" {
		name = DefaultHighlightStyle
	}
	return styles.Get(name)
}

// Compile-time interface check.
var _ HTMLConverter = (*GoldmarkConverter)(nil)
