package post

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/alnah/go-mdblog/internal/pipeline"
)

const (
	separatorLF   = "\n\n"
	separatorCRLF = "\r\n\r\n"
)

// BodyRenderer converts a Markdown body to an HTML fragment.
type BodyRenderer interface {
	Render(body string) (string, error)
}

// Parser turns post files into posts. A Parser is not safe for concurrent
// use; give each goroutine its own.
type Parser struct {
	renderer BodyRenderer
}

// Option configures a Parser.
type Option func(*Parser)

// WithRenderer replaces the default Goldmark body renderer.
func WithRenderer(r BodyRenderer) Option {
	return func(p *Parser) {
		if r != nil {
			p.renderer = r
		}
	}
}

// NewParser creates a Parser. The default renderer is pipeline.NewRenderer
// with raw HTML passthrough, since post bodies are written by the blog owner.
func NewParser(opts ...Option) *Parser {
	p := &Parser{}
	for _, opt := range opts {
		opt(p)
	}
	if p.renderer == nil {
		p.renderer = pipeline.NewRenderer(pipeline.WithUnsafeHTML())
	}
	return p
}

// Parse reads root/relPath with a default Parser.
func Parse(root, relPath string) (*Post, error) {
	return NewParser().Parse(root, relPath)
}

// Parse reads root/relPath and builds a Post.
func (p *Parser) Parse(root, relPath string) (*Post, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("%w: resolving root %s: %w", ErrRead, root, err)
	}

	data, err := os.ReadFile(filepath.Join(absRoot, relPath)) // #nosec G304 -- path comes from walking the posts directory
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRead, err)
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%w: %s is not valid UTF-8", ErrRead, relPath)
	}
	content := string(data)

	// Whole-file heuristic: one CRLF anywhere selects the CRLF separator.
	separator := separatorLF
	if strings.Contains(content, "\r\n") {
		separator = separatorCRLF
	}

	head, body, found := strings.Cut(content, separator)
	if !found {
		return nil, fmt.Errorf("%w: %s", ErrMissingHeadBody, relPath)
	}
	head = strings.TrimSpace(head)
	body = strings.TrimSpace(body)
	if head == "" {
		return nil, fmt.Errorf("%w: %s", ErrEmptyHead, relPath)
	}
	if body == "" {
		return nil, fmt.Errorf("%w: %s", ErrEmptyBody, relPath)
	}

	headers, err := parseHeaders(head)
	if err != nil {
		return nil, &HeaderParseError{Path: relPath, Err: err}
	}
	if headers.Description == "" {
		headers.Description = deriveDescription(body, separator)
	}

	html, err := p.renderer.Render(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrRender, relPath, err)
	}

	title := headers.Title
	if title == "" {
		title = titleFromFilename(relPath)
		if title == "" {
			return nil, fmt.Errorf("%w: %s", ErrInvalidFilename, relPath)
		}
	}

	url := urlFor(relPath)
	return &Post{
		root:          absRoot,
		Path:          relPath,
		FormattedPath: strings.ReplaceAll(url, `\`, "/"),
		Title:         title,
		URL:           url,
		Headers:       headers,
		Content:       html,
	}, nil
}
