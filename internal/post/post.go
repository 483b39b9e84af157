// Package post parses Markdown post files into structured posts.
//
// A post file is a YAML header block, one blank line, then the Markdown
// body:
//
//	created: 2024-03-01T10:00:00+08:00
//	tags: [hello]
//
//	# Hello
//
//	First paragraph.
//
// Parsing is read-only and deterministic. Errors are returned to the
// caller; this package never logs.
package post

import (
	"html/template"
	"path/filepath"
	"strings"
)

// HTMLExt is the extension of rendered post pages.
const HTMLExt = ".html"

// Post is one parsed source file. It is immutable once returned by Parse.
type Post struct {
	root string

	// Path is the source file path relative to the blog root.
	Path string
	// FormattedPath is URL with forward slashes on every platform.
	FormattedPath string
	// Title is the header title, or the filename stem with underscores
	// replaced by spaces.
	Title string
	// URL is Path rooted at "/" with a .html extension.
	URL string
	// Headers holds the decoded metadata block.
	Headers Headers
	// Content is the rendered HTML body.
	Content string
}

// Root returns the blog root the post was read from.
func (p *Post) Root() string { return p.root }

// Src returns the absolute path of the Markdown source.
func (p *Post) Src() string {
	return filepath.Join(p.root, p.Path)
}

// Dest returns the output path of the rendered page, relative to the
// build directory.
func (p *Post) Dest() string {
	return replaceExt(p.Path, HTMLExt)
}

// HTML returns Content for use in templates without escaping.
func (p *Post) HTML() template.HTML {
	return template.HTML(p.Content) // #nosec G203 -- rendered from the author's own Markdown
}

// Visible reports whether the post is listed on index and tag pages.
func (p *Post) Visible() bool { return !p.Headers.Hidden }

func replaceExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}

func titleFromFilename(path string) string {
	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return strings.ReplaceAll(stem, "_", " ")
}

func urlFor(relPath string) string {
	return replaceExt(filepath.Join(string(filepath.Separator), relPath), HTMLExt)
}
