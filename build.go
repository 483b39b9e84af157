package mdblog

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/alnah/go-mdblog/internal/fileutil"
	"github.com/alnah/go-mdblog/internal/pipeline"
	"github.com/alnah/go-mdblog/internal/post"
	"github.com/alnah/go-mdblog/internal/theme"
)

// Output file names in the build directory.
const (
	indexFile        = "index.html"
	highlightCSSFile = "static/highlight.css"
)

// Site is the settings block every page receives.
type Site struct {
	Name       string
	Motto      string
	Logo       string
	FooterNote string
}

// Page is the data passed to every template. Post is set on post pages,
// Tag on tag pages; Posts holds the listed posts on index and tag pages.
type Page struct {
	Site  Site
	Title string
	Posts []*post.Post
	Tags  []TagSummary
	Post  *post.Post
	Tag   *TagSummary
}

// BuildStats summarizes a build.
type BuildStats struct {
	Posts  int // post pages written, hidden included
	Hidden int
	Tags   int
}

// Build renders the loaded blog into the build directory:
//   - index.html listing visible posts
//   - one page per post, hidden posts included but never listed
//   - tags/<slug>.html per tag of visible posts
//   - theme static files plus static/highlight.css
//   - a copy of the media directory, when present
//
// Existing files in the build directory are overwritten; nothing is
// removed. Cancellation is checked between pages.
func (b *Blog) Build(ctx context.Context) (BuildStats, error) {
	var stats BuildStats
	if b.cfg == nil || b.theme == nil {
		return stats, ErrNotLoaded
	}
	out := b.BuildDir()
	site := b.site()
	renderer := b.theme.Renderer()

	visible := make([]*post.Post, 0, len(b.posts))
	for _, p := range b.posts {
		if p.Visible() {
			visible = append(visible, p)
		}
	}

	if err := ctx.Err(); err != nil {
		return stats, err
	}
	index := Page{Site: site, Posts: visible, Tags: b.tags}
	if err := b.renderPage(renderer, theme.IndexTemplate, filepath.Join(out, indexFile), index); err != nil {
		return stats, err
	}
	b.debugf("wrote %s\n", indexFile)

	for _, p := range b.posts {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		page := Page{Site: site, Title: p.Title, Posts: visible, Tags: b.tags, Post: p}
		if err := b.renderPage(renderer, theme.PostTemplate, filepath.Join(out, p.Dest()), page); err != nil {
			return stats, err
		}
		stats.Posts++
		if !p.Visible() {
			stats.Hidden++
		}
		b.debugf("wrote %s\n", p.Dest())
	}

	for i := range b.tags {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		tag := &b.tags[i]
		page := Page{Site: site, Title: tag.Name, Posts: postsTagged(visible, tag.Name), Tags: b.tags, Tag: tag}
		if err := b.renderPage(renderer, theme.TagTemplate, filepath.Join(out, filepath.FromSlash(tag.file)), page); err != nil {
			return stats, err
		}
		stats.Tags++
		b.debugf("wrote %s\n", tag.file)
	}

	if err := b.theme.ExportStatic(out); err != nil {
		return stats, err
	}
	css, err := pipeline.HighlightCSS(b.cfg.HighlightStyle)
	if err != nil {
		return stats, err
	}
	if err := fileutil.WriteFile(filepath.Join(out, filepath.FromSlash(highlightCSSFile)), css); err != nil {
		return stats, fmt.Errorf("%w: %w", ErrBuildWrite, err)
	}

	media := filepath.Join(b.root, b.cfg.MediaDir)
	if fileutil.DirExists(media) {
		if err := fileutil.CopyDir(media, filepath.Join(out, b.cfg.MediaDir)); err != nil {
			return stats, fmt.Errorf("%w: copying media: %w", ErrBuildWrite, err)
		}
		b.debugf("copied %s\n", b.cfg.MediaDir)
	}

	b.logf("built %d posts (%d hidden), %d tags into %s\n", stats.Posts, stats.Hidden, stats.Tags, out)
	return stats, nil
}

// renderPage renders one template fully in memory before writing, so a
// template error never leaves a truncated page behind.
func (b *Blog) renderPage(r *theme.Renderer, name, dest string, data Page) error {
	var buf bytes.Buffer
	if err := r.Render(&buf, name, data); err != nil {
		return err
	}
	if err := fileutil.WriteFile(dest, buf.Bytes()); err != nil {
		return fmt.Errorf("%w: %w", ErrBuildWrite, err)
	}
	return nil
}

func postsTagged(posts []*post.Post, tag string) []*post.Post {
	var tagged []*post.Post
	for _, p := range posts {
		for _, t := range p.Headers.Tags {
			if strings.TrimSpace(t) == tag {
				tagged = append(tagged, p)
				break
			}
		}
	}
	return tagged
}
