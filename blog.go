package mdblog

import (
	"context"
	"fmt"
	"html/template"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/alnah/go-mdblog/internal/config"
	"github.com/alnah/go-mdblog/internal/dateutil"
	"github.com/alnah/go-mdblog/internal/fileutil"
	"github.com/alnah/go-mdblog/internal/pipeline"
	"github.com/alnah/go-mdblog/internal/post"
	"github.com/alnah/go-mdblog/internal/theme"
)

// Post is a parsed blog post.
type Post = post.Post

// Config holds the blog settings read from mdblog.yaml.
type Config = config.Config

// Blog is a blog rooted at a directory: settings, theme and posts.
// Create with New, then call Init for a new blog, or Load then Build.
type Blog struct {
	root string
	opts options

	cfg    *config.Config
	theme  *theme.Theme
	posts  []*post.Post
	tags   []TagSummary
	tagURL map[string]string
}

// New creates a Blog rooted at root. The root is made absolute; nothing
// is read until Init or Load.
func New(root string, opts ...Option) (*Blog, error) {
	if root == "" {
		return nil, ErrEmptyRoot
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving blog root: %w", err)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Blog{root: abs, opts: o}, nil
}

// Root returns the absolute blog root.
func (b *Blog) Root() string { return b.root }

// Config returns the loaded settings, or nil before Load.
func (b *Blog) Config() *config.Config { return b.cfg }

// Posts returns every loaded post, newest first, hidden ones included.
func (b *Blog) Posts() []*post.Post { return b.posts }

// Tags returns the tags of visible posts, sorted by name.
func (b *Blog) Tags() []TagSummary { return b.tags }

// BuildDir returns the absolute build directory, or "" before Load.
func (b *Blog) BuildDir() string {
	if b.cfg == nil {
		return ""
	}
	return filepath.Join(b.root, b.cfg.BuildDir)
}

// Load reads the settings, the theme and every post. Any post that fails
// to parse aborts the load; the returned error joins all failures.
func (b *Blog) Load(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	cfg, err := b.loadConfig()
	if err != nil {
		return err
	}

	dateFormat, err := dateutil.NewFormatter(cfg.DateFormat)
	if err != nil {
		return fmt.Errorf("%w: date_format: %w", config.ErrInvalidConfig, err)
	}

	themeRoot := filepath.Join(b.root, cfg.ThemeRootDir)
	th, err := theme.Load(themeRoot, cfg.Theme, theme.WithFuncs(template.FuncMap{
		"date":   dateFormat,
		"tagURL": b.lookupTagURL,
	}))
	if err != nil {
		return err
	}
	b.debugf("theme %s from %s\n", th.Name, th.Source())

	files, err := b.discoverPosts(cfg.PostsDir)
	if err != nil {
		return err
	}
	b.debugf("found %d post files in %s\n", len(files), cfg.PostsDir)

	newParser := func() *post.Parser {
		return post.NewParser(post.WithRenderer(pipeline.NewRenderer(
			pipeline.WithUnsafeHTML(),
			pipeline.WithHighlightStyle(cfg.HighlightStyle),
		)))
	}
	posts, err := parseBatch(ctx, b.root, files, b.opts.workers, newParser)
	if err != nil {
		return err
	}
	sortPosts(posts)

	b.cfg = cfg
	b.theme = th
	b.posts = posts
	b.tags, b.tagURL = collectTags(posts)
	b.logf("loaded %d posts, %d tags\n", len(posts), len(b.tags))
	return nil
}

// loadConfig reads mdblog.yaml and applies the option overrides.
func (b *Blog) loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig(filepath.Join(b.root, config.FileName))
	if err != nil {
		return nil, err
	}
	b.applyOverrides(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (b *Blog) applyOverrides(cfg *config.Config) {
	if b.opts.theme != "" {
		cfg.Theme = b.opts.theme
	}
	if b.opts.buildDir != "" {
		cfg.BuildDir = b.opts.buildDir
	}
}

// postExtensions are the recognized Markdown file extensions.
var postExtensions = []string{".md", ".markdown"}

// discoverPosts lists Markdown files under postsDir, relative to the blog
// root, in lexical order. Hidden files and directories are skipped.
func (b *Blog) discoverPosts(postsDir string) ([]string, error) {
	dir := filepath.Join(b.root, postsDir)
	if !fileutil.DirExists(dir) {
		return nil, fmt.Errorf("%w: %s", ErrPostsDirMissing, dir)
	}

	var files []string
	err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		name := d.Name()
		if p != dir && strings.HasPrefix(name, ".") {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() || !slices.Contains(postExtensions, strings.ToLower(filepath.Ext(name))) {
			return nil
		}
		rel, err := filepath.Rel(b.root, p)
		if err != nil {
			return err
		}
		files = append(files, rel)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: walking %s: %w", ErrPostRead, dir, err)
	}
	return files, nil
}

// sortPosts orders posts newest first; equal timestamps fall back to path
// so output is stable.
func sortPosts(posts []*post.Post) {
	slices.SortStableFunc(posts, func(a, b *post.Post) int {
		if c := b.Headers.Created.Compare(a.Headers.Created); c != 0 {
			return c
		}
		return strings.Compare(a.Path, b.Path)
	})
}

// site returns the Site block passed to templates.
func (b *Blog) site() Site {
	logo := b.cfg.SiteLogo
	if !fileutil.IsURL(logo) {
		logo = path.Join("/", filepath.ToSlash(logo))
	}
	return Site{
		Name:       b.cfg.SiteName,
		Motto:      b.cfg.SiteMotto,
		Logo:       logo,
		FooterNote: b.cfg.FooterNote,
	}
}

func (b *Blog) logf(format string, args ...any) {
	_, _ = fmt.Fprintf(b.opts.out, format, args...)
}

func (b *Blog) debugf(format string, args ...any) {
	if b.opts.verbose {
		b.logf(format, args...)
	}
}

// rfc3339 formats t the way post headers expect.
func rfc3339(t time.Time) string {
	return t.Format(time.RFC3339)
}

// Exists reports whether the blog root exists.
func (b *Blog) Exists() bool {
	_, err := os.Stat(b.root)
	return err == nil
}
