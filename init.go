package mdblog

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alnah/go-mdblog/internal/config"
	"github.com/alnah/go-mdblog/internal/fileutil"
	"github.com/alnah/go-mdblog/internal/theme"
)

// HelloPostFile is the sample post written by Init, relative to the posts
// directory.
const HelloPostFile = "hello.md"

const helloBody = `# Hello

Welcome to your new blog. Posts live in this directory: a YAML header,
one blank line, then Markdown.

Run ` + "`mdblog build`" + ` to render the site.
`

// Init scaffolds a new blog at the root: the settings file, a sample
// post, an empty media directory and the theme files. The root must not
// exist. On failure everything Init created is removed.
func (b *Blog) Init(ctx context.Context) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}
	if fileutil.PathExists(b.root) {
		return fmt.Errorf("%w: %s", ErrBlogExists, b.root)
	}
	if err := os.MkdirAll(b.root, fileutil.DirPerm); err != nil {
		return fmt.Errorf("%w: creating %s: %w", ErrBuildWrite, b.root, err)
	}
	defer func() {
		if err != nil {
			err = errors.Join(err, os.RemoveAll(b.root))
		}
	}()

	cfg := config.DefaultConfig()
	if b.opts.theme != "" {
		cfg.Theme = b.opts.theme
	}
	if b.opts.buildDir != "" {
		cfg.BuildDir = b.opts.buildDir
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := cfg.Save(filepath.Join(b.root, config.FileName)); err != nil {
		return err
	}

	hello := fmt.Sprintf("created: %s\ntags: [hello]\n\n%s", rfc3339(b.opts.now()), helloBody)
	helloPath := filepath.Join(b.root, cfg.PostsDir, HelloPostFile)
	if err := fileutil.WriteFile(helloPath, []byte(hello)); err != nil {
		return fmt.Errorf("%w: %w", ErrBuildWrite, err)
	}
	if err := os.MkdirAll(filepath.Join(b.root, cfg.MediaDir), fileutil.DirPerm); err != nil {
		return fmt.Errorf("%w: %w", ErrBuildWrite, err)
	}

	th, err := theme.Load(filepath.Join(b.root, cfg.ThemeRootDir), cfg.Theme)
	if err != nil {
		return err
	}
	if err := th.Materialize(cfg.Theme); err != nil {
		return err
	}

	b.logf("created blog at %s\n", b.root)
	return nil
}
