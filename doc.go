// Package mdblog turns a directory of Markdown posts into a static HTML
// blog.
//
// # Quick Start
//
// Scaffold a blog, then build it:
//
//	blog, err := mdblog.New("myblog")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := blog.Init(ctx); err != nil {
//	    log.Fatal(err)
//	}
//	if err := blog.Load(ctx); err != nil {
//	    log.Fatal(err)
//	}
//	if _, err := blog.Build(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
// # Blog Layout
//
//	myblog/
//	├── mdblog.yaml          settings
//	├── posts/               Markdown posts, any depth
//	│   └── hello.md
//	├── media/               copied verbatim into the build
//	├── _themes/
//	│   └── simple/
//	│       ├── static/      favicon.png, logo.png, main.css, main.js
//	│       └── templates/   base.tpl, index.tpl, post.tpl, tag.tpl
//	└── _builded/            output
//
// # Post Format
//
// A post is a YAML header, one blank line, then the Markdown body:
//
//	created: 2024-03-01T10:00:00+08:00
//	tags: [go, blog]
//	hidden: false
//
//	# Title
//
//	Body text.
//
// created is required and must be RFC 3339. title defaults to the file
// name with underscores turned into spaces; description defaults to the
// first paragraph, cut at 100 words. Hidden posts are rendered but never
// listed on the index or tag pages.
//
// # Pipeline
//
//  1. Settings load (mdblog.yaml, strict keys, defaults for the rest)
//  2. Theme load (from the theme root, or the built-in simple theme)
//  3. Post parsing in a bounded worker pool (see ResolvePoolSize)
//  4. Rendering of index, post and tag pages through html/template
//  5. Static assets, highlight.css and media copied to the build directory
//
// # Configuration
//
// Options override settings for one run:
//
//	blog, err := mdblog.New("myblog",
//	    mdblog.WithTheme("dark"),
//	    mdblog.WithBuildDir("public"),
//	    mdblog.WithWorkers(4),
//	    mdblog.WithLogOutput(os.Stderr),
//	)
package mdblog
