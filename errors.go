package mdblog

import (
	"errors"

	"github.com/alnah/go-mdblog/internal/config"
	"github.com/alnah/go-mdblog/internal/pipeline"
	"github.com/alnah/go-mdblog/internal/post"
	"github.com/alnah/go-mdblog/internal/theme"
)

// Sentinel errors for blog operations.
var (
	ErrBlogExists      = errors.New("blog directory already exists")
	ErrEmptyRoot       = errors.New("blog root cannot be empty")
	ErrNotLoaded       = errors.New("blog not loaded: call Load before Build")
	ErrPostsDirMissing = errors.New("posts directory not found")
	ErrBuildWrite      = errors.New("failed to write build output")
	ErrInvalidWorkers  = errors.New("worker count must be positive")
)

// Post errors.
var (
	ErrPostRead        = post.ErrRead
	ErrMissingHeadBody = post.ErrMissingHeadBody
	ErrEmptyHead       = post.ErrEmptyHead
	ErrEmptyBody       = post.ErrEmptyBody
	ErrHeaderParse     = post.ErrHeaderParse
	ErrInvalidFilename = post.ErrInvalidFilename
	ErrPostRender      = post.ErrRender
	ErrHTMLConversion  = pipeline.ErrHTMLConversion
)

// Theme errors.
var (
	ErrThemeNotFound    = theme.ErrThemeNotFound
	ErrInvalidThemeName = theme.ErrInvalidThemeName
	ErrAssetRead        = theme.ErrAssetRead
	ErrAssetWrite       = theme.ErrAssetWrite
	ErrPathTraversal    = theme.ErrPathTraversal
	ErrInvalidUTF8      = theme.ErrInvalidUTF8
	ErrTemplateParse    = theme.ErrTemplateParse
	ErrTemplateExec     = theme.ErrTemplateExec
)

// Config errors.
var (
	ErrConfigParse   = config.ErrConfigParse
	ErrConfigRead    = config.ErrConfigRead
	ErrFieldTooLong  = config.ErrFieldTooLong
	ErrInvalidDir    = config.ErrInvalidDir
	ErrDirConflict   = config.ErrDirConflict
	ErrInvalidConfig = config.ErrInvalidConfig
)

// HeaderParseError reports a post header block that could not be decoded.
type HeaderParseError = post.HeaderParseError
