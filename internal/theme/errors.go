package theme

import "errors"

// Sentinel errors for theme loading and export.
var (
	// ErrThemeNotFound indicates no theme directory exists under the
	// requested name and the name is not the built-in default.
	ErrThemeNotFound = errors.New("theme not found")

	// ErrInvalidThemeName indicates the name is empty or contains path
	// separators or dots.
	ErrInvalidThemeName = errors.New("invalid theme name")

	// ErrAssetRead indicates an I/O error while reading a theme file.
	ErrAssetRead = errors.New("failed to read theme asset")

	// ErrAssetWrite indicates an I/O error while writing a theme file.
	ErrAssetWrite = errors.New("failed to write theme asset")

	// ErrPathTraversal indicates a theme file resolves outside its theme
	// directory, for example through a symlink.
	ErrPathTraversal = errors.New("path traversal detected")

	// ErrInvalidUTF8 indicates a template source is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("template is not valid UTF-8")

	// ErrTemplateParse indicates a template source has a syntax error.
	ErrTemplateParse = errors.New("failed to parse template")

	// ErrUnknownTemplate indicates Render was asked for a name the theme
	// does not define.
	ErrUnknownTemplate = errors.New("unknown template")

	// ErrTemplateExec indicates a template failed while rendering a page.
	ErrTemplateExec = errors.New("failed to render template")
)
