// Package theme loads blog themes and renders pages with them.
//
// A theme is eight files in a fixed layout:
//
//	static/favicon.png
//	static/logo.png
//	static/main.css
//	static/main.js
//	templates/base.tpl
//	templates/index.tpl
//	templates/post.tpl
//	templates/tag.tpl
//
// Themes come from a Source: DirSource reads a directory under the themes
// root, EmbeddedSource serves the built-in "simple" theme compiled into the
// binary. Load picks the source; nothing else in the package depends on
// which one was used.
//
// Loading either yields a Theme whose four templates all parsed, or an
// error. Errors are returned, never logged.
package theme
