// Package pipeline implements the Markdown-to-HTML transform used for post
// bodies.
//
// The transform runs in three steps:
//   - body preprocessing (line ending normalization, ==highlight== syntax)
//   - Markdown to HTML fragment conversion via Goldmark (GFM, footnotes,
//     heading IDs, chroma syntax highlighting with CSS classes)
//   - placeholder finalization (<mark> tags)
//
// Render chains the three steps. The stylesheet for highlighted code is
// produced separately by HighlightCSS so a build can ship it next to the
// theme's static assets.
package pipeline
