package pipeline

import (
	"regexp"
	"strings"
)

// Highlight placeholders use Unicode Private Use Area characters.
// They pass through Goldmark unchanged and are turned into <mark> tags
// after HTML generation.
const (
	MarkStartPlaceholder = "\uE000" // U+E000: Private Use Area start
	MarkEndPlaceholder   = "\uE001" // U+E001: Private Use Area end
)

var (
	crlfOrCR = regexp.MustCompile(`\r\n?`)

	// ==text== on a single line, non-greedy.
	highlightPattern = regexp.MustCompile(`==([^=\n]+?)==`)

	// Fenced code blocks are left untouched by the highlight rewrite.
	fencePattern = regexp.MustCompile("(?m)^(```|~~~)")
)

// MarkdownPreprocessor defines the contract for markdown preprocessing.
type MarkdownPreprocessor interface {
	PreprocessMarkdown(content string) string
}

// BodyPreprocessor prepares a post body for conversion. It runs after the
// metadata block has been split off, so it never affects how a file is split.
type BodyPreprocessor struct{}

// PreprocessMarkdown normalizes line endings and rewrites ==highlight== marks.
func (p *BodyPreprocessor) PreprocessMarkdown(content string) string {
	content = normalizeLineEndings(content)
	return convertHighlights(content)
}

// normalizeLineEndings converts \r\n and \r to \n.
func normalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// convertHighlights transforms ==text== to placeholder markers outside
// fenced code blocks.
func convertHighlights(content string) string {
	if !strings.Contains(content, "==") {
		return content
	}

	lines := strings.SplitAfter(content, "\n")
	inFence := false
	var b strings.Builder
	b.Grow(len(content))
	for _, line := range lines {
		if fencePattern.MatchString(line) {
			inFence = !inFence
			b.WriteString(line)
			continue
		}
		if inFence {
			b.WriteString(line)
			continue
		}
		b.WriteString(highlightPattern.ReplaceAllString(line, MarkStartPlaceholder+"$1"+MarkEndPlaceholder))
	}
	return b.String()
}

// ConvertMarkPlaceholders converts placeholder markers to <mark> tags.
func ConvertMarkPlaceholders(content string) string {
	return strings.ReplaceAll(
		strings.ReplaceAll(content, MarkStartPlaceholder, "<mark>"),
		MarkEndPlaceholder, "</mark>",
	)
}

// Compile-time interface check.
var _ MarkdownPreprocessor = (*BodyPreprocessor)(nil)
