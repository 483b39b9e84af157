package mdblog

import (
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/goliatone/go-slug"

	"github.com/alnah/go-mdblog/internal/post"
)

// tagsDir is the build subdirectory holding one page per tag.
const tagsDir = "tags"

// TagSummary describes one tag for templates.
type TagSummary struct {
	Name  string
	URL   string
	Count int

	file string // page path relative to the build dir, slash-separated
}

// collectTags groups visible posts by tag name. It returns the tags sorted
// by name and a name to URL map. Distinct names that slug to the same file
// get numeric suffixes in name order; no two tags share a file.
func collectTags(posts []*post.Post) ([]TagSummary, map[string]string) {
	counts := make(map[string]int)
	for _, p := range posts {
		if !p.Visible() {
			continue
		}
		seen := make(map[string]bool, len(p.Headers.Tags))
		for _, tag := range p.Headers.Tags {
			tag = strings.TrimSpace(tag)
			if tag == "" || seen[tag] {
				continue
			}
			seen[tag] = true
			counts[tag]++
		}
	}

	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	slices.Sort(names)

	used := make(map[string]bool, len(names))
	tags := make([]TagSummary, 0, len(names))
	urls := make(map[string]string, len(names))
	for _, name := range names {
		file := uniqueFile(tagSlug(name), used)
		used[file] = true

		summary := TagSummary{
			Name:  name,
			URL:   "/" + tagsDir + "/" + url.PathEscape(file) + ".html",
			Count: counts[name],
			file:  tagsDir + "/" + file + ".html",
		}
		tags = append(tags, summary)
		urls[name] = summary.URL
	}
	return tags, urls
}

// uniqueFile returns base, or base-N with the smallest N >= 2 not in used.
func uniqueFile(base string, used map[string]bool) string {
	if !used[base] {
		return base
	}
	for n := 2; ; n++ {
		if candidate := base + "-" + strconv.Itoa(n); !used[candidate] {
			return candidate
		}
	}
}

// tagSlug returns a file-safe name for a tag. Names the slug rules reduce
// to nothing (e.g. non-Latin scripts) keep their text with separators and
// leading dots removed.
func tagSlug(name string) string {
	if s, err := slug.Normalize(name); err == nil && s != "" {
		return s
	}
	safe := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', 0:
			return '-'
		}
		return r
	}, name)
	safe = strings.TrimLeft(safe, ".")
	if safe == "" {
		return "tag"
	}
	return safe
}

// lookupTagURL is the "tagURL" template function.
func (b *Blog) lookupTagURL(name string) string {
	if u, ok := b.tagURL[strings.TrimSpace(name)]; ok {
		return u
	}
	return "/" + tagsDir + "/" + url.PathEscape(tagSlug(name)) + ".html"
}
