package theme

import (
	"fmt"
	"html/template"
	"io"
	"net/url"
	"slices"
	"time"
	"unicode/utf8"
)

// Logical template names.
const (
	BaseTemplate  = "base.tpl"
	IndexTemplate = "index.tpl"
	PostTemplate  = "post.tpl"
	TagTemplate   = "tag.tpl"
)

// Renderer executes a theme's four templates.
//
// base.tpl is the page layout and declares a "main" block. index.tpl,
// post.tpl and tag.tpl each call the layout and redefine "main":
//
//	{{template "base.tpl" .}}
//	{{define "main"}}...{{end}}
//
// Each page template is parsed into its own clone of the layout so the
// "main" overrides never collide.
type Renderer struct {
	templates map[string]*template.Template
}

// DefaultFuncs returns the functions available to every template:
//
//	date     formats a time.Time as YYYY-MM-DD
//	safeHTML marks a string as trusted HTML
//	tagURL   returns the page URL for a tag name
func DefaultFuncs() template.FuncMap {
	return template.FuncMap{
		"date": func(t time.Time) string {
			return t.Format(time.DateOnly)
		},
		"safeHTML": func(s string) template.HTML {
			return template.HTML(s) // #nosec G203 -- used by theme authors on trusted content
		},
		"tagURL": func(name string) string {
			return "/tags/" + url.PathEscape(name) + ".html"
		},
	}
}

// newRenderer parses the template buffers of b. Either all four parse or
// an error is returned.
func newRenderer(b *Bundle, funcs template.FuncMap) (*Renderer, error) {
	sources := make(map[string]string, 4)
	for _, e := range b.templateEntries() {
		name := templateName(e.path)
		if !utf8.Valid(*e.data) {
			return nil, fmt.Errorf("%w: %s", ErrInvalidUTF8, name)
		}
		sources[name] = string(*e.data)
	}

	base, err := template.New(BaseTemplate).Funcs(funcs).Parse(sources[BaseTemplate])
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrTemplateParse, BaseTemplate, err)
	}

	r := &Renderer{templates: map[string]*template.Template{BaseTemplate: base}}
	for _, name := range []string{IndexTemplate, PostTemplate, TagTemplate} {
		layout, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrTemplateParse, name, err)
		}
		page, err := layout.New(name).Parse(sources[name])
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrTemplateParse, name, err)
		}
		r.templates[name] = page
	}
	return r, nil
}

// templateName maps "templates/post.tpl" to "post.tpl".
func templateName(layoutPath string) string {
	return layoutPath[len(TemplatesDir)+1:]
}

// Render executes the named template with data and writes the page to w.
func (r *Renderer) Render(w io.Writer, name string, data any) error {
	tmpl, ok := r.templates[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownTemplate, name)
	}
	if err := tmpl.ExecuteTemplate(w, name, data); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrTemplateExec, name, err)
	}
	return nil
}

// Names returns the registered template names, sorted.
func (r *Renderer) Names() []string {
	names := make([]string, 0, len(r.templates))
	for name := range r.templates {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Has reports whether name is a registered template.
func (r *Renderer) Has(name string) bool {
	_, ok := r.templates[name]
	return ok
}
