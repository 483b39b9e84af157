package theme

// Theme file layout, relative to a theme directory, slash-separated.
const (
	FaviconFile  = "static/favicon.png"
	LogoFile     = "static/logo.png"
	MainCSSFile  = "static/main.css"
	MainJSFile   = "static/main.js"
	BaseFile     = "templates/base.tpl"
	IndexFile    = "templates/index.tpl"
	PostFile     = "templates/post.tpl"
	TagFile      = "templates/tag.tpl"
	StaticDir    = "static"
	TemplatesDir = "templates"
)

// Bundle holds the eight files that make up a theme.
type Bundle struct {
	Favicon []byte
	Logo    []byte
	MainCSS []byte
	MainJS  []byte
	Base    []byte
	Index   []byte
	Post    []byte
	Tag     []byte
}

// entry pairs a layout path with a pointer to its buffer in a Bundle.
type entry struct {
	path string
	data *[]byte
}

func (b *Bundle) staticEntries() []entry {
	return []entry{
		{FaviconFile, &b.Favicon},
		{LogoFile, &b.Logo},
		{MainCSSFile, &b.MainCSS},
		{MainJSFile, &b.MainJS},
	}
}

func (b *Bundle) templateEntries() []entry {
	return []entry{
		{BaseFile, &b.Base},
		{IndexFile, &b.Index},
		{PostFile, &b.Post},
		{TagFile, &b.Tag},
	}
}

func (b *Bundle) entries() []entry {
	return append(b.staticEntries(), b.templateEntries()...)
}

// Files returns every layout path in a fixed order.
func Files() []string {
	var b Bundle
	paths := make([]string, 0, 8)
	for _, e := range b.entries() {
		paths = append(paths, e.path)
	}
	return paths
}
