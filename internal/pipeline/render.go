package pipeline

// Renderer chains body preprocessing, Markdown conversion and placeholder
// finalization.
type Renderer struct {
	preprocessor MarkdownPreprocessor
	converter    HTMLConverter
}

// NewRenderer returns a Renderer backed by a GoldmarkConverter.
func NewRenderer(opts ...GoldmarkOption) *Renderer {
	return &Renderer{
		preprocessor: &BodyPreprocessor{},
		converter:    NewGoldmarkConverter(opts...),
	}
}

// NewRendererWith builds a Renderer from explicit stages. Nil stages fall
// back to the defaults.
func NewRendererWith(pre MarkdownPreprocessor, conv HTMLConverter) *Renderer {
	if pre == nil {
		pre = &BodyPreprocessor{}
	}
	if conv == nil {
		conv = NewGoldmarkConverter()
	}
	return &Renderer{preprocessor: pre, converter: conv}
}

// Render converts a post body to an HTML fragment.
func (r *Renderer) Render(body string) (string, error) {
	htmlContent, err := r.converter.ToHTML(r.preprocessor.PreprocessMarkdown(body))
	if err != nil {
		return "", err
	}
	return ConvertMarkPlaceholders(htmlContent), nil
}
