package resumy

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// templateRenderer abstracts theme template rendering.
type templateRenderer interface {
	Render(src string, doc Document) (string, error)
}

// Compile-time interface check.
var _ templateRenderer = (*htmlTemplateRenderer)(nil)

// htmlTemplateRenderer renders theme templates with html/template against
// the full document as context. Themes get a "markdown" function so
// free-text fields (summaries, highlights) can carry Markdown.
type htmlTemplateRenderer struct {
	md goldmark.Markdown
}

// newHTMLTemplateRenderer creates a renderer with GFM-flavored Markdown
// support.
func newHTMLTemplateRenderer() *htmlTemplateRenderer {
	return &htmlTemplateRenderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
		),
	}
}

// Render parses src as an html/template and executes it against doc.
// Returns ErrTemplateRender when the template is malformed or references
// operations the engine rejects.
func (r *htmlTemplateRenderer) Render(src string, doc Document) (string, error) {
	tpl, err := template.New(TemplateFilename).Funcs(r.funcs()).Parse(src)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTemplateRender, err)
	}

	var buf bytes.Buffer
	if err := tpl.Execute(&buf, map[string]any(doc)); err != nil {
		return "", fmt.Errorf("%w: %v", ErrTemplateRender, err)
	}
	return buf.String(), nil
}

// funcs returns the function map exposed to theme templates.
func (r *htmlTemplateRenderer) funcs() template.FuncMap {
	return template.FuncMap{
		"markdown": r.renderMarkdown,
	}
}

// renderMarkdown converts a Markdown fragment to HTML for inline use in a
// theme. The result is marked safe because it comes from the user's own
// resume document, not from an untrusted source.
func (r *htmlTemplateRenderer) renderMarkdown(source any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(fmt.Sprintf("%v", source)), &buf); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMarkdownRender, err)
	}
	return template.HTML(buf.String()), nil // #nosec G203 -- resume content is author-controlled
}
