package view

import (
	"fmt"
	"strings"

	pongo2 "github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-pages/pkg/interfaces"
)

// Pongo2Renderer implements interfaces.TemplateRenderer over a template
// directory using the pongo2 engine (django template syntax).
type Pongo2Renderer struct {
	set            *pongo2.TemplateSet
	keepWhitespace bool
}

// NewPongo2Renderer constructs a renderer rooted at basePath. When
// keepWhitespace is false, rendered output has leading and trailing
// whitespace trimmed.
func NewPongo2Renderer(basePath string, keepWhitespace bool) (*Pongo2Renderer, error) {
	loader, err := pongo2.NewLocalFileSystemLoader(basePath)
	if err != nil {
		return nil, fmt.Errorf("view: template loader for %s: %w", basePath, err)
	}

	return &Pongo2Renderer{
		set:            pongo2.NewSet("go-pages", loader),
		keepWhitespace: keepWhitespace,
	}, nil
}

// Render resolves name relative to the template root and executes it.
func (r *Pongo2Renderer) Render(name string, data any) (string, error) {
	tpl, err := r.set.FromCache(name)
	if err != nil {
		return "", fmt.Errorf("view: load template %s: %w", name, err)
	}
	return r.execute(tpl, data)
}

// RenderString compiles templateContent in place and executes it.
func (r *Pongo2Renderer) RenderString(templateContent string, data any) (string, error) {
	tpl, err := r.set.FromString(templateContent)
	if err != nil {
		return "", fmt.Errorf("view: compile template string: %w", err)
	}
	return r.execute(tpl, data)
}

func (r *Pongo2Renderer) execute(tpl *pongo2.Template, data any) (string, error) {
	out, err := tpl.Execute(toContext(data))
	if err != nil {
		return "", fmt.Errorf("view: execute template: %w", err)
	}
	if !r.keepWhitespace {
		out = strings.TrimSpace(out)
	}
	return out, nil
}

func toContext(data any) pongo2.Context {
	switch v := data.(type) {
	case pongo2.Context:
		return v
	case map[string]any:
		return pongo2.Context(v)
	case nil:
		return pongo2.Context{}
	default:
		return pongo2.Context{"data": v}
	}
}

var _ interfaces.TemplateRenderer = (*Pongo2Renderer)(nil)
