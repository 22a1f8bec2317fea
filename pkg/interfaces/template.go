package interfaces

// TemplateRenderer abstracts the template engine used by the view layer.
// Implementations resolve name relative to their configured template root.
type TemplateRenderer interface {
	Render(name string, data any) (string, error)
	RenderString(templateContent string, data any) (string, error)
}

// PostProcessor transforms rendered template output. It receives the original
// render data alongside the current output and returns the transformed output.
// Processors run in the order they are named; a returned error aborts the
// chain and the render produces no output.
type PostProcessor func(data any, output string) (string, error)
