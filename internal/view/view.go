// Package view renders templates with result data and threads the raw output
// through a named chain of post-processors.
package view

import (
	"context"
	"fmt"

	"github.com/goliatone/go-pages/internal/logging"
	"github.com/goliatone/go-pages/pkg/interfaces"
)

// View couples a template renderer with the post-processor registry.
type View struct {
	renderer interfaces.TemplateRenderer
	registry *Registry
	logger   interfaces.Logger
}

// New constructs a view. The registry may be nil when no processors are in
// use; the renderer is mandatory.
func New(renderer interfaces.TemplateRenderer, registry *Registry, logger interfaces.Logger) (*View, error) {
	if renderer == nil {
		return nil, ErrRendererRequired
	}
	if registry == nil {
		registry = NewRegistry()
	}
	if logger == nil {
		logger = logging.NoOp()
	}

	return &View{
		renderer: renderer,
		registry: registry,
		logger:   logger,
	}, nil
}

// Processors exposes the registry so hosts can register transforms during
// setup.
func (v *View) Processors() *Registry {
	return v.registry
}

// Render executes the named template with data, then applies each named
// post-processor to the output in sequence. It returns the processed output
// alongside the raw template output. Any failure, from the engine or from a
// processor, aborts the render: both outputs come back empty and the error
// carries an internal (500-equivalent) marker.
func (v *View) Render(ctx context.Context, template string, data any, processors ...string) (string, string, error) {
	if err := ctx.Err(); err != nil {
		return "", "", err
	}

	raw, err := v.renderer.Render(template, data)
	if err != nil {
		return "", "", wrapRenderError(err, template)
	}

	processed := raw
	for _, name := range processors {
		fn, ok := v.registry.Get(name)
		if !ok {
			return "", "", wrapProcessorError(fmt.Errorf("%w: %s", ErrProcessorUnknown, name), name)
		}

		processed, err = fn(data, processed)
		if err != nil {
			return "", "", wrapProcessorError(err, name)
		}
	}

	v.logger.Debug("view render complete",
		"template", template,
		"processors", len(processors),
	)

	return processed, raw, nil
}
