// Package pages loads Markdown documents with YAML front matter from a
// directory, runs them through a filter/sort/paginate/projection pipeline,
// and renders the results through a template engine with named
// post-processing transforms.
package pages

import (
	"fmt"

	"github.com/goliatone/go-pages/internal/datasource"
	"github.com/goliatone/go-pages/internal/logging"
	"github.com/goliatone/go-pages/internal/logging/gologger"
	"github.com/goliatone/go-pages/internal/markdown"
	"github.com/goliatone/go-pages/internal/view"
	"github.com/goliatone/go-pages/pkg/interfaces"
)

// Record exports the parsed document contract.
type Record = interfaces.Record

// RecordMeta exports the record source metadata.
type RecordMeta = interfaces.RecordMeta

// Query exports the per-load request contract.
type Query = interfaces.Query

// SortField exports one sort declaration.
type SortField = interfaces.SortField

// ResultSet exports the load result envelope.
type ResultSet = interfaces.ResultSet

// Pagination exports the page metadata contract.
type Pagination = interfaces.Pagination

// PostProcessor exports the render transform contract.
type PostProcessor = interfaces.PostProcessor

// TemplateRenderer exports the template engine contract.
type TemplateRenderer = interfaces.TemplateRenderer

// Datasource exports the record loading contract.
type Datasource = interfaces.Datasource

// Sort directions re-exported for callers building queries.
const (
	SortAscending  = interfaces.SortAscending
	SortDescending = interfaces.SortDescending
)

// Module is the top level runtime façade wiring the datasource and view
// layers from a single configuration struct.
type Module struct {
	cfg        Config
	provider   interfaces.LoggerProvider
	datasource *datasource.Service
	views      *view.View
}

// Option customises module construction.
type Option func(*moduleOptions)

type moduleOptions struct {
	provider   interfaces.LoggerProvider
	renderer   interfaces.TemplateRenderer
	parser     interfaces.MarkdownParser
	processors map[string]interfaces.PostProcessor
}

// WithLoggerProvider overrides the logger provider built from configuration.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(o *moduleOptions) {
		o.provider = provider
	}
}

// WithRenderer supplies a template renderer, replacing the pongo2 renderer
// the module would otherwise build from ViewConfig.
func WithRenderer(renderer interfaces.TemplateRenderer) Option {
	return func(o *moduleOptions) {
		o.renderer = renderer
	}
}

// WithMarkdownParser overrides the goldmark parser.
func WithMarkdownParser(parser interfaces.MarkdownParser) Option {
	return func(o *moduleOptions) {
		o.parser = parser
	}
}

// WithProcessor registers a named post-processor during construction.
func WithProcessor(name string, fn interfaces.PostProcessor) Option {
	return func(o *moduleOptions) {
		if o.processors == nil {
			o.processors = map[string]interfaces.PostProcessor{}
		}
		o.processors[name] = fn
	}
}

// New constructs the module from the provided configuration.
func New(cfg Config, opts ...Option) (*Module, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("pages config: %w", err)
	}

	options := moduleOptions{}
	for _, opt := range opts {
		opt(&options)
	}

	provider := options.provider
	if provider == nil {
		built, err := buildLoggerProvider(cfg.Logging)
		if err != nil {
			return nil, err
		}
		provider = built
	}

	parser := options.parser
	if parser == nil {
		parser = markdown.NewGoldmarkParser(cfg.Datasource.Parser.toParseOptions())
	}

	ds, err := datasource.NewService(datasource.Config{
		BasePath:  cfg.Datasource.BasePath,
		Extension: cfg.Datasource.Extension,
		Parser:    cfg.Datasource.Parser.toParseOptions(),
	}, parser, logging.DatasourceLogger(provider))
	if err != nil {
		return nil, err
	}

	module := &Module{
		cfg:        cfg,
		provider:   provider,
		datasource: ds,
	}

	renderer := options.renderer
	if renderer == nil && cfg.View.TemplatePath != "" {
		renderer, err = view.NewPongo2Renderer(cfg.View.TemplatePath, cfg.View.KeepWhitespace)
		if err != nil {
			return nil, err
		}
	}

	if renderer != nil {
		registry := view.NewRegistry()
		for name, fn := range options.processors {
			if err := registry.Register(name, fn); err != nil {
				return nil, err
			}
		}

		module.views, err = view.New(renderer, registry, logging.ViewLogger(provider))
		if err != nil {
			return nil, err
		}
	}

	return module, nil
}

// Datasource returns the configured record loading service.
func (m *Module) Datasource() Datasource {
	return m.datasource
}

// Views returns the configured view layer, or nil when no renderer was
// configured.
func (m *Module) Views() *view.View {
	return m.views
}

func buildLoggerProvider(cfg LoggingConfig) (interfaces.LoggerProvider, error) {
	switch cfg.Provider {
	case "", "noop":
		return nil, nil
	case "gologger":
		return gologger.NewProvider(gologger.Config{
			Level:     cfg.Level,
			Format:    cfg.Format,
			AddSource: cfg.AddSource,
			Focus:     cfg.Focus,
		})
	default:
		return nil, fmt.Errorf("pages config: unknown logging provider %q", cfg.Provider)
	}
}
