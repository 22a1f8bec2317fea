package pages

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/goliatone/go-pages/pkg/interfaces"
)

var extensionPattern = regexp.MustCompile(`^[A-Za-z0-9]+$`)

// Config aggregates the options for the datasource, the view layer, and
// logging. It is passed explicitly at construction time; the module keeps no
// process-wide mutable configuration.
type Config struct {
	Datasource DatasourceConfig
	View       ViewConfig
	Logging    LoggingConfig
}

// DatasourceConfig controls document discovery and Markdown rendering.
type DatasourceConfig struct {
	// BasePath is the directory containing the source documents.
	BasePath string
	// Extension filters discovered files by name suffix (defaults to "md").
	Extension string
	// Parser holds default Markdown render options.
	Parser MarkdownParserConfig
}

// MarkdownParserConfig mirrors interfaces.ParseOptions with plain fields so
// hosts can populate it from their own configuration layer.
type MarkdownParserConfig struct {
	Extensions []string
	HardWraps  bool
	SafeMode   bool
	Sanitize   bool
}

// ViewConfig controls the optional template rendering layer. When
// TemplatePath is empty no renderer is constructed and Views() returns nil.
type ViewConfig struct {
	TemplatePath   string
	KeepWhitespace bool
}

// LoggingConfig selects and tunes the logger provider.
type LoggingConfig struct {
	// Provider selects the logging backend: "noop" (default) or "gologger".
	Provider  string
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// DefaultConfig returns a configuration with the documented defaults applied.
func DefaultConfig() Config {
	return Config{
		Datasource: DatasourceConfig{
			Extension: "md",
		},
		Logging: LoggingConfig{
			Provider: "noop",
		},
	}
}

// Validate checks the configuration before the module is constructed.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Datasource),
		validation.Field(&c.Logging),
	)
}

// Validate ensures the datasource options are usable.
func (c DatasourceConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.BasePath, validation.Required.Error("base path is required")),
		validation.Field(&c.Extension,
			validation.Required.Error("extension is required"),
			validation.Match(extensionPattern).Error("extension must be alphanumeric"),
		),
	)
}

// Validate ensures the logging provider is one the module can construct.
func (c LoggingConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Provider, validation.In("", "noop", "gologger")),
	)
}

func (c MarkdownParserConfig) toParseOptions() interfaces.ParseOptions {
	return interfaces.ParseOptions{
		Extensions: append([]string(nil), c.Extensions...),
		HardWraps:  c.HardWraps,
		SafeMode:   c.SafeMode,
		Sanitize:   c.Sanitize,
	}
}
