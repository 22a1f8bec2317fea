package logging

import (
	"context"

	"github.com/goliatone/go-pages/pkg/interfaces"
)

const (
	rootModule       = "pages"
	datasourceModule = "pages.datasource"
	viewModule       = "pages.view"
)

// ModuleLogger returns a module-scoped logger, defaulting to a no-op
// implementation when no provider is supplied. The returned logger attaches
// the module identifier as structured context so downstream entries can be
// filtered predictably.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	return WithFields(logger, map[string]any{
		"module": module,
	})
}

// DatasourceLogger returns the logger namespace reserved for the datasource service.
func DatasourceLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, datasourceModule)
}

// ViewLogger returns the logger namespace reserved for the view layer.
func ViewLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, viewModule)
}

// NoOp returns a logger that drops every log entry. It satisfies the Logger
// contract so services can safely operate when logging is disabled.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ interfaces.Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) interfaces.Logger {
	return n
}
