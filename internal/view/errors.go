package view

import (
	"errors"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
)

var (
	ErrRendererRequired  = errors.New("view: template renderer is required")
	ErrProcessorName     = errors.New("view: processor name is required")
	ErrProcessorNil      = errors.New("view: processor callable is required")
	ErrProcessorConflict = errors.New("view: processor already registered")
	ErrProcessorUnknown  = errors.New("view: processor not registered")
)

const (
	renderFailedCode    = "VIEW_RENDER_FAILED"
	processorFailedCode = "VIEW_PROCESSOR_FAILED"
)

// wrapRenderError marks template engine failures as internal server errors so
// hosts can map them onto a 500 response.
func wrapRenderError(err error, template string) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryInternal, fmt.Sprintf("template %s render failed", template)).
		WithTextCode(renderFailedCode)
}

// wrapProcessorError surfaces a failing post-processor verbatim, tagged with
// the processor that raised it.
func wrapProcessorError(err error, processor string) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryInternal, fmt.Sprintf("post-processor %s failed", processor)).
		WithTextCode(processorFailedCode)
}
