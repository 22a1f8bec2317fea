package datasource

import (
	"errors"

	goerrors "github.com/goliatone/go-errors"
)

var ErrBasePathRequired = errors.New("datasource: base path is required")

const (
	queryInvalidCode = "DATASOURCE_QUERY_INVALID"
	readFailedCode   = "DATASOURCE_READ_FAILED"
	parseFailedCode  = "DATASOURCE_PARSE_FAILED"
)

func wrapQueryError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, "datasource query invalid").
		WithTextCode(queryInvalidCode)
}

func wrapReadError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryExternal, "datasource read failed").
		WithTextCode(readFailedCode)
}

func wrapParseError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryBadInput, "datasource document parse failed").
		WithTextCode(parseFailedCode)
}
