package datasource

import (
	"reflect"

	"github.com/spf13/cast"

	"github.com/goliatone/go-pages/pkg/interfaces"
)

// Matches reports whether every key/value pair in predicate equals the
// corresponding entry in fields. Keys missing from fields fail the match;
// an empty predicate matches everything.
func Matches(fields map[string]any, predicate map[string]any) bool {
	for key, want := range predicate {
		got, ok := fields[key]
		if !ok {
			return false
		}
		if !scalarEqual(got, want) {
			return false
		}
	}
	return true
}

// MatchesRecord applies a predicate against a record's addressable top-level
// fields (meta and content fields, not attributes).
func MatchesRecord(record interfaces.Record, predicate map[string]any) bool {
	for key, want := range predicate {
		got, ok := recordField(record, key)
		if !ok {
			return false
		}
		if !scalarEqual(got, want) {
			return false
		}
	}
	return true
}

// recordField resolves the top-level fields a search predicate can address.
func recordField(record interfaces.Record, key string) (any, bool) {
	switch key {
	case "path":
		return record.Meta.Path, true
	case "handle":
		return record.Meta.Handle, true
	case "extension":
		return record.Meta.Extension, true
	case "original":
		return record.Original, true
	case "content":
		return record.Content, true
	case "html":
		return record.HTML, true
	}
	return nil, false
}

// scalarEqual compares values structurally, with one widening rule: numbers
// compare by value across widths so YAML integers match caller-supplied
// floats and vice versa.
func scalarEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if reflect.DeepEqual(a, b) {
		return true
	}
	if isNumber(a) && isNumber(b) {
		return cast.ToFloat64(a) == cast.ToFloat64(b)
	}
	return false
}

func isNumber(value any) bool {
	switch value.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return true
	}
	return false
}
