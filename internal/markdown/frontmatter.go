package markdown

import (
	"bytes"
	"fmt"

	"github.com/adrg/frontmatter"
)

// ParseFrontMatter extracts metadata and Markdown body content from the
// provided source bytes. It returns the attribute mapping declared by the
// document's front matter, the body without delimiters, and any error
// encountered. Malformed YAML propagates an error; a document without a
// front-matter block yields an empty mapping and the full source as body.
func ParseFrontMatter(source []byte) (map[string]any, []byte, error) {
	attributes := map[string]any{}

	body, err := frontmatter.Parse(bytes.NewReader(source), &attributes)
	if err != nil {
		return nil, nil, fmt.Errorf("parse front matter: %w", err)
	}

	return normalizeMap(attributes), body, nil
}

// normalizeMap rewrites the map[any]any values yaml.v2 produces for nested
// blocks into map[string]any so attribute paths stay addressable by string key.
func normalizeMap(input map[string]any) map[string]any {
	if input == nil {
		return map[string]any{}
	}
	for key, value := range input {
		input[key] = normalizeValue(value)
	}
	return input
}

func normalizeValue(value any) any {
	switch v := value.(type) {
	case map[any]any:
		out := make(map[string]any, len(v))
		for key, val := range v {
			out[fmt.Sprint(key)] = normalizeValue(val)
		}
		return out
	case map[string]any:
		return normalizeMap(v)
	case []any:
		for i, val := range v {
			v[i] = normalizeValue(val)
		}
		return v
	default:
		return v
	}
}
