package datasource

import (
	"strings"

	"github.com/goliatone/go-pages/pkg/interfaces"
)

// Project reduces each record to the requested fields. Top-level names
// (path, handle, extension, original, content, html) carry over the matching
// record field; every other name is resolved as a dotted path into the
// record's attributes, preserving nesting in the projected copy. Fields the
// record does not have are skipped. An empty field list returns the input
// unchanged.
func Project(records []interfaces.Record, fields []string) []interfaces.Record {
	if len(fields) == 0 {
		return records
	}

	out := make([]interfaces.Record, len(records))
	for i, record := range records {
		out[i] = projectRecord(record, fields)
	}
	return out
}

func projectRecord(record interfaces.Record, fields []string) interfaces.Record {
	projected := interfaces.Record{Attributes: map[string]any{}}

	for _, field := range fields {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}

		switch field {
		case "path":
			projected.Meta.Path = record.Meta.Path
		case "handle":
			projected.Meta.Handle = record.Meta.Handle
		case "extension":
			projected.Meta.Extension = record.Meta.Extension
		case "original":
			projected.Original = record.Original
		case "content":
			projected.Content = record.Content
		case "html":
			projected.HTML = record.HTML
		default:
			parts := strings.Split(field, ".")
			if value, ok := lookupPath(record.Attributes, parts); ok {
				setPath(projected.Attributes, parts, value)
			}
		}
	}

	return projected
}

// lookupPath walks nested attribute maps along parts.
func lookupPath(attributes map[string]any, parts []string) (any, bool) {
	current := any(attributes)
	for _, part := range parts {
		node, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = node[part]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// setPath writes value into target at the nested key described by parts,
// creating intermediate maps as needed.
func setPath(target map[string]any, parts []string, value any) {
	for _, part := range parts[:len(parts)-1] {
		next, ok := target[part].(map[string]any)
		if !ok {
			next = map[string]any{}
			target[part] = next
		}
		target = next
	}
	target[parts[len(parts)-1]] = value
}
