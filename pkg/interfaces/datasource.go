package interfaces

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Record is one parsed source document plus its rendered body. Records are
// built once at load time and never mutated afterwards; pipeline stages
// produce new slices (and, for projection, new records) instead of editing
// in place.
type Record struct {
	Meta       RecordMeta     `json:"meta"`
	Attributes map[string]any `json:"attributes"`
	Original   string         `json:"original"`
	Content    string         `json:"content"`
	HTML       string         `json:"html"`
}

// RecordMeta identifies the source file a record was built from.
type RecordMeta struct {
	Path      string `json:"path"`
	Handle    string `json:"handle"`
	Extension string `json:"extension"`
}

// Sort directions understood by the pipeline. Any other value leaves the
// ascending order produced by the sort untouched.
const (
	SortAscending  = 1
	SortDescending = -1
)

// SortField names an attribute to sort by and the direction to apply.
// Declaration order matters: later fields dominate the final ordering.
type SortField struct {
	Field     string `json:"field"`
	Direction int    `json:"direction"`
}

// Query describes a single load request. It is read-only for the duration of
// the load.
type Query struct {
	Sort   []SortField    `json:"sort,omitempty"`
	Search map[string]any `json:"search,omitempty"`
	Filter map[string]any `json:"filter,omitempty"`
	Fields []string       `json:"fields,omitempty"`
	Count  int            `json:"count,omitempty"`
	Page   int            `json:"page,omitempty"`
}

// Validate ensures paging inputs are usable before a load begins.
func (q Query) Validate() error {
	return validation.ValidateStruct(&q,
		validation.Field(&q.Count, validation.Min(0)),
		validation.Field(&q.Page, validation.Min(0)),
	)
}

// Pagination carries page metadata derived from {page, limit, totalCount}.
// The shape is a stable contract consumed by view layers; PrevPage and
// NextPage are zero when no such page exists.
type Pagination struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	TotalCount int  `json:"total_count"`
	TotalPages int  `json:"total_pages"`
	HasPrev    bool `json:"has_prev"`
	HasNext    bool `json:"has_next"`
	PrevPage   int  `json:"prev_page,omitempty"`
	NextPage   int  `json:"next_page,omitempty"`
}

// ResultSet is the envelope returned by a load. Pagination is nil when the
// query did not request a page slice.
type ResultSet struct {
	Results    []Record    `json:"results"`
	Pagination *Pagination `json:"pagination"`
}

// Datasource loads records matching a query from an underlying source.
type Datasource interface {
	Load(ctx context.Context, query Query) (*ResultSet, error)
}

// ParseOptions tune how Markdown bodies are rendered to HTML.
type ParseOptions struct {
	Extensions []string
	HardWraps  bool
	SafeMode   bool
	Sanitize   bool
}

// MarkdownParser renders Markdown source into HTML markup.
type MarkdownParser interface {
	Parse(markdown []byte) ([]byte, error)
	ParseWithOptions(markdown []byte, opts ParseOptions) ([]byte, error)
}
