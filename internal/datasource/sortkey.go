package datasource

import (
	"strings"
	"time"

	"github.com/spf13/cast"
)

// keyKind tags the comparison domain of a sort key. Keys of different kinds
// order by kind rank (date < number < text < missing), which makes the
// mixed-type comparison a deliberate branch instead of implicit coercion.
// The cross-kind ordering is best effort, not a strict total order over the
// underlying values.
type keyKind int

const (
	kindDate keyKind = iota
	kindNumber
	kindText
	kindMissing
)

// sortKey is the tagged comparison key derived from one attribute value.
type sortKey struct {
	kind keyKind
	date int64
	num  float64
	text string
}

// dateLayouts are tried in order when deciding whether a string value is a
// calendar date. yaml.v2 leaves timestamps as strings, so this is the common
// path for front-matter dates.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02",
}

// makeSortKey derives the comparison key for a single attribute value.
// Values that parse as calendar dates compare numerically by timestamp,
// numbers by value, and everything else by string form.
func makeSortKey(value any) sortKey {
	if value == nil {
		return sortKey{kind: kindMissing}
	}

	if t, ok := value.(time.Time); ok {
		return sortKey{kind: kindDate, date: t.UnixMilli()}
	}

	if isNumber(value) {
		return sortKey{kind: kindNumber, num: cast.ToFloat64(value)}
	}

	text, err := cast.ToStringE(value)
	if err != nil {
		return sortKey{kind: kindMissing}
	}

	if ts, ok := parseDate(text); ok {
		return sortKey{kind: kindDate, date: ts}
	}

	return sortKey{kind: kindText, text: text}
}

func parseDate(value string) (int64, bool) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return 0, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t.UnixMilli(), true
		}
	}
	return 0, false
}

// compare returns a negative value when k orders before other, zero when the
// keys rank equal, and a positive value otherwise.
func (k sortKey) compare(other sortKey) int {
	if k.kind != other.kind {
		return int(k.kind) - int(other.kind)
	}

	switch k.kind {
	case kindDate:
		switch {
		case k.date < other.date:
			return -1
		case k.date > other.date:
			return 1
		}
		return 0
	case kindNumber:
		switch {
		case k.num < other.num:
			return -1
		case k.num > other.num:
			return 1
		}
		return 0
	case kindText:
		return strings.Compare(k.text, other.text)
	}
	return 0
}
