package datasource

import (
	"testing"
	"time"
)

func TestMakeSortKeyKinds(t *testing.T) {
	cases := []struct {
		name  string
		value any
		want  keyKind
	}{
		{"nil is missing", nil, kindMissing},
		{"time.Time is date", time.Date(2020, 3, 1, 0, 0, 0, 0, time.UTC), kindDate},
		{"date string is date", "2020-03-01", kindDate},
		{"rfc3339 string is date", "2020-03-01T10:30:00Z", kindDate},
		{"integer is number", 42, kindNumber},
		{"float is number", 4.2, kindNumber},
		{"plain string is text", "hello", kindText},
		{"not quite a date is text", "2020-13-99", kindText},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := makeSortKey(tc.value); got.kind != tc.want {
				t.Fatalf("makeSortKey(%#v).kind = %d, want %d", tc.value, got.kind, tc.want)
			}
		})
	}
}

func TestSortKeyDateComparesChronologically(t *testing.T) {
	earlier := makeSortKey("2020-01-01")
	later := makeSortKey("2021-01-01")

	if earlier.compare(later) >= 0 {
		t.Fatalf("expected 2020-01-01 to order before 2021-01-01")
	}

	// Lexically "2020-09-01" > "2020-10-01" would be false anyway, so use a
	// format where lexical and chronological order disagree.
	a := makeSortKey("2020/09/01")
	b := makeSortKey("2020/10/01")
	if a.compare(b) >= 0 {
		t.Fatalf("expected chronological comparison, not lexical")
	}
}

func TestSortKeyCrossKindRanking(t *testing.T) {
	date := makeSortKey("2020-01-01")
	number := makeSortKey(7)
	text := makeSortKey("zeta")
	missing := makeSortKey(nil)

	if date.compare(number) >= 0 {
		t.Fatalf("dates rank before numbers")
	}
	if number.compare(text) >= 0 {
		t.Fatalf("numbers rank before text")
	}
	if text.compare(missing) >= 0 {
		t.Fatalf("text ranks before missing values")
	}
}

func TestSortKeyNumberAndText(t *testing.T) {
	if makeSortKey(2).compare(makeSortKey(10)) >= 0 {
		t.Fatalf("numbers compare by value, not string form")
	}
	if makeSortKey("alpha").compare(makeSortKey("beta")) >= 0 {
		t.Fatalf("text compares lexically")
	}
	if makeSortKey("alpha").compare(makeSortKey("alpha")) != 0 {
		t.Fatalf("equal text compares equal")
	}
}
