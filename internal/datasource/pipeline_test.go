package datasource

import (
	"fmt"
	"testing"

	"github.com/goliatone/go-pages/pkg/interfaces"
)

func record(handle string, attributes map[string]any) interfaces.Record {
	return interfaces.Record{
		Meta: interfaces.RecordMeta{
			Path:      handle + ".md",
			Handle:    handle,
			Extension: "md",
		},
		Attributes: attributes,
	}
}

func handles(records []interfaces.Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Meta.Handle
	}
	return out
}

func assertOrder(t *testing.T, records []interfaces.Record, want ...string) {
	t.Helper()

	got := handles(records)
	if len(got) != len(want) {
		t.Fatalf("result length %d, want %d (%v)", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order mismatch at %d: got %v, want %v", i, got, want)
		}
	}
}

func TestApplySortByDate(t *testing.T) {
	records := []interfaces.Record{
		record("b", map[string]any{"date": "2021-01-01"}),
		record("a", map[string]any{"date": "2020-01-01"}),
		record("c", map[string]any{"date": "2022-01-01"}),
	}

	ascending, _ := Apply(records, interfaces.Query{
		Sort: []interfaces.SortField{{Field: "date", Direction: interfaces.SortAscending}},
	})
	assertOrder(t, ascending, "a", "b", "c")

	descending, _ := Apply(records, interfaces.Query{
		Sort: []interfaces.SortField{{Field: "date", Direction: interfaces.SortDescending}},
	})
	assertOrder(t, descending, "c", "b", "a")
}

func TestApplySortDescendingIsExactReverseOfAscending(t *testing.T) {
	records := []interfaces.Record{
		record("one", map[string]any{"rank": 3}),
		record("two", map[string]any{"rank": 1}),
		record("three", map[string]any{"rank": 2}),
		record("four", map[string]any{"rank": 1}),
	}

	ascending, _ := Apply(records, interfaces.Query{
		Sort: []interfaces.SortField{{Field: "rank", Direction: interfaces.SortAscending}},
	})
	descending, _ := Apply(records, interfaces.Query{
		Sort: []interfaces.SortField{{Field: "rank", Direction: interfaces.SortDescending}},
	})

	for i := range ascending {
		if ascending[i].Meta.Handle != descending[len(descending)-1-i].Meta.Handle {
			t.Fatalf("descending is not the exact reverse: asc %v desc %v",
				handles(ascending), handles(descending))
		}
	}
}

func TestApplySortUnknownDirectionKeepsAscending(t *testing.T) {
	records := []interfaces.Record{
		record("b", map[string]any{"rank": 2}),
		record("a", map[string]any{"rank": 1}),
	}

	results, _ := Apply(records, interfaces.Query{
		Sort: []interfaces.SortField{{Field: "rank", Direction: 5}},
	})
	assertOrder(t, results, "a", "b")
}

// Each sort field re-sorts the whole sequence and may reverse it, so later
// fields dominate the final ordering. The compounding is part of the
// contract.
func TestApplySortLaterFieldsDominate(t *testing.T) {
	records := []interfaces.Record{
		record("a", map[string]any{"group": "x", "rank": 2}),
		record("b", map[string]any{"group": "y", "rank": 1}),
		record("c", map[string]any{"group": "x", "rank": 1}),
	}

	results, _ := Apply(records, interfaces.Query{
		Sort: []interfaces.SortField{
			{Field: "group", Direction: interfaces.SortAscending},
			{Field: "rank", Direction: interfaces.SortAscending},
		},
	})

	// rank sorts last: stable order within equal ranks comes from the prior
	// group sort, so c (x,1) precedes b (y,1).
	assertOrder(t, results, "c", "b", "a")
}

func TestApplySearchAndFilterComposeAsAND(t *testing.T) {
	records := []interfaces.Record{
		record("a", map[string]any{"status": "published"}),
		record("b", map[string]any{"status": "draft"}),
		record("c", map[string]any{"status": "published"}),
	}

	results, _ := Apply(records, interfaces.Query{
		Search: map[string]any{"extension": "md", "handle": "a"},
		Filter: map[string]any{"status": "published"},
	})
	assertOrder(t, results, "a")

	// A record passing search but failing filter drops out.
	results, _ = Apply(records, interfaces.Query{
		Search: map[string]any{"handle": "b"},
		Filter: map[string]any{"status": "published"},
	})
	if len(results) != 0 {
		t.Fatalf("expected no results, got %v", handles(results))
	}
}

func TestApplyPagination(t *testing.T) {
	records := make([]interfaces.Record, 0, 25)
	for i := 0; i < 25; i++ {
		records = append(records, record(fmt.Sprintf("r%02d", i), map[string]any{"idx": i}))
	}

	results, pagination := Apply(records, interfaces.Query{
		Sort:  []interfaces.SortField{{Field: "idx", Direction: interfaces.SortAscending}},
		Count: 10,
		Page:  2,
	})

	if len(results) != 10 {
		t.Fatalf("expected 10 results, got %d", len(results))
	}
	if results[0].Meta.Handle != "r10" || results[9].Meta.Handle != "r19" {
		t.Fatalf("expected records [10,20), got %v", handles(results))
	}

	if pagination == nil {
		t.Fatalf("expected pagination metadata")
	}
	if pagination.TotalCount != 25 {
		t.Fatalf("TotalCount = %d, want 25", pagination.TotalCount)
	}
	if pagination.TotalPages != 3 {
		t.Fatalf("TotalPages = %d, want 3", pagination.TotalPages)
	}
	if !pagination.HasPrev || !pagination.HasNext {
		t.Fatalf("page 2 of 3 has both neighbours: %+v", pagination)
	}
}

func TestApplyPaginationPastEnd(t *testing.T) {
	records := []interfaces.Record{
		record("a", nil),
		record("b", nil),
	}

	results, pagination := Apply(records, interfaces.Query{Count: 10, Page: 5})
	if len(results) != 0 {
		t.Fatalf("expected empty page past the end, got %v", handles(results))
	}
	if pagination.TotalCount != 2 {
		t.Fatalf("TotalCount = %d, want 2", pagination.TotalCount)
	}
}

func TestApplyWithoutCountSkipsPagination(t *testing.T) {
	records := []interfaces.Record{record("a", nil), record("b", nil)}

	results, pagination := Apply(records, interfaces.Query{Page: 2})
	if pagination != nil {
		t.Fatalf("pagination requires count, got %+v", pagination)
	}
	if len(results) != 2 {
		t.Fatalf("expected all records, got %d", len(results))
	}
}

// Metadata reflects the filtered total, captured before the page slice.
func TestApplyMetadataUsesPostFilterCount(t *testing.T) {
	records := []interfaces.Record{
		record("a", map[string]any{"status": "published"}),
		record("b", map[string]any{"status": "draft"}),
		record("c", map[string]any{"status": "published"}),
	}

	results, pagination := Apply(records, interfaces.Query{
		Filter: map[string]any{"status": "published"},
		Count:  1,
		Page:   1,
	})

	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if pagination.TotalCount != 2 {
		t.Fatalf("TotalCount = %d, want post-filter 2", pagination.TotalCount)
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	records := []interfaces.Record{
		record("b", map[string]any{"rank": 2}),
		record("a", map[string]any{"rank": 1}),
	}

	Apply(records, interfaces.Query{
		Sort:   []interfaces.SortField{{Field: "rank", Direction: interfaces.SortAscending}},
		Fields: []string{"rank"},
	})

	if records[0].Meta.Handle != "b" || records[1].Meta.Handle != "a" {
		t.Fatalf("input slice was reordered: %v", handles(records))
	}
	if records[0].Attributes["rank"] != 2 {
		t.Fatalf("input record was mutated: %#v", records[0].Attributes)
	}
}
