package datasource

import (
	"sort"

	"github.com/goliatone/go-pages/pkg/interfaces"
)

// Apply runs the query pipeline over records in its fixed order:
// search, filter, sort, paginate, metadata, projection. The input slice is
// never mutated; every stage produces a fresh sequence.
func Apply(records []interfaces.Record, query interfaces.Query) ([]interfaces.Record, *interfaces.Pagination) {
	results := applySearch(records, query.Search)
	results = applyFilter(results, query.Filter)
	results = applySort(results, query.Sort)

	var pagination *interfaces.Pagination
	if query.Count > 0 {
		page := query.Page
		if page < 1 {
			page = 1
		}
		// Metadata reflects the pre-slice total, so build it before slicing.
		pagination = BuildPagination(page, query.Count, len(results))
		results = slicePage(results, page, query.Count)
	}

	return Project(results, query.Fields), pagination
}

// applySearch keeps records whose top-level fields satisfy the predicate.
func applySearch(records []interfaces.Record, predicate map[string]any) []interfaces.Record {
	if len(predicate) == 0 {
		return copyRecords(records)
	}

	out := make([]interfaces.Record, 0, len(records))
	for _, record := range records {
		if MatchesRecord(record, predicate) {
			out = append(out, record)
		}
	}
	return out
}

// applyFilter keeps records whose attributes satisfy the predicate.
func applyFilter(records []interfaces.Record, predicate map[string]any) []interfaces.Record {
	if len(predicate) == 0 {
		return records
	}

	out := make([]interfaces.Record, 0, len(records))
	for _, record := range records {
		if Matches(record.Attributes, predicate) {
			out = append(out, record)
		}
	}
	return out
}

// applySort sorts records by each declared field in turn. Every field applies
// a stable ascending sort on its tagged key, then reverses the whole sequence
// when the direction is SortDescending; any other direction leaves the
// ascending order in place. Because each field re-sorts the entire sequence,
// later fields dominate the final ordering.
func applySort(records []interfaces.Record, specs []interfaces.SortField) []interfaces.Record {
	if len(specs) == 0 {
		return records
	}

	out := copyRecords(records)

	for _, spec := range specs {
		if spec.Field == "" {
			continue
		}

		keys := make([]sortKey, len(out))
		for i, record := range out {
			keys[i] = makeSortKey(record.Attributes[spec.Field])
		}

		indexes := make([]int, len(out))
		for i := range indexes {
			indexes[i] = i
		}
		sort.SliceStable(indexes, func(i, j int) bool {
			return keys[indexes[i]].compare(keys[indexes[j]]) < 0
		})

		sorted := make([]interfaces.Record, len(out))
		for i, idx := range indexes {
			sorted[i] = out[idx]
		}

		if spec.Direction == interfaces.SortDescending {
			reverse(sorted)
		}
		out = sorted
	}

	return out
}

// slicePage returns the [offset, offset+count) window of records, clamped to
// the sequence bounds.
func slicePage(records []interfaces.Record, page, count int) []interfaces.Record {
	offset := (page - 1) * count
	if offset >= len(records) {
		return []interfaces.Record{}
	}

	end := offset + count
	if end > len(records) {
		end = len(records)
	}

	return append([]interfaces.Record(nil), records[offset:end]...)
}

func copyRecords(records []interfaces.Record) []interfaces.Record {
	return append([]interfaces.Record(nil), records...)
}

func reverse(records []interfaces.Record) {
	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}
}
