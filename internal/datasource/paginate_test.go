package datasource

import "testing"

func TestBuildPagination(t *testing.T) {
	cases := []struct {
		name       string
		page       int
		limit      int
		total      int
		totalPages int
		hasPrev    bool
		hasNext    bool
		prevPage   int
		nextPage   int
	}{
		{"middle page", 2, 10, 25, 3, true, true, 1, 3},
		{"first page", 1, 10, 25, 3, false, true, 0, 2},
		{"last page", 3, 10, 25, 3, true, false, 2, 0},
		{"exact fit", 2, 5, 10, 2, true, false, 1, 0},
		{"empty set", 1, 10, 0, 0, false, false, 0, 0},
		{"single page", 1, 50, 7, 1, false, false, 0, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			meta := BuildPagination(tc.page, tc.limit, tc.total)

			if meta.Page != tc.page || meta.Limit != tc.limit || meta.TotalCount != tc.total {
				t.Fatalf("identity fields mismatch: %+v", meta)
			}
			if meta.TotalPages != tc.totalPages {
				t.Fatalf("TotalPages = %d, want %d", meta.TotalPages, tc.totalPages)
			}
			if meta.HasPrev != tc.hasPrev || meta.HasNext != tc.hasNext {
				t.Fatalf("prev/next indicators mismatch: %+v", meta)
			}
			if meta.PrevPage != tc.prevPage || meta.NextPage != tc.nextPage {
				t.Fatalf("prev/next pages mismatch: %+v", meta)
			}
		})
	}
}

func TestBuildPaginationClampsPage(t *testing.T) {
	meta := BuildPagination(0, 10, 25)
	if meta.Page != 1 {
		t.Fatalf("page clamps to 1, got %d", meta.Page)
	}
}
