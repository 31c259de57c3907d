package types

import (
	"testing"
)

func TestNewPaginationCeil(t *testing.T) {
	cases := []struct {
		name       string
		page       int
		limit      int
		total      int64
		totalPages int
	}{
		{"exact multiple", 1, 10, 100, 10},
		{"remainder rounds up", 2, 10, 101, 11},
		{"single partial page", 1, 10, 3, 1},
		{"empty result", 1, 10, 0, 0},
		{"limit one", 5, 1, 7, 7},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPagination(tc.page, tc.limit, tc.total)
			if p.TotalPages != tc.totalPages {
				t.Fatalf("totalPages = %d, want %d", p.TotalPages, tc.totalPages)
			}
			if p.Page != tc.page || p.Limit != tc.limit || p.Total != tc.total {
				t.Fatalf("pagination echoed %+v, want page=%d limit=%d total=%d", p, tc.page, tc.limit, tc.total)
			}
		})
	}
}

func TestPageParamsOffset(t *testing.T) {
	if off := (PageParams{Page: 1, Limit: 10}).Offset(); off != 0 {
		t.Fatalf("offset for first page = %d, want 0", off)
	}
	if off := (PageParams{Page: 3, Limit: 25}).Offset(); off != 50 {
		t.Fatalf("offset for page 3 = %d, want 50", off)
	}
}
