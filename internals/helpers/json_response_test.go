package helper

import "testing"

func TestBuildPaginationFromPage(t *testing.T) {
	tests := []struct {
		name       string
		total      int64
		page       int
		perPage    int
		wantPages  int
		wantNext   bool
		wantPrev   bool
	}{
		{"first of three", 50, 1, 20, 3, true, false},
		{"middle", 50, 2, 20, 3, true, true},
		{"last partial page", 50, 3, 20, 3, false, true},
		{"empty set still one page", 0, 1, 20, 1, false, false},
		{"bad inputs normalized", 10, 0, 0, 1, false, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := BuildPaginationFromPage(tc.total, tc.page, tc.perPage)
			if p.TotalPages != tc.wantPages {
				t.Errorf("TotalPages = %d, want %d", p.TotalPages, tc.wantPages)
			}
			if p.HasNext != tc.wantNext {
				t.Errorf("HasNext = %v, want %v", p.HasNext, tc.wantNext)
			}
			if p.HasPrev != tc.wantPrev {
				t.Errorf("HasPrev = %v, want %v", p.HasPrev, tc.wantPrev)
			}
		})
	}
}

func TestStatusToErrorCode(t *testing.T) {
	tests := []struct {
		status int
		want   string
	}{
		{400, "BAD_REQUEST"},
		{401, "UNAUTHORIZED"},
		{404, "NOT_FOUND"},
		{409, "CONFLICT"},
		{422, "VALIDATION_ERROR"},
		{500, "INTERNAL_ERROR"},
		{503, "INTERNAL_ERROR"},
		{418, "ERROR"},
	}
	for _, tc := range tests {
		if got := statusToErrorCode(tc.status); got != tc.want {
			t.Errorf("statusToErrorCode(%d) = %q, want %q", tc.status, got, tc.want)
		}
	}
}
