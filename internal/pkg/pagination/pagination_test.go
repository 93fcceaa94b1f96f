package pagination

import "testing"

func TestParseClamps(t *testing.T) {
	tests := []struct {
		name      string
		page      string
		limit     string
		wantPage  int
		wantLimit int
	}{
		{"defaults", "", "", 1, 10},
		{"garbage falls back", "abc", "xyz", 1, 10},
		{"zero and negative clamp", "0", "-5", 1, 10},
		{"valid values pass", "3", "25", 3, 25},
		{"limit capped", "1", "500", 1, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := Parse(tt.page, tt.limit)
			if q.Page != tt.wantPage || q.Limit != tt.wantLimit {
				t.Errorf("Parse(%q, %q) = {%d %d}, want {%d %d}",
					tt.page, tt.limit, q.Page, q.Limit, tt.wantPage, tt.wantLimit)
			}
		})
	}
}

func TestOffset(t *testing.T) {
	if got := (Query{Page: 1, Limit: 10}).Offset(); got != 0 {
		t.Errorf("first page offset = %d, want 0", got)
	}
	if got := (Query{Page: 4, Limit: 25}).Offset(); got != 75 {
		t.Errorf("offset = %d, want 75", got)
	}
}

func TestMeta(t *testing.T) {
	tests := []struct {
		name           string
		page, limit    int
		total          int64
		wantTotalPages int
		wantHasMore    bool
	}{
		{"empty set", 1, 10, 0, 0, false},
		{"exact fit", 2, 10, 20, 2, false},
		{"partial last page", 1, 10, 25, 3, true},
		{"last partial page", 3, 10, 25, 3, false},
		{"single row", 1, 10, 1, 1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := (Query{Page: tt.page, Limit: tt.limit}).Meta(tt.total)
			if meta.TotalPages != tt.wantTotalPages {
				t.Errorf("TotalPages = %d, want %d", meta.TotalPages, tt.wantTotalPages)
			}
			if meta.HasMore != tt.wantHasMore {
				t.Errorf("HasMore = %v, want %v", meta.HasMore, tt.wantHasMore)
			}
			if meta.Total != tt.total || meta.Page != tt.page || meta.Limit != tt.limit {
				t.Errorf("echo fields wrong: %+v", meta)
			}
		})
	}
}
