package search

import (
	"testing"
	"time"

	"github.com/geridir/core/internal/config"
)

func TestCachePolicyTTL(t *testing.T) {
	policy := NewCachePolicy(config.SearchCacheTTLs{BaseSeconds: 300, FilteredSeconds: 600})

	tests := []struct {
		name     string
		specific bool
		page     int
		expect   time.Duration
	}{
		{"unfiltered first page", false, 1, 300 * time.Second},
		{"filtered first page", true, 1, 600 * time.Second},
		{"unfiltered deep page halves", false, 2, 150 * time.Second},
		{"filtered deep page halves", true, 3, 300 * time.Second},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := policy.TTL(tt.specific, tt.page); got != tt.expect {
				t.Errorf("TTL(%v, %d) = %v, want %v", tt.specific, tt.page, got, tt.expect)
			}
		})
	}
}

func TestCachePolicyHeaderValue(t *testing.T) {
	policy := NewCachePolicy(config.SearchCacheTTLs{BaseSeconds: 300, FilteredSeconds: 600})

	got := policy.HeaderValue(300 * time.Second)
	want := "s-maxage=300, max-age=150, stale-while-revalidate=600"
	if got != want {
		t.Errorf("HeaderValue = %q, want %q", got, want)
	}
}
