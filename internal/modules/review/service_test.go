package review

import (
	"math"
	"testing"
)

func TestFoldRating(t *testing.T) {
	tests := []struct {
		name       string
		rating     float64
		count      int
		added      int
		wantRating float64
		wantCount  int
	}{
		{"first review", 0, 0, 10, 10, 1},
		{"second review averages", 10, 1, 8, 9, 2},
		{"third review averages", 9, 2, 6, 8, 3},
		{"negative count treated as zero", 5, -1, 6, 6, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotRating, gotCount := foldRating(tt.rating, tt.count, tt.added)
			if math.Abs(gotRating-tt.wantRating) > 1e-9 {
				t.Errorf("rating = %v, want %v", gotRating, tt.wantRating)
			}
			if gotCount != tt.wantCount {
				t.Errorf("count = %d, want %d", gotCount, tt.wantCount)
			}
		})
	}
}

func TestFoldRatingSequenceMatchesAverage(t *testing.T) {
	// Folding [10, 8, 6] one at a time must land on the plain average 8.
	rating, count := 0.0, 0
	for _, r := range []int{10, 8, 6} {
		rating, count = foldRating(rating, count, r)
	}
	if rating != 8 || count != 3 {
		t.Errorf("got rating=%v count=%d, want rating=8 count=3", rating, count)
	}
}
