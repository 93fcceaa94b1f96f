package blog

import (
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		title  string
		expect string
	}{
		{"Choosing a Care Residence", "choosing-a-care-residence"},
		{"  Trailing   Spaces  ", "trailing-spaces"},
		{"Cuidado geriátrico 101", "cuidado-geriatrico-101"},
	}
	for _, tt := range tests {
		if got := slugify(tt.title); got != tt.expect {
			t.Errorf("slugify(%q) = %q, want %q", tt.title, got, tt.expect)
		}
	}
}

func TestCollisionSlug(t *testing.T) {
	now := time.UnixMilli(1724000000000)
	got := collisionSlug("my-post", now)
	if got != "my-post-1724000000000" {
		t.Errorf("collisionSlug = %q, want my-post-1724000000000", got)
	}
}

func TestReadTime(t *testing.T) {
	tests := []struct {
		name   string
		words  int
		expect int
	}{
		{"empty content", 0, 0},
		{"single word rounds up", 1, 1},
		{"exactly one minute", 200, 1},
		{"just over one minute", 201, 2},
		{"five minutes", 1000, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content := strings.TrimSpace(strings.Repeat("word ", tt.words))
			if got := readTime(content); got != tt.expect {
				t.Errorf("readTime(%d words) = %d, want %d", tt.words, got, tt.expect)
			}
		})
	}
}

func TestTagsRoundTrip(t *testing.T) {
	joined := joinTags([]string{" care ", "", "alzheimer", "tips "})
	if joined != "care,alzheimer,tips" {
		t.Fatalf("joinTags = %q", joined)
	}
	if got := splitTags(joined); !reflect.DeepEqual(got, []string{"care", "alzheimer", "tips"}) {
		t.Errorf("splitTags = %v", got)
	}
	if got := splitTags(""); len(got) != 0 {
		t.Errorf("splitTags(\"\") = %v, want empty", got)
	}
}
