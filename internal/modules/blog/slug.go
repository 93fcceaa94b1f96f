package blog

import (
	"strconv"
	"strings"
	"time"

	"github.com/gosimple/slug"
)

// wordsPerMinute is the reading-speed assumption behind readTime.
const wordsPerMinute = 200

// slugify derives a URL slug from a post title.
func slugify(title string) string {
	return slug.Make(title)
}

// collisionSlug disambiguates a taken slug with a millisecond timestamp.
func collisionSlug(base string, now time.Time) string {
	return base + "-" + strconv.FormatInt(now.UnixMilli(), 10)
}

// readTime estimates reading minutes from the word count, rounding up.
func readTime(content string) int {
	words := len(strings.Fields(content))
	return (words + wordsPerMinute - 1) / wordsPerMinute
}

// joinTags flattens the tag list to the stored comma-delimited form.
func joinTags(tags []string) string {
	cleaned := make([]string, 0, len(tags))
	for _, tag := range tags {
		if t := strings.TrimSpace(tag); t != "" {
			cleaned = append(cleaned, t)
		}
	}
	return strings.Join(cleaned, ",")
}

// splitTags expands the stored comma-delimited tags back to a list.
func splitTags(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{}
	}
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		if t := strings.TrimSpace(part); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
