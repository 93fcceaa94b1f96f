package search

import (
	"fmt"
	"time"

	"github.com/geridir/core/internal/config"
)

// CachePolicy decides the freshness window of a search response. Filtered
// requests cache longer; pages beyond the first cache for half the window.
type CachePolicy struct {
	base     time.Duration
	filtered time.Duration
}

func NewCachePolicy(cfg config.SearchCacheTTLs) CachePolicy {
	return CachePolicy{
		base:     time.Duration(cfg.BaseSeconds) * time.Second,
		filtered: time.Duration(cfg.FilteredSeconds) * time.Second,
	}
}

// TTL returns the freshness window for a request.
func (p CachePolicy) TTL(hasSpecificFilters bool, page int) time.Duration {
	ttl := p.base
	if hasSpecificFilters {
		ttl = p.filtered
	}
	if page > 1 {
		ttl /= 2
	}
	return ttl
}

// HeaderValue renders the Cache-Control header for a freshness window:
// full window at the edge, half in the browser, twice as stale grace.
func (p CachePolicy) HeaderValue(ttl time.Duration) string {
	seconds := int(ttl / time.Second)
	return fmt.Sprintf("s-maxage=%d, max-age=%d, stale-while-revalidate=%d",
		seconds, seconds/2, seconds*2)
}
