package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// PurgeOnWrite drops the whole response cache after a successful mutation,
// so admin writes become visible without waiting out the TTL. Paths in
// skipPaths (same matching rules as the cache skip list) never trigger a
// purge.
func PurgeOnWrite(rdb *redis.Client, log *zap.Logger, skipPaths []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if rdb == nil || c.Request.Method == http.MethodGet {
			return
		}
		if c.Writer.Status() < 200 || c.Writer.Status() >= 300 {
			return
		}
		if shouldSkipCachePath(c.Request.URL.Path, skipPaths) {
			return
		}

		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if _, err := PurgeHTTPCache(ctx, rdb); err != nil && log != nil {
				log.Warn("cache purge failed", zap.Error(err))
			}
		}()
	}
}
