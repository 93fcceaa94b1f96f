package app

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/geridir/core/internal/middleware"
	"github.com/geridir/core/internal/modules/auth"
	"github.com/geridir/core/internal/modules/blog"
	"github.com/geridir/core/internal/modules/favorite"
	"github.com/geridir/core/internal/modules/geriatric"
	"github.com/geridir/core/internal/modules/health"
	"github.com/geridir/core/internal/modules/review"
	"github.com/geridir/core/internal/modules/search"
	"github.com/geridir/core/internal/modules/testimonial"
	"github.com/geridir/core/internal/modules/upload"
	"github.com/geridir/core/internal/pkg/response"
)

func (a *App) registerRoutes() {
	r := a.router
	db := a.db

	authMW := middleware.Auth(db)
	adminMW := middleware.RequireAdmin(db)

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c, "not found")
	})
	r.NoMethod(func(c *gin.Context) {
		response.MethodNotAllowed(c)
	})

	api := r.Group("/api/v1")
	api.Use(middleware.OptionalAuth(db))
	api.Use(middleware.RateLimit(a.rdb.Raw()))
	api.Use(middleware.HTTPCache(a.rdb.Raw(), middleware.HTTPCacheOptions{
		TTL:       15 * time.Second,
		SkipPaths: []string{"/api/v1/health*"},
	}))
	api.Use(middleware.PurgeOnWrite(a.rdb.Raw(), a.logger, []string{
		"/api/v1/search-log",
		"/api/v1/auth/*",
		"/api/v1/favorites*",
		"/api/v1/upload/*",
	}))

	health.NewHandler(db, a.rdb).RegisterRoutes(api)

	searchSvc := search.NewService(db, a.logger)
	searchPolicy := search.NewCachePolicy(a.cfg.SearchCache)
	search.NewHandler(searchSvc, searchPolicy, a.logger).RegisterRoutes(api)

	geriatric.NewHandler(geriatric.NewService(db)).RegisterRoutes(api, authMW, adminMW)
	review.NewHandler(review.NewService(db)).RegisterRoutes(api, authMW)
	favorite.NewHandler(favorite.NewService(db)).RegisterRoutes(api, authMW)
	blog.NewHandler(blog.NewService(db)).RegisterRoutes(api, authMW, adminMW)
	testimonial.NewHandler(testimonial.NewService(db)).RegisterRoutes(api, authMW, adminMW)
	auth.NewHandler(auth.NewService(db)).RegisterRoutes(api, authMW)
	upload.NewHandler(upload.NewService(a.cfg.Cloudinary, a.cfg.S3)).RegisterRoutes(api, authMW)
}
