package health

import (
	"net/http"

	redispkg "github.com/geridir/core/internal/pkg/redis"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Handler exposes liveness and readiness probes.
type Handler struct {
	db  *gorm.DB
	rdb *redispkg.Client
}

func NewHandler(db *gorm.DB, rdb *redispkg.Client) *Handler {
	return &Handler{db: db, rdb: rdb}
}

// RegisterRoutes mounts health routes onto the given router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/health", h.live)
	rg.GET("/health/ready", h.ready)
}

// live GET /health
func (h *Handler) live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ready GET /health/ready
func (h *Handler) ready(c *gin.Context) {
	ctx := c.Request.Context()

	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "database": err.Error()})
		return
	}

	if h.rdb != nil {
		if err := h.rdb.Raw().Ping(ctx).Err(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "redis": err.Error()})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
