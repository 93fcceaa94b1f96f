package search

import (
	"github.com/geridir/core/internal/middleware"
	"github.com/geridir/core/internal/pkg/pagination"
	"github.com/geridir/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler handles search HTTP requests.
type Handler struct {
	svc    *Service
	policy CachePolicy
	log    *zap.Logger
}

func NewHandler(svc *Service, policy CachePolicy, log *zap.Logger) *Handler {
	return &Handler{svc: svc, policy: policy, log: log}
}

// RegisterRoutes mounts search routes onto the given router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/search", h.search)
	rg.POST("/search-log", h.logSearch)
}

// search GET /search
func (h *Handler) search(c *gin.Context) {
	filters := DecodeFilters(c.Request.URL.Query())
	q := pagination.FromContext(c)

	result, err := h.svc.Search(c.Request.Context(), filters, q)
	if err != nil {
		h.log.Error("search failed", zap.Error(err))
		response.InternalError(c, "search unavailable")
		return
	}

	ttl := h.policy.TTL(filters.HasSpecificFilters(), q.Page)
	c.Header("Cache-Control", h.policy.HeaderValue(ttl))
	c.Set(middleware.ContextKeyCacheTTL, ttl)
	response.OK(c, result)
}

type searchLogDTO struct {
	Filters      map[string]interface{} `json:"filters"`
	ResultsCount int                    `json:"resultsCount"`
}

// logSearch POST /search-log
func (h *Handler) logSearch(c *gin.Context) {
	var dto searchLogDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if dto.Filters == nil {
		dto.Filters = map[string]interface{}{}
	}

	if err := h.svc.LogSearch(c.Request.Context(), dto.Filters, dto.ResultsCount, c.ClientIP()); err != nil {
		h.log.Error("search log failed", zap.Error(err))
		response.InternalError(c, "could not record search")
		return
	}
	response.Created(c, gin.H{"success": true})
}
