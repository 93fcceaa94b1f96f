package testimonial

import (
	"strconv"

	"github.com/geridir/core/internal/models"
	"github.com/geridir/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

// Handler handles testimonial HTTP requests.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts testimonial routes onto the given router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW, adminMW gin.HandlerFunc) {
	rg.GET("/testimonials", h.list)
	rg.POST("/testimonials", authMW, adminMW, h.create)
}

// list GET /testimonials?skip=&take=
func (h *Handler) list(c *gin.Context) {
	w := Window{
		Skip: intQuery(c, "skip", 0),
		Take: intQuery(c, "take", defaultTake),
	}

	rows, hasMore, err := h.svc.List(c.Request.Context(), w)
	if err != nil {
		response.InternalError(c, "could not list testimonials")
		return
	}
	response.OK(c, gin.H{
		"testimonials": rows,
		"hasMore":      hasMore,
	})
}

type createTestimonialDTO struct {
	Author  string `json:"author" binding:"required"`
	Role    string `json:"role"`
	Content string `json:"content" binding:"required"`
	Avatar  string `json:"avatar"`
}

// create POST /testimonials  [admin]
func (h *Handler) create(c *gin.Context) {
	var dto createTestimonialDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	t := &models.TestimonialModel{
		Author:  dto.Author,
		Role:    dto.Role,
		Content: dto.Content,
		Avatar:  dto.Avatar,
	}
	if err := h.svc.Create(c.Request.Context(), t); err != nil {
		response.InternalError(c, "could not create testimonial")
		return
	}
	response.Created(c, t)
}

func intQuery(c *gin.Context, key string, def int) int {
	raw := c.Query(key)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}
