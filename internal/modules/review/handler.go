package review

import (
	"errors"

	"github.com/geridir/core/internal/middleware"
	"github.com/geridir/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

// Handler handles review HTTP requests.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts review routes onto the given router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	rg.GET("/geriatrics/:id/reviews", h.list)
	rg.POST("/geriatrics/:id/reviews", authMW, h.create)
}

type createReviewDTO struct {
	Rating  int    `json:"rating" binding:"required"`
	Comment string `json:"comment"`
}

// create POST /geriatrics/:id/reviews  [auth]
func (h *Handler) create(c *gin.Context) {
	var dto createReviewDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	r, err := h.svc.Create(c.Request.Context(),
		c.Param("id"), middleware.CurrentUserID(c), dto.Rating, dto.Comment)
	if errors.Is(err, ErrInvalidRating) {
		response.BadRequest(c, err.Error())
		return
	}
	if errors.Is(err, ErrListingNotFound) {
		response.NotFound(c, err.Error())
		return
	}
	if err != nil {
		response.InternalError(c, "could not create review")
		return
	}
	response.Created(c, r)
}

// list GET /geriatrics/:id/reviews
func (h *Handler) list(c *gin.Context) {
	rows, err := h.svc.ListByGeriatric(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.InternalError(c, "could not list reviews")
		return
	}
	response.OK(c, rows)
}
