package geriatric

import (
	"errors"

	"github.com/geridir/core/internal/pkg/pagination"
	"github.com/geridir/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Handler handles listing HTTP requests.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts listing routes onto the given router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW, adminMW gin.HandlerFunc) {
	listings := rg.Group("/geriatrics")

	listings.GET("/:id", h.get)

	authed := listings.Group("", authMW)
	authed.GET("", adminMW, h.list)
	authed.POST("", h.create)
	authed.PUT("/:id", h.update)
	authed.DELETE("/:id", h.delete)
}

// get GET /geriatrics/:id
func (h *Handler) get(c *gin.Context) {
	g, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.InternalError(c, "could not load listing")
		return
	}
	if g == nil {
		response.NotFound(c, "listing not found")
		return
	}
	response.OK(c, g)
}

// list GET /geriatrics  [admin]
func (h *Handler) list(c *gin.Context) {
	q := pagination.FromContext(c)
	rows, pag, err := h.svc.List(c.Request.Context(), q)
	if err != nil {
		response.InternalError(c, "could not list listings")
		return
	}
	response.Paged(c, rows, pag)
}

// create POST /geriatrics  [auth]
func (h *Handler) create(c *gin.Context) {
	var dto CreateGeriatricDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	g, err := h.svc.Create(c.Request.Context(), &dto)
	if err != nil {
		response.InternalError(c, "could not create listing")
		return
	}
	response.Created(c, g)
}

// update PUT /geriatrics/:id  [auth]
func (h *Handler) update(c *gin.Context) {
	var dto UpdateGeriatricDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	g, err := h.svc.Update(c.Request.Context(), c.Param("id"), &dto)
	if err != nil {
		response.InternalError(c, "could not update listing")
		return
	}
	if g == nil {
		response.NotFound(c, "listing not found")
		return
	}
	response.OK(c, g)
}

// delete DELETE /geriatrics/:id  [auth]
func (h *Handler) delete(c *gin.Context) {
	err := h.svc.Delete(c.Request.Context(), c.Param("id"))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		response.NotFound(c, "listing not found")
		return
	}
	if err != nil {
		response.InternalError(c, "could not delete listing")
		return
	}
	response.NoContent(c)
}
