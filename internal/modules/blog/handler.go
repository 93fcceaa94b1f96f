package blog

import (
	"errors"

	"github.com/geridir/core/internal/middleware"
	"github.com/geridir/core/internal/pkg/pagination"
	"github.com/geridir/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Handler handles blog HTTP requests. Reads are public (published posts
// only); writes are admin-gated.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts blog routes onto the given router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW, adminMW gin.HandlerFunc) {
	posts := rg.Group("/blog")

	posts.GET("", h.list)
	posts.GET("/categories", h.categories)
	posts.GET("/:identifier", h.get)

	admin := posts.Group("", authMW, adminMW)
	admin.POST("", h.create)
	admin.PUT("/:identifier", h.update)
	admin.DELETE("/:identifier", h.delete)
	admin.POST("/categories", h.createCategory)
}

// list GET /blog
func (h *Handler) list(c *gin.Context) {
	q := pagination.FromContext(c)

	var lq ListQuery
	if err := c.ShouldBindQuery(&lq); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	posts, pag, err := h.svc.List(c.Request.Context(), q, lq, middleware.IsAuthenticated(c))
	if err != nil {
		response.InternalError(c, "could not list posts")
		return
	}
	categories, err := h.svc.Categories(c.Request.Context())
	if err != nil {
		response.InternalError(c, "could not list posts")
		return
	}

	response.OK(c, listResponse{
		Posts:      toPostResponses(posts),
		Categories: categories,
		Pagination: pag,
	})
}

// get GET /blog/:identifier
func (h *Handler) get(c *gin.Context) {
	post, err := h.svc.Get(c.Request.Context(), c.Param("identifier"), middleware.IsAuthenticated(c))
	if err != nil {
		response.InternalError(c, "could not load post")
		return
	}
	if post == nil {
		response.NotFound(c, "post not found")
		return
	}
	response.OK(c, toPostResponse(*post, true))
}

// categories GET /blog/categories
func (h *Handler) categories(c *gin.Context) {
	categories, err := h.svc.Categories(c.Request.Context())
	if err != nil {
		response.InternalError(c, "could not list categories")
		return
	}
	response.OK(c, categories)
}

// create POST /blog  [admin]
func (h *Handler) create(c *gin.Context) {
	var dto CreatePostDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	post, err := h.svc.Create(c.Request.Context(), &dto)
	if errors.Is(err, ErrCategoryNotFound) || errors.Is(err, ErrInvalidStatus) {
		response.BadRequest(c, err.Error())
		return
	}
	if err != nil {
		response.InternalError(c, "could not create post")
		return
	}
	response.Created(c, toPostResponse(*post, false))
}

// update PUT /blog/:identifier  [admin]
func (h *Handler) update(c *gin.Context) {
	var dto UpdatePostDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	post, err := h.svc.Update(c.Request.Context(), c.Param("identifier"), &dto)
	if errors.Is(err, ErrCategoryNotFound) || errors.Is(err, ErrInvalidStatus) {
		response.BadRequest(c, err.Error())
		return
	}
	if err != nil {
		response.InternalError(c, "could not update post")
		return
	}
	if post == nil {
		response.NotFound(c, "post not found")
		return
	}
	response.OK(c, toPostResponse(*post, false))
}

// delete DELETE /blog/:identifier  [admin]
func (h *Handler) delete(c *gin.Context) {
	err := h.svc.Delete(c.Request.Context(), c.Param("identifier"))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		response.NotFound(c, "post not found")
		return
	}
	if err != nil {
		response.InternalError(c, "could not delete post")
		return
	}
	response.NoContent(c)
}

// createCategory POST /blog/categories  [admin]
func (h *Handler) createCategory(c *gin.Context) {
	var dto CreateCategoryDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	cat, err := h.svc.CreateCategory(c.Request.Context(), dto.Name)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		response.Conflict(c, "category already exists")
		return
	}
	if err != nil {
		response.InternalError(c, "could not create category")
		return
	}
	response.Created(c, cat)
}
