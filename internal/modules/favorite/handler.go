package favorite

import (
	"errors"

	"github.com/geridir/core/internal/middleware"
	"github.com/geridir/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

// Handler handles favorite HTTP requests. All routes require auth.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts favorite routes onto the given router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	favorites := rg.Group("/favorites", authMW)

	favorites.GET("", h.list)
	favorites.POST("/:geriatricId", h.add)
	favorites.DELETE("/:geriatricId", h.remove)
}

// list GET /favorites  [auth]
func (h *Handler) list(c *gin.Context) {
	rows, err := h.svc.List(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		response.InternalError(c, "could not list favorites")
		return
	}
	response.OK(c, rows)
}

// add POST /favorites/:geriatricId  [auth]
func (h *Handler) add(c *gin.Context) {
	f, err := h.svc.Add(c.Request.Context(),
		middleware.CurrentUserID(c), c.Param("geriatricId"))
	switch {
	case errors.Is(err, ErrListingNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, ErrAlreadyFavorited):
		response.Conflict(c, err.Error())
	case err != nil:
		response.InternalError(c, "could not add favorite")
	default:
		response.Created(c, f)
	}
}

// remove DELETE /favorites/:geriatricId  [auth]
func (h *Handler) remove(c *gin.Context) {
	err := h.svc.Remove(c.Request.Context(),
		middleware.CurrentUserID(c), c.Param("geriatricId"))
	switch {
	case errors.Is(err, ErrNotFavorited):
		response.NotFound(c, err.Error())
	case err != nil:
		response.InternalError(c, "could not remove favorite")
	default:
		response.NoContent(c)
	}
}
