package auth

import (
	"errors"

	"github.com/geridir/core/internal/middleware"
	"github.com/geridir/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

// Handler handles auth HTTP requests.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts auth routes onto the given router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	auth := rg.Group("/auth")

	auth.POST("/register", h.register)
	auth.POST("/login", h.login)

	authed := auth.Group("", authMW)
	authed.POST("/logout", h.logout)
	authed.GET("/profile", h.profile)
}

type registerDTO struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type loginDTO struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// register POST /auth/register
func (h *Handler) register(c *gin.Context) {
	var dto registerDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := h.svc.Register(c.Request.Context(), dto.Name, dto.Email, dto.Password)
	if errors.Is(err, ErrEmailTaken) {
		response.Conflict(c, err.Error())
		return
	}
	if err != nil {
		response.InternalError(c, "could not register")
		return
	}
	response.Created(c, user)
}

// login POST /auth/login
func (h *Handler) login(c *gin.Context) {
	var dto loginDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	token, user, err := h.svc.Login(c.Request.Context(),
		dto.Email, dto.Password, c.ClientIP(), c.Request.UserAgent())
	if errors.Is(err, ErrInvalidCredentials) {
		response.Unauthorized(c)
		return
	}
	if err != nil {
		response.InternalError(c, "could not log in")
		return
	}
	response.OK(c, gin.H{
		"token": token,
		"user":  user,
	})
}

// logout POST /auth/logout  [auth]
func (h *Handler) logout(c *gin.Context) {
	err := h.svc.Logout(c.Request.Context(),
		middleware.CurrentUserID(c), middleware.CurrentSessionID(c))
	if err != nil {
		response.InternalError(c, "could not log out")
		return
	}
	response.NoContent(c)
}

// profile GET /auth/profile  [auth]
func (h *Handler) profile(c *gin.Context) {
	user, err := h.svc.Profile(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		response.InternalError(c, "could not load profile")
		return
	}
	if user == nil {
		response.NotFound(c, "account not found")
		return
	}
	response.OK(c, user)
}
