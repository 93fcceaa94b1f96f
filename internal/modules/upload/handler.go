package upload

import (
	"github.com/geridir/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

// Handler handles upload-credential HTTP requests. All routes require
// auth: credentials are only minted for logged-in users.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts upload routes onto the given router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	uploads := rg.Group("/upload", authMW)

	uploads.POST("/signature", h.signature)
	uploads.POST("/presign", h.presign)
}

// signature POST /upload/signature  [auth]
func (h *Handler) signature(c *gin.Context) {
	response.OK(c, h.svc.SignCloudinary())
}

type presignDTO struct {
	FileName    string `json:"fileName" binding:"required"`
	ContentType string `json:"contentType"`
}

// presign POST /upload/presign  [auth]
func (h *Handler) presign(c *gin.Context) {
	var dto presignDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	presigned, err := h.svc.PresignPut(c.Request.Context(), dto.FileName, dto.ContentType)
	if err != nil {
		response.InternalError(c, "could not presign upload")
		return
	}
	response.OK(c, presigned)
}
