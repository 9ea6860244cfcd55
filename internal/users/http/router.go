package http

import "github.com/gin-gonic/gin"

// Register attaches user pages to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.list)
	rg.GET("/:id", h.detail)
	rg.POST("/:id", h.submit)
}
