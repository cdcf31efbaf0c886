package dashboard

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, ownerID func(*gin.Context) string) {
	rg.GET("/dashboard/summary", h.Summary(ownerID))
}

func (h *Handler) Summary(ownerID func(*gin.Context) string) gin.HandlerFunc {
	return func(c *gin.Context) {
		summary, err := h.service.Summarize(ownerID(c))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, summary)
	}
}
