package mirror

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// --------------------------------------------------
// HTTP Handlers
// --------------------------------------------------

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// TriggerSync runs a full sync immediately. Wired behind the admin role.
func (h *Handler) TriggerSync(c *gin.Context) {
	if err := h.service.SyncOnce(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "sync completed"})
}
