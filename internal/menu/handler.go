package menu

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

// --------------------------------------------------
// GET /providers/:id/menus?from=&to=
// --------------------------------------------------
// Dates are YYYY-MM-DD, inclusive; both default to the configured
// lookahead window starting today.
func (h *Handler) ListForProvider(c *gin.Context) {
	from, to := h.service.DefaultRange()

	if raw := c.Query("from"); raw != "" {
		parsed, err := h.service.ParseDate(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid from date"})
			return
		}
		from = parsed
	}
	if raw := c.Query("to"); raw != "" {
		parsed, err := h.service.ParseDate(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid to date"})
			return
		}
		to = parsed
	}
	if to.Before(from) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "to must not be before from"})
		return
	}

	menus, err := h.service.MenusForProvider(
		c.Request.Context(),
		c.Param("id"),
		from,
		to,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch menus"})
		return
	}

	c.JSON(http.StatusOK, menus)
}
