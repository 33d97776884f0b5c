package additive

import (
	"errors"
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
// GET /additives?type=allergen|ingredient
// --------------------------------------------------
func (h *Handler) List(c *gin.Context) {
	typ, err := ParseType(c.Query("type"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	additives, err := h.service.ListByType(c.Request.Context(), typ)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch additives"})
		return
	}

	if additives == nil {
		additives = []*Additive{}
	}
	c.JSON(http.StatusOK, additives)
}

// --------------------------------------------------
// PUT /additives/:name/like
// --------------------------------------------------
func (h *Handler) UpdateLike(c *gin.Context) {
	var req struct {
		Disliked bool `json:"disliked"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	a, err := h.service.UpdateLike(c.Request.Context(), c.Param("name"), req.Disliked)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "unknown additive"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update additive"})
		return
	}

	c.JSON(http.StatusOK, a)
}
