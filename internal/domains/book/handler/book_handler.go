package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BrieHudson/Chapter-Chat-Backend/internal/domains/book"
	"github.com/BrieHudson/Chapter-Chat-Backend/internal/shared/response"
)

type BookHandler struct {
	service book.Service
}

func NewBookHandler(service book.Service) *BookHandler {
	return &BookHandler{service: service}
}

// Search proxies a Google Books volumes search.
// GET /api/v1/books/search?q=...&maxResults=10
func (h *BookHandler) Search(c *gin.Context) {
	query := c.Query("q")
	maxResults, _ := strconv.Atoi(c.DefaultQuery("maxResults", "10"))

	result, err := h.service.SearchVolumes(c.Request.Context(), query, maxResults)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, result)
}

// GetByID returns the local catalog row when present, otherwise the raw
// Google Books volume.
// GET /api/v1/books/:id
func (h *BookHandler) GetByID(c *gin.Context) {
	result, err := h.service.GetByGoogleID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, result)
}
