package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/BrieHudson/Chapter-Chat-Backend/internal/domains/bookclub"
	"github.com/BrieHudson/Chapter-Chat-Backend/internal/shared/middleware"
	"github.com/BrieHudson/Chapter-Chat-Backend/internal/shared/response"
)

type BookClubHandler struct {
	service bookclub.Service
}

func NewBookClubHandler(service bookclub.Service) *BookClubHandler {
	return &BookClubHandler{service: service}
}

// List returns the clubs the user belongs to.
// GET /api/v1/bookclubs
func (h *BookClubHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "AUTH_FAILED", "Unauthorized")
		return
	}

	clubs, err := h.service.GetForUser(c.Request.Context(), userID)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, clubs)
}

// Search matches clubs by name or description substring.
// GET /api/v1/bookclubs/search?query=
func (h *BookClubHandler) Search(c *gin.Context) {
	clubs, err := h.service.Search(c.Request.Context(), c.Query("query"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, clubs)
}

// Get returns the club detail page.
// GET /api/v1/bookclubs/:id
func (h *BookClubHandler) Get(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "AUTH_FAILED", "Unauthorized")
		return
	}

	clubID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid club id")
		return
	}

	detail, err := h.service.GetDetail(c.Request.Context(), clubID, userID)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, detail)
}

// Create makes a new club with the caller as founding member.
// POST /api/v1/bookclubs
func (h *BookClubHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "AUTH_FAILED", "Unauthorized")
		return
	}

	var req bookclub.CreateClubRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	view, err := h.service.Create(c.Request.Context(), userID, req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.JSON(c, http.StatusCreated, view)
}

// Update applies a creator-only partial update.
// PUT /api/v1/bookclubs/:id
func (h *BookClubHandler) Update(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "AUTH_FAILED", "Unauthorized")
		return
	}

	clubID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid club id")
		return
	}

	var req bookclub.UpdateClubRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	view, err := h.service.Update(c.Request.Context(), clubID, userID, req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, view)
}

// Join adds the caller as a member.
// POST /api/v1/bookclubs/:id/join
func (h *BookClubHandler) Join(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "AUTH_FAILED", "Unauthorized")
		return
	}

	clubID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid club id")
		return
	}

	if err := h.service.Join(c.Request.Context(), clubID, userID); err != nil {
		response.FromError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, gin.H{"message": "Joined book club successfully"})
}
