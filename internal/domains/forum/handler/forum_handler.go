package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/BrieHudson/Chapter-Chat-Backend/internal/domains/forum"
	"github.com/BrieHudson/Chapter-Chat-Backend/internal/shared/middleware"
	"github.com/BrieHudson/Chapter-Chat-Backend/internal/shared/response"
)

type ForumHandler struct {
	service forum.Service
}

func NewForumHandler(service forum.Service) *ForumHandler {
	return &ForumHandler{service: service}
}

// List returns a club's posts, newest first.
// GET /api/v1/forums/:clubId/posts
func (h *ForumHandler) List(c *gin.Context) {
	clubID, err := uuid.Parse(c.Param("clubId"))
	if err != nil {
		response.BadRequest(c, "Invalid clubId")
		return
	}

	posts, err := h.service.ListForClub(c.Request.Context(), clubID)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, posts)
}

// Create appends a post to a club's forum.
// POST /api/v1/forums/:clubId/posts
func (h *ForumHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "AUTH_FAILED", "Unauthorized")
		return
	}

	clubID, err := uuid.Parse(c.Param("clubId"))
	if err != nil {
		response.BadRequest(c, "Invalid clubId")
		return
	}

	var req forum.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	post, err := h.service.CreatePost(c.Request.Context(), clubID, userID, req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.JSON(c, http.StatusCreated, post)
}
