package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/BrieHudson/Chapter-Chat-Backend/internal/domains/admin"
	"github.com/BrieHudson/Chapter-Chat-Backend/internal/shared/response"
)

type AdminHandler struct {
	service admin.Service
}

func NewAdminHandler(service admin.Service) *AdminHandler {
	return &AdminHandler{service: service}
}

// BanUser suspends an account and revokes its sessions.
// POST /api/v1/admin/users/:id/ban
func (h *AdminHandler) BanUser(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid user id")
		return
	}

	if err := h.service.BanUser(c.Request.Context(), userID); err != nil {
		response.FromError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, gin.H{"message": "User banned successfully"})
}

// DeleteClub removes a club with its memberships and posts.
// DELETE /api/v1/admin/bookclubs/:id
func (h *AdminHandler) DeleteClub(c *gin.Context) {
	clubID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid club id")
		return
	}

	if err := h.service.DeleteClub(c.Request.Context(), clubID); err != nil {
		response.FromError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, gin.H{"message": "Book club deleted successfully"})
}
