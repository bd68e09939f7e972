package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/BrieHudson/Chapter-Chat-Backend/internal/domains/readinglist"
	"github.com/BrieHudson/Chapter-Chat-Backend/internal/shared/middleware"
	"github.com/BrieHudson/Chapter-Chat-Backend/internal/shared/response"
)

type ReadingListHandler struct {
	service readinglist.Service
}

func NewReadingListHandler(service readinglist.Service) *ReadingListHandler {
	return &ReadingListHandler{service: service}
}

// List returns the user's reading list grouped by status.
// GET /api/v1/reading-lists
func (h *ReadingListHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "AUTH_FAILED", "Unauthorized")
		return
	}

	grouped, err := h.service.GetGrouped(c.Request.Context(), userID)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, grouped)
}

// Add puts a book on one of the three lists.
// POST /api/v1/reading-lists/add
func (h *ReadingListHandler) Add(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "AUTH_FAILED", "Unauthorized")
		return
	}

	var req readinglist.AddBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	added, err := h.service.AddBook(c.Request.Context(), userID, req.Book, req.List)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, gin.H{"success": true, "book": added})
}

// Move relocates a book between lists.
// PUT /api/v1/reading-lists/move
func (h *ReadingListHandler) Move(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "AUTH_FAILED", "Unauthorized")
		return
	}

	var req readinglist.MoveBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	bookID, err := uuid.Parse(req.BookID)
	if err != nil {
		response.BadRequest(c, "Invalid bookId")
		return
	}

	result, err := h.service.MoveBook(c.Request.Context(), userID, bookID, req.FromList, req.ToList)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, gin.H{"success": true, "result": result})
}

// Delete removes a book from the reading list, whatever its status.
// DELETE /api/v1/reading-lists/:bookId
func (h *ReadingListHandler) Delete(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "AUTH_FAILED", "Unauthorized")
		return
	}

	bookID, err := uuid.Parse(c.Param("bookId"))
	if err != nil {
		response.BadRequest(c, "Invalid bookId")
		return
	}

	if err := h.service.DeleteBook(c.Request.Context(), userID, bookID); err != nil {
		response.FromError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, gin.H{"success": true, "message": "Book removed successfully"})
}
