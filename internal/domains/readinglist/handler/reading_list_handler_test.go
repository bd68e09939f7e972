package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrieHudson/Chapter-Chat-Backend/internal/domains/book"
	"github.com/BrieHudson/Chapter-Chat-Backend/internal/domains/readinglist"
)

type fakeListService struct {
	addFn     func(ctx context.Context, userID uuid.UUID, ref book.Reference, status readinglist.Status) (*book.Book, error)
	groupedFn func(ctx context.Context, userID uuid.UUID) (*readinglist.GroupedLists, error)
	moveFn    func(ctx context.Context, userID, bookID uuid.UUID, from, to readinglist.Status) (*readinglist.Entry, error)
	deleteFn  func(ctx context.Context, userID, bookID uuid.UUID) error
}

func (s *fakeListService) AddBook(ctx context.Context, userID uuid.UUID, ref book.Reference, status readinglist.Status) (*book.Book, error) {
	return s.addFn(ctx, userID, ref, status)
}

func (s *fakeListService) GetGrouped(ctx context.Context, userID uuid.UUID) (*readinglist.GroupedLists, error) {
	return s.groupedFn(ctx, userID)
}

func (s *fakeListService) MoveBook(ctx context.Context, userID, bookID uuid.UUID, from, to readinglist.Status) (*readinglist.Entry, error) {
	return s.moveFn(ctx, userID, bookID, from, to)
}

func (s *fakeListService) DeleteBook(ctx context.Context, userID, bookID uuid.UUID) error {
	return s.deleteFn(ctx, userID, bookID)
}

func listRouter(svc readinglist.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewReadingListHandler(svc)

	r := gin.New()
	authed := func(c *gin.Context) { c.Set("userID", uuid.New()) }
	r.GET("/reading-lists", authed, h.List)
	r.POST("/reading-lists/add", authed, h.Add)
	r.PUT("/reading-lists/move", authed, h.Move)
	r.DELETE("/reading-lists/:bookId", authed, h.Delete)
	return r
}

func TestListShape(t *testing.T) {
	svc := &fakeListService{
		groupedFn: func(ctx context.Context, userID uuid.UUID) (*readinglist.GroupedLists, error) {
			return &readinglist.GroupedLists{
				WantToRead: []book.Summary{},
				Reading:    []book.Summary{{ID: uuid.New(), Title: "Dune"}},
				Read:       []book.Summary{},
			}, nil
		},
	}
	r := listRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/reading-lists", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	// Empty buckets serialize as [] rather than null.
	assert.JSONEq(t, `[]`, string(body["want_to_read"]))
	assert.JSONEq(t, `[]`, string(body["read"]))
	assert.Contains(t, string(body["reading"]), "Dune")
}

func TestAddResponseShape(t *testing.T) {
	added := &book.Book{ID: uuid.New(), Title: "Dune", Author: "Frank Herbert"}
	svc := &fakeListService{
		addFn: func(ctx context.Context, userID uuid.UUID, ref book.Reference, status readinglist.Status) (*book.Book, error) {
			assert.Equal(t, "abc", ref.GoogleBooksID)
			assert.Equal(t, readinglist.StatusReading, status)
			return added, nil
		},
	}
	r := listRouter(svc)

	payload := `{"book":{"book_id":"abc","title":"Dune"},"list":"reading"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/reading-lists/add", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
	assert.Contains(t, w.Body.String(), "Dune")
}

func TestAddRejectsUnknownList(t *testing.T) {
	r := listRouter(&fakeListService{})

	payload := `{"book":{"title":"Dune"},"list":"finished"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/reading-lists/add", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteIsAlwaysSuccess(t *testing.T) {
	svc := &fakeListService{
		deleteFn: func(ctx context.Context, userID, bookID uuid.UUID) error {
			return nil
		},
	}
	r := listRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/reading-lists/"+uuid.NewString(), nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
	assert.Contains(t, w.Body.String(), "removed")
}

func TestDeleteRejectsBadID(t *testing.T) {
	r := listRouter(&fakeListService{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/reading-lists/not-a-uuid", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
