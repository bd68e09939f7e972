package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/BrieHudson/Chapter-Chat-Backend/internal/domains/book"
	"github.com/BrieHudson/Chapter-Chat-Backend/internal/domains/book/repository"
	"github.com/BrieHudson/Chapter-Chat-Backend/internal/infrastructure/googlebooks"
	"github.com/BrieHudson/Chapter-Chat-Backend/internal/shared/apperror"
	"github.com/BrieHudson/Chapter-Chat-Backend/pkg/cache"
	"github.com/BrieHudson/Chapter-Chat-Backend/pkg/database"
)

const (
	searchCacheTTL    = 15 * time.Minute
	searchCachePrefix = "googlebooks:search:"
)

type catalogService struct {
	repo  book.Repository
	db    database.DB
	books *googlebooks.Client
	cache cache.Cache
}

func NewCatalogService(repo book.Repository, db database.DB, books *googlebooks.Client, c cache.Cache) book.Service {
	return &catalogService{
		repo:  repo,
		db:    db,
		books: books,
		cache: c,
	}
}

// Resolve finds or creates the local row for an external book reference.
// Existing rows are returned unchanged; only missing ones are created, with
// placeholder title/author when the reference omits them.
func (s *catalogService) Resolve(ctx context.Context, q database.Queryer, ref book.Reference) (*book.Book, error) {
	if ref.IsZero() {
		return nil, apperror.Validation("a book reference is required")
	}

	title := ref.Title
	if title == "" {
		title = book.UnknownTitle
	}
	author := ref.Author
	if author == "" {
		author = book.UnknownAuthor
	}

	if ref.GoogleBooksID != "" {
		existing, err := s.repo.FindByGoogleID(ctx, q, ref.GoogleBooksID)
		if err == nil {
			return existing, nil
		}
		if !errors.Is(err, repository.ErrBookNotFound) {
			return nil, apperror.Storage(err)
		}

		created, err := s.repo.UpsertByGoogleID(ctx, q, newBook(ref, title, author))
		if err != nil {
			return nil, apperror.Storage(err)
		}
		return created, nil
	}

	existing, err := s.repo.FindByTitleAuthor(ctx, q, title, author)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, repository.ErrBookNotFound) {
		return nil, apperror.Storage(err)
	}

	b := newBook(ref, title, author)
	if err := s.repo.Create(ctx, q, b); err != nil {
		return nil, apperror.Storage(err)
	}
	return b, nil
}

func newBook(ref book.Reference, title, author string) *book.Book {
	now := time.Now()
	b := &book.Book{
		ID:        uuid.New(),
		Title:     title,
		Author:    author,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if ref.GoogleBooksID != "" {
		b.GoogleBooksID = &ref.GoogleBooksID
	}
	if ref.ISBN != "" {
		b.ISBN = &ref.ISBN
	}
	if ref.Description != "" {
		b.Description = &ref.Description
	}
	if ref.ThumbnailURL != "" {
		b.ThumbnailURL = &ref.ThumbnailURL
	}
	return b
}

// SearchVolumes proxies the Google Books volumes search, with a short Redis
// cache in front so repeated queries skip the external round-trip.
func (s *catalogService) SearchVolumes(ctx context.Context, query string, maxResults int) (*googlebooks.SearchResult, error) {
	if query == "" {
		return nil, apperror.Validation("query parameter 'q' is required")
	}
	if maxResults <= 0 || maxResults > 40 {
		maxResults = 10
	}

	cacheKey := fmt.Sprintf("%s%s:%d", searchCachePrefix, query, maxResults)
	if s.cache != nil {
		var cached googlebooks.SearchResult
		if found, err := s.cache.Get(ctx, cacheKey, &cached); err == nil && found {
			return &cached, nil
		}
	}

	result, err := s.books.Search(ctx, query, maxResults)
	if err != nil {
		return nil, apperror.Storage(fmt.Errorf("google books search: %w", err))
	}

	if s.cache != nil {
		// Cache failures are not worth failing the request over.
		_ = s.cache.Set(ctx, cacheKey, result, searchCacheTTL)
	}

	return result, nil
}

func (s *catalogService) GetByGoogleID(ctx context.Context, googleID string) (interface{}, error) {
	if googleID == "" {
		return nil, apperror.Validation("book id is required")
	}

	local, err := s.repo.FindByGoogleID(ctx, s.db, googleID)
	if err == nil {
		return local, nil
	}
	if !errors.Is(err, repository.ErrBookNotFound) {
		return nil, apperror.Storage(err)
	}

	volume, err := s.books.GetVolume(ctx, googleID)
	if err != nil {
		return nil, apperror.Storage(fmt.Errorf("google books volume: %w", err))
	}
	return volume, nil
}
