package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/BrieHudson/Chapter-Chat-Backend/internal/domains/book"
	"github.com/BrieHudson/Chapter-Chat-Backend/internal/domains/readinglist"
	"github.com/BrieHudson/Chapter-Chat-Backend/internal/domains/readinglist/repository"
	"github.com/BrieHudson/Chapter-Chat-Backend/internal/shared/apperror"
	"github.com/BrieHudson/Chapter-Chat-Backend/pkg/database"
)

type readingListService struct {
	repo     readinglist.Repository
	resolver book.Resolver
	db       database.DB
}

func NewReadingListService(repo readinglist.Repository, resolver book.Resolver, db database.DB) readinglist.Service {
	return &readingListService{
		repo:     repo,
		resolver: resolver,
		db:       db,
	}
}

// AddBook resolves the book and files the entry in one transaction, so a
// failed insert never leaves an orphaned catalog row behind (and vice versa).
func (s *readingListService) AddBook(ctx context.Context, userID uuid.UUID, ref book.Reference, status readinglist.Status) (*book.Book, error) {
	if !status.Valid() {
		return nil, readinglist.ErrInvalidList()
	}

	return database.WithTransactionResult(ctx, s.db, func(tx pgx.Tx) (*book.Book, error) {
		resolved, err := s.resolver.Resolve(ctx, tx, ref)
		if err != nil {
			return nil, err
		}

		now := time.Now()
		entry := &readinglist.Entry{
			ID:        uuid.New(),
			UserID:    userID,
			BookID:    resolved.ID,
			Status:    status,
			CreatedAt: now,
			UpdatedAt: now,
		}

		if err := s.repo.Insert(ctx, tx, entry); err != nil {
			if errors.Is(err, repository.ErrDuplicateEntry) {
				return nil, readinglist.ErrAlreadyListed()
			}
			return nil, apperror.Storage(err)
		}

		return resolved, nil
	})
}

func (s *readingListService) GetGrouped(ctx context.Context, userID uuid.UUID) (*readinglist.GroupedLists, error) {
	entries, err := s.repo.ListWithBooks(ctx, userID)
	if err != nil {
		return nil, apperror.Storage(err)
	}

	grouped := &readinglist.GroupedLists{
		WantToRead: []book.Summary{},
		Reading:    []book.Summary{},
		Read:       []book.Summary{},
	}

	for _, e := range entries {
		switch e.Status {
		case readinglist.StatusWantToRead:
			grouped.WantToRead = append(grouped.WantToRead, e.Book)
		case readinglist.StatusReading:
			grouped.Reading = append(grouped.Reading, e.Book)
		case readinglist.StatusRead:
			grouped.Read = append(grouped.Read, e.Book)
		}
	}

	return grouped, nil
}

// MoveBook locates the entry in the claimed source list and retargets it,
// inside one transaction. The not-found case rolls back cleanly: nothing is
// created or altered.
func (s *readingListService) MoveBook(ctx context.Context, userID, bookID uuid.UUID, from, to readinglist.Status) (*readinglist.Entry, error) {
	if !from.Valid() || !to.Valid() {
		return nil, readinglist.ErrInvalidList()
	}

	return database.WithTransactionResult(ctx, s.db, func(tx pgx.Tx) (*readinglist.Entry, error) {
		entry, err := s.repo.FindByStatus(ctx, tx, userID, bookID, from)
		if err != nil {
			if errors.Is(err, repository.ErrEntryNotFound) {
				return nil, readinglist.ErrNotInList(from)
			}
			return nil, apperror.Storage(err)
		}

		if err := s.repo.UpdateStatus(ctx, tx, entry.ID, to); err != nil {
			return nil, apperror.Storage(err)
		}

		entry.Status = to
		entry.UpdatedAt = time.Now()
		return entry, nil
	})
}

func (s *readingListService) DeleteBook(ctx context.Context, userID, bookID uuid.UUID) error {
	if err := s.repo.Delete(ctx, userID, bookID); err != nil {
		return apperror.Storage(err)
	}
	return nil
}
