package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/BrieHudson/Chapter-Chat-Backend/internal/domains/book"
	"github.com/BrieHudson/Chapter-Chat-Backend/internal/domains/bookclub"
	"github.com/BrieHudson/Chapter-Chat-Backend/internal/domains/bookclub/repository"
	"github.com/BrieHudson/Chapter-Chat-Backend/internal/domains/forum"
	"github.com/BrieHudson/Chapter-Chat-Backend/internal/shared/apperror"
	"github.com/BrieHudson/Chapter-Chat-Backend/pkg/database"
)

type bookClubService struct {
	repo     bookclub.Repository
	posts    forum.Repository
	resolver book.Resolver
	db       database.DB
}

func NewBookClubService(repo bookclub.Repository, posts forum.Repository, resolver book.Resolver, db database.DB) bookclub.Service {
	return &bookClubService{
		repo:     repo,
		posts:    posts,
		resolver: resolver,
		db:       db,
	}
}

// Create resolves the club's first book, then writes the club and the
// creator's membership in one transaction. A club row without its founding
// membership must never be observable.
func (s *bookClubService) Create(ctx context.Context, creatorID uuid.UUID, req bookclub.CreateClubRequest) (*bookclub.ClubView, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	clubID, err := database.WithTransactionResult(ctx, s.db, func(tx pgx.Tx) (uuid.UUID, error) {
		resolved, err := s.resolver.Resolve(ctx, tx, req.Book)
		if err != nil {
			return uuid.Nil, err
		}

		now := time.Now()
		club := &bookclub.BookClub{
			ID:            uuid.New(),
			Name:          strings.TrimSpace(req.Name),
			Description:   strings.TrimSpace(req.Description),
			CreatorID:     creatorID,
			InitialBookID: resolved.ID,
			CurrentBookID: resolved.ID,
			MeetingTime:   *req.MeetingTime,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if req.ImageURL != "" {
			club.ImageURL = &req.ImageURL
		}

		if err := s.repo.CreateClub(ctx, tx, club); err != nil {
			return uuid.Nil, apperror.Storage(err)
		}

		membership := &bookclub.Membership{
			ID:         uuid.New(),
			UserID:     creatorID,
			BookClubID: club.ID,
			JoinedAt:   now,
		}
		if err := s.repo.AddMember(ctx, tx, membership); err != nil {
			return uuid.Nil, apperror.Storage(err)
		}

		return club.ID, nil
	})
	if err != nil {
		return nil, err
	}

	view, err := s.repo.GetView(ctx, clubID)
	if err != nil {
		return nil, apperror.Storage(err)
	}
	return view, nil
}

func (s *bookClubService) GetForUser(ctx context.Context, userID uuid.UUID) ([]bookclub.MemberClub, error) {
	clubs, err := s.repo.ListForUser(ctx, userID)
	if err != nil {
		return nil, apperror.Storage(err)
	}
	if clubs == nil {
		clubs = []bookclub.MemberClub{}
	}
	return clubs, nil
}

func (s *bookClubService) GetDetail(ctx context.Context, clubID, requestingUserID uuid.UUID) (*bookclub.Detail, error) {
	view, err := s.repo.GetView(ctx, clubID)
	if err != nil {
		if errors.Is(err, repository.ErrClubNotFound) {
			return nil, bookclub.ErrClubNotFound()
		}
		return nil, apperror.Storage(err)
	}

	isMember, err := s.repo.IsMember(ctx, clubID, requestingUserID)
	if err != nil {
		return nil, apperror.Storage(err)
	}

	posts, err := s.posts.ListForClub(ctx, s.db, clubID)
	if err != nil {
		return nil, apperror.Storage(err)
	}
	if posts == nil {
		posts = []forum.PostWithAuthor{}
	}

	return &bookclub.Detail{
		ClubView: *view,
		IsMember: isMember,
		Posts:    posts,
	}, nil
}

func (s *bookClubService) Search(ctx context.Context, query string) ([]bookclub.ClubView, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, bookclub.ErrMissingQuery()
	}

	clubs, err := s.repo.Search(ctx, query)
	if err != nil {
		return nil, apperror.Storage(err)
	}
	if clubs == nil {
		clubs = []bookclub.ClubView{}
	}
	return clubs, nil
}

// Update applies a creator-only partial patch. When the patch resolves to a
// different current book, the club's forum thread is cleared in the same
// transaction. A patch that resolves to the book already current leaves the
// thread alone.
func (s *bookClubService) Update(ctx context.Context, clubID, requestingUserID uuid.UUID, req bookclub.UpdateClubRequest) (*bookclub.ClubView, error) {
	err := database.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		club, err := s.repo.GetByID(ctx, tx, clubID)
		if err != nil {
			if errors.Is(err, repository.ErrClubNotFound) {
				return bookclub.ErrClubNotFound()
			}
			return apperror.Storage(err)
		}
		if club.CreatorID != requestingUserID {
			return bookclub.ErrNotCreator()
		}

		patch := bookclub.Patch{
			Name:        req.Name,
			Description: req.Description,
			ImageURL:    req.ImageURL,
			MeetingTime: req.MeetingTime,
		}

		if req.Book != nil && !req.Book.IsZero() {
			resolved, err := s.resolver.Resolve(ctx, tx, *req.Book)
			if err != nil {
				return err
			}
			if resolved.ID != club.CurrentBookID {
				patch.CurrentBookID = &resolved.ID
				if _, err := s.posts.DeleteForClub(ctx, tx, clubID); err != nil {
					return apperror.Storage(err)
				}
			}
		}

		if patch.IsZero() {
			return nil
		}

		if err := s.repo.UpdateClub(ctx, tx, clubID, patch); err != nil {
			return apperror.Storage(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	view, err := s.repo.GetView(ctx, clubID)
	if err != nil {
		return nil, apperror.Storage(err)
	}
	return view, nil
}

func (s *bookClubService) Join(ctx context.Context, clubID, userID uuid.UUID) error {
	if _, err := s.repo.GetByID(ctx, s.db, clubID); err != nil {
		if errors.Is(err, repository.ErrClubNotFound) {
			return bookclub.ErrClubNotFound()
		}
		return apperror.Storage(err)
	}

	membership := &bookclub.Membership{
		ID:         uuid.New(),
		UserID:     userID,
		BookClubID: clubID,
		JoinedAt:   time.Now(),
	}
	if err := s.repo.AddMember(ctx, s.db, membership); err != nil {
		if errors.Is(err, repository.ErrDuplicateMembership) {
			return bookclub.ErrAlreadyMember()
		}
		return apperror.Storage(err)
	}
	return nil
}

func (s *bookClubService) Delete(ctx context.Context, clubID uuid.UUID) error {
	if err := s.repo.DeleteClub(ctx, clubID); err != nil {
		if errors.Is(err, repository.ErrClubNotFound) {
			return bookclub.ErrClubNotFound()
		}
		return apperror.Storage(err)
	}
	return nil
}
