package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/BrieHudson/Chapter-Chat-Backend/internal/domains/forum"
	"github.com/BrieHudson/Chapter-Chat-Backend/internal/domains/user"
	"github.com/BrieHudson/Chapter-Chat-Backend/internal/shared/apperror"
	"github.com/BrieHudson/Chapter-Chat-Backend/pkg/database"
)

type forumService struct {
	repo  forum.Repository
	clubs forum.ClubDirectory
	users user.Repository
	db    database.DB
}

func NewForumService(repo forum.Repository, clubs forum.ClubDirectory, users user.Repository, db database.DB) forum.Service {
	return &forumService{
		repo:  repo,
		clubs: clubs,
		users: users,
		db:    db,
	}
}

func (s *forumService) ListForClub(ctx context.Context, clubID uuid.UUID) ([]forum.PostWithAuthor, error) {
	posts, err := s.repo.ListForClub(ctx, s.db, clubID)
	if err != nil {
		return nil, apperror.Storage(err)
	}
	if posts == nil {
		posts = []forum.PostWithAuthor{}
	}
	return posts, nil
}

// CreatePost gates on club existence, then membership, then content, in that
// order so a caller probing a missing club cannot learn anything else.
func (s *forumService) CreatePost(ctx context.Context, clubID, authorID uuid.UUID, req forum.CreatePostRequest) (*forum.PostWithAuthor, error) {
	currentBookID, found, err := s.clubs.ClubCurrentBook(ctx, clubID)
	if err != nil {
		return nil, apperror.Storage(err)
	}
	if !found {
		return nil, forum.ErrClubNotFound()
	}

	member, err := s.clubs.IsMember(ctx, clubID, authorID)
	if err != nil {
		return nil, apperror.Storage(err)
	}
	if !member {
		return nil, forum.ErrNotMember()
	}

	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, forum.ErrEmptyContent()
	}

	bookID := currentBookID
	if req.BookID != "" {
		id, err := uuid.Parse(req.BookID)
		if err != nil {
			return nil, apperror.Validation("Invalid book_id")
		}
		bookID = id
	}

	now := time.Now()
	post := &forum.Post{
		ID:               uuid.New(),
		BookClubID:       clubID,
		UserID:           authorID,
		Content:          content,
		ContainsSpoilers: req.ContainsSpoilers,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if bookID != uuid.Nil {
		post.BookID = &bookID
	}

	if err := s.repo.Insert(ctx, s.db, post); err != nil {
		return nil, apperror.Storage(err)
	}

	author, err := s.users.FindByID(ctx, authorID)
	if err != nil {
		return nil, apperror.Storage(err)
	}

	return &forum.PostWithAuthor{Post: *post, Username: author.Username}, nil
}
