package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrieHudson/Chapter-Chat-Backend/internal/domains/forum"
	"github.com/BrieHudson/Chapter-Chat-Backend/internal/domains/user"
	"github.com/BrieHudson/Chapter-Chat-Backend/internal/shared/apperror"
	"github.com/BrieHudson/Chapter-Chat-Backend/pkg/database"
)

type fakePostRepo struct {
	forum.Repository

	insertFn func(ctx context.Context, q database.Queryer, p *forum.Post) error
	listFn   func(ctx context.Context, q database.Queryer, clubID uuid.UUID) ([]forum.PostWithAuthor, error)
}

func (r *fakePostRepo) Insert(ctx context.Context, q database.Queryer, p *forum.Post) error {
	return r.insertFn(ctx, q, p)
}

func (r *fakePostRepo) ListForClub(ctx context.Context, q database.Queryer, clubID uuid.UUID) ([]forum.PostWithAuthor, error) {
	return r.listFn(ctx, q, clubID)
}

type fakeClubDirectory struct {
	currentBookFn func(ctx context.Context, clubID uuid.UUID) (uuid.UUID, bool, error)
	isMemberFn    func(ctx context.Context, clubID, userID uuid.UUID) (bool, error)
}

func (d *fakeClubDirectory) ClubCurrentBook(ctx context.Context, clubID uuid.UUID) (uuid.UUID, bool, error) {
	return d.currentBookFn(ctx, clubID)
}

func (d *fakeClubDirectory) IsMember(ctx context.Context, clubID, userID uuid.UUID) (bool, error) {
	return d.isMemberFn(ctx, clubID, userID)
}

type fakeUserRepo struct {
	user.Repository

	findByIDFn func(ctx context.Context, id uuid.UUID) (*user.User, error)
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	return r.findByIDFn(ctx, id)
}

func TestCreatePost(t *testing.T) {
	clubID := uuid.New()
	authorID := uuid.New()
	currentBookID := uuid.New()

	clubs := func(found, member bool) *fakeClubDirectory {
		return &fakeClubDirectory{
			currentBookFn: func(ctx context.Context, id uuid.UUID) (uuid.UUID, bool, error) {
				if !found {
					return uuid.Nil, false, nil
				}
				return currentBookID, true, nil
			},
			isMemberFn: func(ctx context.Context, cid, uid uuid.UUID) (bool, error) {
				return member, nil
			},
		}
	}
	author := &fakeUserRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*user.User, error) {
			return &user.User{ID: id, Username: "brie"}, nil
		},
	}

	t.Run("missing club", func(t *testing.T) {
		svc := NewForumService(&fakePostRepo{}, clubs(false, false), author, nil)

		_, err := svc.CreatePost(context.Background(), clubID, authorID, forum.CreatePostRequest{Content: "hi"})

		assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
	})

	t.Run("non-member is rejected", func(t *testing.T) {
		svc := NewForumService(&fakePostRepo{}, clubs(true, false), author, nil)

		_, err := svc.CreatePost(context.Background(), clubID, authorID, forum.CreatePostRequest{Content: "hi"})

		assert.True(t, apperror.IsKind(err, apperror.KindAuthorization))
	})

	t.Run("blank content is rejected", func(t *testing.T) {
		svc := NewForumService(&fakePostRepo{}, clubs(true, true), author, nil)

		_, err := svc.CreatePost(context.Background(), clubID, authorID, forum.CreatePostRequest{Content: "   "})

		assert.True(t, apperror.IsKind(err, apperror.KindValidation))
	})

	t.Run("book defaults to the club's current book", func(t *testing.T) {
		var inserted *forum.Post
		repo := &fakePostRepo{
			insertFn: func(ctx context.Context, q database.Queryer, p *forum.Post) error {
				inserted = p
				return nil
			},
		}
		svc := NewForumService(repo, clubs(true, true), author, nil)

		post, err := svc.CreatePost(context.Background(), clubID, authorID, forum.CreatePostRequest{
			Content:          "Chapter 12 twist!",
			ContainsSpoilers: true,
		})

		require.NoError(t, err)
		require.NotNil(t, inserted)
		require.NotNil(t, inserted.BookID)
		assert.Equal(t, currentBookID, *inserted.BookID)
		assert.True(t, inserted.ContainsSpoilers)
		assert.Equal(t, "brie", post.Username)
		assert.Equal(t, clubID, post.BookClubID)
	})

	t.Run("explicit book id wins over the default", func(t *testing.T) {
		otherBookID := uuid.New()
		var inserted *forum.Post
		repo := &fakePostRepo{
			insertFn: func(ctx context.Context, q database.Queryer, p *forum.Post) error {
				inserted = p
				return nil
			},
		}
		svc := NewForumService(repo, clubs(true, true), author, nil)

		_, err := svc.CreatePost(context.Background(), clubID, authorID, forum.CreatePostRequest{
			Content: "about an earlier read",
			BookID:  otherBookID.String(),
		})

		require.NoError(t, err)
		require.NotNil(t, inserted.BookID)
		assert.Equal(t, otherBookID, *inserted.BookID)
	})
}

func TestListForClub(t *testing.T) {
	t.Run("no posts yields empty slice", func(t *testing.T) {
		repo := &fakePostRepo{
			listFn: func(ctx context.Context, q database.Queryer, clubID uuid.UUID) ([]forum.PostWithAuthor, error) {
				return nil, nil
			},
		}
		svc := NewForumService(repo, &fakeClubDirectory{}, &fakeUserRepo{}, nil)

		posts, err := svc.ListForClub(context.Background(), uuid.New())

		require.NoError(t, err)
		assert.NotNil(t, posts)
		assert.Empty(t, posts)
	})
}
