package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrieHudson/Chapter-Chat-Backend/internal/domains/book"
	"github.com/BrieHudson/Chapter-Chat-Backend/internal/domains/bookclub"
	"github.com/BrieHudson/Chapter-Chat-Backend/internal/domains/bookclub/repository"
	"github.com/BrieHudson/Chapter-Chat-Backend/internal/domains/forum"
	"github.com/BrieHudson/Chapter-Chat-Backend/internal/shared/apperror"
	"github.com/BrieHudson/Chapter-Chat-Backend/pkg/database"
)

type fakeTx struct {
	pgx.Tx
	committed  bool
	rolledBack bool
}

func (t *fakeTx) Commit(ctx context.Context) error {
	t.committed = true
	return nil
}

func (t *fakeTx) Rollback(ctx context.Context) error {
	t.rolledBack = true
	return nil
}

type fakeDB struct {
	database.Queryer
	tx *fakeTx
}

func (db *fakeDB) Begin(ctx context.Context) (pgx.Tx, error) {
	return db.tx, nil
}

func newFakeDB() *fakeDB {
	return &fakeDB{tx: &fakeTx{}}
}

type fakeClubRepo struct {
	createFn      func(ctx context.Context, q database.Queryer, c *bookclub.BookClub) error
	addMemberFn   func(ctx context.Context, q database.Queryer, m *bookclub.Membership) error
	getByIDFn     func(ctx context.Context, q database.Queryer, id uuid.UUID) (*bookclub.BookClub, error)
	getViewFn     func(ctx context.Context, id uuid.UUID) (*bookclub.ClubView, error)
	listForUserFn func(ctx context.Context, userID uuid.UUID) ([]bookclub.MemberClub, error)
	searchFn      func(ctx context.Context, query string) ([]bookclub.ClubView, error)
	updateFn      func(ctx context.Context, q database.Queryer, id uuid.UUID, p bookclub.Patch) error
	isMemberFn    func(ctx context.Context, clubID, userID uuid.UUID) (bool, error)
	currentBookFn func(ctx context.Context, clubID uuid.UUID) (uuid.UUID, bool, error)
	deleteFn      func(ctx context.Context, id uuid.UUID) error
}

func (r *fakeClubRepo) CreateClub(ctx context.Context, q database.Queryer, c *bookclub.BookClub) error {
	return r.createFn(ctx, q, c)
}

func (r *fakeClubRepo) AddMember(ctx context.Context, q database.Queryer, m *bookclub.Membership) error {
	return r.addMemberFn(ctx, q, m)
}

func (r *fakeClubRepo) GetByID(ctx context.Context, q database.Queryer, id uuid.UUID) (*bookclub.BookClub, error) {
	return r.getByIDFn(ctx, q, id)
}

func (r *fakeClubRepo) GetView(ctx context.Context, id uuid.UUID) (*bookclub.ClubView, error) {
	return r.getViewFn(ctx, id)
}

func (r *fakeClubRepo) ListForUser(ctx context.Context, userID uuid.UUID) ([]bookclub.MemberClub, error) {
	return r.listForUserFn(ctx, userID)
}

func (r *fakeClubRepo) Search(ctx context.Context, query string) ([]bookclub.ClubView, error) {
	return r.searchFn(ctx, query)
}

func (r *fakeClubRepo) UpdateClub(ctx context.Context, q database.Queryer, id uuid.UUID, p bookclub.Patch) error {
	return r.updateFn(ctx, q, id, p)
}

func (r *fakeClubRepo) IsMember(ctx context.Context, clubID, userID uuid.UUID) (bool, error) {
	return r.isMemberFn(ctx, clubID, userID)
}

func (r *fakeClubRepo) ClubCurrentBook(ctx context.Context, clubID uuid.UUID) (uuid.UUID, bool, error) {
	return r.currentBookFn(ctx, clubID)
}

func (r *fakeClubRepo) DeleteClub(ctx context.Context, id uuid.UUID) error {
	return r.deleteFn(ctx, id)
}

type fakePostRepo struct {
	insertFn func(ctx context.Context, q database.Queryer, p *forum.Post) error
	listFn   func(ctx context.Context, q database.Queryer, clubID uuid.UUID) ([]forum.PostWithAuthor, error)
	deleteFn func(ctx context.Context, q database.Queryer, clubID uuid.UUID) (int64, error)
}

func (r *fakePostRepo) Insert(ctx context.Context, q database.Queryer, p *forum.Post) error {
	return r.insertFn(ctx, q, p)
}

func (r *fakePostRepo) ListForClub(ctx context.Context, q database.Queryer, clubID uuid.UUID) ([]forum.PostWithAuthor, error) {
	return r.listFn(ctx, q, clubID)
}

func (r *fakePostRepo) DeleteForClub(ctx context.Context, q database.Queryer, clubID uuid.UUID) (int64, error) {
	return r.deleteFn(ctx, q, clubID)
}

type fakeResolver struct {
	resolveFn func(ctx context.Context, q database.Queryer, ref book.Reference) (*book.Book, error)
}

func (r *fakeResolver) Resolve(ctx context.Context, q database.Queryer, ref book.Reference) (*book.Book, error) {
	return r.resolveFn(ctx, q, ref)
}

func meetingTime() *time.Time {
	t := time.Now().Add(72 * time.Hour)
	return &t
}

func TestCreateClub(t *testing.T) {
	creatorID := uuid.New()
	resolved := &book.Book{ID: uuid.New(), Title: "Dune", Author: "Frank Herbert"}

	t.Run("reports every missing field", func(t *testing.T) {
		svc := NewBookClubService(&fakeClubRepo{}, &fakePostRepo{}, &fakeResolver{}, newFakeDB())

		_, err := svc.Create(context.Background(), creatorID, bookclub.CreateClubRequest{})

		require.Error(t, err)
		assert.True(t, apperror.IsKind(err, apperror.KindValidation))
		assert.Contains(t, err.Error(), "name")
		assert.Contains(t, err.Error(), "description")
		assert.Contains(t, err.Error(), "book")
		assert.Contains(t, err.Error(), "meeting_time")
	})

	t.Run("creates club and founding membership in one transaction", func(t *testing.T) {
		db := newFakeDB()
		var createdClub *bookclub.BookClub
		var membership *bookclub.Membership
		repo := &fakeClubRepo{
			createFn: func(ctx context.Context, q database.Queryer, c *bookclub.BookClub) error {
				createdClub = c
				return nil
			},
			addMemberFn: func(ctx context.Context, q database.Queryer, m *bookclub.Membership) error {
				membership = m
				return nil
			},
			getViewFn: func(ctx context.Context, id uuid.UUID) (*bookclub.ClubView, error) {
				return &bookclub.ClubView{BookClub: *createdClub}, nil
			},
		}
		resolver := &fakeResolver{
			resolveFn: func(ctx context.Context, q database.Queryer, ref book.Reference) (*book.Book, error) {
				return resolved, nil
			},
		}
		svc := NewBookClubService(repo, &fakePostRepo{}, resolver, db)

		view, err := svc.Create(context.Background(), creatorID, bookclub.CreateClubRequest{
			Name:        "Sci-Fi Sundays",
			Description: "Weekly science fiction discussion",
			Book:        book.Reference{GoogleBooksID: "abc123"},
			MeetingTime: meetingTime(),
		})

		require.NoError(t, err)
		require.NotNil(t, createdClub)
		assert.Equal(t, creatorID, createdClub.CreatorID)
		assert.Equal(t, resolved.ID, createdClub.CurrentBookID)
		assert.Equal(t, resolved.ID, createdClub.InitialBookID)

		require.NotNil(t, membership)
		assert.Equal(t, creatorID, membership.UserID)
		assert.Equal(t, createdClub.ID, membership.BookClubID)

		assert.True(t, db.tx.committed)
		assert.Equal(t, "Sci-Fi Sundays", view.Name)
	})

	t.Run("membership failure rolls back the club row", func(t *testing.T) {
		db := newFakeDB()
		repo := &fakeClubRepo{
			createFn: func(ctx context.Context, q database.Queryer, c *bookclub.BookClub) error {
				return nil
			},
			addMemberFn: func(ctx context.Context, q database.Queryer, m *bookclub.Membership) error {
				return assert.AnError
			},
		}
		resolver := &fakeResolver{
			resolveFn: func(ctx context.Context, q database.Queryer, ref book.Reference) (*book.Book, error) {
				return resolved, nil
			},
		}
		svc := NewBookClubService(repo, &fakePostRepo{}, resolver, db)

		_, err := svc.Create(context.Background(), creatorID, bookclub.CreateClubRequest{
			Name:        "Sci-Fi Sundays",
			Description: "Weekly science fiction discussion",
			Book:        book.Reference{GoogleBooksID: "abc123"},
			MeetingTime: meetingTime(),
		})

		require.Error(t, err)
		assert.True(t, db.tx.rolledBack)
		assert.False(t, db.tx.committed)
	})
}

func TestJoinClub(t *testing.T) {
	clubID := uuid.New()
	userID := uuid.New()

	t.Run("missing club", func(t *testing.T) {
		repo := &fakeClubRepo{
			getByIDFn: func(ctx context.Context, q database.Queryer, id uuid.UUID) (*bookclub.BookClub, error) {
				return nil, repository.ErrClubNotFound
			},
		}
		svc := NewBookClubService(repo, &fakePostRepo{}, &fakeResolver{}, newFakeDB())

		err := svc.Join(context.Background(), clubID, userID)

		assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
	})

	t.Run("duplicate membership maps to conflict", func(t *testing.T) {
		repo := &fakeClubRepo{
			getByIDFn: func(ctx context.Context, q database.Queryer, id uuid.UUID) (*bookclub.BookClub, error) {
				return &bookclub.BookClub{ID: clubID}, nil
			},
			addMemberFn: func(ctx context.Context, q database.Queryer, m *bookclub.Membership) error {
				return repository.ErrDuplicateMembership
			},
		}
		svc := NewBookClubService(repo, &fakePostRepo{}, &fakeResolver{}, newFakeDB())

		err := svc.Join(context.Background(), clubID, userID)

		assert.True(t, apperror.IsKind(err, apperror.KindConflict))
	})

	t.Run("joins", func(t *testing.T) {
		var membership *bookclub.Membership
		repo := &fakeClubRepo{
			getByIDFn: func(ctx context.Context, q database.Queryer, id uuid.UUID) (*bookclub.BookClub, error) {
				return &bookclub.BookClub{ID: clubID}, nil
			},
			addMemberFn: func(ctx context.Context, q database.Queryer, m *bookclub.Membership) error {
				membership = m
				return nil
			},
		}
		svc := NewBookClubService(repo, &fakePostRepo{}, &fakeResolver{}, newFakeDB())

		require.NoError(t, svc.Join(context.Background(), clubID, userID))
		require.NotNil(t, membership)
		assert.Equal(t, userID, membership.UserID)
		assert.Equal(t, clubID, membership.BookClubID)
	})
}

func TestUpdateClub(t *testing.T) {
	clubID := uuid.New()
	creatorID := uuid.New()
	currentBookID := uuid.New()

	club := func() *bookclub.BookClub {
		return &bookclub.BookClub{
			ID:            clubID,
			Name:          "Sci-Fi Sundays",
			CreatorID:     creatorID,
			CurrentBookID: currentBookID,
		}
	}

	newName := "Fantasy Fridays"

	t.Run("only the creator may update", func(t *testing.T) {
		repo := &fakeClubRepo{
			getByIDFn: func(ctx context.Context, q database.Queryer, id uuid.UUID) (*bookclub.BookClub, error) {
				return club(), nil
			},
		}
		svc := NewBookClubService(repo, &fakePostRepo{}, &fakeResolver{}, newFakeDB())

		_, err := svc.Update(context.Background(), clubID, uuid.New(), bookclub.UpdateClubRequest{Name: &newName})

		assert.True(t, apperror.IsKind(err, apperror.KindAuthorization))
	})

	t.Run("changing the current book clears the forum", func(t *testing.T) {
		db := newFakeDB()
		newBookID := uuid.New()
		purged := false
		var patch bookclub.Patch
		repo := &fakeClubRepo{
			getByIDFn: func(ctx context.Context, q database.Queryer, id uuid.UUID) (*bookclub.BookClub, error) {
				return club(), nil
			},
			updateFn: func(ctx context.Context, q database.Queryer, id uuid.UUID, p bookclub.Patch) error {
				patch = p
				return nil
			},
			getViewFn: func(ctx context.Context, id uuid.UUID) (*bookclub.ClubView, error) {
				return &bookclub.ClubView{BookClub: *club()}, nil
			},
		}
		posts := &fakePostRepo{
			deleteFn: func(ctx context.Context, q database.Queryer, id uuid.UUID) (int64, error) {
				purged = true
				return 3, nil
			},
		}
		resolver := &fakeResolver{
			resolveFn: func(ctx context.Context, q database.Queryer, ref book.Reference) (*book.Book, error) {
				return &book.Book{ID: newBookID}, nil
			},
		}
		svc := NewBookClubService(repo, posts, resolver, db)

		_, err := svc.Update(context.Background(), clubID, creatorID, bookclub.UpdateClubRequest{
			Book: &book.Reference{GoogleBooksID: "next-read"},
		})

		require.NoError(t, err)
		assert.True(t, purged)
		require.NotNil(t, patch.CurrentBookID)
		assert.Equal(t, newBookID, *patch.CurrentBookID)
		assert.True(t, db.tx.committed)
	})

	t.Run("same book leaves the forum alone", func(t *testing.T) {
		db := newFakeDB()
		purged := false
		repo := &fakeClubRepo{
			getByIDFn: func(ctx context.Context, q database.Queryer, id uuid.UUID) (*bookclub.BookClub, error) {
				return club(), nil
			},
			getViewFn: func(ctx context.Context, id uuid.UUID) (*bookclub.ClubView, error) {
				return &bookclub.ClubView{BookClub: *club()}, nil
			},
		}
		posts := &fakePostRepo{
			deleteFn: func(ctx context.Context, q database.Queryer, id uuid.UUID) (int64, error) {
				purged = true
				return 0, nil
			},
		}
		resolver := &fakeResolver{
			resolveFn: func(ctx context.Context, q database.Queryer, ref book.Reference) (*book.Book, error) {
				return &book.Book{ID: currentBookID}, nil
			},
		}
		svc := NewBookClubService(repo, posts, resolver, db)

		_, err := svc.Update(context.Background(), clubID, creatorID, bookclub.UpdateClubRequest{
			Book: &book.Reference{GoogleBooksID: "same-read"},
		})

		require.NoError(t, err)
		assert.False(t, purged)
	})

	t.Run("touching other fields never clears the forum", func(t *testing.T) {
		db := newFakeDB()
		var patch bookclub.Patch
		repo := &fakeClubRepo{
			getByIDFn: func(ctx context.Context, q database.Queryer, id uuid.UUID) (*bookclub.BookClub, error) {
				return club(), nil
			},
			updateFn: func(ctx context.Context, q database.Queryer, id uuid.UUID, p bookclub.Patch) error {
				patch = p
				return nil
			},
			getViewFn: func(ctx context.Context, id uuid.UUID) (*bookclub.ClubView, error) {
				return &bookclub.ClubView{BookClub: *club()}, nil
			},
		}
		posts := &fakePostRepo{
			deleteFn: func(ctx context.Context, q database.Queryer, id uuid.UUID) (int64, error) {
				t.Fatal("forum must not be cleared")
				return 0, nil
			},
		}
		svc := NewBookClubService(repo, posts, &fakeResolver{}, db)

		_, err := svc.Update(context.Background(), clubID, creatorID, bookclub.UpdateClubRequest{Name: &newName})

		require.NoError(t, err)
		require.NotNil(t, patch.Name)
		assert.Equal(t, newName, *patch.Name)
		assert.Nil(t, patch.CurrentBookID)
	})
}

func TestGetDetail(t *testing.T) {
	clubID := uuid.New()

	t.Run("missing club", func(t *testing.T) {
		repo := &fakeClubRepo{
			getViewFn: func(ctx context.Context, id uuid.UUID) (*bookclub.ClubView, error) {
				return nil, repository.ErrClubNotFound
			},
		}
		svc := NewBookClubService(repo, &fakePostRepo{}, &fakeResolver{}, newFakeDB())

		_, err := svc.GetDetail(context.Background(), clubID, uuid.New())

		assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
	})

	t.Run("computes isMember per requesting user", func(t *testing.T) {
		memberID := uuid.New()
		repo := &fakeClubRepo{
			getViewFn: func(ctx context.Context, id uuid.UUID) (*bookclub.ClubView, error) {
				return &bookclub.ClubView{BookClub: bookclub.BookClub{ID: clubID}}, nil
			},
			isMemberFn: func(ctx context.Context, cid, uid uuid.UUID) (bool, error) {
				return uid == memberID, nil
			},
		}
		posts := &fakePostRepo{
			listFn: func(ctx context.Context, q database.Queryer, cid uuid.UUID) ([]forum.PostWithAuthor, error) {
				return nil, nil
			},
		}
		svc := NewBookClubService(repo, posts, &fakeResolver{}, newFakeDB())

		forMember, err := svc.GetDetail(context.Background(), clubID, memberID)
		require.NoError(t, err)
		assert.True(t, forMember.IsMember)
		assert.NotNil(t, forMember.Posts)

		forStranger, err := svc.GetDetail(context.Background(), clubID, uuid.New())
		require.NoError(t, err)
		assert.False(t, forStranger.IsMember)
	})
}

func TestSearchClubs(t *testing.T) {
	t.Run("empty query", func(t *testing.T) {
		svc := NewBookClubService(&fakeClubRepo{}, &fakePostRepo{}, &fakeResolver{}, newFakeDB())

		_, err := svc.Search(context.Background(), "   ")

		assert.True(t, apperror.IsKind(err, apperror.KindValidation))
	})

	t.Run("no matches yields empty slice", func(t *testing.T) {
		repo := &fakeClubRepo{
			searchFn: func(ctx context.Context, query string) ([]bookclub.ClubView, error) {
				return nil, nil
			},
		}
		svc := NewBookClubService(repo, &fakePostRepo{}, &fakeResolver{}, newFakeDB())

		clubs, err := svc.Search(context.Background(), "dune")

		require.NoError(t, err)
		assert.NotNil(t, clubs)
		assert.Empty(t, clubs)
	})
}
