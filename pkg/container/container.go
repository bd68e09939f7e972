package container

import (
	"context"
	"fmt"
	"time"

	"github.com/BrieHudson/Chapter-Chat-Backend/internal/config"
	infraCache "github.com/BrieHudson/Chapter-Chat-Backend/internal/infrastructure/cache"
	"github.com/BrieHudson/Chapter-Chat-Backend/internal/infrastructure/database"
	"github.com/BrieHudson/Chapter-Chat-Backend/internal/infrastructure/googlebooks"
	"github.com/BrieHudson/Chapter-Chat-Backend/internal/shared/middleware"
	"github.com/BrieHudson/Chapter-Chat-Backend/pkg/cache"
	"github.com/BrieHudson/Chapter-Chat-Backend/pkg/jwt"
	"github.com/BrieHudson/Chapter-Chat-Backend/pkg/logger"

	"github.com/BrieHudson/Chapter-Chat-Backend/internal/domains/admin"
	adminHandler "github.com/BrieHudson/Chapter-Chat-Backend/internal/domains/admin/handler"
	adminService "github.com/BrieHudson/Chapter-Chat-Backend/internal/domains/admin/service"
	"github.com/BrieHudson/Chapter-Chat-Backend/internal/domains/book"
	bookHandler "github.com/BrieHudson/Chapter-Chat-Backend/internal/domains/book/handler"
	bookRepo "github.com/BrieHudson/Chapter-Chat-Backend/internal/domains/book/repository"
	bookService "github.com/BrieHudson/Chapter-Chat-Backend/internal/domains/book/service"
	"github.com/BrieHudson/Chapter-Chat-Backend/internal/domains/bookclub"
	bookclubHandler "github.com/BrieHudson/Chapter-Chat-Backend/internal/domains/bookclub/handler"
	bookclubRepo "github.com/BrieHudson/Chapter-Chat-Backend/internal/domains/bookclub/repository"
	bookclubService "github.com/BrieHudson/Chapter-Chat-Backend/internal/domains/bookclub/service"
	"github.com/BrieHudson/Chapter-Chat-Backend/internal/domains/forum"
	forumHandler "github.com/BrieHudson/Chapter-Chat-Backend/internal/domains/forum/handler"
	forumRepo "github.com/BrieHudson/Chapter-Chat-Backend/internal/domains/forum/repository"
	forumService "github.com/BrieHudson/Chapter-Chat-Backend/internal/domains/forum/service"
	"github.com/BrieHudson/Chapter-Chat-Backend/internal/domains/readinglist"
	readinglistHandler "github.com/BrieHudson/Chapter-Chat-Backend/internal/domains/readinglist/handler"
	readinglistRepo "github.com/BrieHudson/Chapter-Chat-Backend/internal/domains/readinglist/repository"
	readinglistService "github.com/BrieHudson/Chapter-Chat-Backend/internal/domains/readinglist/service"
	"github.com/BrieHudson/Chapter-Chat-Backend/internal/domains/user"
	userHandler "github.com/BrieHudson/Chapter-Chat-Backend/internal/domains/user/handler"
	userRepo "github.com/BrieHudson/Chapter-Chat-Backend/internal/domains/user/repository"
	userService "github.com/BrieHudson/Chapter-Chat-Backend/internal/domains/user/service"
)

// Container is the root of the dependency graph. Everything in it is a
// singleton built once at startup, in dependency order: config, then
// infrastructure, then repositories, services, handlers.
type Container struct {
	Config     *config.Config
	DB         *database.PostgresDB
	Cache      cache.Cache
	JWTManager *jwt.Manager
	UserLoader middleware.UserLoader

	UserRepo     user.Repository
	BookClubRepo bookclub.Repository
	ForumRepo    forum.Repository

	UserService     user.Service
	BookService     book.Service
	ReadingLists    readinglist.Service
	BookClubService bookclub.Service
	ForumService    forum.Service
	AdminService    admin.Service

	AuthHandler        *userHandler.AuthHandler
	BookHandler        *bookHandler.BookHandler
	ReadingListHandler *readinglistHandler.ReadingListHandler
	BookClubHandler    *bookclubHandler.BookClubHandler
	ForumHandler       *forumHandler.ForumHandler
	AdminHandler       *adminHandler.AdminHandler
}

func NewContainer(ctx context.Context) (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	db := database.NewPostgresDB(&cfg.Database)
	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}
	c.DB = db

	redisCache := infraCache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := redisCache.Connect(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	c.Cache = redisCache

	c.JWTManager = jwt.NewManager(cfg.JWT.Secret, time.Duration(cfg.JWT.ExpiryHours)*time.Hour)

	pool := db.Pool
	booksAPI := googlebooks.NewClient(cfg.GoogleBooks.BaseURL, cfg.GoogleBooks.APIKey)

	c.UserRepo = userRepo.NewPostgresUserRepository(pool)
	c.UserLoader = userRepo.NewPostgresAuthLoader(pool)
	catalogRepo := bookRepo.NewPostgresBookRepository()
	listRepo := readinglistRepo.NewPostgresReadingListRepository(pool)
	c.BookClubRepo = bookclubRepo.NewPostgresBookClubRepository(pool)
	c.ForumRepo = forumRepo.NewPostgresForumRepository(pool)

	c.UserService = userService.NewAuthService(c.UserRepo, c.JWTManager)
	c.BookService = bookService.NewCatalogService(catalogRepo, pool, booksAPI, c.Cache)
	c.ReadingLists = readinglistService.NewReadingListService(listRepo, c.BookService, pool)
	c.BookClubService = bookclubService.NewBookClubService(c.BookClubRepo, c.ForumRepo, c.BookService, pool)
	c.ForumService = forumService.NewForumService(c.ForumRepo, c.BookClubRepo, c.UserRepo, pool)
	c.AdminService = adminService.NewAdminService(c.UserRepo, c.BookClubService)

	c.AuthHandler = userHandler.NewAuthHandler(c.UserService)
	c.BookHandler = bookHandler.NewBookHandler(c.BookService)
	c.ReadingListHandler = readinglistHandler.NewReadingListHandler(c.ReadingLists)
	c.BookClubHandler = bookclubHandler.NewBookClubHandler(c.BookClubService)
	c.ForumHandler = forumHandler.NewForumHandler(c.ForumService)
	c.AdminHandler = adminHandler.NewAdminHandler(c.AdminService)

	logger.Info("container initialized", map[string]interface{}{
		"environment": cfg.App.Environment,
	})
	return c, nil
}

// Cleanup releases infrastructure connections in reverse init order.
func (c *Container) Cleanup() {
	if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
		if err := rc.Close(); err != nil {
			logger.Error("failed to close redis", err)
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}
}
