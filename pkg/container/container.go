package container

import (
	"context"
	"fmt"
	"time"

	"leearn-backend/internal/config"
	infraAI "leearn-backend/internal/infrastructure/ai"
	infraCache "leearn-backend/internal/infrastructure/cache"
	"leearn-backend/internal/infrastructure/database"
	"leearn-backend/pkg/cache"
	"leearn-backend/pkg/jwt"
	"leearn-backend/pkg/logger"

	aiDomain "leearn-backend/internal/domains/ai"
	aiHandler "leearn-backend/internal/domains/ai/handler"
	"leearn-backend/internal/domains/comment"
	commentHandler "leearn-backend/internal/domains/comment/handler"
	commentRepo "leearn-backend/internal/domains/comment/repository"
	commentService "leearn-backend/internal/domains/comment/service"
	"leearn-backend/internal/domains/content"
	contentHandler "leearn-backend/internal/domains/content/handler"
	contentRepo "leearn-backend/internal/domains/content/repository"
	contentService "leearn-backend/internal/domains/content/service"
	"leearn-backend/internal/domains/friendship"
	friendshipHandler "leearn-backend/internal/domains/friendship/handler"
	friendshipRepo "leearn-backend/internal/domains/friendship/repository"
	friendshipService "leearn-backend/internal/domains/friendship/service"
	"leearn-backend/internal/domains/user"
	userHandler "leearn-backend/internal/domains/user/handler"
	userRepo "leearn-backend/internal/domains/user/repository"
	userService "leearn-backend/internal/domains/user/service"
)

// Container holds the whole dependency graph. Everything in it is a
// singleton wired once at startup.
type Container struct {
	// Infrastructure
	Config     *config.Config
	DB         *database.PostgresDB
	Cache      cache.Cache
	JWTManager *jwt.Manager
	Responder  aiDomain.Responder

	// Repositories
	UserRepo       user.Repository
	ContentRepo    content.Repository
	CommentRepo    comment.Repository
	FriendshipRepo friendship.Repository

	// Services
	UserService       user.Service
	ContentService    content.Service
	CommentService    comment.Service
	FriendshipService friendship.Service

	// Handlers
	UserHandler       *userHandler.UserHandler
	ContentHandler    *contentHandler.ContentHandler
	CommentHandler    *commentHandler.CommentHandler
	FriendshipHandler *friendshipHandler.FriendshipHandler
	AIHandler         *aiHandler.AIHandler

	redis *infraCache.RedisCache
}

// NewContainer builds the dependency graph in order: config, infrastructure,
// repositories, services, handlers.
func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	c.Config = cfg

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	// Database
	c.DB = database.NewPostgresDB(cfg.LoadDatabaseConfig())
	if err := c.DB.Connect(ctx); err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	if err := c.DB.Migrate(); err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}

	// Cache
	c.redis = infraCache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := c.redis.Connect(ctx); err != nil {
		return nil, fmt.Errorf("connect redis: %w", err)
	}
	c.Cache = c.redis

	// Auth + AI collaborators
	c.JWTManager = jwt.NewManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)
	c.Responder = infraAI.NewMockResponder()

	// Repositories
	c.UserRepo = userRepo.NewPostgresRepository(c.DB.Pool, c.Cache)
	c.ContentRepo = contentRepo.NewPostgresRepository(c.DB.Pool, c.Cache)
	c.CommentRepo = commentRepo.NewPostgresRepository(c.DB.Pool)
	c.FriendshipRepo = friendshipRepo.NewPostgresRepository(c.DB.Pool)

	// Services
	c.UserService = userService.NewUserService(c.UserRepo)
	c.ContentService = contentService.NewContentService(c.ContentRepo)
	c.CommentService = commentService.NewCommentService(c.CommentRepo)
	c.FriendshipService = friendshipService.NewFriendshipService(c.FriendshipRepo)

	// Handlers
	c.UserHandler = userHandler.NewUserHandler(c.UserService, c.JWTManager)
	c.ContentHandler = contentHandler.NewContentHandler(c.ContentService)
	c.CommentHandler = commentHandler.NewCommentHandler(c.CommentService)
	c.FriendshipHandler = friendshipHandler.NewFriendshipHandler(c.FriendshipService)
	c.AIHandler = aiHandler.NewAIHandler(c.Responder)

	return c, nil
}

// Cleanup releases infrastructure resources on shutdown.
func (c *Container) Cleanup() {
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			logger.Error("close redis", err)
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}
}
