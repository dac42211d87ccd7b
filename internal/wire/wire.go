//go:build wireinject
// +build wireinject

// Package wire 提供依赖注入配置
package wire

import (
	"context"

	"github.com/google/wire"

	"z-blog-ai-api/internal/application/aigen"
	"z-blog-ai-api/internal/config"
	"z-blog-ai-api/internal/domain/repository"
	"z-blog-ai-api/internal/infrastructure/llm"
	"z-blog-ai-api/internal/infrastructure/messaging"
	"z-blog-ai-api/internal/infrastructure/persistence/postgres"
	"z-blog-ai-api/internal/infrastructure/persistence/redis"
	"z-blog-ai-api/internal/interfaces/http/handler"
	"z-blog-ai-api/internal/interfaces/http/middleware"
	"z-blog-ai-api/internal/interfaces/http/router"
	"z-blog-ai-api/pkg/utils"
)

// DataLayer 数据层依赖容器（worker 等非 HTTP 进程使用）
type DataLayer struct {
	// PostgreSQL
	PgClient         *postgres.Client
	TxManager        *postgres.TxManager
	UserRepo         *postgres.UserRepository
	PostRepo         *postgres.PostRepository
	CommentRepo      *postgres.CommentRepository
	CategoryRepo     *postgres.CategoryRepository
	SavedPostRepo    *postgres.SavedPostRepository
	NotificationRepo *postgres.NotificationRepository
	GenerationRepo   *postgres.GenerationRecordRepository
	AuditLogRepo     *postgres.AuditLogRepository

	// Redis
	RedisClient *redis.Client
	Cache       *redis.Cache
	RateLimiter *redis.RateLimiter

	// Messaging
	Producer *messaging.Producer
}

// InitializeDataLayer 初始化数据层
func InitializeDataLayer(ctx context.Context, cfg *config.Config) (*DataLayer, func(), error) {
	wire.Build(
		RepoSet,
		RedisSet,
		MessagingSet,
		wire.Struct(new(DataLayer), "*"),
	)
	return nil, nil, nil
}

// InitializeApp 初始化整个应用（带路由器）
func InitializeApp(ctx context.Context, cfg *config.Config) (*router.Router, func(), error) {
	wire.Build(
		RepoSet,
		RedisSet,
		MessagingSet,
		AIGenSet,
		RouterSet,
	)
	return nil, nil, nil
}

// PostgresSet PostgreSQL 提供者集合
var PostgresSet = wire.NewSet(
	ProvidePostgresClient,
	postgres.NewTxManager,
	postgres.NewUserRepository,
	postgres.NewPostRepository,
	postgres.NewCommentRepository,
	postgres.NewCategoryRepository,
	postgres.NewSavedPostRepository,
	postgres.NewNotificationRepository,
	postgres.NewGenerationRecordRepository,
	postgres.NewAuditLogRepository,
)

// RedisSet Redis 提供者集合
var RedisSet = wire.NewSet(
	ProvideRedisClient,
	redis.NewCache,
	redis.NewRateLimiter,
	wire.Bind(new(middleware.RateLimiter), new(*redis.RateLimiter)),
	wire.Bind(new(handler.PostCache), new(*redis.Cache)),
)

// MessagingSet 消息队列提供者集合
var MessagingSet = wire.NewSet(
	ProvideMessagingProducer,
	wire.Bind(new(handler.Publisher), new(*messaging.Producer)),
)

// AIGenSet AI 生成提供者集合
var AIGenSet = wire.NewSet(
	llm.NewEinoFactory,
	aigen.NewEinoGateway,
	wire.Bind(new(aigen.Gateway), new(*aigen.EinoGateway)),
	aigen.NewService,
)

// RouterSet 路由器提供者集合
var RouterSet = wire.NewSet(
	ProvideJWTManager,
	ProvideJWTConfig,
	handler.NewHealthHandler,
	handler.NewAuthHandler,
	handler.NewUserHandler,
	handler.NewPostHandler,
	handler.NewCommentHandler,
	handler.NewCategoryHandler,
	handler.NewSavedPostHandler,
	handler.NewNotificationHandler,
	handler.NewAIGenHandler,
	handler.NewAdminHandler,
	wire.Struct(new(router.Handlers), "*"),
	router.New,
)

// RepoSet 整合了具体实现与接口绑定的集合
var RepoSet = wire.NewSet(
	PostgresSet,
	wire.Bind(new(repository.Transactor), new(*postgres.TxManager)),
	wire.Bind(new(repository.UserRepository), new(*postgres.UserRepository)),
	wire.Bind(new(repository.PostRepository), new(*postgres.PostRepository)),
	wire.Bind(new(repository.CommentRepository), new(*postgres.CommentRepository)),
	wire.Bind(new(repository.CategoryRepository), new(*postgres.CategoryRepository)),
	wire.Bind(new(repository.SavedPostRepository), new(*postgres.SavedPostRepository)),
	wire.Bind(new(repository.NotificationRepository), new(*postgres.NotificationRepository)),
	wire.Bind(new(repository.GenerationRecordRepository), new(*postgres.GenerationRecordRepository)),
	wire.Bind(new(repository.AuditLogRepository), new(*postgres.AuditLogRepository)),
)

// ProvidePostgresClient 提供 PostgreSQL 客户端
func ProvidePostgresClient(cfg *config.Config) (*postgres.Client, func(), error) {
	client, err := postgres.NewClient(&cfg.Database.Postgres)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		client.Close()
	}
	return client, cleanup, nil
}

// ProvideRedisClient 提供 Redis 客户端
func ProvideRedisClient(cfg *config.Config) (*redis.Client, func(), error) {
	client, err := redis.NewClient(&cfg.Cache.Redis)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		client.Close()
	}
	return client, cleanup, nil
}

// ProvideMessagingProducer 提供消息生产者
func ProvideMessagingProducer(redisClient *redis.Client, cfg *config.Config) *messaging.Producer {
	maxLen := cfg.Messaging.RedisStream.MaxLen
	if maxLen <= 0 {
		maxLen = 100000
	}
	return messaging.NewProducer(redisClient.Redis(), int64(maxLen))
}

// ProvideJWTManager 提供 JWT 管理器
func ProvideJWTManager(cfg *config.Config) *utils.JWTManager {
	return utils.NewJWTManager(cfg.Security.JWT.Secret, cfg.Security.JWT.Issuer)
}

// ProvideJWTConfig 提供 JWT 配置
func ProvideJWTConfig(cfg *config.Config) config.JWTConfig {
	return cfg.Security.JWT
}
