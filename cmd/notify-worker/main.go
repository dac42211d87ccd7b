// Package main 通知分发执行器入口（notify-worker）
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"z-blog-ai-api/internal/config"
	"z-blog-ai-api/internal/domain/entity"
	"z-blog-ai-api/internal/infrastructure/messaging"
	"z-blog-ai-api/internal/infrastructure/persistence/postgres"
	"z-blog-ai-api/internal/infrastructure/persistence/redis"
	"z-blog-ai-api/pkg/logger"
	"z-blog-ai-api/pkg/tracer"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger.Init(cfg.Observability.Logging.Level, cfg.Observability.Logging.Format)
	ctx := context.Background()

	shutdown, err := tracer.Init(ctx, tracer.Config{
		ServiceName: "notify-worker",
		Endpoint:    cfg.Observability.Tracing.Endpoint,
		SampleRate:  cfg.Observability.Tracing.SampleRate,
		Enabled:     cfg.Observability.Tracing.Enabled,
	})
	if err != nil {
		logger.Fatal(ctx, "failed to init tracer", err)
	}
	defer func() { _ = shutdown(ctx) }()

	pgClient, err := postgres.NewClient(&cfg.Database.Postgres)
	if err != nil {
		logger.Fatal(ctx, "failed to init postgres", err)
	}
	defer func() { _ = pgClient.Close() }()

	redisClient, err := redis.NewClient(&cfg.Cache.Redis)
	if err != nil {
		logger.Fatal(ctx, "failed to init redis", err)
	}
	defer func() { _ = redisClient.Close() }()

	notificationRepo := postgres.NewNotificationRepository(pgClient)
	auditLogRepo := postgres.NewAuditLogRepository(pgClient)

	consumerConfig := func(stream messaging.Stream, group messaging.ConsumerGroup) messaging.ConsumerConfig {
		return messaging.ConsumerConfig{
			Stream:       stream,
			Group:        group,
			ConsumerName: hostnameConsumerName(),
			BlockTimeout: cfg.Messaging.RedisStream.BlockTimeout,
			RetryLimit:   cfg.Messaging.RedisStream.RetryLimit,
			Backoff: messaging.BackoffConfig{
				Initial:    cfg.Messaging.RedisStream.RetryBackoff.Initial,
				Max:        cfg.Messaging.RedisStream.RetryBackoff.Max,
				Multiplier: cfg.Messaging.RedisStream.RetryBackoff.Multiplier,
			},
		}
	}

	consumer := messaging.NewConsumer(redisClient.Redis(),
		consumerConfig(messaging.StreamNotification, messaging.ConsumerGroupNotifyWorker))
	archiver := messaging.NewConsumer(redisClient.Redis(),
		consumerConfig(messaging.StreamAuditLog, messaging.ConsumerGroupArchiver))

	// 点赞/评论/回复/系统通知统一落库
	persist := func(ctx context.Context, msg *messaging.Message) error {
		var event messaging.NotificationMessage
		if err := msg.UnmarshalPayload(&event); err != nil {
			return err
		}

		return notificationRepo.Create(ctx, &entity.Notification{
			RecipientID: event.RecipientID,
			ActorID:     event.ActorID,
			Type:        entity.NotificationType(event.Type),
			PostID:      event.PostID,
			CommentID:   event.CommentID,
			Message:     event.Message,
		})
	}

	consumer.RegisterHandler(string(entity.NotificationTypeComment), persist)
	consumer.RegisterHandler(string(entity.NotificationTypeReply), persist)
	consumer.RegisterHandler(string(entity.NotificationTypeLike), persist)
	consumer.RegisterHandler(string(entity.NotificationTypeSystem), persist)

	// 管理操作审计事件归档落库
	archive := func(ctx context.Context, msg *messaging.Message) error {
		var event messaging.AuditLogMessage
		if err := msg.UnmarshalPayload(&event); err != nil {
			return err
		}

		var detail string
		if len(event.Metadata) > 0 {
			if b, err := json.Marshal(event.Metadata); err == nil {
				detail = string(b)
			}
		}

		return auditLogRepo.Create(ctx, &entity.AuditLog{
			ActorID:      event.UserID,
			Action:       event.Action,
			ResourceType: event.ResourceType,
			ResourceID:   event.ResourceID,
			RequestID:    event.RequestID,
			TraceID:      event.TraceID,
			IPAddress:    event.IPAddress,
			Detail:       detail,
		})
	}

	archiver.RegisterHandler("audit", archive)

	if err := consumer.Start(ctx); err != nil {
		logger.Fatal(ctx, "failed to start consumer", err)
	}
	if err := archiver.Start(ctx); err != nil {
		logger.Fatal(ctx, "failed to start archiver", err)
	}

	go consumer.MonitorDLQ(ctx, 100)
	go archiver.MonitorDLQ(ctx, 100)

	log := logger.FromContext(ctx)
	log.Info("notify-worker started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("notify-worker shutting down")
	consumer.Stop()
	archiver.Stop()
}

func hostnameConsumerName() string {
	host, err := os.Hostname()
	if err != nil || host == "" {
		host = "worker"
	}
	return fmt.Sprintf("%s-%d", host, os.Getpid())
}
