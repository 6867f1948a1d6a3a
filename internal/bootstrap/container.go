package bootstrap

import (
	"context"
	"log"

	"commerce-chatbot-be/internal/config"
	"commerce-chatbot-be/internal/pkg/logger"
	"commerce-chatbot-be/internal/pkg/mailer"
	"commerce-chatbot-be/internal/repository/contract"
	"commerce-chatbot-be/internal/repository/memory"
	"commerce-chatbot-be/internal/repository/redisstore"
	"commerce-chatbot-be/internal/repository/unitofwork"
	"commerce-chatbot-be/internal/service"
	"commerce-chatbot-be/pkg/catalog"
	"commerce-chatbot-be/pkg/dialogue"
	"commerce-chatbot-be/pkg/intent"

	pktNats "commerce-chatbot-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	ChatService service.IChatService

	// Background services (exposed for main to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	// The REPL owns stdout, so system logs go to the file only.
	sysLogger := logger.NewIsolatedLogger(cfg.App.LogFilePath)

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderEmail,
		sysLogger,
	)

	// 2. Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// Optional NATS mirror for external consumers.
	var natsPub *pktNats.Publisher
	if cfg.App.NatsURL != "" {
		var err error
		natsPub, err = pktNats.NewPublisher(cfg.App.NatsURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
			natsPub = nil
		}
	}

	// 3. Session storage
	var sessionRepo contract.SessionRepository
	if cfg.App.SessionStore == "redis" {
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
			opt = &redis.Options{
				Addr: cfg.App.RedisURL,
			}
		}
		rdb := redis.NewClient(opt)
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			log.Printf("[WARN] Failed to connect to Redis: %v", err)
		}
		sessionRepo = redisstore.NewSessionRepository(rdb, cfg.SessionTTL())
	} else {
		sessionRepo = memory.NewSessionRepository(cfg.SessionTTL())
	}

	// 4. Catalog components
	catalogStore := service.NewCatalogStore(uowFactory)
	resolver := catalog.NewResolver(catalogStore)
	inferrer := catalog.NewInferrer(catalogStore)
	matcher := catalog.NewMatcher(catalogStore)

	// 5. Services
	publisherService := service.NewPublisherService(cfg.App.OrderTopicName, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.App.OrderTopicName,
		emailService,
		sysLogger,
	)

	orderService := service.NewOrderService(uowFactory, publisherService, natsPub, sysLogger)

	engine := dialogue.NewEngine(catalogStore, matcher, orderService, dialogue.NewValidator())

	chatService := service.NewChatService(
		intent.NewClassifier(),
		catalogStore,
		resolver,
		inferrer,
		engine,
		orderService,
		sessionRepo,
		cfg.Keys.GoogleGemini,
		sysLogger,
	)

	return &Container{
		ChatService:     chatService,
		ConsumerService: consumerService,
		Logger:          sysLogger,
	}
}
