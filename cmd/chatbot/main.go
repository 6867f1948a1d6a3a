package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"commerce-chatbot-be/internal/bootstrap"
	"commerce-chatbot-be/internal/cli"
	"commerce-chatbot-be/internal/config"
	"commerce-chatbot-be/pkg/database"
)

func main() {
	// 1. Load configuration
	cfg := config.Load()

	// 2. Initialize database
	gormDB, err := database.NewGormDB(database.GormConfig{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.Name,
		SSLMode:  cfg.Database.SSLMode,
	})
	if err != nil {
		log.Fatalf("Unable to connect to GORM DB: %v", err)
	}

	// 3. Bootstrap dependencies
	container := bootstrap.NewContainer(gormDB, cfg)
	defer container.Logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 4. Start the notification consumer
	if err := container.ConsumerService.Consume(ctx); err != nil {
		container.Logger.Error("main", "failed to start consumer service", map[string]interface{}{
			"error": err.Error(),
		})
	}

	// 5. Run the chat loop
	repl := cli.NewREPL(container.ChatService, cfg.IdleTimeout(), container.Logger)
	if err := repl.Run(ctx); err != nil {
		log.Fatalf("Chat session failed: %v", err)
	}
}
