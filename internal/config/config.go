package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	SMTP     SMTPConfig
	Keys     APIKeys
}

type AppConfig struct {
	Environment    string
	LogFilePath    string
	SessionStore   string // "memory" or "redis"
	SessionTTLMin  int
	IdleTimeoutMin int
	NatsURL        string
	RedisURL       string
	OrderTopicName string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type SMTPConfig struct {
	Host        string
	Port        int
	Email       string
	Password    string
	SenderEmail string
}

type APIKeys struct {
	GoogleGemini string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Environment:    getEnv("GO_ENV", "development"),
			LogFilePath:    getEnv("LOG_FILE_PATH", "logs/chatbot.log"),
			SessionStore:   getEnv("SESSION_STORE", "memory"),
			SessionTTLMin:  getEnvAsInt("SESSION_TTL_MINUTES", 30),
			IdleTimeoutMin: getEnvAsInt("IDLE_TIMEOUT_MINUTES", 5),
			NatsURL:        getEnv("NATS_URL", ""),
			RedisURL:       getEnv("REDIS_URL", "redis://localhost:6379"),
			OrderTopicName: getEnv("ORDER_PLACED_TOPIC_NAME", "ORDER_PLACED"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "ecommerce_chatbot"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		SMTP: SMTPConfig{
			Host:        getEnv("SMTP_HOST", ""),
			Port:        getEnvAsInt("SMTP_PORT", 587),
			Email:       getEnv("SMTP_EMAIL", ""),
			Password:    getEnv("SMTP_PASSWORD", ""),
			SenderEmail: getEnv("SMTP_SENDER_EMAIL", "orders@example.com"),
		},
		Keys: APIKeys{
			GoogleGemini: getEnv("GOOGLE_GEMINI_API_KEY", ""),
		},
	}
}

// SessionTTL converts the configured minutes into a duration.
func (c *Config) SessionTTL() time.Duration {
	return time.Duration(c.App.SessionTTLMin) * time.Minute
}

// IdleTimeout is how long a prompt may wait for input before the
// session is terminated.
func (c *Config) IdleTimeout() time.Duration {
	return time.Duration(c.App.IdleTimeoutMin) * time.Minute
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
