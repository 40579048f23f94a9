package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	// Telegram
	TelegramToken string

	// VK
	VKToken   string
	VKGroupID int

	// Operator notifications
	DebugBotToken string
	DebugChatID   int64

	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Question bank
	QuestionsDir      string
	QuestionsEncoding string

	// Application
	AppEnv   string
	LogLevel string

	// Rate Limiting
	RateLimitPerUser int
}

func LoadConfig() (*Config, error) {
	cfg := &Config{
		TelegramToken: getEnv("TELEGRAM_BOT_TOKEN", ""),
		VKToken:       getEnv("VK_TOKEN", ""),
		VKGroupID:     getEnvInt("VK_GROUP_ID", 0),

		DebugBotToken: getEnv("TELEGRAM_DEBUG_BOT_TOKEN", ""),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "quizbot"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "quizbot_db"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		QuestionsDir:      getEnv("QUIZ_QUESTIONS_DIR", "quiz-questions"),
		QuestionsEncoding: getEnv("QUIZ_QUESTIONS_ENCODING", "koi8-r"),

		AppEnv:   getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		RateLimitPerUser: getEnvInt("RATE_LIMIT_PER_USER", 20),
	}

	// The operator chat id is only meaningful together with the debug token
	chatIDStr := getEnv("TELEGRAM_CHAT_ID", "")
	if chatIDStr != "" {
		id, err := strconv.ParseInt(chatIDStr, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid TELEGRAM_CHAT_ID: %w", err)
		}
		cfg.DebugChatID = id
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.DBPassword == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.QuestionsDir == "" {
		return fmt.Errorf("QUIZ_QUESTIONS_DIR is required")
	}
	if c.DebugBotToken != "" && c.DebugChatID == 0 {
		return fmt.Errorf("TELEGRAM_CHAT_ID is required when TELEGRAM_DEBUG_BOT_TOKEN is set")
	}
	return nil
}

func (c *Config) ValidateTelegram() error {
	if c.TelegramToken == "" {
		return fmt.Errorf("TELEGRAM_BOT_TOKEN is required")
	}
	return nil
}

func (c *Config) ValidateVK() error {
	if c.VKToken == "" {
		return fmt.Errorf("VK_TOKEN is required")
	}
	if c.VKGroupID == 0 {
		return fmt.Errorf("VK_GROUP_ID is required")
	}
	return nil
}

func (c *Config) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
