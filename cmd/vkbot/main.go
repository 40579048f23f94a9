package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/Fergoth/chat-bots-4/internal/config"
	"github.com/Fergoth/chat-bots-4/internal/database"
	"github.com/Fergoth/chat-bots-4/internal/loader"
	"github.com/Fergoth/chat-bots-4/internal/models"
	"github.com/Fergoth/chat-bots-4/internal/notifier"
	"github.com/Fergoth/chat-bots-4/internal/quiz"
	"github.com/Fergoth/chat-bots-4/internal/session"
	"github.com/Fergoth/chat-bots-4/pkg/logger"
	"github.com/Fergoth/chat-bots-4/vk"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment")
	}

	logger.Init()
	defer logger.Sync()

	logger.Info("Starting VK quiz bot...")

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("Failed to load config", err)
	}
	if err := cfg.ValidateVK(); err != nil {
		logger.Fatal("Failed to load config", err)
	}

	enc, err := loader.EncodingByName(cfg.QuestionsEncoding)
	if err != nil {
		logger.Fatal("Bad questions encoding", err)
	}

	pairs, err := loader.LoadDir(cfg.QuestionsDir, enc)
	if err != nil {
		logger.Fatal("Failed to load questions", err)
	}

	bank, err := quiz.NewBank(pairs)
	if err != nil {
		logger.Fatal("Failed to build question bank", err)
	}
	logger.Info("Question bank loaded", "questions", bank.Len())

	db, err := database.Connect(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		logger.Fatal("Failed to run migrations", err)
	}

	var notif notifier.Notifier = notifier.Nop{}
	if cfg.DebugBotToken != "" {
		notif, err = notifier.NewTelegram(cfg.DebugBotToken, cfg.DebugChatID)
		if err != nil {
			logger.Fatal("Failed to create operator notifier", err)
		}
	}

	store := session.NewGormStore(db, models.ChannelVK)
	controller := quiz.NewController(bank, store)

	bot, err := vk.InitBot(cfg, controller, notif)
	if err != nil {
		logger.Fatal("Failed to initialize bot", err)
	}

	logger.Info("Bot started successfully", "env", cfg.AppEnv)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down gracefully...")
	bot.Stop()
	logger.Info("Bot stopped")
}
