// Package telegram bridges Telegram long polling to the quiz controller.
package telegram

import (
	"fmt"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Fergoth/chat-bots-4/internal/config"
	"github.com/Fergoth/chat-bots-4/internal/middleware"
	"github.com/Fergoth/chat-bots-4/internal/notifier"
	"github.com/Fergoth/chat-bots-4/internal/quiz"
	"github.com/Fergoth/chat-bots-4/pkg/logger"
)

const numWorkers = 8

type Bot struct {
	api        *tgbotapi.BotAPI
	config     *config.Config
	controller *quiz.Controller
	limiter    *middleware.RateLimiter
	notifier   notifier.Notifier
	keyboard   tgbotapi.ReplyKeyboardMarkup

	// Worker pool for parallel processing
	workerChans []chan tgbotapi.Update
}

func InitBot(cfg *config.Config, controller *quiz.Controller, notif notifier.Notifier) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}

	if cfg.AppEnv == "development" {
		api.Debug = true
	}

	logger.Info("Authorized on account", "username", api.Self.UserName)

	bot := &Bot{
		api:         api,
		config:      cfg,
		controller:  controller,
		limiter:     middleware.NewRateLimiter(cfg.RateLimitPerUser, time.Minute),
		notifier:    notif,
		keyboard:    QuizKeyboard(),
		workerChans: make([]chan tgbotapi.Update, numWorkers),
	}

	for i := 0; i < numWorkers; i++ {
		bot.workerChans[i] = make(chan tgbotapi.Update, 100)
		go bot.startWorker(bot.workerChans[i])
	}

	go bot.startUpdateListener()

	notif.Notify("Телеграм Бот quiz запущен")
	logger.Info("Telegram quiz bot started")

	return bot, nil
}

func (b *Bot) startUpdateListener() {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	for {
		logger.Info("Starting update listener...")
		updates := b.api.GetUpdatesChan(u)

		for update := range updates {
			if update.Message == nil || update.Message.From == nil {
				continue
			}

			// Hashed dispatch to workers so one user's messages are
			// processed in order
			userID := update.Message.From.ID
			workerIdx := userID % int64(len(b.workerChans))
			if workerIdx < 0 {
				workerIdx = -workerIdx
			}
			b.workerChans[workerIdx] <- update
		}

		logger.Warn("Update channel closed. Restarting in 5 seconds...")
		time.Sleep(5 * time.Second)
	}
}

func (b *Bot) startWorker(ch chan tgbotapi.Update) {
	for update := range ch {
		b.handleUpdate(update)
	}
}

func (b *Bot) handleUpdate(update tgbotapi.Update) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Panic in handleUpdate", "error", r)
			b.notifier.Notify(fmt.Sprintf("Паника в обработчике Телеграм: %v", r))
		}
	}()

	if update.Message != nil {
		b.handleMessage(update.Message)
	}
}

func (b *Bot) handleMessage(message *tgbotapi.Message) {
	userID := message.From.ID
	chatID := message.Chat.ID

	logger.Debug("Received message", "user_id", userID, "text", message.Text)

	if !b.limiter.Allow(userID) {
		logger.Warn("Rate limit exceeded, dropping message", "user_id", userID)
		return
	}

	if message.IsCommand() {
		b.handleCommand(message)
		return
	}

	reply := b.controller.Handle(quiz.EventForText(userID, message.Text))
	b.sendMessage(chatID, reply, b.keyboard)
}

func (b *Bot) handleCommand(message *tgbotapi.Message) {
	switch message.Command() {
	case "start":
		b.sendMessage(message.Chat.ID, quiz.MsgGreeting, b.keyboard)
	case "cancel":
		b.sendMessage(message.Chat.ID, quiz.MsgCancel, tgbotapi.NewRemoveKeyboard(false))
	default:
		b.sendMessage(message.Chat.ID, quiz.MsgGreeting, b.keyboard)
	}
}

func (b *Bot) sendMessage(chatID int64, text string, keyboard interface{}) {
	msg := tgbotapi.NewMessage(chatID, text)

	switch kb := keyboard.(type) {
	case tgbotapi.ReplyKeyboardMarkup:
		msg.ReplyMarkup = kb
	case tgbotapi.ReplyKeyboardRemove:
		msg.ReplyMarkup = kb
	}

	maxRetries := 3
	for i := 0; i < maxRetries; i++ {
		if _, err := b.api.Send(msg); err != nil {
			logger.Error("Failed to send message", "error", err, "chat_id", chatID, "attempt", i+1)

			// Wait and retry on transient network errors
			if strings.Contains(err.Error(), "connection reset") ||
				strings.Contains(err.Error(), "timeout") ||
				strings.Contains(err.Error(), "network is unreachable") {
				time.Sleep(time.Duration(i+1) * time.Second)
				continue
			}

			b.notifier.Notify(fmt.Sprintf("Ошибка отправки сообщения в Телеграм: %v", err))
			return
		}
		return
	}

	b.notifier.Notify(fmt.Sprintf("Не удалось отправить сообщение в Телеграм после %d попыток", maxRetries))
}

func (b *Bot) Stop() {
	b.api.StopReceivingUpdates()
	logger.Info("Bot stopped receiving updates")
}
