// Package vk bridges VK Bots Long Poll to the quiz controller.
package vk

import (
	"context"
	"fmt"
	"time"

	"github.com/SevereCloud/vksdk/v2/api"
	"github.com/SevereCloud/vksdk/v2/api/params"
	"github.com/SevereCloud/vksdk/v2/events"
	longpoll "github.com/SevereCloud/vksdk/v2/longpoll-bot"
	"github.com/SevereCloud/vksdk/v2/object"

	"github.com/Fergoth/chat-bots-4/internal/config"
	"github.com/Fergoth/chat-bots-4/internal/middleware"
	"github.com/Fergoth/chat-bots-4/internal/notifier"
	"github.com/Fergoth/chat-bots-4/internal/quiz"
	"github.com/Fergoth/chat-bots-4/pkg/logger"
)

type Bot struct {
	vk         *api.VK
	lp         *longpoll.LongPoll
	controller *quiz.Controller
	limiter    *middleware.RateLimiter
	notifier   notifier.Notifier
	keyboard   *object.MessagesKeyboard
}

func InitBot(cfg *config.Config, controller *quiz.Controller, notif notifier.Notifier) (*Bot, error) {
	vk := api.NewVK(cfg.VKToken)

	lp, err := longpoll.NewLongPoll(vk, cfg.VKGroupID)
	if err != nil {
		return nil, fmt.Errorf("failed to init long poll: %w", err)
	}

	bot := &Bot{
		vk:         vk,
		lp:         lp,
		controller: controller,
		limiter:    middleware.NewRateLimiter(cfg.RateLimitPerUser, time.Minute),
		notifier:   notif,
		keyboard:   QuizKeyboard(),
	}

	// Long poll handlers run one event at a time, so a user's messages are
	// already processed in order.
	lp.MessageNew(bot.handleMessage)

	go bot.run()

	notif.Notify("VK Бот quiz запущен")
	logger.Info("VK quiz bot started", "group_id", cfg.VKGroupID)

	return bot, nil
}

func (b *Bot) run() {
	for {
		logger.Info("Starting VK long poll...")
		if err := b.lp.Run(); err != nil {
			logger.Error("Long poll stopped", "error", err)
			b.notifier.Notify(fmt.Sprintf("VK long poll остановлен: %v", err))
			time.Sleep(5 * time.Second)
			continue
		}
		return
	}
}

func (b *Bot) handleMessage(_ context.Context, obj events.MessageNewObject) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Panic in handleMessage", "error", r)
			b.notifier.Notify(fmt.Sprintf("Паника в обработчике VK: %v", r))
		}
	}()

	userID := int64(obj.Message.FromID)
	peerID := obj.Message.PeerID
	text := obj.Message.Text

	logger.Debug("Received message", "user_id", userID, "text", text)

	if !b.limiter.Allow(userID) {
		logger.Warn("Rate limit exceeded, dropping message", "user_id", userID)
		return
	}

	reply := b.controller.Handle(quiz.EventForText(userID, text))
	b.sendMessage(peerID, reply)
}

func (b *Bot) sendMessage(peerID int, text string) {
	msg := params.NewMessagesSendBuilder()
	msg.PeerID(peerID)
	msg.Message(text)
	msg.RandomID(0)
	msg.Keyboard(b.keyboard)

	if _, err := b.vk.MessagesSend(msg.Params); err != nil {
		logger.Error("Failed to send message", "error", err, "peer_id", peerID)
		b.notifier.Notify(fmt.Sprintf("Ошибка отправки сообщения в VK: %v", err))
	}
}

func (b *Bot) Stop() {
	b.lp.Shutdown()
	logger.Info("Bot stopped receiving events")
}
