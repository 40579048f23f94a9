// Package notifier forwards operational messages to an operator chat.
// Notification is an explicit call at the few places that need it; regular
// logging stays local.
package notifier

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Fergoth/chat-bots-4/pkg/logger"
)

// Notifier is a best-effort text sink. Implementations must not block the
// caller on delivery problems.
type Notifier interface {
	Notify(text string)
}

// Telegram posts messages to a fixed operator chat through a separate
// debug bot.
type Telegram struct {
	api    *tgbotapi.BotAPI
	chatID int64
}

func NewTelegram(token string, chatID int64) (*Telegram, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create debug bot: %w", err)
	}
	return &Telegram{api: api, chatID: chatID}, nil
}

func (n *Telegram) Notify(text string) {
	msg := tgbotapi.NewMessage(n.chatID, text)
	if _, err := n.api.Send(msg); err != nil {
		logger.Error("Failed to notify operator chat", "error", err)
	}
}

// Nop discards all messages. Used when no debug bot is configured.
type Nop struct{}

func (Nop) Notify(string) {}
