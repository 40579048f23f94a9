package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Fergoth/chat-bots-4/internal/quiz"
)

// QuizKeyboard builds the reply keyboard shown with every bot message. It
// is constructed once at startup and reused, never mutated.
func QuizKeyboard() tgbotapi.ReplyKeyboardMarkup {
	return tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(quiz.BtnNewQuestion),
			tgbotapi.NewKeyboardButton(quiz.BtnGiveUp),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(quiz.BtnMyScore),
		),
	)
}
