package vk

import (
	"github.com/SevereCloud/vksdk/v2/object"

	"github.com/Fergoth/chat-bots-4/internal/quiz"
)

// QuizKeyboard builds the one-time keyboard attached to every reply. It is
// constructed once at startup and reused, never mutated.
func QuizKeyboard() *object.MessagesKeyboard {
	keyboard := object.NewMessagesKeyboard(true)
	keyboard.AddRow()
	keyboard.AddTextButton(quiz.BtnNewQuestion, "", "primary")
	keyboard.AddTextButton(quiz.BtnGiveUp, "", "negative")
	keyboard.AddRow()
	keyboard.AddTextButton(quiz.BtnMyScore, "", "primary")
	return keyboard
}
