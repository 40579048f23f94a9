package quiz

import (
	"errors"
	"fmt"

	"github.com/Fergoth/chat-bots-4/internal/session"
	"github.com/Fergoth/chat-bots-4/pkg/logger"
)

// Button labels shared by all channel keyboards.
const (
	BtnNewQuestion = "Новый вопрос"
	BtnGiveUp      = "Сдаться"
	BtnMyScore     = "Мой счёт"
)

// Reply texts.
const (
	MsgGreeting      = "Привет, я бот-викторина."
	MsgCorrect       = "Правильно! Поздравляю! Для следующего вопроса нажми «Новый вопрос»"
	MsgWrong         = "Неправильно… Попробуешь ещё раз?"
	MsgNoActive      = "У вас нет активных вопросов. Нажмите «Новый вопрос»"
	MsgCancel        = "Викторина завершена."
	msgUnansweredFmt = "Вы не ответили на предыдущий вопрос:%s"
	msgGiveUpFmt     = "Правильный ответ: %s. Чтобы продолжить нажми «Новый вопрос»"
)

type EventKind int

const (
	EventNewQuestion EventKind = iota
	EventSubmitAnswer
	EventGiveUp
)

// Event is one inbound user action delivered by a channel adapter.
type Event struct {
	UserID int64
	Kind   EventKind
	Text   string
}

// EventForText maps a message text to an event: the keyboard buttons map to
// their actions, any other text is an answer attempt.
func EventForText(userID int64, text string) Event {
	switch text {
	case BtnNewQuestion:
		return Event{UserID: userID, Kind: EventNewQuestion}
	case BtnGiveUp:
		return Event{UserID: userID, Kind: EventGiveUp}
	default:
		return Event{UserID: userID, Kind: EventSubmitAnswer, Text: text}
	}
}

// Controller runs the per-user quiz state machine. A user is IDLE when the
// store has no record for them and awaiting an answer otherwise. Handle
// always produces a reply for the user; store or bank failures reset the
// user to IDLE instead of surfacing.
type Controller struct {
	bank  *Bank
	store session.Store
}

func NewController(bank *Bank, store session.Store) *Controller {
	return &Controller{bank: bank, store: store}
}

func (c *Controller) Handle(e Event) string {
	switch e.Kind {
	case EventNewQuestion:
		return c.newQuestion(e.UserID)
	case EventGiveUp:
		return c.giveUp(e.UserID)
	default:
		return c.submitAnswer(e.UserID, e.Text)
	}
}

func (c *Controller) newQuestion(userID int64) string {
	pending, err := c.store.GetPending(userID)
	if err == nil {
		// Do not overwrite an unanswered question
		return fmt.Sprintf(msgUnansweredFmt, pending)
	}
	if !errors.Is(err, session.ErrNoSession) {
		c.reset(userID, err)
	}

	question, err := c.bank.RandomQuestion()
	if err != nil {
		logger.Error("Failed to pick a question", "user_id", userID, "error", err)
		return MsgNoActive
	}

	if err := c.store.SetPending(userID, question); err != nil {
		logger.Error("Failed to store pending question", "user_id", userID, "error", err)
		return MsgNoActive
	}

	return question
}

func (c *Controller) submitAnswer(userID int64, text string) string {
	answer, ok := c.pendingAnswer(userID)
	if !ok {
		return MsgNoActive
	}

	if !Matches(text, answer) {
		return MsgWrong
	}

	if err := c.store.Clear(userID); err != nil {
		logger.Error("Failed to clear session", "user_id", userID, "error", err)
	}
	return MsgCorrect
}

func (c *Controller) giveUp(userID int64) string {
	answer, ok := c.pendingAnswer(userID)
	if !ok {
		return MsgNoActive
	}

	if err := c.store.Clear(userID); err != nil {
		logger.Error("Failed to clear session", "user_id", userID, "error", err)
	}
	return fmt.Sprintf(msgGiveUpFmt, answer)
}

// pendingAnswer resolves the canonical answer of the user's pending
// question. Any inconsistency between store and bank clears the record and
// reports the user as idle.
func (c *Controller) pendingAnswer(userID int64) (string, bool) {
	question, err := c.store.GetPending(userID)
	if err != nil {
		if !errors.Is(err, session.ErrNoSession) {
			c.reset(userID, err)
		}
		return "", false
	}

	answer, err := c.bank.AnswerFor(question)
	if err != nil {
		c.reset(userID, err)
		return "", false
	}

	return answer, true
}

func (c *Controller) reset(userID int64, cause error) {
	logger.Warn("Resetting inconsistent session", "user_id", userID, "error", cause)
	if err := c.store.Clear(userID); err != nil {
		logger.Error("Failed to clear session", "user_id", userID, "error", err)
	}
}
