// Package quiz is the channel-agnostic engine of the trivia bot: the
// question bank, the typo-tolerant answer matcher and the per-user
// conversation state machine.
package quiz

import (
	"math/rand/v2"

	"github.com/Fergoth/chat-bots-4/pkg/errors"
)

var (
	ErrEmptyBank       = errors.New(errors.ErrCodeEmptyBank, "no questions loaded")
	ErrUnknownQuestion = errors.New(errors.ErrCodeUnknownQuestion, "question not in bank")
)

// Pair is one question with its canonical answer.
type Pair struct {
	Question string
	Answer   string
}

// Bank is the immutable question collection. It is built once at startup
// and safe for concurrent readers without locking.
type Bank struct {
	answers   map[string]string
	questions []string
}

// NewBank builds a bank from loaded pairs. A duplicate question keeps the
// last answer seen. At least one pair is required, the quiz cannot run on
// an empty bank.
func NewBank(pairs []Pair) (*Bank, error) {
	if len(pairs) == 0 {
		return nil, ErrEmptyBank
	}

	answers := make(map[string]string, len(pairs))
	questions := make([]string, 0, len(pairs))
	for _, p := range pairs {
		if _, ok := answers[p.Question]; !ok {
			questions = append(questions, p.Question)
		}
		answers[p.Question] = p.Answer
	}

	return &Bank{answers: answers, questions: questions}, nil
}

// RandomQuestion returns a uniformly chosen question text.
func (b *Bank) RandomQuestion() (string, error) {
	if len(b.questions) == 0 {
		return "", ErrEmptyBank
	}
	return b.questions[rand.IntN(len(b.questions))], nil
}

// AnswerFor returns the canonical answer of a question previously handed
// out by RandomQuestion.
func (b *Bank) AnswerFor(question string) (string, error) {
	answer, ok := b.answers[question]
	if !ok {
		return "", ErrUnknownQuestion
	}
	return answer, nil
}

// Len reports the number of distinct questions.
func (b *Bank) Len() int {
	return len(b.questions)
}
