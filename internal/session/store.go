// Package session keeps the per-user record of the question a user is
// currently answering. Absence of a record means the user has no pending
// question.
package session

import (
	"github.com/Fergoth/chat-bots-4/pkg/errors"
)

// ErrNoSession is returned by GetPending when the user has no pending question.
var ErrNoSession = errors.New(errors.ErrCodeNoSession, "no pending question for user")

// Store is the per-user pending-question record. Implementations must make
// each operation atomic for a given user id; callers rely on the delivery
// layer to never process two events of the same user concurrently.
type Store interface {
	HasPending(userID int64) (bool, error)
	GetPending(userID int64) (string, error)
	SetPending(userID int64, question string) error
	Clear(userID int64) error
}
