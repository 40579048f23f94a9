package session

import (
	"github.com/Fergoth/chat-bots-4/internal/models"
	"github.com/Fergoth/chat-bots-4/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStore persists pending questions in postgres, one row per
// (channel, user). Single-row upserts and deletes keep each operation
// atomic per key.
type GormStore struct {
	db      *gorm.DB
	channel string
}

func NewGormStore(db *gorm.DB, channel string) *GormStore {
	return &GormStore{db: db, channel: channel}
}

func (s *GormStore) HasPending(userID int64) (bool, error) {
	var count int64
	result := s.db.Model(&models.QuizSession{}).
		Where("channel = ? AND user_id = ?", s.channel, userID).
		Count(&count)
	if result.Error != nil {
		return false, errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to check session")
	}
	return count > 0, nil
}

func (s *GormStore) GetPending(userID int64) (string, error) {
	var record models.QuizSession
	result := s.db.Where("channel = ? AND user_id = ?", s.channel, userID).First(&record)

	if result.Error == gorm.ErrRecordNotFound {
		return "", ErrNoSession
	}
	if result.Error != nil {
		return "", errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to get session")
	}

	return record.PendingQuestion, nil
}

func (s *GormStore) SetPending(userID int64, question string) error {
	record := models.QuizSession{
		Channel:         s.channel,
		UserID:          userID,
		PendingQuestion: question,
	}

	result := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "channel"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"pending_question", "updated_at"}),
	}).Create(&record)
	if result.Error != nil {
		return errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to set session")
	}
	return nil
}

func (s *GormStore) Clear(userID int64) error {
	result := s.db.Where("channel = ? AND user_id = ?", s.channel, userID).
		Delete(&models.QuizSession{})
	if result.Error != nil {
		return errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to clear session")
	}
	return nil
}
