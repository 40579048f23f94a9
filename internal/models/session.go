package models

import (
	"time"
)

// QuizSession is the stored pending question of one user on one channel.
// Telegram and VK audiences are distinct, so the channel name is part of
// the key.
type QuizSession struct {
	Channel         string    `gorm:"primaryKey;type:varchar(16)"`
	UserID          int64     `gorm:"primaryKey;autoIncrement:false"`
	PendingQuestion string    `gorm:"type:text;not null"`
	CreatedAt       time.Time `gorm:"autoCreateTime"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime"`
}

// Channel name constants
const (
	ChannelTelegram = "telegram"
	ChannelVK       = "vk"
)

func (QuizSession) TableName() string {
	return "quiz_sessions"
}
