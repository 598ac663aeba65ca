package model

import (
	"time"
)

type ChatSession struct {
	Id            uint      `gorm:"primaryKey;autoIncrement"`
	UserId        uint      `gorm:"not null;index"` // User ownership for data isolation
	StartedAt     time.Time `gorm:"not null"`
	LastMessageAt time.Time `gorm:"not null"`
	IsActive      bool      `gorm:"not null;default:true"`
}

func (ChatSession) TableName() string {
	return "chat_sessions"
}
