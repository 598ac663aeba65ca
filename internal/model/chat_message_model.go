package model

import (
	"time"

	"gorm.io/datatypes"
)

type ChatMessage struct {
	Id              uint           `gorm:"primaryKey;autoIncrement"`
	SessionId       uint           `gorm:"not null;index"`
	Role            string         `gorm:"type:varchar(20);not null"` // "user" or "assistant"
	Content         string         `gorm:"type:text;not null"`
	Recommendations datatypes.JSON // null on user turns and empty results
	CreatedAt       time.Time      `gorm:"autoCreateTime"`
}

func (ChatMessage) TableName() string {
	return "chat_messages"
}
