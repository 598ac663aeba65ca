package entity

import (
	"time"
)

type ChatSession struct {
	Id            uint
	UserId        uint
	StartedAt     time.Time
	LastMessageAt time.Time
	IsActive      bool
	MessageCount  int64 // populated on listing queries only
}
