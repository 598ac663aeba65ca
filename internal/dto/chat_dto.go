package dto

import (
	"time"

	"kindalike-be/pkg/search"
)

type ChatMessageRequest struct {
	Message   string `json:"message"`
	SessionId uint   `json:"session_id,omitempty"`
	Location  string `json:"location,omitempty"` // manual location override
}

type ChatMessageResponse struct {
	SessionId       uint             `json:"session_id"`
	MessageId       uint             `json:"message_id"` // the assistant turn
	Response        string           `json:"response"`
	Recommendations []search.Listing `json:"recommendations"`
}

type ChatSessionResponse struct {
	Id            uint      `json:"id"`
	StartedAt     time.Time `json:"started_at"`
	LastMessageAt time.Time `json:"last_message_at"`
	IsActive      bool      `json:"is_active"`
	MessageCount  int64     `json:"message_count"`
}

type ChatHistoryMessageResponse struct {
	Id              uint             `json:"id"`
	Role            string           `json:"role"`
	Content         string           `json:"content"`
	Recommendations []search.Listing `json:"recommendations"` // null on user turns
	CreatedAt       time.Time        `json:"created_at"`
}
