package mapper

import (
	"encoding/json"

	"kindalike-be/internal/entity"
	"kindalike-be/internal/model"
	"kindalike-be/pkg/search"

	"gorm.io/datatypes"
)

type ChatMapper struct{}

func NewChatMapper() *ChatMapper {
	return &ChatMapper{}
}

// Session Mappers

func (m *ChatMapper) ChatSessionToEntity(s *model.ChatSession) *entity.ChatSession {
	if s == nil {
		return nil
	}
	return &entity.ChatSession{
		Id:            s.Id,
		UserId:        s.UserId,
		StartedAt:     s.StartedAt,
		LastMessageAt: s.LastMessageAt,
		IsActive:      s.IsActive,
	}
}

func (m *ChatMapper) ChatSessionToModel(s *entity.ChatSession) *model.ChatSession {
	if s == nil {
		return nil
	}
	return &model.ChatSession{
		Id:            s.Id,
		UserId:        s.UserId,
		StartedAt:     s.StartedAt,
		LastMessageAt: s.LastMessageAt,
		IsActive:      s.IsActive,
	}
}

// Message Mappers

func (m *ChatMapper) ChatMessageToEntity(msg *model.ChatMessage) *entity.ChatMessage {
	if msg == nil {
		return nil
	}

	var recs []search.Listing
	if len(msg.Recommendations) > 0 {
		// A corrupted payload degrades to no recommendations rather than
		// failing the whole read.
		_ = json.Unmarshal(msg.Recommendations, &recs)
	}

	return &entity.ChatMessage{
		Id:              msg.Id,
		SessionId:       msg.SessionId,
		Role:            msg.Role,
		Content:         msg.Content,
		Recommendations: recs,
		CreatedAt:       msg.CreatedAt,
	}
}

func (m *ChatMapper) ChatMessageToModel(msg *entity.ChatMessage) *model.ChatMessage {
	if msg == nil {
		return nil
	}

	var recs datatypes.JSON
	if len(msg.Recommendations) > 0 {
		if raw, err := json.Marshal(msg.Recommendations); err == nil {
			recs = datatypes.JSON(raw)
		}
	}

	return &model.ChatMessage{
		Id:              msg.Id,
		SessionId:       msg.SessionId,
		Role:            msg.Role,
		Content:         msg.Content,
		Recommendations: recs,
		CreatedAt:       msg.CreatedAt,
	}
}
