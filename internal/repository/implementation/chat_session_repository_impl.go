package implementation

import (
	"context"
	"errors"
	"time"

	"kindalike-be/internal/entity"
	"kindalike-be/internal/mapper"
	"kindalike-be/internal/model"
	"kindalike-be/internal/repository/contract"
	"kindalike-be/internal/repository/specification"

	"gorm.io/gorm"
)

type ChatSessionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ChatMapper
}

func NewChatSessionRepository(db *gorm.DB) contract.ChatSessionRepository {
	return &ChatSessionRepositoryImpl{
		db:     db,
		mapper: mapper.NewChatMapper(),
	}
}

func (r *ChatSessionRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ChatSessionRepositoryImpl) Create(ctx context.Context, session *entity.ChatSession) error {
	m := r.mapper.ChatSessionToModel(session)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*session = *r.mapper.ChatSessionToEntity(m)
	return nil
}

func (r *ChatSessionRepositoryImpl) Update(ctx context.Context, session *entity.ChatSession) error {
	m := r.mapper.ChatSessionToModel(session)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*session = *r.mapper.ChatSessionToEntity(m)
	return nil
}

func (r *ChatSessionRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ChatSession, error) {
	var m model.ChatSession
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ChatSessionToEntity(&m), nil
}

// sessionRow is the scan target for the sessions + message count aggregate.
type sessionRow struct {
	Id            uint
	UserId        uint
	StartedAt     time.Time
	LastMessageAt time.Time
	IsActive      bool
	MessageCount  int64
}

func (r *ChatSessionRepositoryImpl) FindAllWithCounts(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatSession, error) {
	query := r.db.WithContext(ctx).Model(&model.ChatSession{}).
		Select("chat_sessions.id, chat_sessions.user_id, chat_sessions.started_at, chat_sessions.last_message_at, chat_sessions.is_active, COUNT(chat_messages.id) AS message_count").
		Joins("LEFT JOIN chat_messages ON chat_messages.session_id = chat_sessions.id").
		Group("chat_sessions.id")
	query = r.applySpecifications(query, specs...)

	var rows []sessionRow
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}

	sessions := make([]*entity.ChatSession, len(rows))
	for i, row := range rows {
		sessions[i] = &entity.ChatSession{
			Id:            row.Id,
			UserId:        row.UserId,
			StartedAt:     row.StartedAt,
			LastMessageAt: row.LastMessageAt,
			IsActive:      row.IsActive,
			MessageCount:  row.MessageCount,
		}
	}
	return sessions, nil
}

func (r *ChatSessionRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.ChatSession{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
