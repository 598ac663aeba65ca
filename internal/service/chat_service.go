package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"kindalike-be/internal/constant"
	"kindalike-be/internal/dto"
	"kindalike-be/internal/entity"
	"kindalike-be/internal/pkg/logger"
	"kindalike-be/internal/repository/specification"
	"kindalike-be/internal/repository/unitofwork"
	"kindalike-be/pkg/geoip"
	"kindalike-be/pkg/intent"
	"kindalike-be/pkg/search"
)

type IChatService interface {
	SendMessage(ctx context.Context, userId uint, req *dto.ChatMessageRequest, clientIP string) (*dto.ChatMessageResponse, error)
	CreateSession(ctx context.Context, userId uint) (*dto.ChatSessionResponse, error)
	GetSessions(ctx context.Context, userId uint) ([]*dto.ChatSessionResponse, error)
	GetSessionMessages(ctx context.Context, userId uint, sessionId uint) ([]*dto.ChatHistoryMessageResponse, error)
	DeactivateSession(ctx context.Context, userId uint, sessionId uint) error
}

// chatService drives one message through the full pipeline: resolve location,
// load preferences, extract intent, search listings, persist both turns.
// Provider components never abort the pipeline; only authorization and
// persistence problems surface as errors.
type chatService struct {
	uowFactory unitofwork.RepositoryFactory
	extractor  intent.Extractor
	searcher   search.ListingSearcher
	locator    geoip.Resolver
	log        logger.ILogger
}

func NewChatService(
	uowFactory unitofwork.RepositoryFactory,
	extractor intent.Extractor,
	searcher search.ListingSearcher,
	locator geoip.Resolver,
	log logger.ILogger,
) IChatService {
	return &chatService{
		uowFactory: uowFactory,
		extractor:  extractor,
		searcher:   searcher,
		locator:    locator,
		log:        log,
	}
}

func (s *chatService) SendMessage(ctx context.Context, userId uint, req *dto.ChatMessageRequest, clientIP string) (*dto.ChatMessageResponse, error) {
	message := strings.TrimSpace(req.Message)
	if message == "" {
		return nil, ErrEmptyMessage
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	// 1. Session ownership. A missing id means "start a new session", created
	// later inside the same transaction as the message pair.
	var session *entity.ChatSession
	if req.SessionId != 0 {
		found, err := uow.ChatSessionRepository().FindOne(ctx,
			specification.ByID{ID: req.SessionId},
			specification.UserOwnedBy{UserID: userId},
			specification.ActiveOnly{},
		)
		if err != nil {
			return nil, err
		}
		if found == nil {
			return nil, ErrSessionNotFound
		}
		session = found
	}

	// 2. Location: explicit override wins over IP geolocation.
	location := strings.TrimSpace(req.Location)
	if location == "" {
		location = s.locator.Resolve(ctx, clientIP)
	}

	// 3. Preferences. No saved row is not an error, just an empty bias.
	saved, err := uow.PreferenceRepository().FindOne(ctx, specification.UserOwnedBy{UserID: userId})
	if err != nil {
		return nil, err
	}
	prefs := toSurveyPreferences(saved)

	// 4-5. Intent and listings. Both absorb their own failures.
	it := s.extractor.Extract(ctx, message, prefs)
	listings := s.searcher.Search(ctx, it, location, prefs)

	s.log.Info("chat", "pipeline resolved", map[string]interface{}{
		"user_id":    userId,
		"location":   location,
		"categories": it.PrimaryCategories,
		"results":    len(listings),
	})

	reply := buildReply(message, location, len(listings) > 0)

	// 6. Persist user turn + assistant turn + session touch atomically. A
	// reader polling history never sees the user turn without its reply.
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	now := time.Now()
	if session == nil {
		session = &entity.ChatSession{
			UserId:        userId,
			StartedAt:     now,
			LastMessageAt: now,
			IsActive:      true,
		}
		if err := uow.ChatSessionRepository().Create(ctx, session); err != nil {
			return nil, err
		}
	}

	userTurn := &entity.ChatMessage{
		SessionId: session.Id,
		Role:      constant.ChatMessageRoleUser,
		Content:   message,
		CreatedAt: now,
	}
	if err := uow.ChatMessageRepository().Create(ctx, userTurn); err != nil {
		return nil, err
	}

	assistantTurn := &entity.ChatMessage{
		SessionId:       session.Id,
		Role:            constant.ChatMessageRoleAssistant,
		Content:         reply,
		Recommendations: listings,
		CreatedAt:       now,
	}
	if err := uow.ChatMessageRepository().Create(ctx, assistantTurn); err != nil {
		return nil, err
	}

	session.LastMessageAt = assistantTurn.CreatedAt
	if err := uow.ChatSessionRepository().Update(ctx, session); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	return &dto.ChatMessageResponse{
		SessionId:       session.Id,
		MessageId:       assistantTurn.Id,
		Response:        reply,
		Recommendations: listings,
	}, nil
}

func toSurveyPreferences(p *entity.Preference) intent.Preferences {
	if p == nil {
		return intent.Preferences{}
	}
	return intent.Preferences{
		CuisineType:         p.CuisineType,
		PriceRange:          p.PriceRange,
		DiningStyle:         p.DiningStyle,
		DietaryRestrictions: p.DietaryRestrictions,
		Atmosphere:          p.Atmosphere,
	}
}

func buildReply(message, location string, hasResults bool) string {
	if hasResults {
		return fmt.Sprintf("Based on your request for '%s' in %s, here are my top recommendations:", message, location)
	}
	return fmt.Sprintf("I couldn't find any restaurants matching '%s' in %s. Try adjusting your search or location.", message, location)
}

func (s *chatService) CreateSession(ctx context.Context, userId uint) (*dto.ChatSessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	now := time.Now()
	session := &entity.ChatSession{
		UserId:        userId,
		StartedAt:     now,
		LastMessageAt: now,
		IsActive:      true,
	}
	if err := uow.ChatSessionRepository().Create(ctx, session); err != nil {
		return nil, err
	}

	return toSessionResponse(session), nil
}

func (s *chatService) GetSessions(ctx context.Context, userId uint) ([]*dto.ChatSessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	sessions, err := uow.ChatSessionRepository().FindAllWithCounts(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "last_message_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	response := make([]*dto.ChatSessionResponse, 0, len(sessions))
	for _, sess := range sessions {
		response = append(response, toSessionResponse(sess))
	}
	return response, nil
}

func (s *chatService) GetSessionMessages(ctx context.Context, userId uint, sessionId uint) ([]*dto.ChatHistoryMessageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.ChatSessionRepository().FindOne(ctx,
		specification.ByID{ID: sessionId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}

	messages, err := uow.ChatMessageRepository().FindAll(ctx,
		specification.BySessionID{SessionID: sessionId},
		specification.OrderBy{Field: "created_at", Desc: false},
		specification.OrderBy{Field: "id", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	response := make([]*dto.ChatHistoryMessageResponse, 0, len(messages))
	for _, msg := range messages {
		response = append(response, &dto.ChatHistoryMessageResponse{
			Id:              msg.Id,
			Role:            msg.Role,
			Content:         msg.Content,
			Recommendations: msg.Recommendations,
			CreatedAt:       msg.CreatedAt,
		})
	}
	return response, nil
}

func (s *chatService) DeactivateSession(ctx context.Context, userId uint, sessionId uint) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.ChatSessionRepository().FindOne(ctx,
		specification.ByID{ID: sessionId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if session == nil {
		return ErrSessionNotFound
	}

	session.IsActive = false
	return uow.ChatSessionRepository().Update(ctx, session)
}

func toSessionResponse(s *entity.ChatSession) *dto.ChatSessionResponse {
	return &dto.ChatSessionResponse{
		Id:            s.Id,
		StartedAt:     s.StartedAt,
		LastMessageAt: s.LastMessageAt,
		IsActive:      s.IsActive,
		MessageCount:  s.MessageCount,
	}
}
