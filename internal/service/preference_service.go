package service

import (
	"context"
	"time"

	"kindalike-be/internal/dto"
	"kindalike-be/internal/entity"
	"kindalike-be/internal/repository/specification"
	"kindalike-be/internal/repository/unitofwork"
)

type IPreferenceService interface {
	Save(ctx context.Context, userId uint, req *dto.PreferenceRequest) (*dto.PreferenceResponse, error)
	Get(ctx context.Context, userId uint) (*dto.PreferenceResponse, error)
}

type preferenceService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewPreferenceService(uowFactory unitofwork.RepositoryFactory) IPreferenceService {
	return &preferenceService{
		uowFactory: uowFactory,
	}
}

// Save overwrites the user's survey answers wholesale: every field takes the
// submitted value, empty strings included.
func (s *preferenceService) Save(ctx context.Context, userId uint, req *dto.PreferenceRequest) (*dto.PreferenceResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.PreferenceRepository()

	existing, err := repo.FindOne(ctx, specification.UserOwnedBy{UserID: userId})
	if err != nil {
		return nil, err
	}

	now := time.Now()
	pref := &entity.Preference{
		UserId:              userId,
		CuisineType:         req.CuisineType,
		PriceRange:          req.PriceRange,
		DiningStyle:         req.DiningStyle,
		DietaryRestrictions: req.DietaryRestrictions,
		Atmosphere:          req.Atmosphere,
		UpdatedAt:           now,
	}

	if existing != nil {
		pref.Id = existing.Id
		pref.CreatedAt = existing.CreatedAt
		err = repo.Update(ctx, pref)
	} else {
		pref.CreatedAt = now
		err = repo.Create(ctx, pref)
	}
	if err != nil {
		return nil, err
	}

	return toPreferenceResponse(pref), nil
}

func (s *preferenceService) Get(ctx context.Context, userId uint) (*dto.PreferenceResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	pref, err := uow.PreferenceRepository().FindOne(ctx, specification.UserOwnedBy{UserID: userId})
	if err != nil {
		return nil, err
	}
	if pref == nil {
		return nil, ErrPreferencesNotFound
	}

	return toPreferenceResponse(pref), nil
}

func toPreferenceResponse(p *entity.Preference) *dto.PreferenceResponse {
	return &dto.PreferenceResponse{
		Id:                  p.Id,
		UserId:              p.UserId,
		CuisineType:         p.CuisineType,
		PriceRange:          p.PriceRange,
		DiningStyle:         p.DiningStyle,
		DietaryRestrictions: p.DietaryRestrictions,
		Atmosphere:          p.Atmosphere,
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           p.UpdatedAt,
	}
}
